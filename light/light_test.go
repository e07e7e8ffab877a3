package light

import (
	"math"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/adinfinit/gltutorials/camera"
)

func TestIntensity(t *testing.T) {
	intensity := NewIntensity(0.1)

	intensity.Increase()
	assert.InDelta(t, 0.15, intensity.Value, 1e-6)

	for i := 0; i < 10; i++ {
		intensity.Decrease()
	}
	assert.Equal(t, float32(0), intensity.Value)

	for i := 0; i < 30; i++ {
		intensity.Increase()
	}
	assert.Equal(t, float32(1), intensity.Value)
}

func TestSun(t *testing.T) {
	sun := Sun(0.1, 0.25)
	assert.Equal(t, m.Vec4{1, 0, 0, 1}, sun.Direction)
	assert.Equal(t, float32(0.1), sun.AmbientIntensity)
	assert.Equal(t, float32(0.25), sun.DiffuseIntensity)
}

func TestOrbiting(t *testing.T) {
	block, count := Orbiting(0, [2]float32{0.5, 0.5})
	assert.EqualValues(t, 2, count)

	assert.InDelta(t, 0, block.Lights[0].Position.Z(), 1e-6)
	assert.InDelta(t, 20, block.Lights[1].Position.Z(), 1e-6)
	assert.Equal(t, float32(0.1), block.Lights[0].Constant)
	assert.Equal(t, float32(0.1), block.Lights[1].Linear)

	block, _ = Orbiting(math.Pi/2, [2]float32{0.2, 0.3})
	assert.InDelta(t, 20, block.Lights[0].Position.Z(), 1e-4)
	assert.InDelta(t, 0, block.Lights[1].Position.Z(), 1e-4)
	assert.Equal(t, float32(0.3), block.Lights[1].DiffuseIntensity)

	// unused slots stay zero
	assert.Equal(t, m.Vec4{}, block.Lights[2].Color)
}

func TestHeadlight(t *testing.T) {
	cam := camera.NewAt(m.Vec3{1, 2, 3}, m.Vec3{0, 0, -1}, m.Vec3{0, 1, 0})

	block, count := Headlight(cam, 0)
	assert.EqualValues(t, 1, count)

	spot := block.Lights[0]
	assert.Equal(t, m.Vec4{1, 2, 3, 1}, spot.Position)
	assert.Equal(t, m.Vec4{0, 0, -1, 0}, spot.Direction)
	assert.InDelta(t, math.Cos(math.Pi/4), spot.Cutoff, 1e-5)
}

func TestCamera(t *testing.T) {
	projection := m.Perspective(m.DegToRad(90), 4.0/3.0, 0.1, 100)
	view := m.Translate3D(0, 0, -2)
	model := m.HomogRotate3DY(0.5)

	block := Camera(projection, view, model, m.Vec3{0, 0, 2})

	world := view.Mul4(model)
	mvp := projection.Mul4(view).Mul4(model)
	normal := block.Normal.Mat3()
	rotation := model.Mat3()

	assert.InDeltaSlice(t, world[:], block.World[:], 1e-5)
	assert.InDeltaSlice(t, mvp[:], block.MVP[:], 1e-5)
	// rotation and translation only: the normal matrix keeps the rotation
	assert.InDeltaSlice(t, rotation[:], normal[:], 1e-5)
	assert.Equal(t, m.Vec4{0, 0, 2, 1}, block.Eye)
	assert.Zero(t, block.NumPointLights)
}
