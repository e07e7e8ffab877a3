// Package light fills the uniform blocks of the lighting tutorials.
package light

import (
	"github.com/adinfinit/g"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/gltutorials/camera"
	"github.com/adinfinit/gltutorials/ubo"
)

// Intensity is a light intensity adjusted from the keyboard.
type Intensity struct {
	Value float32
	Step  float32
}

// NewIntensity returns an intensity changing by 0.05 per key press.
func NewIntensity(value float32) *Intensity {
	return &Intensity{Value: value, Step: 0.05}
}

// Increase raises the intensity by one step, up to 1.
func (intensity *Intensity) Increase() {
	intensity.Value = m.Clamp(intensity.Value+intensity.Step, 0, 1)
}

// Decrease lowers the intensity by one step, down to 0.
func (intensity *Intensity) Decrease() {
	intensity.Value = m.Clamp(intensity.Value-intensity.Step, 0, 1)
}

// Sun is a white light shining along +X.
func Sun(ambient, diffuse float32) ubo.SunBlock {
	return ubo.SunBlock{
		Color:            m.Vec4{1, 1, 1, 1},
		Direction:        m.Vec4{1, 0, 0, 1},
		AmbientIntensity: ambient,
		DiffuseIntensity: diffuse,
	}
}

// Orbiting places an orange and a blue point light swinging along Z
// with time t; diffuse sets their diffuse intensities.
func Orbiting(t float32, diffuse [2]float32) (block ubo.PointLightsBlock, count int32) {
	sn, cs := g.Sincos(t)

	block.Lights[0] = ubo.PointLight{
		Color:            m.Vec4{1, 0.5, 0, 1},
		Position:         m.Vec4{3, 1, 20 * sn, 0},
		DiffuseIntensity: diffuse[0],
		Attenuation:      ubo.Attenuation{Constant: 0.1},
	}
	block.Lights[1] = ubo.PointLight{
		Color:            m.Vec4{0, 0.5, 1, 1},
		Position:         m.Vec4{7, 1, 20 * cs, 0},
		DiffuseIntensity: diffuse[1],
		Attenuation:      ubo.Attenuation{Constant: 1, Linear: 0.1},
	}
	return block, 2
}

// Headlight is a white spot light at the camera pointing where it looks.
// Its cone widens slowly with time t.
func Headlight(cam *camera.Camera, t float32) (block ubo.SpotLightsBlock, count int32) {
	_, cutoff := g.Sincos(m.DegToRad(45 + t))

	block.Lights[0] = ubo.SpotLight{
		Color:            m.Vec4{1, 1, 1, 1},
		Position:         cam.Position.Vec4(1),
		Direction:        cam.Target.Vec4(0),
		DiffuseIntensity: 0.9,
		Attenuation:      ubo.Attenuation{Constant: 1, Linear: 0.1},
		Cutoff:           cutoff,
	}
	return block, 1
}

// Camera fills the transform part of the camera block.
// The normal matrix is the inverse transpose of model-view.
func Camera(projection, view, model m.Mat4, eye m.Vec3) ubo.CameraBlock {
	modelView := view.Mul4(model)
	return ubo.CameraBlock{
		MVP:    projection.Mul4(modelView),
		Normal: modelView.Inv().Transpose(),
		World:  modelView,
		Eye:    eye.Vec4(1),
	}
}
