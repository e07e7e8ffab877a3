package camera

import (
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func assertVec3(t *testing.T, expected, actual m.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], tolerance, "component %d of %v", i, actual)
	}
}

func TestNewDefaults(t *testing.T) {
	camera := New()
	assertVec3(t, m.Vec3{0, 0, 0}, camera.Position)
	assertVec3(t, m.Vec3{0, 0, -1}, camera.Target)
	assertVec3(t, m.Vec3{0, 1, 0}, camera.Up)

	for _, direction := range []Direction{Forward, Backward, Left, Right} {
		assert.False(t, camera.Pressed(direction))
	}
}

func TestNewAtNormalizes(t *testing.T) {
	camera := NewAt(m.Vec3{1, 2, 3}, m.Vec3{0, 0, -10}, m.Vec3{0, 5, 0})
	assertVec3(t, m.Vec3{1, 2, 3}, camera.Position)
	assertVec3(t, m.Vec3{0, 0, -1}, camera.Target)
	assertVec3(t, m.Vec3{0, 1, 0}, camera.Up)
}

func TestAngles(t *testing.T) {
	tests := []struct {
		target     m.Vec3
		horizontal float32
		vertical   float32
	}{
		{target: m.Vec3{0, 0, -1}, horizontal: 90, vertical: 0},
		{target: m.Vec3{1, 0, 0}, horizontal: 360, vertical: 0},
		{target: m.Vec3{-1, 0, 0}, horizontal: 180, vertical: 0},
		{target: m.Vec3{0, 0, 1}, horizontal: 270, vertical: 0},
		{target: m.Vec3{-1, 0, -1}, horizontal: 135, vertical: 0},
		{target: m.Vec3{-1, 0, 1}, horizontal: 225, vertical: 0},
		{target: m.Vec3{0, -1, -1}, horizontal: 90, vertical: 45},
		{target: m.Vec3{0, 1, -1}, horizontal: 90, vertical: -45},
		// close to straight ahead and straight down
		{target: m.Vec3{0.001, 0, -1}, horizontal: 89.94270, vertical: 0},
		{target: m.Vec3{0, -1, -0.001}, horizontal: 90, vertical: 89.94270},
	}

	for _, test := range tests {
		camera := NewAt(m.Vec3{}, test.target, m.Vec3{0, 1, 0})
		horizontal, vertical := camera.Angles()
		assert.InDelta(t, test.horizontal, horizontal, 1e-3, "target %v", test.target)
		assert.InDelta(t, test.vertical, vertical, 1e-3, "target %v", test.target)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	camera := NewAt(m.Vec3{3, 0, 0}, m.Vec3{0, 0, -1}, m.Vec3{0, 1, 0})
	view := camera.View()

	// the eye maps to the origin in camera space
	eye := view.Mul4x1(camera.Position.Vec4(1)).Vec3()
	assertVec3(t, m.Vec3{0, 0, 0}, eye)

	// the target point lies on -Z in camera space
	target := view.Mul4x1(camera.Target.Vec4(1)).Vec3()
	distance := camera.Target.Sub(camera.Position).Len()
	assertVec3(t, m.Vec3{0, 0, -distance}, target)

	assert.Equal(t, m.LookAtV(m.Vec3{3, 0, 0}, m.Vec3{0, 0, -1}, m.Vec3{0, 1, 0}), view)
}

func TestUpdateWithoutKeys(t *testing.T) {
	camera := NewAt(m.Vec3{1, 2, 3}, m.Vec3{0, 0, -1}, m.Vec3{0, 1, 0})
	camera.Update(0.1)
	assertVec3(t, m.Vec3{1, 2, 3}, camera.Position)
}

func TestUpdateMoves(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []Direction
		step     float32
		expected m.Vec3
	}{
		{name: "forward", pressed: []Direction{Forward}, step: 0.1, expected: m.Vec3{0, 0, -0.1}},
		{name: "backward", pressed: []Direction{Backward}, step: 0.1, expected: m.Vec3{0, 0, 0.1}},
		{name: "left", pressed: []Direction{Left}, step: 0.1, expected: m.Vec3{0.1, 0, 0}},
		{name: "right", pressed: []Direction{Right}, step: 0.1, expected: m.Vec3{-0.1, 0, 0}},
		{name: "negative step", pressed: []Direction{Forward}, step: -0.5, expected: m.Vec3{0, 0, 0.5}},
		{name: "forward wins over backward", pressed: []Direction{Forward, Backward}, step: 1, expected: m.Vec3{0, 0, -1}},
		{name: "left wins over right", pressed: []Direction{Left, Right}, step: 1, expected: m.Vec3{1, 0, 0}},
		{name: "sideways replaces forward", pressed: []Direction{Forward, Right}, step: 1, expected: m.Vec3{-1, 0, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			camera := New()
			for _, direction := range test.pressed {
				camera.SetPressed(direction, true)
			}
			camera.Update(test.step)
			assertVec3(t, test.expected, camera.Position)
		})
	}
}

func TestUpdateIntegrates(t *testing.T) {
	camera := New()
	camera.SetPressed(Forward, true)
	for i := 0; i < 10; i++ {
		camera.Update(0.1)
	}
	assertVec3(t, m.Vec3{0, 0, -1}, camera.Position)

	camera.SetPressed(Forward, false)
	camera.Update(0.1)
	assertVec3(t, m.Vec3{0, 0, -1}, camera.Position)
}

func TestSidewaysIsNormalized(t *testing.T) {
	camera := NewAt(m.Vec3{}, m.Vec3{1, 0, -1}, m.Vec3{0, 1, 0})
	camera.SetPressed(Right, true)
	camera.Update(2)
	assert.InDelta(t, 2, camera.Position.Len(), tolerance)
}

func TestSetPressedIgnoresUnknown(t *testing.T) {
	camera := New()
	camera.SetPressed(Direction(42), true)
	assert.False(t, camera.Pressed(Direction(42)))
	camera.Update(1)
	assertVec3(t, m.Vec3{}, camera.Position)
}
