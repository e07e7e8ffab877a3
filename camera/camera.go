// Package camera implements a keyboard driven free-fly camera.
package camera

import (
	"math"

	m "github.com/go-gl/mathgl/mgl32"
)

// Direction is a movement direction relative to where the camera looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera holds the eye position, the point it looks at and the up vector.
//
// Target doubles as the movement direction: forward moves Position
// along Target.
type Camera struct {
	Position m.Vec3
	Target   m.Vec3
	Up       m.Vec3

	angleH, angleV float32

	pressed [4]bool
}

// New returns a camera at the origin looking down -Z.
func New() *Camera {
	return NewAt(m.Vec3{0, 0, 0}, m.Vec3{0, 0, -1}, m.Vec3{0, 1, 0})
}

// NewAt returns a camera at position, looking at target.
// Both target and up are normalized.
func NewAt(position, target, up m.Vec3) *Camera {
	camera := &Camera{
		Position: position,
		Target:   target.Normalize(),
		Up:       up.Normalize(),
	}
	camera.init()
	return camera
}

func (camera *Camera) init() {
	target := camera.Target

	camera.angleH = degAtan2(-target.Z(), target.X())
	if camera.angleH <= 0 {
		camera.angleH += 360
	}
	horizontal := m.Vec2{target.X(), target.Z()}.Len()
	camera.angleV = degAtan2(-target.Y(), horizontal)

	camera.pressed = [4]bool{}
}

func degAtan2(y, x float32) float32 {
	return m.RadToDeg(float32(math.Atan2(float64(y), float64(x))))
}

// Angles returns the horizontal and vertical look angles in degrees.
func (camera *Camera) Angles() (horizontal, vertical float32) {
	return camera.angleH, camera.angleV
}

// View returns the world to camera transform looking from Position at Target.
func (camera *Camera) View() m.Mat4 {
	return m.LookAtV(camera.Position, camera.Target, camera.Up)
}

// SetPressed records whether the key for direction is held down.
func (camera *Camera) SetPressed(direction Direction, pressed bool) {
	if direction < Forward || direction > Right {
		return
	}
	camera.pressed[direction] = pressed
}

// Pressed reports whether the key for direction is held down.
func (camera *Camera) Pressed(direction Direction) bool {
	if direction < Forward || direction > Right {
		return false
	}
	return camera.pressed[direction]
}

// Update moves the camera by step according to the held keys.
// A sideways key replaces the forward/backward step instead of adding to it.
func (camera *Camera) Update(step float32) {
	var delta m.Vec3

	switch {
	case camera.pressed[Forward]:
		delta = camera.Target.Mul(step)
	case camera.pressed[Backward]:
		delta = camera.Target.Mul(-step)
	}

	switch {
	case camera.pressed[Left]:
		delta = camera.Target.Cross(camera.Up).Normalize().Mul(step)
	case camera.pressed[Right]:
		delta = camera.Up.Cross(camera.Target).Normalize().Mul(step)
	}

	camera.Position = camera.Position.Add(delta)
}
