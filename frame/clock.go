// Package frame tracks per-frame time, screen size and timings.
package frame

import (
	"github.com/adinfinit/g"
)

// Clock advances once per rendered frame.
type Clock struct {
	ScreenSize g.Vec2

	Time      float64
	DeltaTime float32
	Frame     int
}

// NextFrame records the framebuffer size and the current time in seconds.
// It reports whether the screen size changed since the previous frame.
func (clock *Clock) NextFrame(screenSize g.Vec2, now float64) (resized bool) {
	resized = clock.ScreenSize != screenSize
	clock.ScreenSize = screenSize

	if clock.Frame > 0 {
		clock.DeltaTime = float32(now - clock.Time)
	}
	clock.Time = now
	clock.Frame++

	return resized
}

// Aspect returns the width to height ratio, or 1 for an empty screen.
func (clock *Clock) Aspect() float32 {
	if clock.ScreenSize.X <= 0 || clock.ScreenSize.Y <= 0 {
		return 1
	}
	return clock.ScreenSize.X / clock.ScreenSize.Y
}
