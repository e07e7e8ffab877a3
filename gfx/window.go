// Package gfx wraps the window, context and GL objects used by the tutorials.
// Every function must be called from the main thread.
package gfx

import (
	"fmt"
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfinit/gltutorials/camera"
	"github.com/adinfinit/gltutorials/config"
	"github.com/adinfinit/gltutorials/frame"
)

// KeyHandler receives every key event of a window.
type KeyHandler func(key glfw.Key, action glfw.Action)

type Window struct {
	*glfw.Window

	Title string
	Clock frame.Clock
	Stats frame.Stats

	showStats bool
	handlers  []KeyHandler
}

// OpenWindow initializes glfw, creates a window with a 4.1 core context
// and loads the GL function pointers. Close must be called when done.
func OpenWindow(cfg config.Config, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	native, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	native.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		native.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize glow: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	window := &Window{
		Window:    native,
		Title:     title,
		showStats: cfg.Stats,
	}
	native.SetKeyCallback(window.onKey)
	window.OnKey(func(key glfw.Key, action glfw.Action) {
		if key == glfw.KeyEscape && action == glfw.Press {
			window.SetShouldClose(true)
		}
	})

	window.NextFrame()
	return window, nil
}

// OnKey adds a key handler. Handlers run in the order they were added.
func (window *Window) OnKey(handler KeyHandler) {
	window.handlers = append(window.handlers, handler)
}

func (window *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	for _, handler := range window.handlers {
		handler(key, action)
	}
}

// NextFrame advances the clock and resizes the viewport to the framebuffer.
func (window *Window) NextFrame() {
	width, height := window.GetFramebufferSize()
	if window.Clock.NextFrame(g.V2(float32(width), float32(height)), glfw.GetTime()) {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
}

// Present swaps buffers, polls events and starts the next frame.
func (window *Window) Present() {
	if window.showStats {
		window.SetTitle(window.Stats.Title(window.Title))
	}
	window.SwapBuffers()
	glfw.PollEvents()
	window.NextFrame()
}

// Close destroys the window and terminates glfw.
func (window *Window) Close() {
	window.Destroy()
	glfw.Terminate()
}

// CheckError logs a pending GL error, if any.
func CheckError(context string) {
	if err := gl.GetError(); err != gl.NO_ERROR {
		log.Printf("ERROR: %s: 0x%04x", context, err)
	}
}

// CameraKeys steers cam with the arrow keys.
// Press and repeat hold a direction, release lets it go. Unlike a plain
// "pressed = action == Press" toggle, a key repeat does not stop the camera.
func CameraKeys(cam *camera.Camera) KeyHandler {
	return func(key glfw.Key, action glfw.Action) {
		var direction camera.Direction
		switch key {
		case glfw.KeyUp:
			direction = camera.Forward
		case glfw.KeyDown:
			direction = camera.Backward
		case glfw.KeyLeft:
			direction = camera.Left
		case glfw.KeyRight:
			direction = camera.Right
		default:
			return
		}
		cam.SetPressed(direction, action != glfw.Release)
	}
}

// IntensityKeys raises the value with A and lowers it with S.
func IntensityKeys(increase, decrease func()) KeyHandler {
	return func(key glfw.Key, action glfw.Action) {
		if action == glfw.Release {
			return
		}
		switch key {
		case glfw.KeyA:
			increase()
		case glfw.KeyS:
			decrease()
		}
	}
}
