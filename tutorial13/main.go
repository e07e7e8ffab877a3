// Tutorial13 looks at a spinning pyramid through a camera. The pyramid is
// colored by its clamped object space position.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/gltutorials/camera"
	"github.com/adinfinit/gltutorials/config"
	"github.com/adinfinit/gltutorials/gfx"
	"github.com/adinfinit/gltutorials/mesh"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	cfg := config.MustParse()

	stopProfile, err := cfg.StartProfile()
	if err != nil {
		return err
	}
	defer stopProfile()

	window, err := gfx.OpenWindow(cfg, "Tutorial13")
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := gfx.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	pyramid := gfx.UploadMesh(mesh.Pyramid(), gl.TRIANGLES)
	defer pyramid.Delete()

	cam := camera.New()

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)
	gfx.CheckError("setup")

	t := float32(0)
	for !window.ShouldClose() {
		window.Stats.BeginUpdate()
		model := m.Translate3D(0, 0, -5).Mul4(m.HomogRotate3DY(t))
		projection := m.Perspective(m.DegToRad(90), window.Clock.Aspect(), 1, 100)
		mvp := projection.Mul4(cam.View()).Mul4(model)
		window.Stats.EndUpdate()

		window.Stats.BeginRender()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		program.Use()
		program.UniformMatrix("uMvp", mvp)
		pyramid.Draw()
		window.Stats.EndRender()

		window.Present()
		t += 0.01
	}

	return nil
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

out vec3 vColor;

uniform mat4 uMvp;

void main() {
	gl_Position = uMvp * vec4(position, 1.0);
	vColor = clamp(position, 0.0, 1.0);
}
`

var fragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 fColor;

void main() {
	fColor = vec4(vColor, 1.0);
}
`
