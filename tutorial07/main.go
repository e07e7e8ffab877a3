// Tutorial07 rotates a triangle around the Z axis with a model matrix uniform.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"

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

	window, err := gfx.OpenWindow(cfg, "Tutorial07")
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := gfx.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangle := gfx.UploadPositions(mesh.Triangle(), gl.TRIANGLES)
	defer triangle.Delete()

	gl.ClearColor(0, 0, 0, 0)
	gfx.CheckError("setup")

	t := float32(0)
	for !window.ShouldClose() {
		window.Stats.BeginUpdate()
		model := m.HomogRotate3DZ(t)
		window.Stats.EndUpdate()

		window.Stats.BeginRender()
		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		program.UniformMatrix("uModel", model)
		triangle.Draw()
		window.Stats.EndRender()

		window.Present()
		t += 0.01
	}

	return nil
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

uniform mat4 uModel;

void main() {
	gl_Position = uModel * vec4(position, 1.0);
}
`

var fragmentShader = `
#version 410 core

out vec4 fColor;

void main() {
	fColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`
