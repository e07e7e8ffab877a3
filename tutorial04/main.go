// Tutorial04 draws a triangle with its own shader pair, scaled down in the
// vertex shader and colored red in the fragment shader.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

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

	window, err := gfx.OpenWindow(cfg, "Tutorial04")
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

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		triangle.Draw()

		window.Present()
	}

	return nil
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

void main() {
	gl_Position = vec4(0.5 * position.xy, position.z, 1.0);
}
`

var fragmentShader = `
#version 410 core

out vec4 fColor;

void main() {
	fColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`
