// Tutorial02 draws a single point in the middle of the screen.
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

	window, err := gfx.OpenWindow(cfg, "Tutorial02")
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := gfx.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	point := gfx.UploadPositions(mesh.Point(), gl.POINTS)
	defer point.Delete()

	gl.ClearColor(0, 0, 0, 0)
	gl.PointSize(4)
	gfx.CheckError("setup")

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		point.Draw()

		window.Present()
	}

	return nil
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

void main() {
	gl_Position = vec4(position, 1.0);
}
`

var fragmentShader = `
#version 410 core

out vec4 fColor;

void main() {
	fColor = vec4(1.0);
}
`
