// Tutorial17 lights the textured pyramid with an ambient light kept in a
// uniform buffer. A and S change the ambient intensity.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/gltutorials/camera"
	"github.com/adinfinit/gltutorials/config"
	"github.com/adinfinit/gltutorials/gfx"
	"github.com/adinfinit/gltutorials/light"
	"github.com/adinfinit/gltutorials/mesh"
	"github.com/adinfinit/gltutorials/ubo"
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

	window, err := gfx.OpenWindow(cfg, "Tutorial17")
	if err != nil {
		return err
	}
	defer window.Close()

	program, err := gfx.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	texture, err := gfx.LoadTexture(cfg.Texture)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	pyramid := gfx.UploadMesh(mesh.Pyramid(), gl.TRIANGLES)
	defer pyramid.Delete()

	layout := ubo.NewLayout(gfx.UniformAlignment())
	dataBlock := ubo.AddOf[ubo.AmbientBlock](layout, "Data")
	if err := program.BindBlocks(layout); err != nil {
		return err
	}

	uniforms := gfx.NewUniformBuffer(layout)
	defer uniforms.Delete()

	cam := camera.New()
	ambient := light.NewIntensity(0.5)
	window.OnKey(gfx.CameraKeys(cam))
	window.OnKey(gfx.IntensityKeys(ambient.Increase, ambient.Decrease))

	gl.ClearColor(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)
	gfx.CheckError("setup")

	t := float32(0)
	for !window.ShouldClose() {
		window.Stats.BeginUpdate()
		model := m.Translate3D(0, 0, -5).Mul4(m.HomogRotate3DY(t))
		projection := m.Perspective(m.DegToRad(90), window.Clock.Aspect(), 1, 100)

		data := ubo.AmbientBlock{
			MVP:              projection.Mul4(cam.View()).Mul4(model),
			Color:            m.Vec4{1, 1, 1, 1},
			AmbientIntensity: ambient.Value,
		}
		if err := ubo.Set(uniforms.Staging, dataBlock, &data); err != nil {
			return err
		}
		window.Stats.EndUpdate()

		window.Stats.BeginRender()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		program.Use()
		program.UniformInt("uImage", 0)
		uniforms.Upload()
		uniforms.Bind()
		texture.Bind(0)
		pyramid.Draw()
		window.Stats.EndRender()

		window.Present()
		cam.Update(0.1)
		t += 0.01
	}

	return nil
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;

out vec2 vTexCoord;

layout (std140) uniform Data {
	mat4 mvp;
	vec4 color;
	float ambientIntensity;
} uData;

void main() {
	gl_Position = uData.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
}
`

var fragmentShader = `
#version 410 core

in vec2 vTexCoord;
out vec4 fColor;

uniform sampler2D uImage;

layout (std140) uniform Data {
	mat4 mvp;
	vec4 color;
	float ambientIntensity;
} uData;

void main() {
	fColor.rgb = texture(uImage, vTexCoord).rgb * uData.color.rgb * uData.ambientIntensity;
	fColor.a = 1.0;
}
`
