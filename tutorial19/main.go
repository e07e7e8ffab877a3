// Tutorial19 adds a specular highlight to the directional light.
// A and S change the ambient intensity.
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

	window, err := gfx.OpenWindow(cfg, "Tutorial19")
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
	dataBlock := ubo.AddOf[ubo.PhongBlock](layout, "Data")
	if err := program.BindBlocks(layout); err != nil {
		return err
	}

	uniforms := gfx.NewUniformBuffer(layout)
	defer uniforms.Delete()

	cam := camera.New()
	ambient := light.NewIntensity(0.1)
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
		transform := light.Camera(projection, cam.View(), model, cam.Position)

		data := ubo.PhongBlock{
			MVP:               transform.MVP,
			Normal:            transform.Normal,
			World:             transform.World,
			Color:             m.Vec4{1, 1, 1, 1},
			Direction:         m.Vec4{1, 0, 0, 1},
			Eye:               transform.Eye,
			AmbientIntensity:  ambient.Value,
			DiffuseIntensity:  0.25,
			SpecularIntensity: 1,
			SpecularPower:     32,
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
layout (location = 2) in vec3 normal;

out vec2 vTexCoord;
out vec3 vNormal;
out vec3 vWorldPosition;

layout (std140) uniform Data {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 color;
	vec4 direction;
	vec4 eye;
	float ambientIntensity;
	float diffuseIntensity;
	float specularIntensity;
	float specularPower;
} uData;

void main() {
	gl_Position = uData.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
	vNormal = (uData.normal * vec4(normal, 0.0)).xyz;
	vWorldPosition = (uData.world * vec4(position, 1.0)).xyz;
}
`

var fragmentShader = `
#version 410 core

in vec2 vTexCoord;
in vec3 vNormal;
in vec3 vWorldPosition;
out vec4 fColor;

uniform sampler2D uImage;

layout (std140) uniform Data {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 color;
	vec4 direction;
	vec4 eye;
	float ambientIntensity;
	float diffuseIntensity;
	float specularIntensity;
	float specularPower;
} uData;

void main() {
	vec3 normal = normalize(vNormal);
	vec3 direction = normalize(uData.direction.xyz);

	vec4 ambientColor = vec4(uData.color.rgb * uData.ambientIntensity, 1.0);
	vec4 diffuseColor = vec4(0.0);
	vec4 specularColor = vec4(0.0);

	float diffuseFactor = dot(normal, -direction);
	if (diffuseFactor > 0.0) {
		diffuseColor = vec4(uData.color.rgb * uData.diffuseIntensity * diffuseFactor, 1.0);

		vec3 toEye = normalize(uData.eye.xyz - vWorldPosition);
		vec3 reflected = normalize(reflect(direction, normal));
		float specularFactor = dot(toEye, reflected);
		if (specularFactor > 0.0) {
			specularFactor = pow(specularFactor, uData.specularPower);
			specularColor = vec4(uData.color.rgb * uData.specularIntensity * specularFactor, 1.0);
		}
	}

	fColor = texture(uImage, vTexCoord) * (ambientColor + diffuseColor + specularColor);
}
`
