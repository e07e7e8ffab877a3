// Tutorial21 adds a spot light that follows the camera.
// A and S change the ambient intensity of the sun.
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

	window, err := gfx.OpenWindow(cfg, "Tutorial21")
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
	cameraBlock := ubo.AddOf[ubo.CameraBlock](layout, "CameraData")
	materialBlock := ubo.AddOf[ubo.MaterialBlock](layout, "Material")
	sunBlock := ubo.AddOf[ubo.SunBlock](layout, "DirectionalLight")
	pointBlock := ubo.AddOf[ubo.PointLightsBlock](layout, "PointLights")
	spotBlock := ubo.AddOf[ubo.SpotLightsBlock](layout, "SpotLights")
	if err := program.BindBlocks(layout); err != nil {
		return err
	}
	log.Println("uniform blocks:", layout.Blocks)

	uniforms := gfx.NewUniformBuffer(layout)
	defer uniforms.Delete()

	material := ubo.MaterialBlock{
		SpecularIntensity: 0,
		SpecularPower:     32,
	}
	if err := ubo.Set(uniforms.Staging, materialBlock, &material); err != nil {
		return err
	}

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
		projection := perspective(window.Clock.Aspect())

		transform := light.Camera(projection, cam.View(), model, cam.Position)
		sun := light.Sun(ambient.Value, 0.1)
		points, numPoints := light.Orbiting(t, [2]float32{0.2, 0.3})
		transform.NumPointLights = numPoints
		spots, numSpots := light.Headlight(cam, t)
		transform.NumSpotLights = numSpots

		if err := ubo.Set(uniforms.Staging, cameraBlock, &transform); err != nil {
			return err
		}
		if err := ubo.Set(uniforms.Staging, sunBlock, &sun); err != nil {
			return err
		}
		if err := ubo.Set(uniforms.Staging, pointBlock, &points); err != nil {
			return err
		}
		if err := ubo.Set(uniforms.Staging, spotBlock, &spots); err != nil {
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
		gfx.CheckError("draw")
		window.Stats.EndRender()

		window.Present()
		cam.Update(0.1)
		t += 0.01
	}

	return nil
}

// perspective projects a 90 degree field of view between 0.1 and 100.
func perspective(aspect float32) m.Mat4 {
	return m.Perspective(m.DegToRad(90), aspect, 0.1, 100)
}

var vertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;
layout (location = 2) in vec3 normal;

out vec2 vTexCoord;
out vec3 vNormal;
out vec3 vWorldPosition;

layout (std140) uniform CameraData {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 eye;
	int numPointLights;
	int numSpotLights;
} uCamera;

void main() {
	gl_Position = uCamera.mvp * vec4(position, 1.0);
	vTexCoord = texcoord;
	vNormal = mat3(uCamera.normal) * normal;
	vWorldPosition = (uCamera.world * vec4(position, 1.0)).xyz;
}
`

var fragmentShader = `
#version 410 core

const int MAX_POINT_LIGHTS = 8;
const int MAX_SPOT_LIGHTS = 8;

in vec2 vTexCoord;
in vec3 vNormal;
in vec3 vWorldPosition;
out vec4 fColor;

uniform sampler2D uImage;

layout (std140) uniform CameraData {
	mat4 mvp;
	mat4 normal;
	mat4 world;
	vec4 eye;
	int numPointLights;
	int numSpotLights;
} uCamera;

layout (std140) uniform Material {
	float specularIntensity;
	float specularPower;
} uMaterial;

layout (std140) uniform DirectionalLight {
	vec4 color;
	vec4 direction;
	float ambientIntensity;
	float diffuseIntensity;
} uSun;

struct PointLight {
	vec4 color;
	vec4 position;
	float ambientIntensity;
	float diffuseIntensity;
	float attenuationConstant;
	float attenuationLinear;
	float attenuationExponential;
};

layout (std140) uniform PointLights {
	PointLight light[MAX_POINT_LIGHTS];
} uPointLights;

struct SpotLight {
	vec4 color;
	vec4 position;
	vec4 direction;
	float ambientIntensity;
	float diffuseIntensity;
	float attenuationConstant;
	float attenuationLinear;
	float attenuationExponential;
	float cutoff;
};

layout (std140) uniform SpotLights {
	SpotLight light[MAX_SPOT_LIGHTS];
} uSpotLights;

vec3 calcLight(vec3 color, float ambientIntensity, float diffuseIntensity, vec3 direction, vec3 normal) {
	vec3 ambientColor = color * ambientIntensity;
	vec3 diffuseColor = vec3(0.0);
	vec3 specularColor = vec3(0.0);

	float diffuseFactor = dot(normal, -direction);
	if (diffuseFactor > 0.0) {
		diffuseColor = color * diffuseIntensity * diffuseFactor;

		vec3 toEye = normalize(uCamera.eye.xyz - vWorldPosition);
		vec3 reflected = normalize(reflect(direction, normal));
		float specularFactor = dot(toEye, reflected);
		if (specularFactor > 0.0) {
			specularFactor = pow(specularFactor, uMaterial.specularPower);
			specularColor = color * uMaterial.specularIntensity * specularFactor;
		}
	}

	return ambientColor + diffuseColor + specularColor;
}

vec3 calcDirectionalLight(vec3 normal) {
	return calcLight(uSun.color.rgb, uSun.ambientIntensity, uSun.diffuseIntensity, normalize(uSun.direction.xyz), normal);
}

vec3 calcPointLight(PointLight light, vec3 normal) {
	vec3 direction = vWorldPosition - light.position.xyz;
	float distance = length(direction);
	direction = normalize(direction);

	vec3 result = calcLight(light.color.rgb, light.ambientIntensity, light.diffuseIntensity, direction, normal);
	float attenuation = light.attenuationConstant +
		light.attenuationLinear * distance +
		light.attenuationExponential * distance * distance;
	return result / attenuation;
}

vec3 calcSpotLight(SpotLight light, vec3 normal) {
	vec3 toPixel = normalize(vWorldPosition - light.position.xyz);
	float spotFactor = dot(toPixel, normalize(light.direction.xyz));
	if (spotFactor <= light.cutoff) {
		return vec3(0.0);
	}

	vec3 direction = vWorldPosition - light.position.xyz;
	float distance = length(direction);
	direction = normalize(direction);

	vec3 result = calcLight(light.color.rgb, light.ambientIntensity, light.diffuseIntensity, direction, normal);
	float attenuation = light.attenuationConstant +
		light.attenuationLinear * distance +
		light.attenuationExponential * distance * distance;
	result /= attenuation;

	return result * (1.0 - (1.0 - spotFactor) / (1.0 - light.cutoff));
}

void main() {
	vec3 normal = normalize(vNormal);
	vec3 total = calcDirectionalLight(normal);

	for (int i = 0; i < uCamera.numPointLights; i++) {
		total += calcPointLight(uPointLights.light[i], normal);
	}
	for (int i = 0; i < uCamera.numSpotLights; i++) {
		total += calcSpotLight(uSpotLights.light[i], normal);
	}

	fColor = texture(uImage, vTexCoord) * vec4(total, 1.0);
}
`
