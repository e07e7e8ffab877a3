package ubo

import (
	m "github.com/go-gl/mathgl/mgl32"
)

// Go mirrors of the std140 uniform blocks used by the lighting tutorials.
// Field order and padding match the GLSL declarations, so the structs can be
// copied into a buffer verbatim.

// AmbientBlock is the single block of the ambient light tutorial.
//
//	layout (std140) uniform Data {
//	  mat4 mvp;
//	  vec4 color;
//	  float ambientIntensity;
//	};
type AmbientBlock struct {
	MVP              m.Mat4
	Color            m.Vec4
	AmbientIntensity float32
}

// DiffuseBlock is the single block of the directional light tutorial.
// The vec3 members share their 16 byte slot with the following float.
type DiffuseBlock struct {
	MVP              m.Mat4
	World            m.Mat4
	Color            m.Vec3
	AmbientIntensity float32
	Direction        m.Vec3
	DiffuseIntensity float32
}

// PhongBlock is the single block of the specular light tutorial.
type PhongBlock struct {
	MVP               m.Mat4
	Normal            m.Mat4
	World             m.Mat4
	Color             m.Vec4
	Direction         m.Vec4
	Eye               m.Vec4
	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32
	SpecularPower     float32
}

// CameraBlock holds the transforms and the number of active lights.
type CameraBlock struct {
	MVP            m.Mat4
	Normal         m.Mat4
	World          m.Mat4
	Eye            m.Vec4
	NumPointLights int32
	NumSpotLights  int32
}

// MaterialBlock holds the specular response of the surface.
type MaterialBlock struct {
	SpecularIntensity float32
	SpecularPower     float32
}

// SunBlock is a directional light.
type SunBlock struct {
	Color            m.Vec4
	Direction        m.Vec4
	AmbientIntensity float32
	DiffuseIntensity float32
}

// Attenuation divides light intensity by
// Constant + Linear*d + Exponential*d*d.
type Attenuation struct {
	Constant    float32
	Linear      float32
	Exponential float32
}

// PointLight is one element of the PointLights array; std140 rounds
// the element stride up to a multiple of 16.
type PointLight struct {
	Color            m.Vec4
	Position         m.Vec4
	AmbientIntensity float32
	DiffuseIntensity float32
	Attenuation
	_ [3]float32
}

// SpotLight is a point light restricted to a cone around Direction.
// Cutoff is the cosine of the cone half-angle.
type SpotLight struct {
	Color            m.Vec4
	Position         m.Vec4
	Direction        m.Vec4
	AmbientIntensity float32
	DiffuseIntensity float32
	Attenuation
	Cutoff float32
	_      [2]float32
}

const (
	MaxPointLights = 8
	MaxSpotLights  = 8
)

type PointLightsBlock struct {
	Lights [MaxPointLights]PointLight
}

type SpotLightsBlock struct {
	Lights [MaxSpotLights]SpotLight
}
