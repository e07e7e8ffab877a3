package ubo

import (
	"testing"
	"unsafe"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	tests := []struct {
		size, alignment, expected int
	}{
		{0, 256, 0},
		{1, 256, 256},
		{216, 256, 256},
		{256, 256, 256},
		{257, 256, 512},
		{8, 16, 16},
		{12, 16, 16},
		{40, 4, 40},
		{640, 256, 768},
		{7, 1, 7},
		{7, 0, 7},
		{7, -4, 7},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, AlignUp(test.size, test.alignment), "AlignUp(%d, %d)", test.size, test.alignment)
	}
}

func TestAlignUpIsMultiple(t *testing.T) {
	for _, alignment := range []int{2, 4, 16, 64, 256} {
		for size := 0; size < 600; size++ {
			aligned := AlignUp(size, alignment)
			assert.Zero(t, aligned%alignment)
			assert.GreaterOrEqual(t, aligned, size)
			assert.Less(t, aligned-size, alignment)
		}
	}
}

func TestLayoutOffsets(t *testing.T) {
	layout := NewLayout(256)
	camera := AddOf[CameraBlock](layout, "CameraData")
	material := AddOf[MaterialBlock](layout, "Material")
	sun := AddOf[SunBlock](layout, "DirectionalLight")
	points := AddOf[PointLightsBlock](layout, "PointLights")
	spots := AddOf[SpotLightsBlock](layout, "SpotLights")

	assert.Equal(t, Block{Name: "CameraData", Binding: 0, Offset: 0, DataSize: 216, Size: 256}, camera)
	assert.Equal(t, Block{Name: "Material", Binding: 1, Offset: 256, DataSize: 8, Size: 256}, material)
	assert.Equal(t, Block{Name: "DirectionalLight", Binding: 2, Offset: 512, DataSize: 40, Size: 256}, sun)
	assert.Equal(t, Block{Name: "PointLights", Binding: 3, Offset: 768, DataSize: 512, Size: 512}, points)
	assert.Equal(t, Block{Name: "SpotLights", Binding: 4, Offset: 1280, DataSize: 640, Size: 768}, spots)

	assert.Equal(t, 2048, layout.Size())

	found, ok := layout.Block("PointLights")
	require.True(t, ok)
	assert.Equal(t, points, found)

	_, ok = layout.Block("Missing")
	assert.False(t, ok)
}

func TestLayoutSmallAlignment(t *testing.T) {
	layout := NewLayout(16)
	a := layout.Add("a", 8)
	b := layout.Add("b", 40)
	c := layout.Add("c", 1)

	assert.Equal(t, 0, a.Offset)
	assert.Equal(t, 16, b.Offset)
	assert.Equal(t, 64, c.Offset)
	assert.Equal(t, 80, layout.Size())
}

func TestLayoutEmpty(t *testing.T) {
	layout := NewLayout(256)
	assert.Zero(t, layout.Size())
	assert.Empty(t, layout.Blocks)
}

func TestBlockSizes(t *testing.T) {
	assert.EqualValues(t, 84, unsafe.Sizeof(AmbientBlock{}))
	assert.EqualValues(t, 160, unsafe.Sizeof(DiffuseBlock{}))
	assert.EqualValues(t, 256, unsafe.Sizeof(PhongBlock{}))
	assert.EqualValues(t, 216, unsafe.Sizeof(CameraBlock{}))
	assert.EqualValues(t, 8, unsafe.Sizeof(MaterialBlock{}))
	assert.EqualValues(t, 40, unsafe.Sizeof(SunBlock{}))
	assert.EqualValues(t, 64, unsafe.Sizeof(PointLight{}))
	assert.EqualValues(t, 80, unsafe.Sizeof(SpotLight{}))
	assert.EqualValues(t, 8*64, unsafe.Sizeof(PointLightsBlock{}))
	assert.EqualValues(t, 8*80, unsafe.Sizeof(SpotLightsBlock{}))
}

func TestBlockFieldOffsets(t *testing.T) {
	var camera CameraBlock
	assert.EqualValues(t, 192, unsafe.Offsetof(camera.Eye))
	assert.EqualValues(t, 208, unsafe.Offsetof(camera.NumPointLights))
	assert.EqualValues(t, 212, unsafe.Offsetof(camera.NumSpotLights))

	var diffuse DiffuseBlock
	assert.EqualValues(t, 140, unsafe.Offsetof(diffuse.AmbientIntensity))
	assert.EqualValues(t, 144, unsafe.Offsetof(diffuse.Direction))

	var spot SpotLight
	assert.EqualValues(t, 48, unsafe.Offsetof(spot.AmbientIntensity))
	assert.EqualValues(t, 68, unsafe.Offsetof(spot.Cutoff))
}

func TestStagingWrite(t *testing.T) {
	layout := NewLayout(16)
	material := AddOf[MaterialBlock](layout, "Material")
	sun := AddOf[SunBlock](layout, "Sun")

	staging := NewStaging(layout)
	require.Len(t, staging.Bytes(), layout.Size())

	require.NoError(t, Set(staging, material, &MaterialBlock{SpecularIntensity: 1, SpecularPower: 32}))
	require.NoError(t, Set(staging, sun, &SunBlock{
		Color:            m.Vec4{1, 1, 1, 1},
		Direction:        m.Vec4{1, 0, 0, 1},
		AmbientIntensity: 0.1,
		DiffuseIntensity: 0.25,
	}))

	data := staging.Bytes()
	gotMaterial := *(*MaterialBlock)(unsafe.Pointer(&data[material.Offset]))
	assert.Equal(t, MaterialBlock{SpecularIntensity: 1, SpecularPower: 32}, gotMaterial)

	gotSun := *(*SunBlock)(unsafe.Pointer(&data[sun.Offset]))
	assert.Equal(t, float32(0.25), gotSun.DiffuseIntensity)
	assert.Equal(t, m.Vec4{1, 0, 0, 1}, gotSun.Direction)

	// padding between blocks stays zero
	for _, b := range data[material.DataSize:sun.Offset] {
		assert.Zero(t, b)
	}
}

func TestStagingRejectsMismatch(t *testing.T) {
	layout := NewLayout(16)
	material := AddOf[MaterialBlock](layout, "Material")
	staging := NewStaging(layout)

	err := Set(staging, material, &SunBlock{})
	assert.Error(t, err)

	outside := Block{Name: "outside", Offset: 8, DataSize: 16}
	var value [16]byte
	assert.Error(t, staging.Write(outside, unsafe.Pointer(&value)))
}

func TestSetAcceptsEveryAddedBlock(t *testing.T) {
	layout := NewLayout(256)
	camera := AddOf[CameraBlock](layout, "CameraData")
	material := AddOf[MaterialBlock](layout, "Material")
	sun := AddOf[SunBlock](layout, "DirectionalLight")
	points := AddOf[PointLightsBlock](layout, "PointLights")
	spots := AddOf[SpotLightsBlock](layout, "SpotLights")

	staging := NewStaging(layout)
	assert.NoError(t, Set(staging, camera, &CameraBlock{NumPointLights: 2, NumSpotLights: 1}))
	assert.NoError(t, Set(staging, material, &MaterialBlock{SpecularPower: 32}))
	assert.NoError(t, Set(staging, sun, &SunBlock{DiffuseIntensity: 0.1}))
	assert.NoError(t, Set(staging, points, &PointLightsBlock{}))
	assert.NoError(t, Set(staging, spots, &SpotLightsBlock{}))

	last := layout.Blocks[len(layout.Blocks)-1]
	assert.Equal(t, spots, last)
	assert.LessOrEqual(t, last.Offset+last.DataSize, len(staging.Bytes()))
}
