package gfx

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestShaderKind(t *testing.T) {
	assert.Equal(t, "vertex", shaderKind(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shaderKind(gl.FRAGMENT_SHADER))
	assert.Equal(t, "0x8dd9", shaderKind(gl.GEOMETRY_SHADER))
}
