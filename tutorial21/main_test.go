package main

import (
	"testing"

	m "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspectiveClipPlanes(t *testing.T) {
	projection := perspective(4.0 / 3.0)

	near := projection.Mul4x1(m.Vec4{0, 0, -0.1, 1})
	assert.InDelta(t, -1, near.Z()/near.W(), 1e-4)

	far := projection.Mul4x1(m.Vec4{0, 0, -100, 1})
	assert.InDelta(t, 1, far.Z()/far.W(), 1e-4)
}
