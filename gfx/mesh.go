package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/gltutorials/mesh"
)

// Attribute locations used by every tutorial shader.
const (
	PositionLocation = 0
	TexCoordLocation = 1
	NormalLocation   = 2
)

// Mesh holds the GPU buffers of an uploaded mesh.
type Mesh struct {
	VAO uint32
	VBO uint32
	IBO uint32

	Mode         uint32
	VertexCount  int32
	ElementCount int32
}

// UploadMesh uploads the interleaved vertices and indices of data.
// Without indices the mesh is drawn as an array.
func UploadMesh(data mesh.Data, mode uint32) *Mesh {
	m := &Mesh{
		Mode:         mode,
		VertexCount:  int32(len(data.Vertices)),
		ElementCount: int32(len(data.Indices)),
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*int(mesh.VertexBytes), gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	attrib(PositionLocation, 3, mesh.VertexBytes, mesh.PositionOffset)
	attrib(TexCoordLocation, 2, mesh.VertexBytes, mesh.TexCoordOffset)
	attrib(NormalLocation, 3, mesh.VertexBytes, mesh.NormalOffset)

	if len(data.Indices) > 0 {
		gl.GenBuffers(1, &m.IBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 2*len(data.Indices), gl.Ptr(data.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m
}

// UploadPositions uploads only vertex positions, tightly packed.
func UploadPositions(data mesh.Data, mode uint32) *Mesh {
	positions := data.Positions()
	m := &Mesh{
		Mode:        mode,
		VertexCount: int32(len(positions)),
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*3*4, gl.Ptr(positions), gl.STATIC_DRAW)
	attrib(PositionLocation, 3, 3*4, 0)

	gl.BindVertexArray(0)
	return m
}

func attrib(location uint32, size, stride int32, offset int) {
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointer(location, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.IBO != 0 {
		gl.DrawElements(m.Mode, m.ElementCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(m.Mode, 0, m.VertexCount)
	}
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	if m.IBO != 0 {
		gl.DeleteBuffers(1, &m.IBO)
	}
	*m = Mesh{}
}
