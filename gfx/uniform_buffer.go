package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/gltutorials/ubo"
)

// UniformAlignment returns the driver's UNIFORM_BUFFER_OFFSET_ALIGNMENT.
func UniformAlignment() int {
	var alignment int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &alignment)
	return int(alignment)
}

// UniformBuffer is a single GL buffer holding every block of a Layout.
// Blocks are written into the CPU staging copy and uploaded together.
type UniformBuffer struct {
	ID uint32
	*ubo.Staging
}

// NewUniformBuffer allocates a dynamic uniform buffer for layout.
func NewUniformBuffer(layout *ubo.Layout) *UniformBuffer {
	buffer := &UniformBuffer{
		Staging: ubo.NewStaging(layout),
	}

	gl.GenBuffers(1, &buffer.ID)
	gl.BindBuffer(gl.UNIFORM_BUFFER, buffer.ID)
	gl.BufferData(gl.UNIFORM_BUFFER, layout.Size(), nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	return buffer
}

// Upload copies the staging bytes to the GPU.
func (buffer *UniformBuffer) Upload() {
	data := buffer.Bytes()
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, buffer.ID)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Bind binds the range of every block to its binding point.
func (buffer *UniformBuffer) Bind() {
	for _, block := range buffer.Layout.Blocks {
		gl.BindBufferRange(gl.UNIFORM_BUFFER, block.Binding, buffer.ID, block.Offset, block.Size)
	}
}

func (buffer *UniformBuffer) Delete() {
	gl.DeleteBuffers(1, &buffer.ID)
	buffer.ID = 0
}
