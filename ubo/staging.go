package ubo

import (
	"fmt"
	"unsafe"
)

// Staging is a CPU side copy of a buffer described by a Layout.
// Blocks are written into it and the whole range is uploaded at once.
type Staging struct {
	Layout *Layout
	data   []byte
}

// NewStaging allocates a zeroed staging buffer for layout.
func NewStaging(layout *Layout) *Staging {
	return &Staging{
		Layout: layout,
		data:   make([]byte, layout.Size()),
	}
}

// Bytes returns the whole staging buffer.
func (staging *Staging) Bytes() []byte { return staging.data }

// Write copies block.DataSize bytes from src into the block's range.
func (staging *Staging) Write(block Block, src unsafe.Pointer) error {
	if block.Offset < 0 || block.Offset+block.DataSize > len(staging.data) {
		return fmt.Errorf("block %v outside of buffer of %d bytes", block, len(staging.data))
	}
	if block.DataSize == 0 {
		return nil
	}
	copy(staging.data[block.Offset:block.Offset+block.DataSize], unsafe.Slice((*byte)(src), block.DataSize))
	return nil
}

// Set copies value into block. The size of T must match block.DataSize.
func Set[T any](staging *Staging, block Block, value *T) error {
	if size := int(unsafe.Sizeof(*value)); size != block.DataSize {
		return fmt.Errorf("block %v holds %d bytes, got %T of %d bytes", block, block.DataSize, *value, size)
	}
	return staging.Write(block, unsafe.Pointer(value))
}
