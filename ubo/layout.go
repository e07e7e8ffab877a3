// Package ubo packs several uniform blocks into one buffer allocation,
// honoring the driver's uniform buffer offset alignment.
package ubo

import (
	"fmt"
	"unsafe"
)

// AlignUp rounds size up to the next multiple of alignment.
// An alignment of one or less leaves size unchanged.
func AlignUp(size, alignment int) int {
	if alignment <= 1 {
		return size
	}
	return (size + alignment - 1) / alignment * alignment
}

// Block is one uniform block inside a Layout.
type Block struct {
	Name string
	// Binding is the uniform buffer binding point, equal to the block index.
	Binding uint32
	// Offset from the start of the buffer, a multiple of the alignment.
	Offset int
	// DataSize is the unaligned size of the block data.
	DataSize int
	// Size is DataSize rounded up to the alignment.
	Size int
}

// Layout computes successive aligned offsets for blocks sharing one buffer.
type Layout struct {
	Alignment int
	Blocks    []Block
}

// NewLayout returns an empty layout for the given offset alignment.
func NewLayout(alignment int) *Layout {
	return &Layout{Alignment: alignment}
}

// Add appends a block of dataSize bytes and returns it.
func (layout *Layout) Add(name string, dataSize int) Block {
	block := Block{
		Name:     name,
		Binding:  uint32(len(layout.Blocks)),
		Offset:   layout.Size(),
		DataSize: dataSize,
		Size:     AlignUp(dataSize, layout.Alignment),
	}
	layout.Blocks = append(layout.Blocks, block)
	return block
}

// AddOf appends a block sized to hold a value of type T.
func AddOf[T any](layout *Layout, name string) Block {
	var zero T
	return layout.Add(name, int(unsafe.Sizeof(zero)))
}

// Size returns the total allocation size, the sum of aligned block sizes.
func (layout *Layout) Size() int {
	if len(layout.Blocks) == 0 {
		return 0
	}
	last := layout.Blocks[len(layout.Blocks)-1]
	return last.Offset + last.Size
}

// Block looks up a block by name.
func (layout *Layout) Block(name string) (Block, bool) {
	for _, block := range layout.Blocks {
		if block.Name == name {
			return block, true
		}
	}
	return Block{}, false
}

func (block Block) String() string {
	return fmt.Sprintf("%s@%d[%d/%d]", block.Name, block.Offset, block.DataSize, block.Size)
}
