// Package pixels decodes texture images into tightly packed RGBA.
package pixels

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load reads the whole file into memory and decodes it.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}

	rgba, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode texture %q: %w", path, err)
	}
	return rgba, nil
}

// Decode decodes any registered image format and converts it to RGBA
// with the origin at (0, 0).
func Decode(r io.Reader) (*image.RGBA, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	size := m.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil, fmt.Errorf("empty image %v", m.Bounds())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported stride")
	}
	draw.Draw(rgba, rgba.Bounds(), m, m.Bounds().Min, draw.Src)

	return rgba, nil
}
