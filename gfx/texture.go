package gfx

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/gltutorials/pixels"
)

type Texture struct {
	Path string
	RGBA *image.RGBA
	ID   uint32
}

// LoadTexture decodes the image at path and uploads it to a 2D texture.
func LoadTexture(path string) (*Texture, error) {
	rgba, err := pixels.Load(path)
	if err != nil {
		return nil, err
	}

	texture := &Texture{
		Path: path,
		RGBA: rgba,
	}
	texture.upload()

	return texture, nil
}

func (texture *Texture) upload() {
	if texture.ID != 0 {
		texture.delete()
	}

	gl.GenTextures(1, &texture.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(texture.RGBA.Rect.Dx()),
		int32(texture.RGBA.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(texture.RGBA.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind binds the texture to the given texture unit.
func (texture *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}

func (texture *Texture) delete() {
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

func (texture *Texture) Destroy() {
	texture.delete()
	texture.RGBA = nil
	texture.Path = ""
}
