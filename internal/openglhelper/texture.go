package openglhelper

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Texture is a 2D texture or a cubemap.
type Texture struct {
	ID     uint32
	Target uint32 // GL_TEXTURE_2D or GL_TEXTURE_CUBE_MAP
}

// NewTexture2D uploads img with repeat wrapping and trilinear filtering.
func NewTexture2D(img *image.RGBA) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture: nil image")
	}
	bounds := img.Bounds()

	t := newTexture(gl.TEXTURE_2D)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(bounds.Dx()), int32(bounds.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// NewCubemap uploads six equally sized faces in +X, -X, +Y, -Y, +Z, -Z
// order with edge clamping.
func NewCubemap(faces [6]*image.RGBA) (*Texture, error) {
	for i, face := range faces {
		if face == nil {
			return nil, fmt.Errorf("cubemap face %d is nil", i)
		}
	}

	t := newTexture(gl.TEXTURE_CUBE_MAP)
	for i, face := range faces {
		bounds := face.Bounds()
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8,
			int32(bounds.Dx()), int32(bounds.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t, nil
}

func newTexture(target uint32) *Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(target, id)
	return &Texture{ID: id, Target: target}
}

// Bind binds the texture to texture unit unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
