// Package asset loads textures and models from disk into plain Go values
// ready for upload to the GPU.
package asset

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// CubemapFaces is the number of faces of a cubemap, in +X, -X, +Y, -Y, +Z, -Z order.
const CubemapFaces = 6

// LoadImage decodes the image at path into tightly packed RGBA. With flipY
// the rows are reversed so the first row is the bottom of the image, as
// OpenGL expects for 2D textures.
func LoadImage(path string, flipY bool) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	src, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image %s (%s) is empty", path, format)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	if flipY {
		FlipVertical(rgba)
	}
	return rgba, nil
}

// FlipVertical reverses the rows of img in place.
func FlipVertical(img *image.RGBA) {
	height := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)

	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// LoadCubemap loads six cubemap faces. Faces whose size differs from the
// first one are rescaled to match, since every face of a cubemap must share
// one size.
func LoadCubemap(paths [CubemapFaces]string) ([CubemapFaces]*image.RGBA, error) {
	var faces [CubemapFaces]*image.RGBA

	for i, path := range paths {
		img, err := LoadImage(path, false)
		if err != nil {
			return faces, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		faces[i] = img
	}

	size := faces[0].Bounds()
	for i := 1; i < CubemapFaces; i++ {
		if faces[i].Bounds() == size {
			continue
		}
		scaled := image.NewRGBA(size)
		draw.ApproxBiLinear.Scale(scaled, size, faces[i], faces[i].Bounds(), draw.Src, nil)
		faces[i] = scaled
	}

	return faces, nil
}
