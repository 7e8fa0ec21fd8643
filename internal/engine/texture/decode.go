// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Decode decodes an encoded image and returns it as tightly packed RGBA with
// its origin at (0, 0). The format is sniffed from the data.
func Decode(data []byte) (*image.RGBA, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return ToRGBA(img), format, nil
}

// ToRGBA converts any image to RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with its rows in reverse order. OpenGL
// reads texel rows bottom-up, image files store them top-down.
func FlipVertical(img *image.RGBA) *image.RGBA {
	h := img.Rect.Dy()
	out := image.NewRGBA(img.Rect)
	rowLen := 4 * img.Rect.Dx()
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := out.Pix[(h-1-y)*out.Stride : (h-1-y)*out.Stride+rowLen]
		copy(dst, src)
	}
	return out
}

// Placeholder returns a size x size magenta/grey checkerboard with cells of
// cell pixels, shown in place of textures that failed to load.
func Placeholder(size, cell int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cell < 1 {
		cell = 1
	}
	a := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	b := color.RGBA{R: 64, G: 64, B: 64, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
