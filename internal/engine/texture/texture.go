package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Options control how an image is uploaded.
type Options struct {
	FlipY   bool // Store the first image row at v = 1
	Mipmaps bool
	Repeat  bool // Wrap instead of clamping to the edge
}

// DefaultOptions matches how the hero images are sampled: flipped so UV
// (0, 0) is the bottom-left of the picture, mipmapped, clamped.
func DefaultOptions() Options {
	return Options{FlipY: true, Mipmaps: true}
}

// Texture is a 2D OpenGL texture.
type Texture struct {
	id     uint32
	width  int
	height int
}

// Upload creates a texture from img. Must be called on the GL thread.
func Upload(img *image.RGBA, opts Options) *Texture {
	img = ToRGBA(img)
	if opts.FlipY {
		img = FlipVertical(img)
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()

	t := &Texture{width: w, height: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	minFilter := int32(gl.LINEAR)
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// ID returns the OpenGL texture ID.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Destroy releases the texture.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
