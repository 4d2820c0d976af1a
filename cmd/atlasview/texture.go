package main

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// uploadAtlas copies img into a new nearest-filtered texture. The atlas is
// non-premultiplied RGBA, which is the layout GL expects for gl.RGBA.
func uploadAtlas(img *image.NRGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	if img.Stride != 4*img.Rect.Dx() {
		tight := image.NewNRGBA(image.Rectangle{Max: img.Rect.Size()})
		for y := 0; y < img.Rect.Dy(); y++ {
			copy(tight.Pix[y*tight.Stride:(y+1)*tight.Stride], img.Pix[y*img.Stride:])
		}
		img = tight
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Dx()),
		int32(img.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
