package iso

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewTile allocates a fully transparent square image.
func NewTile(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// ToNRGBA converts any decoded image into a zero-based NRGBA copy.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Blit copies r of src into dst with its top-left corner at at,
// replacing the destination pixels.
func Blit(src *image.NRGBA, r image.Rectangle, dst *image.NRGBA, at image.Point) {
	copyRect(src, r, dst, at, func(_, s color.NRGBA) color.NRGBA { return s })
}

// AlphaBlit composites r of src over dst with its top-left corner at at.
func AlphaBlit(src *image.NRGBA, r image.Rectangle, dst *image.NRGBA, at image.Point) {
	copyRect(src, r, dst, at, Blend)
}

func copyRect(src *image.NRGBA, r image.Rectangle, dst *image.NRGBA, at image.Point, op func(d, s color.NRGBA) color.NRGBA) {
	origin := r.Min
	r = r.Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := image.Pt(at.X+x-origin.X, at.Y+y-origin.Y)
			if !p.In(dst.Rect) {
				continue
			}
			dst.SetNRGBA(p.X, p.Y, op(dst.NRGBAAt(p.X, p.Y), src.NRGBAAt(x, y)))
		}
	}
}

// Resize scales sr of src into dr of dst with bilinear filtering.
// Empty rectangles are ignored.
func Resize(src image.Image, sr image.Rectangle, dst *image.NRGBA, dr image.Rectangle) {
	if sr.Empty() || dr.Empty() {
		return
	}
	draw.BiLinear.Scale(dst, dr, src, sr, draw.Src, nil)
}

// DarkenRect applies s to every pixel of r.
func DarkenRect(img *image.NRGBA, r image.Rectangle, s Shade) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, Darken(img.NRGBAAt(x, y), s))
		}
	}
}

// FlipX mirrors r horizontally in place.
func FlipX(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for l, h := r.Min.X, r.Max.X-1; l < h; l, h = l+1, h-1 {
			a, b := img.NRGBAAt(l, y), img.NRGBAAt(h, y)
			img.SetNRGBA(l, y, b)
			img.SetNRGBA(h, y, a)
		}
	}
}

// Crop clears every pixel of img outside keep.
func Crop(img *image.NRGBA, keep image.Rectangle) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !image.Pt(x, y).In(keep) {
				img.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
}

// Offset moves the content of img by (dx, dy). Pixels shifted past the
// edge are lost and vacated pixels become transparent.
func Offset(img *image.NRGBA, dx, dy int) {
	shift(img, dx, dy, false)
}

// TileOffset moves the content of img by (dx, dy), wrapping around the
// edges.
func TileOffset(img *image.NRGBA, dx, dy int) {
	shift(img, dx, dy, true)
}

func shift(img *image.NRGBA, dx, dy int, wrap bool) {
	if dx == 0 && dy == 0 {
		return
	}
	b := img.Rect
	w, h := b.Dx(), b.Dy()
	src := image.NewNRGBA(b)
	copy(src.Pix, img.Pix)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x-dx, y-dy
			if wrap {
				sx, sy = mod(sx, w), mod(sy, h)
			}
			var c color.NRGBA
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				c = src.NRGBAAt(b.Min.X+sx, b.Min.Y+sy)
			}
			img.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
		}
	}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// Opaque reports whether every pixel the iterator visits has alpha 255.
func Opaque(img *image.NRGBA, it Iterator) bool {
	ok := true
	Walk(it, func(p Point) {
		if img.NRGBAAt(p.X, p.Y).A != 255 {
			ok = false
		}
	})
	return ok
}

// Transparent reports whether every pixel the iterator visits has alpha 0.
func Transparent(img *image.NRGBA, it Iterator) bool {
	ok := true
	Walk(it, func(p Point) {
		if img.NRGBAAt(p.X, p.Y).A != 0 {
			ok = false
		}
	})
	return ok
}
