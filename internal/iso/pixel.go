package iso

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Shade holds per-channel multipliers applied to R, G and B.
type Shade = mgl64.Vec3

// Uniform returns a shade applying f to every colour channel.
func Uniform(f float64) Shade { return Shade{f, f, f} }

// Fixed lighting of the cube faces.
var (
	ShadeW = Uniform(0.9)
	ShadeS = Uniform(0.8)
	ShadeU = Uniform(1.0)
)

// Darken multiplies the colour channels of c by s, truncating toward zero.
// Alpha is left untouched.
func Darken(c color.NRGBA, s Shade) color.NRGBA {
	return color.NRGBA{
		R: scale(c.R, s[0]),
		G: scale(c.G, s[1]),
		B: scale(c.B, s[2]),
		A: c.A,
	}
}

func scale(v uint8, f float64) uint8 {
	x := float64(v) * f
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}

// Blend composites src over dst (source-over, straight alpha).
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 0 {
		return dst
	}
	if dst.A == 0 || src.A == 255 {
		return src
	}
	sa := int(src.A)
	da := int(dst.A) * (255 - sa) / 255
	outA := sa + da
	if outA == 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		return uint8((int(s)*sa + int(d)*da) / outA)
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(outA),
	}
}

// Interpolate maps x in [0, xrange) onto [0, yrange).
func Interpolate(x, xrange, yrange int) int {
	return x * yrange / xrange
}

// Deinterpolate returns the first index in [0, destRange) whose
// interpolated position in srcRange reaches target, or destRange-1 if none
// does.
func Deinterpolate(target, srcRange, destRange int) int {
	for i := 0; i < destRange; i++ {
		if Interpolate(i, destRange, srcRange) >= target {
			return i
		}
	}
	return destRange - 1
}

// Cutoffs16 maps each sixteenth 0..16 of a tile onto a pixel count of the
// given tile size.
func Cutoffs16(tileSize int) [17]int {
	var c [17]int
	for i := range c {
		c[i] = Deinterpolate(i, 16, tileSize)
	}
	return c
}
