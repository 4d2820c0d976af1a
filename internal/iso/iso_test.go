package iso

import (
	"image"
	"image/color"
	"testing"
)

func TestFaceIterVisitsDistinctPixels(t *testing.T) {
	for size := 1; size <= 12; size++ {
		for _, skew := range []int{-1, 0, 1} {
			pts := Points(NewFaceIter(3, 7, skew, size))
			if len(pts) != size*size {
				t.Fatalf("size %d skew %d: got %d steps, want %d", size, skew, len(pts), size*size)
			}
			seen := map[image.Point]bool{}
			for i, p := range pts {
				if p.Pos != i {
					t.Fatalf("size %d skew %d: step %d reports pos %d", size, skew, i, p.Pos)
				}
				seen[image.Pt(p.X, p.Y)] = true
			}
			if len(seen) != size*size {
				t.Errorf("size %d skew %d: %d distinct pixels, want %d", size, skew, len(seen), size*size)
			}
		}
	}
}

func TestFaceIterSkew(t *testing.T) {
	// W face of B=2 starts at (0, 2) and drops by one every two columns.
	pts := Points(NewFaceIter(0, 2, 1, 4))
	tops := []image.Point{}
	for _, p := range pts {
		if p.Row(4) == 0 {
			tops = append(tops, image.Pt(p.X, p.Y))
		}
	}
	want := []image.Point{{0, 2}, {1, 3}, {2, 3}, {3, 4}}
	for i := range want {
		if tops[i] != want[i] {
			t.Fatalf("column %d starts at %v, want %v", i, tops[i], want[i])
		}
	}
}

func TestRotatedIterIsBijection(t *testing.T) {
	for size := 1; size <= 10; size++ {
		for rot := 0; rot < 4; rot++ {
			for _, flip := range []bool{false, true} {
				seen := map[image.Point]bool{}
				n := 0
				Walk(NewRotatedIter(5, 9, rot, size, flip), func(p Point) {
					n++
					if p.X < 5 || p.X >= 5+size || p.Y < 9 || p.Y >= 9+size {
						t.Fatalf("size %d rot %d flip %v: (%d,%d) outside the square", size, rot, flip, p.X, p.Y)
					}
					seen[image.Pt(p.X, p.Y)] = true
				})
				if n != size*size || len(seen) != size*size {
					t.Errorf("size %d rot %d flip %v: %d steps, %d distinct", size, rot, flip, n, len(seen))
				}
			}
		}
	}
}

func TestRotatedIterOrder(t *testing.T) {
	first := func(rot int, flip bool) []image.Point {
		var out []image.Point
		for _, p := range Points(NewRotatedIter(0, 0, rot, 3, flip))[:4] {
			out = append(out, image.Pt(p.X, p.Y))
		}
		return out
	}
	cases := []struct {
		rot  int
		flip bool
		want []image.Point
	}{
		{0, false, []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}}},
		{0, true, []image.Point{{2, 0}, {2, 1}, {2, 2}, {1, 0}}},
		{1, false, []image.Point{{2, 0}, {1, 0}, {0, 0}, {2, 1}}},
		{2, false, []image.Point{{2, 2}, {2, 1}, {2, 0}, {1, 2}}},
		{3, false, []image.Point{{0, 2}, {1, 2}, {2, 2}, {0, 1}}},
	}
	for _, c := range cases {
		got := first(c.rot, c.flip)
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("rot %d flip %v: step %d = %v, want %v", c.rot, c.flip, i, got[i], c.want[i])
			}
		}
	}
}

func TestTopFaceIterCoversRhombus(t *testing.T) {
	for B := 2; B <= 9; B++ {
		size := 2 * B
		seen := map[image.Point]bool{}
		n := 0
		Walk(NewTopFaceIter(2*B-1, 0, size), func(p Point) {
			n++
			if p.X < 0 || p.X >= 4*B || p.Y < 0 || p.Y >= 2*B {
				t.Fatalf("B=%d: (%d,%d) outside the top half of the slot", B, p.X, p.Y)
			}
			seen[image.Pt(p.X, p.Y)] = true
		})
		if n != size*size {
			t.Errorf("B=%d: %d steps, want %d", B, n, size*size)
		}
		if len(seen) != size*size {
			t.Errorf("B=%d: %d distinct pixels, want %d", B, len(seen), size*size)
		}
	}
}

func TestEmptyIterators(t *testing.T) {
	for _, it := range []Iterator{NewFaceIter(0, 0, 1, 0), NewRotatedIter(0, 0, 1, 0, true), NewTopFaceIter(0, 0, 0)} {
		if !it.Done() {
			t.Errorf("%T with size 0 is not done", it)
		}
	}
}

func TestDeinterpolate(t *testing.T) {
	cases := []struct{ target, src, dst, want int }{
		{0, 16, 12, 0},
		{4, 16, 12, 3},
		{8, 16, 12, 6},
		{3, 16, 12, 3},
		{16, 16, 12, 11},
		{4, 16, 4, 1},
		{3, 16, 4, 1},
	}
	for _, c := range cases {
		if got := Deinterpolate(c.target, c.src, c.dst); got != c.want {
			t.Errorf("Deinterpolate(%d, %d, %d) = %d, want %d", c.target, c.src, c.dst, got, c.want)
		}
	}
	cut := Cutoffs16(12)
	for i := 1; i < len(cut); i++ {
		if cut[i] < cut[i-1] {
			t.Fatalf("cutoffs not monotonic: %v", cut)
		}
	}
}

func TestDarkenKeepsAlpha(t *testing.T) {
	got := Darken(color.NRGBA{200, 100, 50, 77}, Uniform(0.9))
	want := color.NRGBA{180, 90, 45, 77}
	if got != want {
		t.Fatalf("Darken = %v, want %v", got, want)
	}
	if got := Darken(color.NRGBA{200, 100, 50, 77}, Shade{1, 0.5, 0}); got != (color.NRGBA{200, 50, 0, 77}) {
		t.Fatalf("per-channel Darken = %v", got)
	}
}

func TestBlend(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	clear := color.NRGBA{}
	if got := Blend(red, clear); got != red {
		t.Errorf("transparent source changed dst: %v", got)
	}
	if got := Blend(red, blue); got != blue {
		t.Errorf("opaque source: %v, want %v", got, blue)
	}
	half := color.NRGBA{0, 255, 0, 128}
	if got := Blend(clear, half); got != half {
		t.Errorf("onto transparent: %v, want %v", got, half)
	}
	got := Blend(color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 0, 0, 128})
	if got.A != 255 || got.R != 128 {
		t.Errorf("half red over black = %v, want R=128 A=255", got)
	}
}

func TestOffsetAndTileOffset(t *testing.T) {
	mark := color.NRGBA{1, 2, 3, 255}
	img := NewTile(4)
	img.SetNRGBA(3, 0, mark)
	Offset(img, 1, 1)
	if img.NRGBAAt(0, 1) == mark || img.NRGBAAt(3, 0).A != 0 {
		t.Fatalf("pixel pushed past the edge should be dropped")
	}

	img = NewTile(4)
	img.SetNRGBA(3, 0, mark)
	TileOffset(img, 1, 1)
	if img.NRGBAAt(0, 1) != mark {
		t.Fatalf("tile offset should wrap to (0,1)")
	}
}

func TestCropAndFlip(t *testing.T) {
	img := NewTile(4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	FlipX(img, img.Bounds())
	if img.NRGBAAt(0, 2).R != 3 {
		t.Fatalf("FlipX: left column holds %v", img.NRGBAAt(0, 2))
	}
	Crop(img, image.Rect(1, 1, 3, 3))
	if img.NRGBAAt(0, 0).A != 0 || img.NRGBAAt(2, 2).A != 255 {
		t.Fatalf("Crop kept the wrong pixels")
	}
}

func TestResizeUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	dst := NewTile(8)
	Resize(src, src.Bounds(), dst, dst.Bounds())
	if c := dst.NRGBAAt(4, 4); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("uniform upscale gave %v", c)
	}
}

func TestBlitClippedSourceKeepsPlacement(t *testing.T) {
	src := NewTile(4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	dst := NewTile(8)
	Blit(src, image.Rect(-2, -2, 2, 2), dst, image.Pt(1, 1))
	if c := dst.NRGBAAt(3, 3); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Fatalf("source origin landed elsewhere: (3,3) holds %v", c)
	}
	if c := dst.NRGBAAt(4, 4); c != (color.NRGBA{1, 1, 0, 255}) {
		t.Fatalf("(4,4) holds %v", c)
	}
	for _, p := range []image.Point{{1, 1}, {2, 2}, {5, 5}} {
		if dst.NRGBAAt(p.X, p.Y).A != 0 {
			t.Errorf("%v painted outside the copied region", p)
		}
	}
}
