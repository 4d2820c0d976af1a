package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, img.Bounds(), c)
	return img
}

var white = color.NRGBA{255, 255, 255, 255}

func TestParseList(t *testing.T) {
	list := `# comment
stone.png
$ textures/other
/ wool.png DARKEN 0.5 0.5 1 RENAME wool_blue   # trailing comment
/ chest.png CHEST
/ broken.png CROP 1 2

dirt.png extra fields
`
	entries, err := ParseList(strings.NewReader(list), "textures/blocks")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4: %+v", len(entries), entries)
	}
	if e := entries[0]; e.File != "stone.png" || e.Dir != "textures/blocks" || e.Line != 2 {
		t.Errorf("first entry %+v", e)
	}
	wool := entries[1]
	if wool.Dir != "textures/other" || len(wool.Directives) != 2 {
		t.Fatalf("wool entry %+v", wool)
	}
	if d := wool.Directives[0]; d.Name != "DARKEN" || len(d.Args) != 3 {
		t.Errorf("darken directive %+v", d)
	}
	if d := wool.Directives[1]; d.Name != "RENAME" || d.Args[0] != "wool_blue" {
		t.Errorf("rename directive %+v", d)
	}
	if got := entries[3].Directives; len(got) != 0 {
		t.Errorf("CROP with two arguments should be dropped, got %+v", got)
	}
}

func TestLoadResizesAndRenames(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "blocks", "wide.png"), uniform(32, 16, white))
	writePNG(t, filepath.Join(root, "blocks", "wool.png"), uniform(16, 16, white))

	entries := []Entry{
		{Line: 1, Dir: "blocks", File: "wide.png"},
		{Line: 2, Dir: "blocks", File: "wool.png", Directives: []Directive{
			{Name: "DARKEN", Args: []string{"0.5", "0.5", "1"}},
			{Name: "RENAME", Args: []string{"wool_blue.png"}},
		}},
	}
	set, err := NewLoader(root, 12).Load(entries)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	wide, ok := set.Lookup("wide")
	if !ok {
		t.Fatalf("wide not registered; have %v", set.Names())
	}
	if wide.Rect.Dx() != 12 || wide.Rect.Dy() != 12 {
		t.Errorf("tile is %v, want 12x12", wide.Rect)
	}
	if _, ok := set.Lookup("wool"); ok {
		t.Errorf("renamed texture still registered under its file name")
	}
	blue, ok := set.Lookup("wool_blue")
	if !ok {
		t.Fatalf("wool_blue not registered")
	}
	if c := blue.NRGBAAt(5, 5); c.R != 127 || c.B != 255 || c.A != 255 {
		t.Errorf("darkened pixel %v", c)
	}
	if e := set.Empty(); e == nil || e.NRGBAAt(0, 0).A != 0 {
		t.Errorf("empty tile missing or not transparent")
	}
}

func TestLoadReportsEveryMissingFile(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "ok.png"), uniform(16, 16, white))
	if err := os.WriteFile(filepath.Join(root, "garbage.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries := []Entry{
		{Line: 1, File: "ok.png"},
		{Line: 2, File: "nope.png"},
		{Line: 3, File: "garbage.png"},
	}
	set, err := NewLoader(root, 8).Load(entries)
	if set != nil {
		t.Fatalf("set returned despite missing files")
	}
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("error %v is not a *MissingError", err)
	}
	if len(missing.Files) != 2 || missing.Files[0].Line != 2 || missing.Files[1].Line != 3 {
		t.Fatalf("missing files %+v", missing.Files)
	}
}

func TestChestSplitsIntoThreeTiles(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	yellow := color.NRGBA{255, 255, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}

	sheet := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fill(sheet, image.Rect(14, 0, 28, 14), red)
	fill(sheet, image.Rect(14, 14, 28, 18), blue)
	fill(sheet, image.Rect(14, 33, 28, 43), blue)
	fill(sheet, image.Rect(1, 1, 3, 5), yellow)
	fill(sheet, image.Rect(28, 14, 42, 18), green)
	fill(sheet, image.Rect(28, 33, 42, 43), green)

	root := t.TempDir()
	writePNG(t, filepath.Join(root, "chest.png"), sheet)

	// B=7 gives 14 pixel tiles, the native chest face size.
	set, err := NewLoader(root, 14).Load([]Entry{{Line: 1, File: "chest.png", Directives: []Directive{{Name: "CHEST"}}}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, ok := set.Lookup(SubName("chest", i)); !ok {
			t.Fatalf("chest_%d missing; have %v", i, set.Names())
		}
	}
	if _, ok := set.Lookup("chest"); !ok {
		t.Errorf("the sheet itself should stay registered")
	}
	top, _ := set.Lookup("chest_0")
	front, _ := set.Lookup("chest_1")
	side, _ := set.Lookup("chest_2")
	if c := top.NRGBAAt(7, 7); c != red {
		t.Errorf("top centre %v, want red", c)
	}
	if c := front.NRGBAAt(7, 10); c != blue {
		t.Errorf("front body %v, want blue", c)
	}
	if c := front.NRGBAAt(6, 3); c != yellow {
		t.Errorf("front latch %v, want yellow", c)
	}
	if c := side.NRGBAAt(3, 2); c != green {
		t.Errorf("side %v, want green", c)
	}
}

func TestDecodeCaches(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "a.png")
	writePNG(t, p, uniform(4, 4, white))
	l := NewLoader(root, 4)
	a, err := l.Decode(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(p); err != nil {
		t.Fatal(err)
	}
	b, err := l.Decode(p)
	if err != nil || a != b {
		t.Fatalf("second decode did not come from the cache: %v", err)
	}
}

func TestExpandInsetsAreTileCutoffs(t *testing.T) {
	root := t.TempDir()
	blue := color.NRGBA{0, 0, 255, 255}
	framed := uniform(32, 32, blue)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if x < 4 || y < 4 || x >= 28 || y >= 28 {
				framed.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			}
		}
	}
	writePNG(t, filepath.Join(root, "framed.png"), framed)

	entries := []Entry{{Line: 1, File: "framed.png", Directives: []Directive{
		{Name: "EXPAND", Args: []string{"4", "4"}},
	}}}
	set, err := NewLoader(root, 8).Load(entries)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tile, _ := set.Lookup("framed")
	// A 4/16 inset on an 8 pixel tile is 2 source pixels, so the frame
	// still bleeds into the corner.
	if c := tile.NRGBAAt(0, 0); c.R == 0 {
		t.Errorf("corner %v carries none of the frame", c)
	}
	if c := tile.NRGBAAt(4, 4); c != blue {
		t.Errorf("centre %v, want %v", c, blue)
	}
}
