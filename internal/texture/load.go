package texture

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"blockatlas/internal/iso"
	"blockatlas/internal/logging"
)

// EmptyName is the logical name of the fully transparent tile.
const EmptyName = "/"

// Name converts a texture file name into the logical name descriptors use.
func Name(file string) string {
	return strings.TrimSuffix(file, ".png")
}

// Set maps logical names onto 2Bx2B tiles.
type Set struct {
	size  int
	tiles map[string]*image.NRGBA
}

// NewSet returns a set holding only the empty tile.
func NewSet(tileSize int) *Set {
	s := &Set{size: tileSize, tiles: make(map[string]*image.NRGBA)}
	s.tiles[EmptyName] = iso.NewTile(tileSize)
	return s
}

// Add registers img under name, replacing any earlier tile of that name.
func (s *Set) Add(name string, img *image.NRGBA) { s.tiles[name] = img }

// Lookup returns the tile registered under name.
func (s *Set) Lookup(name string) (*image.NRGBA, bool) {
	img, ok := s.tiles[name]
	return img, ok
}

// Empty returns the transparent tile.
func (s *Set) Empty() *image.NRGBA { return s.tiles[EmptyName] }

// TileSize is the edge of every tile in the set.
func (s *Set) TileSize() int { return s.size }

// Len is the number of registered tiles, the empty one included.
func (s *Set) Len() int { return len(s.tiles) }

// Names lists the registered names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.tiles))
	for n := range s.tiles {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// MissingFile is a texture that could not be read or decoded.
type MissingFile struct {
	Line int
	Path string
	Err  error
}

// MissingError collects every texture file a load could not use.
type MissingError struct {
	Files []MissingFile
}

func (e *MissingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d texture file(s) missing or invalid", len(e.Files))
	for _, f := range e.Files {
		fmt.Fprintf(&b, "\n[texture list] %d - %s", f.Line, f.Path)
	}
	return b.String()
}

// Loader decodes texture files below root and caches the decoded images,
// so a file listed twice is read once.
type Loader struct {
	root     string
	tileSize int

	mu    sync.RWMutex
	cache map[string]*image.NRGBA
}

// NewLoader creates a loader producing tiles of edge tileSize.
func NewLoader(root string, tileSize int) *Loader {
	return &Loader{
		root:     root,
		tileSize: tileSize,
		cache:    make(map[string]*image.NRGBA),
	}
}

// Path resolves the file of e against the loader root.
func (l *Loader) Path(e Entry) string {
	return filepath.Join(l.root, e.Dir, e.File)
}

// Decode reads and decodes path, returning the cached image on repeat calls.
func (l *Loader) Decode(path string) (*image.NRGBA, error) {
	l.mu.RLock()
	if img, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open texture: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode texture %s: %w", path, err)
	}
	img := iso.ToNRGBA(src)
	if img.Rect.Empty() {
		return nil, fmt.Errorf("texture %s is empty", path)
	}
	l.cache[path] = img
	return img, nil
}

// Load builds the tile set for entries. Every entry is attempted; if any
// file is unusable the returned error is a *MissingError naming all of
// them and the set is nil.
func (l *Loader) Load(entries []Entry) (*Set, error) {
	set := NewSet(l.tileSize)
	missing := &MissingError{}
	for _, e := range entries {
		path := l.Path(e)
		src, err := l.Decode(path)
		if err != nil {
			logging.Logger().Error("texture missing or invalid", "line", e.Line, "path", path, "err", err)
			missing.Files = append(missing.Files, MissingFile{Line: e.Line, Path: path, Err: err})
			continue
		}
		l.process(set, e, src)
	}
	if len(missing.Files) > 0 {
		return nil, missing
	}
	return set, nil
}

func (l *Loader) process(set *Set, e Entry, src *image.NRGBA) {
	size := l.tileSize
	cut := iso.Cutoffs16(size)
	tile := iso.NewTile(size)
	side := min(src.Rect.Dx(), src.Rect.Dy())
	iso.Resize(src, image.Rect(0, 0, side, side), tile, tile.Bounds())

	name := Name(e.File)
	for _, d := range e.Directives {
		switch d.Name {
		case "RENAME":
			name = Name(d.Args[0])
		case "DARKEN":
			iso.DarkenRect(tile, tile.Bounds(), iso.Shade{float(d.Args[0]), float(d.Args[1]), float(d.Args[2])})
		case "OFFSET":
			iso.Offset(tile, sixteenths(cut, d.Args[0]), sixteenths(cut, d.Args[1]))
		case "OFFSETTILE":
			iso.TileOffset(tile, sixteenths(cut, d.Args[0]), sixteenths(cut, d.Args[1]))
		case "EXPAND":
			// Insets are tile cutoffs taken out of the source image as is.
			ix, iy := cut[abs(integer(d.Args[0]))%17], cut[abs(integer(d.Args[1]))%17]
			sr := image.Rect(ix, iy, src.Rect.Dx()-ix, src.Rect.Dy()-iy)
			if sr.Empty() {
				logging.Logger().Warn("expand leaves nothing of the texture", "line", e.Line, "file", e.File)
				continue
			}
			iso.Resize(src, sr, tile, tile.Bounds())
		case "CROP":
			t, r := cut[abs(integer(d.Args[0]))%17], cut[abs(integer(d.Args[1]))%17]
			b, lft := cut[abs(integer(d.Args[2]))%17], cut[abs(integer(d.Args[3]))%17]
			iso.Crop(tile, image.Rect(lft, t, size-r, size-b))
		case "FLIPX":
			iso.FlipX(tile, tile.Bounds())
		case "CHEST":
			addAll(set, name, chestTiles(src, size), e)
		case "LCHEST":
			addAll(set, name, largeChestTiles(src, size), e)
		}
	}
	set.Add(name, tile)
}

func addAll(set *Set, name string, tiles []*image.NRGBA, e Entry) {
	if tiles == nil {
		logging.Logger().Warn("chest sheet too small to split", "line", e.Line, "file", e.File)
		return
	}
	for i, t := range tiles {
		set.Add(SubName(name, i), t)
	}
}

// SubName is the logical name of the i-th tile split off name.
func SubName(name string, i int) string {
	return name + "_" + strconv.Itoa(i)
}

// sixteenths converts an offset in sixteenths of a tile into pixels,
// keeping its sign.
func sixteenths(cut [17]int, s string) int {
	v := integer(s)
	if v < 0 {
		return -cut[(-v)%17]
	}
	return cut[v%17]
}

// integer parses s, treating garbage as 0.
func integer(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func float(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
