package atlas

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"blockatlas/internal/config"
	"blockatlas/internal/descriptor"
	"blockatlas/internal/logging"
	"blockatlas/internal/paint"
	"blockatlas/internal/profiling"
	"blockatlas/internal/texture"
)

var (
	ErrTextureListMissing    = errors.New("texture list missing")
	ErrDescriptorListMissing = errors.New("descriptor list missing")
	ErrMissingTextures       = errors.New("textures missing")
	ErrTileSize              = errors.New("tile parameter out of range")
)

// Outcome tells how Create obtained the atlas.
type Outcome int

const (
	// Reused means the persisted atlas matched and was loaded as is.
	Reused Outcome = iota
	// RebuiltUpgrade means the persisted atlas was an older version and
	// was rebuilt.
	RebuiltUpgrade
	// Rebuilt means there was no usable persisted atlas.
	Rebuilt
)

func (o Outcome) String() string {
	switch o {
	case Reused:
		return "reused"
	case RebuiltUpgrade:
		return "rebuilt (upgrade)"
	case Rebuilt:
		return "rebuilt"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Create returns the atlas for cfg, reusing the persisted image when its
// size and version match the descriptor list and rebuilding it from the
// textures otherwise. A failed rebuild leaves the persisted files as they
// were.
func Create(cfg config.Build) (*Atlas, Outcome, error) {
	if cfg.B < config.MinTileParam || cfg.B > config.MaxTileParam {
		return nil, Rebuilt, fmt.Errorf("%w: %d", ErrTileSize, cfg.B)
	}
	log := logging.Logger()

	plan, err := loadPlan(cfg.DescriptorList)
	if err != nil {
		return nil, Rebuilt, err
	}
	version := plan.Slots()
	want := size(cfg.B, version)

	imgPath := ImagePath(cfg.ImageDir, cfg.B)
	onDisk := readVersion(VersionPath(cfg.ImageDir, cfg.B))
	outcome := Rebuilt

	img, err := readImage(imgPath)
	switch {
	case err != nil:
		log.Warn("block atlas not found or unreadable, building from textures", "path", imgPath, "err", err)
	case cfg.Force:
		log.Info("rebuilding block atlas on request", "path", imgPath)
	case img.Rect.Size() == want && onDisk == version:
		a := newAtlas(img, cfg.B, plan)
		a.finish()
		log.Info("block atlas reused", "path", imgPath, "version", version)
		return a, Reused, nil
	case onDisk < version && img.Rect.Size() == size(cfg.B, onDisk):
		outcome = RebuiltUpgrade
		log.Info("block atlas is of an older version, building a new one",
			"path", imgPath, "found", onDisk, "version", version)
	default:
		log.Warn("block atlas has incorrect size, building a new one",
			"path", imgPath, "size", img.Rect.Size(), "want", want, "found", onDisk, "version", version)
	}

	a, err := build(cfg, plan)
	if err != nil {
		return nil, outcome, err
	}

	stop := profiling.Track("atlas.WritePNG")
	err = writeImage(imgPath, a.Image())
	if err == nil {
		err = writeVersion(VersionPath(cfg.ImageDir, cfg.B), version)
	}
	stop()
	if err != nil {
		return nil, outcome, err
	}
	log.Info("block atlas written", "path", imgPath, "version", version, "size", want)

	a.finish()
	return a, outcome, nil
}

// Build draws a fresh atlas for cfg without touching the persisted files.
func Build(cfg config.Build) (*Atlas, error) {
	if cfg.B < config.MinTileParam || cfg.B > config.MaxTileParam {
		return nil, fmt.Errorf("%w: %d", ErrTileSize, cfg.B)
	}
	plan, err := loadPlan(cfg.DescriptorList)
	if err != nil {
		return nil, err
	}
	a, err := build(cfg, plan)
	if err != nil {
		return nil, err
	}
	a.finish()
	return a, nil
}

func loadPlan(path string) (*descriptor.Plan, error) {
	defer profiling.Track("atlas.Allocate")()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDescriptorListMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open descriptor list: %w", err)
	}
	defer f.Close()

	list, err := descriptor.Parse(f)
	if err != nil {
		return nil, err
	}
	plan := descriptor.Build(list)
	logging.Logger().Debug("descriptor list laid out", "path", path,
		"descriptors", len(list.Descriptors), "fields", list.FieldCount, "slots", plan.Slots())
	return plan, nil
}

func loadTextures(cfg config.Build) (*texture.Set, error) {
	defer profiling.Track("atlas.LoadTextures")()

	f, err := os.Open(cfg.TextureList)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTextureListMissing, cfg.TextureList)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open texture list: %w", err)
	}
	defer f.Close()

	entries, err := texture.ParseList(f, cfg.TextureDir)
	if err != nil {
		return nil, err
	}
	set, err := texture.NewLoader(cfg.TextureRoot, 2*cfg.B).Load(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingTextures, err)
	}
	return set, nil
}

func build(cfg config.Build, plan *descriptor.Plan) (*Atlas, error) {
	set, err := loadTextures(cfg)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(set); err != nil {
		logging.Logger().Error("descriptor list references missing textures", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrMissingTextures, err)
	}

	stop := profiling.Track("atlas.Draw")
	sz := size(cfg.B, plan.Slots())
	img := image.NewNRGBA(image.Rectangle{Max: sz})
	plan.Draw(paint.NewCanvas(img, cfg.B), set)
	stop()
	return newAtlas(img, cfg.B, plan), nil
}

// finish runs the alpha retouch and the opacity scan, which every path
// through Create ends with.
func (a *Atlas) finish() {
	func() { defer profiling.Track("atlas.Retouch")(); a.Retouch() }()
	func() { defer profiling.Track("atlas.Classify")(); a.Classify() }()
}
