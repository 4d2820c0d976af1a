package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strconv"

	"blockatlas/internal/atlas"
	"blockatlas/internal/config"
	"blockatlas/internal/logging"
	"blockatlas/internal/profiling"

	"github.com/xlab/closer"
)

const usage = `usage: blockatlas [flags] <command> [args]

commands:
  build                  build or reuse blocks-<B>.png
  lookup <id> <state>    print the slot of a block and its flags
  sheet <out.png>        write a contact sheet with slot numbers

flags:
`

var errUsage = errors.New("bad usage")

func main() {
	b := flag.Int("B", config.DefaultTileParam, "tile parameter; block images are 4B pixels square")
	imgDir := flag.String("img", ".", "directory of blocks-<B>.png and blocks-<B>.version")
	textures := flag.String("textures", "blocktextures.list", "texture list")
	descriptors := flag.String("descriptors", "blockdescriptor.list", "block descriptor list")
	root := flag.String("root", ".", "directory texture directories are relative to")
	texDir := flag.String("texdir", "textures/blocks", "texture directory before the first '$' line")
	force := flag.Bool("force", false, "rebuild even if the persisted atlas is current")
	verbose := flag.Bool("v", false, "log every descriptor")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logging.SetLogger(logging.NewText(os.Stderr, *verbose))
	config.SetTileParam(*b)
	config.SetImageDir(*imgDir)
	config.SetTextureList(*textures)
	config.SetDescriptorList(*descriptors)
	config.SetTextureRoot(*root)
	config.SetTextureDir(*texDir)
	config.SetForce(*force)

	closer.Bind(func() {
		if top := profiling.TopN(8); top != "" {
			logging.Logger().Info("phase timings", "top", top)
		}
	})
	closer.Checked(func() error {
		err := run(flag.Args(), *b)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		if err != nil {
			logging.Logger().Error("blockatlas failed", "err", err)
		}
		return err
	}, false)
	closer.Close()
}

func run(args []string, requestedB int) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg := config.Snapshot()
	if cfg.B != requestedB {
		logging.Logger().Warn("tile parameter clamped", "B", cfg.B)
	}

	switch args[0] {
	case "build":
		a, outcome, err := atlas.Create(cfg)
		if err != nil {
			return err
		}
		logging.Logger().Info("block atlas ready", "outcome", outcome, "slots", a.Slots(),
			"path", atlas.ImagePath(cfg.ImageDir, cfg.B))
		return nil
	case "lookup":
		if len(args) != 3 {
			return errUsage
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: block id %q", errUsage, args[1])
		}
		state, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: state %q", errUsage, args[2])
		}
		a, _, err := atlas.Create(cfg)
		if err != nil {
			return err
		}
		slot := a.Offset(id, state)
		r := a.Rect(slot)
		fmt.Printf("%d %d: slot %d at %d,%d size %d opaque=%v transparent=%v\n",
			id, state, slot, r.Min.X, r.Min.Y, r.Dx(), a.IsOpaque(slot), a.IsTransparent(slot))
		return nil
	case "sheet":
		if len(args) != 2 {
			return errUsage
		}
		a, _, err := atlas.Create(cfg)
		if err != nil {
			return err
		}
		return writeSheet(a, args[1])
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func writeSheet(a *atlas.Atlas, path string) error {
	face, err := atlas.MonoFace(11)
	if err != nil {
		return err
	}
	defer face.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create sheet: %w", err)
	}
	if err := png.Encode(f, a.ContactSheet(face)); err != nil {
		f.Close()
		return fmt.Errorf("could not write sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write sheet: %w", err)
	}
	logging.Logger().Info("contact sheet written", "path", path, "slots", a.Slots())
	return nil
}
