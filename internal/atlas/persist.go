package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"blockatlas/internal/iso"
	"blockatlas/internal/logging"
)

// maxVersion bounds the version a version file may claim; anything
// outside [0, maxVersion] reads as 0.
const maxVersion = 10000

// ImagePath is the persisted atlas image for tile parameter b.
func ImagePath(dir string, b int) string {
	return filepath.Join(dir, "blocks-"+strconv.Itoa(b)+".png")
}

// VersionPath is the file holding the version of ImagePath(dir, b).
func VersionPath(dir string, b int) string {
	return filepath.Join(dir, "blocks-"+strconv.Itoa(b)+".version")
}

// readVersion returns the recorded version. A missing file is created
// holding 0.
func readVersion(path string) int {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeVersion(path, 0); err != nil {
			logging.Logger().Warn("could not write version file", "path", path, "err", err)
		}
		return 0
	}
	if err != nil {
		logging.Logger().Warn("could not read version file", "path", path, "err", err)
		return 0
	}
	return parseVersion(string(data))
}

func parseVersion(s string) int {
	f := strings.Fields(s)
	if len(f) == 0 {
		return 0
	}
	v, err := strconv.Atoi(f[0])
	if err != nil || v < 0 || v > maxVersion {
		return 0
	}
	return v
}

func writeVersion(path string, v int) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, strconv.Itoa(v))
		return err
	})
}

func readImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open atlas: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode atlas %s: %w", path, err)
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, nil
	}
	return iso.ToNRGBA(img), nil
}

func writeImage(path string, img image.Image) error {
	return writeAtomic(path, func(w io.Writer) error { return png.Encode(w, img) })
}

// writeAtomic writes path through a temporary file in the same directory,
// so readers never see a partial file.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}
