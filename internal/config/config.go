package config

import "sync"

// Tile parameter bounds. Every slot is 4B pixels square.
const (
	MinTileParam     = 2
	MaxTileParam     = 64
	DefaultTileParam = 6
)

// BuildSettings holds atlas build configuration
type BuildSettings struct {
	mu        sync.RWMutex
	tileParam int // B
	force     bool
}

var globalBuildSettings = &BuildSettings{
	tileParam: DefaultTileParam,
}

// GetTileParam returns the tile parameter B
func GetTileParam() int {
	globalBuildSettings.mu.RLock()
	defer globalBuildSettings.mu.RUnlock()
	return globalBuildSettings.tileParam
}

// SetTileParam sets the tile parameter B
func SetTileParam(b int) {
	globalBuildSettings.mu.Lock()
	defer globalBuildSettings.mu.Unlock()

	// Clamp to sizes the face geometry supports
	if b < MinTileParam {
		b = MinTileParam
	}
	if b > MaxTileParam {
		b = MaxTileParam
	}

	globalBuildSettings.tileParam = b
}

// GetForce reports whether a persisted atlas is rebuilt even when current
func GetForce() bool {
	globalBuildSettings.mu.RLock()
	defer globalBuildSettings.mu.RUnlock()
	return globalBuildSettings.force
}

// SetForce sets whether a current atlas is rebuilt anyway
func SetForce(force bool) {
	globalBuildSettings.mu.Lock()
	defer globalBuildSettings.mu.Unlock()
	globalBuildSettings.force = force
}

// Build is an immutable copy of the settings one atlas build runs with.
type Build struct {
	B              int
	ImageDir       string // where blocks-<B>.png and blocks-<B>.version live
	TextureList    string
	DescriptorList string
	TextureRoot    string // directories named in the texture list are relative to it
	TextureDir     string // directory active before the first "$" line
	Force          bool
}

// Snapshot copies the current settings.
func Snapshot() Build {
	return Build{
		B:              GetTileParam(),
		ImageDir:       GetImageDir(),
		TextureList:    GetTextureList(),
		DescriptorList: GetDescriptorList(),
		TextureRoot:    GetTextureRoot(),
		TextureDir:     GetTextureDir(),
		Force:          GetForce(),
	}
}
