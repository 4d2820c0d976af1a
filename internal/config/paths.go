package config

import "sync"

// PathSettings holds the input and output locations of a build
type PathSettings struct {
	mu             sync.RWMutex
	imageDir       string
	textureList    string
	descriptorList string
	textureRoot    string
	textureDir     string
}

var globalPathSettings = &PathSettings{
	imageDir:       ".",
	textureList:    "blocktextures.list",
	descriptorList: "blockdescriptor.list",
	textureRoot:    ".",
	textureDir:     "textures/blocks",
}

// GetImageDir returns the directory of the persisted atlas
func GetImageDir() string {
	globalPathSettings.mu.RLock()
	defer globalPathSettings.mu.RUnlock()
	return globalPathSettings.imageDir
}

// SetImageDir sets the directory of the persisted atlas
func SetImageDir(dir string) {
	globalPathSettings.mu.Lock()
	defer globalPathSettings.mu.Unlock()
	globalPathSettings.imageDir = orDefault(dir, ".")
}

// GetTextureList returns the texture list path
func GetTextureList() string {
	globalPathSettings.mu.RLock()
	defer globalPathSettings.mu.RUnlock()
	return globalPathSettings.textureList
}

// SetTextureList sets the texture list path
func SetTextureList(path string) {
	globalPathSettings.mu.Lock()
	defer globalPathSettings.mu.Unlock()
	globalPathSettings.textureList = orDefault(path, "blocktextures.list")
}

// GetDescriptorList returns the block descriptor list path
func GetDescriptorList() string {
	globalPathSettings.mu.RLock()
	defer globalPathSettings.mu.RUnlock()
	return globalPathSettings.descriptorList
}

// SetDescriptorList sets the block descriptor list path
func SetDescriptorList(path string) {
	globalPathSettings.mu.Lock()
	defer globalPathSettings.mu.Unlock()
	globalPathSettings.descriptorList = orDefault(path, "blockdescriptor.list")
}

// GetTextureRoot returns the directory texture directories resolve against
func GetTextureRoot() string {
	globalPathSettings.mu.RLock()
	defer globalPathSettings.mu.RUnlock()
	return globalPathSettings.textureRoot
}

// SetTextureRoot sets the directory texture directories resolve against
func SetTextureRoot(dir string) {
	globalPathSettings.mu.Lock()
	defer globalPathSettings.mu.Unlock()
	globalPathSettings.textureRoot = orDefault(dir, ".")
}

// GetTextureDir returns the texture directory used until the list switches it
func GetTextureDir() string {
	globalPathSettings.mu.RLock()
	defer globalPathSettings.mu.RUnlock()
	return globalPathSettings.textureDir
}

// SetTextureDir sets the initial texture directory
func SetTextureDir(dir string) {
	globalPathSettings.mu.Lock()
	defer globalPathSettings.mu.Unlock()
	globalPathSettings.textureDir = dir
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
