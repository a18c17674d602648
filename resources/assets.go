package resources

import (
	"embed"
	"fmt"
	"runtime"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	spriteDir = "sprites/"
	logoDir   = "logo/"
)

//go:embed sprites/*.png
var spriteFS embed.FS

//go:embed logo/*.png logo/*.ico
var logoFS embed.FS

//go:embed manifest.yaml
var manifest []byte

var spriteCache sync.Map
var logoCache sync.Map

// Sprite returns the embedded frame with the given name, without extension.
func Sprite(name string) (fyne.Resource, error) {
	return loadResource(spriteFS, spriteDir+name+".png", &spriteCache)
}

// TrayIcon returns the tray icon in the format the platform tray expects.
func TrayIcon(name string) (fyne.Resource, error) {
	ext := ".png"
	if runtime.GOOS == "windows" {
		ext = ".ico"
	}
	return loadResource(logoFS, logoDir+name+ext, &logoCache)
}

// Manifest returns the embedded manifest document.
func Manifest() []byte {
	return manifest
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
