// Package asset holds the images, icons and texts embedded in the binary.
package asset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // tray icon and splash are PNG
	"path"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/Wallin/util/log"
)

//go:embed images/* icons/* text/*
var assets embed.FS

// ErrEmptyName is returned when an asset is requested without a name.
var ErrEmptyName = errors.New("asset name is empty")

// Manager reads embedded assets.
type Manager struct{}

// NewManager creates a Manager.
func NewManager() *Manager {
	return &Manager{}
}

// read returns the bytes of dir/name, logging misses.
func (am *Manager) read(dir, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyName)
	}
	data, err := assets.ReadFile(path.Join(dir, name))
	if err != nil {
		log.Printf("Asset %s/%s not found: %v", dir, name, err)
		return nil, fmt.Errorf("asset %s/%s: %w", dir, name, err)
	}
	return data, nil
}

// GetImage decodes an image from images/.
func (am *Manager) GetImage(name string) (image.Image, error) {
	data, err := am.read("images", name)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Asset images/%s is not a valid image: %v", name, err)
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	log.Debugf("Loaded %s image %s (%dx%d)", format, name, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// GetIcon returns an icon from icons/ as a fyne resource.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	data, err := am.read("icons", name)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(name, data), nil
}

// GetText returns a text file from text/.
func (am *Manager) GetText(name string) (string, error) {
	data, err := am.read("text", name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
