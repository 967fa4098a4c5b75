package assets

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cache memoizes images loaded from the project assets directory.
// Failed loads are remembered too, so a missing file logs once and
// draws as the placeholder instead of hitting the disk every frame.
type Cache struct {
	dir    string
	images map[string]*ebiten.Image
	failed map[string]bool
}

func NewCache(dir string) *Cache {
	return &Cache{
		dir:    dir,
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// Image returns the image for an assets-relative path, never nil.
func (c *Cache) Image(path string) *ebiten.Image {
	if path == "" {
		return Placeholder
	}
	if img, ok := c.images[path]; ok {
		return img
	}
	if c.failed[path] {
		return Placeholder
	}
	img, err := c.load(path)
	if err != nil {
		log.Printf("assets: %v", err)
		c.failed[path] = true
		return Placeholder
	}
	c.images[path] = img
	return img
}

func (c *Cache) load(path string) (*ebiten.Image, error) {
	full := filepath.Join(c.dir, filepath.FromSlash(path))
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", full, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", full, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Invalidate drops cached state for a path so the next Image call hits
// the disk again.
func (c *Cache) Invalidate(path string) {
	delete(c.images, path)
	delete(c.failed, path)
}

// ListImages walks the assets directory and returns the dir-relative
// paths of every PNG, sorted, for the image picker.
func ListImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(info.Name())) != ".png" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
