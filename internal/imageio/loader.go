// Package imageio loads and decodes the pixel buffers the analysis engine
// operates on. The engine itself never performs I/O; everything here is the
// collaborator boundary that turns a file path or base64 payload into a
// decoded image.Image with known dimensions.
package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Cache provides thread-safe caching of decoded images keyed by file path,
// so a client issuing several tool calls against the same photo pays the
// decode cost once. Safe for concurrent use.
//
// Cached images stay in memory until Evict or Clear; long-running processes
// handling many images should clear between batches.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]image.Image)}
}

// Load returns the decoded image for path, reading and decoding it on the
// first call and serving the cached copy afterwards. Supported formats:
// PNG, JPEG, GIF, WebP.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all cached images.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes one cached image by the exact path it was loaded under.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// DecodeBase64 decodes an image from a base64 payload, with or without a
// "data:image/...;base64," data-URL prefix. Payloads are not cached: they
// arrive inline and are typically analyzed exactly once.
func DecodeBase64(payload string) (image.Image, error) {
	payload = strings.TrimSpace(payload)
	if idx := strings.Index(payload, ";base64,"); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len(";base64,"):]
	}
	if payload == "" {
		return nil, fmt.Errorf("empty base64 image payload")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Dimensions holds the width and height of an image in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads an image through the cache and returns its size.
func GetDimensions(cache *Cache, path string) (*Dimensions, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
