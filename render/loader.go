package render

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
)

// ImageLoader resolves an image reference from a map file into pixels.
type ImageLoader interface {
	LoadImage(ctx context.Context, ref string) (image.Image, error)
}

// AssetPath resolves ref against basePath using only the final path segment
// of ref; directory structure in map files is not honored.
func AssetPath(basePath, ref string) string {
	name := ref
	if i := strings.LastIndexAny(ref, `/\`); i >= 0 {
		name = ref[i+1:]
	}
	return strings.TrimRight(basePath, "/") + "/" + name
}

// FileLoader reads images from a directory on disk.
type FileLoader struct {
	BasePath string
}

func (l FileLoader) LoadImage(ctx context.Context, ref string) (image.Image, error) {
	p := AssetPath(l.BasePath, ref)
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("render: open image %s: %w", p, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode image %s: %w", p, err)
	}
	return img, nil
}

// HTTPLoader fetches images relative to a base URL.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

func (l HTTPLoader) LoadImage(ctx context.Context, ref string) (image.Image, error) {
	url := AssetPath(l.BaseURL, ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("render: image request %s: %w", url, err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render: fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render: fetch image %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("render: decode image %s: %w", url, err)
	}
	return img, nil
}

// CachedLoader wraps a loader and keeps every image it loaded by the
// resolved file name, so tilesets shared between maps load once.
type CachedLoader struct {
	next   ImageLoader
	mu     sync.Mutex
	images map[string]image.Image
}

func NewCachedLoader(next ImageLoader) *CachedLoader {
	return &CachedLoader{next: next, images: map[string]image.Image{}}
}

func (c *CachedLoader) LoadImage(ctx context.Context, ref string) (image.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("render: empty image reference")
	}
	key := path.Base(strings.ReplaceAll(ref, `\`, "/"))
	c.mu.Lock()
	img, ok := c.images[key]
	c.mu.Unlock()
	if ok {
		return img, nil
	}
	img, err := c.next.LoadImage(ctx, ref)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()
	return img, nil
}
