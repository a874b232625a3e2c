package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/milk9111/poimap/config"
	"github.com/milk9111/poimap/tiled"
)

// Bundle is the published {classes, maps} document. Maps are kept as raw
// JSON objects so every field Tiled writes reaches the client.
type Bundle struct {
	Classes []tiled.ClassDefinition `json:"classes"`
	Maps    []map[string]any        `json:"maps"`
}

// BundleService assembles the bundle from the Tiled project and world files
// and caches it until Invalidate is called.
type BundleService struct {
	tiledDir string
	project  string
	world    string

	mu     sync.Mutex
	cached *Bundle
}

func NewBundleService(cfg config.Server) *BundleService {
	return &BundleService{
		tiledDir: cfg.TiledDir,
		project:  cfg.Project,
		world:    cfg.World,
	}
}

func (s *BundleService) Get() (*Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	b, err := s.build()
	if err != nil {
		return nil, err
	}
	s.cached = b
	return b, nil
}

func (s *BundleService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *BundleService) build() (*Bundle, error) {
	project, err := tiled.LoadProject(filepath.Join(s.tiledDir, s.project))
	if err != nil {
		return nil, err
	}
	world, err := tiled.LoadWorld(filepath.Join(s.tiledDir, s.world))
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Classes: project.PropertyTypes,
		Maps:    make([]map[string]any, 0, len(world.Maps)),
	}
	if b.Classes == nil {
		b.Classes = []tiled.ClassDefinition{}
	}
	for _, wm := range world.Maps {
		m, err := loadRawMap(filepath.Join(s.tiledDir, wm.MapPath()))
		if err != nil {
			return nil, err
		}
		mergeWorldEntry(m, wm)
		b.Maps = append(b.Maps, m)
	}
	return b, nil
}

func loadRawMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("server: read map %s: %w", path, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("server: unmarshal map %s: %w", path, err)
	}
	return m, nil
}

// mergeWorldEntry adds the world placement to a map. World width and height
// are in pixels and would clobber the map's tile counts, so keys the map
// already has are kept.
func mergeWorldEntry(m map[string]any, wm tiled.WorldMap) {
	entry := map[string]any{
		"fileName": wm.FileName,
		"x":        wm.X,
		"y":        wm.Y,
		"width":    wm.Width,
		"height":   wm.Height,
	}
	for k, v := range entry {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
}

// Watch drops the cached bundle whenever a watched file changes, until ctx
// is done.
func (s *BundleService) Watch(ctx context.Context, w *config.Watcher) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.Printf("server: %s changed, reloading map data", name)
			s.Invalidate()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("server: watch error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
