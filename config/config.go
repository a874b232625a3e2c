// Package config loads yaml configuration for the viewer and the map server.
package config

import (
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/milk9111/poimap/obj"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var defaultsFS embed.FS

// Map selection modes for the viewer.
const (
	ModeBundle = "bundle"
	ModeSingle = "single"
)

type Viewer struct {
	ServerURL string `yaml:"server_url"`
	MapPath   string `yaml:"map_path"`
	ImagePath string `yaml:"image_path"`
	// Mode is ModeBundle for a {classes, maps} document or ModeSingle for a
	// bare map export.
	Mode     string       `yaml:"mode"`
	Title    string       `yaml:"title"`
	PauseKey string       `yaml:"pause_key"`
	Defaults obj.Defaults `yaml:"defaults"`
}

type Server struct {
	Addr      string `yaml:"addr"`
	TiledDir  string `yaml:"tiled_dir"`
	Project   string `yaml:"project"`
	World     string `yaml:"world"`
	StaticDir string `yaml:"static_dir"`
	ImagesDir string `yaml:"images_dir"`
	Watch     bool   `yaml:"watch"`
	// WatchDebounce folds repeated change events for one file, e.g. "100ms".
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

func defaultViewer() Viewer {
	return Viewer{
		ServerURL: "http://localhost:8000",
		MapPath:   "/map",
		ImagePath: "/images",
		Mode:      ModeBundle,
		Title:     "poimap",
		PauseKey:  "P",
		Defaults:  obj.NewDefaults(),
	}
}

func defaultServer() Server {
	return Server{
		Addr:          ":8000",
		TiledDir:      "Tiled",
		StaticDir:     "public",
		ImagesDir:     "public/images",
		WatchDebounce: DefaultDebounce,
	}
}

// LoadSpec decodes the embedded defaults file and then the file at path, if
// any, over def. Fields a file leaves out keep their previous value.
func LoadSpec[T any](embedded, path string, def T) (T, error) {
	spec := def
	if embedded != "" {
		data, err := defaultsFS.ReadFile(embedded)
		if err != nil {
			return def, fmt.Errorf("config: load %s: %w", embedded, err)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return def, fmt.Errorf("config: unmarshal %s: %w", embedded, err)
		}
	}
	if path == "" {
		return spec, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return def, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

func LoadViewer(path string) (Viewer, error) {
	v, err := LoadSpec("viewer.yaml", path, defaultViewer())
	if err != nil {
		return v, err
	}
	if v.Mode != ModeBundle && v.Mode != ModeSingle {
		return v, fmt.Errorf("config: unknown map mode %q", v.Mode)
	}
	return v, nil
}

func LoadServer(path string) (Server, error) {
	return LoadSpec("server.yaml", path, defaultServer())
}
