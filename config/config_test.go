package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestLoadViewerDefaults(t *testing.T) {
	v, err := LoadViewer("")
	if err != nil {
		t.Fatalf("LoadViewer: %v", err)
	}
	if v.Mode != ModeBundle || v.MapPath != "/map" {
		t.Fatalf("unexpected viewer config %+v", v)
	}
	if v.Defaults.Style.LineWidth != 3 || v.Defaults.Style.Font != "12px Verdana" {
		t.Fatalf("unexpected style defaults %+v", v.Defaults.Style)
	}
	if v.Defaults.Label.OffsetY != -25 || v.Defaults.Label.Padding != 10 {
		t.Fatalf("unexpected label defaults %+v", v.Defaults.Label)
	}
}

func TestLoadViewerOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	data := "mode: single\nserver_url: http://example:9000\ndefaults:\n  style:\n    line_width: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := LoadViewer(path)
	if err != nil {
		t.Fatalf("LoadViewer: %v", err)
	}
	if v.Mode != ModeSingle || v.ServerURL != "http://example:9000" {
		t.Fatalf("overlay not applied: %+v", v)
	}
	if v.Defaults.Style.LineWidth != 5 {
		t.Fatalf("line width = %g", v.Defaults.Style.LineWidth)
	}
	// untouched fields keep their defaults
	if v.Defaults.Style.Font != "12px Verdana" || v.MapPath != "/map" {
		t.Fatalf("defaults lost: %+v", v)
	}
}

func TestLoadViewerRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	if err := os.WriteFile(path, []byte("mode: all\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadViewer(path); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLoadServer(t *testing.T) {
	s, err := LoadServer("")
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if s.Addr != ":8000" || s.Project != "SCFair.tiled-project" || !s.Watch || s.WatchDebounce != DefaultDebounce {
		t.Fatalf("unexpected server config %+v", s)
	}
	if _, err := LoadServer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIsWatchedFile(t *testing.T) {
	cases := map[string]bool{
		"Tiled/SCFair.tiled-project": true,
		"Tiled/worlds/SCFair.world":  true,
		"Tiled/maps/fair.json":       true,
		"config/server.yaml":         true,
		"Tiled/images/tiles.png":     false,
		"notes.txt":                  false,
	}
	for path, want := range cases {
		if got := IsWatchedFile(path); got != want {
			t.Errorf("IsWatchedFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "fair.json")
	if err := os.WriteFile(filepath.Join(dir, "ignored.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("event for %q, want %q", name, target)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event received")
	}
}

func TestWatchTreeCoversSubdirectories(t *testing.T) {
	root := t.TempDir()
	worlds := filepath.Join(root, "worlds")
	if err := os.Mkdir(worlds, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w, err := WatchTree(root)
	if err != nil {
		t.Fatalf("WatchTree: %v", err)
	}
	defer w.Close()

	target := filepath.Join(worlds, "SCFair.world")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("event for %q, want %q", name, target)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event received")
	}

	if _, err := WatchTree(filepath.Join(root, "missing")); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

type acceptStep struct {
	event fsnotify.Event
	after time.Duration
	want  bool
}

func TestWatcherAccept(t *testing.T) {
	start := time.Unix(1000, 0)
	isPNG := func(p string) bool { return filepath.Ext(p) == ".png" }
	cases := []struct {
		name  string
		opts  []WatchOption
		steps []acceptStep
	}{
		{
			name: "default_debounce",
			steps: []acceptStep{
				{fsnotify.Event{Name: "maps/fair.json", Op: fsnotify.Write}, 0, true},
				{fsnotify.Event{Name: "maps/fair.json", Op: fsnotify.Write}, 50 * time.Millisecond, false},
				{fsnotify.Event{Name: "maps/fair.json", Op: fsnotify.Write}, 150 * time.Millisecond, true},
				{fsnotify.Event{Name: "maps/fair.json", Op: fsnotify.Chmod}, 500 * time.Millisecond, false},
				{fsnotify.Event{Name: "images/tiles.png", Op: fsnotify.Write}, 600 * time.Millisecond, false},
			},
		},
		{
			name: "no_debounce_custom_filter",
			opts: []WatchOption{WithDebounce(0), WithFilter(isPNG)},
			steps: []acceptStep{
				{fsnotify.Event{Name: "images/tiles.png", Op: fsnotify.Create}, 0, true},
				{fsnotify.Event{Name: "images/tiles.png", Op: fsnotify.Write}, time.Millisecond, true},
				{fsnotify.Event{Name: "maps/fair.json", Op: fsnotify.Write}, 2 * time.Millisecond, false},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := &Watcher{debounce: DefaultDebounce, filter: IsWatchedFile, last: map[string]time.Time{}}
			for _, opt := range c.opts {
				opt(w)
			}
			for i, s := range c.steps {
				if got := w.accept(s.event, start.Add(s.after)); got != s.want {
					t.Fatalf("step %d: accept(%v) = %v, want %v", i, s.event, got, s.want)
				}
			}
		})
	}
}
