package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long repeated events for one file are folded into
// the first.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to map and configuration files under a set of
// directories.
type Watcher struct {
	Events chan string
	Errors chan error

	watcher  *fsnotify.Watcher
	debounce time.Duration
	filter   func(path string) bool
	last     map[string]time.Time

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

type WatchOption func(*Watcher)

// WithDebounce sets the window in which events for the same file collapse.
// Zero or negative reports every event.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithFilter replaces IsWatchedFile as the test for which paths are reported.
func WithFilter(f func(path string) bool) WatchOption {
	return func(w *Watcher) {
		if f != nil {
			w.filter = f
		}
	}
}

func NewWatcher(dirs []string, opts ...WatchOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("config: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		watcher:  fw,
		debounce: DefaultDebounce,
		filter:   IsWatchedFile,
		last:     make(map[string]time.Time),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w, nil
}

// WatchTree watches root and every directory below it. Tiled keeps maps,
// worlds and the project file in sibling folders.
func WatchTree(root string, opts ...WatchOption) (*Watcher, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", root, err)
	}
	return NewWatcher(dirs, opts...)
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// accept reports whether event should be forwarded at now.
func (w *Watcher) accept(event fsnotify.Event, now time.Time) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	if !w.filter(event.Name) {
		return false
	}
	if t, ok := w.last[event.Name]; ok && now.Sub(t) < w.debounce {
		return false
	}
	w.last[event.Name] = now
	return true
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.accept(event, time.Now()) {
				continue
			}
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsWatchedFile reports whether a change to path can affect the published
// map data.
func IsWatchedFile(path string) bool {
	if strings.HasSuffix(path, ".tiled-project") {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".tmj", ".world", ".yaml", ".yml":
		return true
	}
	return false
}
