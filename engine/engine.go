// Package engine turns a Tiled map into drawable layers and map objects and
// renders them every frame against the current pointer position.
package engine

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/milk9111/poimap/common"
	"github.com/milk9111/poimap/obj"
	"github.com/milk9111/poimap/render"
	"github.com/milk9111/poimap/tiled"
)

type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateRendering
	StateError
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateRendering:
		return "rendering"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Pointer is the last known cursor position and the last click.
type Pointer struct {
	X, Y           float64
	ClickX, ClickY float64
	Clicked        bool
}

func (p Pointer) Vec() common.Vec { return common.Vec{X: p.X, Y: p.Y} }

type scene struct {
	tileMap *tiled.Map
	layers  []obj.Drawable
	objects []*obj.Object
	errs    []error
}

// Engine owns one loaded map at a time. Loading may run on another goroutine
// than rendering; the scene is swapped in whole once it is fully built.
type Engine struct {
	loader   render.ImageLoader
	defaults obj.Defaults

	mu      sync.Mutex
	state   State
	scene   *scene
	pointer Pointer
	resized bool
	frames  uint64
}

func New(loader render.ImageLoader, defaults obj.Defaults) *Engine {
	return &Engine{loader: loader, defaults: defaults}
}

// LoadBundle loads the first map of a multi-map document.
func (e *Engine) LoadBundle(ctx context.Context, b *tiled.Bundle) error {
	m, err := b.First()
	if err != nil {
		e.setState(StateError)
		return err
	}
	return e.LoadMap(ctx, m, b.Classes)
}

// LoadMap builds every layer and object of m, replacing any previous map.
// Malformed data aborts the load; images that fail to load only leave their
// layer undrawn and are reported by LoadErrors.
func (e *Engine) LoadMap(ctx context.Context, m *tiled.Map, classes []tiled.ClassDefinition) error {
	e.setState(StateLoading)
	sc, err := e.build(ctx, m, classes)
	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = StateError
		e.scene = nil
		return err
	}
	e.scene = sc
	e.state = StateRendering
	e.resized = true
	return nil
}

func (e *Engine) build(ctx context.Context, m *tiled.Map, classes []tiled.ClassDefinition) (*scene, error) {
	sc := &scene{tileMap: m}

	ts, hasTileset := m.Tileset()
	var tilesetImg image.Image
	if hasTileset && needsTileset(m) {
		img, err := e.loadImage(ctx, ts.Image)
		if err != nil {
			log.Printf("engine: tileset %q: %v", ts.Name, err)
			sc.errs = append(sc.errs, err)
		} else {
			tilesetImg = img
		}
	}

	for i := range m.Layers {
		l := &m.Layers[i]
		if !l.IsVisible() {
			continue
		}
		switch l.Type {
		case tiled.LayerObject:
			objs, err := e.buildObjects(l, classes)
			if err != nil {
				return nil, err
			}
			sc.objects = append(sc.objects, objs...)
		case tiled.LayerImage:
			img, err := e.loadImage(ctx, l.Image)
			if err != nil {
				log.Printf("engine: image layer %q: %v", l.Name, err)
				sc.errs = append(sc.errs, err)
				continue
			}
			sc.layers = append(sc.layers, obj.NewImageLayer(l, img))
		default:
			var layerTS *tiled.Tileset
			if hasTileset {
				layerTS = ts
			}
			ly, err := obj.NewTileLayer(l, layerTS, tilesetImg, m.TileWidth, m.TileHeight)
			if err != nil {
				return nil, fmt.Errorf("engine: %w", err)
			}
			sc.layers = append(sc.layers, ly)
		}
	}
	return sc, nil
}

func needsTileset(m *tiled.Map) bool {
	for i := range m.Layers {
		switch m.Layers[i].Type {
		case tiled.LayerObject, tiled.LayerImage:
		default:
			return true
		}
	}
	return false
}

func (e *Engine) buildObjects(l *tiled.Layer, classes []tiled.ClassDefinition) ([]*obj.Object, error) {
	out := make([]*obj.Object, 0, len(l.Objects))
	for i := range l.Objects {
		raw := &l.Objects[i]
		classProps, err := tiled.ClassProperties(classes, raw.ClassName())
		if err != nil {
			return nil, fmt.Errorf("engine: layer %q object %d: %w", l.Name, raw.ID, err)
		}
		o, err := obj.NewObject(raw, l.Properties, classProps, e.defaults)
		if err != nil {
			return nil, fmt.Errorf("engine: layer %q: %w", l.Name, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (e *Engine) loadImage(ctx context.Context, ref string) (image.Image, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("engine: no image loader for %q", ref)
	}
	return e.loader.LoadImage(ctx, ref)
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// Render draws one frame: every layer in map order, then every object.
func (e *Engine) Render(s render.Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRendering || e.scene == nil {
		return
	}
	if e.resized {
		s.SetSize(e.scene.tileMap.PixelWidth(), e.scene.tileMap.PixelHeight())
		e.resized = false
	}
	for _, ly := range e.scene.layers {
		ly.Draw(s)
	}
	p := e.pointer.Vec()
	for _, o := range e.scene.objects {
		o.Update(s, p)
	}
	e.frames++
}

func (e *Engine) OnPointerMove(x, y float64) {
	e.mu.Lock()
	e.pointer.X, e.pointer.Y = x, y
	e.mu.Unlock()
}

func (e *Engine) OnPointerClick(x, y float64) {
	e.mu.Lock()
	e.pointer.ClickX, e.pointer.ClickY = x, y
	e.pointer.Clicked = true
	e.mu.Unlock()
}

func (e *Engine) Pointer() Pointer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pointer
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Size returns the pixel size of the loaded map.
func (e *Engine) Size() (int, int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil {
		return 0, 0, false
	}
	return e.scene.tileMap.PixelWidth(), e.scene.tileMap.PixelHeight(), true
}

func (e *Engine) Layers() []obj.Drawable {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil {
		return nil
	}
	return append([]obj.Drawable(nil), e.scene.layers...)
}

func (e *Engine) Objects() []*obj.Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil {
		return nil
	}
	return append([]*obj.Object(nil), e.scene.objects...)
}

// Hovered returns the visible objects under the pointer.
func (e *Engine) Hovered() []*obj.Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil {
		return nil
	}
	p := e.pointer.Vec()
	var out []*obj.Object
	for _, o := range e.scene.objects {
		if o.Visible && o.IsHovered(p) {
			out = append(out, o)
		}
	}
	return out
}

// Clicked returns the visible objects under the last click. Unlike Hovered
// this includes point objects.
func (e *Engine) Clicked() []*obj.Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil || !e.pointer.Clicked {
		return nil
	}
	p := common.Vec{X: e.pointer.ClickX, Y: e.pointer.ClickY}
	var out []*obj.Object
	for _, o := range e.scene.objects {
		if o.Visible && o.Contains(p) {
			out = append(out, o)
		}
	}
	return out
}

// LoadErrors lists the image loads that failed for the current map.
func (e *Engine) LoadErrors() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scene == nil {
		return nil
	}
	return append([]error(nil), e.scene.errs...)
}

func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}
