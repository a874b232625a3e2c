// Package tiled decodes the JSON exported by the Tiled map editor into typed
// records and provides the lookups the renderer needs on top of them.
package tiled

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoMaps        = errors.New("tiled: document contains no maps")
	ErrClassNotFound = errors.New("tiled: class not found")
	ErrBadTileData   = errors.New("tiled: malformed tile layer data")
)

// Layer types as written by Tiled.
const (
	LayerTile   = "tilelayer"
	LayerImage  = "imagelayer"
	LayerObject = "objectgroup"
)

// Bundle is the multi-map document published by the server: every class
// defined in the Tiled project plus every map of the world.
type Bundle struct {
	Classes []ClassDefinition `json:"classes"`
	Maps    []Map             `json:"maps"`
}

// Map is a single Tiled map export.
type Map struct {
	// Width and Height are in tiles.
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	TileWidth  int        `json:"tilewidth"`
	TileHeight int        `json:"tileheight"`
	Layers     []Layer    `json:"layers"`
	Tilesets   []Tileset  `json:"tilesets"`
	Properties []Property `json:"properties,omitempty"`

	// world placement, only set when the map came from a world file
	FileName string `json:"fileName,omitempty"`
	WorldX   int    `json:"x,omitempty"`
	WorldY   int    `json:"y,omitempty"`
}

// PixelWidth returns the rendered width of the map.
func (m *Map) PixelWidth() int { return m.Width * m.TileWidth }

// PixelHeight returns the rendered height of the map.
func (m *Map) PixelHeight() int { return m.Height * m.TileHeight }

// Tileset returns the tileset used for tile lookups. Only the first tileset
// of a map is ever consulted.
func (m *Map) Tileset() (*Tileset, bool) {
	if len(m.Tilesets) == 0 {
		return nil, false
	}
	return &m.Tilesets[0], true
}

type Layer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Visible *bool  `json:"visible,omitempty"`

	// tile layers
	Data   []int `json:"data,omitempty"`
	Width  int   `json:"width,omitempty"`
	Height int   `json:"height,omitempty"`

	// image layers
	Image   string  `json:"image,omitempty"`
	OffsetX float64 `json:"offsetx,omitempty"`
	OffsetY float64 `json:"offsety,omitempty"`

	// object layers
	Objects    []Object   `json:"objects,omitempty"`
	Properties []Property `json:"properties,omitempty"`
}

// IsVisible reports the layer's visibility flag; Tiled omits it for
// visible layers in some export modes.
func (l *Layer) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

type Tileset struct {
	FirstGID    int    `json:"firstgid"`
	Name        string `json:"name,omitempty"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth,omitempty"`
	ImageHeight int    `json:"imageheight,omitempty"`
	Columns     int    `json:"columns"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Object is a raw point-of-interest record of an object layer.
type Object struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Class    string  `json:"class,omitempty"`
	Type     string  `json:"type,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Visible  *bool   `json:"visible,omitempty"`
	Point    bool    `json:"point,omitempty"`
	Ellipse  bool    `json:"ellipse,omitempty"`
	Polygon  []Point `json:"polygon,omitempty"`

	Properties []Property `json:"properties,omitempty"`
}

// ClassName returns the class the object is an instance of. Tiled 1.9 moved
// this from "type" to "class"; both are honored.
func (o *Object) ClassName() string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type
}

func (o *Object) IsVisible() bool {
	return o.Visible == nil || *o.Visible
}

// ClassDefinition is a custom property type from the Tiled project file.
type ClassDefinition struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Type    string     `json:"type"`
	Members []Property `json:"members"`
}

// ParseBundle decodes a {classes, maps} document.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("tiled: unmarshal bundle: %w", err)
	}
	return &b, nil
}

// ParseMap decodes a single map export.
func ParseMap(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tiled: unmarshal map: %w", err)
	}
	return &m, nil
}

// First returns the first map of the bundle.
func (b *Bundle) First() (*Map, error) {
	if b == nil || len(b.Maps) == 0 {
		return nil, ErrNoMaps
	}
	return &b.Maps[0], nil
}

// ClassProperties returns the members of the named class. An empty name is
// not an error and yields no properties.
func ClassProperties(classes []ClassDefinition, name string) ([]Property, error) {
	if name == "" {
		return nil, nil
	}
	for i := range classes {
		if classes[i].Name == name {
			return classes[i].Members, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrClassNotFound, name)
}

// Reshape splits a row-major tile sequence into rows of width entries.
func Reshape(data []int, width int) ([][]int, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrBadTileData, width)
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%w: %d tiles is not a multiple of width %d", ErrBadTileData, len(data), width)
	}
	rows := make([][]int, 0, len(data)/width)
	for i := 0; i < len(data); i += width {
		rows = append(rows, data[i:i+width:i+width])
	}
	return rows, nil
}
