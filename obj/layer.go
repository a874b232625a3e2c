package obj

import (
	"fmt"
	"image"

	"github.com/milk9111/poimap/render"
	"github.com/milk9111/poimap/tiled"
)

// Drawable is one renderable layer of a map.
type Drawable interface {
	Draw(s render.Surface)
}

// ImageLayer blits a single image at its offset.
type ImageLayer struct {
	Name    string
	Image   image.Image
	OffsetX float64
	OffsetY float64
}

func NewImageLayer(l *tiled.Layer, img image.Image) *ImageLayer {
	return &ImageLayer{
		Name:    l.Name,
		Image:   img,
		OffsetX: l.OffsetX,
		OffsetY: l.OffsetY,
	}
}

func (ly *ImageLayer) Draw(s render.Surface) {
	if ly == nil || ly.Image == nil {
		return
	}
	s.DrawImage(ly.Image, ly.OffsetX, ly.OffsetY)
}

// TileLayer owns the tile grid of a single layer and the tileset it is drawn
// from.
type TileLayer struct {
	Name string
	// Tiles is the layer data reshaped into rows.
	Tiles [][]int

	Tileset    *tiled.Tileset
	Image      image.Image
	TileWidth  int
	TileHeight int
}

// NewTileLayer reshapes the layer data once. img may be nil when the tileset
// image could not be loaded; the layer then draws nothing.
func NewTileLayer(l *tiled.Layer, ts *tiled.Tileset, img image.Image, tileW, tileH int) (*TileLayer, error) {
	rows, err := tiled.Reshape(l.Data, l.Width)
	if err != nil {
		return nil, fmt.Errorf("obj: layer %q: %w", l.Name, err)
	}
	if ts != nil && ts.Columns <= 0 {
		return nil, fmt.Errorf("obj: layer %q: %w: tileset %q has %d columns", l.Name, tiled.ErrBadTileData, ts.Name, ts.Columns)
	}
	return &TileLayer{
		Name:       l.Name,
		Tiles:      rows,
		Tileset:    ts,
		Image:      img,
		TileWidth:  tileW,
		TileHeight: tileH,
	}, nil
}

func (ly *TileLayer) Draw(s render.Surface) {
	if ly == nil || ly.Tileset == nil || ly.Image == nil {
		return
	}
	tw, th := ly.TileWidth, ly.TileHeight
	for y, row := range ly.Tiles {
		for x, v := range row {
			if v == 0 {
				continue
			}
			src := tiled.TileSourceRect(v, ly.Tileset, tw, th)
			s.DrawSubImage(ly.Image, src, float64(x*tw), float64(y*th), float64(tw), float64(th))
		}
	}
}
