package obj

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/poimap/render/rendertest"
	"github.com/milk9111/poimap/tiled"
)

func TestTileLayerSkipsEmptyTiles(t *testing.T) {
	ts := &tiled.Tileset{Columns: 2}
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	l := &tiled.Layer{Name: "ground", Type: tiled.LayerTile, Width: 3, Height: 2, Data: []int{0, 1, 0, 4, 0, 2}}

	ly, err := NewTileLayer(l, ts, img, 16, 16)
	if err != nil {
		t.Fatalf("NewTileLayer: %v", err)
	}
	if len(ly.Tiles) != 2 || len(ly.Tiles[0]) != 3 {
		t.Fatalf("unexpected grid %v", ly.Tiles)
	}

	rec := rendertest.NewRecorder()
	ly.Draw(rec)
	blits := rec.SubBlits()
	if len(blits) != 3 {
		t.Fatalf("blits = %d, want 3", len(blits))
	}
	want := []struct {
		src    image.Rectangle
		dx, dy float64
	}{
		{image.Rect(0, 0, 16, 16), 16, 0},
		{image.Rect(16, 16, 32, 32), 0, 16},
		{image.Rect(16, 0, 32, 16), 32, 16},
	}
	for i, w := range want {
		b := blits[i]
		if b.Src != w.src || b.DX != w.dx || b.DY != w.dy || b.DW != 16 || b.DH != 16 {
			t.Errorf("blit %d = %+v, want src %v at (%g,%g)", i, b, w.src, w.dx, w.dy)
		}
	}
}

func TestTileLayerRejectsBadData(t *testing.T) {
	l := &tiled.Layer{Name: "broken", Width: 4, Data: []int{1, 2, 3}}
	if _, err := NewTileLayer(l, nil, nil, 16, 16); !errors.Is(err, tiled.ErrBadTileData) {
		t.Fatalf("got %v, want ErrBadTileData", err)
	}
	ok := &tiled.Layer{Name: "fine", Width: 1, Data: []int{1}}
	if _, err := NewTileLayer(ok, &tiled.Tileset{}, nil, 16, 16); !errors.Is(err, tiled.ErrBadTileData) {
		t.Fatalf("zero-column tileset: got %v", err)
	}
}

func TestTileLayerWithoutImageDrawsNothing(t *testing.T) {
	l := &tiled.Layer{Width: 1, Data: []int{1}}
	ly, err := NewTileLayer(l, &tiled.Tileset{Columns: 1}, nil, 8, 8)
	if err != nil {
		t.Fatalf("NewTileLayer: %v", err)
	}
	rec := rendertest.NewRecorder()
	ly.Draw(rec)
	if len(rec.Blits) != 0 {
		t.Fatalf("unloaded tileset should not draw, got %d blits", len(rec.Blits))
	}
}

func TestImageLayerDraw(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	ly := NewImageLayer(&tiled.Layer{Name: "bg", OffsetX: 3, OffsetY: 7}, img)
	rec := rendertest.NewRecorder()
	ly.Draw(rec)
	if len(rec.Blits) != 1 {
		t.Fatalf("blits = %d, want 1", len(rec.Blits))
	}
	if b := rec.Blits[0]; b.DX != 3 || b.DY != 7 || b.Image != img {
		t.Fatalf("unexpected blit %+v", b)
	}

	rec.Reset()
	(&ImageLayer{}).Draw(rec)
	if len(rec.Blits) != 0 {
		t.Fatalf("layer without image should not draw")
	}
}
