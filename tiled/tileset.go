package tiled

import "image"

// TileSourceOrigin returns the top-left pixel of a 1-based tile index within
// the tileset image. Tiled numbers tiles from 1, so an index that is an exact
// multiple of the column count is the last column of the previous row.
func TileSourceOrigin(tileIndex int, ts *Tileset, tileW, tileH int) (sx, sy int) {
	cols := ts.Columns
	row := tileIndex / cols
	var col int
	switch {
	case tileIndex%cols == 0:
		col = cols - 1
		row--
	case tileIndex > cols:
		col = tileIndex%cols - 1
	default:
		col = tileIndex - 1
	}
	return col * tileW, row * tileH
}

// TileSourceRect is TileSourceOrigin extended to the full tile rectangle.
func TileSourceRect(tileIndex int, ts *Tileset, tileW, tileH int) image.Rectangle {
	sx, sy := TileSourceOrigin(tileIndex, ts, tileW, tileH)
	return image.Rect(sx, sy, sx+tileW, sy+tileH)
}
