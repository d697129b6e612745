package assets

import "image"

// SheetGrid slices a sprite sheet into equal cells, row-major from the top
// left.
type SheetGrid struct {
	CellW   int
	CellH   int
	Columns int
	Rows    int
}

// Frames returns the number of cells in the grid.
func (g SheetGrid) Frames() int {
	if g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Columns * g.Rows
}

// FrameRect returns the source rectangle of cell index. ok is false when the
// index is outside the grid.
func (g SheetGrid) FrameRect(index int) (image.Rectangle, bool) {
	if index < 0 || index >= g.Frames() || g.CellW <= 0 || g.CellH <= 0 {
		return image.Rectangle{}, false
	}
	col := index % g.Columns
	row := index / g.Columns
	x := col * g.CellW
	y := row * g.CellH
	return image.Rect(x, y, x+g.CellW, y+g.CellH), true
}
