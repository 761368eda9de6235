package layout

import (
	"image"

	"github.com/04pril/gridsweeper/internal/grid"
)

const (
	OuterPadding   = 12
	TopPanelHeight = 68
)

// Board maps between screen pixels and grid cells.
type Board struct {
	Cols, Rows int
	CellSize   int
}

func (b Board) ScreenSize() (int, int) {
	return b.Cols*b.CellSize + OuterPadding*2, TopPanelHeight + b.Rows*b.CellSize + OuterPadding*2
}

func (b Board) Origin() image.Point {
	return image.Pt(OuterPadding, TopPanelHeight)
}

func (b Board) Bounds() image.Rectangle {
	o := b.Origin()
	return image.Rect(o.X, o.Y, o.X+b.Cols*b.CellSize, o.Y+b.Rows*b.CellSize)
}

func (b Board) CellOrigin(p grid.Position) image.Point {
	o := b.Origin()
	return image.Pt(o.X+p.X*b.CellSize, o.Y+p.Y*b.CellSize)
}

// CellAt returns the cell under screen point (x, y), if any.
func (b Board) CellAt(x, y int) (grid.Position, bool) {
	if !image.Pt(x, y).In(b.Bounds()) {
		return grid.Position{}, false
	}
	o := b.Origin()
	return grid.Position{X: (x - o.X) / b.CellSize, Y: (y - o.Y) / b.CellSize}, true
}
