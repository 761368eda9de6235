package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/04pril/gridsweeper/internal/grid"
)

func TestScreenSize(t *testing.T) {
	b := Board{Cols: 20, Rows: 15, CellSize: 32}
	w, h := b.ScreenSize()
	assert.Equal(t, 20*32+2*OuterPadding, w)
	assert.Equal(t, TopPanelHeight+15*32+2*OuterPadding, h)
}

func TestCellAt(t *testing.T) {
	b := Board{Cols: 3, Rows: 2, CellSize: 10}
	testCases := []struct {
		x, y int
		want grid.Position
		ok   bool
	}{
		{OuterPadding, TopPanelHeight, grid.Position{X: 0, Y: 0}, true},
		{OuterPadding + 9, TopPanelHeight + 9, grid.Position{X: 0, Y: 0}, true},
		{OuterPadding + 10, TopPanelHeight, grid.Position{X: 1, Y: 0}, true},
		{OuterPadding + 29, TopPanelHeight + 19, grid.Position{X: 2, Y: 1}, true},
		{OuterPadding + 30, TopPanelHeight, grid.Position{}, false},
		{OuterPadding, TopPanelHeight + 20, grid.Position{}, false},
		{OuterPadding - 1, TopPanelHeight, grid.Position{}, false},
		{OuterPadding, TopPanelHeight - 5, grid.Position{}, false},
		{0, 0, grid.Position{}, false},
	}
	for _, tc := range testCases {
		got, ok := b.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "(%d, %d)", tc.x, tc.y)
		assert.Equal(t, tc.want, got, "(%d, %d)", tc.x, tc.y)
	}
}

func TestCellOriginRoundTrip(t *testing.T) {
	b := Board{Cols: 9, Rows: 7, CellSize: 24}
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			p := grid.Position{X: x, Y: y}
			o := b.CellOrigin(p)
			got, ok := b.CellAt(o.X+b.CellSize/2, o.Y+b.CellSize/2)
			assert.True(t, ok)
			assert.Equal(t, p, got)
		}
	}
	assert.Equal(t, image.Pt(OuterPadding, TopPanelHeight), b.CellOrigin(grid.Position{}))
}
