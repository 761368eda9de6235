package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/04pril/gridsweeper/internal/game"
	"github.com/04pril/gridsweeper/internal/grid"
	"github.com/04pril/gridsweeper/internal/layout"
)

const (
	keyRestart = ebiten.KeyN
	keyTheme   = ebiten.KeyT
	keyQuit    = ebiten.KeyEscape
)

// Game is the ebiten front end. It owns the game state and translates
// pointer events into cell clicks.
type Game struct {
	state    *game.State
	board    layout.Board
	themeIdx int
	font     font.Face
	faceRect image.Rectangle
	touches  map[ebiten.TouchID]touchStart
	log      logrus.FieldLogger
}

func New(state *game.State, cellSize int, themeName string, log logrus.FieldLogger) *Game {
	g := &Game{
		state:    state,
		themeIdx: themeIndex(themeName),
		font:     basicfont.Face7x13,
		touches:  map[ebiten.TouchID]touchStart{},
		log:      log,
	}
	g.board = layout.Board{
		Cols:     state.Grid().Width(),
		Rows:     state.Grid().Height(),
		CellSize: cellSize,
	}
	return g
}

// WindowSize is the size the window should open at.
func (g *Game) WindowSize() (int, int) {
	return g.board.ScreenSize()
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.board.ScreenSize()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(keyQuit) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(keyRestart) {
		if err := g.state.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(keyTheme) {
		g.themeIdx = (g.themeIdx + 1) % len(themes)
		g.log.WithField("theme", themes[g.themeIdx].Name).Debug("theme changed")
	}

	var pointers []pointer
	pointers = g.mouseInput(pointers)
	pointers = g.touchInput(pointers)
	for _, p := range pointers {
		if err := g.handlePointer(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) handlePointer(p pointer) error {
	if p.Button == game.ButtonPrimary && image.Pt(p.X, p.Y).In(g.faceRect) {
		return g.state.Restart()
	}
	pos, ok := g.board.CellAt(p.X, p.Y)
	if !ok {
		return nil
	}
	before := g.state.Status()
	g.state.Click(pos, p.Button)
	if after := g.state.Status(); after != before {
		g.log.WithFields(logrus.Fields{
			"from": before.String(),
			"to":   after.String(),
		}).Debug("status changed")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := themes[g.themeIdx]
	screen.Fill(th.BG)

	windowW, _ := g.board.ScreenSize()

	// top panel
	drawRaisedRect(screen, layout.OuterPadding-2, 10, windowW-(layout.OuterPadding-2)*2, layout.TopPanelHeight-18, th.Panel, th)
	drawDigital(screen, layout.OuterPadding+10, 20, g.state.RemainingBombs(), 3, th.Digit)

	faceSize := 28
	faceX := windowW/2 - faceSize/2
	faceY := 20
	g.faceRect = image.Rect(faceX, faceY, faceX+faceSize, faceY+faceSize)
	drawRaisedRect(screen, faceX, faceY, faceSize, faceSize, th.Panel, th)
	face := ":)"
	switch g.state.Status() {
	case game.Lost:
		face = "X("
	case game.Won:
		face = "B)"
	}
	drawTextCentered(screen, face, g.font, faceX, faceY+7, faceSize, th.HeaderText)

	bounds := g.board.Bounds()
	drawSunkenRect(screen, bounds.Min.X-2, bounds.Min.Y-2, bounds.Dx()+4, bounds.Dy()+4, th)

	grd := g.state.Grid()
	grd.Each(func(c grid.Cell) {
		g.drawCell(screen, grd, c, th)
	})

	info := fmt.Sprintf("%dx%d/%d  N: new game  T: theme", grd.Width(), grd.Height(), grd.NumBombs())
	text.Draw(screen, info, g.font, layout.OuterPadding, 10, th.HeaderText)

	switch g.state.Status() {
	case game.Won:
		drawBanner(screen, "YOU WIN!", th)
	case game.Lost:
		drawBanner(screen, "BOOM!", th)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, grd *grid.Grid, c grid.Cell, th theme) {
	size := g.board.CellSize
	o := g.board.CellOrigin(c.Position)
	px, py := o.X, o.Y
	over := g.state.IsOver()

	switch c.Status {
	case grid.Discovered:
		if c.Type == grid.Bomb {
			ebitenutil.DrawRect(screen, float64(px), float64(py), float64(size), float64(size), th.Exploded)
			drawMine(screen, px, py, size, th.Mine)
		} else {
			ebitenutil.DrawRect(screen, float64(px), float64(py), float64(size), float64(size), th.CellRevealed)
			if n := grd.NeighborBombCount(c.Position); n > 0 {
				drawTextCentered(screen, fmt.Sprint(n), g.font, px, py+(size-13)/2, size, th.numberColor(n))
			}
		}
		vector.StrokeRect(screen, float32(px), float32(py), float32(size), float32(size), 1, th.CellGrid, false)

	case grid.Flagged:
		drawRaisedRect(screen, px, py, size, size, th.CellHidden, th)
		flag := th.Flag
		if over && c.Type == grid.Bomb {
			flag = th.FlagOnBomb
		}
		drawFlag(screen, px, py, size, th.CellText, flag)
		if g.state.Status() == game.Lost && c.Type == grid.Safe {
			drawCross(screen, px, py, size, th.WrongFlag)
		}

	case grid.Unknown:
		drawRaisedRect(screen, px, py, size, size, th.CellHidden, th)
		// bombs are shown on a lost board without touching the grid
		if g.state.Status() == game.Lost && c.Type == grid.Bomb {
			drawMine(screen, px, py, size, th.Mine)
		}
	}
}
