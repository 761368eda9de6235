package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/04pril/gridsweeper/internal/game"
)

const (
	touchMoveSlopPx   = 10
	touchLongPressDur = 360 * time.Millisecond
)

type touchStart struct {
	X, Y         int
	LastX, LastY int
	At           time.Time
}

// pointer is a click in screen pixels, from a mouse or a finger.
type pointer struct {
	X, Y   int
	Button game.Button
}

func (g *Game) mouseInput(out []pointer) []pointer {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, pointer{X: mx, Y: my, Button: game.ButtonPrimary})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		out = append(out, pointer{X: mx, Y: my, Button: game.ButtonSecondary})
	}
	return out
}

// touchInput turns a short tap into a reveal and a long press into a flag.
// Touches that drift more than the slop are dropped.
func (g *Game) touchInput(out []pointer) []pointer {
	for _, id := range ebiten.TouchIDs() {
		x, y := ebiten.TouchPosition(id)
		st, ok := g.touches[id]
		if !ok {
			g.touches[id] = touchStart{X: x, Y: y, LastX: x, LastY: y, At: time.Now()}
			continue
		}
		st.LastX, st.LastY = x, y
		g.touches[id] = st
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.touches[id] = touchStart{X: x, Y: y, LastX: x, LastY: y, At: time.Now()}
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		st, ok := g.touches[id]
		if !ok {
			continue
		}
		delete(g.touches, id)
		if p, ok := st.release(time.Now()); ok {
			out = append(out, p)
		}
	}
	return out
}

func (st touchStart) release(now time.Time) (pointer, bool) {
	if absInt(st.LastX-st.X) > touchMoveSlopPx || absInt(st.LastY-st.Y) > touchMoveSlopPx {
		return pointer{}, false
	}
	b := game.ButtonPrimary
	if now.Sub(st.At) >= touchLongPressDur {
		b = game.ButtonSecondary
	}
	return pointer{X: st.LastX, Y: st.LastY, Button: b}, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
