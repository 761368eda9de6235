package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func drawBanner(screen *ebiten.Image, label string, th theme) {
	w := screen.Bounds().Dx()
	bw := min(220, w-8)
	ebitenutil.DrawRect(screen, float64((w-bw)/2), 14, float64(bw), 30, th.Overlay)
	drawTextCentered(screen, label, basicfont.Face7x13, (w-bw)/2, 22, bw, th.Accent)
}

func drawRaisedRect(screen *ebiten.Image, x, y, w, h int, fill color.Color, th theme) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), fill)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, th.Light, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, th.Light, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, th.Dark, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, th.Dark, false)
}

func drawSunkenRect(screen *ebiten.Image, x, y, w, h int, th theme) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), th.Panel)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, th.Dark, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, th.Dark, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, th.Light, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, th.Light, false)
}

// drawTextCentered centers s horizontally in [x, x+w); y is the top of the line.
func drawTextCentered(screen *ebiten.Image, s string, f font.Face, x, y, w int, clr color.Color) {
	b := text.BoundString(f, s)
	text.Draw(screen, s, f, x+(w-b.Dx())/2, y+f.Metrics().Ascent.Ceil(), clr)
}

func drawDigital(screen *ebiten.Image, x, y, value, digits int, clr color.Color) {
	ebitenutil.DrawRect(screen, float64(x-3), float64(y-3), float64(digits*18+6), 28, color.RGBA{20, 20, 20, 255})

	n := value
	neg := n < 0
	if neg {
		n = -n
	}
	limit := int(math.Pow10(digits)) - 1
	if neg {
		limit = int(math.Pow10(digits-1)) - 1
	}
	if n > limit {
		n = limit
	}

	chars := make([]int, digits)
	for i := digits - 1; i >= 0; i-- {
		chars[i] = n % 10
		n /= 10
	}
	if neg {
		chars[0] = -1
	}
	for i := 0; i < digits; i++ {
		drawSevenSegDigit(screen, x+i*18, y, chars[i], clr)
	}
}

// segments a..g as bits 6..0
var sevenSeg = [10]int{
	0b1111110,
	0b0110000,
	0b1101101,
	0b1111001,
	0b0110011,
	0b1011011,
	0b1011111,
	0b1110000,
	0b1111111,
	0b1111011,
}

// drawSevenSegDigit draws d in 0..9, or a minus sign for -1.
func drawSevenSegDigit(screen *ebiten.Image, x, y, d int, clr color.Color) {
	mask := 0
	switch {
	case d >= 0 && d <= 9:
		mask = sevenSeg[d]
	case d == -1:
		mask = 0b0000001
	}

	off := color.RGBA{60, 20, 20, 255}
	seg := func(bit int, rx, ry, rw, rh float64) {
		c := color.Color(off)
		if mask&bit != 0 {
			c = clr
		}
		ebitenutil.DrawRect(screen, float64(x)+rx, float64(y)+ry, rw, rh, c)
	}

	seg(0b1000000, 3, 0, 10, 2)
	seg(0b0100000, 13, 2, 2, 9)
	seg(0b0010000, 13, 13, 2, 9)
	seg(0b0001000, 3, 22, 10, 2)
	seg(0b0000100, 1, 13, 2, 9)
	seg(0b0000010, 1, 2, 2, 9)
	seg(0b0000001, 3, 11, 10, 2)
}

func drawMine(screen *ebiten.Image, x, y, size int, clr color.Color) {
	cx, cy := float32(x+size/2), float32(y+size/2)
	r := float32(size) / 4
	vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	vector.StrokeLine(screen, cx-r*1.5, cy, cx+r*1.5, cy, 2, clr, true)
	vector.StrokeLine(screen, cx, cy-r*1.5, cx, cy+r*1.5, 2, clr, true)
}

func drawFlag(screen *ebiten.Image, x, y, size int, pole, flag color.Color) {
	s := float32(size) / 24
	px, py := float32(x), float32(y)
	vector.DrawFilledRect(screen, px+11*s, py+6*s, 2*s, 12*s, pole, false)
	vector.StrokeLine(screen, px+11*s, py+6*s, px+5*s, py+10*s, 1.5*s, flag, false)
	vector.StrokeLine(screen, px+5*s, py+10*s, px+11*s, py+14*s, 1.5*s, flag, false)
	vector.DrawFilledRect(screen, px+8*s, py+8*s, 3*s, 4*s, flag, false)
	vector.DrawFilledRect(screen, px+7*s, py+17*s, 9*s, 2*s, pole, false)
}

func drawCross(screen *ebiten.Image, x, y, size int, clr color.Color) {
	m := float32(size) / 6
	x0, y0 := float32(x)+m, float32(y)+m
	x1, y1 := float32(x+size)-m, float32(y+size)-m
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, false)
	vector.StrokeLine(screen, x1, y0, x0, y1, 2, clr, false)
}
