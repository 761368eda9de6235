package ui

import (
	"image/color"
	"strings"
)

type theme struct {
	Name         string
	BG           color.Color
	Panel        color.Color
	Light        color.Color
	Dark         color.Color
	CellHidden   color.Color
	CellRevealed color.Color
	CellGrid     color.Color
	CellText     color.Color
	Mine         color.Color
	Exploded     color.Color
	Flag         color.Color
	FlagOnBomb   color.Color
	WrongFlag    color.Color
	Accent       color.Color
	Overlay      color.Color
	Digit        color.Color
	HeaderText   color.Color
	One          color.Color
}

var themes = []theme{
	{
		Name:         "Classic",
		BG:           rgb(192, 192, 192),
		Panel:        rgb(192, 192, 192),
		Light:        rgb(255, 255, 255),
		Dark:         rgb(128, 128, 128),
		CellHidden:   rgb(100, 100, 100),
		CellRevealed: rgb(200, 200, 200),
		CellGrid:     rgb(250, 250, 250),
		CellText:     rgb(0, 0, 0),
		Mine:         rgb(10, 10, 10),
		Exploded:     rgb(250, 100, 100),
		Flag:         rgb(100, 100, 250),
		FlagOnBomb:   rgb(250, 0, 0),
		WrongFlag:    rgb(180, 0, 0),
		Accent:       rgb(32, 128, 255),
		Overlay:      color.RGBA{0, 0, 0, 120},
		Digit:        rgb(215, 40, 40),
		HeaderText:   rgb(12, 12, 12),
		One:          rgb(25, 25, 220),
	},
	{
		Name:         "Dark",
		BG:           rgb(34, 36, 42),
		Panel:        rgb(48, 51, 60),
		Light:        rgb(78, 82, 93),
		Dark:         rgb(18, 20, 26),
		CellHidden:   rgb(62, 66, 78),
		CellRevealed: rgb(86, 90, 102),
		CellGrid:     rgb(30, 33, 41),
		CellText:     rgb(242, 242, 245),
		Mine:         rgb(245, 245, 245),
		Exploded:     rgb(210, 40, 40),
		Flag:         rgb(107, 199, 255),
		FlagOnBomb:   rgb(255, 25, 25),
		WrongFlag:    rgb(255, 25, 25),
		Accent:       rgb(107, 199, 255),
		Overlay:      color.RGBA{0, 0, 0, 140},
		Digit:        rgb(255, 98, 98),
		HeaderText:   rgb(245, 245, 245),
		One:          rgb(120, 170, 255),
	},
}

var numberColors = []color.Color{
	color.RGBA{},
	rgb(25, 25, 220),
	rgb(0, 130, 0),
	rgb(210, 20, 20),
	rgb(0, 0, 135),
	rgb(130, 0, 0),
	rgb(0, 128, 128),
	rgb(0, 0, 0),
	rgb(110, 110, 110),
}

func themeIndex(name string) int {
	for i, th := range themes {
		if strings.EqualFold(th.Name, name) {
			return i
		}
	}
	return 0
}

func (th theme) numberColor(n int) color.Color {
	if n == 1 {
		return th.One
	}
	if n < 0 || n >= len(numberColors) {
		return th.CellText
	}
	return numberColors[n]
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
