package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme is the clock's dark palette
type Theme struct {
	Background colorful.Color
	Panel      colorful.Color
	Time       colorful.Color
	Date       colorful.Color
	Countdown  colorful.Color
	Message    colorful.Color
	Accent     colorful.Color
	Muted      colorful.Color
}

// DefaultTheme returns the stock dark theme
func DefaultTheme() Theme {
	return Theme{
		Background: mustHex("#1a1a1a"),
		Panel:      mustHex("#252525"),
		Time:       mustHex("#4a9eff"),
		Date:       mustHex("#ffffff"),
		Countdown:  mustHex("#4caf50"),
		Message:    mustHex("#e5c07b"),
		Accent:     mustHex("#4a9eff"),
		Muted:      mustHex("#6b6b6b"),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// TcellColor converts to a truecolor tcell color
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// style builds a fg/bg style from theme colors
func style(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(fg)).Background(TcellColor(bg))
}
