package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display cells
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			w = runewidth.Truncate(w, width, "…")
			ww = runewidth.StringWidth(w)
		}
		if lineW > 0 && lineW+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(w)
		lineW += ww
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// drawText writes s from (x, y), clipped to maxW cells, returns the cells used
func drawText(c Canvas, x, y, maxW int, s string, st tcell.Style) int {
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if used+rw > maxW {
			break
		}
		c.SetContent(x+used, y, r, nil, st)
		used += rw
	}
	return used
}

// drawCentered writes s centered in the row of r, truncating when too wide
func drawCentered(c Canvas, r Rect, y int, s string, st tcell.Style) {
	if r.W <= 0 {
		return
	}
	w := runewidth.StringWidth(s)
	if w > r.W {
		s = runewidth.Truncate(s, r.W, "…")
		w = runewidth.StringWidth(s)
	}
	drawText(c, r.X+(r.W-w)/2, y, r.W, s, st)
}

// fill paints a rectangle with spaces
func fill(c Canvas, r Rect, st tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.SetContent(x, y, ' ', nil, st)
		}
	}
}
