package render

import "github.com/lixenwraith/vi-clock/parameter"

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	// panelInset is the horizontal margin of every panel
	panelInset = 2
	// panelGap is the blank rows between panels
	panelGap = 1
	// minSkyRows is the smallest dedicated firework area, below it fireworks fill the screen
	minSkyRows = 4
	// maxMessageLines caps the wrapped message
	maxMessageLines = 4

	timeRows      = 3
	dateRows      = 1
	countdownRows = 2
	settingsRows  = 1
)

// Layout places the firework sky and the clock panels
type Layout struct {
	Sky       Rect
	Time      Rect
	Date      Rect
	Countdown Rect
	Message   Rect
	Settings  Rect

	// MessageLines is the wrapped message shown in the message panel
	MessageLines []string
	// Overlay is set when the panels float over a full-screen sky
	Overlay bool
}

// MessageWidth is the wrap width of the message for a screen width
func MessageWidth(screenWidth int) int {
	return max(1, screenWidth-2*panelInset-2)
}

// NewLayout stacks the panels at the bottom and gives the rest to the sky
func NewLayout(width, height int, message string) Layout {
	lines := Wrap(message, MessageWidth(width))
	if len(lines) > maxMessageLines {
		lines = lines[:maxMessageLines]
	}
	messageRows := 1 + len(lines)

	panelsHeight := timeRows + dateRows + countdownRows + messageRows + settingsRows + 5*panelGap
	panelW := max(0, width-2*panelInset)

	l := Layout{MessageLines: lines}

	skyRows := height - panelsHeight
	if skyRows < minSkyRows {
		l.Overlay = true
		l.Sky = Rect{X: 0, Y: 0, W: width, H: height}
		skyRows = max(0, skyRows)
	} else {
		l.Sky = Rect{X: 0, Y: 0, W: width, H: skyRows}
	}

	y := skyRows + panelGap
	next := func(rows int) Rect {
		r := Rect{X: panelInset, Y: y, W: panelW, H: rows}
		y += rows + panelGap
		return r
	}
	l.Time = next(timeRows)
	l.Date = next(dateRows)
	l.Countdown = next(countdownRows)
	l.Message = next(messageRows)
	l.Settings = next(settingsRows)
	return l
}

// SkyUnits is the firework surface size in simulation units
func (l Layout) SkyUnits() (w, h float64) {
	return float64(l.Sky.W) * parameter.UnitsPerCellX, float64(l.Sky.H) * parameter.UnitsPerCellY
}
