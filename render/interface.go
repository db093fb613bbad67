package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface, satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Layer is one stage of the frame pipeline
type Layer interface {
	Render(ctx Context, c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
