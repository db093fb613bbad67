package render

import (
	"github.com/lixenwraith/vi-clock/clock"
	"github.com/lixenwraith/vi-clock/fireworks"
)

// Context is everything a frame shows
type Context struct {
	Width, Height int
	Layout        Layout

	Snapshot clock.Snapshot
	Message  string
	Field    *fireworks.Field

	VoiceOn        bool
	VoiceAvailable bool
	TickOn         bool
	TickAvailable  bool
}
