package render

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-clock/fireworks"
	"github.com/lixenwraith/vi-clock/parameter"
)

// BackgroundLayer clears the screen to the theme background
type BackgroundLayer struct {
	theme Theme
}

func NewBackgroundLayer(theme Theme) *BackgroundLayer {
	return &BackgroundLayer{theme: theme}
}

func (l *BackgroundLayer) Render(ctx Context, c Canvas) {
	fill(c, Rect{W: ctx.Width, H: ctx.Height}, style(l.theme.Background, l.theme.Background))
}

// ParticleLayer draws every live firework particle inside the sky
type ParticleLayer struct {
	theme   Theme
	visible bool
}

func NewParticleLayer(theme Theme) *ParticleLayer {
	return &ParticleLayer{theme: theme, visible: true}
}

// SetVisible hides or shows the fireworks
func (l *ParticleLayer) SetVisible(v bool) {
	l.visible = v
}

func (l *ParticleLayer) IsVisible() bool {
	return l.visible
}

func (l *ParticleLayer) Render(ctx Context, c Canvas) {
	if ctx.Field == nil {
		return
	}
	sky := ctx.Layout.Sky
	ctx.Field.Each(func(b *fireworks.Burst) {
		for _, p := range b.Particles() {
			x, y, ok := ParticleCell(sky, p.X, p.Y)
			if !ok {
				continue
			}
			c.SetContent(x, y, ParticleGlyph(p.Alpha), nil, ParticleStyle(l.theme, b.Color(), p.Alpha))
		}
	})
}

// ParticleCell maps simulation units to a sky cell, ok is false outside the sky
func ParticleCell(sky Rect, ux, uy float64) (x, y int, ok bool) {
	cx := math.Floor(ux / parameter.UnitsPerCellX)
	cy := math.Floor(uy / parameter.UnitsPerCellY)
	if cx < 0 || cy < 0 || cx >= float64(sky.W) || cy >= float64(sky.H) {
		return 0, 0, false
	}
	return sky.X + int(cx), sky.Y + int(cy), true
}

// ParticleColor fades the burst color into the background by opacity
// Opacity goes through an ease-out curve so particles stay bright until late in their fade
func ParticleColor(theme Theme, burst colorful.Color, alpha float64) colorful.Color {
	a := math.Max(0, math.Min(1, alpha))
	return theme.Background.BlendRgb(burst, ease.OutQuad(a))
}

// ParticleStyle is the cell style of a particle over the background
func ParticleStyle(theme Theme, burst colorful.Color, alpha float64) tcell.Style {
	return style(ParticleColor(theme, burst, alpha), theme.Background)
}

// ParticleGlyph shrinks the dot as the particle fades
func ParticleGlyph(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '●'
	case alpha > 0.33:
		return '•'
	default:
		return '·'
	}
}

// PanelLayer draws the clock panels
type PanelLayer struct {
	theme Theme
}

func NewPanelLayer(theme Theme) *PanelLayer {
	return &PanelLayer{theme: theme}
}

func (l *PanelLayer) Render(ctx Context, c Canvas) {
	t := l.theme
	lay := ctx.Layout
	panel := func(fg colorful.Color) tcell.Style { return style(fg, t.Panel) }

	// Time
	fill(c, lay.Time, panel(t.Time))
	if rows, ok := BigText(ctx.Snapshot.Time); ok && runewidth.StringWidth(rows[0]) <= lay.Time.W {
		for i, row := range rows {
			drawCentered(c, lay.Time, lay.Time.Y+i, row, panel(t.Time).Bold(true))
		}
	} else {
		drawCentered(c, lay.Time, lay.Time.Y+lay.Time.H/2, ctx.Snapshot.Time, panel(t.Time).Bold(true))
	}

	// Date
	fill(c, lay.Date, panel(t.Date))
	drawCentered(c, lay.Date, lay.Date.Y, ctx.Snapshot.Date, panel(t.Date))

	// Countdown
	fill(c, lay.Countdown, panel(t.Countdown))
	drawCentered(c, lay.Countdown, lay.Countdown.Y, "NEW YEAR COUNTDOWN", panel(t.Countdown).Bold(true))
	drawCentered(c, lay.Countdown, lay.Countdown.Y+1, ctx.Snapshot.Countdown.String(), panel(t.Countdown).Bold(true))

	// Message
	fill(c, lay.Message, panel(t.Message))
	drawCentered(c, lay.Message, lay.Message.Y, "TODAY'S INSPIRATION", panel(t.Message).Bold(true))
	for i, line := range lay.MessageLines {
		drawCentered(c, lay.Message, lay.Message.Y+1+i, line, panel(t.Message))
	}

	// Settings
	fill(c, lay.Settings, panel(t.Date))
	voice := SwitchLabel("Hourly Announcements", "v", ctx.VoiceOn, ctx.VoiceAvailable)
	tick := SwitchLabel("Tick Sound", "t", ctx.TickOn, ctx.TickAvailable)
	s := lay.Settings
	drawText(c, s.X+1, s.Y, s.W-1, voice, l.switchStyle(ctx.VoiceOn, ctx.VoiceAvailable))
	if tw := runewidth.StringWidth(tick); tw+runewidth.StringWidth(voice)+3 <= s.W {
		drawText(c, s.X+s.W-tw-1, s.Y, tw, tick, l.switchStyle(ctx.TickOn, ctx.TickAvailable))
	}
}

func (l *PanelLayer) switchStyle(on, available bool) tcell.Style {
	switch {
	case !available:
		return style(l.theme.Muted, l.theme.Panel)
	case on:
		return style(l.theme.Accent, l.theme.Panel)
	default:
		return style(l.theme.Date, l.theme.Panel)
	}
}

// SwitchLabel renders a toggle with its key hint
func SwitchLabel(name, key string, on, available bool) string {
	mark := "[ ]"
	if on {
		mark = "[●]"
	}
	label := mark + " " + name + " (" + key + ")"
	if !available {
		label += " n/a"
	}
	return label
}
