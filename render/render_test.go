package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-clock/clock"
	"github.com/lixenwraith/vi-clock/fireworks"
	"github.com/lixenwraith/vi-clock/parameter"
	"github.com/lixenwraith/vi-clock/vmath"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records the last write per cell
type fakeCanvas struct {
	cells map[[2]int]cell
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]cell)}
}

func (f *fakeCanvas) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	f.cells[[2]int{x, y}] = cell{r, st}
}

func (f *fakeCanvas) row(y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.r)
		if runewidth.RuneWidth(c.r) == 2 {
			x++
		}
	}
	return b.String()
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"Empty", "", 10, nil},
		{"Fits", "hello world", 20, []string{"hello world"}},
		{"Breaks", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"Long word truncated", "supercalifragilistic", 8, []string{"superca…"}},
		{"Zero width", "a b", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			for _, line := range got {
				if runewidth.StringWidth(line) > tt.width {
					t.Errorf("Line %q exceeds width %d", line, tt.width)
				}
			}
		})
	}
}

func TestBigText(t *testing.T) {
	rows, ok := BigText("15:04:05")
	if !ok {
		t.Fatal("Expected digits and colons to render")
	}
	for i, row := range rows {
		if w := runewidth.StringWidth(row); w != 27 {
			t.Errorf("Row %d expected width 27, got %d", i, w)
		}
	}

	if _, ok := BigText("12:3x"); ok {
		t.Error("Expected unknown rune to fail")
	}
}

func TestLayoutDedicatedSky(t *testing.T) {
	l := NewLayout(80, 40, "short message")

	if l.Overlay {
		t.Fatal("Expected dedicated sky on a tall screen")
	}
	if l.Sky.Y != 0 || l.Sky.W != 80 || l.Sky.H < minSkyRows {
		t.Errorf("Unexpected sky rect %+v", l.Sky)
	}

	panels := []Rect{l.Time, l.Date, l.Countdown, l.Message, l.Settings}
	prevEnd := l.Sky.Y + l.Sky.H
	for i, p := range panels {
		if p.Y < prevEnd {
			t.Errorf("Panel %d overlaps previous region: %+v", i, p)
		}
		if p.X != panelInset || p.W != 80-2*panelInset {
			t.Errorf("Panel %d unexpected horizontal extent: %+v", i, p)
		}
		prevEnd = p.Y + p.H
	}
	if prevEnd > 40 {
		t.Errorf("Panels overflow the screen, end at row %d", prevEnd)
	}
	if l.Message.H != 2 {
		t.Errorf("Expected title plus one message line, got height %d", l.Message.H)
	}
}

func TestLayoutOverlayOnSmallScreen(t *testing.T) {
	l := NewLayout(40, 10, "a message that wraps over several lines on a narrow screen")
	if !l.Overlay {
		t.Fatal("Expected overlay layout on a short screen")
	}
	if l.Sky != (Rect{W: 40, H: 10}) {
		t.Errorf("Expected full-screen sky, got %+v", l.Sky)
	}
	if len(l.MessageLines) > maxMessageLines {
		t.Errorf("Expected at most %d message lines, got %d", maxMessageLines, len(l.MessageLines))
	}
}

func TestSkyUnits(t *testing.T) {
	l := NewLayout(100, 50, "")
	w, h := l.SkyUnits()
	if w != float64(l.Sky.W)*parameter.UnitsPerCellX || h != float64(l.Sky.H)*parameter.UnitsPerCellY {
		t.Errorf("Unexpected sky units %fx%f for %+v", w, h, l.Sky)
	}
}

func TestParticleCell(t *testing.T) {
	sky := Rect{X: 0, Y: 0, W: 10, H: 5}
	tests := []struct {
		name   string
		ux, uy float64
		x, y   int
		ok     bool
	}{
		{"Origin", 0, 0, 0, 0, true},
		{"Inside", 13, 25, 2, 2, true},
		{"Negative", -1, 5, 0, 0, false},
		{"Right edge", 10 * parameter.UnitsPerCellX, 0, 0, 0, false},
		{"Below", 0, 5 * parameter.UnitsPerCellY, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ParticleCell(sky, tt.ux, tt.uy)
			if ok != tt.ok || (ok && (x != tt.x || y != tt.y)) {
				t.Errorf("Expected (%d, %d, %v), got (%d, %d, %v)", tt.x, tt.y, tt.ok, x, y, ok)
			}
		})
	}
}

func TestParticleColorFades(t *testing.T) {
	theme := DefaultTheme()
	red := fireworks.ParsePalette([]string{"#ff0000"})[0]

	if !ParticleColor(theme, red, 1).AlmostEqualRgb(red) {
		t.Error("Expected full opacity to show the burst color")
	}
	if !ParticleColor(theme, red, 0).AlmostEqualRgb(theme.Background) {
		t.Error("Expected zero opacity to match the background")
	}

	prev := 2.0
	for a := 1.0; a >= 0; a -= 0.1 {
		d := ParticleColor(theme, red, a).DistanceRgb(theme.Background)
		if d > prev+1e-9 {
			t.Fatalf("Expected color to approach background as alpha drops, alpha %f", a)
		}
		prev = d
	}
}

func TestParticleGlyph(t *testing.T) {
	if ParticleGlyph(1) != '●' || ParticleGlyph(0.5) != '•' || ParticleGlyph(0.1) != '·' {
		t.Error("Unexpected glyph progression")
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var order []string
	o := NewOrchestrator()
	o.Register(layerFunc(func() { order = append(order, "panel") }), PriorityPanel)
	o.Register(layerFunc(func() { order = append(order, "bg") }), PriorityBackground)
	o.Register(layerFunc(func() { order = append(order, "particle") }), PriorityParticle)
	o.Register(layerFunc(func() { order = append(order, "panel2") }), PriorityPanel)

	o.RenderFrame(Context{}, newFakeCanvas())

	want := "bg,particle,panel,panel2"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected order %s, got %s", want, got)
	}
}

type layerFunc func()

func (f layerFunc) Render(Context, Canvas) { f() }

func TestParticleLayerHidden(t *testing.T) {
	theme := DefaultTheme()
	field := fireworks.NewField(fireworks.DefaultConfig(), vmath.NewFastRand(1), 600, 300)
	field.Launch(300, 150)

	layer := NewParticleLayer(theme)
	layer.SetVisible(false)

	o := NewOrchestrator()
	o.Register(layer, PriorityParticle)

	canvas := newFakeCanvas()
	o.RenderFrame(Context{Width: 100, Height: 25, Layout: Layout{Sky: Rect{W: 100, H: 25}}, Field: field}, canvas)
	if len(canvas.cells) != 0 {
		t.Errorf("Expected hidden layer to draw nothing, got %d cells", len(canvas.cells))
	}
}

func TestParticleLayerDrawsBurst(t *testing.T) {
	theme := DefaultTheme()
	cfg := fireworks.DefaultConfig()
	field := fireworks.NewField(cfg, vmath.NewFastRand(3), 600, 300)
	b := field.Launch(300, 150)

	canvas := newFakeCanvas()
	ctx := Context{Width: 100, Height: 25, Layout: Layout{Sky: Rect{W: 100, H: 25}}, Field: field}
	NewParticleLayer(theme).Render(ctx, canvas)

	// every particle still sits on the origin cell
	c, ok := canvas.cells[[2]int{50, 12}]
	if !ok {
		t.Fatal("Expected particle at the burst origin cell")
	}
	if c.r != '●' {
		t.Errorf("Expected full-opacity glyph, got %q", c.r)
	}
	if c.style != ParticleStyle(theme, b.Color(), 1) {
		t.Error("Expected burst color at full opacity")
	}
}

func TestDefaultOrchestratorFrame(t *testing.T) {
	mock := clock.NewMockTimeProvider(time.Date(2026, time.December, 31, 23, 58, 0, 0, time.UTC))
	snap := clock.New(mock).Snapshot()

	const w, h = 80, 40
	msg := "Small steps every day add up to big results."
	ctx := Context{
		Width:          w,
		Height:         h,
		Layout:         NewLayout(w, h, msg),
		Snapshot:       snap,
		Message:        msg,
		VoiceOn:        true,
		VoiceAvailable: true,
		TickOn:         false,
		TickAvailable:  true,
	}

	canvas := newFakeCanvas()
	NewDefaultOrchestrator(DefaultTheme()).RenderFrame(ctx, canvas)

	screen := make([]string, h)
	for y := range screen {
		screen[y] = canvas.row(y, w)
	}
	all := strings.Join(screen, "\n")

	for _, want := range []string{
		"December 31, 2026",
		"NEW YEAR COUNTDOWN",
		"New Year 2027 in: 0d 0h 2m 0s",
		"TODAY'S INSPIRATION",
		msg,
		"[●] Hourly Announcements (v)",
		"[ ] Tick Sound (t)",
	} {
		if !strings.Contains(all, want) {
			t.Errorf("Expected frame to contain %q", want)
		}
	}

	// big font time occupies the time panel
	rows, _ := BigText("23:58:00")
	if !strings.Contains(screen[ctx.Layout.Time.Y], rows[0]) {
		t.Errorf("Expected big time in first time row, got %q", screen[ctx.Layout.Time.Y])
	}
}

func TestSwitchLabel(t *testing.T) {
	if got := SwitchLabel("Tick Sound", "t", true, false); got != "[●] Tick Sound (t) n/a" {
		t.Errorf("Unexpected label %q", got)
	}
}
