package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-clock/parameter"
)

// Screen is the subset of tcell.Screen the loop drives
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	PollEvent() tcell.Event
	Show()
	Sync()
}

// Run drives frames and clock ticks until ctx ends or the user quits
// The caller owns the screen lifecycle; Fini unblocks the event poller
func (e *Engine) Run(ctx context.Context, screen Screen, frameInterval time.Duration) error {
	if frameInterval <= 0 {
		frameInterval = parameter.FrameInterval
	}

	e.Resize(screen.Size())
	e.ClockTick()

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()
	clockTicker := time.NewTicker(parameter.ClockInterval)
	defer clockTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !e.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				e.Resize(ev.Size())
				screen.Sync()
			}

		case <-clockTicker.C:
			e.ClockTick()

		case <-frameTicker.C:
			e.FrameTick()
			e.Render(screen)
			screen.Show()
		}
	}
}
