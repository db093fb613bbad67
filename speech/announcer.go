package speech

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-clock/clock"
	"github.com/lixenwraith/vi-clock/parameter"
)

// Speaker turns text into speech, blocking until done
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Announcer speaks hourly announcements off the caller's goroutine
// At most one announcement is in flight, overlapping requests are dropped
type Announcer struct {
	speaker Speaker
	log     zerolog.Logger
	timeout time.Duration

	enabled atomic.Bool
	busy    atomic.Bool
	wg      sync.WaitGroup
}

// NewAnnouncer creates an enabled announcer, a nil speaker makes every call a no-op
func NewAnnouncer(s Speaker, log zerolog.Logger) *Announcer {
	a := &Announcer{
		speaker: s,
		log:     log,
		timeout: parameter.SpeechTimeout,
	}
	a.enabled.Store(true)
	return a
}

// SetEnabled toggles announcements
func (a *Announcer) SetEnabled(on bool) {
	a.enabled.Store(on)
}

// Enabled reports whether announcements are on
func (a *Announcer) Enabled() bool {
	return a.enabled.Load()
}

// Available reports whether a synthesizer is attached
func (a *Announcer) Available() bool {
	return a.speaker != nil
}

// Announce speaks the hour phrase, returns false when nothing was started
func (a *Announcer) Announce(hour int) bool {
	return a.Say(clock.HourPhrase(hour))
}

// Say speaks arbitrary text in the background
func (a *Announcer) Say(text string) bool {
	if a.speaker == nil || !a.enabled.Load() {
		return false
	}
	if !a.busy.CompareAndSwap(false, true) {
		a.log.Debug().Str("text", text).Msg("announcement skipped, speaker busy")
		return false
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer a.busy.Store(false)
		defer func() {
			if r := recover(); r != nil {
				a.log.Error().Interface("panic", r).Msg("speech crashed")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.speaker.Speak(ctx, text); err != nil {
			a.log.Warn().Err(err).Str("text", text).Msg("text-to-speech failed")
			return
		}
		a.log.Debug().Str("text", text).Msg("announced")
	}()
	return true
}

// Wait blocks until the in-flight announcement ends
func (a *Announcer) Wait() {
	a.wg.Wait()
}
