package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-clock/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.TickSampleRate)

	// resampleQuality is beep's interpolation quality for tick files at another rate
	resampleQuality = 4
)

// TickPlayer plays the per-second clock tick
type TickPlayer struct {
	mu          sync.Mutex
	log         zerolog.Logger
	tick        *beep.Buffer
	volume      float64
	enabled     bool
	initialized bool
}

// NewTickPlayer creates a player holding the generated tick, enabled by default
func NewTickPlayer(log zerolog.Logger) *TickPlayer {
	return &TickPlayer{
		log:     log,
		tick:    generatedTick(),
		volume:  parameter.TickVolume,
		enabled: true,
	}
}

func generatedTick() *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(NewTickGenerator(sampleRate))
	return buf
}

// Initialize sets up the speaker, calling it again is a no-op
func (p *TickPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.initialized = true
	return nil
}

// LoadFile replaces the tick with a WAV file, an empty path keeps the generated tick
// On error the current tick is kept
func (p *TickPlayer) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tick sound: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode tick sound %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return fmt.Errorf("tick sound %s is empty", path)
	}

	p.mu.Lock()
	p.tick = buf
	p.mu.Unlock()

	p.log.Debug().Str("path", path).Dur("length", tickDuration(buf)).Msg("tick sound loaded")
	return nil
}

// SetVolume sets the linear playback gain, clamped to [0, 1]
func (p *TickPlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = math.Max(0, math.Min(1, v))
}

// SetEnabled toggles the tick
func (p *TickPlayer) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

// Enabled reports whether the tick plays
func (p *TickPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Available reports whether the speaker is up
func (p *TickPlayer) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Len returns the tick length in samples
func (p *TickPlayer) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tick.Len()
}

// Play starts one tick, does nothing when disabled or without audio
func (p *TickPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled || p.volume <= 0 {
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: p.tick.Streamer(0, p.tick.Len()),
		Base:     2,
		Volume:   math.Log2(p.volume),
	})
}

// Cleanup stops pending sounds and closes the speaker
func (p *TickPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
