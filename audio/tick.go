package audio

import (
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/vi-clock/parameter"
)

// TickGenerator streams one clock tick: a short sine with exponential decay
type TickGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewTickGenerator creates a tick generator for the given sample rate
func NewTickGenerator(sr beep.SampleRate) *TickGenerator {
	return &TickGenerator{
		sr:      sr,
		samples: sr.N(parameter.TickDuration),
	}
}

// Len returns the tick length in samples
func (g *TickGenerator) Len() int {
	return g.samples
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		sample := parameter.TickAmplitude * math.Sin(2*math.Pi*parameter.TickFrequency*t) * math.Exp(-parameter.TickDecay*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *TickGenerator) Err() error {
	return nil
}

// WriteTickWAV encodes one generated tick as 16-bit mono WAV
func WriteTickWAV(w io.WriteSeeker, sr beep.SampleRate) error {
	format := beep.Format{
		SampleRate:  sr,
		NumChannels: 1,
		Precision:   2,
	}
	return wav.Encode(w, NewTickGenerator(sr), format)
}

// tickDuration is the playback length of a buffer at the player rate
func tickDuration(buf *beep.Buffer) time.Duration {
	return buf.Format().SampleRate.D(buf.Len())
}
