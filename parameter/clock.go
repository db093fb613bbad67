package parameter

import "time"

// Clock
const (
	// ClockInterval is the clock, countdown and tick sound period
	ClockInterval = time.Second

	TimeLayout = "15:04:05"
	DateLayout = "January 02, 2006"
)

// Countdown intensity levels fed to the firework spawn chance
const (
	IntensityNormal   = 1.0
	IntensityLastDay  = 2.0
	IntensityLastHour = 3.0
	IntensityFinal    = 5.0

	// FinalMinutes is the window before midnight that uses IntensityFinal
	FinalMinutes = 5
)

// Tick sound
const (
	TickDuration  = 50 * time.Millisecond
	TickFrequency = 1000.0
	TickAmplitude = 0.3
	// TickDecay is the exponential envelope rate (1/sec)
	TickDecay = 10.0
	// TickVolume is the playback gain of the tick (linear)
	TickVolume = 0.3
	// TickSampleRate matches the generated tick file
	TickSampleRate = 44100
)

// Speech
const (
	// SpeechRate is words per minute passed to the synthesizer
	SpeechRate = 150
	// SpeechTimeout bounds a single announcement
	SpeechTimeout = 15 * time.Second
)
