package fireworks

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-clock/parameter"
)

// Rand is the random source used for every draw in the simulation
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Config holds the simulation tuning, units are simulation units and frames
type Config struct {
	ParticleCount int

	MinSpeed, MaxSpeed       float64
	MinLifetime, MaxLifetime int

	Gravity  float64
	FadeStep float64

	SpawnChance float64
	SpawnMargin float64

	Palette []colorful.Color
}

// DefaultConfig returns the stock firework tuning
func DefaultConfig() Config {
	return Config{
		ParticleCount: parameter.BurstParticleCount,
		MinSpeed:      parameter.ParticleMinSpeed,
		MaxSpeed:      parameter.ParticleMaxSpeed,
		MinLifetime:   parameter.ParticleMinLifetime,
		MaxLifetime:   parameter.ParticleMaxLifetime,
		Gravity:       parameter.ParticleGravity,
		FadeStep:      parameter.ParticleFadeStep,
		SpawnChance:   parameter.BurstSpawnChance,
		SpawnMargin:   parameter.BurstSpawnMargin,
		Palette:       ParsePalette(parameter.BurstPalette),
	}
}

// ParsePalette converts hex literals, invalid entries are skipped
func ParsePalette(hexes []string) []colorful.Color {
	palette := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		palette = append(palette, c)
	}
	return palette
}

// pickColor draws one palette entry, white when the palette is empty
func (c *Config) pickColor(rng Rand) colorful.Color {
	if len(c.Palette) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c.Palette[rng.Intn(len(c.Palette))]
}
