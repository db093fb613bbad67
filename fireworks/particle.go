package fireworks

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// State is the particle lifecycle, Dead is terminal
type State uint8

const (
	Alive State = iota
	Dead
)

func (s State) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Particle is a single point of a burst
type Particle struct {
	X, Y     float64
	DX, DY   float64
	Lifetime int
	Alpha    float64
	Color    colorful.Color

	gravity float64
	fade    float64
	state   State
}

// NewParticle creates a particle at the origin with a random heading, speed and lifetime
func NewParticle(x, y float64, color colorful.Color, cfg *Config, rng Rand) Particle {
	speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
	angle := rng.Float64() * 2 * math.Pi

	lifetime := cfg.MinLifetime
	if span := cfg.MaxLifetime - cfg.MinLifetime; span > 0 {
		lifetime += rng.Intn(span + 1)
	}

	p := Particle{
		X:        x,
		Y:        y,
		DX:       math.Cos(angle) * speed,
		DY:       math.Sin(angle) * speed,
		Lifetime: lifetime,
		Alpha:    1.0,
		Color:    color,
		gravity:  cfg.Gravity,
		fade:     cfg.FadeStep,
	}
	if lifetime <= 0 {
		p.state = Dead
	}
	return p
}

// Step advances one frame and reports whether the particle is still alive
func (p *Particle) Step() bool {
	if p.state == Dead {
		return false
	}

	p.X += p.DX
	p.Y += p.DY
	p.DY += p.gravity
	p.Lifetime--
	p.Alpha = math.Max(0, p.Alpha-p.fade)

	if p.Lifetime <= 0 {
		p.state = Dead
	}
	return p.state == Alive
}

// State returns the lifecycle state
func (p *Particle) State() State {
	return p.state
}

// Alive reports whether the particle may still be stepped and drawn
func (p *Particle) Alive() bool {
	return p.state == Alive
}
