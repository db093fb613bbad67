package fireworks

import "github.com/lucasb-eyer/go-colorful"

// Burst is one firework: particles sharing origin and color
type Burst struct {
	X, Y      float64
	color     colorful.Color
	particles []Particle
}

// SpawnBurst creates a burst of cfg.ParticleCount particles at the given point
func SpawnBurst(x, y float64, cfg *Config, rng Rand) *Burst {
	color := cfg.pickColor(rng)
	b := &Burst{
		X:         x,
		Y:         y,
		color:     color,
		particles: make([]Particle, 0, cfg.ParticleCount),
	}
	for i := 0; i < cfg.ParticleCount; i++ {
		b.particles = append(b.particles, NewParticle(x, y, color, cfg, rng))
	}
	return b
}

// Step advances every particle, keeps the survivors and reports whether any remain
func (b *Burst) Step() bool {
	alive := b.particles[:0]
	for i := range b.particles {
		if b.particles[i].Step() {
			alive = append(alive, b.particles[i])
		}
	}
	clear(b.particles[len(alive):])
	b.particles = alive
	return len(b.particles) > 0
}

// Alive reports whether the burst still holds particles
func (b *Burst) Alive() bool {
	return len(b.particles) > 0
}

// Color returns the color shared by every particle
func (b *Burst) Color() colorful.Color {
	return b.color
}

// Len returns the number of particles held
func (b *Burst) Len() int {
	return len(b.particles)
}

// Particles exposes the live particles for drawing, callers must not retain the slice across Step
func (b *Burst) Particles() []Particle {
	return b.particles
}
