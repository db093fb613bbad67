package parameter

import "time"

// Firework Particles
const (
	// ParticleMinSpeed is minimum initial speed of a burst particle (units per frame)
	ParticleMinSpeed = 2.0
	// ParticleMaxSpeed is maximum initial speed of a burst particle (units per frame)
	ParticleMaxSpeed = 5.0
	// ParticleMinLifetime is the shortest particle life (frames, inclusive)
	ParticleMinLifetime = 20
	// ParticleMaxLifetime is the longest particle life (frames, inclusive)
	ParticleMaxLifetime = 40
	// ParticleGravity is added to vertical velocity every frame (units per frame²)
	ParticleGravity = 0.1
	// ParticleFadeStep is opacity lost every frame
	ParticleFadeStep = 0.02
)

// Firework Bursts
const (
	// BurstParticleCount is the number of particles created per burst
	BurstParticleCount = 30
	// BurstSpawnChance is the per-frame spawn probability at intensity 1
	BurstSpawnChance = 0.05
	// BurstSpawnMargin keeps spawn points away from the surface edge (units)
	BurstSpawnMargin = 50.0
)

// BurstPalette holds the burst colors as hex literals
var BurstPalette = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}

// Render mapping of simulation units onto terminal cells
const (
	// UnitsPerCellX is the horizontal simulation units covered by one column
	UnitsPerCellX = 6.0
	// UnitsPerCellY is the vertical simulation units covered by one row, cells are roughly 1:2
	UnitsPerCellY = 12.0
)

// FrameInterval is the animation tick (~60 FPS)
const FrameInterval = 16 * time.Millisecond
