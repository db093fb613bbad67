package fireworks

// Field owns the active bursts of a render surface and drives them per frame
type Field struct {
	cfg    Config
	rng    Rand
	width  float64
	height float64

	bursts  []*Burst
	spawned int
}

// NewField creates an empty field over a surface of the given size in simulation units
func NewField(cfg Config, rng Rand, width, height float64) *Field {
	return &Field{
		cfg:    cfg,
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Resize updates the surface bounds, live bursts keep flying
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Size returns the surface bounds
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Tick runs one frame: maybe spawn, then step and drop exhausted bursts
// Intensity multiplies the spawn chance, values below 1 count as 1
func (f *Field) Tick(intensity float64) {
	if intensity < 1 {
		intensity = 1
	}
	if f.rng.Float64() < f.cfg.SpawnChance*intensity {
		x := f.randomCoord(f.width)
		y := f.randomCoord(f.height)
		f.Launch(x, y)
	}

	active := f.bursts[:0]
	for _, b := range f.bursts {
		if b.Step() {
			active = append(active, b)
		}
	}
	clear(f.bursts[len(active):])
	f.bursts = active
}

// Launch spawns a burst at an explicit point
func (f *Field) Launch(x, y float64) *Burst {
	b := SpawnBurst(x, y, &f.cfg, f.rng)
	f.bursts = append(f.bursts, b)
	f.spawned++
	return b
}

// Each calls fn for every active burst in spawn order
func (f *Field) Each(fn func(*Burst)) {
	for _, b := range f.bursts {
		fn(b)
	}
}

// Len returns the number of active bursts
func (f *Field) Len() int {
	return len(f.bursts)
}

// Spawned returns the total number of bursts created
func (f *Field) Spawned() int {
	return f.spawned
}

// randomCoord draws a coordinate in [0, extent), inset by the margin when it fits
func (f *Field) randomCoord(extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	lo, hi := 0.0, extent
	if m := f.cfg.SpawnMargin; m > 0 && extent > 2*m {
		lo, hi = m, extent-m
	}
	return lo + f.rng.Float64()*(hi-lo)
}
