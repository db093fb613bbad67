// Package fireworks simulates the decorative firework bursts drawn behind the clock.
//
// A Burst owns a fixed set of Particles sharing an origin and color. Each call to Step
// advances one frame and reports liveness; callers drop whatever reports false. Field is
// the per-frame driver that spawns bursts with an intensity-scaled chance and keeps the
// active set. Nothing here is safe for concurrent use: the frame loop owns all state.
//
// All randomness goes through Rand so tests can supply fixed sequences.
package fireworks
