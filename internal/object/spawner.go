package object

import (
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/physics"
)

// RockSpawner releases a rock every Interval frames, starting on frame 0.
type RockSpawner struct {
	Interval int
	X        float64
	MinY     float64
	MaxY     float64
	tuning   config.Tuning
}

// NewRockSpawner creates a spawner using the tuning's spawn band and cadence.
func NewRockSpawner(t config.Tuning) *RockSpawner {
	return &RockSpawner{
		Interval: t.SpawnInterval,
		X:        t.SpawnX,
		MinY:     t.SpawnMinY,
		MaxY:     t.SpawnMaxY,
		tuning:   t,
	}
}

// Update spawns a rock if the current frame is on the cadence and returns it,
// or nil. The caller advances the frame counter.
func (s *RockSpawner) Update(ctx UpdateContext) *Rock {
	frame := ctx.Frames.Frame()
	if frame != 0 && (s.Interval <= 0 || frame%s.Interval != 0) {
		return nil
	}

	y := s.MinY + ctx.Rand.Float64()*(s.MaxY-s.MinY)
	rock := NewRock(physics.V(s.X, y), s.tuning)
	ctx.Spawner.Spawn(rock)
	return rock
}
