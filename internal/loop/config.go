package loop

import "time"

// Host configuration constants.
// Gameplay tuning lives in config.Tuning; these are fixed by the frontends.

// Simulation
const (
	TickRate     = 60
	TickDuration = time.Second / TickRate // Wall-clock pacing only; truncated to whole nanoseconds
	TickDelta    = 1.0 / TickRate         // Simulated seconds per tick
)

// Fixed logical canvas. Frontends scale it to whatever they render on.
const (
	CanvasWidth  = 1280
	CanvasHeight = 720
	CameraScale  = 32 // Canvas pixels per world unit
)

// Broad phase
const (
	GridCellSize = 2.0 // World units; must exceed the fastest per-tick movement
)

// Inactivity
const (
	InactivityDisconnect = 120 * time.Second
)
