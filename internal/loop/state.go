package loop

import (
	"github.com/charmbracelet/log"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

// WorldState holds one session's simulation: the live objects, the spawn
// queue, the score and the frame counter.
type WorldState struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle
	Bounds  physics.Rect    // Level rectangle
	Tiles   *object.TileMap // Optional destructible terrain
	Clock   physics.Clock   // Simulation time for timers

	score int
	frame int

	grid   *physics.SpatialGrid
	logger *log.Logger
}

// NewWorldState creates an empty world covering bounds.
func NewWorldState(bounds physics.Rect, logger *log.Logger) *WorldState {
	return &WorldState{
		Objects: []object.Object{},
		Bounds:  bounds,
		grid:    physics.NewSpatialGrid(bounds, GridCellSize),
		logger:  logger,
	}
}

// AddObject adds an object to the world immediately. Use during setup only;
// objects created mid-frame go through Spawn.
func (w *WorldState) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *WorldState) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (w *WorldState) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// removeDestroyed compacts destroyed objects out of the world and returns
// pooled ones to their pools.
func (w *WorldState) removeDestroyed() {
	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		if obj.Base().Destroyed() {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.Objects[len(kept):])
	w.Objects = kept
}

// AddKill records a kill. Implements object.Scoreboard.
func (w *WorldState) AddKill(victim object.Object) {
	w.score++
	w.logger.Debug("kill", "score", w.score, "frame", w.frame, "pos", victim.Base().Pos)
}

// Score returns the number of kills so far.
func (w *WorldState) Score() int {
	return w.score
}

// Frame returns the number of completed ticks. Implements object.FrameCounter.
func (w *WorldState) Frame() int {
	return w.frame
}

// Count returns how many live objects satisfy match.
func (w *WorldState) Count(match func(object.Object) bool) int {
	n := 0
	for _, obj := range w.Objects {
		if !obj.Base().Destroyed() && match(obj) {
			n++
		}
	}
	return n
}
