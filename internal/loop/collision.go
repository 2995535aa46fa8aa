package loop

import (
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

// rebuildGrid indexes every live collidable object by its current box.
// Called once per tick before the update pass; Query compensates for
// movement during the pass with an exact overlap test.
func (w *WorldState) rebuildGrid() {
	w.grid.Clear()
	for i, obj := range w.Objects {
		b := obj.Base()
		if b.Destroyed() || !b.Collidable {
			continue
		}
		w.grid.Insert(b.Pos, b.Size, i)
	}
}

// Query calls fn for each live collidable object overlapping the box at
// center with the given size, until fn returns true. Objects destroyed
// earlier in the same frame are skipped. Implements object.Querier.
func (w *WorldState) Query(center, size physics.Vec2, fn func(object.Object) bool) {
	w.grid.Query(center, size, func(i int) bool {
		if i >= len(w.Objects) {
			return false
		}
		obj := w.Objects[i]
		b := obj.Base()
		if b.Destroyed() || !b.Collidable || !physics.Overlap(center, size, b.Pos, b.Size) {
			return false
		}
		return fn(obj)
	})
}
