package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a bounded level.
// Objects are inserted by bounding box and index, then nearby objects can be
// queried by box. Positions outside the level clamp to the border cells, so
// objects that drift off the field are still found.
//
// Queries scan one extra ring of cells so that objects which moved a little
// since the grid was rebuilt are still reported; callers must run an exact
// overlap test on current positions.
type SpatialGrid struct {
	origin      Vec2    // Bottom-left corner of the covered area
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// Per-index query stamps so an object spanning several cells is reported once.
	stamps []uint32
	gen    uint32
}

// gridCell stores the indices of objects that overlap a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering bounds.
// cellSize should be >= the largest distance an object moves between rebuilds.
func NewSpatialGrid(bounds Rect, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(bounds.Size.X() / cellSize))
	rows := int(math.Ceil(bounds.Size.Y() / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		origin:      bounds.Min(),
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) to every cell its box touches.
func (g *SpatialGrid) Insert(pos, size Vec2, index int) {
	c0, r0, c1, r1 := g.span(pos, size, 0)
	for r := r0; r <= r1; r++ {
		rowOffset := r * g.cols
		for c := c0; c <= c1; c++ {
			cell := &g.cells[rowOffset+c]
			cell.items = append(cell.items, index)
		}
	}
	if index >= len(g.stamps) {
		grown := make([]uint32, index+1, 2*(index+1))
		copy(grown, g.stamps)
		g.stamps = grown
	}
}

// Query calls fn once for each item index whose cells are near the given box.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) Query(pos, size Vec2, fn func(index int) bool) {
	g.gen++
	if g.gen == 0 {
		// Stamp counter wrapped; old stamps could alias the new generation.
		clear(g.stamps)
		g.gen = 1
	}

	c0, r0, c1, r1 := g.span(pos, size, 1)
	for r := r0; r <= r1; r++ {
		rowOffset := r * g.cols
		for c := c0; c <= c1; c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if g.stamps[itemIdx] == g.gen {
					continue
				}
				g.stamps[itemIdx] = g.gen
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// span returns the clamped cell range covered by a box, grown by pad cells.
func (g *SpatialGrid) span(pos, size Vec2, pad int) (c0, r0, c1, r1 int) {
	half := size.Mul(0.5)
	c0, r0 = g.posToCell(pos.Sub(half))
	c1, r1 = g.posToCell(pos.Add(half))
	c0 = max(c0-pad, 0)
	r0 = max(r0-pad, 0)
	c1 = min(c1+pad, g.cols-1)
	r1 = min(r1+pad, g.rows-1)
	return c0, r0, c1, r1
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range so off-field positions land in border cells.
func (g *SpatialGrid) posToCell(p Vec2) (col, row int) {
	col = int(math.Floor((p.X() - g.origin.X()) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor((p.Y() - g.origin.Y()) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
