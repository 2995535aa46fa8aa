package object

import (
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// Tile values.
const (
	TileEmpty          = 0
	TileDestructible   = 1
	TileIndestructible = -1
)

var (
	destructibleColor   = draw.RGB(0.55, 0.4, 0.25)
	indestructibleColor = draw.Grey(0.35)
)

// TileCell addresses one tile; (0, 0) is the bottom-left cell.
type TileCell struct {
	X, Y int
}

// TileMap is a grid of one-unit terrain tiles anchored at the world origin.
// A nil *TileMap behaves as an empty level.
type TileMap struct {
	width  int
	height int
	data   []int // Row-major, row 0 at the bottom
}

// NewTileMap parses terrain rows, top row first: '#' is destructible,
// 'X' is indestructible and anything else is empty.
func NewTileMap(rows []string) *TileMap {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	m := &TileMap{
		width:  width,
		height: len(rows),
		data:   make([]int, width*len(rows)),
	}
	for i, row := range rows {
		y := len(rows) - 1 - i
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				m.data[y*width+x] = TileDestructible
			case 'X':
				m.data[y*width+x] = TileIndestructible
			}
		}
	}
	return m
}

// CellAt returns the cell containing p and whether it lies inside the map.
func (m *TileMap) CellAt(p physics.Vec2) (TileCell, bool) {
	if m == nil || p.X() < 0 || p.Y() < 0 {
		return TileCell{}, false
	}
	cell := TileCell{X: int(p.X()), Y: int(p.Y())}
	return cell, cell.X < m.width && cell.Y < m.height
}

// At returns the cell containing p and its value.
func (m *TileMap) At(p physics.Vec2) (cell TileCell, data int, ok bool) {
	cell, ok = m.CellAt(p)
	if !ok {
		return cell, TileEmpty, false
	}
	return cell, m.Data(cell), true
}

// Data returns the value of cell, or TileEmpty outside the map.
func (m *TileMap) Data(cell TileCell) int {
	if m == nil || cell.X < 0 || cell.Y < 0 || cell.X >= m.width || cell.Y >= m.height {
		return TileEmpty
	}
	return m.data[cell.Y*m.width+cell.X]
}

// Destroy clears a destructible tile. Other tiles are left alone.
func (m *TileMap) Destroy(cell TileCell) {
	if m.Data(cell) != TileDestructible {
		return
	}
	m.data[cell.Y*m.width+cell.X] = TileEmpty
}

// Count returns how many tiles hold value.
func (m *TileMap) Count(value int) int {
	if m == nil {
		return 0
	}
	n := 0
	for _, d := range m.data {
		if d == value {
			n++
		}
	}
	return n
}

// Draw renders every non-empty tile.
func (m *TileMap) Draw(r draw.Renderer) {
	if m == nil {
		return
	}
	size := physics.V(1, 1)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			var c draw.Color
			switch m.data[y*m.width+x] {
			case TileDestructible:
				c = destructibleColor
			case TileIndestructible:
				c = indestructibleColor
			default:
				continue
			}
			r.DrawRect(physics.V(float64(x)+0.5, float64(y)+0.5), size, c, 0)
		}
	}
}
