package object

import (
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// Wall is an invisible static barrier.
type Wall struct {
	Body
}

// NewWall creates a wall centred on pos.
func NewWall(pos, size physics.Vec2) *Wall {
	return &Wall{
		Body: Body{
			Pos:        pos,
			Size:       size,
			Color:      draw.Transparent,
			Collidable: true,
			Solid:      true,
			Static:     true,
		},
	}
}

// Update does nothing; walls never move.
func (w *Wall) Update(_ UpdateContext) (bool, error) {
	if w.Destroyed() {
		return true, ErrDestroyed
	}
	return false, nil
}

// Draw hands the wall to the renderer, which skips it while it stays transparent.
func (w *Wall) Draw(ctx DrawContext) error {
	ctx.Renderer.DrawRect(w.Pos, w.Size, w.Color, w.Angle)
	return nil
}
