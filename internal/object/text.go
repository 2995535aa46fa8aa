package object

import (
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// Text is a screen-space label. Pos is in canvas pixels and the text is
// centred on it horizontally.
type Text struct {
	Pos   physics.Vec2
	Size  float64 // Glyph height in canvas pixels
	Color draw.Color
	Value string
}

// Draw writes the text through the renderer. Empty text draws nothing.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" {
		return nil
	}
	ctx.Renderer.DrawTextScreen(t.Value, t.Pos, t.Size, t.Color)
	return nil
}
