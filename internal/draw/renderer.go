package draw

import (
	"unicode/utf8"

	"github.com/tomz197/rockshot/internal/physics"
)

// textItem is a queued screen-space label, drawn over the canvas on Flush.
type textItem struct {
	text  string
	pos   physics.Vec2
	color Color
}

// TerminalRenderer implements Renderer on top of a half-block Canvas.
// Rectangles are rasterised immediately; text is queued and written as plain
// characters after the canvas, since glyphs cannot be drawn at sub-cell size.
type TerminalRenderer struct {
	canvas *Canvas
	camera Camera
	texts  []textItem
}

var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer drawing through camera onto canvas.
func NewTerminalRenderer(canvas *Canvas, camera Camera) *TerminalRenderer {
	return &TerminalRenderer{canvas: canvas, camera: camera}
}

// Camera returns the camera used for world-space drawing.
func (r *TerminalRenderer) Camera() Camera {
	return r.camera
}

// DrawRect fills a rotated world-space rectangle. Invisible colours are skipped.
func (r *TerminalRenderer) DrawRect(pos, size physics.Vec2, c Color, angle float64) {
	if !c.Visible() {
		return
	}
	corners := r.camera.RectCorners(pos, size, angle)
	r.canvas.FillPolygon(corners[:], c)
}

// DrawTextScreen queues text centred horizontally on pos (canvas pixels).
// The terminal has one glyph size, so size is ignored.
func (r *TerminalRenderer) DrawTextScreen(text string, pos physics.Vec2, _ float64, c Color) {
	if text == "" || !c.Visible() {
		return
	}
	r.texts = append(r.texts, textItem{text: text, pos: pos, color: c})
}

// Flush renders the canvas and queued text into cw, then clears both for the next frame.
// cw must use the same offsets as the canvas.
func (r *TerminalRenderer) Flush(cw *ChunkWriter) error {
	if err := r.canvas.Render(cw); err != nil {
		return err
	}

	for _, t := range r.texts {
		col, row := r.canvas.LogicalToTerminal(t.pos.X(), t.pos.Y())
		col -= utf8.RuneCountInString(t.text) / 2
		col = max(col, 1)
		cw.MoveCursor(col, row)
		cw.Write(appendColor(nil, "38", t.color))
		cw.WriteString("\033[1m")
		cw.WriteString(t.text)
		cw.WriteString("\033[0m")
	}
	r.texts = r.texts[:0]
	r.canvas.Clear()

	return nil
}
