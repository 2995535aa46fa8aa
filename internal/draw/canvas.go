package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], zero alpha means empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       []byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the renderer.
// termWidth/Height are the terminal cells the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel blends col into the pixel at terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		i := y*c.termWidth + x
		c.pixels[i] = col.Over(c.pixels[i])
	}
}

// At returns the pixel at terminal coordinates, or Transparent when out of range.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return Transparent
	}
	return c.pixels[y*c.termWidth+x]
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1 := round(p1.X * c.scaleX)
	y1 := round(p1.Y * c.scaleY)
	x2 := round(p2.X * c.scaleX)
	y2 := round(p2.Y * c.scaleY)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon in col using a scanline algorithm.
// Opaque shapes also get their outline traced so that shapes thinner than a
// terminal pixel still show up. Translucent ones skip it to avoid double blending.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 || !col.Visible() {
		return
	}

	c.fillPolygon(points, col)

	if col.A >= 1 {
		n := len(points)
		for i := 0; i < n; i++ {
			c.DrawLine(points[i], points[(i+1)%n], col)
		}
	}
}

// fillPolygon works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i]-0.5)), 0)
			xEnd := min(int(math.Floor(intersections[i+1]-0.5)), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters with
// 24-bit foreground and background colours. Runs of cells on one row are
// written without repeating the cursor move, and colour escapes are only
// emitted when they change.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]

	var fg, bg Color
	fgSet, bgSet := false, false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		nextCol := -1

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if !top.Visible() && !bottom.Visible() {
				continue
			}

			if col != nextCol {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
				buf = append(buf, 'H')
			}
			nextCol = col + 1

			ch := BlockUpperHalf
			paint, under := top, bottom
			if !top.Visible() {
				ch = BlockLowerHalf
				paint, under = bottom, top
			}

			if !fgSet || paint.Color != fg.Color {
				buf = appendColor(buf, "38", paint)
				fg, fgSet = paint, true
			}
			switch {
			case under.Visible() && (!bgSet || under.Color != bg.Color):
				buf = appendColor(buf, "48", under)
				bg, bgSet = under, true
			case !under.Visible() && bgSet:
				buf = append(buf, "\033[49m"...)
				bgSet = false
			}

			if ch == BlockUpperHalf && under.Visible() && under.Color == paint.Color {
				ch = BlockFull
			}
			buf = append(buf, string(ch)...)
		}
	}
	buf = append(buf, "\033[0m"...)
	c.renderBuf = buf

	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > maxChunkSize {
			chunk = buf[:maxChunkSize]
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		buf = buf[len(chunk):]
	}
	return nil
}

// appendColor appends an SGR truecolor sequence; layer is "38" (fg) or "48" (bg).
func appendColor(buf []byte, layer string, col Color) []byte {
	r, g, b := col.Clamped().RGB255()
	buf = append(buf, "\033["...)
	buf = append(buf, layer...)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendInt(buf, int64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(b), 10)
	return append(buf, 'm')
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := round(x * c.scaleX)
	py := round(y * c.scaleY)
	return px + 1, py/2 + 1
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
