package draw

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with straight alpha. Components are in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// Common colours.
var (
	White       = RGB(1, 1, 1)
	Yellow      = RGB(1, 1, 0)
	Transparent = Color{}
)

// RGBA builds a colour from its components.
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// RGB builds an opaque colour.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// Grey builds an opaque grey of the given brightness.
func Grey(v float64) Color {
	return RGB(v, v, v)
}

// Visible reports whether anything would be drawn with c.
func (c Color) Visible() bool {
	return c.A > 0
}

// Over composites c on top of dst.
func (c Color) Over(dst Color) Color {
	if c.A >= 1 || !dst.Visible() {
		return c
	}
	return Color{
		Color: dst.Color.BlendRgb(c.Color, c.A).Clamped(),
		A:     max(dst.A, c.A),
	}
}

// NRGBA converts c for image/color consumers such as ebiten.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := min(max(c.A, 0), 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}
