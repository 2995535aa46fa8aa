// Package ebitenhost runs the engine in a desktop window through ebiten.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// glyphHeight is the pixel height of the bitmap face before scaling.
const glyphHeight = 13

// Renderer implements draw.Renderer on an ebiten screen image.
// Rectangles are a stretched 1x1 white pixel, tinted per draw.
type Renderer struct {
	camera draw.Camera
	pixel  *ebiten.Image
	face   *text.GoXFace
	screen *ebiten.Image
}

var _ draw.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer drawing through camera.
func NewRenderer(camera draw.Camera) *Renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Renderer{
		camera: camera,
		pixel:  pixel,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget sets the image the next frame is drawn on.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

// DrawRect draws a world-space rectangle rotated clockwise about its centre.
func (r *Renderer) DrawRect(pos, size physics.Vec2, c draw.Color, angle float64) {
	if r.screen == nil || !c.Visible() {
		return
	}
	p := r.camera.WorldToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(size.X()*r.camera.Scale, size.Y()*r.camera.Scale)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	r.screen.DrawImage(r.pixel, op)
}

// DrawTextScreen draws text centred on pos, size pixels tall.
func (r *Renderer) DrawTextScreen(s string, pos physics.Vec2, size float64, c draw.Color) {
	if r.screen == nil || s == "" || !c.Visible() {
		return
	}
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X(), pos.Y())
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(r.screen, s, r.face, op)
}
