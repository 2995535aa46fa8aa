package loop_test

import (
	"testing"

	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/loop"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

var testBounds = physics.Rect{Pos: physics.V(19, 9.5), Size: physics.V(38, 19)}

// recorder collects the order of engine callbacks.
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) {
	r.calls = append(r.calls, s)
}

// recordingHooks implements loop.Hooks and adds the given objects on Init.
type recordingHooks struct {
	rec     *recorder
	initial []object.Object
	world   *loop.WorldState
}

func (h *recordingHooks) Init(w *loop.WorldState) error {
	h.world = w
	for _, o := range h.initial {
		w.AddObject(o)
	}
	h.rec.add("init")
	return nil
}

func (h *recordingHooks) Update(object.UpdateContext) error {
	h.rec.add("update")
	return nil
}

func (h *recordingHooks) UpdatePost(object.UpdateContext) error {
	h.rec.add("update post")
	return nil
}

func (h *recordingHooks) Render(draw.Renderer) error {
	h.rec.add("render")
	return nil
}

func (h *recordingHooks) RenderPost(draw.Renderer) error {
	h.rec.add("render post")
	return nil
}

// probe is a scriptable object.
type probe struct {
	object.Body
	name     string
	rec      *recorder
	updates  int
	onUpdate func(ctx object.UpdateContext) (bool, error)
}

func newProbe(name string, rec *recorder, pos physics.Vec2) *probe {
	return &probe{
		Body: object.Body{
			Pos:        pos,
			Size:       physics.V(1, 1),
			Color:      draw.White,
			Collidable: true,
		},
		name: name,
		rec:  rec,
	}
}

func (p *probe) Update(ctx object.UpdateContext) (bool, error) {
	p.updates++
	if p.rec != nil {
		p.rec.add(p.name + " update")
	}
	if p.onUpdate != nil {
		return p.onUpdate(ctx)
	}
	return false, nil
}

func (p *probe) Draw(ctx object.DrawContext) error {
	if p.rec != nil {
		p.rec.add(p.name + " draw")
	}
	ctx.Renderer.DrawRect(p.Pos, p.Size, p.Color, p.Angle)
	return nil
}

// nopRenderer discards everything.
type nopRenderer struct{}

func (nopRenderer) DrawRect(physics.Vec2, physics.Vec2, draw.Color, float64) {}
func (nopRenderer) DrawTextScreen(string, physics.Vec2, float64, draw.Color) {}

func newEngine(t testing.TB, hooks loop.Hooks) *loop.Engine {
	e, err := loop.NewEngine(hooks, loop.Options{Bounds: testBounds, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return e
}
