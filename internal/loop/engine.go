package loop

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/input"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

// Hooks are the game's entry points into the engine cycle.
//
// Update runs before any object updates and UpdatePost after all of them.
// Render draws beneath the objects and RenderPost above them.
type Hooks interface {
	Init(w *WorldState) error
	Update(ctx object.UpdateContext) error
	UpdatePost(ctx object.UpdateContext) error
	Render(r draw.Renderer) error
	RenderPost(r draw.Renderer) error
}

// Options configure an Engine.
type Options struct {
	Bounds       physics.Rect // Level rectangle
	Seed         int64
	Audio        audio.Player // nil plays nothing
	Logger       *log.Logger  // nil discards
	DamagePolicy object.DamagePolicy
}

// Engine drives one world through fixed-step ticks.
type Engine struct {
	hooks  Hooks
	world  *WorldState
	rng    *rand.Rand
	audio  audio.Player
	policy object.DamagePolicy
	logger *log.Logger
}

// NewEngine creates a world and lets hooks populate it.
func NewEngine(hooks Hooks, opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}

	e := &Engine{
		hooks:  hooks,
		world:  NewWorldState(opts.Bounds, logger),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		audio:  player,
		policy: opts.DamagePolicy,
		logger: logger,
	}
	if err := hooks.Init(e.world); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	e.world.FlushSpawned()

	logger.Info("world ready", "objects", len(e.world.Objects), "seed", opts.Seed)
	return e, nil
}

// World returns the engine's world.
func (e *Engine) World() *WorldState {
	return e.world
}

// Camera returns a camera showing the whole level on the fixed canvas.
func (e *Engine) Camera() draw.Camera {
	return NewCamera(e.world.Bounds)
}

// NewCamera centres a CameraScale camera on bounds.
func NewCamera(bounds physics.Rect) draw.Camera {
	return draw.Camera{
		Pos:    bounds.Pos,
		Scale:  CameraScale,
		Width:  CanvasWidth,
		Height: CanvasHeight,
	}
}

func (e *Engine) updateContext(in input.Input) object.UpdateContext {
	w := e.world
	return object.UpdateContext{
		Delta:        TickDelta,
		Input:        in,
		Query:        w,
		Spawner:      w,
		Score:        w,
		Frames:       w,
		Clock:        &w.Clock,
		Rand:         e.rng,
		Audio:        e.audio,
		Tiles:        w.Tiles,
		Bounds:       w.Bounds,
		DamagePolicy: e.policy,
	}
}

// Tick advances the world by one fixed step.
//
// Objects are updated in insertion order. Objects destroyed earlier in the
// tick are skipped, and objects spawned during the tick join the world only
// after the update pass.
func (e *Engine) Tick(in input.Input) error {
	w := e.world
	ctx := e.updateContext(in)

	w.rebuildGrid()
	if err := e.hooks.Update(ctx); err != nil {
		return fmt.Errorf("update hook: %w", err)
	}

	for _, obj := range w.Objects {
		if obj.Base().Destroyed() {
			continue
		}
		remove, err := obj.Update(ctx)
		if err != nil {
			return fmt.Errorf("update %T: %w", obj, err)
		}
		if remove {
			obj.Base().Destroy()
		}
	}

	w.removeDestroyed()
	w.FlushSpawned()
	w.rebuildGrid() // Indices shifted; UpdatePost may query

	if err := e.hooks.UpdatePost(ctx); err != nil {
		return fmt.Errorf("update post hook: %w", err)
	}

	w.Clock.Advance(TickDelta)
	w.frame++
	return nil
}

// Render draws one frame: the Render hook, every live object in insertion
// order, then the RenderPost hook.
func (e *Engine) Render(r draw.Renderer) error {
	if err := e.hooks.Render(r); err != nil {
		return fmt.Errorf("render hook: %w", err)
	}

	ctx := object.DrawContext{Renderer: r}
	for _, obj := range e.world.Objects {
		if obj.Base().Destroyed() {
			continue
		}
		if err := obj.Draw(ctx); err != nil {
			return fmt.Errorf("draw %T: %w", obj, err)
		}
	}

	if err := e.hooks.RenderPost(r); err != nil {
		return fmt.Errorf("render post hook: %w", err)
	}
	return nil
}
