// Package game is the shooter itself: it lays out the level, releases rocks
// on a fixed cadence and draws the backdrop and score around the engine's objects.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/loop"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

// Backdrop and HUD.
var (
	backgroundColor = draw.Grey(0.5)
	backgroundSize  = physics.V(100, 100)
	levelColor      = draw.Grey(0.1)

	scorePos  = physics.V(loop.CanvasWidth/2, 30)
	scoreSize = 50.0
)

// The left wall sits just outside the level and is tall enough to cover any level height.
const (
	wallWidth  = 1.0
	wallHeight = 100.0
)

// Game implements loop.Hooks.
type Game struct {
	tuning  config.Tuning
	logger  *log.Logger
	world   *loop.WorldState
	spawner *object.RockSpawner
	score   object.Text

	Ship *object.Ship
	Wall *object.Wall
}

var _ loop.Hooks = (*Game)(nil)

// New creates a game with the given tuning. A nil logger discards.
func New(t config.Tuning, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		tuning:  t,
		logger:  logger,
		spawner: object.NewRockSpawner(t),
		score: object.Text{
			Pos:   scorePos,
			Size:  scoreSize,
			Color: draw.White,
		},
	}
}

// LevelBounds returns the level rectangle, anchored at the origin.
func LevelBounds(t config.Tuning) physics.Rect {
	return physics.Rect{
		Pos:  physics.V(t.LevelWidth/2, t.LevelHeight/2),
		Size: physics.V(t.LevelWidth, t.LevelHeight),
	}
}

// NewEngine builds an engine running a new game. Bounds and damage policy
// come from t; the rest of opts is passed through.
func NewEngine(t config.Tuning, opts loop.Options) (*loop.Engine, *Game, error) {
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	policy, err := object.ParseDamagePolicy(t.DamagePolicy)
	if err != nil {
		return nil, nil, err
	}
	opts.Bounds = LevelBounds(t)
	opts.DamagePolicy = policy

	g := New(t, opts.Logger)
	e, err := loop.NewEngine(g, opts)
	if err != nil {
		return nil, nil, err
	}
	return e, g, nil
}

// Init places the ship, the wall behind it and the terrain.
func (g *Game) Init(w *loop.WorldState) error {
	g.world = w

	g.Ship = object.NewShip(physics.V(g.tuning.ShipStartX, g.tuning.ShipStartY), g.tuning, &w.Clock)
	w.AddObject(g.Ship)

	g.Wall = object.NewWall(physics.V(-wallWidth/2, g.tuning.LevelHeight/2), physics.V(wallWidth, wallHeight))
	w.AddObject(g.Wall)

	if len(g.tuning.Terrain) > 0 {
		w.Tiles = object.NewTileMap(g.tuning.Terrain)
		g.logger.Debug("terrain loaded",
			"destructible", w.Tiles.Count(object.TileDestructible),
			"indestructible", w.Tiles.Count(object.TileIndestructible))
	}
	return nil
}

// Update releases rocks before the objects move.
func (g *Game) Update(ctx object.UpdateContext) error {
	if rock := g.spawner.Update(ctx); rock != nil {
		g.logger.Debug("rock spawned", "frame", ctx.Frames.Frame(), "y", rock.Pos.Y())
	}
	return nil
}

// UpdatePost refreshes the score label.
func (g *Game) UpdatePost(object.UpdateContext) error {
	g.score.Value = fmt.Sprintf("Score: %d", g.Score())
	return nil
}

// Render draws the backdrop, the level and the terrain beneath the objects.
func (g *Game) Render(r draw.Renderer) error {
	bounds := LevelBounds(g.tuning)
	r.DrawRect(bounds.Pos, backgroundSize, backgroundColor, 0)
	r.DrawRect(bounds.Pos, bounds.Size, levelColor, 0)
	if g.world != nil {
		g.world.Tiles.Draw(r)
	}
	return nil
}

// RenderPost draws the score over everything.
func (g *Game) RenderPost(r draw.Renderer) error {
	if g.score.Value == "" {
		g.score.Value = fmt.Sprintf("Score: %d", g.Score())
	}
	return g.score.Draw(object.DrawContext{Renderer: r})
}

// Score returns the number of rocks destroyed so far.
func (g *Game) Score() int {
	if g.world == nil {
		return 0
	}
	return g.world.Score()
}
