package game_test

import (
	"math"
	"testing"

	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/game"
	"github.com/tomz197/rockshot/internal/input"
	"github.com/tomz197/rockshot/internal/loop"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

type rectCall struct {
	pos, size physics.Vec2
	color     draw.Color
}

type recordingRenderer struct {
	rects []rectCall
	texts []string
}

func (r *recordingRenderer) DrawRect(pos, size physics.Vec2, c draw.Color, _ float64) {
	r.rects = append(r.rects, rectCall{pos: pos, size: size, color: c})
}

func (r *recordingRenderer) DrawTextScreen(text string, _ physics.Vec2, _ float64, _ draw.Color) {
	r.texts = append(r.texts, text)
}

func newEngine(t *testing.T, tuning config.Tuning) (*loop.Engine, *game.Game) {
	t.Helper()
	e, g, err := game.NewEngine(tuning, loop.Options{Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	return e, g
}

func tick(t *testing.T, e *loop.Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := e.Tick(input.Input{}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestInitPlacesShipAndWall(t *testing.T) {
	tuning := config.DefaultTuning()
	e, g := newEngine(t, tuning)

	objects := e.World().Objects
	if len(objects) != 2 || objects[0] != object.Object(g.Ship) || objects[1] != object.Object(g.Wall) {
		t.Fatalf("objects = %v, want [ship wall]", objects)
	}
	if want := physics.V(tuning.ShipStartX, tuning.ShipStartY); g.Ship.Pos != want {
		t.Errorf("ship at %v, want %v", g.Ship.Pos, want)
	}
	if want := physics.V(-0.5, tuning.LevelHeight/2); g.Wall.Pos != want {
		t.Errorf("wall at %v, want %v", g.Wall.Pos, want)
	}
	if e.World().Tiles != nil {
		t.Error("default level should have no terrain")
	}
}

func TestRockSpawnedOnFirstFrameAtSpawnLine(t *testing.T) {
	tuning := config.DefaultTuning()
	e, _ := newEngine(t, tuning)
	tick(t, e, 1)

	var rocks []*object.Rock
	for _, o := range e.World().Objects {
		if r, ok := o.(*object.Rock); ok {
			rocks = append(rocks, r)
		}
	}
	if len(rocks) != 1 {
		t.Fatalf("rocks = %d, want 1", len(rocks))
	}
	r := rocks[0]
	// Spawned after the update pass, so it has not moved yet
	if r.Pos.X() != tuning.SpawnX {
		t.Errorf("rock x = %v, want %v", r.Pos.X(), tuning.SpawnX)
	}
	if y := r.Pos.Y(); y < tuning.SpawnMinY || y >= tuning.SpawnMaxY {
		t.Errorf("rock y = %v outside [%v, %v)", y, tuning.SpawnMinY, tuning.SpawnMaxY)
	}
}

func TestRockCadence(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.RockSpeed = 0
	e, _ := newEngine(t, tuning)

	tick(t, e, 3*tuning.SpawnInterval)
	n := e.World().Count(func(o object.Object) bool {
		_, ok := o.(*object.Rock)
		return ok
	})
	if n != 3 {
		t.Errorf("rocks = %d, want 3", n)
	}
}

func TestShipShootsRockAndScores(t *testing.T) {
	tuning := config.DefaultTuning()
	e, g := newEngine(t, tuning)

	e.World().Spawn(object.NewRock(physics.V(6, tuning.ShipStartY), tuning))
	tick(t, e, 60)

	if g.Score() < 1 {
		t.Fatalf("score = %d, want at least 1", g.Score())
	}
	r := &recordingRenderer{}
	if err := e.Render(r); err != nil {
		t.Fatal(err)
	}
	if len(r.texts) != 1 || r.texts[0] != "Score: 1" {
		t.Errorf("texts = %q, want [\"Score: 1\"]", r.texts)
	}
}

func TestOneSecondOfPlayFiresAtFireRate(t *testing.T) {
	tuning := config.DefaultTuning()
	e, _ := newEngine(t, tuning)

	seen := map[*object.Bullet]bool{}
	for i := 0; i < loop.TickRate; i++ {
		tick(t, e, 1)
		for _, o := range e.World().Objects {
			if b, ok := o.(*object.Bullet); ok {
				seen[b] = true
			}
		}
	}

	if want := int(tuning.FireRate); len(seen) != want {
		t.Errorf("bullets over one second = %d, want %d", len(seen), want)
	}
	if now := e.World().Clock.Now(); math.Abs(now-1) > 1e-12 {
		t.Errorf("clock after %d ticks = %v, want 1", loop.TickRate, now)
	}
}

func TestShipStopsAtWall(t *testing.T) {
	e, g := newEngine(t, config.DefaultTuning())

	for i := 0; i < 20; i++ {
		if err := e.Tick(input.Input{Left: true}); err != nil {
			t.Fatal(err)
		}
	}
	if x := g.Ship.Pos.X(); x != 0.5 {
		t.Errorf("ship x = %v, want 0.5", x)
	}
}

func TestBulletsCarveTerrain(t *testing.T) {
	tuning := config.DefaultTuning()
	// Ten rows, so the top row is y = 9 and holds the ship's line of fire
	tuning.Terrain = []string{"    #", "", "", "", "", "", "", "", "", ""}
	e, _ := newEngine(t, tuning)

	if got := e.World().Tiles.Count(object.TileDestructible); got != 1 {
		t.Fatalf("destructible tiles = %d, want 1", got)
	}
	tick(t, e, 40)
	if got := e.World().Tiles.Count(object.TileDestructible); got != 0 {
		t.Errorf("destructible tiles = %d after firing, want 0", got)
	}
}

func TestRenderLayers(t *testing.T) {
	e, _ := newEngine(t, config.DefaultTuning())
	r := &recordingRenderer{}

	if err := e.Render(r); err != nil {
		t.Fatal(err)
	}

	if len(r.rects) < 2 {
		t.Fatalf("rects = %d, want backdrop and level first", len(r.rects))
	}
	if r.rects[0].color != draw.Grey(0.5) || r.rects[0].size != physics.V(100, 100) {
		t.Errorf("first rect = %+v, want grey backdrop", r.rects[0])
	}
	if r.rects[1].color != draw.Grey(0.1) || r.rects[1].size != physics.V(38, 19) {
		t.Errorf("second rect = %+v, want level", r.rects[1])
	}
	if len(r.texts) != 1 || r.texts[0] != "Score: 0" {
		t.Errorf("texts = %q, want [\"Score: 0\"]", r.texts)
	}
}

func TestNewEngineRejectsBadTuning(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.DamagePolicy = "friendly-fire"
	if _, _, err := game.NewEngine(tuning, loop.Options{}); err == nil {
		t.Error("expected error for unknown damage policy")
	}
}
