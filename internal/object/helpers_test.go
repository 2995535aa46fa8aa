package object_test

import (
	"math/rand"

	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/object"
	"github.com/tomz197/rockshot/internal/physics"
)

const tick = 1.0 / 60

// testWorld is a minimal stand-in for the engine's world state.
type testWorld struct {
	objects []object.Object
	spawned []object.Object
	kills   []object.Object
	frame   int
	clock   physics.Clock
	rng     *rand.Rand
	tiles   *object.TileMap
	policy  object.DamagePolicy
	player  audio.Player
}

func newTestWorld(objects ...object.Object) *testWorld {
	return &testWorld{
		objects: objects,
		rng:     rand.New(rand.NewSource(1)),
		player:  audio.Silent{},
	}
}

func (w *testWorld) Spawn(o object.Object) {
	w.spawned = append(w.spawned, o)
}

func (w *testWorld) Query(center, size physics.Vec2, fn func(object.Object) bool) {
	for _, o := range w.objects {
		b := o.Base()
		if b.Destroyed() || !b.Collidable || !physics.Overlap(center, size, b.Pos, b.Size) {
			continue
		}
		if fn(o) {
			return
		}
	}
}

func (w *testWorld) AddKill(victim object.Object) {
	w.kills = append(w.kills, victim)
}

func (w *testWorld) Frame() int {
	return w.frame
}

func (w *testWorld) ctx(delta float64) object.UpdateContext {
	t := config.DefaultTuning()
	return object.UpdateContext{
		Delta:        delta,
		Query:        w,
		Spawner:      w,
		Score:        w,
		Frames:       w,
		Clock:        &w.clock,
		Rand:         w.rng,
		Audio:        w.player,
		Tiles:        w.tiles,
		Bounds:       physics.Rect{Pos: physics.V(t.LevelWidth/2, t.LevelHeight/2), Size: physics.V(t.LevelWidth, t.LevelHeight)},
		DamagePolicy: w.policy,
	}
}

func (w *testWorld) bullets() []*object.Bullet {
	var out []*object.Bullet
	for _, o := range w.spawned {
		if b, ok := o.(*object.Bullet); ok {
			out = append(out, b)
		}
	}
	return out
}

func (w *testWorld) rocks() []*object.Rock {
	var out []*object.Rock
	for _, o := range w.spawned {
		if r, ok := o.(*object.Rock); ok {
			out = append(out, r)
		}
	}
	return out
}

func newTestShip(w *testWorld) *object.Ship {
	t := config.DefaultTuning()
	return object.NewShip(physics.V(t.ShipStartX, t.ShipStartY), t, &w.clock)
}

// dummy is a damageable non-enemy used to exercise the damage policies.
type dummy struct {
	object.Body
	taken float64
}

func newDummy(pos physics.Vec2) *dummy {
	return &dummy{Body: object.Body{Pos: pos, Size: physics.V(1, 1), Collidable: true, Solid: true}}
}

func newGhostEnemy(pos physics.Vec2) *dummy {
	return &dummy{Body: object.Body{Pos: pos, Size: physics.V(1, 1), Collidable: true, Enemy: true}}
}

func (d *dummy) Update(object.UpdateContext) (bool, error) { return false, nil }
func (d *dummy) Draw(object.DrawContext) error             { return nil }
func (d *dummy) Damage(_ object.UpdateContext, amount float64, _ object.Object) {
	d.taken += amount
}
