// Package object holds the gameplay entities: the player ship and its weapon,
// bullets, rocks, walls, the rock spawner and the destructible tile layer.
package object

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/input"
	"github.com/tomz197/rockshot/internal/physics"
)

// ErrDestroyed is returned when a destroyed object is asked to update.
var ErrDestroyed = errors.New("update of destroyed object")

// Input is an alias for the input package's Input type.
type Input = input.Input

// Spawner allows objects to spawn new objects during update.
// Spawned objects join the world after the current update pass.
type Spawner interface {
	Spawn(obj Object)
}

// Querier finds live collidable objects overlapping a box.
type Querier interface {
	Query(center, size physics.Vec2, fn func(Object) (stop bool))
}

// Scoreboard records kills.
type Scoreboard interface {
	AddKill(victim Object)
}

// FrameCounter reports how many ticks the world has completed.
type FrameCounter interface {
	Frame() int
}

// DamagePolicy selects which objects a bullet may damage.
type DamagePolicy int

const (
	// DamageEnemiesOnly lets bullets damage only objects flagged as enemies.
	DamageEnemiesOnly DamagePolicy = iota
	// DamageAnyNonOwner lets bullets damage anything damageable except their owner.
	DamageAnyNonOwner
)

// ParseDamagePolicy maps a config value to a DamagePolicy.
func ParseDamagePolicy(s string) (DamagePolicy, error) {
	switch s {
	case config.DamageEnemiesOnly, "":
		return DamageEnemiesOnly, nil
	case config.DamageAnyNonOwner:
		return DamageAnyNonOwner, nil
	default:
		return 0, fmt.Errorf("unknown damage policy %q", s)
	}
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta        float64 // Seconds since the last update
	Input        Input
	Query        Querier
	Spawner      Spawner
	Score        Scoreboard
	Frames       FrameCounter
	Clock        *physics.Clock
	Rand         *rand.Rand
	Audio        audio.Player
	Tiles        *TileMap // nil when the level has no terrain
	Bounds       physics.Rect
	DamagePolicy DamagePolicy
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Renderer draw.Renderer
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object through ctx.Renderer.
	Draw(ctx DrawContext) error

	// Base returns the shared physical state of the object.
	Base() *Body
}

// Damageable is implemented by objects that lose health when hit.
type Damageable interface {
	Damage(ctx UpdateContext, amount float64, source Object)
}

// Collider is implemented by objects that react to overlapping other objects.
// It returns true when the contact had an effect.
type Collider interface {
	CollideWithObject(ctx UpdateContext, o Object) bool
}

// TileCollider is implemented by objects that react to terrain.
// It returns false when the tile does not interact with the object.
type TileCollider interface {
	CollideWithTile(ctx UpdateContext, data int, cell TileCell) bool
}

// Owned is implemented by objects that act on behalf of another object.
type Owned interface {
	OwnerObject() Object
}

// Body is the physical state shared by every entity.
// Velocity is in world units per tick; Angle is clockwise radians.
type Body struct {
	Pos      physics.Vec2
	Size     physics.Vec2
	Velocity physics.Vec2
	Angle    float64
	Mirror   bool // Facing -X instead of +X
	Color    draw.Color

	Collidable bool // Found by spatial queries
	Solid      bool // Stops bullets and blocks movement
	Static     bool // Never moved by the simulation
	Enemy      bool // Valid target under DamageEnemiesOnly

	destroyed bool
}

// Base returns b so that embedding types satisfy Object.Base.
func (b *Body) Base() *Body {
	return b
}

// Destroy marks the body as removed from the simulation. Calling it again is a no-op.
func (b *Body) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

// Bounds returns the body's axis-aligned box.
func (b *Body) Bounds() physics.Rect {
	return physics.Rect{Pos: b.Pos, Size: b.Size}
}

// FacingSign is -1 for mirrored bodies and 1 otherwise.
func (b *Body) FacingSign() float64 {
	if b.Mirror {
		return -1
	}
	return 1
}

// Overlaps reports whether two bodies' boxes intersect.
func (b *Body) Overlaps(o *Body) bool {
	return physics.Overlap(b.Pos, b.Size, o.Pos, o.Size)
}

func b2f(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
