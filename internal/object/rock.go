package object

import (
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// Debris burst shown when a rock is destroyed by damage.
const (
	debrisCount    = 6
	debrisSpeed    = 0.15 // World units per tick
	debrisLifetime = 0.4  // Seconds
)

// Rock is an enemy that drifts toward the player's side of the level.
type Rock struct {
	Body
	Health     float64
	Speed      float64 // World units per tick, toward -X
	CullMargin float64 // Distance outside the level before it is dropped
}

// NewRock creates a rock at pos.
func NewRock(pos physics.Vec2, t config.Tuning) *Rock {
	return &Rock{
		Body: Body{
			Pos:        pos,
			Size:       physics.V(t.RockSize, t.RockSize),
			Color:      draw.White,
			Collidable: true,
			Solid:      true,
			Enemy:      true,
		},
		Health:     t.RockHealth,
		Speed:      t.RockSpeed,
		CullMargin: t.CullMargin,
	}
}

// Update drifts the rock left and drops it once it leaves the level.
// Leaving the level does not score.
func (r *Rock) Update(ctx UpdateContext) (bool, error) {
	if r.Destroyed() {
		return true, ErrDestroyed
	}

	r.Pos = r.Pos.Sub(physics.V(r.Speed, 0))

	if ctx.Bounds.Size != (physics.Vec2{}) && r.offField(ctx.Bounds) {
		r.Destroy()
	}
	return r.Destroyed(), nil
}

func (r *Rock) offField(bounds physics.Rect) bool {
	margin := physics.V(r.CullMargin, r.CullMargin).Mul(2)
	grown := physics.Rect{Pos: bounds.Pos, Size: bounds.Size.Add(margin)}
	return !grown.Contains(r.Pos)
}

// Damage removes health. Negative amounts count as zero and damage to a
// destroyed rock is ignored.
func (r *Rock) Damage(ctx UpdateContext, amount float64, _ Object) {
	if r.Destroyed() {
		return
	}
	r.Health -= max(amount, 0)
	if r.Health <= 0 {
		r.kill(ctx)
	}
}

// kill scores the rock, bursts it into debris and destroys it.
func (r *Rock) kill(ctx UpdateContext) {
	if r.Destroyed() {
		return
	}
	if ctx.Score != nil {
		ctx.Score.AddKill(r)
	}
	SpawnDebris(ctx, r.Pos, debrisCount, debrisSpeed, debrisLifetime, r.Color)
	r.Destroy()
}

// Draw renders the rock.
func (r *Rock) Draw(ctx DrawContext) error {
	ctx.Renderer.DrawRect(r.Pos, r.Size, r.Color, r.Angle)
	return nil
}
