package object

import (
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// bulletDrawSize is the on-screen size; the collision box is a point.
var bulletDrawSize = physics.V(0.2, 0.5)

// Bullet travels in a straight line until it hits something solid or runs out of range.
type Bullet struct {
	Body
	Owner  Object
	Damage float64
	Range  float64 // Remaining travel distance
}

// NewBullet creates a bullet fired by owner.
func NewBullet(pos, velocity physics.Vec2, owner Object, damage, rng float64) *Bullet {
	return &Bullet{
		Body: Body{
			Pos:        pos,
			Velocity:   velocity,
			Angle:      physics.Heading(velocity),
			Color:      draw.Yellow,
			Collidable: true,
		},
		Owner:  owner,
		Damage: damage,
		Range:  rng,
	}
}

// OwnerObject returns the object that fired the bullet.
func (b *Bullet) OwnerObject() Object {
	return b.Owner
}

// Update resolves contacts at the current position, then advances the bullet.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.Destroyed() {
		return true, ErrDestroyed
	}

	if ctx.Query != nil {
		ctx.Query.Query(b.Pos, b.Size, func(o Object) bool {
			if o == Object(b) {
				return false
			}
			b.CollideWithObject(ctx, o)
			return b.Destroyed()
		})
	}
	if b.Destroyed() {
		return true, nil
	}

	if cell, data, ok := ctx.Tiles.At(b.Pos); ok && b.CollideWithTile(ctx, data, cell) {
		return true, nil
	}

	b.Pos = b.Pos.Add(b.Velocity)
	b.Angle = physics.Heading(b.Velocity)
	b.Range -= b.Velocity.Len()
	if b.Range < 0 {
		b.Kill()
	}

	return b.Destroyed(), nil
}

// CollideWithObject damages a valid target and stops on it or on anything solid.
// The owner, objects acting for the owner and other bullets are passed through.
func (b *Bullet) CollideWithObject(ctx UpdateContext, o Object) bool {
	if b.ignores(o) {
		return false
	}

	hit := false
	if target, ok := o.(Damageable); ok && b.canDamage(ctx.DamagePolicy, o) {
		target.Damage(ctx, b.Damage, b)
		b.Kill()
		hit = true
	}

	if o.Base().Solid {
		b.Kill()
		hit = true
	}
	return hit
}

// CollideWithTile destroys a destructible tile along with the bullet.
// Empty and indestructible tiles (data <= 0) do not interact.
func (b *Bullet) CollideWithTile(ctx UpdateContext, data int, cell TileCell) bool {
	if data <= 0 {
		return false
	}
	ctx.Tiles.Destroy(cell)
	b.Kill()
	return true
}

// Kill destroys the bullet. Calling it again is a no-op.
func (b *Bullet) Kill() {
	if b.Destroyed() {
		return
	}
	b.Destroy()
}

func (b *Bullet) ignores(o Object) bool {
	if o == b.Owner {
		return true
	}
	if _, ok := o.(*Bullet); ok {
		return true
	}
	if owned, ok := o.(Owned); ok && owned.OwnerObject() == b.Owner {
		return true
	}
	return false
}

func (b *Bullet) canDamage(policy DamagePolicy, o Object) bool {
	switch policy {
	case DamageAnyNonOwner:
		return true
	default:
		return o.Base().Enemy
	}
}

// Draw renders the bullet as a short streak along its velocity.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Renderer.DrawRect(b.Pos, bulletDrawSize, b.Color, b.Angle)
	return nil
}
