package object

import (
	"fmt"

	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// Ship is the player-controlled craft. It moves directly with the arrow keys
// and fires continuously through its Weapon.
type Ship struct {
	Body
	Weapon *Weapon
}

// NewShip creates a ship at pos with its weapon attached.
// clock drives the weapon's recoil timer.
func NewShip(pos physics.Vec2, t config.Tuning, clock *physics.Clock) *Ship {
	s := &Ship{
		Body: Body{
			Pos:        pos,
			Size:       physics.V(t.ShipWidth, t.ShipHeight),
			Color:      draw.White,
			Collidable: true,
			Solid:      true,
			Static:     true,
		},
	}
	s.Weapon = NewWeapon(s, t, clock)
	return s
}

// Update moves the ship by half a unit per held direction key and keeps the
// weapon firing.
func (s *Ship) Update(ctx UpdateContext) (bool, error) {
	if s.Destroyed() {
		return true, ErrDestroyed
	}

	in := ctx.Input
	move := physics.V((b2f(in.Right)-b2f(in.Left))/2, (b2f(in.Up)-b2f(in.Down))/2)

	// Axes are resolved separately so the ship can slide along a wall
	s.moveBy(ctx, physics.V(move.X(), 0))
	s.moveBy(ctx, physics.V(0, move.Y()))

	s.Weapon.TriggerHeld = true
	if _, err := s.Weapon.Update(ctx); err != nil {
		return false, fmt.Errorf("ship weapon: %w", err)
	}

	return false, nil
}

// moveBy applies delta unless it would push the ship into a static solid object.
func (s *Ship) moveBy(ctx UpdateContext, delta physics.Vec2) {
	if delta == (physics.Vec2{}) {
		return
	}
	next := s.Pos.Add(delta)
	if ctx.Query != nil && s.blockedAt(ctx.Query, next) {
		return
	}
	s.Pos = next
}

// blockedAt reports whether the ship at next would newly overlap a static solid object.
// Objects it already overlaps do not block, so it can never get stuck.
func (s *Ship) blockedAt(q Querier, next physics.Vec2) bool {
	blocked := false
	q.Query(next, s.Size, func(o Object) bool {
		if o == Object(s) {
			return false
		}
		b := o.Base()
		if !b.Solid || !b.Static || s.Overlaps(b) {
			return false
		}
		blocked = true
		return true
	})
	return blocked
}

// Draw renders the hull, then the weapon on top of it.
func (s *Ship) Draw(ctx DrawContext) error {
	ctx.Renderer.DrawRect(s.Pos, s.Size, s.Color, s.Angle)
	return s.Weapon.Draw(ctx)
}
