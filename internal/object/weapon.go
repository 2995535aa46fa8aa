package object

import (
	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// fireEpsilon absorbs float drift when the fire budget lands on a whole interval.
const fireEpsilon = 1e-12

// Weapon is a gun attached to an owner at a fixed offset. While the trigger is
// held it converts elapsed time into bullets at FireRate, catching up with
// several shots in one frame if frames are slow.
type Weapon struct {
	Body
	Owner  Object
	Offset physics.Vec2 // From the owner's centre, mirrored with the owner

	FireRate     float64 // Shots per second
	BulletSpeed  float64 // World units per tick
	BulletSpread float64 // Max deviation in radians, either side
	BulletDamage float64
	BulletRange  float64

	RecoilMin  float64 // Radians
	RecoilMax  float64
	RecoilTime float64 // Seconds for the kick to settle

	TriggerHeld bool
	LocalAngle  float64 // Recoil kick relative to the owner

	fireBudget float64 // Seconds of fire time banked
	recoil     physics.Timer
}

// NewWeapon creates a weapon attached to owner.
func NewWeapon(owner Object, t config.Tuning, clock *physics.Clock) *Weapon {
	w := &Weapon{
		Body: Body{
			Size:   physics.V(t.WeaponSize, t.WeaponSize),
			Color:  draw.White,
			Static: true,
		},
		Owner:        owner,
		Offset:       physics.V(t.WeaponOffset, 0),
		FireRate:     t.FireRate,
		BulletSpeed:  t.BulletSpeed,
		BulletSpread: t.BulletSpread,
		BulletDamage: t.BulletDamage,
		BulletRange:  t.BulletRange,
		RecoilMin:    t.RecoilMin,
		RecoilMax:    t.RecoilMax,
		RecoilTime:   t.RecoilTime,
		recoil:       physics.NewTimer(clock),
	}
	w.follow()
	return w
}

// OwnerObject returns the object the weapon is attached to.
func (w *Weapon) OwnerObject() Object {
	return w.Owner
}

// FireBudget returns the banked fire time in seconds.
func (w *Weapon) FireBudget() float64 {
	return w.fireBudget
}

// Update follows the owner, settles recoil and fires as many bullets as the
// banked time allows.
func (w *Weapon) Update(ctx UpdateContext) (bool, error) {
	if w.Destroyed() {
		return true, ErrDestroyed
	}

	w.follow()

	if w.recoil.Active() {
		w.LocalAngle = physics.Lerp(w.recoil.Percent(), w.LocalAngle, 0)
	}

	w.fireBudget += ctx.Delta
	if w.TriggerHeld {
		interval := 1 / w.FireRate
		for w.fireBudget >= interval-fireEpsilon {
			w.fire(ctx)
			w.fireBudget -= interval
		}
	} else {
		w.fireBudget = min(w.fireBudget, 0)
	}

	w.Angle = w.Owner.Base().Angle + w.LocalAngle*w.FacingSign()
	return false, nil
}

// follow snaps the weapon to its owner.
func (w *Weapon) follow() {
	owner := w.Owner.Base()
	w.Mirror = owner.Mirror
	sign := owner.FacingSign()
	w.Pos = owner.Pos.Add(physics.V(w.Offset.X()*sign, w.Offset.Y()))
}

// fire emits one bullet and kicks the weapon.
func (w *Weapon) fire(ctx UpdateContext) {
	direction := physics.V(w.BulletSpeed*w.FacingSign(), 0)
	spread := (ctx.Rand.Float64()*2 - 1) * w.BulletSpread
	velocity := physics.Rotate(direction, spread)

	ctx.Spawner.Spawn(NewBullet(w.Pos, velocity, w.Owner, w.BulletDamage, w.BulletRange))

	w.LocalAngle = -(w.RecoilMin + ctx.Rand.Float64()*(w.RecoilMax-w.RecoilMin))
	w.recoil.Set(w.RecoilTime)

	if ctx.Audio != nil {
		ctx.Audio.Play(audio.EffectShoot)
	}
}

// Draw renders the weapon at its recoil angle.
func (w *Weapon) Draw(ctx DrawContext) error {
	ctx.Renderer.DrawRect(w.Pos, w.Size, w.Color, w.Angle)
	return nil
}
