package object

import (
	"math"
	"sync"

	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/physics"
)

// particleSize is the drawn size of one debris fleck.
var particleSize = physics.V(0.15, 0.15)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Particle is a short-lived visual effect. It never collides.
type Particle struct {
	Body
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity kept per tick (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, velocity physics.Vec2, lifetime float64, c draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		Body: Body{
			Pos:      pos,
			Size:     particleSize,
			Velocity: velocity,
			Color:    c,
		},
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Drag:        0.9,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnDebris creates particles in a circular burst around pos.
func SpawnDebris(ctx UpdateContext, pos physics.Vec2, count int, speed, lifetime float64, c draw.Color) {
	if ctx.Spawner == nil || ctx.Rand == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := ctx.Rand.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + ctx.Rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + ctx.Rand.Float64()*0.5)

		velocity := physics.Rotate(physics.V(spd, 0), angle)
		ctx.Spawner.Spawn(NewParticle(pos, velocity, life, c))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	if p.Destroyed() {
		return true, ErrDestroyed
	}

	p.Lifetime -= ctx.Delta
	if p.Lifetime <= 0 {
		p.Destroy()
		return true, nil
	}

	p.Velocity = p.Velocity.Mul(p.Drag)
	p.Pos = p.Pos.Add(p.Velocity)

	return false, nil
}

// Draw renders the particle, fading it out over its lifetime.
func (p *Particle) Draw(ctx DrawContext) error {
	c := p.Color
	if p.MaxLifetime > 0 {
		c.A *= physics.Clamp(p.Lifetime/p.MaxLifetime, 0, 1)
	}
	ctx.Renderer.DrawRect(p.Pos, p.Size, c, 0)
	return nil
}
