// Package pool keeps projectile records in a bounded free list so firing
// does not allocate every frame.
package pool

import (
	"github.com/automoto/arena-survivor/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Owner says who fired a projectile. The zero value is OwnerPlayer.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Kind is the projectile's type tag.
type Kind int

const (
	KindBasic Kind = iota
	KindBeam
	KindExplosive
	KindFlame
	KindHoming
	KindBossMissile
)

// ResolvTag tags projectile bodies in the collision space.
const ResolvTag = "Projectile"

// Projectile is a pooled record. Every field is reset on release.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
	Damage float64
	Life   int

	Kind   Kind
	Owner  Owner
	Source config.WeaponType

	Pierce  int // total hit budget, config.Infinite for unlimited
	Hits    int
	MaxHits int // separate budget for homing beams, 0 uses Pierce

	Homing         bool
	HomingStrength float64
	Target         donburi.Entity // weak; check world.Valid before use
	HasTarget      bool

	ExplosionRadius float64
	ExplosionShare  float64

	BurnDamage   float64
	BurnInterval int
	BurnDuration int

	// HitList remembers enemies already struck so piercing shots hit each
	// enemy once.
	HitList []donburi.Entity

	Object *resolv.Object

	active bool
}

// Active reports whether the record is currently in flight.
func (p *Projectile) Active() bool {
	return p.active
}

// HitBudget returns how many hits the projectile may register, or
// config.Infinite.
func (p *Projectile) HitBudget() int {
	if p.MaxHits > 0 {
		return p.MaxHits
	}
	if p.Pierce == config.Infinite {
		return config.Infinite
	}
	if p.Pierce > 0 {
		return p.Pierce
	}
	return 1
}

// Exhausted reports whether the hit budget is used up.
func (p *Projectile) Exhausted() bool {
	b := p.HitBudget()
	return b != config.Infinite && p.Hits >= b
}

// AlreadyHit reports whether e was struck by this projectile.
func (p *Projectile) AlreadyHit(e donburi.Entity) bool {
	for _, h := range p.HitList {
		if h == e {
			return true
		}
	}
	return false
}

// reset restores every mutable field to its default. The owner goes back
// to OwnerPlayer so a recycled enemy shot can never hurt the player.
func (p *Projectile) reset() {
	obj := p.Object
	hits := p.HitList[:0]
	*p = Projectile{}
	p.Owner = OwnerPlayer
	p.Object = obj
	p.HitList = hits
}

// syncBody moves the broad-phase body to the projectile's bounds.
func (p *Projectile) syncBody() {
	if p.Object == nil || p.Object.Space == nil {
		return
	}
	p.Object.X = p.X - p.Radius
	p.Object.Y = p.Y - p.Radius
	p.Object.W = p.Radius * 2
	p.Object.H = p.Radius * 2
	p.Object.Update()
}

// Move advances the projectile by its velocity and keeps its body in sync.
func (p *Projectile) Move() {
	p.X += p.VX
	p.Y += p.VY
	p.syncBody()
}
