package pool

import (
	"math"

	"github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi"
)

// Shot is the launch state shared by every projectile constructor.
type Shot struct {
	X, Y   float64
	VX, VY float64
	Damage float64
	Life   int
	Radius float64
	Source config.WeaponType
}

func (p *Pool) launch(s Shot, kind Kind) *Projectile {
	pr := p.Acquire()
	pr.X, pr.Y = s.X, s.Y
	pr.VX, pr.VY = s.VX, s.VY
	pr.Speed = math.Hypot(s.VX, s.VY)
	pr.Damage = s.Damage
	pr.Life = s.Life
	pr.Radius = s.Radius
	if pr.Radius <= 0 {
		pr.Radius = 4
	}
	pr.Source = s.Source
	pr.Kind = kind
	p.attach(pr)
	return pr
}

// Basic launches a player projectile with the given piercing budget.
func (p *Pool) Basic(s Shot, pierce int) *Projectile {
	pr := p.launch(s, KindBasic)
	pr.Pierce = pierce
	if pierce == config.Infinite {
		pr.Kind = KindBeam
	}
	return pr
}

// Homing launches a player projectile that steers toward target. A
// strength of 1 retargets hard every tick.
func (p *Pool) Homing(s Shot, target donburi.Entity, strength float64, pierce, maxHits int) *Projectile {
	pr := p.launch(s, KindHoming)
	pr.Homing = true
	pr.HomingStrength = strength
	pr.Target = target
	pr.HasTarget = true
	pr.Pierce = pierce
	pr.MaxHits = maxHits
	return pr
}

// Explosive launches a player projectile that detonates on hit for share
// of its damage.
func (p *Pool) Explosive(s Shot, radius, share float64) *Projectile {
	pr := p.launch(s, KindExplosive)
	pr.ExplosionRadius = radius
	pr.ExplosionShare = share
	return pr
}

// Flame launches a short-lived projectile that sets enemies burning.
func (p *Pool) Flame(s Shot, pierce int, burn config.BurnSpecial) *Projectile {
	pr := p.launch(s, KindFlame)
	pr.Pierce = pierce
	pr.BurnDamage = burn.DamagePerTick
	pr.BurnInterval = burn.Interval
	pr.BurnDuration = burn.Duration
	return pr
}

// BossMissile launches an enemy-owned homing missile aimed at the player.
// The player is not an enemy, so the target is implicit.
func (p *Pool) BossMissile(s Shot, strength, explosion float64) *Projectile {
	pr := p.launch(s, KindBossMissile)
	pr.Owner = OwnerEnemy
	pr.Homing = strength > 0
	pr.HomingStrength = strength
	pr.ExplosionRadius = explosion
	return pr
}
