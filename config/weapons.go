package config

import (
	"fmt"
	"math"
)

// WeaponType identifies a weapon.
type WeaponType int

const (
	WeaponBasic WeaponType = iota
	WeaponRapid
	WeaponSpread
	WeaponLaser
	WeaponRailgun
	WeaponPlasma
	WeaponShotgun
	WeaponLightning
	WeaponShockburst
	WeaponFlamethrower
	WeaponMissiles
	WeaponHomingLaser
	WeaponGatlingGun

	WeaponTypeCount int = iota
)

var weaponNames = [...]string{
	"basic", "rapid", "spread", "laser", "railgun", "plasma", "shotgun",
	"lightning", "shockburst", "flamethrower", "missiles", "homing_laser", "gatling_gun",
}

func (w WeaponType) String() string {
	if int(w) < 0 || int(w) >= len(weaponNames) {
		return fmt.Sprintf("WeaponType(%d)", int(w))
	}
	return weaponNames[w]
}

// ParseWeaponType maps a weapon key to its type.
func ParseWeaponType(s string) (WeaponType, bool) {
	for i, n := range weaponNames {
		if n == s {
			return WeaponType(i), true
		}
	}
	return 0, false
}

// Infinite marks an unlimited piercing budget.
const Infinite = -1

// WeaponSpecial is the sealed set of per-weapon special parameters.
type WeaponSpecial interface {
	weaponSpecial()
}

// ExplosiveSpecial detonates on hit for a share of the hit damage.
type ExplosiveSpecial struct {
	Radius      float64
	DamageShare float64
}

// BurnSpecial applies damage over time.
type BurnSpecial struct {
	DamagePerTick float64
	Interval      int
	Duration      int
}

// ChainSpecial is an instant chain hit across nearby enemies.
type ChainSpecial struct {
	MaxTargets  int
	HopRadius   float64
	BaseHops    int
	SplashRange float64 // 0 disables the area splash at each node
}

// HomingSpecial steers projectiles toward a captured target.
type HomingSpecial struct {
	MaxTargets int
	Strength   float64 // 1 means hard retarget every tick
	MaxHits    int     // separate hit budget; 0 uses the pierce budget

	BlastRadius float64 // 0 disables detonation on hit
	BlastShare  float64
}

// PelletSpecial randomizes pellet direction, damage and speed.
type PelletSpecial struct {
	Spread         float64
	DamageVariance float64
	SpeedVariance  float64
}

// BarrelSpecial fires one projectile per target, one barrel per level.
type BarrelSpecial struct {
	MuzzleOffset float64
}

// FanSpecial fires a fixed angular fan that widens with level.
type FanSpecial struct {
	Angle         float64
	AnglePerLevel float64
}

func (ExplosiveSpecial) weaponSpecial() {}
func (BurnSpecial) weaponSpecial()      {}
func (ChainSpecial) weaponSpecial()     {}
func (HomingSpecial) weaponSpecial()    {}
func (PelletSpecial) weaponSpecial()    {}
func (BarrelSpecial) weaponSpecial()    {}
func (FanSpecial) weaponSpecial()       {}

// WeaponConfig is the level-1 stat block of a weapon type.
type WeaponConfig struct {
	Type            WeaponType
	Damage          float64
	FireRate        int // ticks between shots
	Range           float64
	ProjectileSpeed float64
	Pierce          int // hits per projectile; Infinite for unlimited
	ProjectileCount int
	Life            int
	Radius          float64
	Spread          float64 // angle between projectiles when count > 1
	Special         WeaponSpecial
}

// MergeRecipe combines two weapons at or above a level into a new one.
type MergeRecipe struct {
	A, B          WeaponType
	MinLevelA     int
	MinLevelB     int
	Result        WeaponType
	StartingCount int
}

// LevelingConfig controls weapon level-ups.
type LevelingConfig struct {
	DamagePerLevel     float64 // multiplier applied on each level-up
	ProjectileLevels   []int   // levels that grant +1 projectile
	MaxProjectileCount int
	MaxLevel           int
}

// WeaponsConfig holds every weapon type, the leveling rules and the merge
// table.
type WeaponsConfig struct {
	Types    [WeaponTypeCount]WeaponConfig
	Leveling LevelingConfig
	Merges   []MergeRecipe
}

// FindMerge returns the recipe combining a and b at the given levels.
func (c *WeaponsConfig) FindMerge(a WeaponType, levelA int, b WeaponType, levelB int) (MergeRecipe, bool) {
	for _, r := range c.Merges {
		if r.A == a && r.B == b && levelA >= r.MinLevelA && levelB >= r.MinLevelB {
			return r, true
		}
		if r.A == b && r.B == a && levelB >= r.MinLevelA && levelA >= r.MinLevelB {
			return r, true
		}
	}
	return MergeRecipe{}, false
}

// ProjectileCountAt returns the projectile count a weapon starting with
// base projectiles has at level.
func (l *LevelingConfig) ProjectileCountAt(base, level int) int {
	n := base
	for _, t := range l.ProjectileLevels {
		if level >= t {
			n++
		}
	}
	if n > l.MaxProjectileCount {
		n = l.MaxProjectileCount
	}
	return n
}

func defaultWeapons() WeaponsConfig {
	var c WeaponsConfig
	set := func(w WeaponConfig) { c.Types[w.Type] = w }

	set(WeaponConfig{Type: WeaponBasic, Damage: 10, FireRate: 40, Range: 400, ProjectileSpeed: 6, ProjectileCount: 1, Life: 90, Radius: 4, Spread: 0.12})
	set(WeaponConfig{Type: WeaponRapid, Damage: 6, FireRate: 15, Range: 380, ProjectileSpeed: 8, ProjectileCount: 1, Life: 70, Radius: 3, Spread: 0.1})
	set(WeaponConfig{Type: WeaponSpread, Damage: 8, FireRate: 50, Range: 350, ProjectileSpeed: 6, ProjectileCount: 3, Life: 70, Radius: 4,
		Special: FanSpecial{Angle: 0.5, AnglePerLevel: 0.05}})
	set(WeaponConfig{Type: WeaponLaser, Damage: 15, FireRate: 60, Range: 500, ProjectileSpeed: 12, Pierce: Infinite, ProjectileCount: 1, Life: 60, Radius: 3, Spread: 0.08})
	set(WeaponConfig{Type: WeaponRailgun, Damage: 40, FireRate: 90, Range: 700, ProjectileSpeed: 18, Pierce: Infinite, ProjectileCount: 1, Life: 60, Radius: 4, Spread: 0.06})
	set(WeaponConfig{Type: WeaponPlasma, Damage: 20, FireRate: 70, Range: 420, ProjectileSpeed: 5, ProjectileCount: 1, Life: 100, Radius: 7, Spread: 0.15,
		Special: ExplosiveSpecial{Radius: 60, DamageShare: 0.5}})
	set(WeaponConfig{Type: WeaponShotgun, Damage: 7, FireRate: 60, Range: 250, ProjectileSpeed: 7, ProjectileCount: 5, Life: 40, Radius: 3,
		Special: PelletSpecial{Spread: 0.6, DamageVariance: 0.2, SpeedVariance: 0.15}})
	set(WeaponConfig{Type: WeaponLightning, Damage: 14, FireRate: 55, Range: 350, ProjectileCount: 1,
		Special: ChainSpecial{MaxTargets: 8, HopRadius: 150, BaseHops: 2}})
	set(WeaponConfig{Type: WeaponShockburst, Damage: 18, FireRate: 60, Range: 380, ProjectileCount: 1,
		Special: ChainSpecial{MaxTargets: 8, HopRadius: 150, BaseHops: 2, SplashRange: 50}})
	set(WeaponConfig{Type: WeaponFlamethrower, Damage: 3, FireRate: 8, Range: 150, ProjectileSpeed: 4, Pierce: 2, ProjectileCount: 3, Life: 30, Radius: 6, Spread: 0.15,
		Special: BurnSpecial{DamagePerTick: 2, Interval: 20, Duration: 120}})
	set(WeaponConfig{Type: WeaponMissiles, Damage: 18, FireRate: 80, Range: 500, ProjectileSpeed: 5, ProjectileCount: 1, Life: 180, Radius: 5,
		Special: HomingSpecial{MaxTargets: 8, Strength: 1, BlastRadius: 45, BlastShare: 0.7}})
	set(WeaponConfig{Type: WeaponHomingLaser, Damage: 14, FireRate: 45, Range: 500, ProjectileSpeed: 9, Pierce: 3, ProjectileCount: 2, Life: 120, Radius: 4,
		Special: HomingSpecial{MaxTargets: 8, Strength: 0.15, MaxHits: 4}})
	set(WeaponConfig{Type: WeaponGatlingGun, Damage: 5, FireRate: 6, Range: 420, ProjectileSpeed: 10, ProjectileCount: 1, Life: 60, Radius: 3,
		Special: BarrelSpecial{MuzzleOffset: 6}})

	c.Leveling = LevelingConfig{
		DamagePerLevel:     1.3,
		ProjectileLevels:   []int{3, 5, 7},
		MaxProjectileCount: 8,
		MaxLevel:           8,
	}
	c.Merges = []MergeRecipe{
		{A: WeaponLaser, B: WeaponMissiles, MinLevelA: 3, MinLevelB: 3, Result: WeaponHomingLaser, StartingCount: 2},
		{A: WeaponLightning, B: WeaponPlasma, MinLevelA: 3, MinLevelB: 3, Result: WeaponShockburst, StartingCount: 2},
		{A: WeaponRapid, B: WeaponShotgun, MinLevelA: 3, MinLevelB: 3, Result: WeaponGatlingGun, StartingCount: 2},
		{A: WeaponLaser, B: WeaponBasic, MinLevelA: 3, MinLevelB: 3, Result: WeaponRailgun, StartingCount: 2},
	}
	return c
}

// LevelDamage returns base damage scaled to level.
func (l *LevelingConfig) LevelDamage(base float64, level int) float64 {
	if level <= 1 {
		return base
	}
	return base * math.Pow(l.DamagePerLevel, float64(level-1))
}
