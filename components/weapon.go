package components

import "github.com/automoto/arena-survivor/config"

// WeaponData is an owned weapon instance. The stat fields are derived from
// the weapon config, its level and the player's unique passives.
type WeaponData struct {
	Type            config.WeaponType
	Level           int
	Damage          float64
	FireRate        int
	Range           float64
	ProjectileSpeed float64
	Pierce          int
	ProjectileCount int
	BaseCount       int // projectile count at level 1, raised by merges
	Mergeable       bool // ingredient of some merge recipe

	FramesSinceFire int
	TotalDamage     float64
}

// Ready reports whether the fire-rate threshold has been reached.
func (w *WeaponData) Ready() bool {
	return w.FramesSinceFire >= w.FireRate
}
