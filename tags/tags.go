package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Boss   = donburi.NewTag().SetName("Boss")
	XPOrb  = donburi.NewTag().SetName("XPOrb")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvOrb        = "Orb"
	ResolvProjectile = "Projectile"
)
