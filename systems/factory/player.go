package factory

import (
	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachBody(ecs.World, player, x, y, cfg.Player.Radius, tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Speed:      cfg.Player.Speed,
		Level:      1,
		FacingX:    1,
		Passives:   make(map[cfg.PassiveKey]int),
		Weapons:    []*components.WeaponData{NewWeapon(cfg.Player.StartingWeapon)},
		MaxWeapons: cfg.Passives.BaseMaxWeapons,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}

// NewWeapon returns a level-1 weapon of type t, ready to fire.
func NewWeapon(t cfg.WeaponType) *components.WeaponData {
	wc := cfg.Weapons.Types[t]
	return &components.WeaponData{
		Type:            t,
		Level:           1,
		Damage:          wc.Damage,
		FireRate:        wc.FireRate,
		Range:           wc.Range,
		ProjectileSpeed: wc.ProjectileSpeed,
		Pierce:          wc.Pierce,
		ProjectileCount: wc.ProjectileCount,
		BaseCount:       wc.ProjectileCount,
		Mergeable:       isMergeIngredient(t),
		FramesSinceFire: wc.FireRate,
	}
}

func isMergeIngredient(t cfg.WeaponType) bool {
	for _, r := range cfg.Weapons.Merges {
		if r.A == t || r.B == t {
			return true
		}
	}
	return false
}
