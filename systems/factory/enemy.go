package factory

import (
	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyStats is a fully scaled stat block for one spawn.
type EnemyStats struct {
	Kind    cfg.EnemyKind
	Variant cfg.VariantConfig
	Radius  float64
	Health  float64
	Speed   float64
	Damage  float64
	XP      int
	Minion  bool
}

// NewEnemyStats layers the variant and the difficulty multipliers over the
// type's base stats.
func NewEnemyStats(kind cfg.EnemyKind, variant cfg.VariantConfig, healthScale, damageScale float64) EnemyStats {
	t := cfg.Enemy.Types[kind]
	return EnemyStats{
		Kind:    kind,
		Variant: variant,
		Radius:  t.Radius * orOne(variant.SizeMult),
		Health:  t.Health * orOne(variant.HealthMult) * healthScale,
		Speed:   t.Speed * orOne(variant.SpeedMult),
		Damage:  t.Damage * orOne(variant.DamageMult) * damageScale,
		XP:      t.XP,
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func CreateEnemy(ecs *ecs.ECS, x, y float64, stats EnemyStats) *donburi.Entry {
	t := cfg.Enemy.Types[stats.Kind]
	enemy := archetypes.Enemy.Spawn(ecs)

	attachBody(ecs.World, enemy, x, y, stats.Radius, tags.ResolvEnemy)

	orbit := 1.0
	if game, ok := components.Game.First(ecs.World); ok {
		if components.Game.Get(game).Rand.IntN(2) == 0 {
			orbit = -1
		}
	}

	data := components.EnemyData{
		Kind:      stats.Kind,
		Behavior:  t.Params.Behavior(),
		Params:    t.Params,
		Variant:   stats.Variant,
		Speed:     stats.Speed,
		BaseSpeed: stats.Speed,
		Damage:    stats.Damage,
		XP:        stats.XP,
		OrbitDir:  orbit,
		Minion:    stats.Minion,
	}
	switch p := t.Params.(type) {
	case cfg.TeleportParams:
		data.SpecialCooldown = p.Cooldown
	}
	if dive, ok := stats.Variant.Trait.(cfg.DiveTrait); ok {
		data.SpecialCooldown = dive.Cooldown
	}
	components.Enemy.SetValue(enemy, data)
	components.Health.SetValue(enemy, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})

	return enemy
}
