package factory

import (
	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BossStats is a scaled boss stat block. Level is 1 for the first boss.
type BossStats struct {
	Level  int
	Radius float64
	Health float64
	Speed  float64
	Damage float64
	XP     int

	DashCooldown int // initial Phase 3 dash cooldown
}

func CreateBoss(ecs *ecs.ECS, x, y float64, stats BossStats) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)
	p := cfg.Boss.Params

	attachBody(ecs.World, boss, x, y, stats.Radius, tags.ResolvEnemy)
	components.Enemy.SetValue(boss, components.EnemyData{
		Behavior:  cfg.BehaviorBoss,
		Params:    p,
		Speed:     stats.Speed,
		BaseSpeed: stats.Speed,
		Damage:    stats.Damage,
		XP:        stats.XP,
		OrbitDir:  1,
	})
	components.Boss.SetValue(boss, components.BossData{
		Level:        stats.Level,
		Phase:        components.BossPhase1,
		DashCooldown: stats.DashCooldown,
		MissileTimer: p.MissileInterval,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})

	return boss
}
