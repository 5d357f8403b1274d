package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateDirector spawns enemies and the boss.
func UpdateDirector(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	if game.DefeatInProgress {
		return
	}
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	pt := components.Transform.Get(pe)
	now := game.Time()

	if !bossAlive(ecs.World) && bossDue(game, now) {
		// The boss takes a slot; at the cap it waits for one to open.
		if countEnemies(ecs.World) < cfg.Director.MaxEnemies {
			spawnBoss(ecs, game, pt.X, pt.Y)
		}
		return
	}

	game.SpawnTimer++
	if game.SpawnTimer < SpawnRate(now) {
		return
	}
	game.SpawnTimer = 0

	room := cfg.Director.MaxEnemies - countEnemies(ecs.World)
	n := min(SpawnBurst(now), room)
	for i := 0; i < n; i++ {
		spawnEnemy(ecs, game, pt.X, pt.Y)
	}
}

// bossDue reports whether the first boss or a respawn is owed.
func bossDue(game *components.GameData, now float64) bool {
	if !game.BossEverSpawned {
		return now >= cfg.Director.BossSpawnSeconds
	}
	return game.VictoryTick >= 0 && game.Tick-game.VictoryTick >= secondsToTicks(cfg.Director.BossRespawnSeconds, game.TickRate)
}

// SpawnRate is the number of ticks between spawn bursts.
func SpawnRate(seconds float64) int {
	d := cfg.Director
	rate := d.SpawnRateBase - int(math.Floor(seconds/d.SpawnRateEvery))*d.SpawnRateStep
	return max(d.SpawnRateMin, rate)
}

// SpawnBurst is the number of enemies spawned per burst.
func SpawnBurst(seconds float64) int {
	return 1 + int(math.Floor(seconds/cfg.Director.BurstEvery))
}

// TimeScale is the time-based health multiplier.
func TimeScale(seconds float64) float64 {
	d := cfg.Director
	return 1 + d.TimeScalePerStep*math.Floor(seconds/d.TimeScaleEvery)
}

// Difficulty returns the health and damage multipliers for new enemies.
// Before the first boss kill scaling follows time; afterwards time scaling
// is frozen and each kill adds its own step.
func Difficulty(seconds float64, bossesKilled int) (health, damage float64) {
	d := cfg.Director
	if bossesKilled <= 0 {
		return TimeScale(seconds), 1
	}
	k := float64(bossesKilled)
	return TimeScale(d.TimeScaleFreezeAt) * (1 + d.KillHealthScale*k), 1 + d.KillDamageScale*k
}

// BossStatsFor returns the stats of the boss spawned after bossesKilled
// kills. The baseline is the boss's health at the time scaling freeze, not
// the raw config value.
func BossStatsFor(bossesKilled int) factory.BossStats {
	d := cfg.Director
	k := float64(bossesKilled)
	baseline := cfg.Boss.Health * TimeScale(d.TimeScaleFreezeAt)
	return factory.BossStats{
		Level:  bossesKilled + 1,
		Radius: cfg.Boss.Radius * math.Pow(d.BossSizeGrowth, k),
		Health: baseline * math.Pow(d.BossHealthGrowth, k),
		Speed:  cfg.Boss.Speed * math.Pow(d.BossSpeedGrowth, k),
		Damage: cfg.Boss.Damage * math.Pow(d.BossDamageGrowth, k),
		XP:     cfg.Boss.XP,

		DashCooldown: DashCooldownFor(bossesKilled),
	}
}

func spawnBoss(ecs *ecs.ECS, game *components.GameData, px, py float64) {
	stats := BossStatsFor(game.BossesKilled)
	x, y := spawnPoint(game.Rand, px, py, stats.Radius)
	factory.CreateBoss(ecs, x, y, stats)
	game.BossEverSpawned = true
	game.Logger.Info("boss spawned",
		zap.Int("level", stats.Level),
		zap.Float64("health", stats.Health),
		zap.Float64("time", game.Time()),
	)
}

func spawnEnemy(ecs *ecs.ECS, game *components.GameData, px, py float64) {
	kind := PickEnemyKind(game.Rand, game.Time())
	variant := PickVariant(game.Rand, cfg.Enemy.Types[kind].Variants, game.BossesKilled)
	hs, ds := Difficulty(game.Time(), game.BossesKilled)
	stats := factory.NewEnemyStats(kind, variant, hs, ds)
	x, y := spawnPoint(game.Rand, px, py, stats.Radius)
	factory.CreateEnemy(ecs, x, y, stats)
}

// spawnPoint picks a point on a ring around the player, inside the arena.
func spawnPoint(r *rand.Rand, px, py, radius float64) (float64, float64) {
	d := cfg.Director
	angle := r.Float64() * 2 * math.Pi
	dist := d.SpawnDistanceMin + r.Float64()*(d.SpawnDistanceMax-d.SpawnDistanceMin)
	vx, vy := velocityAt(angle, dist)
	return clampToArena(px+vx, py+vy, radius)
}

// PickEnemyKind draws an unlocked enemy type by weight.
func PickEnemyKind(r *rand.Rand, seconds float64) cfg.EnemyKind {
	var kinds []cfg.EnemyKind
	var weights []float64
	for _, t := range cfg.Enemy.Types {
		if seconds >= t.UnlockSeconds {
			kinds = append(kinds, t.Kind)
			weights = append(weights, t.Weight)
		}
	}
	if len(kinds) == 0 {
		return cfg.Grunt
	}
	return kinds[pickWeighted(r, weights)]
}

// PickVariant draws an unlocked variant. Weights grow with every boss kill
// past a variant's unlock.
func PickVariant(r *rand.Rand, variants []cfg.VariantConfig, bossesKilled int) cfg.VariantConfig {
	var open []cfg.VariantConfig
	var weights []float64
	for _, v := range variants {
		if bossesKilled < v.MinBosses {
			continue
		}
		open = append(open, v)
		weights = append(weights, VariantWeight(v, bossesKilled))
	}
	if len(open) == 0 {
		return cfg.VariantConfig{Name: "normal", HealthMult: 1, SpeedMult: 1, DamageMult: 1, SizeMult: 1}
	}
	return open[pickWeighted(r, weights)]
}

// VariantWeight is weight × (1 + growth × max(0, kills − minBosses)).
func VariantWeight(v cfg.VariantConfig, bossesKilled int) float64 {
	extra := max(0, bossesKilled-v.MinBosses)
	return v.Weight * (1 + cfg.Director.VariantGrowth*float64(extra))
}

// pickWeighted samples an index from the cumulative distribution of
// weights.
func pickWeighted(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	roll := r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if roll < acc {
			return i
		}
	}
	return len(weights) - 1
}

func secondsToTicks(seconds float64, tickRate int) int {
	return int(math.Round(seconds * float64(tickRate)))
}
