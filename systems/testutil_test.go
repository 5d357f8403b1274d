package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	centerX = 2000.0
	centerY = 2000.0
)

type helper interface {
	Helper()
}

// testWorld is a fully wired arena without the tick driver, so tests can
// run single systems.
type testWorld struct {
	ecs    *ecs.ECS
	game   *components.GameData
	player *donburi.Entry
	rec    *events.Recorder
}

func newTestWorld(t helper) *testWorld {
	t.Helper()
	cfg.Reset()

	rec := events.NewRecorder()
	rec.KeepHits = true

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, int(cfg.Sim.ArenaWidth), int(cfg.Sim.ArenaHeight), cfg.Sim.CellSize, cfg.Sim.CellSize)
	game := factory.CreateGame(e, 42, zap.NewNop(), events.NewBus(rec))
	player := factory.CreatePlayer(e, centerX, centerY)

	return &testWorld{
		ecs:    e,
		game:   components.Game.Get(game),
		player: player,
		rec:    rec,
	}
}

func (w *testWorld) enemy(kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	variant := cfg.Enemy.Types[kind].Variants[0]
	return factory.CreateEnemy(w.ecs, x, y, factory.NewEnemyStats(kind, variant, 1, 1))
}

// variantEnemy spawns the named variant of kind with a fixed orbit
// direction of +1.
func (w *testWorld) variantEnemy(kind cfg.EnemyKind, name string, x, y float64) *donburi.Entry {
	for _, v := range cfg.Enemy.Types[kind].Variants {
		if v.Name != name {
			continue
		}
		e := factory.CreateEnemy(w.ecs, x, y, factory.NewEnemyStats(kind, v, 1, 1))
		components.Enemy.Get(e).OrbitDir = 1
		return e
	}
	panic("unknown variant " + name)
}

func (w *testWorld) boss(x, y float64) *donburi.Entry {
	return factory.CreateBoss(w.ecs, x, y, BossStatsFor(w.game.BossesKilled))
}

func (w *testWorld) playerData() *components.PlayerData {
	return components.Player.Get(w.player)
}

func (w *testWorld) playerHealth() *components.HealthData {
	return components.Health.Get(w.player)
}

// tick runs every gameplay system once in simulation order.
func (w *testWorld) tick() {
	for _, s := range []ecs.System{
		UpdateSchedule, UpdatePlayer, UpdateDirector, UpdateEnemies,
		UpdateWeapons, UpdateProjectiles, UpdateObjects, UpdateCollisions,
		UpdateStatus, UpdateDeaths, UpdateXP,
	} {
		WithGameplayChecks(s)(w.ecs)
	}
	UpdateEffects(w.ecs)
	w.game.Tick++
}

func (w *testWorld) enemyCount() int {
	return countEnemies(w.ecs.World)
}
