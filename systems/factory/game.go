package factory

import (
	"math/rand/v2"

	"github.com/automoto/arena-survivor/archetypes"
	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/pool"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateGame creates the singleton simulation context. The projectile pool
// shares the arena's collision space, so CreateSpace must run first.
func CreateGame(ecs *ecs.ECS, seed uint64, logger *zap.Logger, bus *events.Bus) *donburi.Entry {
	if logger == nil {
		logger = zap.NewNop()
	}
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		TickRate:    config.Sim.TickRate,
		VictoryTick: -1,
		Projectiles: pool.New(config.Sim.PoolCapacity, spaceOf(ecs.World)),
		Rand:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger:      logger,
		Events:      bus,
	})
	return game
}
