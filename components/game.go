package components

import (
	"math/rand/v2"

	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/pool"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// DelayedKind names an event scheduled on the tick clock.
type DelayedKind int

const (
	DelayedRemoveBoss DelayedKind = iota
	DelayedVictory
)

func (k DelayedKind) String() string {
	switch k {
	case DelayedRemoveBoss:
		return "remove_boss"
	case DelayedVictory:
		return "victory"
	}
	return "unknown"
}

// DelayedEvent fires once Tick reaches Due.
type DelayedEvent struct {
	Due    int
	Kind   DelayedKind
	Entity donburi.Entity
}

// GameData is the run-wide simulation context.
type GameData struct {
	Tick     int
	TickRate int

	SpawnTimer      int
	BossesKilled    int
	BossEverSpawned bool
	// VictoryTick is the tick of the last victory signal, -1 before the
	// first boss kill.
	VictoryTick      int
	DefeatInProgress bool
	Over             bool
	Kills            int

	// Enemies grouped by behavior, rebuilt every tick.
	Buckets [config.BehaviorCount][]*donburi.Entry

	Projectiles *pool.Pool
	Pending     []DelayedEvent
	Screen      ScreenData

	Rand   *rand.Rand
	Logger *zap.Logger
	Events *events.Bus
}

// Time returns elapsed game time in seconds.
func (g *GameData) Time() float64 {
	if g.TickRate <= 0 {
		return 0
	}
	return float64(g.Tick) / float64(g.TickRate)
}

// Schedule queues kind to fire after the given number of ticks.
func (g *GameData) Schedule(after int, kind DelayedKind, entity donburi.Entity) {
	g.Pending = append(g.Pending, DelayedEvent{Due: g.Tick + after, Kind: kind, Entity: entity})
}

var Game = donburi.NewComponentType[GameData]()
