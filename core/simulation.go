// Package core wires the systems into a fixed-timestep simulation and
// drives it in real time.
package core

import (
	"time"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/systems"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configures a new simulation.
type Options struct {
	Seed        uint64
	Logger      *zap.Logger
	Subscribers []any // event listeners, see package events
}

// Simulation owns the world and advances it one tick at a time.
type Simulation struct {
	ecs    *ecs.ECS
	clock  *Clock
	game   *donburi.Entry
	player *donburi.Entry
	bus    *events.Bus
	logger *zap.Logger
}

func NewSimulation(opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bus := events.NewBus(opts.Subscribers...)

	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	factory.CreateSpace(e, int(cfg.Sim.ArenaWidth), int(cfg.Sim.ArenaHeight), cfg.Sim.CellSize, cfg.Sim.CellSize)
	game := factory.CreateGame(e, opts.Seed, logger, bus)
	player := factory.CreatePlayer(e, cfg.Sim.ArenaWidth/2, cfg.Sim.ArenaHeight/2)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSchedule))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDirector))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateWeapons))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStatus))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateXP))
	e.AddSystem(systems.UpdateEffects)

	logger.Debug("simulation created",
		zap.Uint64("seed", opts.Seed),
		zap.Int("tick_rate", cfg.Sim.TickRate),
		zap.Float64("arena_width", cfg.Sim.ArenaWidth),
		zap.Float64("arena_height", cfg.Sim.ArenaHeight),
	)

	return &Simulation{
		ecs:    e,
		clock:  NewClock(cfg.Sim.TickRate, cfg.Sim.MaxCatchUpSteps),
		game:   game,
		player: player,
		bus:    bus,
		logger: logger,
	}
}

// Step runs exactly one tick. It is a no-op once the run is over.
func (s *Simulation) Step() {
	game := s.Game()
	if game.Over {
		return
	}
	s.ecs.Update()
	game.Tick++
}

// Advance feeds real elapsed time through the clock and runs the steps it
// yields. It returns the number of steps run.
func (s *Simulation) Advance(elapsed time.Duration) int {
	n := s.clock.Advance(elapsed)
	for i := 0; i < n; i++ {
		s.Step()
	}
	return n
}

// SetInput sets the movement intent read by the next tick.
func (s *Simulation) SetInput(in components.InputData) {
	components.Input.SetValue(s.player, in)
}

// Apply applies an upgrade choice from the selection flow.
func (s *Simulation) Apply(c systems.Choice) bool {
	return systems.ApplyChoice(s.ecs, c)
}

// Offers draws up to n upgrade choices for the selection flow.
func (s *Simulation) Offers(n int) []systems.Choice {
	return systems.OfferChoices(s.ecs, n)
}

// Subscribe adds an event listener.
func (s *Simulation) Subscribe(l any) bool {
	return s.bus.Subscribe(l)
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

func (s *Simulation) Clock() *Clock {
	return s.clock
}

func (s *Simulation) Game() *components.GameData {
	return components.Game.Get(s.game)
}

func (s *Simulation) Player() *donburi.Entry {
	return s.player
}

// Over reports whether the player has died.
func (s *Simulation) Over() bool {
	return s.Game().Over
}
