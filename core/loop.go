package core

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// GameLoop drives a simulation from a wall-clock ticker.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	logger   *zap.Logger

	// OnFrame runs before each frame's steps, e.g. to poll input.
	OnFrame func(*Simulation)
}

func NewGameLoop(sim *Simulation, tickRate int, logger *zap.Logger) *GameLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   logger,
	}
}

// Run ticks until ctx is done or the run is over.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", zap.Int("tick_rate", g.tickRate))

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", zap.Int("tick", g.sim.Game().Tick))
			return ctx.Err()
		case now := <-ticker.C:
			g.frame(now.Sub(last))
			last = now
			if g.sim.Over() {
				g.logger.Info("game loop finished", zap.Int("tick", g.sim.Game().Tick))
				return nil
			}
		}
	}
}

func (g *GameLoop) frame(elapsed time.Duration) {
	if g.OnFrame != nil {
		g.OnFrame(g.sim)
	}
	if dropped := g.sim.Clock().Dropped(); g.sim.Advance(elapsed) > 0 && g.sim.Clock().Dropped() > dropped {
		g.logger.Warn("simulation fell behind",
			zap.Duration("elapsed", elapsed),
			zap.Int("dropped_steps", g.sim.Clock().Dropped()-dropped),
		)
	}
}
