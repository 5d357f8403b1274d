package main

import (
	"math"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/core"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/tags"
)

const (
	dashThreshold = 60.0
	edgeMargin    = 300.0
	offerCount    = 3
)

// autopilot kites away from the nearest enemy, drifts back from the arena
// edges and takes the first offered upgrade on every level-up.
type autopilot struct {
	logger   *zap.Logger
	levelUps int
}

func newAutopilot(logger *zap.Logger) *autopilot {
	return &autopilot{logger: logger}
}

func (a *autopilot) OnLevelUp(events.LevelUp) {
	a.levelUps++
}

// Drive applies pending upgrades and sets the next tick's input.
func (a *autopilot) Drive(sim *core.Simulation) {
	for ; a.levelUps > 0; a.levelUps-- {
		offers := sim.Offers(offerCount)
		if len(offers) == 0 {
			continue
		}
		if sim.Apply(offers[0]) {
			a.logger.Debug("autopilot upgrade", zap.Stringer("choice", offers[0]))
		}
	}

	pt := components.Transform.Get(sim.Player())
	var in components.InputData

	nx, ny, nearest := nearestEnemy(sim.World(), pt.X, pt.Y)
	if nearest < math.Inf(1) {
		in.MoveX, in.MoveY = pt.X-nx, pt.Y-ny
		in.Dash = nearest < dashThreshold
	}

	// Steer away from the walls so the kite does not end in a corner.
	if pt.X < edgeMargin {
		in.MoveX += 1
	} else if pt.X > config.Sim.ArenaWidth-edgeMargin {
		in.MoveX -= 1
	}
	if pt.Y < edgeMargin {
		in.MoveY += 1
	} else if pt.Y > config.Sim.ArenaHeight-edgeMargin {
		in.MoveY -= 1
	}

	if l := math.Hypot(in.MoveX, in.MoveY); l > 0 {
		in.MoveX, in.MoveY = in.MoveX/l, in.MoveY/l
	}
	sim.SetInput(in)
}

func nearestEnemy(w donburi.World, x, y float64) (float64, float64, float64) {
	best := math.Inf(1)
	var bx, by float64
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Dead {
			return
		}
		t := components.Transform.Get(e)
		if d := gamemath.Dist(x, y, t.X, t.Y) - t.Radius; d < best {
			best, bx, by = d, t.X, t.Y
		}
	})
	return bx, by, best
}
