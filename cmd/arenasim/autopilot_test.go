package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/core"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/systems/factory"
)

func newPilotedSim(t *testing.T) (*core.Simulation, *autopilot, *events.Recorder) {
	t.Helper()
	config.Reset()
	rec := events.NewRecorder()
	pilot := newAutopilot(zap.NewNop())
	sim := core.NewSimulation(core.Options{Seed: 1, Subscribers: []any{rec, pilot}})
	return sim, pilot, rec
}

func TestAutopilotKitesAway(t *testing.T) {
	sim, pilot, _ := newPilotedSim(t)
	pt := components.Transform.Get(sim.Player())
	variant := config.Enemy.Types[config.Grunt].Variants[0]
	factory.CreateEnemy(sim.ECS(), pt.X+40, pt.Y, factory.NewEnemyStats(config.Grunt, variant, 1, 1))

	pilot.Drive(sim)

	in := components.Input.Get(sim.Player())
	assert.InDelta(t, -1, in.MoveX, 1e-9)
	assert.InDelta(t, 0, in.MoveY, 1e-9)
	assert.True(t, in.Dash)
}

func TestAutopilotTakesUpgrades(t *testing.T) {
	sim, pilot, _ := newPilotedSim(t)
	pilot.OnLevelUp(events.LevelUp{Level: 2})
	pilot.OnLevelUp(events.LevelUp{Level: 3})

	pilot.Drive(sim)

	assert.Zero(t, pilot.levelUps)
	player := components.Player.Get(sim.Player())
	picks := len(player.Passives) + len(player.Weapons) - 1
	for _, w := range player.Weapons {
		picks += w.Level - 1
	}
	for _, n := range player.Passives {
		picks += n - 1
	}
	assert.Equal(t, 2, picks)
}

func TestSummaryListsWeapons(t *testing.T) {
	sim, _, rec := newPilotedSim(t)
	rec.RecordDamage(events.Attribution{Source: config.WeaponBasic, Damage: 40})
	rec.RecordDamage(events.Attribution{Source: config.WeaponLaser, Damage: 90})

	var buf bytes.Buffer
	printSummary(&buf, uuid.Nil, sim, rec)

	out := buf.String()
	require.Contains(t, out, "survived")
	laser := bytes.Index(buf.Bytes(), []byte("laser"))
	basic := bytes.Index(buf.Bytes(), []byte("basic"))
	assert.Less(t, laser, basic)
}
