package systems

import (
	"testing"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPToNext(t *testing.T) {
	cfg.Reset()
	assert.Equal(t, 10, XPToNext(1))
	assert.Equal(t, 15, XPToNext(2))
	assert.Equal(t, 55, XPToNext(10))
}

func TestGainXPCarriesOverflow(t *testing.T) {
	w := newTestWorld(t)
	player := w.playerData()

	gainXP(w.game, player, 30)

	assert.Equal(t, 3, player.Level)
	assert.Equal(t, 5, player.XP)
	require.Len(t, w.rec.LevelUps, 2)
	assert.Equal(t, 2, w.rec.LevelUps[0].Level)
	assert.Equal(t, 3, w.rec.LevelUps[1].Level)
}

func TestOrbCollectedOnTouch(t *testing.T) {
	w := newTestWorld(t)
	orb := factory.CreateXPOrb(w.ecs, centerX+5, centerY, 4).Entity()

	UpdateXP(w.ecs)

	assert.False(t, w.ecs.World.Valid(orb))
	assert.Equal(t, 4, w.playerData().XP)
	assert.Zero(t, orbCount(w))
}

func TestOrbMagnetism(t *testing.T) {
	w := newTestWorld(t)
	near := factory.CreateXPOrb(w.ecs, centerX+80, centerY, 1)
	far := factory.CreateXPOrb(w.ecs, centerX+150, centerY, 1)

	UpdateXP(w.ecs)

	assert.True(t, components.XPOrb.Get(near).Magnetized)
	assert.InDelta(t, centerX+80-cfg.XP.OrbSpeed, components.Transform.Get(near).X, 1e-9)
	assert.False(t, components.XPOrb.Get(far).Magnetized)
	assert.Equal(t, centerX+150, components.Transform.Get(far).X)

	// Magnet stacks widen the pull.
	w.playerData().Passives[cfg.PassiveMagnet] = 1
	UpdateXP(w.ecs)
	assert.True(t, components.XPOrb.Get(far).Magnetized)

	for i := 0; i < 40; i++ {
		UpdateXP(w.ecs)
	}
	assert.Zero(t, orbCount(w))
	assert.Equal(t, 2, w.playerData().XP)
}
