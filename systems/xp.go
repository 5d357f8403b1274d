package systems

import (
	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// XPToNext is the XP needed to leave level.
func XPToNext(level int) int {
	return cfg.XP.BaseToLevel + cfg.XP.PerLevel*(level-1)
}

// UpdateXP pulls orbs inside the magnet range toward the player and
// collects the ones touching it.
func UpdateXP(ecs *ecs.ECS) {
	game := GetGame(ecs.World)
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	if player.Dead {
		return
	}
	pt := components.Transform.Get(pe)
	magnet := MagnetRange(player.Stacks(cfg.PassiveMagnet))

	tags.XPOrb.Each(ecs.World, func(e *donburi.Entry) {
		orb := components.XPOrb.Get(e)
		t := components.Transform.Get(e)
		if !orb.Magnetized && gamemath.DistSq(t.X, t.Y, pt.X, pt.Y) > magnet*magnet {
			return
		}
		orb.Magnetized = true
		dx, dy, dist := gamemath.Direction(t.X, t.Y, pt.X, pt.Y)
		if dist <= cfg.XP.OrbSpeed {
			t.X, t.Y = pt.X, pt.Y
		} else {
			t.X += dx * cfg.XP.OrbSpeed
			t.Y += dy * cfg.XP.OrbSpeed
		}
		syncObject(e)
	})

	var collected []*donburi.Entry
	for _, e := range orbCandidates(ecs.World, pe) {
		t := components.Transform.Get(e)
		if gamemath.CirclesOverlap(pt.X, pt.Y, pt.Radius, t.X, t.Y, t.Radius) {
			collected = append(collected, e)
		}
	}
	for _, e := range collected {
		gainXP(game, player, components.XPOrb.Get(e).Value)
		factory.Destroy(ecs.World, e)
	}
}

// orbCandidates returns orbs sharing a broad-phase cell with the player.
func orbCandidates(w donburi.World, pe *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(pe)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tags.ResolvOrb)
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvOrb) {
		ent, ok := o.Data.(donburi.Entity)
		if !ok || !w.Valid(ent) {
			continue
		}
		out = append(out, w.Entry(ent))
	}
	return out
}

// gainXP adds xp and levels up as many times as it covers, keeping the
// overflow.
func gainXP(game *components.GameData, player *components.PlayerData, xp int) {
	player.XP += xp
	for player.XP >= XPToNext(player.Level) {
		player.XP -= XPToNext(player.Level)
		player.Level++
		game.Events.OnLevelUp(events.LevelUp{Level: player.Level})
	}
}
