package systems

import (
	"math"
	"slices"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/gamemath"
	"github.com/automoto/arena-survivor/tags"
	"github.com/yohamta/donburi"
)

// GetGame returns the simulation context.
func GetGame(w donburi.World) *components.GameData {
	return components.Game.Get(components.Game.MustFirst(w))
}

// GetPlayer returns the player entry, if any.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// alive reports whether an enemy can still be targeted, hit or moved.
func alive(e *donburi.Entry) bool {
	if !e.Valid() {
		return false
	}
	if components.Enemy.Get(e).Dead {
		return false
	}
	if e.HasComponent(components.Boss) && components.Boss.Get(e).Defeated {
		return false
	}
	return components.Health.Get(e).Current > 0
}

// resolveEnemy turns a weak enemy reference into a live entry.
func resolveEnemy(w donburi.World, ent donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(ent) {
		return nil, false
	}
	e := w.Entry(ent)
	if !e.HasComponent(components.Enemy) || !alive(e) {
		return nil, false
	}
	return e, true
}

type candidate struct {
	entry  *donburi.Entry
	distSq float64
}

// nearestEnemies returns up to n live enemies within radius of (x, y),
// nearest first. skip may be nil.
func nearestEnemies(w donburi.World, x, y, radius float64, n int, skip func(donburi.Entity) bool) []*donburi.Entry {
	if n <= 0 {
		return nil
	}
	var found []candidate
	r2 := radius * radius
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		if skip != nil && skip(e.Entity()) {
			return
		}
		t := components.Transform.Get(e)
		if !gamemath.WithinBox(x, y, t.X, t.Y, radius+1) {
			return
		}
		d := gamemath.DistSq(x, y, t.X, t.Y)
		if d > r2 {
			return
		}
		found = append(found, candidate{entry: e, distSq: d})
	})
	slices.SortStableFunc(found, func(a, b candidate) int {
		switch {
		case a.distSq < b.distSq:
			return -1
		case a.distSq > b.distSq:
			return 1
		}
		return 0
	})
	if len(found) > n {
		found = found[:n]
	}
	out := make([]*donburi.Entry, len(found))
	for i, c := range found {
		out[i] = c.entry
	}
	return out
}

// nearestEnemy returns the closest live enemy within radius.
func nearestEnemy(w donburi.World, x, y, radius float64) (*donburi.Entry, bool) {
	found := nearestEnemies(w, x, y, radius, 1, nil)
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// countEnemies counts enemies that have not been queued for removal.
func countEnemies(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).Dead {
			n++
		}
	})
	return n
}

// bossAlive reports whether a boss entity exists, defeated or not.
func bossAlive(w donburi.World) bool {
	_, ok := tags.Boss.First(w)
	return ok
}

// clampToArena keeps a circle inside the arena.
func clampToArena(x, y, r float64) (float64, float64) {
	return gamemath.Clamp(x, r, cfg.Sim.ArenaWidth-r), gamemath.Clamp(y, r, cfg.Sim.ArenaHeight-r)
}

func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	t := components.Transform.Get(e)
	obj.X = t.X - t.Radius
	obj.Y = t.Y - t.Radius
	obj.W = t.Radius * 2
	obj.H = t.Radius * 2
	obj.Update()
}

// angleOf returns the direction angle of (dx, dy).
func angleOf(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// velocityAt returns a velocity of the given speed along angle through the
// trig tables.
func velocityAt(angle, speed float64) (float64, float64) {
	return gamemath.FastCos(angle) * speed, gamemath.FastSin(angle) * speed
}
