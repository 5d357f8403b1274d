package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/automoto/arena-survivor/components"
	"github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/core"
	"github.com/automoto/arena-survivor/events"
)

func printSummary(out io.Writer, runID uuid.UUID, sim *core.Simulation, rec *events.Recorder) {
	game := sim.Game()
	player := components.Player.Get(sim.Player())

	outcome := "survived"
	if game.Over {
		outcome = "killed"
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", runID)
	fmt.Fprintf(tw, "outcome\t%s\n", outcome)
	fmt.Fprintf(tw, "time\t%.1fs\n", game.Time())
	fmt.Fprintf(tw, "level\t%d\n", player.Level)
	fmt.Fprintf(tw, "kills\t%d\n", game.Kills)
	fmt.Fprintf(tw, "bosses\t%d\n", game.BossesKilled)
	fmt.Fprintf(tw, "damage taken\t%.0f\n", damageTaken(rec))

	types := make([]config.WeaponType, 0, len(rec.DamageByType))
	for t := range rec.DamageByType {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b config.WeaponType) int {
		switch da, db := rec.DamageByType[a], rec.DamageByType[b]; {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return int(a) - int(b)
	})
	for _, t := range types {
		fmt.Fprintf(tw, "  %s\t%.0f\n", t, rec.DamageByType[t])
	}
	tw.Flush()
}

func damageTaken(rec *events.Recorder) float64 {
	total := 0.0
	for _, d := range rec.PlayerDamage {
		total += d.Amount
	}
	return total
}
