package systems

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/systems/factory"
)

func addWeapon(player *components.PlayerData, t cfg.WeaponType) error {
	if int(t) < 0 || int(t) >= cfg.WeaponTypeCount {
		return fmt.Errorf("%w: %d", ErrUnknownWeapon, int(t))
	}
	if _, ok := player.Weapon(t); ok {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, t)
	}
	if len(player.Weapons) >= player.MaxWeapons {
		return fmt.Errorf("%w: %d/%d", ErrSlotsFull, len(player.Weapons), player.MaxWeapons)
	}
	w := factory.NewWeapon(t)
	refreshWeapon(player, w)
	player.Weapons = append(player.Weapons, w)
	return nil
}

func levelUpWeapon(player *components.PlayerData, t cfg.WeaponType) error {
	w, ok := player.Weapon(t)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotOwned, t)
	}
	if w.Level >= cfg.Weapons.Leveling.MaxLevel {
		return fmt.Errorf("%w: %s", ErrMaxLevel, t)
	}
	w.Level++
	refreshWeapon(player, w)
	return nil
}

// mergeWeapons replaces a and b with the recipe's result at level 1. A
// missing recipe leaves both weapons in place.
func mergeWeapons(player *components.PlayerData, a, b cfg.WeaponType) error {
	wa, ok := player.Weapon(a)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotOwned, a)
	}
	wb, ok := player.Weapon(b)
	if !ok || a == b {
		return fmt.Errorf("%w: %s", ErrNotOwned, b)
	}
	recipe, ok := cfg.Weapons.FindMerge(a, wa.Level, b, wb.Level)
	if !ok {
		return fmt.Errorf("%w: %s(%d)+%s(%d)", ErrNoMergeRecipe, a, wa.Level, b, wb.Level)
	}
	if _, owned := player.Weapon(recipe.Result); owned {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, recipe.Result)
	}

	player.Weapons = slices.DeleteFunc(player.Weapons, func(w *components.WeaponData) bool {
		return w == wa || w == wb
	})
	merged := factory.NewWeapon(recipe.Result)
	merged.BaseCount = recipe.StartingCount
	refreshWeapon(player, merged)
	player.Weapons = append(player.Weapons, merged)
	return nil
}

// AvailableMerges lists the merges the player's weapons qualify for.
func AvailableMerges(player *components.PlayerData) []MergeWeapons {
	var out []MergeWeapons
	for i, a := range player.Weapons {
		if !a.Mergeable {
			continue
		}
		for _, b := range player.Weapons[i+1:] {
			if !b.Mergeable {
				continue
			}
			if r, ok := cfg.Weapons.FindMerge(a.Type, a.Level, b.Type, b.Level); ok {
				if _, owned := player.Weapon(r.Result); !owned {
					out = append(out, MergeWeapons{A: a.Type, B: b.Type})
				}
			}
		}
	}
	return out
}

func refreshWeapons(player *components.PlayerData) {
	for _, w := range player.Weapons {
		refreshWeapon(player, w)
	}
}

// refreshWeapon derives a weapon's stats from its config, level and the
// player's unique passives.
func refreshWeapon(player *components.PlayerData, w *components.WeaponData) {
	wc := cfg.Weapons.Types[w.Type]
	lv := &cfg.Weapons.Leveling

	w.Damage = lv.LevelDamage(wc.Damage, w.Level)
	if player.Has(cfg.PassivePowerCore) {
		w.Damage *= cfg.Passives.Types[cfg.PassivePowerCore].Amount
	}

	w.FireRate = wc.FireRate
	if player.Has(cfg.PassiveRapidFire) {
		w.FireRate = int(math.Max(1, math.Round(float64(wc.FireRate)*cfg.Passives.Types[cfg.PassiveRapidFire].Amount)))
	}

	w.ProjectileCount = lv.ProjectileCountAt(w.BaseCount, w.Level)
	if player.Has(cfg.PassiveMultishot) {
		w.ProjectileCount = min(w.ProjectileCount+int(cfg.Passives.Types[cfg.PassiveMultishot].Amount), lv.MaxProjectileCount)
	}

	w.Range = wc.Range
	w.ProjectileSpeed = wc.ProjectileSpeed
	w.Pierce = wc.Pierce
}
