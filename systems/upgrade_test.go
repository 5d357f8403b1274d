package systems

import (
	"testing"

	cfg "github.com/automoto/arena-survivor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownedTypes(w *testWorld) []cfg.WeaponType {
	var out []cfg.WeaponType
	for _, weapon := range w.playerData().Weapons {
		out = append(out, weapon.Type)
	}
	return out
}

func giveWeapon(t *testing.T, w *testWorld, wt cfg.WeaponType, level int) {
	t.Helper()
	require.True(t, ApplyChoice(w.ecs, NewWeapon{Type: wt}))
	for i := 1; i < level; i++ {
		require.True(t, ApplyChoice(w.ecs, LevelUpWeapon{Type: wt}))
	}
}

func TestMergeAtRequiredLevels(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponLaser, 3)
	giveWeapon(t, w, cfg.WeaponMissiles, 3)

	merges := AvailableMerges(w.playerData())
	require.Equal(t, []MergeWeapons{{A: cfg.WeaponLaser, B: cfg.WeaponMissiles}}, merges)

	require.True(t, ApplyChoice(w.ecs, merges[0]))
	assert.Equal(t, []cfg.WeaponType{cfg.WeaponBasic, cfg.WeaponHomingLaser}, ownedTypes(w))

	merged, ok := w.playerData().Weapon(cfg.WeaponHomingLaser)
	require.True(t, ok)
	assert.Equal(t, 1, merged.Level)
	assert.Equal(t, 2, merged.ProjectileCount)
	assert.False(t, merged.Mergeable)
	assert.Empty(t, AvailableMerges(w.playerData()))
}

func TestMergesSkipNonIngredients(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponLaser, 3)
	giveWeapon(t, w, cfg.WeaponMissiles, 3)

	laser, ok := w.playerData().Weapon(cfg.WeaponLaser)
	require.True(t, ok)
	require.True(t, laser.Mergeable)
	require.Len(t, AvailableMerges(w.playerData()), 1)

	laser.Mergeable = false
	assert.Empty(t, AvailableMerges(w.playerData()))
}

func TestMergeBelowRequiredLevelsKeepsWeapons(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponLaser, 2)
	giveWeapon(t, w, cfg.WeaponMissiles, 2)

	err := applyChoice(w.ecs, MergeWeapons{A: cfg.WeaponLaser, B: cfg.WeaponMissiles})
	assert.ErrorIs(t, err, ErrNoMergeRecipe)
	assert.False(t, ApplyChoice(w.ecs, MergeWeapons{A: cfg.WeaponMissiles, B: cfg.WeaponLaser}))
	assert.Equal(t, []cfg.WeaponType{cfg.WeaponBasic, cfg.WeaponLaser, cfg.WeaponMissiles}, ownedTypes(w))
	for _, weapon := range w.playerData().Weapons[1:] {
		assert.Equal(t, 2, weapon.Level)
	}
}

func TestOffersListMergesFirst(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponLaser, 3)
	giveWeapon(t, w, cfg.WeaponMissiles, 3)

	offers := OfferChoices(w.ecs, 3)
	require.Len(t, offers, 3)
	assert.Equal(t, MergeWeapons{A: cfg.WeaponLaser, B: cfg.WeaponMissiles}, offers[0])

	seen := map[string]bool{}
	for _, c := range offers {
		assert.False(t, seen[c.String()], "duplicate offer %s", c)
		seen[c.String()] = true
		if nw, ok := c.(NewWeapon); ok {
			assert.False(t, isMergeResult(nw.Type), "merge result %s offered directly", nw.Type)
		}
	}
}

func TestWeaponSlotsAndLevels(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponRapid, 1)
	giveWeapon(t, w, cfg.WeaponSpread, 1)
	giveWeapon(t, w, cfg.WeaponShotgun, 1)

	assert.ErrorIs(t, applyChoice(w.ecs, NewWeapon{Type: cfg.WeaponPlasma}), ErrSlotsFull)
	assert.ErrorIs(t, applyChoice(w.ecs, NewWeapon{Type: cfg.WeaponRapid}), ErrAlreadyOwned)
	assert.ErrorIs(t, applyChoice(w.ecs, LevelUpWeapon{Type: cfg.WeaponLaser}), ErrNotOwned)

	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveExtraSlot}))
	assert.Equal(t, cfg.Passives.ExtraMaxWeapons, w.playerData().MaxWeapons)
	require.True(t, ApplyChoice(w.ecs, NewWeapon{Type: cfg.WeaponPlasma}))

	for i := 1; i < cfg.Weapons.Leveling.MaxLevel; i++ {
		require.True(t, ApplyChoice(w.ecs, LevelUpWeapon{Type: cfg.WeaponBasic}))
	}
	assert.ErrorIs(t, applyChoice(w.ecs, LevelUpWeapon{Type: cfg.WeaponBasic}), ErrMaxLevel)

	basic, _ := w.playerData().Weapon(cfg.WeaponBasic)
	assert.Equal(t, 4, basic.ProjectileCount)
	assert.InDelta(t, cfg.Weapons.Leveling.LevelDamage(10, 8), basic.Damage, 1e-9)
}

func TestPassiveStackCaps(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 3; i++ {
		require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveCritical}))
	}
	assert.ErrorIs(t, applyChoice(w.ecs, GrantPassive{Key: cfg.PassiveCritical}), ErrStackCap)
	assert.Equal(t, 3, w.playerData().Stacks(cfg.PassiveCritical))

	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveRapidFire}))
	assert.ErrorIs(t, applyChoice(w.ecs, GrantPassive{Key: cfg.PassiveRapidFire}), ErrStackCap)

	for i := 0; i < 30; i++ {
		require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveArmor}))
	}
	assert.InDelta(t, cfg.Passives.ArmorCap, ArmorReduction(30), 1e-9)
}

func TestUniquePassivesRefreshWeapons(t *testing.T) {
	w := newTestWorld(t)
	giveWeapon(t, w, cfg.WeaponShotgun, 7)
	basic, _ := w.playerData().Weapon(cfg.WeaponBasic)
	shotgun, _ := w.playerData().Weapon(cfg.WeaponShotgun)
	require.Equal(t, 8, shotgun.ProjectileCount)

	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveRapidFire}))
	assert.Equal(t, 30, basic.FireRate)

	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassivePowerCore}))
	assert.InDelta(t, 15, basic.Damage, 1e-9)

	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveMultishot}))
	assert.Equal(t, 2, basic.ProjectileCount)
	assert.Equal(t, cfg.Weapons.Leveling.MaxProjectileCount, shotgun.ProjectileCount)

	// Weapons gained later pick the passives up too.
	giveWeapon(t, w, cfg.WeaponRapid, 1)
	rapid, _ := w.playerData().Weapon(cfg.WeaponRapid)
	assert.Equal(t, 2, rapid.ProjectileCount)
	assert.InDelta(t, 9, rapid.Damage, 1e-9)
}

func TestHealthBoostRaisesMaxAndCurrent(t *testing.T) {
	w := newTestWorld(t)
	w.playerHealth().Current = 50
	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveHealthBoost}))
	assert.Equal(t, 120.0, w.playerHealth().Max)
	assert.Equal(t, 70.0, w.playerHealth().Current)
}

func TestUnknownKeysAreRejected(t *testing.T) {
	w := newTestWorld(t)

	_, err := ParseChoice("passive", "telekinesis")
	assert.ErrorIs(t, err, ErrUnknownPassive)
	_, err = ParseChoice("weapon", "boomerang")
	assert.ErrorIs(t, err, ErrUnknownWeapon)
	_, err = ParseChoice("relic", "armor")
	assert.Error(t, err)

	assert.False(t, ApplyKey(w.ecs, "passive", "telekinesis"))
	assert.Empty(t, w.playerData().Passives)
	assert.Len(t, w.playerData().Weapons, 1)

	assert.True(t, ApplyKey(w.ecs, "passive", "armor"))
	assert.Equal(t, 1, w.playerData().Stacks(cfg.PassiveArmor))
	assert.True(t, ApplyKey(w.ecs, "weapon", "laser"))
	assert.True(t, ApplyKey(w.ecs, "level", "laser"))
	laser, ok := w.playerData().Weapon(cfg.WeaponLaser)
	require.True(t, ok)
	assert.Equal(t, 2, laser.Level)
}
