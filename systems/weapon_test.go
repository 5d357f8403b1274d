package systems

import (
	"math"
	"slices"
	"testing"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/automoto/arena-survivor/events"
	"github.com/automoto/arena-survivor/pool"
	"github.com/automoto/arena-survivor/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestWeaponHoldsFireWithoutTarget(t *testing.T) {
	w := newTestWorld(t)
	basic, _ := w.playerData().Weapon(cfg.WeaponBasic)

	UpdateWeapons(w.ecs)
	assert.Zero(t, w.game.Projectiles.InFlight())
	assert.True(t, basic.Ready())

	w.enemy(cfg.Grunt, centerX+300, centerY)
	UpdateWeapons(w.ecs)
	require.Equal(t, 1, w.game.Projectiles.InFlight())
	assert.Zero(t, basic.FramesSinceFire)

	UpdateWeapons(w.ecs)
	assert.Equal(t, 1, w.game.Projectiles.InFlight())
	assert.Equal(t, 1, basic.FramesSinceFire)

	pr := w.game.Projectiles.Active()[0]
	assert.InDelta(t, cfg.Weapons.Types[cfg.WeaponBasic].ProjectileSpeed, pr.VX, 1e-3)
	assert.Equal(t, cfg.WeaponBasic, pr.Source)
}

func TestWeaponIgnoresTargetsOutOfRange(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.Grunt, centerX+cfg.Weapons.Types[cfg.WeaponBasic].Range+50, centerY)

	UpdateWeapons(w.ecs)
	assert.Zero(t, w.game.Projectiles.InFlight())
}

func TestProjectileLifeReleasesOnce(t *testing.T) {
	w := newTestWorld(t)
	projectiles := w.game.Projectiles
	free := projectiles.Free()
	pr := projectiles.Basic(pool.Shot{X: centerX, Y: centerY, VX: 1, Damage: 1, Life: 3}, 0)

	UpdateProjectiles(w.ecs)
	UpdateProjectiles(w.ecs)
	require.True(t, pr.Active())
	assert.InDelta(t, centerX+2, pr.X, 1e-9)

	UpdateProjectiles(w.ecs)
	assert.False(t, pr.Active())
	assert.Zero(t, projectiles.InFlight())
	assert.Equal(t, free, projectiles.Free())

	UpdateProjectiles(w.ecs)
	assert.False(t, projectiles.Release(pr))
	assert.Equal(t, free, projectiles.Free())
}

func TestProjectileDespawnsFarFromPlayer(t *testing.T) {
	w := newTestWorld(t)
	w.game.Projectiles.Basic(pool.Shot{X: centerX + cfg.Sim.DespawnDistance - 1, Y: centerY, VX: 5, Damage: 1, Life: 100}, 0)

	UpdateProjectiles(w.ecs)
	assert.Zero(t, w.game.Projectiles.InFlight())
}

func TestProjectileHitsEnemy(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.Grunt, centerX+300, centerY)
	w.game.Projectiles.Basic(pool.Shot{X: centerX + 300, Y: centerY, Damage: 5, Life: 10, Source: cfg.WeaponBasic}, 0)

	UpdateCollisions(w.ecs)

	assert.Equal(t, 15.0, components.Health.Get(e).Current)
	assert.Zero(t, w.game.Projectiles.InFlight())
	require.Len(t, w.rec.Hits, 1)
	assert.Equal(t, e.Entity(), w.rec.Hits[0].Target)
	assert.Equal(t, 5.0, w.rec.DamageByType[cfg.WeaponBasic])
}

func TestBeamHitsEachEnemyOnce(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.Brute, centerX+300, centerY)
	pr := w.game.Projectiles.Basic(pool.Shot{X: centerX + 300, Y: centerY, Damage: 5, Life: 10}, cfg.Infinite)
	require.Equal(t, pool.KindBeam, pr.Kind)

	UpdateCollisions(w.ecs)
	UpdateCollisions(w.ecs)

	assert.Equal(t, 115.0, components.Health.Get(e).Current)
	assert.True(t, pr.Active())
	assert.Equal(t, 1, pr.Hits)
}

func TestExplosiveSplashesNeighbours(t *testing.T) {
	w := newTestWorld(t)
	hit := w.enemy(cfg.Brute, centerX+300, centerY)
	near := w.enemy(cfg.Brute, centerX+340, centerY)
	w.game.Projectiles.Explosive(pool.Shot{X: centerX + 300, Y: centerY, Damage: 20, Life: 10, Source: cfg.WeaponPlasma}, 60, 0.5)

	UpdateCollisions(w.ecs)

	assert.Equal(t, 100.0, components.Health.Get(hit).Current)
	assert.Equal(t, 110.0, components.Health.Get(near).Current)
	assert.Len(t, w.rec.BurstsOf(events.BurstExplosion), 1)
}

func TestHomingRetargetsWhenTargetDies(t *testing.T) {
	w := newTestWorld(t)
	first := w.enemy(cfg.Grunt, centerX+300, centerY)
	second := w.enemy(cfg.Grunt, centerX, centerY+200)
	pr := w.game.Projectiles.Homing(pool.Shot{X: centerX, Y: centerY, VX: 5, Damage: 5, Life: 100, Source: cfg.WeaponMissiles}, first.Entity(), 1, 0, 0)

	components.Enemy.Get(first).Dead = true
	UpdateProjectiles(w.ecs)

	require.True(t, pr.HasTarget)
	assert.Equal(t, second.Entity(), pr.Target)
	assert.Greater(t, pr.VY, 0.0)
}

func TestMissilesCarryBlast(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.Grunt, centerX+300, centerY)
	require.True(t, ApplyChoice(w.ecs, NewWeapon{Type: cfg.WeaponMissiles}))
	require.True(t, ApplyChoice(w.ecs, GrantPassive{Key: cfg.PassiveBlastRadius}))

	UpdateWeapons(w.ecs)

	sp := cfg.Weapons.Types[cfg.WeaponMissiles].Special.(cfg.HomingSpecial)
	var missiles int
	for _, pr := range w.game.Projectiles.Active() {
		if pr.Source != cfg.WeaponMissiles {
			continue
		}
		missiles++
		assert.Equal(t, pool.KindHoming, pr.Kind)
		assert.InDelta(t, sp.BlastRadius*cfg.Passives.Types[cfg.PassiveBlastRadius].Amount, pr.ExplosionRadius, 1e-9)
		assert.Equal(t, sp.BlastShare, pr.ExplosionShare)
	}
	assert.Equal(t, 1, missiles)
}

func TestGatlingFiresOneBarrelPerLevel(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		w.enemy(cfg.Grunt, centerX+100+float64(i)*40, centerY+50)
	}
	gatling := factory.NewWeapon(cfg.WeaponGatlingGun)
	gatling.Level = 3
	pt := components.Transform.Get(w.player)
	target, ok := nearestEnemy(w.ecs.World, pt.X, pt.Y, gatling.Range)
	require.True(t, ok)

	fireWeapon(w.ecs, w.game, w.playerData(), gatling, pt, target)
	assert.Equal(t, 3, w.game.Projectiles.InFlight())
}

func TestMergedGatlingUsesStartingCount(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		w.enemy(cfg.Grunt, centerX+100+float64(i)*40, centerY+50)
	}
	giveWeapon(t, w, cfg.WeaponRapid, 3)
	giveWeapon(t, w, cfg.WeaponShotgun, 3)
	require.True(t, ApplyChoice(w.ecs, MergeWeapons{A: cfg.WeaponRapid, B: cfg.WeaponShotgun}))
	gatling, ok := w.playerData().Weapon(cfg.WeaponGatlingGun)
	require.True(t, ok)
	require.Equal(t, 1, gatling.Level)
	require.Equal(t, 2, gatling.ProjectileCount)

	pt := components.Transform.Get(w.player)
	target, ok := nearestEnemy(w.ecs.World, pt.X, pt.Y, gatling.Range)
	require.True(t, ok)
	w.game.Projectiles.ReleaseAll()

	fireWeapon(w.ecs, w.game, w.playerData(), gatling, pt, target)
	assert.Equal(t, 2, w.game.Projectiles.InFlight())
}

func TestChainHops(t *testing.T) {
	sp := cfg.ChainSpecial{MaxTargets: 1, HopRadius: 150, BaseHops: 2}
	assert.Equal(t, 2, ChainHops(sp, 1))
	assert.Equal(t, 3, ChainHops(sp, 2))
	assert.Equal(t, 4, ChainHops(sp, 4))
}

func TestChainWalksNearestUnhit(t *testing.T) {
	w := newTestWorld(t)
	var line []*donburi.Entry
	for i := 1; i <= 4; i++ {
		line = append(line, w.enemy(cfg.Brute, centerX+float64(i)*100, centerY))
	}
	weapon := factory.NewWeapon(cfg.WeaponLightning)
	sp := cfg.ChainSpecial{MaxTargets: 1, HopRadius: 150, BaseHops: 2}

	fireChain(w.ecs, w.game, w.playerData(), weapon, sp, components.Transform.Get(w.player), 1)

	for i, e := range line[:3] {
		assert.Equal(t, 120-weapon.Damage, components.Health.Get(e).Current, "link %d", i)
	}
	assert.Equal(t, 120.0, components.Health.Get(line[3]).Current)
	assert.Len(t, w.rec.BurstsOf(events.BurstChain), 3)
}

func TestBurnRefreshKeepsStrongest(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.Brute, centerX+300, centerY)
	burn := &components.Enemy.Get(e).Burning

	applyBurn(e, 2, 20, 120, cfg.WeaponFlamethrower)
	applyBurn(e, 1, 20, 60, cfg.WeaponFlamethrower)
	assert.Equal(t, 2.0, burn.DamagePerTick)
	assert.Equal(t, 120, burn.Remaining)

	applyBurn(e, 3, 20, 200, cfg.WeaponFlamethrower)
	assert.Equal(t, 3.0, burn.DamagePerTick)
	assert.Equal(t, 200, burn.Remaining)

	h := components.Health.Get(e)
	for i := 0; i < 19; i++ {
		UpdateStatus(w.ecs)
	}
	assert.Equal(t, 120.0, h.Current)
	UpdateStatus(w.ecs)
	assert.Equal(t, 117.0, h.Current)

	for i := 20; i < 200; i++ {
		UpdateStatus(w.ecs)
	}
	assert.Equal(t, 90.0, h.Current)
	assert.False(t, burn.Active)
	assert.Equal(t, 30.0, w.rec.DamageByType[cfg.WeaponFlamethrower])
}

func TestBurnKillDropsOrb(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.Grunt, centerX+300, centerY)
	components.Health.Get(e).Current = 1
	applyBurn(e, 5, 1, 10, cfg.WeaponFlamethrower)

	UpdateStatus(w.ecs)
	require.True(t, components.Enemy.Get(e).Dead)
	assert.NotEmpty(t, w.rec.BurstsOf(events.BurstBurn))

	UpdateDeaths(w.ecs)
	assert.Equal(t, 1, orbCount(w))
}

// shotAngles fires w at an enemy straight to the player's right and returns
// the launch angle of every projectile.
func shotAngles(t *testing.T, w *testWorld, weapon *components.WeaponData) []float64 {
	t.Helper()
	w.game.Projectiles.ReleaseAll()
	pt := components.Transform.Get(w.player)
	target, ok := nearestEnemy(w.ecs.World, pt.X, pt.Y, weapon.Range)
	require.True(t, ok)
	fireWeapon(w.ecs, w.game, w.playerData(), weapon, pt, target)

	var out []float64
	for _, pr := range w.game.Projectiles.Active() {
		out = append(out, math.Atan2(pr.VY, pr.VX))
	}
	slices.Sort(out)
	return out
}

func TestSpreadFanWidensWithLevel(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.Brute, centerX+200, centerY)
	spread := factory.NewWeapon(cfg.WeaponSpread)
	fan := cfg.Weapons.Types[cfg.WeaponSpread].Special.(cfg.FanSpecial)

	angles := shotAngles(t, w, spread)
	require.Len(t, angles, spread.ProjectileCount)
	assert.InDelta(t, -fan.Angle/2, angles[0], 1e-3)
	assert.InDelta(t, 0, angles[1], 1e-3)
	assert.InDelta(t, fan.Angle/2, angles[2], 1e-3)

	spread.Level = 3
	angles = shotAngles(t, w, spread)
	require.Len(t, angles, spread.ProjectileCount)
	wide := fan.Angle + 2*fan.AnglePerLevel
	assert.InDelta(t, wide, angles[len(angles)-1]-angles[0], 2e-3)
}

func TestShotgunPelletsVary(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.Brute, centerX+150, centerY)
	shotgun := factory.NewWeapon(cfg.WeaponShotgun)
	sp := cfg.Weapons.Types[cfg.WeaponShotgun].Special.(cfg.PelletSpecial)

	angles := shotAngles(t, w, shotgun)
	require.Len(t, angles, shotgun.ProjectileCount)
	for _, a := range angles {
		assert.LessOrEqual(t, math.Abs(a), sp.Spread/2+1e-3)
	}

	damages := map[float64]bool{}
	for _, pr := range w.game.Projectiles.Active() {
		assert.InDelta(t, shotgun.Damage, pr.Damage, shotgun.Damage*sp.DamageVariance+1e-9)
		assert.InDelta(t, shotgun.ProjectileSpeed, pr.Speed, shotgun.ProjectileSpeed*sp.SpeedVariance+1e-3)
		assert.Equal(t, pool.KindBasic, pr.Kind)
		damages[pr.Damage] = true
	}
	assert.Greater(t, len(damages), 1)
}

func TestFlamethrowerEmitsBurningProjectiles(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.Brute, centerX+100, centerY)
	flame := factory.NewWeapon(cfg.WeaponFlamethrower)
	wc := cfg.Weapons.Types[cfg.WeaponFlamethrower]
	burn := wc.Special.(cfg.BurnSpecial)

	angles := shotAngles(t, w, flame)
	require.Len(t, angles, wc.ProjectileCount)
	half := float64(wc.ProjectileCount-1)/2*wc.Spread + flameJitter
	for _, a := range angles {
		assert.LessOrEqual(t, math.Abs(a), half+1e-3)
	}
	for _, pr := range w.game.Projectiles.Active() {
		assert.Equal(t, pool.KindFlame, pr.Kind)
		assert.Equal(t, wc.Pierce, pr.Pierce)
		assert.Equal(t, burn.DamagePerTick, pr.BurnDamage)
		assert.Equal(t, burn.Interval, pr.BurnInterval)
		assert.Equal(t, burn.Duration, pr.BurnDuration)
		assert.Equal(t, wc.Life, pr.Life)
	}
}
