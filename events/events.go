// Package events carries everything the simulation pushes to the outside:
// hit feedback, particle and screen effect requests, deaths, level-ups and
// per-weapon damage attribution. Delivery is synchronous and
// fire-and-forget.
package events

import (
	"github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi"
)

// Hit is a damage application against an enemy.
type Hit struct {
	Target donburi.Entity
	X, Y   float64
	Damage float64
	Crit   bool
	Source config.WeaponType
	Boss   bool
}

// BurstKind tells the renderer which particle set to use.
type BurstKind int

const (
	BurstImpact BurstKind = iota
	BurstExplosion
	BurstChain
	BurstBurn
	BurstTeleportOut
	BurstTeleportIn
	BurstDeath
)

// Burst is a particle request at a point.
type Burst struct {
	Kind   BurstKind
	X, Y   float64
	Count  int
	Radius float64
}

// EnemyDeath is emitted once per enemy that reaches zero health.
type EnemyDeath struct {
	Entity donburi.Entity
	Kind   config.EnemyKind
	Boss   bool
	X, Y   float64
	XP     int
}

// PlayerKilled is the game-over signal.
type PlayerKilled struct {
	Tick int
	Time float64
}

// BossDefeated is the delayed victory signal.
type BossDefeated struct {
	Kills int
	Time  float64
}

// LevelUp asks the external selection flow for an upgrade choice.
type LevelUp struct {
	Level int
}

// Attribution credits damage to a weapon type for run statistics.
type Attribution struct {
	Source config.WeaponType
	Damage float64
}

// PlayerDamaged is emitted when the player loses health.
type PlayerDamaged struct {
	Amount    float64
	Remaining float64
	FromEnemy bool // false for enemy projectiles
}

type HitListener interface {
	OnHit(Hit)
}

type ParticleEmitter interface {
	EmitBurst(Burst)
}

// ScreenEffects receives shake and flash intensity requests.
type ScreenEffects interface {
	Shake(intensity float64, ticks int)
	Flash(intensity float64, ticks int)
}

type DeathListener interface {
	OnEnemyDeath(EnemyDeath)
	OnPlayerKilled(PlayerKilled)
	OnBossDefeated(BossDefeated)
}

type DamageRecorder interface {
	RecordDamage(Attribution)
}

type PlayerListener interface {
	OnPlayerDamaged(PlayerDamaged)
}

type LevelListener interface {
	OnLevelUp(LevelUp)
}
