package components

import (
	"github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind     config.EnemyKind
	Behavior config.Behavior
	Params   config.BehaviorParams
	Variant  config.VariantConfig

	Speed     float64
	BaseSpeed float64
	Damage    float64
	XP        int

	SpecialCooldown int
	Age             int     // ticks alive
	OrbitDir        float64 // +1 or -1, fixed at spawn
	DiveTicks       int     // remaining burst ticks for dive-bombers

	MinionsSpawned bool
	Minion         bool // spawned by a tank split, which ignores the cap
	Dead           bool // queued for removal this tick

	Burning BurnData
}

// BurnData is the damage-over-time status applied by flame hits.
type BurnData struct {
	Active        bool
	DamagePerTick float64
	Remaining     int
	Interval      int
	Timer         int
	Source        config.WeaponType
}

var Enemy = donburi.NewComponentType[EnemyData]()

// BossPhase is the boss's health band.
type BossPhase int

const (
	BossPhase1 BossPhase = iota + 1
	BossPhase2
	BossPhase3
)

type BossData struct {
	Level int // 1 for the first boss, +1 per kill
	Phase BossPhase

	Dashing      bool
	DashCooldown int
	DashTimer    int
	DashTargetX  float64
	DashTargetY  float64
	MissileTimer int
	Defeated     bool // renderers must not draw a defeated boss
	Teleports    int
}

var Boss = donburi.NewComponentType[BossData]()
