package config

import "fmt"

// Behavior selects the movement state machine an enemy runs.
type Behavior int

const (
	BehaviorChase Behavior = iota
	BehaviorDodge
	BehaviorTank
	BehaviorFly
	BehaviorTeleport
	BehaviorBoss

	BehaviorCount int = iota
)

var behaviorNames = [...]string{"chase", "dodge", "tank", "fly", "teleport", "boss"}

func (b Behavior) String() string {
	if int(b) < 0 || int(b) >= len(behaviorNames) {
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
	return behaviorNames[b]
}

// EnemyKind names a regular enemy type.
type EnemyKind int

const (
	Grunt EnemyKind = iota
	Dodger
	Brute
	Wisp
	Phantom

	EnemyKindCount int = iota
)

var enemyKindNames = [...]string{"grunt", "dodger", "brute", "wisp", "phantom"}

func (k EnemyKind) String() string {
	if int(k) < 0 || int(k) >= len(enemyKindNames) {
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
	return enemyKindNames[k]
}

// BehaviorParams is the sealed set of per-behavior parameter bundles.
type BehaviorParams interface {
	Behavior() Behavior
	behaviorParams()
}

type ChaseParams struct{}

type DodgeParams struct {
	Radius      float64 // projectiles within this radius repel
	DodgeWeight float64 // share of the repulsion vector when blending
}

type TankParams struct {
	MinionThreshold float64 // health ratio that triggers the minion adds
	MinionCount     int
	MinionKind      EnemyKind
}

type FlyParams struct {
	OrbitRadius float64
}

type TeleportParams struct {
	Cooldown     int     // ticks between teleports
	Leash        float64 // only teleport when farther than this
	Distance     float64 // arrival distance from the player
	ClosingSpeed float64 // speed multiplier while closing in
}

type BossParams struct {
	Phase1Speed, Phase2Speed, Phase3Speed float64
	Phase1Above, Phase3Below              float64

	DashCooldown          int
	DashCooldownPerKill   int
	DashCooldownKillCap   int
	DashCooldownFloor     int
	DashDuration          int
	DashSpeed             float64
	DashArriveDistance    float64
	LeashDistance         float64
	LeashMinBehind        float64
	LeashMaxBehind        float64
	MissileInterval       int
	Volleys               [3]VolleyConfig
	MissileSpread         float64
	MissileLife           int
	MissileRadius         float64
	MissileExplosion      float64
	MissileDamagePerLevel float64
	MissileSpeedPerLevel  float64
}

// VolleyConfig describes one phase's missile volley.
type VolleyConfig struct {
	Count  int
	Damage float64
	Speed  float64
	Homing float64
}

func (ChaseParams) Behavior() Behavior    { return BehaviorChase }
func (DodgeParams) Behavior() Behavior    { return BehaviorDodge }
func (TankParams) Behavior() Behavior     { return BehaviorTank }
func (FlyParams) Behavior() Behavior      { return BehaviorFly }
func (TeleportParams) Behavior() Behavior { return BehaviorTeleport }
func (BossParams) Behavior() Behavior     { return BehaviorBoss }

func (ChaseParams) behaviorParams()    {}
func (DodgeParams) behaviorParams()    {}
func (TankParams) behaviorParams()     {}
func (FlyParams) behaviorParams()      {}
func (TeleportParams) behaviorParams() {}
func (BossParams) behaviorParams()     {}

// VariantTrait is the sealed set of behavior modifiers a variant can add.
type VariantTrait interface {
	variantTrait()
}

// OrbitTrait blends a perpendicular component into a chase.
type OrbitTrait struct{ Strength float64 }

// ZigZagTrait adds a strafe that flips every Period ticks.
type ZigZagTrait struct {
	Period   int
	Strength float64
}

// DiveTrait gives a cooldown-gated speed burst toward the player.
type DiveTrait struct {
	Cooldown   int
	Duration   int
	Multiplier float64
}

// DriftTrait adds a sideways component while closing in.
type DriftTrait struct{ Strength float64 }

func (OrbitTrait) variantTrait()  {}
func (ZigZagTrait) variantTrait() {}
func (DiveTrait) variantTrait()   {}
func (DriftTrait) variantTrait()  {}

// VariantConfig is a stat/cosmetic bundle layered on a base enemy type.
type VariantConfig struct {
	Name       string
	MinBosses  int
	Weight     float64
	HealthMult float64
	SpeedMult  float64
	DamageMult float64
	SizeMult   float64
	Trait      VariantTrait // nil for plain variants
}

// EnemyTypeConfig is the static balance entry for one regular enemy type.
type EnemyTypeConfig struct {
	Kind          EnemyKind
	Params        BehaviorParams
	UnlockSeconds float64
	Weight        float64
	Radius        float64
	Health        float64
	Speed         float64
	Damage        float64
	XP            int
	Variants      []VariantConfig
}

// EnemyConfig holds every regular enemy type.
type EnemyConfig struct {
	Types [EnemyKindCount]EnemyTypeConfig
}

// BossConfig is the boss's base stat block plus its state machine
// parameters.
type BossConfig struct {
	Radius float64
	Health float64
	Speed  float64
	Damage float64
	XP     int
	Params BossParams
}

func plainVariant() VariantConfig {
	return VariantConfig{Name: "normal", Weight: 10, HealthMult: 1, SpeedMult: 1, DamageMult: 1, SizeMult: 1}
}

func defaultEnemies() EnemyConfig {
	var c EnemyConfig
	c.Types[Grunt] = EnemyTypeConfig{
		Kind: Grunt, Params: ChaseParams{},
		UnlockSeconds: 0, Weight: 50,
		Radius: 12, Health: 20, Speed: 1.2, Damage: 10, XP: 1,
		Variants: []VariantConfig{
			plainVariant(),
			{Name: "orbiter", MinBosses: 1, Weight: 4, HealthMult: 1.1, SpeedMult: 1.1, DamageMult: 1, SizeMult: 1,
				Trait: OrbitTrait{Strength: 0.6}},
		},
	}
	c.Types[Dodger] = EnemyTypeConfig{
		Kind: Dodger, Params: DodgeParams{Radius: 100, DodgeWeight: 0.7},
		UnlockSeconds: 30, Weight: 20,
		Radius: 10, Health: 15, Speed: 1.6, Damage: 8, XP: 2,
		Variants: []VariantConfig{
			plainVariant(),
			{Name: "zigzag", MinBosses: 1, Weight: 4, HealthMult: 1, SpeedMult: 1.15, DamageMult: 1, SizeMult: 0.9,
				Trait: ZigZagTrait{Period: 30, Strength: 0.8}},
		},
	}
	c.Types[Brute] = EnemyTypeConfig{
		Kind: Brute, Params: TankParams{MinionThreshold: 0.25, MinionCount: 3, MinionKind: Grunt},
		UnlockSeconds: 60, Weight: 12,
		Radius: 20, Health: 120, Speed: 0.7, Damage: 20, XP: 5,
		Variants: []VariantConfig{
			plainVariant(),
			{Name: "juggernaut", MinBosses: 2, Weight: 3, HealthMult: 1.5, SpeedMult: 0.9, DamageMult: 1.2, SizeMult: 1.2},
		},
	}
	c.Types[Wisp] = EnemyTypeConfig{
		Kind: Wisp, Params: FlyParams{OrbitRadius: 150},
		UnlockSeconds: 120, Weight: 12,
		Radius: 10, Health: 18, Speed: 2.0, Damage: 8, XP: 3,
		Variants: []VariantConfig{
			plainVariant(),
			{Name: "divebomber", MinBosses: 1, Weight: 4, HealthMult: 1, SpeedMult: 1, DamageMult: 1.3, SizeMult: 1,
				Trait: DiveTrait{Cooldown: 150, Duration: 24, Multiplier: 3}},
		},
	}
	c.Types[Phantom] = EnemyTypeConfig{
		Kind: Phantom, Params: TeleportParams{Cooldown: 180, Leash: 150, Distance: 120, ClosingSpeed: 0.5},
		UnlockSeconds: 180, Weight: 6,
		Radius: 12, Health: 30, Speed: 1.0, Damage: 12, XP: 4,
		Variants: []VariantConfig{
			plainVariant(),
			{Name: "drifter", MinBosses: 1, Weight: 4, HealthMult: 1.1, SpeedMult: 1, DamageMult: 1, SizeMult: 1,
				Trait: DriftTrait{Strength: 0.5}},
		},
	}
	return c
}

func defaultBoss() BossConfig {
	return BossConfig{
		Radius: 40, Health: 2000, Speed: 1.0, Damage: 30, XP: 50,
		Params: BossParams{
			Phase1Speed: 1.5, Phase2Speed: 1.8, Phase3Speed: 2.0,
			Phase1Above: 0.7, Phase3Below: 0.3,

			DashCooldown:        90,
			DashCooldownPerKill: 3,
			DashCooldownKillCap: 5,
			DashCooldownFloor:   72,
			DashDuration:        30,
			DashSpeed:           6,
			DashArriveDistance:  10,

			LeashDistance:  800,
			LeashMinBehind: 400,
			LeashMaxBehind: 500,

			MissileInterval: 200,
			Volleys: [3]VolleyConfig{
				{Count: 3, Damage: 10, Speed: 3.0, Homing: 0.02},
				{Count: 5, Damage: 12, Speed: 3.5, Homing: 0.035},
				{Count: 7, Damage: 15, Speed: 4.0, Homing: 0.05},
			},
			MissileSpread:         0.25,
			MissileLife:           300,
			MissileRadius:         6,
			MissileExplosion:      40,
			MissileDamagePerLevel: 1.15,
			MissileSpeedPerLevel:  1.05,
		},
	}
}
