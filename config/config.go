package config

// SimConfig contains tick and arena configuration.
type SimConfig struct {
	TickRate        int
	MaxCatchUpSteps int
	ArenaWidth      float64
	ArenaHeight     float64
	CellSize        int
	DespawnDistance float64 // projectiles farther than this from the player despawn
	PoolCapacity    int
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	Radius           float64
	Speed            float64
	Health           float64
	InvulnFrames     int
	DashDistance     float64
	DashCooldown     int
	DashInvulnFrames int
	StartingWeapon   WeaponType
}

// CollisionConfig contains the pre-filter distances.
type CollisionConfig struct {
	ProjectilePrefilter float64 // AABB half-size for projectile vs enemy
	ContactPrefilter    float64 // Manhattan distance for enemy vs player
}

// DirectorConfig contains spawn scheduling and difficulty scaling.
type DirectorConfig struct {
	MaxEnemies       int
	SpawnRateBase    int
	SpawnRateStep    int
	SpawnRateEvery   float64
	SpawnRateMin     int
	BurstEvery       float64 // +1 enemy per burst every this many seconds
	SpawnDistanceMin float64
	SpawnDistanceMax float64

	TimeScalePerStep   float64
	TimeScaleEvery     float64
	TimeScaleFreezeAt  float64
	KillHealthScale    float64
	KillDamageScale    float64
	VariantGrowth      float64
	BossSpawnSeconds   float64
	BossRespawnSeconds float64

	BossHealthGrowth float64
	BossSpeedGrowth  float64
	BossDamageGrowth float64
	BossSizeGrowth   float64

	BossRemovalDelayTicks int
	BossVictoryDelayTicks int
}

// XPConfig contains XP orb and leveling configuration.
type XPConfig struct {
	MagnetRange float64
	OrbRadius   float64
	OrbSpeed    float64
	BaseToLevel int
	PerLevel    int
}

// EffectsConfig contains screen effect request parameters.
type EffectsConfig struct {
	PlayerDamageShake     float64
	PlayerDamageShakeTime int
	PlayerDamageFlash     float64
	PlayerDamageFlashTime int
	BossDefeatShake       float64
	BossDefeatShakeTime   int
	BurnDeathParticles    int
}

// Global configuration instances
var Sim SimConfig
var Player PlayerConfig
var Collision CollisionConfig
var Director DirectorConfig
var XP XPConfig
var Effects EffectsConfig
var Enemy EnemyConfig
var Boss BossConfig
var Weapons WeaponsConfig
var Passives PassivesConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its defaults.
func Reset() {
	Sim = SimConfig{
		TickRate:        60,
		MaxCatchUpSteps: 5,
		ArenaWidth:      4000,
		ArenaHeight:     4000,
		CellSize:        64,
		DespawnDistance: 1200,
		PoolCapacity:    200,
	}

	Player = PlayerConfig{
		Radius:           12,
		Speed:            3,
		Health:           100,
		InvulnFrames:     60,
		DashDistance:     100,
		DashCooldown:     90,
		DashInvulnFrames: 10,
		StartingWeapon:   WeaponBasic,
	}

	Collision = CollisionConfig{
		ProjectilePrefilter: 100,
		ContactPrefilter:    200,
	}

	Director = DirectorConfig{
		MaxEnemies:       20,
		SpawnRateBase:    120,
		SpawnRateStep:    5,
		SpawnRateEvery:   10,
		SpawnRateMin:     30,
		BurstEvery:       60,
		SpawnDistanceMin: 550,
		SpawnDistanceMax: 700,

		TimeScalePerStep:   0.3,
		TimeScaleEvery:     30,
		TimeScaleFreezeAt:  180,
		KillHealthScale:    0.15,
		KillDamageScale:    0.10,
		VariantGrowth:      0.35,
		BossSpawnSeconds:   180,
		BossRespawnSeconds: 180,

		BossHealthGrowth: 1.4,
		BossSpeedGrowth:  1.05,
		BossDamageGrowth: 1.15,
		BossSizeGrowth:   1.05,

		BossRemovalDelayTicks: 6,
		BossVictoryDelayTicks: 120,
	}

	XP = XPConfig{
		MagnetRange: 100,
		OrbRadius:   6,
		OrbSpeed:    6,
		BaseToLevel: 10,
		PerLevel:    5,
	}

	Effects = EffectsConfig{
		PlayerDamageShake:     4,
		PlayerDamageShakeTime: 8,
		PlayerDamageFlash:     0.6,
		PlayerDamageFlashTime: 10,
		BossDefeatShake:       10,
		BossDefeatShakeTime:   45,
		BurnDeathParticles:    6,
	}

	Enemy = defaultEnemies()
	Boss = defaultBoss()
	Weapons = defaultWeapons()
	Passives = defaultPassives()
}
