package events

import "github.com/automoto/arena-survivor/config"

// Recorder keeps every event it receives. The CLI uses it for the run
// summary and tests use it to observe the simulation.
type Recorder struct {
	Hits         []Hit
	Bursts       []Burst
	Shakes       []float64
	Flashes      []float64
	EnemyDeaths  []EnemyDeath
	PlayerDeaths []PlayerKilled
	BossDefeats  []BossDefeated
	PlayerDamage []PlayerDamaged
	LevelUps     []LevelUp
	DamageByType map[config.WeaponType]float64
	KeepHits     bool // hits and bursts are only kept when set
}

func NewRecorder() *Recorder {
	return &Recorder{DamageByType: make(map[config.WeaponType]float64)}
}

func (r *Recorder) OnHit(h Hit) {
	if r.KeepHits {
		r.Hits = append(r.Hits, h)
	}
}

func (r *Recorder) EmitBurst(b Burst) {
	if r.KeepHits {
		r.Bursts = append(r.Bursts, b)
	}
}

func (r *Recorder) Shake(intensity float64, _ int) {
	r.Shakes = append(r.Shakes, intensity)
}

func (r *Recorder) Flash(intensity float64, _ int) {
	r.Flashes = append(r.Flashes, intensity)
}

func (r *Recorder) OnEnemyDeath(d EnemyDeath) {
	r.EnemyDeaths = append(r.EnemyDeaths, d)
}

func (r *Recorder) OnPlayerKilled(d PlayerKilled) {
	r.PlayerDeaths = append(r.PlayerDeaths, d)
}

func (r *Recorder) OnBossDefeated(d BossDefeated) {
	r.BossDefeats = append(r.BossDefeats, d)
}

func (r *Recorder) RecordDamage(a Attribution) {
	r.DamageByType[a.Source] += a.Damage
}

func (r *Recorder) OnPlayerDamaged(d PlayerDamaged) {
	r.PlayerDamage = append(r.PlayerDamage, d)
}

func (r *Recorder) OnLevelUp(l LevelUp) {
	r.LevelUps = append(r.LevelUps, l)
}

// Kills counts recorded non-boss enemy deaths.
func (r *Recorder) Kills() int {
	n := 0
	for _, d := range r.EnemyDeaths {
		if !d.Boss {
			n++
		}
	}
	return n
}

// BurstsOf returns the recorded bursts of one kind.
func (r *Recorder) BurstsOf(kind BurstKind) []Burst {
	var out []Burst
	for _, b := range r.Bursts {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}
