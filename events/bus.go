package events

// Bus fans events out to every subscriber implementing the matching
// interface. A nil *Bus drops everything.
type Bus struct {
	hits      []HitListener
	particles []ParticleEmitter
	screen    []ScreenEffects
	deaths    []DeathListener
	damage    []DamageRecorder
	player    []PlayerListener
	levels    []LevelListener
}

func NewBus(subscribers ...any) *Bus {
	b := &Bus{}
	for _, s := range subscribers {
		b.Subscribe(s)
	}
	return b
}

// Subscribe registers s for every listener interface it implements and
// reports whether it matched any.
func (b *Bus) Subscribe(s any) bool {
	matched := false
	if l, ok := s.(HitListener); ok {
		b.hits = append(b.hits, l)
		matched = true
	}
	if l, ok := s.(ParticleEmitter); ok {
		b.particles = append(b.particles, l)
		matched = true
	}
	if l, ok := s.(ScreenEffects); ok {
		b.screen = append(b.screen, l)
		matched = true
	}
	if l, ok := s.(DeathListener); ok {
		b.deaths = append(b.deaths, l)
		matched = true
	}
	if l, ok := s.(DamageRecorder); ok {
		b.damage = append(b.damage, l)
		matched = true
	}
	if l, ok := s.(PlayerListener); ok {
		b.player = append(b.player, l)
		matched = true
	}
	if l, ok := s.(LevelListener); ok {
		b.levels = append(b.levels, l)
		matched = true
	}
	return matched
}

func (b *Bus) OnHit(h Hit) {
	if b == nil {
		return
	}
	for _, l := range b.hits {
		l.OnHit(h)
	}
}

func (b *Bus) EmitBurst(p Burst) {
	if b == nil {
		return
	}
	for _, l := range b.particles {
		l.EmitBurst(p)
	}
}

func (b *Bus) Shake(intensity float64, ticks int) {
	if b == nil {
		return
	}
	for _, l := range b.screen {
		l.Shake(intensity, ticks)
	}
}

func (b *Bus) Flash(intensity float64, ticks int) {
	if b == nil {
		return
	}
	for _, l := range b.screen {
		l.Flash(intensity, ticks)
	}
}

func (b *Bus) OnEnemyDeath(d EnemyDeath) {
	if b == nil {
		return
	}
	for _, l := range b.deaths {
		l.OnEnemyDeath(d)
	}
}

func (b *Bus) OnPlayerKilled(d PlayerKilled) {
	if b == nil {
		return
	}
	for _, l := range b.deaths {
		l.OnPlayerKilled(d)
	}
}

func (b *Bus) OnBossDefeated(d BossDefeated) {
	if b == nil {
		return
	}
	for _, l := range b.deaths {
		l.OnBossDefeated(d)
	}
}

func (b *Bus) RecordDamage(a Attribution) {
	if b == nil {
		return
	}
	for _, l := range b.damage {
		l.RecordDamage(a)
	}
}

func (b *Bus) OnPlayerDamaged(d PlayerDamaged) {
	if b == nil {
		return
	}
	for _, l := range b.player {
		l.OnPlayerDamaged(d)
	}
}

func (b *Bus) OnLevelUp(l LevelUp) {
	if b == nil {
		return
	}
	for _, s := range b.levels {
		s.OnLevelUp(l)
	}
}
