package components

import (
	"github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed        float64
	Level        int
	XP           int
	InvulnFrames int // Invulnerability frames timer
	DashCooldown int
	FacingX      float64
	FacingY      float64
	Dead         bool

	Passives   map[config.PassiveKey]int
	Weapons    []*WeaponData
	MaxWeapons int
}

// Stacks returns the stack count of a passive.
func (p *PlayerData) Stacks(key config.PassiveKey) int {
	return p.Passives[key]
}

// Has reports whether the player owns at least one stack of key.
func (p *PlayerData) Has(key config.PassiveKey) bool {
	return p.Passives[key] > 0
}

// Weapon returns the owned weapon of type t.
func (p *PlayerData) Weapon(t config.WeaponType) (*WeaponData, bool) {
	for _, w := range p.Weapons {
		if w.Type == t {
			return w, true
		}
	}
	return nil, false
}

var Player = donburi.NewComponentType[PlayerData]()
