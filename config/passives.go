package config

import "fmt"

// PassiveKey identifies a passive ability.
type PassiveKey int

const (
	PassiveHealthBoost PassiveKey = iota
	PassiveArmor
	PassiveCritical
	PassiveMagnet
	PassiveDash
	PassiveSpeed
	PassiveRapidFire
	PassivePowerCore
	PassiveMultishot
	PassiveBlastRadius
	PassiveExtraSlot

	PassiveKeyCount int = iota
)

var passiveNames = [...]string{
	"health_boost", "armor", "critical", "magnet", "dash", "speed",
	"rapid_fire", "power_core", "multishot", "blast_radius", "extra_slot",
}

func (p PassiveKey) String() string {
	if int(p) < 0 || int(p) >= len(passiveNames) {
		return fmt.Sprintf("PassiveKey(%d)", int(p))
	}
	return passiveNames[p]
}

// ParsePassiveKey maps a passive key to its enum.
func ParsePassiveKey(s string) (PassiveKey, bool) {
	for i, n := range passiveNames {
		if n == s {
			return PassiveKey(i), true
		}
	}
	return 0, false
}

// PassiveConfig describes how a passive stacks.
type PassiveConfig struct {
	Key       PassiveKey
	Unique    bool    // non-stackable, at most one
	MaxStacks int     // 0 means uncapped
	Amount    float64 // per-stack amount, meaning depends on the key
}

// PassivesConfig holds every passive.
type PassivesConfig struct {
	Types [PassiveKeyCount]PassiveConfig

	ArmorBase       float64 // reduction = 1 - ArmorBase^stacks
	ArmorCap        float64
	CritMultiplier  float64
	BaseMaxWeapons  int
	ExtraMaxWeapons int
}

// Cap returns the maximum stack count for key, 0 when uncapped.
func (c *PassivesConfig) Cap(key PassiveKey) int {
	p := c.Types[key]
	if p.Unique {
		return 1
	}
	return p.MaxStacks
}

func defaultPassives() PassivesConfig {
	var c PassivesConfig
	set := func(p PassiveConfig) { c.Types[p.Key] = p }

	set(PassiveConfig{Key: PassiveHealthBoost, MaxStacks: 5, Amount: 20})
	set(PassiveConfig{Key: PassiveArmor, MaxStacks: 0})
	set(PassiveConfig{Key: PassiveCritical, MaxStacks: 3, Amount: 0.15})
	set(PassiveConfig{Key: PassiveMagnet, MaxStacks: 3, Amount: 0.5})
	set(PassiveConfig{Key: PassiveDash, MaxStacks: 3, Amount: 0.25})
	set(PassiveConfig{Key: PassiveSpeed, MaxStacks: 3, Amount: 0.10})
	set(PassiveConfig{Key: PassiveRapidFire, Unique: true, Amount: 0.75})
	set(PassiveConfig{Key: PassivePowerCore, Unique: true, Amount: 1.5})
	set(PassiveConfig{Key: PassiveMultishot, Unique: true, Amount: 1})
	set(PassiveConfig{Key: PassiveBlastRadius, Unique: true, Amount: 1.5})
	set(PassiveConfig{Key: PassiveExtraSlot, Unique: true, Amount: 1})

	c.ArmorBase = 0.85
	c.ArmorCap = 0.9
	c.CritMultiplier = 2
	c.BaseMaxWeapons = 4
	c.ExtraMaxWeapons = 5
	return c
}
