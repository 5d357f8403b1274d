package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var (
	ErrUnknownWeapon  = errors.New("unknown weapon")
	ErrUnknownPassive = errors.New("unknown passive")
	ErrSlotsFull      = errors.New("weapon slots full")
	ErrAlreadyOwned   = errors.New("weapon already owned")
	ErrNotOwned       = errors.New("weapon not owned")
	ErrMaxLevel       = errors.New("weapon at max level")
	ErrStackCap       = errors.New("passive at stack cap")
	ErrNoMergeRecipe  = errors.New("no merge recipe")
	ErrNoPlayer       = errors.New("no player")
)

// Choice is an upgrade selected by the level-up flow.
type Choice interface {
	fmt.Stringer
	choice()
}

type NewWeapon struct{ Type cfg.WeaponType }

type LevelUpWeapon struct{ Type cfg.WeaponType }

type GrantPassive struct{ Key cfg.PassiveKey }

type MergeWeapons struct{ A, B cfg.WeaponType }

func (NewWeapon) choice()     {}
func (LevelUpWeapon) choice() {}
func (GrantPassive) choice()  {}
func (MergeWeapons) choice()  {}

func (c NewWeapon) String() string     { return "weapon:" + c.Type.String() }
func (c LevelUpWeapon) String() string { return "level:" + c.Type.String() }
func (c GrantPassive) String() string  { return "passive:" + c.Key.String() }
func (c MergeWeapons) String() string  { return "merge:" + c.A.String() + "+" + c.B.String() }

// ParseChoice builds a choice from its kind and key, as sent by an external
// selection flow.
func ParseChoice(kind, key string) (Choice, error) {
	switch kind {
	case "weapon", "level":
		t, ok := cfg.ParseWeaponType(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeapon, key)
		}
		if kind == "weapon" {
			return NewWeapon{Type: t}, nil
		}
		return LevelUpWeapon{Type: t}, nil
	case "passive":
		k, ok := cfg.ParsePassiveKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPassive, key)
		}
		return GrantPassive{Key: k}, nil
	}
	return nil, fmt.Errorf("unknown choice kind %q", kind)
}

// ApplyChoice applies c to the player. Rejected choices are logged and
// leave every weapon and passive untouched.
func ApplyChoice(ecs *ecs.ECS, c Choice) bool {
	game := GetGame(ecs.World)
	err := applyChoice(ecs, c)
	if err != nil {
		game.Logger.Warn("upgrade rejected", zap.Stringer("choice", c), zap.Error(err))
		return false
	}
	game.Logger.Debug("upgrade applied", zap.Stringer("choice", c))
	return true
}

// ApplyKey parses and applies a choice, logging unknown keys.
func ApplyKey(ecs *ecs.ECS, kind, key string) bool {
	c, err := ParseChoice(kind, key)
	if err != nil {
		GetGame(ecs.World).Logger.Warn("upgrade rejected", zap.String("kind", kind), zap.String("key", key), zap.Error(err))
		return false
	}
	return ApplyChoice(ecs, c)
}

func applyChoice(ecs *ecs.ECS, c Choice) error {
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return ErrNoPlayer
	}
	player := components.Player.Get(pe)

	switch c := c.(type) {
	case NewWeapon:
		return addWeapon(player, c.Type)
	case LevelUpWeapon:
		return levelUpWeapon(player, c.Type)
	case MergeWeapons:
		return mergeWeapons(player, c.A, c.B)
	case GrantPassive:
		return grantPassive(player, components.Health.Get(pe), c.Key)
	}
	return fmt.Errorf("unsupported choice %T", c)
}

func grantPassive(player *components.PlayerData, health *components.HealthData, key cfg.PassiveKey) error {
	if int(key) < 0 || int(key) >= cfg.PassiveKeyCount {
		return fmt.Errorf("%w: %d", ErrUnknownPassive, int(key))
	}
	if limit := cfg.Passives.Cap(key); limit > 0 && player.Stacks(key) >= limit {
		return fmt.Errorf("%w: %s", ErrStackCap, key)
	}
	player.Passives[key]++

	p := cfg.Passives.Types[key]
	switch key {
	case cfg.PassiveHealthBoost:
		health.Max += p.Amount
		health.Current += p.Amount
	case cfg.PassiveExtraSlot:
		player.MaxWeapons = cfg.Passives.ExtraMaxWeapons
	case cfg.PassiveRapidFire, cfg.PassivePowerCore, cfg.PassiveMultishot:
		refreshWeapons(player)
	}
	return nil
}

// ArmorReduction is min(cap, 1 - base^stacks).
func ArmorReduction(stacks int) float64 {
	if stacks <= 0 {
		return 0
	}
	return math.Min(cfg.Passives.ArmorCap, 1-math.Pow(cfg.Passives.ArmorBase, float64(stacks)))
}

// CritChance is the chance of a double-damage hit.
func CritChance(stacks int) float64 {
	return cfg.Passives.Types[cfg.PassiveCritical].Amount * float64(clampStacks(cfg.PassiveCritical, stacks))
}

// MagnetRange is the XP orb pull radius.
func MagnetRange(stacks int) float64 {
	return cfg.XP.MagnetRange * (1 + cfg.Passives.Types[cfg.PassiveMagnet].Amount*float64(clampStacks(cfg.PassiveMagnet, stacks)))
}

// DashDistance is the dash jump length.
func DashDistance(stacks int) float64 {
	return cfg.Player.DashDistance * (1 + cfg.Passives.Types[cfg.PassiveDash].Amount*float64(clampStacks(cfg.PassiveDash, stacks)))
}

// MoveSpeed is the player's movement speed per tick.
func MoveSpeed(base float64, stacks int) float64 {
	return base * (1 + cfg.Passives.Types[cfg.PassiveSpeed].Amount*float64(clampStacks(cfg.PassiveSpeed, stacks)))
}

// BlastMultiplier scales explosion radii.
func BlastMultiplier(player *components.PlayerData) float64 {
	if player.Has(cfg.PassiveBlastRadius) {
		return cfg.Passives.Types[cfg.PassiveBlastRadius].Amount
	}
	return 1
}

func clampStacks(key cfg.PassiveKey, stacks int) int {
	if stacks < 0 {
		return 0
	}
	if limit := cfg.Passives.Cap(key); limit > 0 && stacks > limit {
		return limit
	}
	return stacks
}

// OfferChoices draws up to n distinct choices the player can take right
// now. Available merges always come first.
func OfferChoices(ecs *ecs.ECS, n int) []Choice {
	pe, ok := GetPlayer(ecs.World)
	if !ok || n <= 0 {
		return nil
	}
	game := GetGame(ecs.World)
	player := components.Player.Get(pe)

	var offers []Choice
	for _, m := range AvailableMerges(player) {
		offers = append(offers, m)
	}
	fixed := len(offers)

	for _, w := range player.Weapons {
		if w.Level < cfg.Weapons.Leveling.MaxLevel {
			offers = append(offers, LevelUpWeapon{Type: w.Type})
		}
	}
	if len(player.Weapons) < player.MaxWeapons {
		for i := 0; i < cfg.WeaponTypeCount; i++ {
			t := cfg.WeaponType(i)
			if _, owned := player.Weapon(t); owned || isMergeResult(t) {
				continue
			}
			offers = append(offers, NewWeapon{Type: t})
		}
	}
	for i := 0; i < cfg.PassiveKeyCount; i++ {
		key := cfg.PassiveKey(i)
		if limit := cfg.Passives.Cap(key); limit == 0 || player.Stacks(key) < limit {
			offers = append(offers, GrantPassive{Key: key})
		}
	}

	rest := offers[fixed:]
	game.Rand.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	if len(offers) > n {
		offers = offers[:n]
	}
	return offers
}

func isMergeResult(t cfg.WeaponType) bool {
	for _, r := range cfg.Weapons.Merges {
		if r.Result == t {
			return true
		}
	}
	return false
}
