package systems

import (
	"math"

	"github.com/automoto/arena-survivor/components"
	cfg "github.com/automoto/arena-survivor/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the polled movement intent, the dash request and the
// per-tick timers.
func UpdatePlayer(ecs *ecs.ECS) {
	pe, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(pe)
	if player.Dead {
		return
	}
	t := components.Transform.Get(pe)
	input := components.Input.Get(pe)

	t.PrevX, t.PrevY = t.X, t.Y

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.DashCooldown > 0 {
		player.DashCooldown--
	}

	mx, my := input.MoveX, input.MoveY
	if l := math.Hypot(mx, my); l > 1 {
		mx, my = mx/l, my/l
	}
	if mx != 0 || my != 0 {
		l := math.Hypot(mx, my)
		player.FacingX, player.FacingY = mx/l, my/l
	}

	speed := MoveSpeed(player.Speed, player.Stacks(cfg.PassiveSpeed))
	t.X += mx * speed
	t.Y += my * speed

	if input.Dash && player.DashCooldown == 0 {
		dist := DashDistance(player.Stacks(cfg.PassiveDash))
		t.X += player.FacingX * dist
		t.Y += player.FacingY * dist
		player.DashCooldown = cfg.Player.DashCooldown
		player.InvulnFrames = max(player.InvulnFrames, cfg.Player.DashInvulnFrames)
	}
	input.Dash = false

	t.X, t.Y = clampToArena(t.X, t.Y, t.Radius)
	syncObject(pe)
}
