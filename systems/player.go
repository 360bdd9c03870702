package systems

import (
	"fmt"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// DamageResult reports what a damage attempt did to the player.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // Invulnerable or already out of play
	DamageSurvived
	DamageKilled
)

func (r DamageResult) String() string {
	switch r {
	case DamageSurvived:
		return "survived"
	case DamageKilled:
		return "killed"
	}
	return "ignored"
}

// UpdatePlayer runs one tick of the hotdog: input, physics, cooldowns,
// pickups, then the invulnerability, respawn and knockback timers.
func UpdatePlayer(w *world.World, e *donburi.Entry, dt float64) {
	handleInput(w, e)
	updatePlayerPhysics(w, e, dt)

	p := components.Player.Get(e)
	for k := range p.Cooldowns {
		if p.Cooldowns[k] > 0 {
			p.Cooldowns[k] -= dt
		}
	}

	collectPickups(w, e)

	if p.Invulnerable {
		p.InvulnTime += dt
		if p.InvulnTime >= p.InvulnDuration {
			p.Invulnerable = false
			p.InvulnTime = 0
		}
	}

	if p.RespawnPending {
		p.RespawnTimer += dt
		if p.RespawnTimer >= cfg.Player.RespawnDelay {
			Respawn(w, e)
		}
	}

	if p.KnockbackTimer > 0 {
		p.KnockbackTimer -= dt
	}

	// Falling out of the level costs a life and returns the player to the
	// start at once.
	if components.Object.Get(e).Y > w.Height {
		switch TakeDamage(w, e) {
		case DamageSurvived:
			Respawn(w, e)
		case DamageIgnored:
			returnToStart(e)
		}
	}
}

func handleInput(w *world.World, e *donburi.Entry) {
	in := w.Input()
	p := components.Player.Get(e)
	phys := components.Physics.Get(e)

	if p.KnockbackTimer <= 0 {
		switch {
		case in.Held(cfg.ActionMoveLeft):
			phys.SpeedX = -p.Speed
			p.Direction = -1
		case in.Held(cfg.ActionMoveRight):
			phys.SpeedX = p.Speed
			p.Direction = 1
		default:
			phys.SpeedX = 0
		}
	}

	if in.Held(cfg.ActionJump) && phys.Grounded {
		phys.SpeedY = -p.JumpForce
		phys.Grounded = false
		p.Jumping = true
	}

	for kind, action := range cfg.ThrowActions {
		if in.Held(action) {
			Throw(w, e, cfg.CondimentKind(kind))
		}
	}

	p.Breaking = in.Held(cfg.ActionBreak)
}

func updatePlayerPhysics(w *world.World, e *donburi.Entry, dt float64) {
	p := components.Player.Get(e)
	phys := components.Physics.Get(e)
	obj := components.Object.Get(e)

	phys.SpeedY += phys.Gravity * dt
	phys.SpeedX = gamemath.ApplyFriction(phys.SpeedX, p.Friction)
	phys.SpeedX = gamemath.ClampSpeed(phys.SpeedX, p.MaxSpeedX)
	phys.SpeedY = gamemath.ClampSpeed(phys.SpeedY, p.MaxSpeedY)

	resolveX(w, obj, phys.SpeedX*dt, func(block *donburi.Entry) bool {
		phys.SpeedX = 0
		if p.Breaking {
			BreakBlock(w, block)
		}
		return true
	})
	resolveY(w, obj, phys, phys.SpeedY*dt)

	if phys.Grounded {
		p.Jumping = false
	}

	if x := gamemath.Clamp(obj.X, 0, w.Width-obj.W); x != obj.X {
		obj.X = x
		obj.Update()
	}
}

// Throw launches one condiment from the player's center in its facing
// direction. It does nothing when the condiment is empty or cooling down.
func Throw(w *world.World, e *donburi.Entry, kind cfg.CondimentKind) (*donburi.Entry, bool) {
	p := components.Player.Get(e)
	if !p.CanThrow(kind) {
		return nil, false
	}
	p.Condiments[kind]--
	p.Cooldowns[kind] = cfg.Player.ThrowCooldown

	r := components.Object.Get(e).Rect()
	proj := factory.CreateProjectile(w, kind, r.CenterX(), r.CenterY(), p.Direction)
	components.ProjectileThrownEvent.Publish(w.ECS, components.ProjectileThrownEventData{Condiment: kind})
	return proj, true
}

// TakeDamage costs the player a life unless it is invulnerable. A surviving
// player is knocked upward and scheduled to respawn; the last life ends the
// game.
func TakeDamage(w *world.World, e *donburi.Entry) DamageResult {
	p := components.Player.Get(e)
	base := components.Base.Get(e)
	if p.Invulnerable || !base.Alive() {
		return DamageIgnored
	}

	p.Invulnerable = true
	p.InvulnTime = 0
	p.InvulnDuration = cfg.Player.InvulnDuration
	components.Physics.Get(e).SpeedY = -p.JumpForce * cfg.Player.DamageKnockbackUp
	p.Lives--

	r := components.Object.Get(e).Rect()
	factory.SpawnBurst(w, r.CenterX(), r.CenterY(), cfg.Effects.Damage, cfg.Sausage)

	if p.Lives <= 0 {
		p.Lives = 0
		killPlayer(w, e)
		components.PlayerDamagedEvent.Publish(w.ECS, components.PlayerDamagedEventData{})
		return DamageKilled
	}

	p.RespawnPending = true
	p.RespawnTimer = 0
	components.PlayerDamagedEvent.Publish(w.ECS, components.PlayerDamagedEventData{
		LivesLeft: p.Lives,
		Survived:  true,
	})
	return DamageSurvived
}

func killPlayer(w *world.World, e *donburi.Entry) {
	components.Base.Get(e).Active = false
	game := w.Game()
	game.GameOver = true

	r := components.Object.Get(e).Rect()
	factory.SpawnBurst(w, r.CenterX(), r.CenterY(), cfg.Effects.Death, cfg.Sausage)
	components.GameOverEvent.Publish(w.ECS, components.GameOverEventData{Score: game.Score})
}

// Respawn returns the player to its level start with zero velocity and a
// fresh invulnerability window.
func Respawn(w *world.World, e *donburi.Entry) {
	returnToStart(e)

	p := components.Player.Get(e)
	p.Invulnerable = true
	p.InvulnTime = 0
	p.InvulnDuration = cfg.Player.RespawnInvulnDuration
	p.RespawnPending = false
	p.RespawnTimer = 0
	p.KnockbackTimer = 0

	components.PlayerRespawnedEvent.Publish(w.ECS, components.PlayerRespawnedEventData{X: p.StartX, Y: p.StartY})
}

// returnToStart moves the player back to its start at rest, leaving lives
// and invulnerability alone.
func returnToStart(e *donburi.Entry) {
	p := components.Player.Get(e)
	phys := components.Physics.Get(e)
	obj := components.Object.Get(e)

	obj.X, obj.Y = p.StartX, p.StartY
	obj.Update()
	phys.SpeedX, phys.SpeedY = 0, 0
	phys.Grounded = false
	p.Jumping = false
}

func collectPickups(w *world.World, e *donburi.Entry) {
	for _, o := range w.Query(components.Object.Get(e).Rect(), tags.ResolvPickup) {
		switch components.Base.Get(o).Kind {
		case components.KindCoin:
			collectCoin(w, e, o)
		case components.KindExit:
			reachExit(w, o)
		}
	}
}

func collectCoin(w *world.World, player, coin *donburi.Entry) {
	value := components.Coin.Get(coin).Value
	w.Game().Score += value
	w.Destroy(coin)

	r := components.Object.Get(coin).Rect()
	factory.SpawnPopup(w, r.CenterX(), r.Y-20, fmt.Sprintf("+%d", value), cfg.PopupWhite)

	p := components.Player.Get(player)
	kind := cfg.CondimentKind(w.Rand.Intn(int(cfg.CondimentCount)))
	refilled := false
	if p.Condiments[kind] < cfg.Player.CondimentCap {
		p.Condiments[kind]++
		refilled = true
	}

	components.CoinCollectedEvent.Publish(w.ECS, components.CoinCollectedEventData{
		Value:     value,
		Condiment: kind,
		Refilled:  refilled,
	})
}

func reachExit(w *world.World, exit *donburi.Entry) {
	game := w.Game()
	game.LevelComplete = true

	ex := components.Exit.Get(exit)
	if ex.Reached {
		return
	}
	ex.Reached = true
	components.LevelCompleteEvent.Publish(w.ECS, components.LevelCompleteEventData{Score: game.Score})
}
