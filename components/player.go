package components

import (
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed     float64
	JumpForce float64
	MaxSpeedX float64
	MaxSpeedY float64
	Friction  float64

	Direction float64 // 1 for right, -1 for left
	Jumping   bool
	Breaking  bool // Break modifier held this tick

	Invulnerable   bool
	InvulnTime     float64
	InvulnDuration float64 // Length of the current window

	Lives          int
	RespawnPending bool
	RespawnTimer   float64
	KnockbackTimer float64 // Horizontal input is ignored while positive

	Condiments [cfg.CondimentCount]int
	Cooldowns  [cfg.CondimentCount]float64

	StartX, StartY float64
}

var Player = donburi.NewComponentType[PlayerData]()

// CanThrow reports whether the given condiment is stocked and off cooldown.
func (p *PlayerData) CanThrow(kind cfg.CondimentKind) bool {
	return p.Condiments[kind] > 0 && p.Cooldowns[kind] <= 0
}
