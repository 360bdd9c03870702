package factory

import (
	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the hotdog at its level start position.
func CreatePlayer(w *world.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer, tags.ResolvSolid)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Base.SetValue(player, components.BaseData{
		Kind:   components.KindPlayer,
		Active: true,
		Solid:  true,
		ZIndex: cfg.Player.ZIndex,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	pd := components.PlayerData{
		Speed:          cfg.Player.Speed,
		JumpForce:      cfg.Player.JumpForce,
		MaxSpeedX:      cfg.Player.MaxSpeedX,
		MaxSpeedY:      cfg.Player.MaxSpeedY,
		Friction:       cfg.Player.Friction,
		Direction:      1,
		InvulnDuration: cfg.Player.InvulnDuration,
		Lives:          cfg.Player.StartingLives,
		StartX:         x,
		StartY:         y,
	}
	for k := range pd.Condiments {
		pd.Condiments[k] = cfg.Player.StartCondiment
	}
	components.Player.SetValue(player, pd)

	w.Add(player)
	w.SetPlayer(player)
	return player
}
