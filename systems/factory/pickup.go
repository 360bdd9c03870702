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

// CreateCoin places a coin centered in the tile whose top-left corner is
// (tileX, tileY).
func CreateCoin(w *world.World, tileX, tileY float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w.ECS)

	size := cfg.Pickup.CoinSize
	offset := (cfg.Level.BlockSize - size) / 2
	x, y := tileX+offset, tileY+offset

	obj := resolv.NewObject(x, y, size, size, tags.ResolvPickup)
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	components.Base.SetValue(coin, components.BaseData{
		Kind:   components.KindCoin,
		Active: true,
		ZIndex: cfg.Pickup.CoinZIndex,
	})
	components.Coin.SetValue(coin, components.CoinData{
		Value: cfg.Pickup.CoinValue,
		Bob: components.Oscillation{
			Base:      y,
			Amplitude: cfg.Pickup.CoinBobAmplitude,
			Speed:     cfg.Pickup.CoinBobSpeed,
		},
	})

	w.Add(coin)
	return coin
}

func CreateExit(w *world.World, x, y float64) *donburi.Entry {
	exit := archetypes.Exit.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, cfg.Level.BlockSize, cfg.Pickup.ExitHeight, tags.ResolvPickup)
	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	components.Base.SetValue(exit, components.BaseData{
		Kind:   components.KindExit,
		Active: true,
		ZIndex: cfg.Pickup.ExitZIndex,
	})

	w.Add(exit)
	return exit
}
