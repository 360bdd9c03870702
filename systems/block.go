package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// BreakBlock shatters a breakable block, sometimes leaving a coin in its
// cell. Fixed or already destroyed blocks are left alone.
func BreakBlock(w *world.World, block *donburi.Entry) bool {
	base := components.Base.Get(block)
	if base.Destroyed || !components.Object.Get(block).HasTags(tags.ResolvBreakable) {
		return false
	}

	r := components.Object.Get(block).Rect()
	factory.SpawnBurst(w, r.CenterX(), r.CenterY(), cfg.Effects.Debris, cfg.Level.BreakableColor)
	w.Destroy(block)

	dropped := w.Rand.Float64() < cfg.Pickup.BreakCoinChance
	if dropped {
		factory.CreateCoin(w, r.X, r.Y)
	}

	components.BlockBrokenEvent.Publish(w.ECS, components.BlockBrokenEventData{
		X:           r.X,
		Y:           r.Y,
		DroppedCoin: dropped,
	})
	return true
}
