package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// Census counts live entities by archetype tag.
type Census struct {
	Players     int
	Enemies     int
	Projectiles int
	Blocks      int
	Coins       int
	Exits       int
	Effects     int
}

type tagged interface {
	Each(donburi.World, func(*donburi.Entry))
}

// TakeCensus walks the ECS storage. Entries flagged for removal are not
// counted.
func TakeCensus(w *world.World) Census {
	count := func(tag tagged) int {
		n := 0
		tag.Each(w.ECS, func(e *donburi.Entry) {
			if !components.Base.Get(e).Destroyed {
				n++
			}
		})
		return n
	}

	return Census{
		Players:     count(tags.Player),
		Enemies:     count(tags.Enemy),
		Projectiles: count(tags.Projectile),
		Blocks:      count(tags.Block),
		Coins:       count(tags.Coin),
		Exits:       count(tags.Exit),
		Effects:     count(tags.Effect),
	}
}
