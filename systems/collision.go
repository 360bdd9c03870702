package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// SweepCollisions reports every overlapping pair of live solid entities
// once, as a CollisionEvent. Block pairs are skipped since blocks never
// move. It returns the number of pairs found.
func SweepCollisions(w *world.World) int {
	var (
		pairs int
		buf   []*donburi.Entry
	)
	for _, e := range w.Entries() {
		base := components.Base.Get(e)
		// Blocks are reached from the moving side of each pair.
		if !base.Alive() || !base.Solid || base.Kind == components.KindBlock {
			continue
		}

		buf = w.QueryInto(buf[:0], components.Object.Get(e).Rect(), tags.ResolvSolid)
		for _, o := range buf {
			other := components.Base.Get(o)
			if !other.Solid || o.Entity() == e.Entity() {
				continue
			}
			if other.Kind != components.KindBlock && other.Seq < base.Seq {
				continue
			}
			components.CollisionEvent.Publish(w.ECS, components.CollisionEventData{
				KindA: base.Kind,
				KindB: other.Kind,
				SeqA:  base.Seq,
				SeqB:  other.Seq,
			})
			pairs++
		}
	}
	return pairs
}
