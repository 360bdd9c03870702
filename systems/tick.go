package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi/features/events"
)

// Tick advances the world by one fixed step:
//
//  1. every live entity updates, in insertion order;
//  2. entities spawned during the updates join the world;
//  3. overlapping solid pairs are reported;
//  4. destroyed entities are removed;
//  5. the camera follows the player;
//  6. events published during the tick are delivered.
func Tick(w *world.World, dt float64) {
	w.Game().Elapsed += dt

	w.BeginUpdate()
	for _, e := range w.Entries() {
		if !components.Base.Get(e).Alive() {
			continue
		}
		switch components.Base.Get(e).Kind {
		case components.KindPlayer:
			UpdatePlayer(w, e, dt)
		case components.KindEnemy:
			UpdateEnemy(w, e, dt)
		case components.KindProjectile:
			UpdateProjectile(w, e, dt)
		case components.KindCoin:
			UpdateCoin(e, dt)
		case components.KindEffect:
			UpdateEffect(w, e, dt)
		}
	}
	w.FlushPending()

	SweepCollisions(w)
	w.Compact()
	UpdateCamera(w)

	events.ProcessAllEvents(w.ECS)
}
