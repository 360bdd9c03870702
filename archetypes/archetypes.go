package archetypes

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Base,
		components.Object,
		components.Physics,
		components.Player,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Base,
		components.Object,
		components.Physics,
		components.Enemy,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Base,
		components.Object,
		components.Physics,
		components.Projectile,
	)
	Block = newArchetype(
		tags.Block,
		components.Base,
		components.Object,
		components.Block,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Base,
		components.Object,
		components.Coin,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Base,
		components.Object,
		components.Exit,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Base,
		components.Object,
		components.Effect,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Game,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
