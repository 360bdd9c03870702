package factory

import (
	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateBlock(w *world.World, kind components.BlockKind, x, y, width, height float64) *donburi.Entry {
	block := archetypes.Block.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid, tags.ResolvBlock)
	if kind == components.BlockBreakable {
		obj.AddTags(tags.ResolvBreakable)
	}
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	components.Base.SetValue(block, components.BaseData{
		Kind:   components.KindBlock,
		Active: true,
		Solid:  true,
	})
	components.Block.SetValue(block, components.BlockData{Kind: kind})

	w.Add(block)
	return block
}
