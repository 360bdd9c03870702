package components

import "github.com/yohamta/donburi"

type BlockKind int

const (
	BlockFixed BlockKind = iota
	BlockBreakable
)

type BlockData struct {
	Kind BlockKind
}

var Block = donburi.NewComponentType[BlockData]()
