package components

import "github.com/yohamta/donburi"

// Kind identifies the behavior family of an entity. The tick dispatches on it.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindBlock
	KindCoin
	KindExit
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindBlock:
		return "block"
	case KindCoin:
		return "coin"
	case KindExit:
		return "exit"
	case KindEffect:
		return "effect"
	}
	return "unknown"
}

// BaseData holds the flags every entity carries.
type BaseData struct {
	Kind      Kind
	Active    bool // Takes part in update and render
	Solid     bool // Takes part in collision
	Destroyed bool // Pending removal at the end of the tick
	ZIndex    int
	Seq       uint64 // Insertion order, assigned by the world
}

var Base = donburi.NewComponentType[BaseData]()

// Alive reports whether an entity should still be acted upon this tick.
func (b *BaseData) Alive() bool {
	return b.Active && !b.Destroyed
}
