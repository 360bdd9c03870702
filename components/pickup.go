package components

import "github.com/yohamta/donburi"

// CoinData is a score pickup that bobs around BaseY.
type CoinData struct {
	Value int
	Bob   Oscillation
}

var Coin = donburi.NewComponentType[CoinData]()

// ExitData marks the level goal. Reached latches once the player touches it.
type ExitData struct {
	Reached bool
}

var Exit = donburi.NewComponentType[ExitData]()
