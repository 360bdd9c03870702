package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/yohamta/donburi"
)

// UpdateCoin bobs a coin around its resting height.
func UpdateCoin(e *donburi.Entry, dt float64) {
	obj := components.Object.Get(e)
	obj.Y = components.Coin.Get(e).Bob.Advance(dt)
	obj.Update()
}
