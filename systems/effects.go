package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// UpdateEffect ages a cosmetic entity, moves it and fades it out. It is
// destroyed once its lifetime has elapsed.
func UpdateEffect(w *world.World, e *donburi.Entry, dt float64) {
	fx := components.Effect.Get(e)
	fx.Age += dt
	if fx.Age >= fx.Lifetime {
		w.Destroy(e)
		return
	}

	obj := components.Object.Get(e)
	fx.VelY += fx.Gravity * dt
	obj.X += fx.VelX * dt
	obj.Y += fx.VelY * dt
	if fx.Wobble.Amplitude != 0 {
		obj.X = fx.Wobble.Advance(dt)
	}

	if fx.Fade != nil {
		alpha, _ := fx.Fade.Update(float32(dt))
		fx.Alpha = float64(alpha)
	}
}
