package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera centers the view on the player, clamped to the level.
// Without a player the camera stays where it is.
func UpdateCamera(w *world.World) {
	player, ok := w.Player()
	if !ok {
		return
	}
	cam := w.Camera()
	r := components.Object.Get(player).Rect()

	x := gamemath.Clamp(r.CenterX()-cam.Width/2, 0, max(0, w.Width-cam.Width))
	y := gamemath.Clamp(r.CenterY()-cam.Height/2, 0, max(0, w.Height-cam.Height))
	cam.Position = math.Vec2{X: x, Y: y}
}
