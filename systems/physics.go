package systems

import (
	"github.com/automoto/runaway-hotdog/components"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// blockHit is called for each block the mover is pushed out of. Returning
// false stops the scan.
type blockHit func(block *donburi.Entry) bool

// resolveX moves obj horizontally by dx and pushes it out of every
// overlapping block according to the sign of dx. It reports whether any
// block was touched.
func resolveX(w *world.World, obj *components.ObjectData, dx float64, hit blockHit) bool {
	obj.X += dx
	collided := false
	for _, b := range w.Query(obj.Rect(), tags.ResolvBlock) {
		br := components.Object.Get(b).Rect()
		// An earlier push may already have cleared this block.
		if !gamemath.Overlaps(obj.Rect(), br) {
			continue
		}
		if dx > 0 {
			obj.X = br.X - obj.W
		} else if dx < 0 {
			obj.X = br.Right()
		}
		collided = true
		if hit != nil && !hit(b) {
			break
		}
	}
	obj.Update()
	return collided
}

// resolveY moves obj vertically by dy. A downward push lands the body on
// the block top and grounds it; an upward push stops it under the block.
// Grounded is cleared first, so only a landing in this pass sets it.
func resolveY(w *world.World, obj *components.ObjectData, phys *components.PhysicsData, dy float64) {
	phys.Grounded = false
	obj.Y += dy
	for _, b := range w.Query(obj.Rect(), tags.ResolvBlock) {
		br := components.Object.Get(b).Rect()
		if !gamemath.Overlaps(obj.Rect(), br) {
			continue
		}
		if phys.SpeedY > 0 {
			obj.Y = br.Y - obj.H
			phys.Grounded = true
			phys.SpeedY = 0
		} else if phys.SpeedY < 0 {
			obj.Y = br.Bottom()
			phys.SpeedY = 0
		}
	}
	obj.Update()
}

// applyGravity integrates gravity into the vertical speed and runs the
// vertical pass with the resulting displacement.
func applyGravity(w *world.World, obj *components.ObjectData, phys *components.PhysicsData, dt float64) {
	var dy float64
	phys.SpeedY, dy = gamemath.Integrate(phys.SpeedY, phys.Gravity, dt)
	resolveY(w, obj, phys, dy)
}
