package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestGravityOneTick(t *testing.T) {
	w := newWorld(t)
	e := mustEnemy(t, w, components.BehaviorPatrol, 100, 100)
	obj := components.Object.Get(e)
	phys := components.Physics.Get(e)

	applyGravity(w, obj, phys, dt)

	assert.InDelta(t, 800.0/60, phys.SpeedY, 1e-9)
	assert.InDelta(t, 100+(800.0/60)/60, obj.Y, 1e-9)
	assert.False(t, phys.Grounded)
}

func TestLandingGroundsBody(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 200, 160)
	e := mustEnemy(t, w, components.BehaviorPatrol, 100, 99)
	obj := components.Object.Get(e)
	phys := components.Physics.Get(e)
	phys.SpeedY = 120

	resolveY(w, obj, phys, 2)

	assert.Equal(t, 100.0, obj.Y)
	assert.True(t, phys.Grounded)
	assert.Zero(t, phys.SpeedY)
}

func TestRisingBodyStopsUnderBlock(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 100, 0, 40, 40)
	e := mustEnemy(t, w, components.BehaviorPatrol, 100, 41)
	obj := components.Object.Get(e)
	phys := components.Physics.Get(e)
	phys.SpeedY = -300

	resolveY(w, obj, phys, -5)

	assert.Equal(t, 40.0, obj.Y)
	assert.False(t, phys.Grounded)
	assert.Zero(t, phys.SpeedY)
}

// The block sits diagonally ahead so that resolving vertically first would
// let the player slide into its side instead of landing on it.
func TestHorizontalResolvesBeforeVertical(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 142, 125, 40, 40)
	p := weightlessPlayer(w, 100, 100)
	components.Physics.Get(p).SpeedY = cfg.Player.MaxSpeedY
	press(w, cfg.ActionMoveRight)

	Tick(w, dt)

	obj := components.Object.Get(p)
	phys := components.Physics.Get(p)
	assert.InDelta(t, 100+200*cfg.Player.Friction*dt, obj.X, 1e-9)
	assert.Equal(t, 105.0, obj.Y)
	assert.True(t, phys.Grounded)
}

func TestTouchingBlockIsNotACollision(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 140, 100, 40, 40)
	p := weightlessPlayer(w, 100, 120)

	Tick(w, dt)

	obj := components.Object.Get(p)
	assert.Equal(t, 100.0, obj.X)
	assert.Equal(t, 120.0, obj.Y)
}
