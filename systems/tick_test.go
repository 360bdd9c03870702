package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestSweepReportsEachPairOnce(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 200, 400)
	a := mustEnemy(t, w, components.BehaviorPatrol, 100, 100)
	b := mustEnemy(t, w, components.BehaviorPatrol, 120, 110)

	var got []components.CollisionEventData
	components.CollisionEvent.Subscribe(w.ECS, func(_ donburi.World, e components.CollisionEventData) {
		got = append(got, e)
	})

	assert.Equal(t, 1, SweepCollisions(w))
	events.ProcessAllEvents(w.ECS)

	require.Len(t, got, 1)
	assert.Equal(t, components.Base.Get(a).Seq, got[0].SeqA)
	assert.Equal(t, components.Base.Get(b).Seq, got[0].SeqB)
}

func TestSweepSkipsDestroyedAndNonSolid(t *testing.T) {
	w := newWorld(t)
	a := mustEnemy(t, w, components.BehaviorPatrol, 100, 100)
	mustEnemy(t, w, components.BehaviorPatrol, 120, 110)
	factory.CreateCoin(w, 100, 100)

	w.Destroy(a)

	assert.Zero(t, SweepCollisions(w))
}

func TestTickRemovesDestroyedAfterUpdate(t *testing.T) {
	w := newWorld(t)
	coin := factory.CreateCoin(w, 100, 100)
	w.Destroy(coin)
	before := w.Len()

	Tick(w, dt)

	assert.Equal(t, before-1, w.Len())
	assert.False(t, coin.Valid())
}

func TestTickDeliversEventsAfterCompaction(t *testing.T) {
	w := newWorld(t)
	factory.CreateCoin(w, 100, 100)
	weightlessPlayer(w, 100, 110)

	var lenAtDelivery int
	components.CoinCollectedEvent.Subscribe(w.ECS, func(donburi.World, components.CoinCollectedEventData) {
		lenAtDelivery = w.Len()
	})

	Tick(w, dt)

	assert.Equal(t, w.Len(), lenAtDelivery)
	for _, e := range w.Entries() {
		assert.NotEqual(t, components.KindCoin, components.Base.Get(e).Kind)
	}
}

func TestCameraFollowsPlayerWithinLevel(t *testing.T) {
	w := sizedWorld(t, 2000, 1000)
	p := weightlessPlayer(w, 1000, 500)

	Tick(w, dt)
	cam := w.Camera()
	r := components.Object.Get(p).Rect()
	assert.Equal(t, r.CenterX()-cam.Width/2, cam.Position.X)
	assert.Equal(t, r.CenterY()-cam.Height/2, cam.Position.Y)

	components.Object.Get(p).X = 0
	Tick(w, dt)
	assert.Zero(t, cam.Position.X)

	components.Object.Get(p).X = 1960
	Tick(w, dt)
	assert.Equal(t, 2000-cfg.Screen.Width, cam.Position.X)
}

func TestDrawListOrderedByDepthThenInsertion(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 0, 560, 40, 40)
	factory.CreateEnemy(w, components.BehaviorPatrol, 100, 100)
	factory.CreateCoin(w, 200, 100)
	factory.CreateBlock(w, components.BlockBreakable, 40, 560, 40, 40)
	factory.CreatePlayer(w, 300, 100)
	factory.CreateProjectile(w, cfg.Ketchup, 320, 110, 1)
	// Entirely outside the view.
	factory.CreateBlock(w, components.BlockFixed, 900, 560, 40, 40)

	cmds := BuildDrawList(w, nil)

	kinds := make([]components.Kind, 0, len(cmds))
	for _, c := range cmds {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []components.Kind{
		components.KindBlock,
		components.KindBlock,
		components.KindProjectile,
		components.KindEnemy,
		components.KindCoin,
		components.KindPlayer,
	}, kinds)
	assert.Equal(t, int(components.BlockBreakable), cmds[1].Variant)
}

func TestDrawListIsCameraRelative(t *testing.T) {
	w := sizedWorld(t, 2000, 600)
	p := factory.CreatePlayer(w, 1000, 100)
	components.Player.Get(p).Invulnerable = true
	w.Camera().Position.X = 700

	cmds := BuildDrawList(w, nil)

	require.Len(t, cmds, 1)
	assert.Equal(t, 300.0, cmds[0].Rect.X)
	assert.True(t, cmds[0].Flags.Has(FlagInvulnerable))
	assert.Equal(t, 0.5, cmds[0].Alpha)
}

func TestHUDSnapshot(t *testing.T) {
	w := newWorld(t)
	p := weightlessPlayer(w, 100, 100)
	w.Game().Score = 250
	_, ok := Throw(w, p, cfg.Mustard)
	require.True(t, ok)

	hud := BuildHUD(w)

	assert.Equal(t, 250, hud.Score)
	assert.Equal(t, cfg.Player.StartingLives, hud.Lives)
	assert.Equal(t, cfg.Player.StartCondiment-1, hud.Condiments[cfg.Mustard])
	assert.Equal(t, cfg.Player.ThrowCooldown, hud.Cooldowns[cfg.Mustard])
	assert.Zero(t, hud.Cooldowns[cfg.Ketchup])
}
