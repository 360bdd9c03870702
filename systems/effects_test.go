package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleFallsFadesAndExpires(t *testing.T) {
	w := newWorld(t)
	p := factory.SpawnParticle(w, 100, 100, factory.ParticleSpec{
		Size:     4,
		Speed:    0,
		Lifetime: 1,
		Gravity:  600,
		Color:    cfg.KetchupRed,
	})

	run(w, 30)
	require.True(t, p.Valid())
	fx := components.Effect.Get(p)
	assert.InDelta(t, 0.5, fx.Alpha, 0.02)
	assert.Greater(t, components.Object.Get(p).Y, 98.0)

	run(w, 31)
	assert.False(t, p.Valid())
}

func TestPopupRisesAndSways(t *testing.T) {
	w := newWorld(t)
	pop := factory.SpawnPopup(w, 200, 300, "+100", cfg.PopupWhite)

	var minX, maxX float64 = 200, 200
	for i := 0; i < 30; i++ {
		Tick(w, dt)
		x := components.Object.Get(pop).X
		minX, maxX = min(minX, x), max(maxX, x)
	}

	obj := components.Object.Get(pop)
	assert.Less(t, obj.Y, 300.0)
	assert.Less(t, minX, 200.0)
	assert.Greater(t, maxX, 200.0)
	assert.LessOrEqual(t, maxX-200, cfg.Effects.PopupWobble+1e-9)
}

func TestCoinBobsAroundRest(t *testing.T) {
	w := newWorld(t)
	coin := factory.CreateCoin(w, 100, 100)
	bob := components.Coin.Get(coin).Bob

	for i := 0; i < 120; i++ {
		Tick(w, dt)
		y := components.Object.Get(coin).Y
		assert.InDelta(t, bob.Base, y, bob.Amplitude+1e-9)
	}
}
