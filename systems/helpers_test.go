package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var dt = 1.0 / 60

func newWorld(t *testing.T) *world.World {
	t.Helper()
	return sizedWorld(t, 800, 600)
}

func sizedWorld(t *testing.T, width, height float64) *world.World {
	t.Helper()
	w := world.New(width, height, 1)
	cam := w.Camera()
	cam.Width, cam.Height = cfg.Screen.Width, cfg.Screen.Height
	return w
}

// floor lays fixed blocks from x0 to x1 with their tops at y.
func floor(w *world.World, x0, x1, y float64) {
	for x := x0; x < x1; x += cfg.Level.BlockSize {
		factory.CreateBlock(w, components.BlockFixed, x, y, cfg.Level.BlockSize, cfg.Level.BlockSize)
	}
}

// weightlessPlayer creates a player with gravity disabled so tests control
// vertical motion exactly.
func weightlessPlayer(w *world.World, x, y float64) *donburi.Entry {
	p := factory.CreatePlayer(w, x, y)
	components.Physics.Get(p).Gravity = 0
	return p
}

func mustEnemy(t *testing.T, w *world.World, b components.Behavior, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(w, b, x, y)
	require.NoError(t, err)
	return e
}

func press(w *world.World, actions ...cfg.ActionID) {
	in := w.Input()
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}

func run(w *world.World, ticks int) {
	for i := 0; i < ticks; i++ {
		Tick(w, dt)
	}
}
