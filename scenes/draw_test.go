package scenes

import (
	"image/color"
	"testing"

	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/stretchr/testify/assert"
)

func TestFadeScalesAlphaOnly(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 200}

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 100}, fade(c, 0.5))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 200}, fade(c, 3))
	assert.Zero(t, fade(c, -1).A)
}

func TestEveryActionIsBound(t *testing.T) {
	for a := cfg.ActionMoveLeft; a < cfg.ActionCount; a++ {
		b, ok := Bindings[a]
		if assert.True(t, ok, a.String()) {
			assert.NotEmpty(t, b.Keys, a.String())
		}
	}
}
