package game

import (
	"testing"

	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
- at: 2
  hold: [left]
- at: 0
  hold: [right, jump]
- at: 3
`))
	require.NoError(t, err)

	assert.Equal(t, holding(cfg.ActionMoveRight, cfg.ActionJump), script.InputAt(0))
	assert.Equal(t, holding(cfg.ActionMoveRight, cfg.ActionJump), script.InputAt(1.99))
	assert.Equal(t, holding(cfg.ActionMoveLeft), script.InputAt(2))
	assert.Equal(t, holding(), script.InputAt(10), "a step without actions releases everything")
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown action", "- at: 0\n  hold: [fly]\n"},
		{"negative time", "- at: -1\n  hold: [left]\n"},
		{"not a list", "hold: left\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestHoldScript(t *testing.T) {
	script, err := HoldScript([]string{"right", "ketchup"})
	require.NoError(t, err)
	assert.Equal(t, holding(cfg.ActionMoveRight, cfg.ActionThrowKetchup), script.InputAt(99))

	_, err = HoldScript([]string{"none"})
	assert.Error(t, err)
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	pit := mapLevel(t, "pit",
		"..........",
		".P........",
		"..........",
	)
	s := newSession(t, pit)

	n := Simulate(s, nil, 600)

	assert.Equal(t, StateGameOver, s.State())
	assert.Less(t, n, 600*cfg.Loop.TickRate)
	assert.Equal(t, uint64(n), s.Stats().Ticks)
}

func TestSimulateFollowsScript(t *testing.T) {
	s := newSession(t, corridor(t, "one"), corridor(t, "two"))
	script, err := HoldScript([]string{"right"})
	require.NoError(t, err)

	n := Simulate(s, script, 2)

	assert.Equal(t, 2*cfg.Loop.TickRate, n)
	assert.Equal(t, 1, s.Stats().LevelsCleared)
	assert.Equal(t, 1, s.Stats().CoinsCollected)
}
