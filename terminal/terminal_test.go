package terminal

import (
	"image/color"
	"testing"
	"time"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type grid struct {
	cols, rows int
	cells      [][]rune
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range g.cells {
		g.cells[i] = make([]rune, cols)
	}
	return g
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	g.cells[y][x] = r
}

func (g *grid) Size() (int, int) { return g.cols, g.rows }

func (g *grid) row(y int) string { return string(g.cells[y]) }

func TestKeysReleaseAfterTimeout(t *testing.T) {
	k := NewKeyState(100 * time.Millisecond)
	t0 := time.Unix(100, 0)

	k.Press(cfg.ActionJump, t0)

	assert.True(t, k.Held(t0.Add(99*time.Millisecond))[cfg.ActionJump])
	assert.False(t, k.Held(t0.Add(100*time.Millisecond))[cfg.ActionJump])
	assert.False(t, k.Held(t0)[cfg.ActionMoveLeft])

	k.Press(cfg.ActionJump, t0.Add(90*time.Millisecond))
	assert.True(t, k.Held(t0.Add(150*time.Millisecond))[cfg.ActionJump])

	k.Clear()
	assert.False(t, k.Held(t0.Add(150*time.Millisecond))[cfg.ActionJump])
}

func TestDrawScalesViewOntoCells(t *testing.T) {
	// One cell per 10x10 world units below the HUD.
	g := newGrid(int(cfg.Screen.Width/10), int(cfg.Screen.Height/10)+hudRows)
	f := systems.Frame{
		Background: color.RGBA{A: 255},
		Commands: []systems.DrawCommand{
			{Kind: components.KindBlock, Rect: gamemath.Rect{X: 0, Y: 100, W: 40, H: 40}, Alpha: 1},
			{Kind: components.KindCoin, Rect: gamemath.Rect{X: 55, Y: 10, W: 2, H: 2}, Alpha: 1},
			{Kind: components.KindEffect, Variant: int(components.EffectPopup), Rect: gamemath.Rect{X: 200, Y: 300}, Text: "+10", Alpha: 1},
		},
		HUD: systems.HUD{Score: 42, Lives: 3, Level: 1, LevelName: "one", State: "playing"},
	}

	Draw(g, f)

	assert.Equal(t, '▓', g.cells[hudRows+10][0])
	assert.Equal(t, '▓', g.cells[hudRows+13][3])
	assert.Equal(t, ' ', g.cells[hudRows+14][4])
	assert.Equal(t, '$', g.cells[hudRows+1][5], "small entities still cover a cell")
	assert.Equal(t, "+10", g.row(hudRows + 30)[19:22])
	assert.Contains(t, g.row(0), "Score 42  Lives 3  Level 1: one")
}

func TestGlyphShowsEnemyState(t *testing.T) {
	chaser := &systems.DrawCommand{Kind: components.KindEnemy, Variant: int(components.BehaviorChaser)}
	r, _ := glyph(chaser, tcell.StyleDefault)
	assert.Equal(t, 'c', r)

	chaser.Flags |= systems.FlagStunned
	r, _ = glyph(chaser, tcell.StyleDefault)
	assert.Equal(t, 'x', r)
}
