package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems"
	"github.com/gdamore/tcell/v2"
)

// hudRows are reserved at the top of the terminal for the HUD.
const hudRows = 2

// Canvas is the part of tcell.Screen the renderer draws through.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var enemyRunes = map[components.Behavior]rune{
	components.BehaviorPatrol:  'p',
	components.BehaviorChaser:  'c',
	components.BehaviorStomper: 'S',
}

// Draw paints a frame, scaling the camera view onto the cells below the
// HUD rows.
func Draw(c Canvas, f systems.Frame) {
	cols, rows := c.Size()
	bg := tcell.StyleDefault.Background(rgb(f.Background))
	fill(c, 0, 0, cols, rows, ' ', bg)

	sx := float64(cols) / cfg.Screen.Width
	sy := float64(rows-hudRows) / cfg.Screen.Height

	for i := range f.Commands {
		cmd := &f.Commands[i]
		x0 := int(math.Floor(cmd.Rect.X * sx))
		y0 := int(math.Floor(cmd.Rect.Y*sy)) + hudRows
		if cmd.Text != "" {
			text(c, x0-len(cmd.Text)/2, y0, cmd.Text, bg.Foreground(rgb(cmd.Color)))
			continue
		}
		// Anything on screen covers at least one cell.
		x1 := max(x0+1, int(math.Ceil(cmd.Rect.Right()*sx)))
		y1 := max(y0+1, int(math.Ceil(cmd.Rect.Bottom()*sy))+hudRows)
		y0 = max(y0, hudRows)
		r, style := glyph(cmd, bg)
		fill(c, x0, y0, x1-x0, y1-y0, r, style)
	}

	hud := f.HUD
	top := tcell.StyleDefault.Reverse(true)
	fill(c, 0, 0, cols, hudRows, ' ', top)
	text(c, 1, 0, fmt.Sprintf("Score %d  Lives %d  Level %d: %s  [%s]",
		hud.Score, hud.Lives, hud.Level, hud.LevelName, hud.State), top)
	text(c, 1, 1, fmt.Sprintf("ketchup %d  mustard %d  relish %d",
		hud.Condiments[cfg.Ketchup], hud.Condiments[cfg.Mustard], hud.Condiments[cfg.Relish]), top)
	if hud.Banner != "" {
		text(c, (cols-len(hud.Banner))/2, hudRows+(rows-hudRows)/3, hud.Banner, bg.Bold(true))
	}
}

func glyph(cmd *systems.DrawCommand, bg tcell.Style) (rune, tcell.Style) {
	style := bg.Foreground(rgb(cmd.Color))
	switch cmd.Kind {
	case components.KindPlayer:
		if cmd.Flags.Has(systems.FlagInvulnerable) && cmd.Alpha < 1 {
			return '░', style
		}
		return '█', style
	case components.KindEnemy:
		if cmd.Flags.Has(systems.FlagStunned) {
			return 'x', style
		}
		return enemyRunes[components.Behavior(cmd.Variant)], style
	case components.KindProjectile:
		return '*', style
	case components.KindBlock:
		if components.BlockKind(cmd.Variant) == components.BlockBreakable {
			return '▒', style
		}
		return '▓', style
	case components.KindCoin:
		return '$', style
	case components.KindExit:
		return '⚑', style
	case components.KindEffect:
		if components.EffectKind(cmd.Variant) == components.EffectShadow {
			return '_', style
		}
		return '.', style
	}
	return '?', style
}

func fill(c Canvas, x, y, w, h int, r rune, style tcell.Style) {
	cols, rows := c.Size()
	for row := max(0, y); row < min(rows, y+h); row++ {
		for col := max(0, x); col < min(cols, x+w); col++ {
			c.SetContent(col, row, r, nil, style)
		}
	}
}

func text(c Canvas, x, y int, s string, style tcell.Style) {
	cols, rows := c.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, r := range s {
		if x >= 0 && x < cols {
			c.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
