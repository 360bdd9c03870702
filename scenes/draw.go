package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font cell size.
const (
	glyphWidth = 6
	lineHeight = 16
)

var (
	stunOutline = color.RGBA{R: 255, G: 255, B: 120, A: 255}
	flagPole    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func drawFrame(screen *ebiten.Image, f systems.Frame) {
	screen.Fill(f.Background)
	for i := range f.Commands {
		drawCommand(screen, &f.Commands[i])
	}
	drawHUD(screen, f.HUD)
}

func drawCommand(screen *ebiten.Image, c *systems.DrawCommand) {
	x, y := float32(c.Rect.X), float32(c.Rect.Y)
	w, h := float32(c.Rect.W), float32(c.Rect.H)
	clr := fade(c.Color, c.Alpha)

	switch c.Kind {
	case components.KindPlayer:
		vector.FillRect(screen, x, y, w, h, clr, false)
		// Sausage inside the bun, leaning the way the player faces.
		inset := w / 4
		offset := float32(c.Direction) * inset / 2
		vector.FillRect(screen, x+inset+offset, y+2, w-2*inset, h-4, fade(cfg.Sausage, c.Alpha), false)

	case components.KindExit:
		vector.FillRect(screen, x, y, 3, h, flagPole, false)
		vector.FillRect(screen, x+3, y, w-3, h/3, clr, false)

	case components.KindEffect:
		if c.Text != "" {
			ebitenutil.DebugPrintAt(screen, c.Text, int(x)-len(c.Text)*glyphWidth/2, int(y))
			return
		}
		vector.FillRect(screen, x, y, w, h, clr, true)

	case components.KindEnemy:
		if c.Flags.Has(systems.FlagPreparing) {
			// Squat while winding up.
			y += h / 4
			h -= h / 4
		}
		vector.FillRect(screen, x, y, w, h, clr, false)
		if c.Flags.Has(systems.FlagStunned) {
			vector.StrokeRect(screen, x, y, w, h, 2, stunOutline, false)
		}

	case components.KindBlock:
		vector.FillRect(screen, x, y, w, h, clr, false)
		vector.StrokeRect(screen, x, y, w, h, 1, color.Black, false)

	default:
		vector.FillRect(screen, x, y, w, h, clr, true)
	}
}

func drawHUD(screen *ebiten.Image, hud systems.HUD) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Lives: %d  Level %d: %s",
		hud.Score, hud.Lives, hud.Level, hud.LevelName), 8, 4)

	var b strings.Builder
	for k := cfg.CondimentKind(0); k < cfg.CondimentCount; k++ {
		if k > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s: %d", k, hud.Condiments[k])
		if hud.Cooldowns[k] > 0 {
			fmt.Fprintf(&b, " (%.1fs)", hud.Cooldowns[k])
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 8, 4+lineHeight)

	if hud.Banner != "" {
		drawCentered(screen, hud.Banner, screen.Bounds().Dy()/3)
	}
}

func drawCentered(screen *ebiten.Image, text string, y int) {
	x := (screen.Bounds().Dx() - len(text)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = max(0, min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
