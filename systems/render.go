package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// DrawFlags carry per-entity state a frontend may want to show.
type DrawFlags uint8

const (
	FlagStunned DrawFlags = 1 << iota
	FlagChasing
	FlagPreparing
	FlagInvulnerable
)

func (f DrawFlags) Has(flag DrawFlags) bool {
	return f&flag != 0
}

// DrawCommand is one shape to draw, already in screen coordinates.
type DrawCommand struct {
	Kind components.Kind
	// Variant refines Kind: the enemy behavior, block kind, condiment or
	// effect kind.
	Variant   int
	Flags     DrawFlags
	Rect      gamemath.Rect
	Color     color.RGBA
	Alpha     float64
	Direction float64
	Text      string
	Z         int

	seq uint64
}

// HUD is a snapshot of the player-facing counters.
type HUD struct {
	Score      int
	Lives      int
	Condiments [cfg.CondimentCount]int
	Cooldowns  [cfg.CondimentCount]float64
	Level      int
	LevelName  string
	State      string
	Banner     string // Centered message such as "Level 2", empty when none
}

// Frame is everything a frontend needs to present one rendered frame.
type Frame struct {
	Background color.RGBA
	Commands   []DrawCommand
	HUD        HUD
}

// BuildDrawList appends a command for every live entity that overlaps the
// camera view, sorted by z-index with insertion order breaking ties.
func BuildDrawList(w *world.World, dst []DrawCommand) []DrawCommand {
	cam := w.Camera()
	view := gamemath.Rect{X: cam.Position.X, Y: cam.Position.Y, W: cam.Width, H: cam.Height}

	start := len(dst)
	for _, e := range w.Entries() {
		base := components.Base.Get(e)
		if !base.Alive() {
			continue
		}
		r := components.Object.Get(e).Rect()
		// Popups have no size; they are placed by their anchor.
		if base.Kind == components.KindEffect && r.W == 0 {
			if !view.ContainsPoint(r.X, r.Y) {
				continue
			}
		} else if !gamemath.Overlaps(r, view) {
			continue
		}

		cmd := describe(e, base)
		cmd.Rect = gamemath.Rect{X: r.X - view.X, Y: r.Y - view.Y, W: r.W, H: r.H}
		cmd.Z = base.ZIndex
		cmd.seq = base.Seq
		dst = append(dst, cmd)
	}

	cmds := dst[start:]
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].Z != cmds[j].Z {
			return cmds[i].Z < cmds[j].Z
		}
		return cmds[i].seq < cmds[j].seq
	})
	return dst
}

func describe(e *donburi.Entry, base *components.BaseData) DrawCommand {
	cmd := DrawCommand{Kind: base.Kind, Alpha: 1}

	switch base.Kind {
	case components.KindPlayer:
		p := components.Player.Get(e)
		cmd.Color = cfg.HotdogBun
		cmd.Direction = p.Direction
		if p.Invulnerable {
			cmd.Flags |= FlagInvulnerable
			if int(math.Floor(p.InvulnTime/cfg.Player.FlashInterval))%2 == 0 {
				cmd.Alpha = 0.5
			}
		}

	case components.KindEnemy:
		en := components.Enemy.Get(e)
		cmd.Variant = int(en.Behavior)
		cmd.Direction = en.Direction
		switch en.Behavior {
		case components.BehaviorChaser:
			cmd.Color = cfg.HumanPink
			if en.Chaser.Chasing {
				cmd.Flags |= FlagChasing
				cmd.Color = cfg.HungryRed
			}
		case components.BehaviorStomper:
			cmd.Color = cfg.StomperBrown
			if en.Stomper.Preparing {
				cmd.Flags |= FlagPreparing
			}
		default:
			cmd.Color = cfg.HumanPink
		}
		if en.Stunned {
			cmd.Flags |= FlagStunned
		}

	case components.KindProjectile:
		pd := components.Projectile.Get(e)
		cmd.Variant = int(pd.Condiment)
		cmd.Color = cfg.Projectile.Colors[pd.Condiment]
		cmd.Direction = pd.Direction

	case components.KindBlock:
		kind := components.Block.Get(e).Kind
		cmd.Variant = int(kind)
		cmd.Color = cfg.Level.BrickColor
		if kind == components.BlockBreakable {
			cmd.Color = cfg.Level.BreakableColor
		}

	case components.KindCoin:
		cmd.Color = cfg.CoinGold

	case components.KindExit:
		cmd.Color = cfg.FlagRed

	case components.KindEffect:
		fx := components.Effect.Get(e)
		cmd.Variant = int(fx.Kind)
		cmd.Color = fx.Color
		cmd.Alpha = fx.Alpha
		cmd.Text = fx.Text
	}
	return cmd
}

// BuildHUD snapshots the world's player-facing counters. Level and state
// are left for the caller.
func BuildHUD(w *world.World) HUD {
	hud := HUD{Score: w.Game().Score}
	player, ok := w.Player()
	if !ok {
		return hud
	}
	p := components.Player.Get(player)
	hud.Lives = p.Lives
	hud.Condiments = p.Condiments
	for k, cd := range p.Cooldowns {
		hud.Cooldowns[k] = max(0, cd)
	}
	return hud
}
