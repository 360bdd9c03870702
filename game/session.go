// Package game runs a play session: it owns the current level's world,
// advances it through the fixed-step loop, and moves between levels.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/engine"
	"github.com/automoto/runaway-hotdog/shared/leveldata"
	"github.com/automoto/runaway-hotdog/systems"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

var ErrNoLevels = errors.New("no levels to play")

type State int

const (
	StatePlaying State = iota
	StateTransition // Level complete, waiting to load the next one
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateTransition:
		return "level complete"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Stats counts what happened over the whole session.
type Stats struct {
	Ticks          uint64
	LevelsCleared  int
	Stomps         int
	EnemiesStunned int
	BlocksBroken   int
	CoinsCollected int
	Throws         int
	Hits           int // Lives lost
	Outcomes       map[components.ProjectileOutcome]int
}

type Options struct {
	Levels     []*leveldata.Level
	StartLevel int
	Seed       int64
	Logger     *log.Logger
}

type Session struct {
	levels []*leveldata.Level
	start  int
	seed   int64
	log    *log.Logger

	index int
	w     *world.World
	loop  *engine.Loop
	input [cfg.ActionCount]bool

	state          State
	transitionLeft int
	banner         string
	bannerLeft     int

	stats Stats
	frame systems.Frame
	drawn bool
}

// NewSession loads the starting level. StartLevel wraps around the level
// count.
func NewSession(opts Options) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		levels: opts.Levels,
		start:  opts.StartLevel,
		seed:   opts.Seed,
		log:    logger.WithPrefix("session"),
	}
	s.loop = engine.NewLoop(s.tick, s.render)
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart begins a new game from the starting level with a zero score.
func (s *Session) Restart() error {
	return s.reset()
}

func (s *Session) reset() error {
	s.stats = Stats{Outcomes: map[components.ProjectileOutcome]int{}}
	s.state = StatePlaying
	s.loop.Reset()
	return s.loadLevel(s.start, 0)
}

func (s *Session) loadLevel(index, score int) error {
	index = wrap(index, len(s.levels))
	lvl := s.levels[index]

	// Each level gets its own stream derived from the session seed.
	w, err := factory.BuildLevel(lvl, s.seed+int64(index))
	if err != nil {
		return fmt.Errorf("load level %d: %w", index+1, err)
	}
	w.Game().Score = score

	s.index = index
	s.w = w
	s.state = StatePlaying
	s.transitionLeft = 0
	s.showBanner(fmt.Sprintf("Level %d", index+1))
	s.subscribe(w)
	s.drawn = false

	c := systems.TakeCensus(w)
	s.log.Info("level loaded", "level", index+1, "name", lvl.Name,
		"entities", w.Len(), "enemies", c.Enemies, "blocks", c.Blocks, "coins", c.Coins)
	return nil
}

func (s *Session) subscribe(w *world.World) {
	components.LevelCompleteEvent.Subscribe(w.ECS, func(_ donburi.World, e components.LevelCompleteEventData) {
		if s.state != StatePlaying {
			return
		}
		s.state = StateTransition
		s.transitionLeft = int(cfg.Level.CompleteDelay * float64(cfg.Loop.TickRate))
		s.stats.LevelsCleared++
		s.showBanner("Level Complete!")
		s.log.Info("level complete", "level", s.index+1, "score", e.Score)
	})
	components.GameOverEvent.Subscribe(w.ECS, func(_ donburi.World, e components.GameOverEventData) {
		s.state = StateGameOver
		s.showBanner("Game Over")
		s.log.Info("game over", "level", s.index+1, "score", e.Score)
	})
	components.PlayerDamagedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.PlayerDamagedEventData) {
		s.stats.Hits++
		s.log.Info("player hit", "lives", e.LivesLeft)
	})
	components.PlayerRespawnedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.PlayerRespawnedEventData) {
		s.log.Debug("player respawned", "x", e.X, "y", e.Y)
	})
	components.StompEvent.Subscribe(w.ECS, func(_ donburi.World, e components.StompEventData) {
		s.stats.Stomps++
		s.log.Debug("stomp", "enemy", e.Behavior, "stunned", e.Stunned)
	})
	components.EnemyStunnedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.EnemyStunnedEventData) {
		s.stats.EnemiesStunned++
		s.log.Debug("enemy stunned", "enemy", e.Behavior, "seconds", e.Duration)
	})
	components.BlockBrokenEvent.Subscribe(w.ECS, func(_ donburi.World, e components.BlockBrokenEventData) {
		s.stats.BlocksBroken++
		s.log.Debug("block broken", "x", e.X, "y", e.Y, "coin", e.DroppedCoin)
	})
	components.CoinCollectedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.CoinCollectedEventData) {
		s.stats.CoinsCollected++
		s.log.Debug("coin", "value", e.Value, "condiment", e.Condiment, "refilled", e.Refilled)
	})
	components.ProjectileThrownEvent.Subscribe(w.ECS, func(donburi.World, components.ProjectileThrownEventData) {
		s.stats.Throws++
	})
	components.ProjectileEndedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.ProjectileEndedEventData) {
		s.stats.Outcomes[e.Outcome]++
		s.log.Debug("projectile ended", "condiment", e.Condiment, "outcome", e.Outcome)
	})
}

// SetInput replaces the held state of every action. It applies from the
// next tick on.
func (s *Session) SetInput(in [cfg.ActionCount]bool) {
	s.input = in
}

// Advance feeds elapsed wall time into the fixed-step loop and returns the
// number of ticks run.
func (s *Session) Advance(elapsed time.Duration) int {
	return s.loop.Advance(elapsed)
}

// Run advances the session in real time, one frame every frame interval,
// until ctx is done. Input is whatever SetInput last supplied.
func (s *Session) Run(ctx context.Context, frame time.Duration) {
	s.loop.Run(ctx, frame)
}

// Step runs exactly one tick, bypassing the accumulator.
func (s *Session) Step() {
	s.tick(cfg.StepSeconds())
	s.render()
}

func (s *Session) tick(dt float64) {
	switch s.state {
	case StateGameOver:
		return
	case StateTransition:
		s.transitionLeft--
		if s.transitionLeft <= 0 {
			if err := s.loadLevel(s.index+1, s.w.Game().Score); err != nil {
				s.log.Error("next level", "err", err)
				s.state = StateGameOver
			}
			return
		}
	}

	s.w.Input().Current = s.input
	systems.Tick(s.w, dt)
	s.stats.Ticks++

	if s.bannerLeft > 0 {
		s.bannerLeft--
		if s.bannerLeft == 0 {
			s.banner = ""
		}
	}
}

func (s *Session) render() {
	s.frame.Background = s.Level().Background
	if s.frame.Background.A == 0 {
		s.frame.Background = cfg.Level.DefaultBGColor
	}
	s.frame.Commands = systems.BuildDrawList(s.w, s.frame.Commands[:0])
	s.frame.HUD = s.HUD()
	s.drawn = true
}

// Frame returns the latest rendered frame. The command slice is reused by
// the next render.
func (s *Session) Frame() systems.Frame {
	if !s.drawn {
		s.render()
	}
	return s.frame
}

func (s *Session) HUD() systems.HUD {
	hud := systems.BuildHUD(s.w)
	hud.Level = s.index + 1
	hud.LevelName = s.Level().Name
	hud.State = s.state.String()
	hud.Banner = s.banner
	return hud
}

func (s *Session) showBanner(text string) {
	s.banner = text
	s.bannerLeft = int(cfg.Level.CompleteDelay * float64(cfg.Loop.TickRate))
}

func (s *Session) State() State { return s.state }

func (s *Session) World() *world.World { return s.w }

func (s *Session) Level() *leveldata.Level { return s.levels[s.index] }

func (s *Session) LevelIndex() int { return s.index }

func (s *Session) Score() int { return s.w.Game().Score }

func (s *Session) Stats() Stats { return s.stats }

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
