// Package terminal plays a session inside a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/automoto/runaway-hotdog/game"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

type Options struct {
	Frame  time.Duration // Redraw interval
	Logger *log.Logger
}

type Player struct {
	screen  tcell.Screen
	session *game.Session
	keys    *KeyState
	frame   time.Duration
	log     *log.Logger
	paused  bool
}

func NewPlayer(screen tcell.Screen, session *game.Session, opts Options) *Player {
	if opts.Frame <= 0 {
		opts.Frame = 16 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Player{
		screen:  screen,
		session: session,
		keys:    NewKeyState(HoldTimeout),
		frame:   opts.Frame,
		log:     opts.Logger.WithPrefix("terminal"),
	}
}

// Run opens the terminal screen and plays until quit or ctx is done.
func Run(ctx context.Context, session *game.Session, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return NewPlayer(screen, session, opts).Run(ctx)
}

// Run drives the session from wall time on an initialized screen.
func (p *Player) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			// PollEvent returns nil once the screen is finalized.
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(p.frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !p.handleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if !p.paused {
				p.session.SetInput(p.keys.Held(now))
				p.session.Advance(elapsed)
			}
			Draw(p.screen, p.session.Frame())
			p.screen.Show()
		}
	}
}

// handleEvent returns false when the player asked to quit.
func (p *Player) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				p.paused = !p.paused
				p.keys.Clear()
				return true
			case 'r':
				if p.session.State() == game.StateGameOver {
					if err := p.session.Restart(); err != nil {
						p.log.Error("restart", "err", err)
					}
					return true
				}
			}
		}
		if a, ok := ActionForKey(ev); ok {
			p.keys.Press(a, now)
		}

	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}
