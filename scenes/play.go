package scenes

import (
	"time"

	"github.com/automoto/runaway-hotdog/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayScene drives the session from wall time. P pauses.
type PlayScene struct {
	sceneChanger SceneChanger
	session      *game.Session
	log          *log.Logger

	last   time.Time
	paused bool
}

func NewPlayScene(sc SceneChanger, session *game.Session, logger *log.Logger) *PlayScene {
	return &PlayScene{sceneChanger: sc, session: session, log: logger}
}

func (ps *PlayScene) Update() {
	now := time.Now()
	elapsed := time.Duration(0)
	if !ps.last.IsZero() {
		elapsed = now.Sub(ps.last)
	}
	ps.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ps.paused = !ps.paused
		ps.log.Debug("pause", "paused", ps.paused)
	}
	if ps.paused {
		return
	}

	ps.session.SetInput(pollInput())
	ps.session.Advance(elapsed)

	if ps.session.State() == game.StateGameOver {
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.session, ps.log))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	drawFrame(screen, ps.session.Frame())
	if ps.paused {
		drawCentered(screen, "Paused", screen.Bounds().Dy()/2)
	}
}
