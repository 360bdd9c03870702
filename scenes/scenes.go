// Package scenes is the desktop frontend. It polls the keyboard and
// gamepads, feeds a game.Session, and paints its frames with ebiten.
package scenes

import (
	"fmt"

	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type SceneChanger interface {
	ChangeScene(scene Scene)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

func NewGame(session *game.Session, logger *log.Logger) *Game {
	g := &Game{}
	g.scene = NewPlayScene(g, session, logger)
	return g
}

func (g *Game) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(cfg.Screen.Width), int(cfg.Screen.Height)
}

// Run opens a window and blocks until it is closed.
func Run(session *game.Session, logger *log.Logger, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(cfg.Screen.Width*scale), int(cfg.Screen.Height*scale))
	ebiten.SetWindowTitle("Runaway Hotdog")
	ebiten.SetTPS(cfg.Loop.TickRate)

	if err := ebiten.RunGame(NewGame(session, logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
