package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/runaway-hotdog/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScene displays the final score until Enter starts a new game.
type GameOverScene struct {
	sceneChanger SceneChanger
	session      *game.Session
	log          *log.Logger
	lines        []string
}

func NewGameOverScene(sc SceneChanger, session *game.Session, logger *log.Logger) *GameOverScene {
	st := session.Stats()
	return &GameOverScene{
		sceneChanger: sc,
		session:      session,
		log:          logger,
		lines: []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Final score: %d", session.Score()),
			fmt.Sprintf("Levels cleared: %d", st.LevelsCleared),
			fmt.Sprintf("Enemies stomped: %d", st.Stomps),
			fmt.Sprintf("Blocks broken: %d", st.BlocksBroken),
			"",
			"Press Enter to play again",
		},
	}
}

func (gs *GameOverScene) Update() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if err := gs.session.Restart(); err != nil {
		gs.log.Error("restart", "err", err)
		return
	}
	gs.sceneChanger.ChangeScene(NewPlayScene(gs.sceneChanger, gs.session, gs.log))
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	y := screen.Bounds().Dy()/2 - len(gs.lines)*lineHeight/2
	for _, line := range gs.lines {
		drawCentered(screen, line, y)
		y += lineHeight
	}
}
