package components

import "github.com/yohamta/donburi"

// GameData is the per-world score and outcome record.
type GameData struct {
	Score         int
	LevelComplete bool
	GameOver      bool
	Elapsed       float64
}

var Game = donburi.NewComponentType[GameData]()
