package components

import (
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/yohamta/donburi"
)

// InputData is the pressed state of every action, written by the frontend
// before each tick.
type InputData struct {
	Current [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

func (i *InputData) Held(a cfg.ActionID) bool {
	return i.Current[a]
}
