package game

import (
	"fmt"
	"sort"

	cfg "github.com/automoto/runaway-hotdog/config"
	"gopkg.in/yaml.v3"
)

// ScriptStep holds a set of actions from At seconds until the next step.
type ScriptStep struct {
	At   float64  `yaml:"at"`
	Hold []string `yaml:"hold"`

	held [cfg.ActionCount]bool
}

// Script is a timeline of held actions for unattended runs. Steps are kept
// sorted by time.
type Script []ScriptStep

// ParseScript decodes a YAML list of steps:
//
//	- at: 0
//	  hold: [right]
//	- at: 1.5
//	  hold: [right, jump]
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i := range s {
		if s[i].At < 0 {
			return nil, fmt.Errorf("script step %d: negative time %v", i, s[i].At)
		}
		held, err := ParseActions(s[i].Hold)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
		s[i].held = held
	}
	sort.SliceStable(s, func(i, j int) bool { return s[i].At < s[j].At })
	return s, nil
}

// HoldScript is a script that holds the same actions for the whole run.
func HoldScript(actions []string) (Script, error) {
	held, err := ParseActions(actions)
	if err != nil {
		return nil, err
	}
	return Script{{Hold: actions, held: held}}, nil
}

// ParseActions turns action names into a held-state array.
func ParseActions(names []string) ([cfg.ActionCount]bool, error) {
	var held [cfg.ActionCount]bool
	for _, name := range names {
		a, ok := cfg.ParseAction(name)
		if !ok {
			return held, fmt.Errorf("unknown action %q", name)
		}
		held[a] = true
	}
	return held, nil
}

// InputAt returns the actions held at t seconds.
func (s Script) InputAt(t float64) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	for _, step := range s {
		if step.At > t {
			break
		}
		held = step.held
	}
	return held
}

// Simulate steps the session tick by tick for the given number of seconds
// of game time, feeding input from the script. It stops early at game over
// and returns the ticks run.
func Simulate(s *Session, script Script, seconds float64) int {
	ticks := int(seconds * float64(cfg.Loop.TickRate))
	for i := 0; i < ticks; i++ {
		if s.State() == StateGameOver {
			return i
		}
		s.SetInput(script.InputAt(float64(i) * cfg.StepSeconds()))
		s.Step()
	}
	return ticks
}
