// Package leveldata describes levels as plain data: tile placements, the
// player start and per-level physics. It has no dependencies on donburi or
// resolv so loaders can be tested in isolation.
package leveldata

import (
	"errors"
	"image/color"
)

var (
	ErrEmptyMap      = errors.New("level map is empty")
	ErrNoPlayerStart = errors.New("level has no player start")
)

// PlacementKind identifies what a map cell spawns.
type PlacementKind int

const (
	PlaceBlock PlacementKind = iota
	PlaceBreakable
	PlaceCoin
	PlacePatrol
	PlaceChaser
	PlaceStomper
	PlaceExit
)

func (k PlacementKind) String() string {
	switch k {
	case PlaceBlock:
		return "block"
	case PlaceBreakable:
		return "breakable"
	case PlaceCoin:
		return "coin"
	case PlacePatrol:
		return "patrol"
	case PlaceChaser:
		return "chaser"
	case PlaceStomper:
		return "stomper"
	case PlaceExit:
		return "exit"
	}
	return "unknown"
}

// Placement is a single spawn at a tile's top-left corner.
type Placement struct {
	Kind PlacementKind
	X, Y float64
}

type Point struct {
	X, Y float64
}

// Level is a fully parsed level, ready to be built into a world.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	TileSize    float64
	PlayerStart Point
	Placements  []Placement // In map scan order: row-major, top to bottom
	Gravity     float64     // Per frame² at 60 Hz, 0 means the default
	Background  color.RGBA
}

// Count returns how many placements of kind the level holds.
func (l *Level) Count(kind PlacementKind) int {
	n := 0
	for _, p := range l.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
