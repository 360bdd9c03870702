package leveldata

import (
	"fmt"
	"image/color"
	"strings"
)

// Tile legend for ASCII maps.
const (
	TileBrick     = '#'
	TileBreakable = 'B'
	TileCoin      = 'C'
	TilePlayer    = 'P'
	TilePatrol    = 'E'
	TileChaser    = 'H'
	TileStomper   = 'G'
	TileExit      = '!'
)

var tileKinds = map[rune]PlacementKind{
	TileBrick:     PlaceBlock,
	TileBreakable: PlaceBreakable,
	TileCoin:      PlaceCoin,
	TilePatrol:    PlacePatrol,
	TileChaser:    PlaceChaser,
	TileStomper:   PlaceStomper,
	TileExit:      PlaceExit,
}

// ParseMap converts rows of tile characters into a Level. The level width
// comes from the first row; characters past it are ignored and short rows
// are treated as empty space. Unknown characters are empty space.
func ParseMap(name string, rows []string, tileSize float64) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse map %q: %w", name, ErrEmptyMap)
	}
	cols := len(rows[0])

	lvl := &Level{
		Name:     name,
		Width:    float64(cols) * tileSize,
		Height:   float64(len(rows)) * tileSize,
		TileSize: tileSize,
	}

	foundStart := false
	for r, row := range rows {
		row = strings.TrimRight(row, "\r")
		for c, ch := range []rune(row) {
			if c >= cols {
				break
			}
			x, y := float64(c)*tileSize, float64(r)*tileSize
			if ch == TilePlayer {
				lvl.PlayerStart = Point{X: x, Y: y}
				foundStart = true
				continue
			}
			if kind, ok := tileKinds[ch]; ok {
				lvl.Placements = append(lvl.Placements, Placement{Kind: kind, X: x, Y: y})
			}
		}
	}

	if !foundStart {
		return nil, fmt.Errorf("parse map %q: %w", name, ErrNoPlayerStart)
	}
	return lvl, nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
