package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX conventions: a tile layer named "tiles" holds solid blocks, with the
// tileset tile property "kind" set to "breakable" for breakable ones. An
// object group named "entities" holds spawns, identified by object name:
// player, coin, patrol, chaser, stomper or exit. Gravity and background
// come from the level pack entry that references the map.
const (
	tmxTileLayer   = "tiles"
	tmxEntityGroup = "entities"
)

var tmxObjectKinds = map[string]PlacementKind{
	"coin":    PlaceCoin,
	"patrol":  PlacePatrol,
	"chaser":  PlaceChaser,
	"stomper": PlaceStomper,
	"exit":    PlaceExit,
}

// LoadTMX parses a Tiled map. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width == 0 || levelMap.Height == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrEmptyMap)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	lvl := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: tileW,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				kind := PlaceBlock
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if tilesetTile.Properties.GetString("kind") == "breakable" {
						kind = PlaceBreakable
					}
				}
				lvl.Placements = append(lvl.Placements, Placement{
					Kind: kind,
					X:    float64(x) * tileW,
					Y:    float64(y) * tileH,
				})
			}
		}
		break
	}

	foundStart := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxEntityGroup {
			continue
		}
		for _, o := range og.Objects {
			name := strings.ToLower(o.Name)
			if name == "player" {
				lvl.PlayerStart = Point{X: o.X, Y: o.Y}
				foundStart = true
				continue
			}
			kind, ok := tmxObjectKinds[name]
			if !ok {
				continue
			}
			lvl.Placements = append(lvl.Placements, Placement{Kind: kind, X: o.X, Y: o.Y})
		}
	}

	if !foundStart {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerStart)
	}
	return lvl, nil
}

// LoadTMXDir loads every .tmx file in dir, sorted by name.
func LoadTMXDir(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := "*.tmx"
	if dir != "" && dir != "." {
		pattern = dir + "/" + pattern
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		lvl, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func dirOf(path string) string {
	return filepath.Dir(path)
}
