package factory

import (
	"fmt"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/leveldata"
	"github.com/automoto/runaway-hotdog/world"
)

var enemyPlacements = map[leveldata.PlacementKind]components.Behavior{
	leveldata.PlacePatrol:  components.BehaviorPatrol,
	leveldata.PlaceChaser:  components.BehaviorChaser,
	leveldata.PlaceStomper: components.BehaviorStomper,
}

// BuildLevel creates a world populated from lvl. Entities are added in map
// scan order and the player last, so the player updates after everything
// else in each tick.
func BuildLevel(lvl *leveldata.Level, seed int64) (*world.World, error) {
	w := world.New(lvl.Width, lvl.Height, seed)

	cam := w.Camera()
	cam.Width, cam.Height = cfg.Screen.Width, cfg.Screen.Height

	tile := lvl.TileSize
	if tile <= 0 {
		tile = cfg.Level.BlockSize
	}

	for _, p := range lvl.Placements {
		switch p.Kind {
		case leveldata.PlaceBlock:
			CreateBlock(w, components.BlockFixed, p.X, p.Y, tile, tile)
		case leveldata.PlaceBreakable:
			CreateBlock(w, components.BlockBreakable, p.X, p.Y, tile, tile)
		case leveldata.PlaceCoin:
			CreateCoin(w, p.X, p.Y)
		case leveldata.PlaceExit:
			CreateExit(w, p.X, p.Y)
		default:
			behavior, ok := enemyPlacements[p.Kind]
			if !ok {
				return nil, fmt.Errorf("build level %q: unknown placement %v", lvl.Name, p.Kind)
			}
			if _, err := CreateEnemy(w, behavior, p.X, p.Y); err != nil {
				return nil, fmt.Errorf("build level %q: %w", lvl.Name, err)
			}
		}
	}

	player := CreatePlayer(w, lvl.PlayerStart.X, lvl.PlayerStart.Y)
	components.Physics.Get(player).Gravity = LevelGravity(lvl)

	return w, nil
}

// LevelGravity converts a level's authored gravity to units/s².
func LevelGravity(lvl *leveldata.Level) float64 {
	g := lvl.Gravity
	if g == 0 {
		g = cfg.Physics.DefaultGravity
	}
	return g * cfg.Physics.GravityScale
}
