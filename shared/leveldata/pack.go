package leveldata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var builtinPack []byte

type packFile struct {
	Levels []packLevel `yaml:"levels"`
}

type packLevel struct {
	Name       string   `yaml:"name"`
	Background string   `yaml:"background"`
	Gravity    float64  `yaml:"gravity"`
	Map        []string `yaml:"map"`
	TMX        string   `yaml:"tmx"` // Path to a Tiled map, relative to the pack
}

// ParsePack decodes a YAML level pack. Entries that reference a TMX file are
// resolved with resolveTMX; ASCII entries are parsed in place.
func ParsePack(data []byte, tileSize float64, resolveTMX func(path string) (*Level, error)) ([]*Level, error) {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse level pack: %w", err)
	}
	if len(pf.Levels) == 0 {
		return nil, fmt.Errorf("parse level pack: no levels")
	}

	levels := make([]*Level, 0, len(pf.Levels))
	for i, pl := range pf.Levels {
		name := pl.Name
		if name == "" {
			name = fmt.Sprintf("level-%d", i+1)
		}

		var (
			lvl *Level
			err error
		)
		switch {
		case pl.TMX != "":
			if resolveTMX == nil {
				return nil, fmt.Errorf("level %q: tmx levels are not supported here", name)
			}
			lvl, err = resolveTMX(pl.TMX)
		default:
			lvl, err = ParseMap(name, pl.Map, tileSize)
		}
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", name, err)
		}

		lvl.Name = name
		if pl.Gravity != 0 {
			lvl.Gravity = pl.Gravity
		}
		if pl.Background != "" {
			bg, err := ParseHexColor(pl.Background)
			if err != nil {
				return nil, fmt.Errorf("level %q: %w", name, err)
			}
			lvl.Background = bg
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// Builtin returns the embedded level pack.
func Builtin(tileSize float64) ([]*Level, error) {
	return ParsePack(builtinPack, tileSize, nil)
}

// LoadPackFile reads a level pack from disk. TMX references are resolved
// relative to the pack's directory.
func LoadPackFile(path string, tileSize float64) ([]*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level pack %s: %w", path, err)
	}
	fsys := os.DirFS(dirOf(path))
	return ParsePack(data, tileSize, func(tmx string) (*Level, error) {
		return LoadTMX(fsys, tmx)
	})
}
