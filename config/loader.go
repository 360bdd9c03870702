package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable globals. Decoding into pointers to the live
// values means keys absent from the file keep their defaults.
type overrides struct {
	Loop       *LoopConfig       `yaml:"loop"`
	Screen     *ScreenConfig     `yaml:"screen"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Pickup     *PickupConfig     `yaml:"pickup"`
	Effects    *EffectsConfig    `yaml:"effects"`
	Level      *LevelConfig      `yaml:"level"`
}

// ApplyOverrides overlays YAML-encoded tuning values onto the package
// defaults. It must be called before any world is built.
func ApplyOverrides(data []byte) error {
	o := overrides{
		Loop:       &Loop,
		Screen:     &Screen,
		Physics:    &Physics,
		Player:     &Player,
		Enemy:      &Enemy,
		Projectile: &Projectile,
		Pickup:     &Pickup,
		Effects:    &Effects,
		Level:      &Level,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}
	return Validate()
}

// LoadOverrides reads a YAML file and applies it with ApplyOverrides.
// An empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Validate checks invariants the simulation relies on.
func Validate() error {
	if Loop.TickRate <= 0 {
		return fmt.Errorf("loop.tick_rate must be positive, got %d", Loop.TickRate)
	}
	if Loop.MaxFrame <= 0 {
		return fmt.Errorf("loop.max_frame must be positive, got %s", Loop.MaxFrame)
	}
	if Player.RespawnInvulnDuration <= Player.InvulnDuration {
		return fmt.Errorf("player.respawn_invuln_duration (%v) must exceed player.invuln_duration (%v)",
			Player.RespawnInvulnDuration, Player.InvulnDuration)
	}
	if Player.CondimentCap < 0 || Player.StartCondiment > Player.CondimentCap {
		return fmt.Errorf("player.start_condiment (%d) exceeds player.condiment_cap (%d)",
			Player.StartCondiment, Player.CondimentCap)
	}
	if Level.BlockSize <= 0 {
		return fmt.Errorf("level.block_size must be positive, got %v", Level.BlockSize)
	}
	return nil
}
