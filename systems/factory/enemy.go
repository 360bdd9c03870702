package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var ErrUnknownEnemy = errors.New("unknown enemy behavior")

// CreateEnemy spawns a hungry human with the given behavior at a tile's
// top-left corner. Enemies start facing right and fall onto the floor below.
func CreateEnemy(w *world.World, behavior components.Behavior, x, y float64) (*donburi.Entry, error) {
	var tc cfg.EnemyTypeConfig
	switch behavior {
	case components.BehaviorPatrol:
		tc = cfg.Enemy.Patrol
	case components.BehaviorChaser:
		tc = cfg.Enemy.Chaser.EnemyTypeConfig
	case components.BehaviorStomper:
		tc = cfg.Enemy.Stomper.EnemyTypeConfig
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEnemy, behavior)
	}

	enemy := archetypes.Enemy.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, tc.Width, tc.Height, tags.ResolvEnemy, tags.ResolvSolid)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Base.SetValue(enemy, components.BaseData{
		Kind:   components.KindEnemy,
		Active: true,
		Solid:  true,
		ZIndex: cfg.Enemy.ZIndex,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity: cfg.Enemy.Gravity,
	})

	ed := components.EnemyData{
		Behavior:       behavior,
		Speed:          tc.Speed,
		Direction:      1,
		PatrolAnchor:   x,
		PatrolDistance: tc.PatrolDistance,
	}
	switch behavior {
	case components.BehaviorChaser:
		c := cfg.Enemy.Chaser
		ed.Chaser = components.ChaserState{
			DetectionRange:  c.DetectionRange,
			ChaseMultiplier: c.ChaseMultiplier,
			HopSpeed:        c.HopSpeed,
			LookAhead:       c.LookAhead,
		}
	case components.BehaviorStomper:
		s := cfg.Enemy.Stomper
		ed.Stomper = components.StomperState{
			DetectionRange: s.DetectionRange,
			JumpPower:      s.JumpPower,
			JumpDelay:      s.JumpDelay,
			JumpCooldown:   s.JumpCooldown,
			TimeToTarget:   s.TimeToTarget,
			MaxLaunchSpeed: s.MaxLaunchSpeed,
			AirDamping:     s.AirDamping,
			StunChance:     s.StunChance,
			ShadowChance:   s.ShadowChance,
		}
	}
	components.Enemy.SetValue(enemy, ed)

	w.Add(enemy)
	return enemy, nil
}
