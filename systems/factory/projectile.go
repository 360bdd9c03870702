package factory

import (
	"github.com/automoto/runaway-hotdog/archetypes"
	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a condiment glob with its top-left corner at
// (x, y) travelling horizontally in direction.
func CreateProjectile(w *world.World, kind cfg.CondimentKind, x, y, direction float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w.ECS)

	obj := resolv.NewObject(x, y, cfg.Projectile.Width, cfg.Projectile.Height)
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	components.Base.SetValue(p, components.BaseData{
		Kind:   components.KindProjectile,
		Active: true,
		ZIndex: cfg.Projectile.ZIndex,
	})
	components.Physics.SetValue(p, components.PhysicsData{
		SpeedX: cfg.Projectile.Speed * direction,
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Condiment:    kind,
		Direction:    direction,
		Lifespan:     cfg.Projectile.Lifespan,
		StunDuration: cfg.Projectile.StunDuration,
	})

	w.Add(p)
	return p
}
