package systems

import (
	"math"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// UpdateProjectile moves a condiment glob and ends it on the first of:
// running out of lifespan, hitting an enemy that is not already stunned,
// or hitting a block.
func UpdateProjectile(w *world.World, e *donburi.Entry, dt float64) {
	pd := components.Projectile.Get(e)
	phys := components.Physics.Get(e)
	obj := components.Object.Get(e)

	obj.X += phys.SpeedX * dt
	obj.Y += phys.SpeedY * dt
	obj.Update()

	pd.Age += dt
	if pd.Age >= pd.Lifespan {
		endProjectile(w, e, components.OutcomeExpired)
		return
	}

	r := obj.Rect()
	clr := cfg.Projectile.Colors[pd.Condiment]

	pd.TrailTimer += dt
	if pd.TrailTimer >= cfg.Projectile.TrailInterval {
		pd.TrailTimer = 0
		factory.SpawnParticle(w, r.CenterX(), r.CenterY(), factory.ParticleSpec{
			Size:     3 + w.Rand.Float64()*3,
			Speed:    cfg.Effects.TrailSpeed,
			Angle:    w.Rand.Float64() * 2 * math.Pi,
			Lifetime: cfg.Effects.TrailLifetime,
			Gravity:  cfg.Effects.TrailGravity,
			Color:    clr,
		})
	}

	for _, enemy := range w.Query(r, tags.ResolvEnemy) {
		if components.Enemy.Get(enemy).Stunned {
			continue
		}
		StunEnemy(w, enemy, pd.StunDuration)
		factory.SpawnBurst(w, r.CenterX(), r.CenterY(), cfg.Effects.EnemySplat, clr)
		endProjectile(w, e, components.OutcomeEnemyHit)
		return
	}

	if len(w.Query(r, tags.ResolvBlock)) > 0 {
		factory.SpawnBurst(w, r.CenterX(), r.CenterY(), cfg.Effects.BlockSplat, clr)
		endProjectile(w, e, components.OutcomeBlockHit)
	}
}

func endProjectile(w *world.World, e *donburi.Entry, outcome components.ProjectileOutcome) {
	pd := components.Projectile.Get(e)
	if pd.Outcome != components.OutcomeNone {
		return
	}
	pd.Outcome = outcome
	w.Destroy(e)
	components.ProjectileEndedEvent.Publish(w.ECS, components.ProjectileEndedEventData{
		Condiment: pd.Condiment,
		Outcome:   outcome,
	})
}
