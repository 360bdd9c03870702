package systems

import (
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func collectOutcomes(w *world.World) *[]components.ProjectileOutcome {
	var got []components.ProjectileOutcome
	components.ProjectileEndedEvent.Subscribe(w.ECS, func(_ donburi.World, e components.ProjectileEndedEventData) {
		got = append(got, e.Outcome)
	})
	return &got
}

func TestProjectileEnemyHitBeatsBlockHit(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 205, 205, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 180)
	proj := factory.CreateProjectile(w, cfg.Ketchup, 200, 200, 1)
	outcomes := collectOutcomes(w)

	UpdateProjectile(w, proj, dt)
	events.ProcessAllEvents(w.ECS)

	assert.Equal(t, components.OutcomeEnemyHit, components.Projectile.Get(proj).Outcome)
	assert.True(t, components.Base.Get(proj).Destroyed)
	en := components.Enemy.Get(enemy)
	assert.True(t, en.Stunned)
	assert.Equal(t, cfg.Projectile.StunDuration, en.StunDuration)
	assert.Equal(t, []components.ProjectileOutcome{components.OutcomeEnemyHit}, *outcomes)
}

func TestProjectilePassesStunnedEnemy(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 205, 205, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 180)
	components.Enemy.Get(enemy).Stun(1)
	proj := factory.CreateProjectile(w, cfg.Mustard, 200, 200, 1)

	UpdateProjectile(w, proj, dt)

	assert.Equal(t, components.OutcomeBlockHit, components.Projectile.Get(proj).Outcome)
	assert.Equal(t, 1.0, components.Enemy.Get(enemy).StunDuration)
}

func TestProjectileExpires(t *testing.T) {
	w := world.New(2000, 600, 1)
	proj := factory.CreateProjectile(w, cfg.Relish, 100, 100, 1)
	outcomes := collectOutcomes(w)

	run(w, int(cfg.Projectile.Lifespan*60)-2)
	require.True(t, proj.Valid())
	assert.InDelta(t, 100+cfg.Projectile.Speed*(cfg.Projectile.Lifespan-2*dt), components.Object.Get(proj).X, 1e-6)

	run(w, 4)
	assert.False(t, proj.Valid())
	assert.Equal(t, []components.ProjectileOutcome{components.OutcomeExpired}, *outcomes)
}

func TestProjectileLeavesTrail(t *testing.T) {
	w := world.New(2000, 600, 1)
	factory.CreateProjectile(w, cfg.Ketchup, 100, 100, 1)

	run(w, 10)

	trail := 0
	for _, e := range w.Entries() {
		if components.Base.Get(e).Kind == components.KindEffect {
			assert.Equal(t, cfg.KetchupRed, components.Effect.Get(e).Color)
			trail++
		}
	}
	assert.Positive(t, trail)
}
