package systems

import (
	"math"
	"testing"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStompVersusDamage(t *testing.T) {
	tests := []struct {
		name       string
		speedY     float64
		wantStun   bool
		wantLives  int
		wantScore  int
		wantSpeedY float64
	}{
		{
			name:       "falling player stomps",
			speedY:     50,
			wantStun:   true,
			wantLives:  cfg.Player.StartingLives,
			wantScore:  cfg.Enemy.StompScore,
			wantSpeedY: -cfg.Player.JumpForce * cfg.Player.StompBounce,
		},
		{
			name:       "rising player is hurt",
			speedY:     -50,
			wantStun:   false,
			wantLives:  cfg.Player.StartingLives - 1,
			wantScore:  0,
			wantSpeedY: -cfg.Player.JumpForce * cfg.Player.DamageKnockbackUp,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 200)
			p := weightlessPlayer(w, 190, 185)
			components.Physics.Get(p).SpeedY = tt.speedY

			checkPlayerContact(w, enemy)

			en := components.Enemy.Get(enemy)
			assert.Equal(t, tt.wantStun, en.Stunned)
			assert.Equal(t, tt.wantLives, components.Player.Get(p).Lives)
			assert.Equal(t, tt.wantScore, w.Game().Score)
			assert.Equal(t, tt.wantSpeedY, components.Physics.Get(p).SpeedY)
		})
	}
}

func TestDamageKnocksPlayerAwayFromEnemy(t *testing.T) {
	w := newWorld(t)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 200)
	p := weightlessPlayer(w, 170, 230)

	checkPlayerContact(w, enemy)

	pd := components.Player.Get(p)
	assert.Equal(t, -cfg.Player.JumpForce*cfg.Player.DamageKnockbackSide, components.Physics.Get(p).SpeedX)
	assert.Equal(t, cfg.Player.KnockbackLock, pd.KnockbackTimer)

	// Input is ignored while the knockback lock holds.
	press(w, cfg.ActionMoveRight)
	handleInput(w, p)
	assert.Less(t, components.Physics.Get(p).SpeedX, 0.0)
}

func TestInvulnerablePlayerIgnoresContact(t *testing.T) {
	w := newWorld(t)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 200)
	p := weightlessPlayer(w, 190, 185)
	pd := components.Player.Get(p)
	pd.Invulnerable = true
	components.Physics.Get(p).SpeedY = 50

	checkPlayerContact(w, enemy)

	assert.False(t, components.Enemy.Get(enemy).Stunned)
	assert.Equal(t, cfg.Player.StartingLives, pd.Lives)
}

func TestContactFindsPlayerBySpatialTag(t *testing.T) {
	w := newWorld(t)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 200)
	p := weightlessPlayer(w, 190, 185)
	components.Physics.Get(p).SpeedY = 50
	// Only the spatial index knows about the player now.
	w.SetPlayer(nil)

	checkPlayerContact(w, enemy)
	assert.True(t, components.Enemy.Get(enemy).Stunned)

	// A block overlapping the enemy is not mistaken for the player.
	other := mustEnemy(t, w, components.BehaviorPatrol, 400, 200)
	factory.CreateBlock(w, components.BlockFixed, 390, 185, 40, 40)
	checkPlayerContact(w, other)
	assert.False(t, components.Enemy.Get(other).Stunned)
	assert.Equal(t, cfg.Player.StartingLives, components.Player.Get(p).Lives)
}

func TestStunnedEnemyOnlyFalls(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 800, 400)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 200, 340)
	StunEnemy(w, enemy, 1)

	run(w, 30)
	en := components.Enemy.Get(enemy)
	assert.True(t, en.Stunned)
	assert.Equal(t, 200.0, components.Object.Get(enemy).X)

	run(w, 40)
	assert.False(t, en.Stunned)
	assert.NotEqual(t, 200.0, components.Object.Get(enemy).X)
}

func TestPatrolStaysWithinBounds(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 800, 400)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 400, 340)
	en := components.Enemy.Get(enemy)
	obj := components.Object.Get(enemy)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 60*20; i++ {
		Tick(w, dt)
		lo = math.Min(lo, obj.X)
		hi = math.Max(hi, obj.X)
	}

	assert.GreaterOrEqual(t, lo, en.PatrolAnchor-en.PatrolDistance)
	assert.LessOrEqual(t, hi, en.PatrolAnchor+en.PatrolDistance)
	assert.Equal(t, en.PatrolAnchor-en.PatrolDistance, lo, "reaches the left bound")
	assert.Equal(t, en.PatrolAnchor+en.PatrolDistance, hi, "reaches the right bound")
	assert.Equal(t, 340.0, obj.Y)
}

func TestPatrolTurnsAtWall(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 800, 400)
	factory.CreateBlock(w, components.BlockFixed, 440, 360, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorPatrol, 399.5, 340)

	Tick(w, dt)

	assert.Equal(t, 400.0, components.Object.Get(enemy).X)
	assert.Equal(t, -1.0, components.Enemy.Get(enemy).Direction)
}

func TestChaser(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		wall    bool
		chasing bool
		hop     bool
	}{
		{name: "hops when blocked ahead", playerX: 420, wall: true, chasing: true, hop: true},
		{name: "runs on open ground", playerX: 420, chasing: true},
		{name: "patrols out of range", playerX: 700, wall: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			floor(w, 0, 800, 400)
			if tt.wall {
				factory.CreateBlock(w, components.BlockFixed, 350, 360, 40, 40)
			}
			enemy := mustEnemy(t, w, components.BehaviorChaser, 300, 340)
			weightlessPlayer(w, tt.playerX, 200)

			obj := components.Object.Get(enemy)
			phys := components.Physics.Get(enemy)
			en := components.Enemy.Get(enemy)
			phys.Grounded = true

			moveChaser(w, obj, phys, en, dt)

			assert.Equal(t, tt.chasing, en.Chaser.Chasing)
			if tt.hop {
				assert.Equal(t, -en.Chaser.HopSpeed, phys.SpeedY)
			} else {
				assert.Zero(t, phys.SpeedY)
			}
		})
	}
}

func TestChaserLooksBehindWhenFacingLeft(t *testing.T) {
	w := newWorld(t)
	floor(w, 0, 800, 400)
	factory.CreateBlock(w, components.BlockFixed, 250, 360, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorChaser, 300, 340)
	weightlessPlayer(w, 180, 200)

	phys := components.Physics.Get(enemy)
	phys.Grounded = true
	moveChaser(w, components.Object.Get(enemy), phys, components.Enemy.Get(enemy), dt)

	assert.Equal(t, -1.0, components.Enemy.Get(enemy).Direction)
	assert.Less(t, phys.SpeedY, 0.0)
}

// The stomper stands on a short ledge with the player below and to the right.
func TestStomperLaunch(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 280, 400, 40, 40)
	factory.CreateBlock(w, components.BlockFixed, 320, 400, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorStomper, 300, 340)
	weightlessPlayer(w, 350, 500)

	obj := components.Object.Get(enemy)
	phys := components.Physics.Get(enemy)
	en := components.Enemy.Get(enemy)
	phys.Grounded = true

	moveStomper(w, obj, phys, en, dt)
	require.True(t, en.Stomper.Preparing)

	ticks := 0
	for phys.SpeedY == 0 && ticks < 120 {
		moveStomper(w, obj, phys, en, dt)
		ticks++
	}

	assert.Equal(t, -en.Stomper.JumpPower, phys.SpeedY)
	assert.LessOrEqual(t, math.Abs(en.Stomper.LaunchX), en.Stomper.MaxLaunchSpeed)
	assert.InDelta(t, 50/en.Stomper.TimeToTarget, en.Stomper.LaunchX, 1e-9)
	assert.InDelta(t, en.Stomper.JumpDelay*60, ticks, 1)
	assert.False(t, en.Stomper.Preparing)
	assert.Equal(t, en.Stomper.JumpCooldown, en.Stomper.CooldownLeft)
}

func TestStomperNeedsLineOfSight(t *testing.T) {
	w := newWorld(t)
	factory.CreateBlock(w, components.BlockFixed, 280, 400, 40, 40)
	factory.CreateBlock(w, components.BlockFixed, 320, 400, 40, 40)
	factory.CreateBlock(w, components.BlockFixed, 330, 440, 40, 40)
	enemy := mustEnemy(t, w, components.BehaviorStomper, 300, 340)
	weightlessPlayer(w, 350, 500)

	phys := components.Physics.Get(enemy)
	en := components.Enemy.Get(enemy)
	phys.Grounded = true

	moveStomper(w, components.Object.Get(enemy), phys, en, dt)

	assert.False(t, en.Stomper.Preparing)
}

func TestStomperDriftsAfterLaunch(t *testing.T) {
	w := newWorld(t)
	enemy := mustEnemy(t, w, components.BehaviorStomper, 300, 100)
	obj := components.Object.Get(enemy)
	phys := components.Physics.Get(enemy)
	en := components.Enemy.Get(enemy)
	phys.SpeedY = -200
	en.Stomper.LaunchX = 100

	Tick(w, dt)

	assert.InDelta(t, 300+100*dt, obj.X, 1e-9)
	assert.InDelta(t, 100*en.Stomper.AirDamping, en.Stomper.LaunchX, 1e-9)
}

func TestStompedStomperMayShrugOff(t *testing.T) {
	outcomes := map[bool]int{}
	for seed := int64(0); seed < 40; seed++ {
		w := world.New(800, 600, seed)
		enemy := mustEnemy(t, w, components.BehaviorStomper, 200, 200)
		p := weightlessPlayer(w, 210, 185)
		components.Physics.Get(p).SpeedY = 50

		checkPlayerContact(w, enemy)

		stunned := components.Enemy.Get(enemy).Stunned
		outcomes[stunned]++
		// Every stomp bounces, stunned or not.
		assert.Equal(t, -cfg.Player.JumpForce*cfg.Player.StompBounce, components.Physics.Get(p).SpeedY)
		if !stunned {
			assert.Zero(t, w.Game().Score)
		}
	}
	assert.Positive(t, outcomes[true])
	assert.Positive(t, outcomes[false])
}
