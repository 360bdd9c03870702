package systems

import (
	"math"

	"github.com/automoto/runaway-hotdog/components"
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/shared/gamemath"
	"github.com/automoto/runaway-hotdog/systems/factory"
	"github.com/automoto/runaway-hotdog/tags"
	"github.com/automoto/runaway-hotdog/world"
	"github.com/yohamta/donburi"
)

// UpdateEnemy runs one tick of a hungry human. A stunned enemy only counts
// down its stun and falls; otherwise it moves by its behavior, falls, and
// then checks contact with the player.
func UpdateEnemy(w *world.World, e *donburi.Entry, dt float64) {
	en := components.Enemy.Get(e)
	phys := components.Physics.Get(e)
	obj := components.Object.Get(e)

	if en.Stunned {
		en.StunTime += dt
		if en.StunTime >= en.StunDuration {
			en.Stunned = false
			en.StunTime = 0
		}
		applyGravity(w, obj, phys, dt)
		return
	}

	switch en.Behavior {
	case components.BehaviorPatrol:
		patrol(w, obj, en, dt)
	case components.BehaviorChaser:
		moveChaser(w, obj, phys, en, dt)
	case components.BehaviorStomper:
		moveStomper(w, obj, phys, en, dt)
	}

	applyGravity(w, obj, phys, dt)

	if en.Behavior == components.BehaviorStomper {
		driftStomper(w, obj, phys, en, dt)
	}

	checkPlayerContact(w, e)

	if en.Behavior == components.BehaviorStomper && !phys.Grounded && w.Rand.Float64() < en.Stomper.ShadowChance {
		factory.SpawnShadow(w, obj.X+obj.W/4, obj.Y+obj.H, obj.W/2)
	}
}

// patrol walks back and forth within PatrolDistance of the spawn X,
// turning at either bound or when it walks into a wall.
func patrol(w *world.World, obj *components.ObjectData, en *components.EnemyData, dt float64) {
	resolveX(w, obj, en.Speed*en.Direction*dt, func(*donburi.Entry) bool {
		en.Direction = -en.Direction
		return false
	})

	lo, hi := en.PatrolAnchor-en.PatrolDistance, en.PatrolAnchor+en.PatrolDistance
	switch {
	case obj.X > hi:
		obj.X = hi
		en.Direction = -1
	case obj.X < lo:
		obj.X = lo
		en.Direction = 1
	default:
		return
	}
	obj.Update()
}

// moveChaser runs at the player while it is within horizontal detection
// range, hopping when a block sits just ahead. Out of range it patrols.
func moveChaser(w *world.World, obj *components.ObjectData, phys *components.PhysicsData, en *components.EnemyData, dt float64) {
	c := &en.Chaser
	target, ok := playerRect(w)
	if !ok || math.Abs(target.X-obj.X) >= c.DetectionRange {
		c.Chasing = false
		patrol(w, obj, en, dt)
		return
	}

	c.Chasing = true
	en.Direction = 1
	if target.X < obj.X {
		en.Direction = -1
	}
	// Walls stop a chase without turning the chaser around.
	resolveX(w, obj, en.Speed*c.ChaseMultiplier*en.Direction*dt, nil)

	if !phys.Grounded {
		return
	}
	aheadX := obj.X + obj.W + c.LookAhead
	if en.Direction < 0 {
		aheadX = obj.X - c.LookAhead
	}
	if w.SolidAt(aheadX, obj.Y+obj.H/2) {
		phys.SpeedY = -c.HopSpeed
		phys.Grounded = false
	}
}

// moveStomper squats when it sees the player below, then leaps toward
// where the player stood. While waiting out its cooldown it patrols.
// Airborne stompers are steered only by driftStomper.
func moveStomper(w *world.World, obj *components.ObjectData, phys *components.PhysicsData, en *components.EnemyData, dt float64) {
	st := &en.Stomper
	if !phys.Grounded && phys.SpeedY != 0 {
		return
	}

	if st.CooldownLeft > 0 {
		st.CooldownLeft -= dt
	}

	target, hasTarget := playerRect(w)

	if hasTarget && st.CooldownLeft <= 0 && !st.Preparing {
		r := obj.Rect()
		below := target.Y > r.Y+r.H/2
		if below && math.Abs(target.X-r.X) < st.DetectionRange && hasLineOfSight(w, r, target) {
			st.Preparing = true
			st.SquatTimer = 0
			return
		}
	}

	if st.Preparing {
		st.SquatTimer += dt
		if st.SquatTimer < st.JumpDelay {
			return
		}
		phys.SpeedY = -st.JumpPower
		phys.Grounded = false
		st.Preparing = false
		st.CooldownLeft = st.JumpCooldown
		if hasTarget {
			dx := target.X - obj.X
			en.Direction = gamemath.Sign(dx)
			st.LaunchX = gamemath.LaunchVelocity(dx, st.TimeToTarget, st.MaxLaunchSpeed)
		}
		return
	}

	patrol(w, obj, en, dt)
}

// driftStomper carries an airborne stomper along its launch velocity,
// which decays each tick. Hitting a wall kills the drift.
func driftStomper(w *world.World, obj *components.ObjectData, phys *components.PhysicsData, en *components.EnemyData, dt float64) {
	st := &en.Stomper
	if phys.Grounded {
		st.LaunchX = 0
		return
	}
	if st.LaunchX == 0 {
		return
	}
	if resolveX(w, obj, st.LaunchX*dt, nil) {
		st.LaunchX = 0
		return
	}
	st.LaunchX *= st.AirDamping
}

// hasLineOfSight samples the segment between the two centers and reports
// whether no block lies on it. The block the enemy stands on is ignored.
func hasLineOfSight(w *world.World, from, to gamemath.Rect) bool {
	feet := from.Bottom()
	for _, pt := range gamemath.SegmentSamples(from.CenterX(), from.CenterY(), to.CenterX(), to.CenterY(), cfg.Enemy.Stomper.SightStep) {
		spot := gamemath.Rect{X: pt[0] - 0.5, Y: pt[1] - 0.5, W: 1, H: 1}
		for _, b := range w.Query(spot, tags.ResolvBlock) {
			br := components.Object.Get(b).Rect()
			if br.Y == feet {
				continue
			}
			if br.ContainsPoint(pt[0], pt[1]) {
				return false
			}
		}
	}
	return true
}

// checkPlayerContact resolves an overlap with the player as either a stomp
// or damage. Invulnerable players are not touched at all.
func checkPlayerContact(w *world.World, e *donburi.Entry) {
	er := components.Object.Get(e).Rect()
	hits := w.Query(er, tags.ResolvPlayer)
	if len(hits) == 0 {
		return
	}
	player := hits[0]
	pd := components.Player.Get(player)
	if pd.Invulnerable {
		return
	}
	pr := components.Object.Get(player).Rect()

	pphys := components.Physics.Get(player)
	if gamemath.IsStomp(pr, pphys.SpeedY, er) {
		stompEnemy(w, e, player)
		return
	}

	if TakeDamage(w, player) == DamageSurvived {
		dir := 1.0
		if pr.X < er.X {
			dir = -1
		}
		pphys.SpeedX = pd.JumpForce * cfg.Player.DamageKnockbackSide * dir
		pd.KnockbackTimer = cfg.Player.KnockbackLock
	}
}

// stompEnemy bounces the player off an enemy's head. Stompers shrug off
// some stomps; everything else is stunned and scores.
func stompEnemy(w *world.World, e, player *donburi.Entry) {
	en := components.Enemy.Get(e)

	stunned := true
	if en.Behavior == components.BehaviorStomper {
		stunned = w.Rand.Float64() < en.Stomper.StunChance
	}
	if stunned {
		StunEnemy(w, e, cfg.Enemy.StompStun)
		w.Game().Score += cfg.Enemy.StompScore
	}

	pd := components.Player.Get(player)
	components.Physics.Get(player).SpeedY = -pd.JumpForce * cfg.Player.StompBounce

	components.StompEvent.Publish(w.ECS, components.StompEventData{
		Behavior: en.Behavior,
		Stunned:  stunned,
	})
}

// StunEnemy stuns an enemy for duration seconds, restarting any stun in
// progress.
func StunEnemy(w *world.World, e *donburi.Entry, duration float64) {
	en := components.Enemy.Get(e)
	en.Stun(duration)
	components.EnemyStunnedEvent.Publish(w.ECS, components.EnemyStunnedEventData{
		Behavior: en.Behavior,
		Duration: duration,
	})
}

func playerRect(w *world.World) (gamemath.Rect, bool) {
	player, ok := w.Player()
	if !ok || !components.Base.Get(player).Alive() {
		return gamemath.Rect{}, false
	}
	return components.Object.Get(player).Rect(), true
}
