package gamemath

// Integrate applies a constant acceleration over dt and returns the new
// velocity together with the displacement it produces this step.
func Integrate(vel, accel, dt float64) (newVel, delta float64) {
	newVel = vel + accel*dt
	return newVel, newVel * dt
}

// ApplyFriction scales speed by a multiplicative damping factor.
func ApplyFriction(speed, friction float64) float64 {
	return speed * friction
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// LaunchVelocity estimates the horizontal speed needed to cover dx in
// timeToTarget seconds, clamped to [-max, max]. It ignores time of flight
// under gravity.
func LaunchVelocity(dx, timeToTarget, max float64) float64 {
	if timeToTarget <= 0 {
		return ClampSpeed(dx, max)
	}
	return ClampSpeed(dx/timeToTarget, max)
}
