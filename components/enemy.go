package components

import "github.com/yohamta/donburi"

// Behavior selects the enemy AI strategy.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorChaser
	BehaviorStomper
)

func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorChaser:
		return "chaser"
	case BehaviorStomper:
		return "stomper"
	}
	return "unknown"
}

type EnemyData struct {
	Behavior  Behavior
	Speed     float64
	Direction float64 // 1 for right, -1 for left

	PatrolAnchor   float64 // Spawn X
	PatrolDistance float64 // Half-width of the patrol range

	Stunned      bool
	StunTime     float64
	StunDuration float64

	// Only the struct matching Behavior is meaningful.
	Chaser  ChaserState
	Stomper StomperState
}

type ChaserState struct {
	DetectionRange  float64
	ChaseMultiplier float64
	HopSpeed        float64
	LookAhead       float64
	Chasing         bool
}

type StomperState struct {
	DetectionRange float64
	JumpPower      float64
	JumpDelay      float64
	JumpCooldown   float64
	TimeToTarget   float64
	MaxLaunchSpeed float64
	AirDamping     float64
	StunChance     float64
	ShadowChance   float64

	CooldownLeft float64
	Preparing    bool
	SquatTimer   float64
	LaunchX      float64 // Horizontal launch velocity, decays while airborne
}

var Enemy = donburi.NewComponentType[EnemyData]()

// Stun puts the enemy into a time-bounded stun, restarting the timer.
func (e *EnemyData) Stun(duration float64) {
	e.Stunned = true
	e.StunTime = 0
	e.StunDuration = duration
}
