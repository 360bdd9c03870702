package components

import (
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/yohamta/donburi"
)

// ProjectileOutcome records how a projectile ended. Exactly one non-None
// outcome is ever set.
type ProjectileOutcome int

const (
	OutcomeNone ProjectileOutcome = iota
	OutcomeExpired
	OutcomeEnemyHit
	OutcomeBlockHit
)

func (o ProjectileOutcome) String() string {
	switch o {
	case OutcomeExpired:
		return "expired"
	case OutcomeEnemyHit:
		return "enemy-hit"
	case OutcomeBlockHit:
		return "block-hit"
	}
	return "none"
}

type ProjectileData struct {
	Condiment    cfg.CondimentKind
	Direction    float64
	Age          float64
	Lifespan     float64
	StunDuration float64
	TrailTimer   float64
	Outcome      ProjectileOutcome
}

var Projectile = donburi.NewComponentType[ProjectileData]()
