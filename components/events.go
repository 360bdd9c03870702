package components

import (
	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/yohamta/donburi/features/events"
)

// Events are published during a tick and delivered after compaction, so
// payloads carry values rather than entries.

type CollisionEventData struct {
	KindA, KindB Kind
	SeqA, SeqB   uint64
}

type PlayerDamagedEventData struct {
	LivesLeft int
	Survived  bool
}

type PlayerRespawnedEventData struct {
	X, Y float64
}

type GameOverEventData struct {
	Score int
}

type LevelCompleteEventData struct {
	Score int
}

type StompEventData struct {
	Behavior Behavior
	Stunned  bool
}

type EnemyStunnedEventData struct {
	Behavior Behavior
	Duration float64
}

type BlockBrokenEventData struct {
	X, Y        float64
	DroppedCoin bool
}

type CoinCollectedEventData struct {
	Value     int
	Condiment cfg.CondimentKind
	Refilled  bool
}

type ProjectileThrownEventData struct {
	Condiment cfg.CondimentKind
}

type ProjectileEndedEventData struct {
	Condiment cfg.CondimentKind
	Outcome   ProjectileOutcome
}

var (
	CollisionEvent        = events.NewEventType[CollisionEventData]()
	PlayerDamagedEvent    = events.NewEventType[PlayerDamagedEventData]()
	PlayerRespawnedEvent  = events.NewEventType[PlayerRespawnedEventData]()
	GameOverEvent         = events.NewEventType[GameOverEventData]()
	LevelCompleteEvent    = events.NewEventType[LevelCompleteEventData]()
	StompEvent            = events.NewEventType[StompEventData]()
	EnemyStunnedEvent     = events.NewEventType[EnemyStunnedEventData]()
	BlockBrokenEvent      = events.NewEventType[BlockBrokenEventData]()
	CoinCollectedEvent    = events.NewEventType[CoinCollectedEventData]()
	ProjectileThrownEvent = events.NewEventType[ProjectileThrownEventData]()
	ProjectileEndedEvent  = events.NewEventType[ProjectileEndedEventData]()
)
