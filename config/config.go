package config

import (
	"image/color"
	"time"
)

// LoopConfig controls the fixed-timestep simulation loop.
type LoopConfig struct {
	TickRate int           `yaml:"tick_rate"`
	MaxFrame time.Duration `yaml:"max_frame"` // Cap on a single real-time sample
}

// ScreenConfig is the size of the camera viewport in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsConfig struct {
	// Level gravity is authored in frame-scaled units. GravityScale is tuned
	// so 0.5 gives 1800 units/s², which suits the 400 jump force.
	DefaultGravity float64 `yaml:"default_gravity"`
	GravityScale   float64 `yaml:"gravity_scale"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	ZIndex int     `yaml:"z_index"`

	// Movement
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"`
	MaxSpeedX float64 `yaml:"max_speed_x"`
	MaxSpeedY float64 `yaml:"max_speed_y"`
	Friction  float64 `yaml:"friction"` // Multiplicative, applied once per tick

	// Lives
	StartingLives         int     `yaml:"starting_lives"`
	InvulnDuration        float64 `yaml:"invuln_duration"`
	RespawnInvulnDuration float64 `yaml:"respawn_invuln_duration"` // Must exceed InvulnDuration
	RespawnDelay          float64 `yaml:"respawn_delay"`
	FlashInterval         float64 `yaml:"flash_interval"`

	// Knockback, as fractions of JumpForce
	DamageKnockbackUp   float64 `yaml:"damage_knockback_up"`
	DamageKnockbackSide float64 `yaml:"damage_knockback_side"`
	KnockbackLock       float64 `yaml:"knockback_lock"` // Seconds horizontal input is ignored
	StompBounce         float64 `yaml:"stomp_bounce"`

	// Condiments
	CondimentCap   int     `yaml:"condiment_cap"`
	StartCondiment int     `yaml:"start_condiment"`
	ThrowCooldown  float64 `yaml:"throw_cooldown"`
}

// EnemyTypeConfig contains configuration shared by every enemy behavior.
type EnemyTypeConfig struct {
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
}

type ChaserConfig struct {
	EnemyTypeConfig `yaml:",inline"`

	DetectionRange  float64 `yaml:"detection_range"`
	ChaseMultiplier float64 `yaml:"chase_multiplier"`
	HopSpeed        float64 `yaml:"hop_speed"`
	LookAhead       float64 `yaml:"look_ahead"` // Distance past the front edge checked for walls
}

type StomperConfig struct {
	EnemyTypeConfig `yaml:",inline"`

	DetectionRange float64 `yaml:"detection_range"`
	JumpPower      float64 `yaml:"jump_power"`
	JumpDelay      float64 `yaml:"jump_delay"`
	JumpCooldown   float64 `yaml:"jump_cooldown"`
	TimeToTarget   float64 `yaml:"time_to_target"`
	MaxLaunchSpeed float64 `yaml:"max_launch_speed"`
	AirDamping     float64 `yaml:"air_damping"`
	StunChance     float64 `yaml:"stun_chance"`   // Probability a stomp actually stuns
	ShadowChance   float64 `yaml:"shadow_chance"` // Per tick while airborne
	SightStep      float64 `yaml:"sight_step"`
}

type EnemyConfig struct {
	Gravity      float64 `yaml:"gravity"`
	ZIndex       int     `yaml:"z_index"`
	StompStun    float64 `yaml:"stomp_stun"`
	StompScore   int     `yaml:"stomp_score"`
	StunBlinkEnd float64 `yaml:"stun_blink_end"` // Seconds before stun ends when the body blinks

	Patrol  EnemyTypeConfig `yaml:"patrol"`
	Chaser  ChaserConfig    `yaml:"chaser"`
	Stomper StomperConfig   `yaml:"stomper"`
}

type ProjectileConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Lifespan      float64 `yaml:"lifespan"`
	StunDuration  float64 `yaml:"stun_duration"`
	ZIndex        int     `yaml:"z_index"`
	TrailInterval float64 `yaml:"trail_interval"`

	Colors [CondimentCount]color.RGBA `yaml:"-"`
}

type PickupConfig struct {
	CoinSize         float64 `yaml:"coin_size"`
	CoinValue        int     `yaml:"coin_value"`
	CoinBobAmplitude float64 `yaml:"coin_bob_amplitude"`
	CoinBobSpeed     float64 `yaml:"coin_bob_speed"`
	CoinZIndex       int     `yaml:"coin_z_index"`
	ExitHeight       float64 `yaml:"exit_height"`
	ExitZIndex       int     `yaml:"exit_z_index"`
	BreakCoinChance  float64 `yaml:"break_coin_chance"`
}

// BurstConfig describes a radial particle burst.
type BurstConfig struct {
	Count    int        `yaml:"count"`
	Size     float64    `yaml:"size"`
	Speed    float64    `yaml:"speed"`
	Lifetime float64    `yaml:"lifetime"`
	Gravity  float64    `yaml:"gravity"`
	Color    color.RGBA `yaml:"-"`
}

type EffectsConfig struct {
	ZIndex         int     `yaml:"z_index"`
	ShadowZIndex   int     `yaml:"shadow_z_index"`
	ShadowLifetime float64 `yaml:"shadow_lifetime"`
	ShadowHeight   float64 `yaml:"shadow_height"`
	PopupLifetime  float64 `yaml:"popup_lifetime"`
	PopupRise      float64 `yaml:"popup_rise"`
	PopupWobble    float64 `yaml:"popup_wobble"`
	TrailSpeed     float64 `yaml:"trail_speed"`
	TrailLifetime  float64 `yaml:"trail_lifetime"`
	TrailGravity   float64 `yaml:"trail_gravity"`

	Damage     BurstConfig `yaml:"damage"`
	Death      BurstConfig `yaml:"death"`
	EnemySplat BurstConfig `yaml:"enemy_splat"`
	BlockSplat BurstConfig `yaml:"block_splat"`
	Debris     BurstConfig `yaml:"debris"`
}

type LevelConfig struct {
	BlockSize      float64    `yaml:"block_size"`
	CompleteDelay  float64    `yaml:"complete_delay"` // Seconds before the next level loads
	BrickColor     color.RGBA `yaml:"-"`
	BreakableColor color.RGBA `yaml:"-"`
	DefaultBGColor color.RGBA `yaml:"-"`
}

var Loop LoopConfig
var Screen ScreenConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Pickup PickupConfig
var Effects EffectsConfig
var Level LevelConfig

// Color palette
var (
	HotdogBun     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Sausage       = color.RGBA{R: 255, G: 99, B: 71, A: 255}
	HumanPink     = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	HungryRed     = color.RGBA{R: 255, G: 51, B: 102, A: 255}
	StomperBrown  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	CoinGold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	FlagRed       = color.RGBA{R: 255, G: 99, B: 71, A: 255}
	ShadowBlack   = color.RGBA{R: 0, G: 0, B: 0, A: 80}
	PopupWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	KetchupRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	MustardYellow = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	RelishGreen   = color.RGBA{R: 50, G: 205, B: 50, A: 255}
)

func init() {
	Loop = LoopConfig{
		TickRate: 60,
		MaxFrame: 100 * time.Millisecond,
	}

	Screen = ScreenConfig{
		Width:  800,
		Height: 600,
	}

	Physics = PhysicsConfig{
		DefaultGravity: 0.5,
		GravityScale:   3600,
	}

	// Player Config
	Player = PlayerConfig{
		Width:  40,
		Height: 20,
		ZIndex: 10,

		Speed:     200,
		JumpForce: 400,
		MaxSpeedX: 200,
		MaxSpeedY: 600,
		Friction:  0.8,

		StartingLives:         3,
		InvulnDuration:        2.0,
		RespawnInvulnDuration: 3.0,
		RespawnDelay:          0.5,
		FlashInterval:         0.1,

		DamageKnockbackUp:   0.6,
		DamageKnockbackSide: 0.4,
		KnockbackLock:       0.2,
		StompBounce:         0.7,

		CondimentCap:   3,
		StartCondiment: 3,
		ThrowCooldown:  1.5,
	}

	Enemy = EnemyConfig{
		Gravity:      800,
		ZIndex:       5,
		StompStun:    2.0,
		StompScore:   50,
		StunBlinkEnd: 1.0,

		Patrol: EnemyTypeConfig{
			Speed:          50,
			PatrolDistance: 120,
			Width:          40,
			Height:         60,
		},
		Chaser: ChaserConfig{
			EnemyTypeConfig: EnemyTypeConfig{
				Speed:          60,
				PatrolDistance: 80,
				Width:          40,
				Height:         60,
			},
			DetectionRange:  180,
			ChaseMultiplier: 1.2,
			HopSpeed:        400,
			LookAhead:       10,
		},
		Stomper: StomperConfig{
			EnemyTypeConfig: EnemyTypeConfig{
				Speed:          40,
				PatrolDistance: 150,
				Width:          60,
				Height:         60,
			},
			DetectionRange: 120,
			JumpPower:      450,
			JumpDelay:      0.7,
			JumpCooldown:   3.0,
			TimeToTarget:   0.5,
			MaxLaunchSpeed: 300,
			AirDamping:     0.98,
			StunChance:     0.5,
			ShadowChance:   0.1,
			SightStep:      10,
		},
	}

	Projectile = ProjectileConfig{
		Width:         10,
		Height:        10,
		Speed:         400,
		Lifespan:      2.0,
		StunDuration:  5.0,
		ZIndex:        0,
		TrailInterval: 0.05,
		Colors: [CondimentCount]color.RGBA{
			Ketchup: KetchupRed,
			Mustard: MustardYellow,
			Relish:  RelishGreen,
		},
	}

	Pickup = PickupConfig{
		CoinSize:         20,
		CoinValue:        100,
		CoinBobAmplitude: 5,
		CoinBobSpeed:     2,
		CoinZIndex:       5,
		ExitHeight:       60,
		ExitZIndex:       1,
		BreakCoinChance:  0.3,
	}

	Effects = EffectsConfig{
		ZIndex:         10,
		ShadowZIndex:   1,
		ShadowLifetime: 0.5,
		ShadowHeight:   5,
		PopupLifetime:  1.0,
		PopupRise:      30,
		PopupWobble:    2,
		TrailSpeed:     20,
		TrailLifetime:  0.5,
		TrailGravity:   50,

		Damage:     BurstConfig{Count: 15, Size: 3, Speed: 100, Lifetime: 0.5, Gravity: 150, Color: Sausage},
		Death:      BurstConfig{Count: 30, Size: 5, Speed: 150, Lifetime: 1.0, Gravity: 200, Color: Sausage},
		EnemySplat: BurstConfig{Count: 15, Size: 4, Speed: 100, Lifetime: 0.8, Gravity: 100},
		BlockSplat: BurstConfig{Count: 10, Size: 3, Speed: 80, Lifetime: 0.6, Gravity: 100},
		Debris: BurstConfig{Count: 15, Size: 5, Speed: 120, Lifetime: 0.8, Gravity: 300,
			Color: color.RGBA{R: 222, G: 184, B: 135, A: 255}},
	}

	Level = LevelConfig{
		BlockSize:      40,
		CompleteDelay:  2.0,
		BrickColor:     color.RGBA{R: 205, G: 133, B: 63, A: 255},
		BreakableColor: color.RGBA{R: 222, G: 184, B: 135, A: 255},
		DefaultBGColor: color.RGBA{R: 135, G: 206, B: 235, A: 255},
	}
}

// StepSeconds is the fixed simulation step derived from Loop.TickRate.
func StepSeconds() float64 {
	return 1.0 / float64(Loop.TickRate)
}
