package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Block      = donburi.NewTag().SetName("Block")
	Coin       = donburi.NewTag().SetName("Coin")
	Exit       = donburi.NewTag().SetName("Exit")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for spatial queries
const (
	ResolvSolid     = "solid"
	ResolvBlock     = "block"
	ResolvBreakable = "breakable"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvPickup    = "pickup"
)
