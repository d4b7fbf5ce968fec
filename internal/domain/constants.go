package domain

// Ball item ids. These match the shop catalog and inventory keys.
const (
	ItemPokeBall   = "poke-ball"
	ItemGreatBall  = "great-ball"
	ItemUltraBall  = "ultra-ball"
	ItemMasterBall = "master-ball"
	ItemQuickBall  = "quick-ball"
	ItemTimerBall  = "timer-ball"
	ItemEgg        = "pokemon-egg"
	ItemIncubator  = "incubator"
)

// Stat names as reported by the entity detail source
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// DefaultRating is assumed when a user has no recorded rating yet
const DefaultRating = 800

// StarterInventory is the ball grant for a freshly initialized inventory
const (
	StarterBallItem  = ItemPokeBall
	StarterBallCount = 5
)
