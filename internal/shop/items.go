package shop

import "github.com/pokecode-app/pokecode/internal/domain"

const spriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/items"

// Item is a purchasable catalog entry. Balls carry a base catch rate; other
// items have a rate of zero.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	CatchRate   float64 `json:"catch_rate"`
	ImageURL    string  `json:"image_url"`
}

// Catalog is the fixed shop inventory in display order
var Catalog = []Item{
	{
		ID:          domain.ItemPokeBall,
		Name:        "Poké Ball",
		Description: "A device for catching wild Pokémon. It has a decent success rate.",
		Price:       200,
		CatchRate:   0.5,
		ImageURL:    spriteBaseURL + "/poke-ball.png",
	},
	{
		ID:          domain.ItemGreatBall,
		Name:        "Great Ball",
		Description: "A good, high-performance Ball with a higher catch rate than a standard Poké Ball.",
		Price:       600,
		CatchRate:   0.7,
		ImageURL:    spriteBaseURL + "/great-ball.png",
	},
	{
		ID:          domain.ItemUltraBall,
		Name:        "Ultra Ball",
		Description: "An ultra-high performance Ball with a much higher catch rate than a Great Ball.",
		Price:       1200,
		CatchRate:   0.85,
		ImageURL:    spriteBaseURL + "/ultra-ball.png",
	},
	{
		ID:          domain.ItemMasterBall,
		Name:        "Master Ball",
		Description: "The best Ball with the ultimate performance. It will catch any wild Pokémon without fail.",
		Price:       50000,
		CatchRate:   1,
		ImageURL:    spriteBaseURL + "/master-ball.png",
	},
	{
		ID:          domain.ItemQuickBall,
		Name:        "Quick Ball",
		Description: "A somewhat different Ball that provides a better catch rate at the start of wild encounters.",
		Price:       1000,
		CatchRate:   0.65,
		ImageURL:    spriteBaseURL + "/quick-ball.png",
	},
	{
		ID:          domain.ItemTimerBall,
		Name:        "Timer Ball",
		Description: "A somewhat different Ball that becomes progressively better the more turns that are taken.",
		Price:       1000,
		CatchRate:   0.65,
		ImageURL:    spriteBaseURL + "/timer-ball.png",
	},
	{
		ID:          domain.ItemEgg,
		Name:        "Pokémon Egg",
		Description: "A mysterious egg that will hatch into a baby Pokémon after one week of care.",
		Price:       5000,
		ImageURL:    spriteBaseURL + "/mystery-egg.png",
	},
	{
		ID:          domain.ItemIncubator,
		Name:        "Egg Incubator",
		Description: "A device that instantly hatches a Pokémon Egg.",
		Price:       2000,
		ImageURL:    "/incubator.png",
	},
}

// ItemByID looks up a catalog entry
func ItemByID(id string) (Item, bool) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// IsBall reports whether an item can be thrown at an encounter
func IsBall(id string) bool {
	item, ok := ItemByID(id)
	return ok && item.CatchRate > 0
}
