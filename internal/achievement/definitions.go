package achievement

import "github.com/pokecode-app/pokecode/internal/domain"

// Achievement IDs
const (
	IDCollector       = "collector"
	IDMasterCollector = "master-collector"
	IDProblemSolver   = "problem-solver"
	IDCodingMaster    = "coding-master"
	IDLegendaryHunter = "legendary-hunter"
	IDRichTrainer     = "rich-trainer"
	IDEggHatcher      = "egg-hatcher"
)

// StarterCP is the combat power assigned to a claimed starter
const StarterCP = 800

const spriteURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/"

// Definition describes a trackable achievement and its reward
type Definition struct {
	ID          string
	Title       string
	Description string
	Total       int
	Reward      domain.AchievementReward
}

// Definitions lists every tracked achievement in display order
var Definitions = []Definition{
	{
		ID:          IDCollector,
		Title:       "Collector",
		Description: "Catch your first Pokémon",
		Total:       1,
		Reward: domain.AchievementReward{
			Type: domain.RewardPokemon,
			Options: []domain.StarterOption{
				{ID: 1, Name: "Bulbasaur", ImageURL: spriteURL + "1.png"},
				{ID: 4, Name: "Charmander", ImageURL: spriteURL + "4.png"},
				{ID: 7, Name: "Squirtle", ImageURL: spriteURL + "7.png"},
			},
		},
	},
	{
		ID:          IDMasterCollector,
		Title:       "Master Collector",
		Description: "Catch 50 different Pokémon",
		Total:       50,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemUltraBall,
			Amount: 3,
		},
	},
	{
		ID:          IDProblemSolver,
		Title:       "Problem Solver",
		Description: "Solve your first programming challenge",
		Total:       1,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemGreatBall,
			Amount: 5,
		},
	},
	{
		ID:          IDCodingMaster,
		Title:       "Coding Master",
		Description: "Solve 100 programming challenges",
		Total:       100,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemMasterBall,
			Amount: 1,
		},
	},
	{
		ID:          IDLegendaryHunter,
		Title:       "Legendary Hunter",
		Description: "Catch your first legendary Pokémon",
		Total:       1,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemUltraBall,
			Amount: 5,
		},
	},
	{
		ID:          IDRichTrainer,
		Title:       "Rich Trainer",
		Description: "Accumulate 10,000 gold",
		Total:       10000,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemQuickBall,
			Amount: 3,
		},
	},
	{
		ID:          IDEggHatcher,
		Title:       "Egg Hatcher",
		Description: "Hatch your first Pokémon egg",
		Total:       1,
		Reward: domain.AchievementReward{
			Type:   domain.RewardBalls,
			BallID: domain.ItemTimerBall,
			Amount: 2,
		},
	},
}

func findDefinition(id string) (Definition, bool) {
	for _, def := range Definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
