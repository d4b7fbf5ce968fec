// Package power computes the combat power (CP) score of a generated reward
// from its base stats and the difficulty of the solved problem.
package power

import (
	"math"

	"github.com/pokecode-app/pokecode/internal/domain"
)

// Stat normalization and weighting constants. Weights total 1.0.
const (
	StatMax = 255.0

	WeightHP             = 0.10
	WeightAttack         = 0.20
	WeightDefense        = 0.15
	WeightSpecialAttack  = 0.20
	WeightSpecialDefense = 0.15
	WeightSpeed          = 0.20
)

// Difficulty normalization constants: ratings below the floor contribute
// nothing; the span covers the floor up to the hardest rated problems.
const (
	DifficultyFloor = 800.0
	DifficultySpan  = 2700.0
)

// Score composition constants
const (
	AttributeShare  = 0.4
	DifficultyShare = 0.6
	ScoreBase       = 100.0
	ScoreScale      = 3900.0
	ScoreMin        = 1
	ScoreMax        = 4000
)

// BaseStats is the fixed six-stat attribute set of a catalog entry.
type BaseStats struct {
	HP      int
	Attack  int
	Defense int
	SpAtk   int
	SpDef   int
	Speed   int
}

// StatsFromList maps an ordered stat list from the detail source into
// BaseStats. Missing entries default to zero.
func StatsFromList(stats []domain.Stat) BaseStats {
	var bs BaseStats
	for _, s := range stats {
		switch s.Name {
		case domain.StatHP:
			bs.HP = s.Value
		case domain.StatAttack:
			bs.Attack = s.Value
		case domain.StatDefense:
			bs.Defense = s.Value
		case domain.StatSpecialAttack:
			bs.SpAtk = s.Value
		case domain.StatSpecialDefense:
			bs.SpDef = s.Value
		case domain.StatSpeed:
			bs.Speed = s.Value
		}
	}
	return bs
}

// ComputeScore derives a CP score in [ScoreMin, ScoreMax] from base stats
// and a raw problem difficulty. Pure: identical inputs always produce
// identical output.
func ComputeScore(stats BaseStats, difficulty float64) int {
	attributeScore := float64(stats.HP)/StatMax*WeightHP +
		float64(stats.Attack)/StatMax*WeightAttack +
		float64(stats.Defense)/StatMax*WeightDefense +
		float64(stats.SpAtk)/StatMax*WeightSpecialAttack +
		float64(stats.SpDef)/StatMax*WeightSpecialDefense +
		float64(stats.Speed)/StatMax*WeightSpeed

	difficultyScore := (math.Max(0, difficulty-DifficultyFloor)) / DifficultySpan
	if difficultyScore > 1 {
		difficultyScore = 1
	}

	combined := attributeScore*AttributeShare + difficultyScore*DifficultyShare

	cp := int(math.Round(ScoreBase + combined*ScoreScale))
	if cp < ScoreMin {
		cp = ScoreMin
	}
	if cp > ScoreMax {
		cp = ScoreMax
	}
	return cp
}
