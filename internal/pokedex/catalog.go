package pokedex

import "sort"

// Category classifies a catalog id into one of the special pools or ordinary.
type Category string

const (
	CategoryBaby      Category = "baby"
	CategoryLegendary Category = "legendary"
	CategoryMythic    Category = "mythic"
	CategoryOrdinary  Category = "ordinary"
)

// MaxCatalogID is the upper bound of the national dex domain (inclusive).
const MaxCatalogID = 1025

// FallbackID is the safe default returned when rejection sampling exceeds
// its iteration guard.
const FallbackID = 1

var babySet = toSet([]int{
	172, 173, 174, 175, 236, 238, 239, 240, 298, 360, 406, 433, 438, 439,
	440, 446, 447, 458, 848,
})

var legendarySet = toSet([]int{
	144, 145, 146, 150, 243, 244, 245, 249, 250, 377, 378, 379, 380, 381,
	382, 383, 384, 480, 481, 482, 483, 484, 485, 486, 487, 488, 638, 639,
	640, 641, 642, 643, 644, 645, 646, 716, 717, 718, 773, 785, 786, 787,
	788, 789, 790, 791, 792, 800, 888, 889, 890, 891, 892, 894, 895, 896,
	897, 898, 905, 1001, 1002, 1003, 1004, 1007, 1008, 1014, 1015, 1016,
	1017, 1024,
})

var mythicSet = toSet([]int{
	151, 251, 385, 386, 489, 490, 491, 492, 493, 494, 647, 648, 649, 719,
	720, 721, 801, 802, 807, 808, 809, 893, 1025,
})

func toSet(ids []int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Classify returns the category for a catalog id. Pure and O(1).
func Classify(id int) Category {
	switch {
	case IsBaby(id):
		return CategoryBaby
	case IsLegendary(id):
		return CategoryLegendary
	case IsMythic(id):
		return CategoryMythic
	default:
		return CategoryOrdinary
	}
}

// IsBaby reports whether id belongs to the baby pool
func IsBaby(id int) bool {
	_, ok := babySet[id]
	return ok
}

// IsLegendary reports whether id belongs to the legendary pool
func IsLegendary(id int) bool {
	_, ok := legendarySet[id]
	return ok
}

// IsMythic reports whether id belongs to the mythic pool
func IsMythic(id int) bool {
	_, ok := mythicSet[id]
	return ok
}

// LegendaryIDs returns the legendary pool in ascending id order.
// The returned slice is a copy; callers may not mutate catalog state.
func LegendaryIDs() []int {
	return sortedIDs(legendarySet)
}

// BabyIDs returns the baby pool in ascending id order.
func BabyIDs() []int {
	return sortedIDs(babySet)
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
