package pokedex

// tagPools maps a problem-classification tag to its themed pool.
// Built once at init; never mutated afterwards.
var tagPools = map[string][]int{
	"2-sat":                     darkPool,
	"binary search":             psychicPool,
	"bitmasks":                  electricPool,
	"brute force":               fightingPool,
	"chinese remainder theorem": dragonPool,
	"combinatorics":             fairyPool,
	"constructive algorithms":   steelPool,
	"data structures":           waterPool,
	"dfs and similar":           ghostPool,
	"divide and conquer":        dragonPool,
	"dp":                        psychicPool,
	"dsu":                       normalPool,
	"expression parsing":        psychicPool,
	"fft":                       electricPool,
	"flows":                     waterPool,
	"games":                     fairyPool,
	"geometry":                  rockPool,
	"graph matchings":           fairyPool,
	"graphs":                    ghostPool,
	"greedy":                    darkPool,
	"hashing":                   electricPool,
	"implementation":            normalPool,
	"interactive":               psychicPool,
	"math":                      dragonPool,
	"matrices":                  steelPool,
	"meet-in-the-middle":        fightingPool,
	"number theory":             dragonPool,
	"probabilities":             icePool,
	"schedules":                 groundPool,
	"shortest paths":            flyingPool,
	"sortings":                  normalPool,
	"string suffix structures":  grassPool,
	"strings":                   grassPool,
	"ternary search":            psychicPool,
	"trees":                     grassPool,
	"two pointers":              icePool,
}

// PoolForTag returns the themed pool for a problem tag. Unknown tags fall
// back to the normal-type pool; this is an expected branch, not an error.
func PoolForTag(tag string) []int {
	if pool, ok := tagPools[tag]; ok {
		return pool
	}
	return normalPool
}

// KnownTag reports whether the tag has a dedicated themed pool.
func KnownTag(tag string) bool {
	_, ok := tagPools[tag]
	return ok
}
