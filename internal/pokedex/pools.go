package pokedex

// Themed pools of catalog ids, one per type. Pools intentionally contain
// only ordinary ids: tag-based generation must never yield entries from the
// baby, legendary, or mythic sets. Pools may overlap each other since many
// species carry two types.
var (
	normalPool = []int{
		16, 19, 21, 39, 52, 83, 84, 108, 113, 115, 128, 133, 143, 161,
		162, 203, 206, 241, 263, 264, 287, 288, 289,
	}
	waterPool = []int{
		7, 8, 9, 54, 55, 60, 61, 62, 72, 79, 86, 90, 98, 116, 118, 119,
		120, 129, 130, 131, 134, 158, 159, 160, 183, 194, 195,
	}
	grassPool = []int{
		1, 2, 3, 43, 44, 45, 46, 47, 69, 70, 71, 102, 103, 114, 152,
		153, 154, 187, 188, 189, 191, 252, 253, 254,
	}
	firePool = []int{
		4, 5, 6, 37, 38, 58, 59, 77, 78, 126, 136, 155, 156, 157, 218,
		219, 228, 229, 255, 256, 257,
	}
	electricPool = []int{
		25, 26, 81, 82, 100, 101, 125, 135, 170, 171, 179, 180, 181,
		309, 310,
	}
	psychicPool = []int{
		63, 64, 65, 79, 80, 96, 97, 102, 103, 121, 122, 196, 199, 326,
		358,
	}
	icePool = []int{
		86, 87, 90, 91, 124, 131, 220, 221, 361, 362, 459, 460,
	}
	fightingPool = []int{
		56, 57, 66, 67, 68, 106, 107, 214, 286, 296, 297, 307, 308,
	}
	poisonPool = []int{
		23, 24, 29, 30, 31, 32, 33, 34, 41, 42, 48, 49, 88, 89, 109, 110,
	}
	groundPool = []int{
		27, 28, 50, 51, 104, 105, 111, 112, 194, 195, 207, 231, 232,
		328, 329, 330,
	}
	flyingPool = []int{
		16, 17, 18, 21, 22, 41, 42, 83, 84, 142, 163, 164, 176, 177,
		178, 227, 276, 277,
	}
	bugPool = []int{
		10, 11, 12, 13, 14, 15, 46, 47, 123, 127, 165, 166, 167, 168,
		204, 205, 212, 213,
	}
	rockPool = []int{
		74, 75, 76, 95, 111, 112, 138, 139, 140, 141, 142, 185, 246, 247,
	}
	ghostPool = []int{
		92, 93, 94, 200, 292, 302, 353, 354, 355, 356, 425, 426, 429, 442,
	}
	dragonPool = []int{
		147, 148, 149, 230, 329, 330, 333, 334, 371, 372, 373, 443,
		444, 445,
	}
	darkPool = []int{
		197, 198, 215, 228, 229, 261, 262, 302, 318, 319, 332, 342,
		359, 430, 434, 435, 461, 509, 510, 551, 552, 553, 570, 571,
	}
	steelPool = []int{
		81, 82, 205, 208, 212, 227, 303, 304, 305, 306, 374, 375, 376,
		436, 437, 448,
	}
	fairyPool = []int{
		35, 36, 39, 40, 176, 183, 184, 209, 210, 282, 468, 700,
	}
)

// TypePalette is the fixed set of display type names, used for the degraded
// placeholder entity's single random tag.
var TypePalette = []string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice", "Fighting",
	"Poison", "Ground", "Flying", "Psychic", "Bug", "Rock", "Ghost",
	"Dragon", "Dark", "Steel", "Fairy",
}
