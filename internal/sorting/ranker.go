package sorting

import "strings"

// MaxRank sorts after every valid table position.
const MaxRank = 999999

// Rank is one comparable (position, text) pair of a sort key.
type Rank struct {
	Index int
	Value string
}

// rankPolicy holds what a category yields for absent and unknown values.
type rankPolicy struct {
	absent  int
	unknown int
}

// Prefixes outside the table (non-framework classes) go first, unknown
// directions go last, the remaining categories treat absent and unknown alike.
var policies = map[string]rankPolicy{
	CategoryPrefix:    {absent: -1, unknown: -1},
	CategoryDirection: {absent: -1, unknown: MaxRank},
	CategorySize:      {absent: MaxRank, unknown: MaxRank},
	CategoryValue:     {absent: MaxRank, unknown: MaxRank},
	CategoryColor:     {absent: MaxRank, unknown: MaxRank},
	CategoryShade:     {absent: MaxRank, unknown: MaxRank},
	CategoryAlpha:     {absent: MaxRank, unknown: MaxRank},
}

// ComponentRank ranks the parsed field of the given category. ok is false for
// category names the ranker does not know.
func ComponentRank(t *Tables, category string, pc ParsedClass) (r Rank, ok bool) {
	pol, ok := policies[category]
	if !ok {
		return Rank{}, false
	}

	value, present := field(category, pc)
	if !present {
		return Rank{Index: pol.absent}, true
	}

	idx, known := t.indexFor(category)[value]
	if !known {
		idx = pol.unknown
	}
	return Rank{Index: idx, Value: value}, true
}

func field(category string, pc ParsedClass) (string, bool) {
	switch category {
	case CategoryPrefix:
		return pc.Prefix, true
	case CategoryDirection:
		return pc.Direction, pc.Direction != ""
	case CategorySize:
		return pc.Size, pc.Size != ""
	case CategoryValue:
		return pc.Value, pc.Value != ""
	case CategoryColor:
		return pc.Color, pc.Color != ""
	case CategoryShade:
		return pc.Shade, pc.Shade != ""
	case CategoryAlpha:
		return pc.Alpha, pc.HasAlpha
	default:
		return "", false
	}
}

// VariantRank ranks a single variant. Parametrised variants such as
// "min-[320px]" or "group-hover" fall back to the first known variant they
// extend with "-" or "[".
func VariantRank(t *Tables, variant string) int {
	if idx, ok := t.variantIndex[variant]; ok {
		return idx
	}

	for _, known := range t.variants {
		if strings.HasPrefix(variant, known+"-") || strings.HasPrefix(variant, known+"[") {
			return t.variantIndex[known]
		}
	}

	return MaxRank
}
