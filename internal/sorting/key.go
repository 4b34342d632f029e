package sorting

import (
	"cmp"
	"strings"
)

// SortKey is the composite ordering key of one class. Keys compare field by
// field in declaration order; Original is the final tie-break so only equal
// strings have equal keys.
type SortKey struct {
	Variants   []Rank
	Prefix     Rank
	Refined    int // 0 for a bare utility, 1 otherwise
	Components []Rank
	Suffix     Rank
	Original   string
}

// BuildKey assembles the key of pc. Categories in component_order that the
// ranker does not know are skipped.
func BuildKey(t *Tables, pc ParsedClass) SortKey {
	k := SortKey{
		Variants: make([]Rank, len(pc.Variants)),
		Original: pc.Original,
	}

	for i, v := range pc.Variants {
		k.Variants[i] = Rank{Index: VariantRank(t, v), Value: v}
	}

	k.Prefix, _ = ComponentRank(t, CategoryPrefix, pc)

	if !pc.IsBase() {
		k.Refined = 1
	}

	for _, category := range t.componentOrder {
		if category == CategoryVariant || category == CategoryPrefix {
			continue
		}
		if r, ok := ComponentRank(t, category, pc); ok {
			k.Components = append(k.Components, r)
		}
	}

	if pc.Suffix != "" {
		k.Suffix = Rank{Index: 1, Value: pc.Suffix}
	}

	return k
}

// Compare returns -1, 0 or +1 as a orders before, with or after b.
func Compare(a, b SortKey) int {
	if c := compareRanks(a.Variants, b.Variants); c != 0 {
		return c
	}
	if c := a.Prefix.compare(b.Prefix); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Refined, b.Refined); c != 0 {
		return c
	}
	if c := compareRanks(a.Components, b.Components); c != 0 {
		return c
	}
	if c := a.Suffix.compare(b.Suffix); c != 0 {
		return c
	}
	return strings.Compare(a.Original, b.Original)
}

// Less reports whether k orders before other.
func (k SortKey) Less(other SortKey) bool { return Compare(k, other) < 0 }

func (r Rank) compare(o Rank) int {
	if c := cmp.Compare(r.Index, o.Index); c != 0 {
		return c
	}
	return strings.Compare(r.Value, o.Value)
}

// compareRanks is lexicographic; a strict prefix orders first.
func compareRanks(a, b []Rank) int {
	for i := range min(len(a), len(b)) {
		if c := a[i].compare(b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
