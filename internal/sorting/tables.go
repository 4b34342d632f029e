package sorting

import (
	"slices"
	"sync/atomic"
)

// DefaultVariantSeparator is used when Lists.VariantSeparator is empty.
const DefaultVariantSeparator = ":"

// Category names accepted in component_order.
const (
	CategoryVariant   = "variant"
	CategoryPrefix    = "prefix"
	CategoryDirection = "direction"
	CategorySize      = "size"
	CategoryValue     = "value"
	CategoryColor     = "color"
	CategoryShade     = "shade"
	CategoryAlpha     = "alpha"
)

// Lists is the raw ordered input a Tables snapshot is built from.
type Lists struct {
	Variants         []string
	Prefixes         []string
	Directions       []string
	Sizes            []string
	Values           []string
	Colors           []string
	CustomColors     []string
	Shades           []string
	Alphas           []string
	ComponentOrder   []string
	VariantSeparator string
}

var generations atomic.Uint64

// Tables is an immutable snapshot of the ordering configuration together with
// the rank maps derived from it. A new configuration always means a new Tables.
type Tables struct {
	generation uint64
	separator  string

	variants       []string // unique, first-occurrence order
	colors         []string // built-in + custom, unique, sorted
	componentOrder []string

	variantIndex   map[string]int
	prefixIndex    map[string]int
	directionIndex map[string]int
	sizeIndex      map[string]int
	valueIndex     map[string]int
	colorIndex     map[string]int
	shadeIndex     map[string]int
	alphaIndex     map[string]int

	prefixes *prefixTrie
}

// NewTables builds every rank map from l and stamps the result with a fresh
// generation id. The input slices are copied.
func NewTables(l Lists) *Tables {
	sep := l.VariantSeparator
	if sep == "" {
		sep = DefaultVariantSeparator
	}

	colors := slices.Concat(l.Colors, l.CustomColors)
	slices.Sort(colors)
	colors = slices.Compact(colors)

	t := &Tables{
		generation:     generations.Add(1),
		separator:      sep,
		variants:       uniqueInOrder(l.Variants),
		colors:         colors,
		componentOrder: slices.Clone(l.ComponentOrder),
		variantIndex:   indexOf(l.Variants),
		prefixIndex:    indexOf(l.Prefixes),
		directionIndex: indexOf(l.Directions),
		sizeIndex:      indexOf(l.Sizes),
		valueIndex:     indexOf(l.Values),
		colorIndex:     indexOf(colors),
		shadeIndex:     indexOf(l.Shades),
		alphaIndex:     indexOf(l.Alphas),
	}
	t.prefixes = newPrefixTrie(l.Prefixes)

	return t
}

// Generation identifies the snapshot. Ids grow monotonically per process.
func (t *Tables) Generation() uint64 { return t.generation }

// VariantSeparator returns the separator between variants and the utility.
func (t *Tables) VariantSeparator() string { return t.separator }

// Colors returns the combined, alphabetised color list.
func (t *Tables) Colors() []string { return slices.Clone(t.colors) }

// ComponentOrder returns the configured category order.
func (t *Tables) ComponentOrder() []string { return slices.Clone(t.componentOrder) }

// Index reports the position of value in the named category's table.
func (t *Tables) Index(category, value string) (int, bool) {
	m := t.indexFor(category)
	if m == nil {
		return 0, false
	}
	i, ok := m[value]
	return i, ok
}

func (t *Tables) indexFor(category string) map[string]int {
	switch category {
	case CategoryVariant:
		return t.variantIndex
	case CategoryPrefix:
		return t.prefixIndex
	case CategoryDirection:
		return t.directionIndex
	case CategorySize:
		return t.sizeIndex
	case CategoryValue:
		return t.valueIndex
	case CategoryColor:
		return t.colorIndex
	case CategoryShade:
		return t.shadeIndex
	case CategoryAlpha:
		return t.alphaIndex
	default:
		return nil
	}
}

// indexOf maps every entry to its first position.
func indexOf(xs []string) map[string]int {
	m := make(map[string]int, len(xs))
	for i, x := range xs {
		if _, seen := m[x]; !seen {
			m[x] = i
		}
	}
	return m
}

func uniqueInOrder(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
