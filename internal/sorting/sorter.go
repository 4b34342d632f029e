// Package sorting parses utility classes and orders them by a configurable,
// total sort key.
package sorting

import (
	"slices"
	"sort"
	"sync/atomic"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

// Sort deduplicates classes (first occurrence wins) and stable-sorts them
// ascending by sort key under t.
func Sort(t *Tables, classes []string) []string {
	return sortWith(classes, func(raw string) SortKey {
		return BuildKey(t, Parse(t, raw))
	})
}

// Dedupe keeps the first occurrence of every string, in order.
func Dedupe(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func sortWith(classes []string, keyOf func(string) SortKey) []string {
	out := Dedupe(classes)
	keys := make([]SortKey, len(out))
	for i, c := range out {
		keys[i] = keyOf(c)
	}

	sort.Stable(byKey{classes: out, keys: keys})
	return out
}

type byKey struct {
	classes []string
	keys    []SortKey
}

func (b byKey) Len() int           { return len(b.classes) }
func (b byKey) Less(i, j int) bool { return Compare(b.keys[i], b.keys[j]) < 0 }
func (b byKey) Swap(i, j int) {
	b.classes[i], b.classes[j] = b.classes[j], b.classes[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// Engine binds the active Tables snapshot to a parse cache. It is safe for
// concurrent use; Reload swaps the snapshot as a whole.
type Engine struct {
	tables atomic.Pointer[Tables]
	cache  *ParseCache
}

// NewEngine starts an engine on t with a parse cache of cacheSize entries.
func NewEngine(t *Tables, cacheSize int) *Engine {
	e := &Engine{cache: NewParseCache(cacheSize)}
	e.tables.Store(t)
	e.cache.Reset(t.Generation())
	return e
}

// Tables returns the active snapshot.
func (e *Engine) Tables() *Tables { return e.tables.Load() }

// Reload replaces the active snapshot and invalidates the parse cache.
// Calls already running keep the snapshot they started with.
func (e *Engine) Reload(t *Tables) {
	prev := e.tables.Swap(t)
	e.cache.Reset(t.Generation())
	logger.Debug("sorting tables reloaded: generation %d -> %d", prev.Generation(), t.Generation())
}

// Parse parses raw under the active snapshot.
func (e *Engine) Parse(raw string) ParsedClass {
	pc := e.parse(e.Tables(), raw)
	pc.Variants = slices.Clone(pc.Variants)
	return pc
}

// SortKey builds the key of raw under the active snapshot.
func (e *Engine) SortKey(raw string) SortKey {
	t := e.Tables()
	return BuildKey(t, e.parse(t, raw))
}

// Sort is the cached equivalent of the package-level Sort. The snapshot is
// read once, so a concurrent Reload never mixes generations within a call.
func (e *Engine) Sort(classes []string) []string {
	t := e.Tables()
	return sortWith(classes, func(raw string) SortKey {
		return BuildKey(t, e.parse(t, raw))
	})
}

func (e *Engine) parse(t *Tables, raw string) ParsedClass {
	if pc, ok := e.cache.Get(t.Generation(), raw); ok {
		return pc
	}
	pc := Parse(t, raw)
	e.cache.Set(t.Generation(), raw, pc)
	return pc
}
