// Package rewrite finds class lists in text and replaces them with their
// sorted form.
package rewrite

import (
	"strings"

	"github.com/MrSnakeDoc/tailwhip/internal/config"
	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/utils"
)

// Sorter orders a class list. *sorting.Engine satisfies it.
type Sorter interface {
	Sort(classes []string) []string
}

type Rewriter struct {
	patterns []config.Pattern
	skip     []string
	sorter   Sorter
}

func New(patterns []config.Pattern, skipExpressions []string, sorter Sorter) *Rewriter {
	return &Rewriter{
		patterns: patterns,
		skip:     skipExpressions,
		sorter:   sorter,
	}
}

// Text applies every pattern in order and returns the rewritten text. Only
// the "classes" group of each match is replaced.
func (r *Rewriter) Text(text string) string {
	for _, p := range r.patterns {
		text = r.apply(p, text)
	}
	return text
}

func (r *Rewriter) apply(p config.Pattern, text string) string {
	matches := p.Regex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0

	for _, m := range matches {
		start, end := m[2*p.Group], m[2*p.Group+1]
		if start < 0 {
			continue
		}

		b.WriteString(text[last:start])
		b.WriteString(r.Classes(text[start:end]))
		last = end
	}
	b.WriteString(text[last:])

	return b.String()
}

// Classes sorts one whitespace separated class list. Values holding a
// template expression, or nothing but whitespace, come back unchanged.
func (r *Rewriter) Classes(value string) string {
	if utils.Some(r.skip, func(expr string) bool { return strings.Contains(value, expr) }) {
		logger.Debug("skipping class list with template expression: %q", value)
		return value
	}

	classes := strings.Fields(value)
	if len(classes) == 0 {
		return value
	}

	return strings.Join(r.sorter.Sort(classes), " ")
}
