package config

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"runtime"

	"github.com/MrSnakeDoc/tailwhip/internal/sorting"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidPattern = errors.New("invalid class pattern")
)

// classesGroup is the named group every class pattern must capture.
const classesGroup = "classes"

type PatternSpec struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Regex string `mapstructure:"regex" yaml:"regex"`
}

// Settings is the fully merged configuration. It is a plain value: every
// reload produces a new Settings and a new sorting.Tables.
type Settings struct {
	Globs            []string      `mapstructure:"globs" yaml:"globs"`
	SkipExpressions  []string      `mapstructure:"skip_expressions" yaml:"skip_expressions"`
	VariantSeparator string        `mapstructure:"variant_separator" yaml:"variant_separator"`
	ClassPatterns    []PatternSpec `mapstructure:"class_patterns" yaml:"class_patterns"`
	CacheSize        int           `mapstructure:"cache_size" yaml:"cache_size"`
	Jobs             int           `mapstructure:"jobs" yaml:"jobs"`

	ComponentOrder []string `mapstructure:"component_order" yaml:"component_order"`
	Variants       []string `mapstructure:"variants" yaml:"variants"`
	Prefixes       []string `mapstructure:"prefixes" yaml:"prefixes"`
	Directions     []string `mapstructure:"directions" yaml:"directions"`
	Sizes          []string `mapstructure:"sizes" yaml:"sizes"`
	Numerics       []string `mapstructure:"numerics" yaml:"numerics"`
	Colors         []string `mapstructure:"colors" yaml:"colors"`
	CustomColors   []string `mapstructure:"custom_colors" yaml:"custom_colors"`
	Shades         []string `mapstructure:"shades" yaml:"shades"`
	Alphas         []string `mapstructure:"alphas" yaml:"alphas"`

	// Files lists the configuration files that were merged, lowest
	// precedence first. The embedded defaults are not included.
	Files []string `mapstructure:"-" yaml:"-"`
}

// Tables builds a fresh sorting snapshot from s.
func (s *Settings) Tables() *sorting.Tables {
	return sorting.NewTables(sorting.Lists{
		Variants:         s.Variants,
		Prefixes:         s.Prefixes,
		Directions:       s.Directions,
		Sizes:            s.Sizes,
		Values:           s.Numerics,
		Colors:           s.Colors,
		CustomColors:     s.CustomColors,
		Shades:           s.Shades,
		Alphas:           s.Alphas,
		ComponentOrder:   s.ComponentOrder,
		VariantSeparator: s.VariantSeparator,
	})
}

// Pattern is a compiled class pattern.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
	Group int // submatch index of the classes group
}

// patternFlags makes every class pattern case-insensitive and lets "." span
// lines. A pattern can switch either off again with (?-i) or (?-s).
const patternFlags = "(?is)"

// Patterns compiles the class patterns. Each regex needs a "classes" group.
func (s *Settings) Patterns() ([]Pattern, error) {
	out := make([]Pattern, 0, len(s.ClassPatterns))
	for _, ps := range s.ClassPatterns {
		re, err := regexp.Compile(patternFlags + ps.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, ps.Name, err)
		}

		group := re.SubexpIndex(classesGroup)
		if group < 0 {
			return nil, fmt.Errorf("%w %q: missing (?P<%s>...) group", ErrInvalidPattern, ps.Name, classesGroup)
		}

		out = append(out, Pattern{Name: ps.Name, Regex: re, Group: group})
	}
	return out, nil
}

// Workers resolves the jobs setting to a positive worker count.
func (s *Settings) Workers() int {
	if s.Jobs > 0 {
		return s.Jobs
	}
	return runtime.NumCPU()
}
