package sorting

import "strings"

// ParsedClass is the structured form of one raw class string under one
// Tables generation. Treat it as read-only; Variants must not be mutated.
type ParsedClass struct {
	Original  string
	Important bool
	Negated   bool
	Variants  []string
	Prefix    string

	// Empty means absent. Tokens are never empty.
	Direction string
	Size      string
	Value     string
	Color     string
	Shade     string

	// HasAlpha distinguishes "bg-red/" (present, empty) from "bg-red".
	Alpha    string
	HasAlpha bool

	Suffix string
}

// IsBase reports whether the class is a bare utility such as "border".
func (p ParsedClass) IsBase() bool {
	return p.Direction == "" &&
		p.Size == "" &&
		p.Value == "" &&
		p.Color == "" &&
		p.Shade == "" &&
		!p.HasAlpha &&
		p.Suffix == ""
}

// Parse decomposes raw using t.
//
//	"sm:hover:flex"        -> variants [sm hover], prefix flex
//	"!-mt-4"               -> important, negated, prefix mt, value 4
//	"border-t-red-500/50"  -> prefix border, direction t, color red, shade 500, alpha 50
func Parse(t *Tables, raw string) ParsedClass {
	pc := ParsedClass{Original: raw}

	rest := raw
	if strings.HasPrefix(rest, "!") {
		pc.Important = true
		rest = rest[1:]
	}

	parts := strings.Split(rest, t.separator)
	utility := parts[len(parts)-1]
	if len(parts) > 1 {
		pc.Variants = parts[:len(parts)-1]
	}

	if strings.HasPrefix(utility, "-") {
		pc.Negated = true
		utility = utility[1:]
	}

	if i := strings.LastIndexByte(utility, '/'); i >= 0 {
		pc.Alpha = utility[i+1:]
		pc.HasAlpha = true
		utility = utility[:i]
	}

	tokens := Tokenize(utility)
	if len(tokens) == 0 {
		return pc
	}

	n := t.prefixes.longest(tokens)
	if n == 0 {
		n = 1
	}
	pc.Prefix = strings.Join(tokens[:n], "-")

	classify(t, &pc, tokens[n:])

	return pc
}

// classify assigns leftover tokens to component slots. Each token goes to the
// first still-empty slot (direction, size, value, color, shade) whose table
// knows it; anything else lands in the suffix. Strictly first fit: a token
// that belongs to two tables is never reconsidered.
func classify(t *Tables, pc *ParsedClass, tokens []string) {
	var suffix []string

	for _, tok := range tokens {
		switch {
		case pc.Direction == "" && has(t.directionIndex, tok):
			pc.Direction = tok
		case pc.Size == "" && has(t.sizeIndex, tok):
			pc.Size = tok
		case pc.Value == "" && has(t.valueIndex, tok):
			pc.Value = tok
		case pc.Color == "" && has(t.colorIndex, tok):
			pc.Color = tok
		case pc.Shade == "" && has(t.shadeIndex, tok):
			pc.Shade = tok
		default:
			suffix = append(suffix, tok)
		}
	}

	pc.Suffix = strings.Join(suffix, "-")
}

func has(m map[string]int, k string) bool {
	_, ok := m[k]
	return ok
}
