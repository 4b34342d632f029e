package sorting

import "strings"

// Tokenize splits a utility body on hyphens that sit outside brackets.
//
//	"border-t-2"           -> [border t 2]
//	"w-[100px]"            -> [w [100px]]
//	"grid-cols-[1fr_2fr]"  -> [grid cols [1fr_2fr]]
//
// Unbalanced brackets never fail: once depth leaves zero the rest of the
// string is literal.
func Tokenize(utility string) []string {
	var (
		tokens []string
		cur    strings.Builder
		depth  int
	)

	// Markers are ASCII, so multi-byte runes pass through byte for byte.
	for i := 0; i < len(utility); i++ {
		c := utility[i]
		switch {
		case c == '[':
			depth++
			cur.WriteByte(c)
		case c == ']':
			depth--
			cur.WriteByte(c)
		case c == '-' && depth == 0:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}

	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}

	return tokens
}
