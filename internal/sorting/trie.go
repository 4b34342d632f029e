package sorting

import "strings"

// prefixTrie indexes the prefix table by token path so the longest known
// prefix of a token list is found in one walk.
type prefixTrie struct {
	children map[string]*prefixTrie
	terminal bool
}

func newPrefixTrie(prefixes []string) *prefixTrie {
	root := &prefixTrie{}
	for _, p := range prefixes {
		path := Tokenize(p)
		// An entry that does not survive a tokenize/join round trip
		// ("a--b", "-x") can never equal a joined token run.
		if len(path) == 0 || strings.Join(path, "-") != p {
			continue
		}
		root.insert(path)
	}
	return root
}

func (n *prefixTrie) insert(path []string) {
	node := n
	for _, tok := range path {
		if node.children == nil {
			node.children = make(map[string]*prefixTrie)
		}
		next, ok := node.children[tok]
		if !ok {
			next = &prefixTrie{}
			node.children[tok] = next
		}
		node = next
	}
	node.terminal = true
}

// longest returns how many leading tokens form the longest known prefix,
// or 0 when none do.
func (n *prefixTrie) longest(tokens []string) int {
	best := 0
	node := n
	for i, tok := range tokens {
		next, ok := node.children[tok]
		if !ok {
			break
		}
		node = next
		if node.terminal {
			best = i + 1
		}
	}
	return best
}
