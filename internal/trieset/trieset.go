// Package trieset wires github.com/itgcl/ahocorasick into the tier
// dispatcher's literal-alternation fast path: a pattern analyzed as an OR
// of literal branches is handled by building an Aho-Corasick automaton
// over the branches instead of walking the NFA's OR recursion node by
// node. This is the "handled via trie DFA" clause made concrete - the
// Aho-Corasick trie is the trie DFA.
package trieset

import (
	"bytes"

	"github.com/itgcl/ahocorasick"
)

// TrieSet is a compiled set of literal alternation branches. Branch order
// is preserved so leftmost-first tie-breaking (lower branch index wins
// when two branches start at the same text position) matches the NFA's
// alternation semantics exactly.
type TrieSet struct {
	branches [][]byte
	matcher  *ahocorasick.Matcher
}

// Build compiles branches, the literal alternatives of an OR node, in
// their original left-to-right syntax order.
func Build(branches [][]byte) *TrieSet {
	return &TrieSet{
		branches: branches,
		matcher:  ahocorasick.NewMatcher(branches),
	}
}

// FirstMatch returns the leftmost occurrence of any branch in text at or
// after start: the branch index (in original syntax order), and its
// [pos, end) span. ok is false if no branch occurs.
//
// ahocorasick.Matcher only reports which dictionary word was seen, not
// where, so it is used here purely as a fast existence pre-check
// (Contains) over the remaining text; the exact leftmost position and the
// leftmost-first tie-break between branches is then resolved with a plain
// bytes.Index scan, which also sidesteps the library's rune-oriented
// scanning on text that is not valid UTF-8.
func (ts *TrieSet) FirstMatch(text []byte, start int) (branchIndex, pos, end int, ok bool) {
	if start > len(text) {
		return 0, 0, 0, false
	}
	if !ts.matcher.ContainsString(string(text[start:])) {
		return 0, 0, 0, false
	}

	bestPos := -1
	bestIdx := -1
	for i, branch := range ts.branches {
		if len(branch) == 0 {
			continue
		}
		rel := bytes.Index(text[start:], branch)
		if rel < 0 {
			continue
		}
		p := start + rel
		// Strict "<" only: among branches tied on the smallest start
		// position, the earlier-indexed one already stored wins, matching
		// leftmost-first alternation semantics.
		if bestPos == -1 || p < bestPos {
			bestPos = p
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return 0, 0, 0, false
	}
	return bestIdx, bestPos, bestPos + len(ts.branches[bestIdx]), true
}
