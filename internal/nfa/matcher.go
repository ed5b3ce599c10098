// Package nfa implements the reference backtracking matcher: a recursive,
// top-down walk of the AST with greedy-with-backtracking quantifiers and
// leftmost-first alternation. Every other execution tier is checked
// against this one in differential tests, so its job is correctness, not
// speed.
package nfa

import (
	"github.com/coregx/regexlite/internal/ast"
	"github.com/coregx/regexlite/internal/simd"
)

// Match is a half-open byte span [Start, End) within the subject that the
// matcher produced for group_id=0, the outermost match.
type Match struct {
	Start, End int
}

// cont is the "what comes next" continuation a node's match feeds its
// resulting position into. Matching succeeds only if some continuation in
// the chain ultimately returns ok=true - this is what gives GROUP,
// quantifiers and OR their backtracking behavior for free: each failure
// just means "try the next candidate position/branch" one level up.
type cont func(i int) (int, bool)

func identity(i int) (int, bool) { return i, true }

// Matcher runs the backtracking algorithm against a single compiled Tree.
// A Matcher is stateless between calls and safe for concurrent read-only
// use; each search call builds its own scratch walk state.
type Matcher struct {
	tree     *ast.Tree
	anchored bool
	maxSteps int

	// rangeBitmaps holds one precomputed ClassBitmap per RANGE node,
	// keyed by node index, built once here instead of re-scanning
	// node.Value on every byte tested during every search.
	rangeBitmaps map[int]simd.ClassBitmap
}

// New builds a Matcher for tree. maxSteps bounds the number of
// _match_node-equivalent calls per search attempt; 0 means unbounded.
func New(tree *ast.Tree, maxSteps int) *Matcher {
	return &Matcher{
		tree:         tree,
		anchored:     leadsWithStartAnchor(tree),
		maxSteps:     maxSteps,
		rangeBitmaps: buildRangeBitmaps(tree),
	}
}

// buildRangeBitmaps precomputes a ClassBitmap for every RANGE node in
// tree, so matchContentOnce's NodeRange case is an O(1) bitmap test
// instead of a linear scan of the node's enumerated member bytes.
func buildRangeBitmaps(tree *ast.Tree) map[int]simd.ClassBitmap {
	bitmaps := make(map[int]simd.ClassBitmap)
	for i := range tree.Nodes {
		if tree.Nodes[i].Kind == ast.NodeRange {
			bitmaps[i] = simd.BuildClassBitmap(tree.Nodes[i].Value)
		}
	}
	return bitmaps
}

// leadsWithStartAnchor reports whether tree's pattern requires i==0 to
// ever succeed, so FirstMatch can skip sliding the start position forward.
// It resembles internal/analyzer's anchor-flag walk but requires every
// alternation branch to be anchored, and is kept local so the baseline
// matcher has no dependency on the optimizer-facing classifier package.
func leadsWithStartAnchor(tree *ast.Tree) bool {
	var leads func(idx int) bool
	leads = func(idx int) bool {
		node := tree.Node(idx)
		switch node.Kind {
		case ast.NodeStart:
			return node.Min > 0
		case ast.NodeGroup:
			return len(node.Children) > 0 && leads(node.Children[0])
		case ast.NodeOr:
			return leads(node.Children[0]) && leads(node.Children[1])
		default:
			return false
		}
	}
	return leads(tree.Node(tree.Root).Children[0])
}

// walk holds the per-search scratch state: the step counter and the
// first StepLimitExceeded failure, if any.
type walk struct {
	tree     *ast.Tree
	text     []byte
	steps    int
	maxSteps int
	err      error

	rangeBitmaps map[int]simd.ClassBitmap
}

// FirstMatch tries to match starting at start, then start+1, ... up to
// len(text), returning the first success. If the pattern is anchored with
// START, only start itself is tried, since START can only ever succeed at
// absolute position 0.
func (m *Matcher) FirstMatch(text []byte, start int) (Match, bool, error) {
	for pos := start; pos <= len(text); pos++ {
		w := &walk{tree: m.tree, text: text, maxSteps: m.maxSteps, rangeBitmaps: m.rangeBitmaps}
		end, ok := w.matchNode(m.tree.Root, pos, identity)
		if w.err != nil {
			return Match{}, false, w.err
		}
		if ok {
			return Match{Start: pos, End: end}, true, nil
		}
		if m.anchored {
			break
		}
	}
	return Match{}, false, nil
}

// MatchAt tries to match starting exactly at pos, with no sliding to
// later positions on failure. Tier implementations that have already
// located a candidate anchor (a confirmed literal occurrence, a START
// anchor) use this instead of FirstMatch to avoid redundantly re-scanning
// positions the prefilter already ruled out.
func (m *Matcher) MatchAt(text []byte, pos int) (Match, bool, error) {
	w := &walk{tree: m.tree, text: text, maxSteps: m.maxSteps, rangeBitmaps: m.rangeBitmaps}
	end, ok := w.matchNode(m.tree.Root, pos, identity)
	if w.err != nil {
		return Match{}, false, w.err
	}
	if !ok {
		return Match{}, false, nil
	}
	return Match{Start: pos, End: end}, true, nil
}

// AllMatches iterates match positions left to right, appending each
// success and advancing to its end (or start+1 for a zero-width match, to
// avoid looping forever). Matches are non-overlapping and ascending.
func (m *Matcher) AllMatches(text []byte) ([]Match, error) {
	var out []Match
	pos := 0
	for pos <= len(text) {
		match, ok, err := m.FirstMatch(text, pos)
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, match)
		if match.End == match.Start {
			pos = match.Start + 1
		} else {
			pos = match.End
		}
	}
	return out, nil
}

// matchNode applies the quantifier wrapper for the node at idx, then
// dispatches to matchContentOnce for its single-repetition semantics.
// Unquantified nodes (Min==Max==1, the overwhelming majority - leaves,
// RE, unquantified GROUP, OR) skip the repetition loop entirely.
func (w *walk) matchNode(idx int, i int, next cont) (int, bool) {
	if w.err != nil {
		return 0, false
	}
	w.steps++
	if w.maxSteps > 0 && w.steps > w.maxSteps {
		w.err = ErrStepLimitExceeded
		return 0, false
	}

	node := w.tree.Node(idx)
	if node.Min == 1 && node.Max == 1 {
		return w.matchContentOnce(idx, i, next)
	}
	return w.matchQuantified(idx, node, i, next)
}

// matchQuantified implements greedy-with-backtracking repetition: greedily
// consume as many repetitions as possible (each resolved independently via
// an identity continuation, per spec's "consume exactly k repetitions,
// greedy prefix" step), then try the remaining siblings at k = the greedy
// count down to min, returning on the first success.
func (w *walk) matchQuantified(idx int, node *ast.Node, i int, next cont) (int, bool) {
	positions := []int{i}
	cur := i
	count := 0
	for node.Max == -1 || count < node.Max {
		newI, ok := w.matchContentOnce(idx, cur, identity)
		if w.err != nil {
			return 0, false
		}
		if !ok {
			break
		}
		count++
		positions = append(positions, newI)
		if newI == cur {
			// Zero-width repetition (e.g. a quantified zero-width atom):
			// counted once, then stop - further iterations would never
			// advance and would only grow the backtrack search in vain.
			break
		}
		cur = newI
	}

	if count < node.Min {
		return 0, false
	}
	for reps := count; reps >= node.Min; reps-- {
		if newI, ok := next(positions[reps]); ok {
			return newI, true
		}
		if w.err != nil {
			return 0, false
		}
	}
	return 0, false
}

// matchContentOnce dispatches by node kind, ignoring the node's own
// Min/Max (that belongs to matchNode's wrapper); it is the "body matched
// exactly once" referenced throughout the quantifier algorithm.
func (w *walk) matchContentOnce(idx int, i int, next cont) (int, bool) {
	node := w.tree.Node(idx)

	switch node.Kind {
	case ast.NodeElement:
		if i < len(w.text) && w.text[i] == node.Value[0] {
			return next(i + 1)
		}
		return 0, false

	case ast.NodeWildcard:
		if i < len(w.text) && w.text[i] != '\n' {
			return next(i + 1)
		}
		return 0, false

	case ast.NodeSpace:
		if i < len(w.text) && isSpace(w.text[i]) {
			return next(i + 1)
		}
		return 0, false

	case ast.NodeDigit:
		if i < len(w.text) && isDigit(w.text[i]) {
			return next(i + 1)
		}
		return 0, false

	case ast.NodeRange:
		if i < len(w.text) && w.rangeBitmaps[idx].Contains(w.text[i]) == node.Positive {
			return next(i + 1)
		}
		return 0, false

	case ast.NodeStart:
		if i == 0 {
			return next(i)
		}
		return 0, false

	case ast.NodeEnd:
		if i == len(w.text) {
			return next(i)
		}
		return 0, false

	case ast.NodeOr:
		if newI, ok := w.matchNode(node.Children[0], i, next); ok {
			return newI, true
		}
		if w.err != nil {
			return 0, false
		}
		return w.matchNode(node.Children[1], i, next)

	case ast.NodeGroup:
		return w.matchSeq(node.Children, 0, i, next)

	case ast.NodeRE:
		return w.matchNode(node.Children[0], i, next)

	default:
		return 0, false
	}
}

// matchSeq threads a GROUP's children together as a concatenation: each
// child's continuation is "match the rest of the sequence", so a
// backtrack inside any child naturally retries against whatever the
// remaining siblings (and everything after the group) require.
func (w *walk) matchSeq(children []int, pos int, i int, next cont) (int, bool) {
	if pos == len(children) {
		return next(i)
	}
	return w.matchNode(children[pos], i, func(j int) (int, bool) {
		return w.matchSeq(children, pos+1, j, next)
	})
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
