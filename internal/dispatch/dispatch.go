// Package dispatch selects the cheapest execution tier capable of
// answering a compiled pattern correctly, and runs searches through it.
// Every tier besides TierNFAOnly is required to produce results identical
// to the NFA baseline for all inputs - that equivalence is exercised by
// this package's differential tests, not enforced at runtime.
package dispatch

import (
	"github.com/coregx/regexlite/internal/analyzer"
	"github.com/coregx/regexlite/internal/ast"
	"github.com/coregx/regexlite/internal/literal"
	"github.com/coregx/regexlite/internal/nfa"
	"github.com/coregx/regexlite/internal/simd"
	"github.com/coregx/regexlite/internal/trieset"
)

// Tier names an execution strategy, in the selection order they are
// attempted at compile time.
type Tier int

const (
	// TierExactLiteral bypasses the regex engine entirely: the pattern is
	// nothing but a literal string, so every hit of a Two-Way search is a
	// match verbatim.
	TierExactLiteral Tier = iota
	// TierLiteralTrie routes a pure alternation of literal branches
	// through an Aho-Corasick trie instead of the NFA's OR recursion.
	TierLiteralTrie
	// TierDFAEquivalent anchors on a long literal prefix: every match
	// must start at a confirmed occurrence, so the NFA is only invoked
	// to verify the remainder at that exact position.
	TierDFAEquivalent
	// TierPrefilterNFA rejects fast when a required literal is absent
	// anywhere in the text, and otherwise defers entirely to the NFA.
	TierPrefilterNFA
	// TierNFAOnly is the reference backtracking matcher with no
	// prefiltering.
	TierNFAOnly
)

// Config bounds tier selection thresholds, mirroring meta.Config's role
// in the teacher: tunables so callers can trade prefilter aggressiveness
// for memory/compile time without touching selection logic.
type Config struct {
	Analyzer analyzer.Config
	// MaxSteps bounds the NFA's backtracking work per search attempt; 0
	// is unbounded.
	MaxSteps int
	// MinPrefixLenForDFA is spec's "literal prefix length > 3" threshold
	// for the DFA-equivalent tier.
	MinPrefixLenForDFA int
	// MinRequiredLiteralLen is spec's "required literal >= 2 bytes"
	// threshold for the prefilter+NFA tier.
	MinRequiredLiteralLen int
	// EnableTrieTier toggles the literal-alternation Aho-Corasick tier.
	EnableTrieTier bool
}

// DefaultConfig returns the thresholds named in spec's tier table.
func DefaultConfig() Config {
	return Config{
		Analyzer:              analyzer.DefaultConfig(),
		MaxSteps:              0,
		MinPrefixLenForDFA:    3,
		MinRequiredLiteralLen: 2,
		EnableTrieTier:        true,
	}
}

// ExecutionPlan is the compiled-time output of tier selection: the AST,
// the chosen tier, and whichever precomputed auxiliaries that tier needs.
type ExecutionPlan struct {
	Tree *ast.Tree
	Tier Tier

	Complexity     analyzer.Complexity
	HasStartAnchor bool
	HasEndAnchor   bool

	matcher      *nfa.Matcher
	bestLiteral  literal.Literal
	hasLiteral   bool
	twoWay       *simd.TwoWaySearcher
	trieSet      *trieset.TrieSet
	trieBranches [][]byte

	// teddy, when non-nil, scans for every required literal in one pass
	// instead of just the single best-scored one - a strictly stronger
	// prefilter for patterns like "abc.*xyz" that require more than one
	// disjoint literal run.
	teddy            *simd.Teddy
	requiredLiterals [][]byte
}

// Build analyzes tree and selects its execution tier.
func Build(tree *ast.Tree, cfg Config) *ExecutionPlan {
	res := analyzer.Analyze(tree, cfg.Analyzer)
	lits := literal.Extract(tree)
	best, hasLiteral := lits.Best()

	plan := &ExecutionPlan{
		Tree:           tree,
		Complexity:     res.Complexity,
		HasStartAnchor: res.HasStartAnchor,
		HasEndAnchor:   res.HasEndAnchor,
		matcher:        nfa.New(tree, cfg.MaxSteps),
		bestLiteral:    best,
		hasLiteral:     hasLiteral,
	}

	switch {
	case hasLiteral && best.Prefix && best.Suffix && best.Required && isWholePatternLiteral(tree):
		plan.Tier = TierExactLiteral
		plan.twoWay = buildSearcher(best.Bytes)

	case cfg.EnableTrieTier && isLiteralAlternation(tree, &plan.trieBranches):
		plan.Tier = TierLiteralTrie
		plan.trieSet = trieset.Build(plan.trieBranches)

	case hasLiteral && res.Complexity == analyzer.Simple && best.Prefix && best.Len() > cfg.MinPrefixLenForDFA:
		plan.Tier = TierDFAEquivalent
		plan.twoWay = buildSearcher(best.Bytes)

	case hasLiteral && (res.Complexity == analyzer.Simple || res.Complexity == analyzer.Medium) &&
		best.Required && best.Len() >= cfg.MinRequiredLiteralLen:
		plan.Tier = TierPrefilterNFA
		plan.twoWay = buildSearcher(best.Bytes)
		plan.teddy, plan.requiredLiterals = buildRequiredLiteralTeddy(lits)

	default:
		plan.Tier = TierNFAOnly
	}

	return plan
}

func buildSearcher(lit []byte) *simd.TwoWaySearcher {
	if len(lit) < 2 {
		return nil
	}
	return simd.NewTwoWaySearcher(lit)
}

// buildRequiredLiteralTeddy collects every literal the pattern requires
// (not just the single best-scored one) and compiles them into a Teddy
// scanner, when there are at least two and Teddy's bucket scheme can take
// them. A pattern like "abc.*xyz" requires both "abc" and "xyz" to appear
// somewhere in any real match, so confirming both in one linear pass
// rejects strictly more non-matching input than checking "abc" alone.
func buildRequiredLiteralTeddy(seq *literal.Seq) (*simd.Teddy, [][]byte) {
	var required [][]byte
	for i := 0; i < seq.Len(); i++ {
		l := seq.Get(i)
		if l.Required && l.Len() >= simd.MinTeddyLiteral {
			required = append(required, l.Bytes)
		}
	}
	if len(required) < 2 {
		return nil, nil
	}
	t := simd.BuildTeddy(required)
	if t == nil {
		return nil, nil
	}
	return t, required
}

// isWholePatternLiteral reports whether tree's entire body is a
// concatenation of unquantified literal bytes with no metacharacters.
func isWholePatternLiteral(tree *ast.Tree) bool {
	body := tree.Node(tree.Node(tree.Root).Children[0])
	if body.Kind != ast.NodeGroup || len(body.Children) == 0 {
		return false
	}
	for _, c := range body.Children {
		n := tree.Node(c)
		if n.Kind != ast.NodeElement || n.Min != 1 || n.Max != 1 {
			return false
		}
	}
	return true
}

// isLiteralAlternation reports whether tree's entire body is a single OR
// node whose every branch is a non-empty pure literal string, and if so
// fills branches with those strings in syntax order.
func isLiteralAlternation(tree *ast.Tree, branches *[][]byte) bool {
	// A bare top-level alternation ("a|b|c") is the parser's OR node
	// itself, with no enclosing GROUP; a single-branch pattern is always
	// wrapped in one. Accept both shapes.
	bodyIdx := tree.Node(tree.Root).Children[0]
	body := tree.Node(bodyIdx)
	var orIdx int
	switch {
	case body.Kind == ast.NodeOr:
		orIdx = bodyIdx
	case body.Kind == ast.NodeGroup && len(body.Children) == 1 && tree.Node(body.Children[0]).Kind == ast.NodeOr:
		orIdx = body.Children[0]
	default:
		return false
	}

	var collected [][]byte
	for _, b := range flattenOr(tree, orIdx) {
		lit, ok := literalString(tree, b)
		if !ok || len(lit) == 0 {
			return false
		}
		collected = append(collected, lit)
	}
	if len(collected) < 2 {
		return false
	}
	*branches = collected
	return true
}

func flattenOr(tree *ast.Tree, idx int) []int {
	var out []int
	for {
		node := tree.Node(idx)
		if node.Kind != ast.NodeOr {
			return append(out, idx)
		}
		out = append(out, node.Children[0])
		idx = node.Children[1]
	}
}

func literalString(tree *ast.Tree, idx int) ([]byte, bool) {
	node := tree.Node(idx)
	if node.Kind != ast.NodeGroup {
		return nil, false
	}
	var out []byte
	for _, c := range node.Children {
		child := tree.Node(c)
		if child.Kind != ast.NodeElement || child.Min != 1 || child.Max != 1 {
			return nil, false
		}
		out = append(out, child.Value...)
	}
	return out, true
}
