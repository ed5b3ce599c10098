// Package analyzer classifies a parsed pattern into a complexity class and
// extracts the anchor flags the dispatcher needs to pick an execution tier.
//
// Literal-hint extraction (required/prefix/suffix substrings) lives in the
// sibling internal/literal package; this package only answers "how
// expensive could backtracking get" and "is this pattern anchored".
package analyzer

import "github.com/coregx/regexlite/internal/ast"

// Complexity classifies how much backtracking work a pattern's NFA walk
// could require in the worst case.
type Complexity int

const (
	Simple Complexity = iota
	Medium
	Complex
)

func (c Complexity) String() string {
	switch c {
	case Simple:
		return "SIMPLE"
	case Medium:
		return "MEDIUM"
	default:
		return "COMPLEX"
	}
}

// Config bounds the classification thresholds so they are not magic
// numbers sprinkled through the walk, following the *Config struct
// convention used throughout the teacher's literal/prefilter/meta packages.
type Config struct {
	// MaxGroupDepth: a GROUP nested deeper than this is COMPLEX outright.
	MaxGroupDepth int
	// SimpleSpan: a bounded {n,m} quantifier with m-n within this span is SIMPLE.
	SimpleSpan int
	// MediumSpan: a bounded {n,m} quantifier with m-n within this span is MEDIUM.
	MediumSpan int
	// MaxSimpleOrBranches: an OR at depth <= 2 with at most this many
	// already-SIMPLE branches is itself SIMPLE.
	MaxSimpleOrBranches int
	// OrDepthThreshold: an OR nested deeper than this requires the
	// shared-literal-prefix escape hatch to stay SIMPLE.
	OrDepthThreshold int
	// MinLiteralPrefixLen: minimum shared prefix length for the
	// literal-alternation escape hatch.
	MinLiteralPrefixLen int
}

// DefaultConfig returns the thresholds from spec's classification table.
func DefaultConfig() Config {
	return Config{
		MaxGroupDepth:       3,
		SimpleSpan:          10,
		MediumSpan:          100,
		MaxSimpleOrBranches: 5,
		OrDepthThreshold:    2,
		MinLiteralPrefixLen: 2,
	}
}

// Result is the outcome of analyzing a compiled pattern.
type Result struct {
	Complexity     Complexity
	HasStartAnchor bool
	HasEndAnchor   bool
}

// Analyze classifies tree and extracts its anchor flags.
func Analyze(tree *ast.Tree, cfg Config) Result {
	re := tree.Node(tree.Root)
	bodyIdx := re.Children[0]

	return Result{
		Complexity:     classify(tree, bodyIdx, 0, cfg),
		HasStartAnchor: leadsWithStart(tree, bodyIdx),
		HasEndAnchor:   endsWithEnd(tree, bodyIdx),
	}
}

func classify(tree *ast.Tree, idx int, depth int, cfg Config) Complexity {
	node := tree.Node(idx)

	switch node.Kind {
	case ast.NodeElement, ast.NodeWildcard, ast.NodeSpace, ast.NodeDigit,
		ast.NodeRange, ast.NodeStart, ast.NodeEnd:
		return classifyQuantifier(node.Min, node.Max, cfg)

	case ast.NodeOr:
		branches := flattenOr(tree, idx)
		if depth > cfg.OrDepthThreshold {
			if literalBranchesShareCommonPrefix(tree, branches, cfg.MinLiteralPrefixLen) {
				return Simple
			}
			return Complex
		}
		worst := Simple
		for _, b := range branches {
			if c := classify(tree, b, depth, cfg); c > worst {
				worst = c
			}
		}
		if len(branches) <= cfg.MaxSimpleOrBranches && worst == Simple {
			return Simple
		}
		return worst

	case ast.NodeGroup:
		if depth > cfg.MaxGroupDepth {
			return Complex
		}
		worst := Simple
		for _, c := range node.Children {
			if cc := classify(tree, c, depth+1, cfg); cc > worst {
				worst = cc
			}
		}
		if quantified(node) {
			if allChildrenPureLiteral(tree, node) {
				return Simple
			}
			if isLiteralOnlyAlternation(tree, node) {
				return Simple
			}
		}
		return worst

	default:
		return Complex
	}
}

func quantified(node *ast.Node) bool {
	return node.Min != 1 || node.Max != 1
}

func classifyQuantifier(min, max int, cfg Config) Complexity {
	switch {
	case min == 0 && max == -1: // *
		return Simple
	case min == 1 && max == -1: // +
		return Simple
	case min == 0 && max == 1: // ?
		return Simple
	case max == -1: // {n,} for n > 1: unbounded work with a floor, treat conservatively
		return Complex
	case max-min <= cfg.SimpleSpan:
		return Simple
	case max-min <= cfg.MediumSpan:
		return Medium
	default:
		return Complex
	}
}

// flattenOr walks a right-associative OR chain (OR(b0, OR(b1, OR(b2, b3))))
// and returns the flat list of alternative branch node indices.
func flattenOr(tree *ast.Tree, idx int) []int {
	var branches []int
	for {
		node := tree.Node(idx)
		if node.Kind != ast.NodeOr {
			branches = append(branches, idx)
			return branches
		}
		branches = append(branches, node.Children[0])
		idx = node.Children[1]
	}
}

// literalString reports whether idx is a GROUP whose children are all
// unquantified literal ELEMENT nodes, returning the concatenated bytes.
func literalString(tree *ast.Tree, idx int) ([]byte, bool) {
	node := tree.Node(idx)
	if node.Kind != ast.NodeGroup {
		return nil, false
	}
	var out []byte
	for _, c := range node.Children {
		child := tree.Node(c)
		if child.Kind != ast.NodeElement || quantified(child) {
			return nil, false
		}
		out = append(out, child.Value...)
	}
	return out, true
}

func literalBranchesShareCommonPrefix(tree *ast.Tree, branches []int, minLen int) bool {
	var strs [][]byte
	for _, b := range branches {
		s, ok := literalString(tree, b)
		if !ok {
			return false
		}
		strs = append(strs, s)
	}
	if len(strs) < 2 {
		return false
	}
	prefixLen := commonPrefixLen(strs)
	return prefixLen >= minLen
}

func commonPrefixLen(strs [][]byte) int {
	if len(strs) == 0 {
		return 0
	}
	n := len(strs[0])
	for _, s := range strs[1:] {
		if len(s) < n {
			n = len(s)
		}
	}
	for i := 0; i < n; i++ {
		c := strs[0][i]
		for _, s := range strs[1:] {
			if s[i] != c {
				return i
			}
		}
	}
	return n
}

func allChildrenPureLiteral(tree *ast.Tree, node *ast.Node) bool {
	for _, c := range node.Children {
		child := tree.Node(c)
		if child.Kind != ast.NodeElement || quantified(child) {
			return false
		}
	}
	return len(node.Children) > 0
}

// isLiteralOnlyAlternation reports whether a quantified GROUP's single
// child is an OR whose every branch is a pure literal string, i.e. the
// (a|b)* shape.
func isLiteralOnlyAlternation(tree *ast.Tree, node *ast.Node) bool {
	if len(node.Children) != 1 {
		return false
	}
	child := tree.Node(node.Children[0])
	if child.Kind != ast.NodeOr {
		return false
	}
	for _, b := range flattenOr(tree, node.Children[0]) {
		if _, ok := literalString(tree, b); !ok {
			return false
		}
	}
	return true
}

// leadsWithStart descends the first-element chain (through GROUP wrappers
// and the left branch of alternations) looking for a leading START anchor.
func leadsWithStart(tree *ast.Tree, idx int) bool {
	for {
		node := tree.Node(idx)
		switch node.Kind {
		case ast.NodeStart:
			return true
		case ast.NodeGroup:
			if len(node.Children) == 0 {
				return false
			}
			idx = node.Children[0]
		case ast.NodeOr:
			idx = node.Children[0]
		default:
			return false
		}
	}
}

// endsWithEnd descends the last-element chain (through GROUP wrappers and
// the right branch of alternations) looking for a trailing END anchor.
func endsWithEnd(tree *ast.Tree, idx int) bool {
	for {
		node := tree.Node(idx)
		switch node.Kind {
		case ast.NodeEnd:
			return true
		case ast.NodeGroup:
			if len(node.Children) == 0 {
				return false
			}
			idx = node.Children[len(node.Children)-1]
		case ast.NodeOr:
			idx = node.Children[1]
		default:
			return false
		}
	}
}
