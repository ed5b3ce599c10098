package analyzer

import (
	"testing"

	"github.com/coregx/regexlite/internal/ast"
)

func mustParse(t *testing.T, pattern string) *ast.Tree {
	t.Helper()
	tree, err := ast.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return tree
}

func TestClassifySimple(t *testing.T) {
	cfg := DefaultConfig()
	for _, pattern := range []string{"abc", "a*", "a+", "a?", "a{2,5}", "a|b|c", "(abc)+"} {
		t.Run(pattern, func(t *testing.T) {
			tree := mustParse(t, pattern)
			got := Analyze(tree, cfg).Complexity
			if got != Simple {
				t.Errorf("Analyze(%q).Complexity = %v, want SIMPLE", pattern, got)
			}
		})
	}
}

func TestClassifyMedium(t *testing.T) {
	cfg := DefaultConfig()
	tree := mustParse(t, "a{5,80}")
	got := Analyze(tree, cfg).Complexity
	if got != Medium {
		t.Errorf("Analyze(a{5,80}).Complexity = %v, want MEDIUM", got)
	}
}

func TestClassifyComplex(t *testing.T) {
	cfg := DefaultConfig()
	for _, pattern := range []string{"a{5,500}", "a{10,}"} {
		t.Run(pattern, func(t *testing.T) {
			tree := mustParse(t, pattern)
			got := Analyze(tree, cfg).Complexity
			if got != Complex {
				t.Errorf("Analyze(%q).Complexity = %v, want COMPLEX", pattern, got)
			}
		})
	}
}

func TestClassifyDeepOrEscapeHatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OrDepthThreshold = -1 // force the branch under test regardless of nesting
	tree := mustParse(t, "abx|aby")
	got := Analyze(tree, cfg).Complexity
	if got != Simple {
		t.Errorf("shared-prefix literal alternation at depth should stay SIMPLE, got %v", got)
	}
}

func TestAnchorFlags(t *testing.T) {
	tests := []struct {
		pattern       string
		wantStart     bool
		wantEnd       bool
	}{
		{"abc", false, false},
		{"^abc", true, false},
		{"abc$", false, true},
		{"^abc$", true, true},
		{"(^abc)", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tree := mustParse(t, tt.pattern)
			res := Analyze(tree, DefaultConfig())
			if res.HasStartAnchor != tt.wantStart {
				t.Errorf("HasStartAnchor = %v, want %v", res.HasStartAnchor, tt.wantStart)
			}
			if res.HasEndAnchor != tt.wantEnd {
				t.Errorf("HasEndAnchor = %v, want %v", res.HasEndAnchor, tt.wantEnd)
			}
		})
	}
}
