package literal

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

func TestExtractWholeLiteral(t *testing.T) {
	tree := mustParse(t, "abc")
	seq := Extract(tree)
	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	lit := seq.Get(0)
	if string(lit.Bytes) != "abc" || !lit.Prefix || !lit.Suffix || !lit.Required {
		t.Errorf("got %+v", lit)
	}
}

func TestExtractPrefixAndSuffix(t *testing.T) {
	tree := mustParse(t, "abc.*xyz")
	seq := Extract(tree)
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2: %+v", seq.Len(), seq.Literals)
	}
	first, second := seq.Get(0), seq.Get(1)
	if string(first.Bytes) != "abc" || !first.Prefix || first.Suffix {
		t.Errorf("first literal = %+v", first)
	}
	if string(second.Bytes) != "xyz" || second.Prefix || !second.Suffix {
		t.Errorf("second literal = %+v", second)
	}
}

func TestExtractBestPrefersLonger(t *testing.T) {
	tree := mustParse(t, "ab.*wxyz")
	seq := Extract(tree)
	best, ok := seq.Best()
	if !ok {
		t.Fatal("Best() returned ok=false")
	}
	if string(best.Bytes) != "wxyz" {
		t.Errorf("Best() = %q, want %q", best.Bytes, "wxyz")
	}
}

func TestExtractSkipsAlternation(t *testing.T) {
	tree := mustParse(t, "abc|xyz")
	seq := Extract(tree)
	if seq.Len() != 0 {
		t.Errorf("alternation pattern should yield no literals, got %+v", seq.Literals)
	}
}

func TestExtractNoLiteral(t *testing.T) {
	tree := mustParse(t, `\d+`)
	seq := Extract(tree)
	if seq.Len() != 0 {
		t.Errorf("digit-class-only pattern should yield no literals, got %+v", seq.Literals)
	}
}
