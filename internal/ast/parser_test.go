package ast

import (
	"testing"
)

func mustParse(t *testing.T, pattern string) *Tree {
	t.Helper()
	tree, err := Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return tree
}

func TestParseLiteral(t *testing.T) {
	tree := mustParse(t, "abc")
	re := tree.Node(tree.Root)
	if re.Kind != NodeRE {
		t.Fatalf("root kind = %v, want NodeRE", re.Kind)
	}
	group := tree.Node(re.Children[0])
	if group.Kind != NodeGroup {
		t.Fatalf("RE child kind = %v, want NodeGroup", group.Kind)
	}
	if len(group.Children) != 3 {
		t.Fatalf("concat length = %d, want 3", len(group.Children))
	}
	for i, want := range []byte("abc") {
		el := tree.Node(group.Children[i])
		if el.Kind != NodeElement || el.Value[0] != want {
			t.Errorf("child %d = %+v, want literal %q", i, el, want)
		}
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern  string
		min, max int
	}{
		{"a*", 0, -1},
		{"a+", 1, -1},
		{"a?", 0, 1},
		{"a{3}", 3, 3},
		{"a{2,}", 2, -1},
		{"a{2,5}", 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tree := mustParse(t, tt.pattern)
			group := tree.Node(tree.Node(tree.Root).Children[0])
			el := tree.Node(group.Children[0])
			if el.Min != tt.min || el.Max != tt.max {
				t.Errorf("got (%d,%d), want (%d,%d)", el.Min, el.Max, tt.min, tt.max)
			}
		})
	}
}

func TestParseBadQuantifier(t *testing.T) {
	for _, pattern := range []string{"*a", "a{5,2}", "a**", "a{", "a{,}"} {
		if _, err := Parse([]byte(pattern)); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", pattern)
		}
	}
}

func TestParseAlternation(t *testing.T) {
	tree := mustParse(t, "a|b|c")
	top := tree.Node(tree.Node(tree.Root).Children[0])
	if top.Kind != NodeOr {
		t.Fatalf("top of a|b|c = %v, want NodeOr", top.Kind)
	}
	right := tree.Node(top.Children[1])
	if right.Kind != NodeOr {
		t.Fatalf("a|b|c should right-associate, got %v for second branch", right.Kind)
	}
}

func TestParseGroupCapturing(t *testing.T) {
	tree := mustParse(t, "(a)(?:b)")
	group := tree.Node(tree.Node(tree.Root).Children[0])
	if len(group.Children) != 2 {
		t.Fatalf("concat length = %d, want 2", len(group.Children))
	}
	capGroup := tree.Node(group.Children[0])
	if capGroup.Kind != NodeGroup || !capGroup.Capturing {
		t.Errorf("(a) should be a capturing group, got %+v", capGroup)
	}
	nonCapGroup := tree.Node(group.Children[1])
	if nonCapGroup.Kind != NodeGroup || nonCapGroup.Capturing {
		t.Errorf("(?:b) should be a non-capturing group, got %+v", nonCapGroup)
	}
}

func TestParseNamedGroup(t *testing.T) {
	tree := mustParse(t, "(?P<word>a+)")
	group := tree.Node(tree.Node(tree.Root).Children[0])
	capGroup := tree.Node(group.Children[0])
	if capGroup.GroupName != "word" {
		t.Errorf("GroupName = %q, want %q", capGroup.GroupName, "word")
	}
}

func TestParseCharClass(t *testing.T) {
	tree := mustParse(t, "[a-c^]")
	group := tree.Node(tree.Node(tree.Root).Children[0])
	rng := tree.Node(group.Children[0])
	if rng.Kind != NodeRange || !rng.Positive {
		t.Fatalf("got %+v", rng)
	}
	want := map[byte]bool{'a': true, 'b': true, 'c': true, '^': true}
	if len(rng.Value) != len(want) {
		t.Fatalf("members = %q, want 4 of %v", rng.Value, want)
	}
	for _, b := range rng.Value {
		if !want[b] {
			t.Errorf("unexpected member %q", b)
		}
	}
}

func TestParseNegatedCharClass(t *testing.T) {
	tree := mustParse(t, "[^0-9]")
	group := tree.Node(tree.Node(tree.Root).Children[0])
	rng := tree.Node(group.Children[0])
	if rng.Positive {
		t.Fatal("expected negated class")
	}
	if len(rng.Value) != 10 {
		t.Fatalf("members = %q, want 10 digits", rng.Value)
	}
}

func TestParseUnterminated(t *testing.T) {
	for _, pattern := range []string{"(abc", "[abc", "a)"} {
		if _, err := Parse([]byte(pattern)); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", pattern)
		}
	}
}

func TestParseEmptyPattern(t *testing.T) {
	tree := mustParse(t, "")
	group := tree.Node(tree.Node(tree.Root).Children[0])
	if len(group.Children) != 0 {
		t.Errorf("empty pattern should have empty concat, got %d children", len(group.Children))
	}
}
