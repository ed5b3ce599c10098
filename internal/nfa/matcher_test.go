package nfa

import (
	"testing"

	"github.com/coregx/regexlite/internal/ast"
)

func mustNew(t *testing.T, pattern string) *Matcher {
	t.Helper()
	tree, err := ast.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return New(tree, 0)
}

func TestScenarioLiteral(t *testing.T) {
	m := mustNew(t, "hello")
	match, ok, err := m.FirstMatch([]byte("say hello world"), 0)
	if err != nil || !ok {
		t.Fatalf("FirstMatch: ok=%v err=%v", ok, err)
	}
	if match.Start != 4 || match.End != 9 {
		t.Errorf("got [%d,%d), want [4,9)", match.Start, match.End)
	}
}

func TestScenarioPlusQuantifier(t *testing.T) {
	m := mustNew(t, "a+")
	all, err := m.AllMatches([]byte("caaab"))
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0] != (Match{1, 4}) {
		t.Errorf("got %v, want [[1,4)]", all)
	}
}

func TestScenarioEmailLikeClass(t *testing.T) {
	m := mustNew(t, `[a-z]+@[a-z]+\.[a-z]+`)
	all, err := m.AllMatches([]byte("mail me at x@y.co please"))
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0] != (Match{11, 17}) {
		t.Errorf("got %v, want [[11,17)]", all)
	}
}

func TestScenarioAnchoredAlternation(t *testing.T) {
	m := mustNew(t, "^(cat|dog)s?$")
	match, ok, err := m.FirstMatch([]byte("dogs"), 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if match.Start != 0 || match.End != 4 {
		t.Errorf("got [%d,%d), want [0,4)", match.Start, match.End)
	}
}

func TestScenarioLeftmostFirstNotLongest(t *testing.T) {
	m := mustNew(t, "a|ab")
	match, ok, err := m.FirstMatch([]byte("ab"), 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if match.Start != 0 || match.End != 1 {
		t.Errorf("got [%d,%d), want [0,1) (leftmost-first, not longest)", match.Start, match.End)
	}
}

func TestScenarioZeroWidthGroupQuantifier(t *testing.T) {
	m := mustNew(t, "(ab)*")
	match, ok, err := m.FirstMatch([]byte("ababx"), 0)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if match.Start != 0 || match.End != 4 {
		t.Errorf("got [%d,%d), want [0,4)", match.Start, match.End)
	}

	all, err := m.AllMatches([]byte("ababx"))
	if err != nil {
		t.Fatal(err)
	}
	if len(all) < 2 || all[0] != (Match{0, 4}) || all[1] != (Match{4, 4}) {
		t.Errorf("got %v, want [0,4) then [4,4) among the results", all)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Start < all[i-1].End && all[i-1].End != all[i-1].Start {
			t.Errorf("matches not ascending/non-overlapping: %v", all)
		}
	}
}

func TestBoundaryEmptyPattern(t *testing.T) {
	m := mustNew(t, "")
	match, ok, err := m.FirstMatch([]byte("xyz"), 1)
	if err != nil || !ok {
		t.Fatalf("empty pattern should match everywhere, ok=%v err=%v", ok, err)
	}
	if match.Start != 1 || match.End != 1 {
		t.Errorf("got [%d,%d), want zero-width match at 1", match.Start, match.End)
	}
}

func TestBoundaryAnchoredEmptyInput(t *testing.T) {
	m := mustNew(t, "^$")
	match, ok, err := m.FirstMatch([]byte(""), 0)
	if err != nil || !ok {
		t.Fatalf("^$ should match empty input, ok=%v err=%v", ok, err)
	}
	if match.Start != 0 || match.End != 0 {
		t.Errorf("got [%d,%d), want [0,0)", match.Start, match.End)
	}

	if _, ok, _ := mustNew(t, "^$").FirstMatch([]byte("x"), 0); ok {
		t.Error("^$ should not match non-empty input")
	}
}

func TestBoundaryZeroWidthStarAdvancesCursor(t *testing.T) {
	m := mustNew(t, "a*")
	all, err := m.AllMatches([]byte("bb"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Match{{0, 0}, {1, 1}, {2, 2}}
	if len(all) != len(want) {
		t.Fatalf("got %v, want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, all[i], want[i])
		}
	}
}

func TestBoundaryWildcardExcludesNewline(t *testing.T) {
	m := mustNew(t, ".")
	if _, ok, _ := m.FirstMatch([]byte("\n"), 0); ok {
		t.Error(". should not match \\n")
	}
	if _, ok, _ := m.FirstMatch([]byte("x"), 0); !ok {
		t.Error(". should match a non-newline byte")
	}
}

func TestBoundarySpaceMatchesNewline(t *testing.T) {
	m := mustNew(t, `\s`)
	if _, ok, _ := m.FirstMatch([]byte("\n"), 0); !ok {
		t.Error(`\s should match \n`)
	}
}

func TestStepLimitExceeded(t *testing.T) {
	tree, err := ast.Parse([]byte("(a*)*b"))
	if err != nil {
		t.Fatal(err)
	}
	m := New(tree, 5)
	_, _, err = m.FirstMatch([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac"), 0)
	if err != ErrStepLimitExceeded {
		t.Errorf("got err=%v, want ErrStepLimitExceeded", err)
	}
}

func TestAnchoredFirstMatchSkipsSliding(t *testing.T) {
	m := mustNew(t, "^abc")
	if _, ok, _ := m.FirstMatch([]byte("xabc"), 1); ok {
		t.Error("^abc should never match when START requires absolute position 0")
	}
}
