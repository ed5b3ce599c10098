// Package regexlite provides a tiered regex engine for Go.
//
// Every compiled pattern is analyzed once, classified by complexity and
// dispatched to the cheapest strategy that can answer it correctly: an
// exact literal scan, an Aho-Corasick literal-alternation trie, a
// literal-anchored verify step, a literal-prefiltered backtracker, or the
// full backtracking NFA as a last resort.
//
// Basic usage:
//
//	re, err := regexlite.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	match := re.Find([]byte("hello 123 world"))
//	fmt.Println(string(match)) // "123"
//
//	if re.Match([]byte("hello 123")) {
//	    fmt.Println("matched!")
//	}
//
// Advanced usage:
//
//	config := regexlite.DefaultConfig()
//	config.MaxSteps = 100000
//	re, err := regexlite.CompileWithConfig(`(cat|dog)s?`, config)
//
// Limitations:
//   - No capture groups - every match reports only its overall span.
//   - No lookaround, backreferences or Unicode property classes.
//   - Leftmost-first semantics throughout, not POSIX leftmost-longest.
package regexlite

import (
	"github.com/coregx/regexlite/internal/ast"
	"github.com/coregx/regexlite/internal/dispatch"
)

// Pattern is a compiled regular expression, ready for repeated searches.
// A *Pattern holds no mutable state between calls and is safe to use
// concurrently from multiple goroutines.
type Pattern struct {
	plan    *dispatch.ExecutionPlan
	pattern string
}

// Compile compiles pattern using DefaultConfig's tier-selection thresholds.
//
// Example:
//
//	re, err := regexlite.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. It is intended for
// package-level Pattern variables built from literals known to be valid.
//
// Example:
//
//	var emailPattern = regexlite.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("regexlite: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles pattern, selecting its execution tier
// according to cfg's thresholds instead of the defaults.
func CompileWithConfig(pattern string, cfg Config) (*Pattern, error) {
	tree, err := ast.Parse([]byte(pattern))
	if err != nil {
		return nil, wrapCompileError(pattern, err)
	}
	return &Pattern{
		plan:    dispatch.Build(tree, cfg.toDispatchConfig()),
		pattern: pattern,
	}, nil
}

// String returns the source text p was compiled from.
//
// Example:
//
//	re := regexlite.MustCompile(`\d+`)
//	println(re.String()) // `\d+`
func (p *Pattern) String() string { return p.pattern }

// FirstMatch returns the leftmost match at or after start, or nil if the
// pattern does not match anywhere in text[start:]. The returned error is
// non-nil only when Config.MaxSteps was set and the search was aborted
// before reaching a definitive answer (ErrStepLimitExceeded).
func (p *Pattern) FirstMatch(text []byte, start int) (*Match, error) {
	m, ok, err := p.plan.FirstMatch(text, start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &Match{Start: m.Start, End: m.End, text: text}, nil
}

// AllMatches returns every non-overlapping, left-to-right match in text.
// A zero-width match advances the scan by one byte so it always
// terminates. Partial results are returned alongside a non-nil error if
// the search is aborted partway through.
func (p *Pattern) AllMatches(text []byte) (*MatchList, error) {
	matches, err := p.plan.AllMatches(text)
	list := newMatchList(len(matches))
	for _, m := range matches {
		list.Add(Match{Start: m.Start, End: m.End, text: text})
	}
	return list, err
}

// Match reports whether b contains any match of the pattern.
//
// Example:
//
//	re := regexlite.MustCompile(`\d+`)
//	if re.Match([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (p *Pattern) Match(b []byte) bool {
	m, _ := p.FirstMatch(b, 0)
	return m != nil
}

// MatchString reports whether s contains any match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b, or
// nil if there is none.
//
// Example:
//
//	re := regexlite.MustCompile(`\d+`)
//	match := re.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (p *Pattern) Find(b []byte) []byte {
	m, _ := p.FirstMatch(b, 0)
	if m == nil {
		return nil
	}
	return m.Text()
}

// FindString returns the text of the leftmost match in s, or "" if there
// is none.
func (p *Pattern) FindString(s string) string {
	b := p.Find([]byte(s))
	if b == nil {
		return ""
	}
	return string(b)
}

// FindIndex returns a two-element slice [start, end) giving the location
// of the leftmost match in b, or nil if there is none.
//
// Example:
//
//	re := regexlite.MustCompile(`\d+`)
//	loc := re.FindIndex([]byte("age: 42"))
//	println(loc[0], loc[1]) // 5, 7
func (p *Pattern) FindIndex(b []byte) []int {
	m, _ := p.FirstMatch(b, 0)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}

// FindStringIndex is FindIndex for a string subject.
func (p *Pattern) FindStringIndex(s string) []int {
	return p.FindIndex([]byte(s))
}

// FindAll returns every successive non-overlapping match of the pattern
// in b. If n >= 0, at most n matches are returned; n < 0 means unbounded.
//
// Example:
//
//	re := regexlite.MustCompile(`\d+`)
//	matches := re.FindAll([]byte("1 2 3"), -1)
//	// matches = [][]byte{[]byte("1"), []byte("2"), []byte("3")}
func (p *Pattern) FindAll(b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	list, _ := p.AllMatches(b)
	all := list.All()
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	if len(all) == 0 {
		return nil
	}
	out := make([][]byte, len(all))
	for i, m := range all {
		out[i] = m.Text()
	}
	return out
}

// FindAllString is FindAll for a string subject.
func (p *Pattern) FindAllString(s string, n int) []string {
	matches := p.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}
