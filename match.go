package regexlite

// Match is a single successful search result: a half-open byte span
// [Start, End) within the text it was found in. regexlite has no capture
// groups, so every Match describes the whole pattern's extent (group 0).
type Match struct {
	Start, End int

	text []byte // non-owning: the slice FirstMatch/AllMatches were called with
}

// Text returns the matched bytes, a subslice of the text the search was run
// against. It aliases the caller's slice; copy it before mutating text.
func (m Match) Text() []byte {
	if m.text == nil {
		return nil
	}
	return m.text[m.Start:m.End]
}

// Len reports the match's width in bytes.
func (m Match) Len() int { return m.End - m.Start }

// MatchList is an append-only, ordered collection of matches, as produced
// by AllMatches. Its zero value is ready to use; the backing slice is
// allocated lazily on the first append rather than up front, since many
// searches find nothing.
type MatchList struct {
	matches []Match
}

func newMatchList(n int) *MatchList {
	if n <= 0 {
		return &MatchList{}
	}
	return &MatchList{matches: make([]Match, 0, n)}
}

// Add appends m to the list.
func (l *MatchList) Add(m Match) {
	if l.matches == nil {
		l.matches = make([]Match, 0, 8)
	}
	l.matches = append(l.matches, m)
}

// Len reports the number of matches collected so far.
func (l *MatchList) Len() int { return len(l.matches) }

// At returns the i'th match in order.
func (l *MatchList) At(i int) Match { return l.matches[i] }

// All returns the underlying slice of matches, in order. The caller must
// not mutate it.
func (l *MatchList) All() []Match { return l.matches }
