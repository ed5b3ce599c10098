package dispatch

import (
	"github.com/coregx/regexlite/internal/nfa"
	"github.com/coregx/regexlite/internal/simd"
)

// FirstMatch runs plan's chosen tier from start and returns the first
// match, identically to what the NFA baseline would report.
func (p *ExecutionPlan) FirstMatch(text []byte, start int) (nfa.Match, bool, error) {
	switch p.Tier {
	case TierExactLiteral:
		return p.firstExactLiteral(text, start)
	case TierLiteralTrie:
		return p.firstTrie(text, start)
	case TierDFAEquivalent:
		return p.firstDFAEquivalent(text, start)
	case TierPrefilterNFA:
		return p.firstPrefilterNFA(text, start)
	default:
		return p.matcher.FirstMatch(text, start)
	}
}

// AllMatches runs plan's chosen tier over the whole text, collecting
// non-overlapping ascending matches the way nfa.Matcher.AllMatches does.
func (p *ExecutionPlan) AllMatches(text []byte) ([]nfa.Match, error) {
	var out []nfa.Match
	pos := 0
	for pos <= len(text) {
		m, ok, err := p.FirstMatch(text, pos)
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, m)
		if m.End == m.Start {
			pos = m.Start + 1
		} else {
			pos = m.End
		}
	}
	return out, nil
}

// firstExactLiteral bypasses the NFA entirely: a Two-Way (or single-byte)
// hit at or after start is a match verbatim, spanning the literal's width.
func (p *ExecutionPlan) firstExactLiteral(text []byte, start int) (nfa.Match, bool, error) {
	lit := p.bestLiteral.Bytes
	pos := indexLiteral(p.twoWay, lit, text, start)
	if pos < 0 {
		return nfa.Match{}, false, nil
	}
	return nfa.Match{Start: pos, End: pos + len(lit)}, true, nil
}

// firstTrie delegates to the Aho-Corasick literal-alternation fast path.
func (p *ExecutionPlan) firstTrie(text []byte, start int) (nfa.Match, bool, error) {
	_, pos, end, ok := p.trieSet.FirstMatch(text, start)
	if !ok {
		return nfa.Match{}, false, nil
	}
	return nfa.Match{Start: pos, End: end}, true, nil
}

// firstDFAEquivalent exploits the literal being a guaranteed prefix:
// every real match starts exactly at a literal occurrence, so the NFA is
// invoked only to verify the remainder there, with no sliding.
func (p *ExecutionPlan) firstDFAEquivalent(text []byte, start int) (nfa.Match, bool, error) {
	lit := p.bestLiteral.Bytes
	searchFrom := start
	for {
		pos := indexLiteral(p.twoWay, lit, text, searchFrom)
		if pos < 0 {
			return nfa.Match{}, false, nil
		}
		m, ok, err := p.matcher.MatchAt(text, pos)
		if err != nil {
			return nfa.Match{}, false, err
		}
		if ok {
			return m, true, nil
		}
		searchFrom = pos + 1
	}
}

// firstPrefilterNFA rejects fast when a required literal is absent
// anywhere in the remaining text (no match is possible then, since every
// required literal must appear in any real match), and otherwise defers
// to the NFA unchanged: its result is identical to the NFA baseline by
// construction. When the pattern requires more than one literal run (e.g.
// "abc.*xyz"), a single Teddy pass confirms all of them are present,
// rejecting strictly more non-matching input than testing the
// best-scored literal alone.
func (p *ExecutionPlan) firstPrefilterNFA(text []byte, start int) (nfa.Match, bool, error) {
	if p.teddy != nil {
		if !allRequiredLiteralsPresent(p.teddy, p.requiredLiterals, text, start) {
			return nfa.Match{}, false, nil
		}
		return p.matcher.FirstMatch(text, start)
	}

	lit := p.bestLiteral.Bytes
	if indexLiteral(p.twoWay, lit, text, start) < 0 {
		return nfa.Match{}, false, nil
	}
	return p.matcher.FirstMatch(text, start)
}

// allRequiredLiteralsPresent scans text once with teddy, accumulating
// which of the required literals have been confirmed seen at or after
// start. It reports true only once every one of them has turned up
// somewhere (in any order) - the weakest condition every real match must
// satisfy. Teddy reports one literal per hit position, so each hit is also
// checked against every literal not yet seen.
func allRequiredLiteralsPresent(teddy *simd.Teddy, required [][]byte, text []byte, start int) bool {
	seen := make([]bool, len(required))
	remaining := len(required)
	pos := start
	for remaining > 0 {
		m, ok := teddy.Find(text, pos)
		if !ok {
			return false
		}
		for i, lit := range required {
			if !seen[i] && m.Start+len(lit) <= len(text) && bytesEqual(text[m.Start:m.Start+len(lit)], lit) {
				seen[i] = true
				remaining--
			}
		}
		pos = m.Start + 1
	}
	return true
}

// indexLiteral finds the first occurrence of lit in text at or after
// from, using the precomputed Two-Way searcher when available (len >= 2)
// and a direct scan for single-byte literals.
func indexLiteral(tw *simd.TwoWaySearcher, lit []byte, text []byte, from int) int {
	if tw != nil {
		return tw.Find(text, from)
	}
	if len(lit) == 0 {
		return -1
	}
	for i := from; i+len(lit) <= len(text); i++ {
		if text[i] == lit[0] && bytesEqual(text[i:i+len(lit)], lit) {
			return i
		}
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
