package simd

// TwoWaySearcher implements the Crochemore-Perrin two-way string matching
// algorithm: the needle is split at its critical point (the maximal
// suffix, computed once at construction) so that matching proceeds
// left-to-right in blocks no longer than the needle's period, giving
// worst-case linear time with O(1) extra memory and no precomputed
// shift tables. The byte-compare inner loop is where a real SIMD port
// would widen to a vector compare; here it is the scalar equivalent
// (spec.md §9 explicitly permits a scalar Two-Way implementation).
type TwoWaySearcher struct {
	needle []byte
	period int
	critPos int
}

// NewTwoWaySearcher builds a searcher for needle. needle must be
// non-empty.
func NewTwoWaySearcher(needle []byte) *TwoWaySearcher {
	critPos, period1 := maximalSuffix(needle, false)
	critPos2, period2 := maximalSuffix(needle, true)

	pos, period := critPos, period1
	if critPos2 > critPos {
		pos, period = critPos2, period2
	}

	return &TwoWaySearcher{needle: needle, period: period, critPos: pos}
}

// maximalSuffix computes the position of the maximal suffix of needle
// under the given ordering (reverseOrder flips the byte comparison, which
// is how the classic algorithm computes both the "<=" and ">=" maximal
// suffixes; NewTwoWaySearcher keeps whichever starts later).
func maximalSuffix(needle []byte, reverseOrder bool) (pos int, period int) {
	less := func(a, b byte) bool {
		if reverseOrder {
			return a > b
		}
		return a < b
	}

	i, j := -1, 0
	k, p := 1, 1
	n := len(needle)

	for j+k < n {
		a, b := needle[i+k], needle[j+k]
		switch {
		case less(a, b):
			j += k
			k = 1
			p = j - i
		case a == b:
			if k == p {
				j += p
				k = 1
			} else {
				k++
			}
		default: // a > b under less()
			i = j
			j++
			k = 1
			p = 1
		}
	}
	return i + 1, p
}

// Find returns the index of the first occurrence of the needle in s at or
// after from, or -1.
func (tw *TwoWaySearcher) Find(s []byte, from int) int {
	n := len(tw.needle)
	if n == 0 {
		return from
	}

	pos := from
	for pos+n <= len(s) {
		// Compare the right part (from critPos onward) first, then the
		// left part, mirroring the canonical two-way scan order.
		i := tw.critPos
		for i < n && s[pos+i] == tw.needle[i] {
			i++
		}
		if i < n {
			pos += i - tw.critPos + 1
			continue
		}
		j := tw.critPos - 1
		for j >= 0 && s[pos+j] == tw.needle[j] {
			j--
		}
		if j < 0 {
			return pos
		}
		pos += tw.period
	}
	return -1
}
