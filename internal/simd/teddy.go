package simd

// Teddy is a multi-literal prefilter modeled on the "Teddy" algorithm used
// by ripgrep/Rust regex's literal prefilter: literals are bucketed by their
// first byte into a small number of buckets, and a single pass over the
// haystack tests each byte against a bitmap of every literal's first byte
// before comparing the literals in that byte's bucket to confirm a
// candidate.
// A real SIMD Teddy broadcasts 16 or 32 haystack bytes per instruction and
// tests all buckets in parallel; this scalar port keeps the same
// bucket/fingerprint shape but tests one haystack byte at a time.
const (
	MaxTeddyLiterals = 32
	MinTeddyLiteral  = 2
	NumBuckets       = 8
)

// Teddy holds the compiled bucket state for a set of literals.
type Teddy struct {
	literals  [][]byte
	firstByte ClassBitmap // union of every literal's first byte, for a fast reject
	buckets   [NumBuckets][]int
}

// BuildTeddy compiles literals into a Teddy scanner. Returns nil if
// literals is empty or any literal is shorter than MinTeddyLiteral.
func BuildTeddy(literals [][]byte) *Teddy {
	if len(literals) == 0 || len(literals) > MaxTeddyLiterals {
		return nil
	}
	t := &Teddy{literals: literals}
	var members []byte
	for idx, lit := range literals {
		if len(lit) < MinTeddyLiteral {
			return nil
		}
		members = append(members, lit[0])
		b := lit[0] % NumBuckets
		t.buckets[b] = append(t.buckets[b], idx)
	}
	t.firstByte = BuildClassBitmap(members)
	return t
}

// Match is a confirmed literal occurrence.
type Match struct {
	LiteralIndex int
	Start, End   int
}

// Find scans s starting at from and returns the first confirmed literal
// occurrence at or after from, or ok=false if none remains.
func (t *Teddy) Find(s []byte, from int) (m Match, ok bool) {
	for i := from; i < len(s); i++ {
		if !t.firstByte.Contains(s[i]) {
			continue
		}
		b := s[i] % NumBuckets
		for _, idx := range t.buckets[b] {
			lit := t.literals[idx]
			if lit[0] != s[i] {
				continue
			}
			if i+len(lit) <= len(s) && equalAt(s, i, lit) {
				return Match{LiteralIndex: idx, Start: i, End: i + len(lit)}, true
			}
		}
	}
	return Match{}, false
}

func equalAt(s []byte, pos int, lit []byte) bool {
	for i, c := range lit {
		if s[pos+i] != c {
			return false
		}
	}
	return true
}
