package simd

import "testing"

func TestIndexByte(t *testing.T) {
	s := []byte("the quick brown fox jumps over the lazy dog")
	if got := IndexByte(s, 'q', 0); got != 4 {
		t.Errorf("IndexByte('q') = %d, want 4", got)
	}
	if got := IndexByte(s, 'z', 0); got != 37 {
		t.Errorf("IndexByte('z') = %d, want 37", got)
	}
	if got := IndexByte(s, '!', 0); got != -1 {
		t.Errorf("IndexByte('!') = %d, want -1", got)
	}
}

func TestIndexByteAcrossWordBoundary(t *testing.T) {
	s := make([]byte, 20)
	for i := range s {
		s[i] = 'a'
	}
	s[17] = 'x'
	if got := IndexByte(s, 'x', 0); got != 17 {
		t.Errorf("IndexByte = %d, want 17", got)
	}
}

func TestClassBitmap(t *testing.T) {
	bm := BuildClassBitmap([]byte("abc"))
	for _, b := range []byte("abc") {
		if !bm.Contains(b) {
			t.Errorf("bitmap should contain %q", b)
		}
	}
	if bm.Contains('z') {
		t.Error("bitmap should not contain 'z'")
	}
	if got := bm.IndexClass([]byte("xxbxx"), 0); got != 2 {
		t.Errorf("IndexClass = %d, want 2", got)
	}
}

func TestNibbleLUT(t *testing.T) {
	members := []byte("0123456789")
	lut := BuildNibbleLUT(members)
	for _, b := range members {
		if !lut.Contains(b) {
			t.Errorf("nibble LUT should contain digit %q", b)
		}
	}
}

func TestTwoWaySearcher(t *testing.T) {
	tw := NewTwoWaySearcher([]byte("needle"))
	s := []byte("haystack haystack needle haystack")
	if got := tw.Find(s, 0); got != 18 {
		t.Errorf("Find = %d, want 18", got)
	}
	if got := tw.Find(s, 19); got != -1 {
		t.Errorf("Find after match = %d, want -1", got)
	}
}

func TestTwoWaySearcherPeriodic(t *testing.T) {
	tw := NewTwoWaySearcher([]byte("abab"))
	s := []byte("xababababy")
	if got := tw.Find(s, 0); got != 1 {
		t.Errorf("Find = %d, want 1", got)
	}
}

func TestTeddy(t *testing.T) {
	teddy := BuildTeddy([][]byte{[]byte("foo"), []byte("bar"), []byte("baz")})
	if teddy == nil {
		t.Fatal("BuildTeddy returned nil")
	}
	m, ok := teddy.Find([]byte("xxxbarxxx"), 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start != 3 || m.End != 6 {
		t.Errorf("match = %+v, want Start=3 End=6", m)
	}
}

func TestTeddyNoMatch(t *testing.T) {
	teddy := BuildTeddy([][]byte{[]byte("foo"), []byte("bar")})
	if _, ok := teddy.Find([]byte("nothing here"), 0); ok {
		t.Error("expected no match")
	}
}
