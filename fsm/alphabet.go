package fsm

// ByteSet is a 256-bit set of byte values.
//
// The builder records in a ByteSet every byte that some state predicate can
// accept. For a graph with no Dot states this is exactly the set of
// consumable bytes: acceptance requires every input byte to be consumed by
// some predicate, so an input containing a byte outside the set can be
// rejected without running the search. Note the converse prefilter (requiring
// the input to contain particular pattern literals) is NOT sound here,
// because the zero-width pass-through rule lets the matcher skip any state
// whose predicate rejects the current character.
type ByteSet struct {
	bits [4]uint64
}

// Add inserts b into the set
func (s *ByteSet) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is in the set
func (s *ByteSet) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set
func (s *ByteSet) Len() int {
	n := 0
	for _, w := range s.bits {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// ContainsAll reports whether every byte of input is in the set.
// An empty input vacuously satisfies it.
func (s *ByteSet) ContainsAll(input []byte) bool {
	for _, b := range input {
		if !s.Contains(b) {
			return false
		}
	}
	return true
}
