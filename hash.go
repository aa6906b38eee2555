package unicase

import (
	"hash/maphash"
	"unicode/utf8"
)

// hashString hashes the fold stream of s with the given seed. The hash is
// a function of the folded text only: two strings hash equal whenever
// Equal reports them equal, whichever construction path produced them.
func hashString(seed maphash.Seed, s string) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			break
		}
		// ASCII folds are one byte and identical to _lower, so the fast
		// path feeds the accumulator the same bytes the fold stream would.
		h.WriteByte(_lower[c])
	}
	if i < len(s) {
		foldHash(&h, s[i:])
	}
	return h.Sum64()
}
