// Package bytcase is the []byte counterpart of package unicase. It
// mirrors the package-level functions exactly; a test enforces that the
// two APIs do not drift.
package bytcase

import (
	"unsafe"

	"github.com/charlievieth/unicase"
)

// btos returns b as a string sharing the same backing array. Safe here
// because unicase never mutates or retains its inputs.
func btos(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Equal reports whether s and t are equal under full Unicode case
// folding. It is short-circuiting and does not allocate.
func Equal(s, t []byte) bool {
	return unicase.Equal(btos(s), btos(t))
}

// Compare returns an integer comparing the case folded forms of s and t
// lexicographically by code point: 0 if Equal(s, t), -1 if the folded s
// orders before the folded t, and +1 if it orders after.
func Compare(s, t []byte) int {
	return unicase.Compare(btos(s), btos(t))
}

// Fold returns the full case folding of s: every rune replaced by its
// fold, expansions included.
func Fold(s []byte) []byte {
	return []byte(unicase.Fold(btos(s)))
}
