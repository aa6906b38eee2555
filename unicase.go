package unicase

import (
	"fmt"
	"hash/maphash"
)

// UniCase is an immutable case-insensitive string. Equality, ordering,
// and hashing are defined by the full case folding of the wrapped text;
// the original spelling is preserved and used for display and
// serialization.
//
// The zero value wraps the empty string.
type UniCase struct {
	s       string
	unicode bool
}

// New returns a UniCase wrapping s. The content is scanned once: ASCII
// strings are tagged to use byte-wise comparisons. The tag is a private
// optimization; values built with New, Unicode, or the zero value may be
// freely mixed.
func New(s string) UniCase {
	return UniCase{s: s, unicode: !isASCII(s)}
}

// Unicode returns a UniCase that always takes the full Unicode folding
// path, skipping the construction-time ASCII scan.
func Unicode(s string) UniCase {
	return UniCase{s: s, unicode: true}
}

// String returns the original, unfolded text.
func (u UniCase) String() string { return u.s }

// IsASCII reports whether u was tagged as ASCII at construction.
func (u UniCase) IsASCII() bool { return !u.unicode }

// Equal reports whether u and t are case-insensitively equal.
func (u UniCase) Equal(t UniCase) bool {
	if !u.unicode && !t.unicode {
		return equalASCII(u.s, t.s)
	}
	return Equal(u.s, t.s)
}

// EqualString reports whether u is case-insensitively equal to s.
func (u UniCase) EqualString(s string) bool {
	return Equal(u.s, s)
}

// Compare returns -1, 0, or +1 ordering u against t by folded form.
// Compare(t) == 0 exactly when Equal(t).
func (u UniCase) Compare(t UniCase) int {
	if !u.unicode && !t.unicode {
		return compareASCII(u.s, t.s)
	}
	return Compare(u.s, t.s)
}

// Hash returns the seeded hash of the folded form of u. Values that
// compare Equal hash identically for every seed.
func (u UniCase) Hash(seed maphash.Seed) uint64 {
	return hashString(seed, u.s)
}

// Ascii is an immutable case-insensitive string restricted to the ASCII
// range. It always compares byte-wise and is well defined only when the
// content is ASCII; use UnmarshalText or NewAscii to validate input from
// an untrusted boundary.
type Ascii struct {
	s string
}

// MustAscii returns an Ascii wrapping s without validating it.
func MustAscii(s string) Ascii { return Ascii{s: s} }

// NewAscii returns an Ascii wrapping s, or an error if s contains bytes
// outside the ASCII range.
func NewAscii(s string) (Ascii, error) {
	if !isASCII(s) {
		return Ascii{}, fmt.Errorf("unicase: non-ASCII content: %q", s)
	}
	return Ascii{s: s}, nil
}

// String returns the original, unfolded text.
func (a Ascii) String() string { return a.s }

// Equal reports whether a and t are equal ignoring ASCII letter case.
func (a Ascii) Equal(t Ascii) bool { return equalASCII(a.s, t.s) }

// Compare returns -1, 0, or +1 ordering a against t by lowered bytes.
func (a Ascii) Compare(t Ascii) int { return compareASCII(a.s, t.s) }

// Hash returns the seeded hash of the lowered form of a. For ASCII
// content this is identical to UniCase.Hash.
func (a Ascii) Hash(seed maphash.Seed) uint64 {
	return hashString(seed, a.s)
}

// UniCase converts a to a UniCase tagged for the ASCII fast path.
func (a Ascii) UniCase() UniCase { return UniCase{s: a.s} }
