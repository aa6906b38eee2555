package unicase

import "unicode/utf8"

// Equal reports whether s and t are equal under full Unicode case
// folding. It is short-circuiting and does not allocate.
func Equal(s, t string) bool {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if _lower[sr] != _lower[tr] {
			return false
		}
	}
	return len(s) == len(t)

hasUnicode:
	return foldEqual(s[i:], t[i:])
}

// Compare returns an integer comparing the case folded forms of s and t
// lexicographically by code point. The result will be 0 if Equal(s, t),
// -1 if the folded s orders before the folded t, and +1 if it orders
// after.
func Compare(s, t string) int {
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sr := s[i]
		tr := t[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if _lower[sr] != _lower[tr] {
			return clamp(int(_lower[sr]) - int(_lower[tr]))
		}
	}
	return clamp(len(s) - len(t))

hasUnicode:
	return foldCompare(s[i:], t[i:])
}

// Fold returns the full case folding of s: every rune replaced by its
// fold, expansions included. It allocates and is intended for display
// and testing; Equal and Compare never build this form.
func Fold(s string) string {
	return foldString(s)
}
