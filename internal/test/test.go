// Package test holds the comparison corpus shared by the unicase and
// bytcase package tests.
package test

import "testing"

type CompareFunc func(s, t string) int

type EqualFunc func(s, t string) bool

type FoldFunc func(s string) string

func ByteCompareFunc(fn func(s, t []byte) int) CompareFunc {
	return func(s, t string) int {
		return fn([]byte(s), []byte(t))
	}
}

func ByteEqualFunc(fn func(s, t []byte) bool) EqualFunc {
	return func(s, t string) bool {
		return fn([]byte(s), []byte(t))
	}
}

func ByteFoldFunc(fn func(s []byte) []byte) FoldFunc {
	return func(s string) string {
		return string(fn([]byte(s)))
	}
}

type CompareTest struct {
	S, T string
	Out  int
}

var CompareTests = []CompareTest{
	{"", "", 0},
	{"a", "a", 0},
	{"a", "ab", -1},
	{"ab", "a", 1},
	{"123abc", "123ABC", 0},
	{"a", "B", -1},
	{"A", "b", -1},
	{"B", "a", 1},
	{"a", "aa", -1},
	{"aa", "a", 1},
	{"αβδ", "ΑΒΔ", 0},
	{"αβδa", "ΑΒΔ", 1},
	{"αβδ", "ΑΒΔa", -1},
	{"αβa", "ΑΒΔ", -1},
	{"αβδ", "ΑΒa", 1},
	{"s", "ſ", 0},
	{"\u212A", "k", 0}, // KELVIN SIGN
	{"ß", "ss", 0},
	{"ß", "sr", 1},
	{"ß", "st", -1},
	{"ß", "s", 1}, // folded prefix orders first
	{"ﬂour", "flour", 0},
	{"ﬃ", "ffi", 0},
}

type EqualTest struct {
	S, T string
	Out  bool
}

var EqualTests = []EqualTest{
	{"", "", true},
	{"", "a", false},
	{"foobar", "FOOBAR", true},
	{"foo bar", "FoO BAR", true},
	{"foobar", "foobarbaz", false},
	{"foo", "bar", false},
	// simple folding
	{"στιγμας", "στιγμασ", true},
	{"ΑΔΕΛΦΟΣΎΝΗΣ", "αδελφοσύνης", true},
	{"s", "ſ", true},
	{"K", "k", true}, // KELVIN SIGN
	{"\u212B", "å", true}, // ANGSTROM SIGN
	// full folding: one character may expand to several
	{"ﬂour", "flour", true},
	{"Maße", "MASSE", true},
	{"maß", "MASS", true},
	{"ẞ", "ss", true},
	{"ᾲ στο διάολο", "ὰι στο διάολο", true},
	{"İ", "i̇", true},
	{"ß", "s", false},
	{"ß", "sss", false},
	// folded prefix of the other side is not equal
	{"maß", "MASSE", false},
	{"Maße", "MASS", false},
}

type FoldTest struct {
	In, Out string
}

var FoldTests = []FoldTest{
	{"", ""},
	{"foobar", "foobar"},
	{"FOOBAR", "foobar"},
	{"Maße", "masse"},
	{"ﬂour", "flour"},
	{"ΣΣ", "σσ"},
	{"ς", "σ"},
	{"K", "k"},
}

func Compare(t *testing.T, fn CompareFunc) {
	for _, test := range CompareTests {
		if got := fn(test.S, test.T); got != test.Out {
			t.Errorf("Compare(%q, %q) = %d; want: %d", test.S, test.T, got, test.Out)
		}
		// Compare must be antisymmetric.
		if got := fn(test.T, test.S); got != -test.Out {
			t.Errorf("Compare(%q, %q) = %d; want: %d", test.T, test.S, got, -test.Out)
		}
	}
}

func Equal(t *testing.T, fn EqualFunc) {
	for _, test := range EqualTests {
		if got := fn(test.S, test.T); got != test.Out {
			t.Errorf("Equal(%q, %q) = %t; want: %t", test.S, test.T, got, test.Out)
		}
		// Equal must be symmetric.
		if got := fn(test.T, test.S); got != test.Out {
			t.Errorf("Equal(%q, %q) = %t; want: %t", test.T, test.S, got, test.Out)
		}
	}
}

func Fold(t *testing.T, fn FoldFunc) {
	for _, test := range FoldTests {
		if got := fn(test.In); got != test.Out {
			t.Errorf("Fold(%q) = %q; want: %q", test.In, got, test.Out)
		}
	}
}
