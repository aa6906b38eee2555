package unicase

import (
	"hash/maphash"
	"testing"

	"github.com/charlievieth/unicase/internal/test"
)

func TestNew(t *testing.T) {
	tests := []struct {
		in    string
		ascii bool
	}{
		{"", true},
		{"hello", true},
		{"Hello, World!", true},
		{"\x00\x7f", true},
		{"héllo", false},
		{"Maße", false},
		{"日本語", false},
		{"a\xffb", false},
	}
	for _, tt := range tests {
		u := New(tt.in)
		if u.String() != tt.in {
			t.Errorf("New(%q).String() = %q; want: %q", tt.in, u.String(), tt.in)
		}
		if u.IsASCII() != tt.ascii {
			t.Errorf("New(%q).IsASCII() = %t; want: %t", tt.in, u.IsASCII(), tt.ascii)
		}
	}
}

func TestUniCaseEqual(t *testing.T) {
	test.Equal(t, func(s, tr string) bool {
		return New(s).Equal(New(tr))
	})
}

func TestUniCaseCompare(t *testing.T) {
	test.Compare(t, func(s, tr string) int {
		return New(s).Compare(New(tr))
	})
}

func TestUniCaseEqualString(t *testing.T) {
	test.Equal(t, func(s, tr string) bool {
		return New(s).EqualString(tr)
	})
}

// New, Unicode, and the zero value must be interchangeable: the ASCII
// tag changes the code path, never the result.
func TestUniCaseMixedConstruction(t *testing.T) {
	var inputs []string
	for _, tt := range test.EqualTests {
		inputs = append(inputs, tt.S, tt.T)
	}
	seed := maphash.MakeSeed()
	for _, s := range inputs {
		a := New(s)
		b := Unicode(s)
		if !a.Equal(b) || !b.Equal(a) {
			t.Errorf("New(%q) and Unicode(%q) are not Equal", s, s)
		}
		if a.Compare(b) != 0 || b.Compare(a) != 0 {
			t.Errorf("New(%q) and Unicode(%q) do not Compare equal", s, s)
		}
		if a.Hash(seed) != b.Hash(seed) {
			t.Errorf("New(%q) and Unicode(%q) hash differently", s, s)
		}
		for _, tr := range inputs {
			if got, want := a.Equal(Unicode(tr)), Equal(s, tr); got != want {
				t.Errorf("New(%q).Equal(Unicode(%q)) = %t; want: %t", s, tr, got, want)
			}
			if got, want := b.Compare(New(tr)), Compare(s, tr); got != want {
				t.Errorf("Unicode(%q).Compare(New(%q)) = %d; want: %d", s, tr, got, want)
			}
		}
	}
}

func TestUniCaseZeroValue(t *testing.T) {
	var u UniCase
	if u.String() != "" {
		t.Errorf(`zero UniCase.String() = %q; want: ""`, u.String())
	}
	if !u.Equal(New("")) {
		t.Error(`zero UniCase is not Equal to New("")`)
	}
	if !u.IsASCII() {
		t.Error("zero UniCase.IsASCII() = false")
	}
}

// Equal values must hash identically under every seed, across every
// construction path.
func TestHashContract(t *testing.T) {
	var inputs []string
	for _, tt := range test.EqualTests {
		inputs = append(inputs, tt.S, tt.T)
	}
	seeds := []maphash.Seed{maphash.MakeSeed(), maphash.MakeSeed(), maphash.MakeSeed()}
	for _, s := range inputs {
		for _, tr := range inputs {
			if !Equal(s, tr) {
				continue
			}
			for _, seed := range seeds {
				hs := New(s).Hash(seed)
				ht := New(tr).Hash(seed)
				if hs != ht {
					t.Errorf("Equal(%q, %q) but Hash %#x != %#x", s, tr, hs, ht)
				}
				if hu := Unicode(s).Hash(seed); hu != hs {
					t.Errorf("Unicode(%q).Hash() = %#x; New(%q).Hash() = %#x", s, hu, s, hs)
				}
			}
		}
	}
}

func TestHashSeeded(t *testing.T) {
	u := New("Maße")
	if u.Hash(maphash.MakeSeed()) == u.Hash(maphash.MakeSeed()) {
		// Extremely unlikely with distinct random seeds.
		t.Error("Hash ignores its seed")
	}
}

func TestAscii(t *testing.T) {
	a := MustAscii("Hello")
	b := MustAscii("HELLO")
	if !a.Equal(b) {
		t.Errorf("Equal(%q, %q) = false; want: true", a, b)
	}
	if got := a.Compare(b); got != 0 {
		t.Errorf("Compare(%q, %q) = %d; want: 0", a, b, got)
	}
	if got := MustAscii("apple").Compare(MustAscii("BANANA")); got != -1 {
		t.Errorf("Compare(apple, BANANA) = %d; want: -1", got)
	}
	seed := maphash.MakeSeed()
	if a.Hash(seed) != b.Hash(seed) {
		t.Errorf("Hash(%q) != Hash(%q)", a, b)
	}
}

func TestNewAscii(t *testing.T) {
	if _, err := NewAscii("hello"); err != nil {
		t.Errorf("NewAscii(%q) = %v; want: nil", "hello", err)
	}
	for _, s := range []string{"héllo", "Maße", "a\x80b"} {
		if _, err := NewAscii(s); err == nil {
			t.Errorf("NewAscii(%q) = nil; want: error", s)
		}
	}
}

// The Ascii and UniCase halves must agree everywhere their domains
// overlap.
func TestAsciiUniCaseAgreement(t *testing.T) {
	seed := maphash.MakeSeed()
	for _, tt := range test.CompareTests {
		if !isASCII(tt.S) || !isASCII(tt.T) {
			continue
		}
		as := MustAscii(tt.S)
		at := MustAscii(tt.T)
		if got, want := as.Compare(at), New(tt.S).Compare(New(tt.T)); got != want {
			t.Errorf("Ascii Compare(%q, %q) = %d; UniCase = %d", tt.S, tt.T, got, want)
		}
		if as.Hash(seed) != New(tt.S).Hash(seed) {
			t.Errorf("Ascii(%q).Hash() != UniCase(%q).Hash()", tt.S, tt.S)
		}
		u := as.UniCase()
		if !u.IsASCII() || u.String() != tt.S {
			t.Errorf("Ascii(%q).UniCase() = %+v", tt.S, u)
		}
	}
}
