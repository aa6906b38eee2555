// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package unicase

import (
	crand "crypto/rand"
	"flag"
	"fmt"
	"hash/maphash"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"
)

// Runes whose case folding changes encoded width or expands to multiple
// runes. These exercise the hard paths and are over-sampled.
var multiwidthRunes = [...]rune{
	0x00DF, // 'ß'
	0x0130, // 'İ'
	0x0149, // 'ŉ'
	0x01F0, // 'ǰ'
	0x0390, // 'ΐ'
	0x03B0, // 'ΰ'
	0x0587, // 'և'
	0x1E9A, // 'ẚ'
	0x1E9E, // 'ẞ'
	0x1F50, // 'ὐ'
	0x1F80, // 'ᾀ'
	0x1FB2, // 'ᾲ'
	0x1FB3, // 'ᾳ'
	0x1FE4, // 'ῤ'
	0x2126, // 'Ω'
	0x212A, // 'K'
	0x212B, // 'Å'
	0xFB00, // 'ﬀ'
	0xFB01, // 'ﬁ'
	0xFB02, // 'ﬂ'
	0xFB03, // 'ﬃ'
	0xFB04, // 'ﬄ'
	0xFB05, // 'ﬅ'
	0xFB06, // 'ﬆ'
}

// Excludes categories: Cm Cc, and Other.
var unicodeCategories = rangetable.Merge([]*unicode.RangeTable{
	unicode.Cf,
	unicode.Co,
	unicode.Digit,
	unicode.Letter,
	unicode.Mark,
	unicode.Number,
	unicode.Punct,
	unicode.Space,
	unicode.Symbol,
	unicode.Title,
	unicode.Upper,
	unicode.Zl,
	unicode.Zp,
	unicode.Zs,
}...)

var (
	foldableRunes   = generateFoldableRunes()
	nonControlRunes = generateNonControlRunes()
)

func generateFoldableRunes() []rune {
	a := make([]rune, 0, len(_CaseFolds)*2)
	for _, p := range _CaseFolds {
		a = append(a, p.from)
		if p.to[1] == 0 {
			a = append(a, p.to[0])
		}
	}
	slices.Sort(a)
	return slices.Compact(a)
}

func generateNonControlRunes() []rune {
	n := 0
	rangetable.Visit(unicodeCategories, func(rune) {
		n++
	})
	runes := make([]rune, 0, n)
	rangetable.Visit(unicodeCategories, func(r rune) {
		if r >= utf8.RuneSelf && r != utf8.RuneError && utf8.ValidRune(r) {
			runes = append(runes, r)
		}
	})
	return runes
}

func randNonControlRune(rr *rand.Rand) rune {
	return nonControlRunes[rr.Intn(len(nonControlRunes))]
}

func randASCIIByte(rr *rand.Rand) byte {
	return byte(rr.Intn('~'-' '+1)) + ' '
}

func randRune(rr *rand.Rand) (r rune) {
	switch f := rr.Float64(); {
	case f <= 0.1:
		return multiwidthRunes[rr.Intn(len(multiwidthRunes))]
	case f <= 0.25:
		return foldableRunes[rr.Intn(len(foldableRunes))]
	case f <= 0.75:
		return randNonControlRune(rr)
	default:
		return rune(randASCIIByte(rr))
	}
}

func randRunes(rr *rand.Rand, n int, ascii bool) []rune {
	rs := make([]rune, n)
	if ascii {
		for i := range rs {
			rs[i] = rune(randASCIIByte(rr))
		}
		return rs
	}
	for i := range rs {
		rs[i] = randRune(rr)
	}
	return rs
}

func allFolds(sr rune) []rune {
	r := unicode.SimpleFold(sr)
	runes := make([]rune, 1, 2)
	runes[0] = sr
	for r != sr {
		runes = append(runes, r)
		r = unicode.SimpleFold(r)
	}
	return runes
}

// randCaseRunes replaces runes of rs with members of their SimpleFold
// orbit. Orbit members share a full case folding, so the result is
// case-insensitively equal to the input.
func randCaseRunes(rr *rand.Rand, rs []rune, ascii bool) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		if ascii {
			if rr.Intn(2) == 0 {
				switch {
				case 'a' <= r && r <= 'z':
					r -= 'a' - 'A'
				case 'A' <= r && r <= 'Z':
					r += 'a' - 'A'
				}
			}
		} else if rr.Intn(2) == 0 {
			folds := allFolds(r)
			r = folds[rr.Intn(len(folds))]
		}
		out[i] = r
	}
	return out
}

type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow()
		}
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fail() {
	c.T.Helper()
	c.T.Fail()
	c.check()
}

func (c *testWrapper) FailNow() {
	c.T.Helper()
	c.T.FailNow()
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

func cryptoRandInt(t testing.TB) int64 {
	var err error
	var bi *big.Int
	for i := 0; i < 4; i++ {
		bi, err = crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
		if err == nil {
			break
		}
	}
	if err != nil {
		if t == nil {
			panic(err)
		}
		t.Fatal(err)
		panic("unreachable")
	}
	return bi.Int64()
}

func runRandomTest(t *testing.T, fn func(t testing.TB, rr *rand.Rand)) {
	n := 2_500
	if testing.Short() {
		n = 100
	}
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
		cryptoRandInt(t),
	}
	if *exhaustiveFuzz {
		if testing.Short() {
			t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
		}
		n = 250_000
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			tb := &testWrapper{T: t}
			rr := rand.New(rand.NewSource(seed))
			for i := 0; i < n; i++ {
				fn(tb, rr)
			}
			if testing.Verbose() {
				t.Logf("duration: %s", time.Since(start))
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

func TestEqualFuzz(t *testing.T) {
	test := func(t *testing.T, ascii bool) {
		fn := func(t testing.TB, rr *rand.Rand) {
			s0 := string(randRunes(rr, rr.Intn(24), ascii))
			var s1 string
			if rr.Intn(2) == 0 {
				s1 = string(randCaseRunes(rr, []rune(s0), ascii))
			} else {
				s1 = string(randRunes(rr, rr.Intn(24), ascii))
			}
			want := Fold(s0) == Fold(s1)
			got := Equal(s0, s1)
			if got != want {
				t.Errorf("Equal(%q, %q) = %t; want: %t\n"+
					"Fold:\n"+
					"  s0: %s\n"+
					"  s1: %s\n",
					s0, s1, got, want,
					strconv.QuoteToASCII(Fold(s0)),
					strconv.QuoteToASCII(Fold(s1)))
			}
			if Equal(s1, s0) != got {
				t.Errorf("Equal(%q, %q) != Equal(%q, %q)", s0, s1, s1, s0)
			}
		}
		runRandomTest(t, fn)
	}

	t.Run("Unicode", func(t *testing.T) { test(t, false) })
	t.Run("ASCII", func(t *testing.T) { test(t, true) })
}

func TestCompareFuzz(t *testing.T) {
	test := func(t *testing.T, ascii bool) {
		fn := func(t testing.TB, rr *rand.Rand) {
			s0 := string(randRunes(rr, rr.Intn(24), ascii))
			var s1 string
			if rr.Intn(2) == 0 {
				s1 = string(randCaseRunes(rr, []rune(s0), ascii))
			} else {
				s1 = string(randRunes(rr, rr.Intn(24), ascii))
			}
			// The folded forms are UTF-8, so byte order is code point order.
			want := clamp(strings.Compare(Fold(s0), Fold(s1)))
			got := Compare(s0, s1)
			if got != want {
				t.Errorf("Compare(%q, %q) = %d; want: %d\n"+
					"Fold:\n"+
					"  s0: %s\n"+
					"  s1: %s\n",
					s0, s1, got, want,
					strconv.QuoteToASCII(Fold(s0)),
					strconv.QuoteToASCII(Fold(s1)))
			}
			if Compare(s1, s0) != -got {
				t.Errorf("Compare(%q, %q) != -Compare(%q, %q)", s0, s1, s1, s0)
			}
			if (got == 0) != Equal(s0, s1) {
				t.Errorf("Compare(%q, %q) = %d but Equal = %t", s0, s1, got, Equal(s0, s1))
			}
		}
		runRandomTest(t, fn)
	}

	t.Run("Unicode", func(t *testing.T) { test(t, false) })
	t.Run("ASCII", func(t *testing.T) { test(t, true) })
}

func TestHashFuzz(t *testing.T) {
	seed := maphash.MakeSeed()
	fn := func(t testing.TB, rr *rand.Rand) {
		rs := randRunes(rr, rr.Intn(24), false)
		s0 := string(rs)
		s1 := string(randCaseRunes(rr, rs, false))
		h0 := hashString(seed, s0)
		h1 := hashString(seed, s1)
		if h0 != h1 {
			t.Errorf("hashString(%q) = %#x; hashString(%q) = %#x\n"+
				"Fold:\n"+
				"  s0: %s\n"+
				"  s1: %s\n",
				s0, h0, s1, h1,
				strconv.QuoteToASCII(Fold(s0)),
				strconv.QuoteToASCII(Fold(s1)))
		}
	}
	runRandomTest(t, fn)
}

func TestMapFuzz(t *testing.T) {
	fn := func(t testing.TB, rr *rand.Rand) {
		m := NewMap[int]()
		keys := make([]string, rr.Intn(16)+1)
		for i := range keys {
			keys[i] = string(randRunes(rr, rr.Intn(12)+1, false))
			m.Set(New(keys[i]), i)
		}
		for _, key := range keys {
			q := string(randCaseRunes(rr, []rune(key), false))
			val, ok := m.Get(q)
			if !ok {
				t.Errorf("Get(%q) not found; inserted as %q", q, key)
				continue
			}
			// A later insert may have replaced the value under an
			// equal key.
			if want, _ := m.Get(key); val != want {
				t.Errorf("Get(%q) = %d; Get(%q) = %d", q, val, key, want)
			}
		}
	}
	runRandomTest(t, fn)
}
