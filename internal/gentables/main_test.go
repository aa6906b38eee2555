// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"go/format"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

const caseFoldingSample = `# CaseFolding-15.0.0.txt
0041; C; 0061; # LATIN CAPITAL LETTER A
00B5; C; 03BC; # MICRO SIGN
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
0130; F; 0069 0307; # LATIN CAPITAL LETTER I WITH DOT ABOVE
0130; T; 0069; # LATIN CAPITAL LETTER I WITH DOT ABOVE
01F0; F; 006A 030C; # LATIN SMALL LETTER J WITH CARON
0049; T; 0131; # LATIN CAPITAL LETTER I
1E921; C; 1E943; # ADLAM CAPITAL LETTER SHA
`

func TestParseCaseFolds(t *testing.T) {
	ents, err := parseCaseFolds(strings.NewReader(caseFoldingSample))
	require.NoError(t, err)

	// ASCII and S/T rows are dropped, the rest sorted by code point.
	want := []foldEntry{
		{From: 0x00B5, To: []rune{0x03BC}},
		{From: 0x00DF, To: []rune{0x0073, 0x0073}},
		{From: 0x0130, To: []rune{0x0069, 0x0307}},
		{From: 0x01F0, To: []rune{0x006A, 0x030C}},
		{From: 0x1E921, To: []rune{0x1E943}},
	}
	assert.Equal(t, want, ents)
}

func TestParseCaseFoldsErrors(t *testing.T) {
	tests := []struct {
		name, data string
	}{
		{"Arity", "00DF; F; 0073 0073 0073 0073; # too many targets\n"},
		{"Duplicate", "00B5; C; 03BC;\n00B5; C; 03BD;\n"},
		{"BadRune", "bogus; C; 0061;\n"},
		{"Empty", "# nothing but comments\n"},
		{"ASCIIOnly", "0041; C; 0061;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCaseFolds(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestAssigned(t *testing.T) {
	rt := assigned()
	// 0x00AD (Cf) guards against the one-letter aggregates being
	// skipped too aggressively.
	for _, r := range []rune{'a', 'Ω', '0', ' ', 0x00AD, 0x1E921} {
		assert.True(t, unicode.Is(rt, r), "missing assigned rune %U", r)
	}
	// Surrogates (Cs), private use (Co), and permanently unassigned
	// planes are excluded, including via the "C" aggregate.
	assert.False(t, unicode.Is(rt, 0xD800))
	assert.False(t, unicode.Is(rt, 0xE000))
	assert.False(t, unicode.Is(rt, 0xF8FF))
	assert.False(t, unicode.Is(rt, 0x10FFFE))
}

func TestVisit(t *testing.T) {
	var got []rune
	visit(unicode.Lt, func(r rune) { got = append(got, r) })
	var want []rune
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if unicode.Is(unicode.Lt, r) {
			want = append(want, r)
		}
	}
	assert.Equal(t, want, got)
}

func TestOrbit(t *testing.T) {
	o := orbit('k')
	slices.Sort(o)
	assert.Equal(t, []rune{'K', 'k', 0x212A}, o)

	assert.Equal(t, []rune{'0'}, orbit('0'))
}

// syntheticFolds builds a fold table that is consistent by
// construction: every SimpleFold orbit maps to a single member, ASCII
// orbits to their lowercase letter.
func syntheticFolds() []foldEntry {
	seen := make(map[rune]bool)
	var ents []foldEntry
	visit(assigned(), func(r rune) {
		if seen[r] {
			return
		}
		o := orbit(r)
		for _, rr := range o {
			seen[rr] = true
		}
		if len(o) == 1 {
			return
		}
		target := o[0]
		for _, rr := range o {
			if rr < target {
				target = rr
			}
		}
		for _, rr := range o {
			if 'a' <= rr && rr <= 'z' {
				target = rr
				break
			}
		}
		for _, rr := range o {
			if rr >= 0x80 && rr != target {
				ents = append(ents, foldEntry{From: rr, To: []rune{target}})
			}
		}
	})
	slices.SortFunc(ents, func(a, b foldEntry) int {
		if a.From < b.From {
			return -1
		}
		if a.From > b.From {
			return 1
		}
		return 0
	})
	return ents
}

func TestVerify(t *testing.T) {
	if unicode.Version != *unicodeVersion {
		t.Skipf("unicode.Version (%s) != -unicode flag (%s): verify would be a no-op",
			unicode.Version, *unicodeVersion)
	}
	ents := syntheticFolds()
	require.NoError(t, verify(ents))

	// Break one orbit and make sure verify notices.
	i := slices.IndexFunc(ents, func(e foldEntry) bool { return e.From == 0x212A })
	require.NotEqual(t, -1, i)
	ents[i].To = []rune{'x'}
	assert.Error(t, verify(ents))
}

func TestWriteTable(t *testing.T) {
	ents := []foldEntry{
		{From: 0x00B5, To: []rune{0x03BC}},
		{From: 0x00DF, To: []rune{0x0073, 0x0073}},
	}
	var b strings.Builder
	writeTable(&b, ents)
	out := b.String()

	assert.Contains(t, out, "package unicase")
	assert.Contains(t, out, "minFold = 0x00B5")
	assert.Contains(t, out, "maxFold = 0x00DF")
	assert.Contains(t, out, "var _CaseFolds = [2]foldEntry{")
	assert.Contains(t, out, "{0x00DF, [3]rune{0x0073, 0x0073}},")

	// The emitted source must be valid Go.
	_, err := format.Source([]byte(out))
	assert.NoError(t, err)
}
