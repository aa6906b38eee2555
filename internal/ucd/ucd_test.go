// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ucd

import (
	"strings"
	"testing"
)

const sample = `# CaseFolding-15.0.0.txt
# Date: 2022-02-02, 23:35:35 GMT

0041; C; 0061; # LATIN CAPITAL LETTER A
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S

  00C5; C; 00E5; # leading whitespace
0130; T; 0069; # LATIN CAPITAL LETTER I WITH DOT ABOVE
`

func TestParser(t *testing.T) {
	p := New(strings.NewReader(sample))

	type record struct {
		from  rune
		kind  string
		runes []rune
	}
	want := []record{
		{0x0041, "C", []rune{0x0061}},
		{0x00DF, "F", []rune{0x0073, 0x0073}},
		{0x00C5, "C", []rune{0x00E5}},
		{0x0130, "T", []rune{0x0069}},
	}
	var got []record
	for p.Next() {
		// The trailing semicolon yields an empty final field.
		if n := p.Fields(); n != 4 {
			t.Fatalf("Fields() = %d; want: 4", n)
		}
		got = append(got, record{p.Rune(0), p.String(1), p.Runes(2)})
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d records; want: %d", len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.from != w.from || g.kind != w.kind {
			t.Errorf("record %d = %U %q; want: %U %q", i, g.from, g.kind, w.from, w.kind)
		}
		if len(g.runes) != len(w.runes) {
			t.Errorf("record %d runes = %U; want: %U", i, g.runes, w.runes)
			continue
		}
		for j := range w.runes {
			if g.runes[j] != w.runes[j] {
				t.Errorf("record %d runes = %U; want: %U", i, g.runes, w.runes)
				break
			}
		}
	}
}

func TestParserEmpty(t *testing.T) {
	p := New(strings.NewReader("# only comments\n\n   \n"))
	if p.Next() {
		t.Fatalf("Next() = true on comment-only input: %q", p.fields)
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestParserMissingField(t *testing.T) {
	p := New(strings.NewReader("0041; C; 0061;\n"))
	if !p.Next() {
		t.Fatal("Next() = false")
	}
	if s := p.String(10); s != "" {
		t.Errorf("String(10) = %q; want: %q", s, "")
	}
}

func TestParserBadRune(t *testing.T) {
	err := Parse(strings.NewReader("xyzzy; C; 0061;\n"), func(p *Parser) {
		p.Rune(0)
	})
	if err == nil {
		t.Fatal("Parse did not report the malformed code point")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestParserBadRunes(t *testing.T) {
	err := Parse(strings.NewReader("0041; C; 0061 bogus;\n"), func(p *Parser) {
		p.Runes(2)
	})
	if err == nil {
		t.Fatal("Parse did not report the malformed sequence")
	}
}
