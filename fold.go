//go:build !(js && wasm)

package unicase

import (
	"hash/maphash"
	"strings"
	"unicode/utf8"
)

// foldSeq is the case folding of a single rune: one, two, or three runes
// consumed in order via next. The zero value is an exhausted sequence.
type foldSeq struct {
	runes [3]rune
	i, n  uint8
}

func (f *foldSeq) next() (rune, bool) {
	if f.i >= f.n {
		return 0, false
	}
	r := f.runes[f.i]
	f.i++
	return r, true
}

// caseFold returns the full case folding of r. Runes that have no fold
// yield themselves.
func caseFold(r rune) foldSeq {
	if 0 <= r && r < utf8.RuneSelf {
		return foldSeq{runes: [3]rune{rune(_lower[r])}, n: 1}
	}
	if r < minFold || r > maxFold {
		return foldSeq{runes: [3]rune{r}, n: 1}
	}
	lo, hi := 0, len(_CaseFolds)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if _CaseFolds[m].from < r {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo == len(_CaseFolds) || _CaseFolds[lo].from != r {
		return foldSeq{runes: [3]rune{r}, n: 1}
	}
	e := &_CaseFolds[lo]
	n := uint8(1)
	if e.to[1] != 0 {
		n++
		if e.to[2] != 0 {
			n++
		}
	}
	return foldSeq{runes: e.to, n: n}
}

// foldReader yields the flattened fold stream of a string: every rune of
// the source, folded, in order.
type foldReader struct {
	rest string
	seq  foldSeq
}

func (p *foldReader) next() (rune, bool) {
	if r, ok := p.seq.next(); ok {
		return r, true
	}
	if len(p.rest) == 0 {
		return 0, false
	}
	var sr rune
	if c := p.rest[0]; c < utf8.RuneSelf {
		sr, p.rest = rune(c), p.rest[1:]
	} else {
		r, size := utf8.DecodeRuneInString(p.rest)
		sr, p.rest = r, p.rest[size:]
	}
	p.seq = caseFold(sr)
	return p.seq.next()
}

// foldEqual reports whether the fold streams of s and t are identical.
// The streams advance independently: a single rune on one side may match
// a multi-rune run on the other.
func foldEqual(s, t string) bool {
	sp := foldReader{rest: s}
	tp := foldReader{rest: t}
	for {
		sr, sok := sp.next()
		tr, tok := tp.next()
		if !sok || !tok {
			return sok == tok
		}
		if sr != tr {
			return false
		}
	}
}

// foldCompare lexicographically compares the fold streams of s and t by
// code point. A stream that is a strict prefix of the other orders first.
func foldCompare(s, t string) int {
	sp := foldReader{rest: s}
	tp := foldReader{rest: t}
	for {
		sr, sok := sp.next()
		tr, tok := tp.next()
		if !sok || !tok {
			if sok {
				return 1
			}
			if tok {
				return -1
			}
			return 0
		}
		if sr != tr {
			return clamp(int(sr) - int(tr))
		}
	}
}

func foldString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	p := foldReader{rest: s}
	for {
		r, ok := p.next()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}

// foldHash writes the UTF-8 encoding of every rune in the fold stream of
// s to h, with no separators or length prefix. UTF-8 is self-synchronizing,
// so streams hash equal exactly when foldEqual holds.
func foldHash(h *maphash.Hash, s string) {
	var buf [4]byte
	p := foldReader{rest: s}
	for {
		r, ok := p.next()
		if !ok {
			return
		}
		n := utf8.EncodeRune(buf[:], r)
		h.Write(buf[:n])
	}
}
