// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package ucd parses Unicode Character Database files: one record per
// line, semicolon-separated fields, '#' comments, blank lines ignored.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Parser iterates over the records of a UCD file.
type Parser struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
	err     error
}

// New returns a Parser reading records from r.
func New(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next record. It returns false when the input is
// exhausted or malformed; check Err.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		p.fields = strings.Split(text, ";")
		for i, f := range p.fields {
			p.fields[i] = strings.TrimSpace(f)
		}
		return true
	}
	p.err = p.scanner.Err()
	return false
}

// Err returns the first error encountered.
func (p *Parser) Err() error { return p.err }

func (p *Parser) setError(err error) {
	if p.err == nil && err != nil {
		p.err = fmt.Errorf("ucd: line %d: %w", p.line, err)
	}
}

// Fields returns the number of fields in the current record.
func (p *Parser) Fields() int { return len(p.fields) }

// String returns field i of the current record, or "" if it does not
// exist.
func (p *Parser) String(i int) string {
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Rune parses field i as a single hexadecimal code point.
func (p *Parser) Rune(i int) rune {
	u, err := strconv.ParseUint(p.String(i), 16, 32)
	if err != nil {
		p.setError(err)
		return 0
	}
	return rune(u)
}

// Runes parses field i as a space-separated sequence of hexadecimal
// code points.
func (p *Parser) Runes(i int) []rune {
	var runes []rune
	for _, f := range strings.Fields(p.String(i)) {
		u, err := strconv.ParseUint(f, 16, 32)
		if err != nil {
			p.setError(err)
			return nil
		}
		runes = append(runes, rune(u))
	}
	return runes
}

// Parse reads every record of r, calling fn for each, and returns the
// first parse error.
func Parse(r io.Reader, fn func(p *Parser)) error {
	p := New(r)
	for p.Next() {
		fn(p)
	}
	return p.Err()
}
