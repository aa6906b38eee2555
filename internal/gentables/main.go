// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the Unicode case folding table used by unicase
// (tables.go). The table must be regenerated if this code is changed
// (`go generate` in the project root).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/unicase/internal/gentables/util"
	"github.com/charlievieth/unicase/internal/ucd"
)

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

var (
	unicodeVersion = flag.String("unicode", "15.0.0",
		"Unicode version the table is generated for. Must match the version "+
			"shipped with the oldest supported Go release or verification "+
			"against the unicode package is skipped.")
	dataURL = flag.String("url", "https://www.unicode.org/Public/%s/ucd/",
		"URL of the Unicode Character Database directory, with one %s for "+
			"the version.")
	cacheDir = flag.String("cache", "",
		"directory UCD files are downloaded to (default: DATA under the "+
			"project root)")
	skipVerify = flag.Bool("skip-verify", false,
		"do not cross-check the generated table against the unicode package")
	dryRun = flag.Bool("dry-run", false,
		"print the generated table instead of writing tables.go")
)

// A foldEntry is one row of the generated table: code point from folds
// to the 1-3 code points in to.
type foldEntry struct {
	From rune
	To   []rune
}

// openUCDFile returns the named UCD file for the requested Unicode
// version, downloading it into the cache directory on first use.
func openUCDFile(root, name string) (io.ReadCloser, error) {
	dir := *cacheDir
	if dir == "" {
		dir = filepath.Join(root, "DATA")
	}
	path := filepath.Join(dir, *unicodeVersion, name)
	if _, err := os.Stat(path); err == nil {
		return os.Open(path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	url := fmt.Sprintf(*dataURL, *unicodeVersion) + name
	log.Printf("downloading %s", url)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %q: %s", url, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// parseCaseFolds extracts the common (C) and full (F) case foldings
// above the ASCII range from CaseFolding.txt, sorted by code point.
// ASCII rows are omitted: the package handles them with its byte table.
func parseCaseFolds(r io.Reader) ([]foldEntry, error) {
	var ents []foldEntry
	var arityErr error
	err := ucd.Parse(r, func(p *ucd.Parser) {
		kind := p.String(1)
		if kind != "C" && kind != "F" {
			// Simple-only (S) and Turkic (T) rows are not part of full
			// case folding.
			return
		}
		from := p.Rune(0)
		if from < 0x80 {
			return
		}
		to := p.Runes(2)
		if len(to) < 1 || len(to) > 3 {
			if arityErr == nil {
				arityErr = fmt.Errorf("fold of %U has arity %d", from, len(to))
			}
			return
		}
		ents = append(ents, foldEntry{From: from, To: to})
	})
	if err != nil {
		return nil, err
	}
	if arityErr != nil {
		return nil, arityErr
	}
	slices.SortFunc(ents, func(a, b foldEntry) int {
		if a.From < b.From {
			return -1
		}
		if a.From > b.From {
			return 1
		}
		return 0
	})
	for i := 1; i < len(ents); i++ {
		if ents[i].From == ents[i-1].From {
			return nil, fmt.Errorf("duplicate fold row for %U", ents[i].From)
		}
	}
	if len(ents) == 0 {
		return nil, fmt.Errorf("no C/F case folding rows parsed")
	}
	return ents, nil
}

// assigned returns every assigned code point the verification pass
// should visit: all Unicode categories merged, minus surrogates (Cs)
// and private use (Co), which carry no case mappings.
func assigned() *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, 0, len(unicode.Categories))
	for name, rt := range unicode.Categories {
		// Skip the one-letter aggregates ("C", "L", ...): they repeat
		// the subcategories and "C" would smuggle Cs and Co back in.
		if len(name) != 2 || name == "Cs" || name == "Co" {
			continue
		}
		tabs = append(tabs, rt)
	}
	return rangetable.Merge(tabs...)
}

// visit visits all runes in the given RangeTable in order, calling fn
// for each.
func visit(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}

// orbit returns the unicode.SimpleFold closure of r.
func orbit(r rune) []rune {
	o := []rune{r}
	for rr := unicode.SimpleFold(r); rr != r; rr = unicode.SimpleFold(rr) {
		o = append(o, rr)
	}
	return o
}

// verify cross-checks the parsed table against the unicode package: the
// single-rune fold of every member of a SimpleFold orbit must agree, so
// equality under the table matches the stdlib's simple folding wherever
// the latter is defined. Multi-rune expansions have no stdlib
// counterpart and are only arity-checked.
func verify(ents []foldEntry) error {
	if unicode.Version != *unicodeVersion {
		log.Printf("WARN: skipping verification: unicode.Version (%s) does "+
			"not match the requested Unicode version (%s)",
			unicode.Version, *unicodeVersion)
		return nil
	}

	lookup := make(map[rune][]rune, len(ents))
	for _, e := range ents {
		lookup[e.From] = e.To
	}
	fold1 := func(r rune) (rune, bool) {
		if r < 0x80 {
			if 'A' <= r && r <= 'Z' {
				return r + ('a' - 'A'), true
			}
			return r, true
		}
		to, ok := lookup[r]
		if !ok {
			return r, true
		}
		if len(to) != 1 {
			return 0, false // full expansion, no single-rune fold
		}
		return to[0], true
	}

	rt := assigned()
	var n int
	visit(rt, func(rune) { n++ })

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(n), "verifying")
	} else {
		bar = progressbar.DefaultSilent(int64(n), "verifying")
	}

	var firstErr error
	visit(rt, func(r rune) {
		bar.Add(1)
		if firstErr != nil {
			return
		}
		o := orbit(r)
		if len(o) == 1 {
			return
		}
		want, ok := fold1(r)
		if !ok {
			return
		}
		for _, rr := range o {
			got, ok := fold1(rr)
			if !ok {
				continue
			}
			if got != want {
				firstErr = fmt.Errorf(
					"inconsistent orbit %U: fold(%U) = %U, fold(%U) = %U",
					o, r, want, rr, got)
				return
			}
		}
	})
	bar.Finish()
	return firstErr
}

func writeTable(w io.Writer, ents []foldEntry) {
	minFold := ents[0].From
	maxFold := ents[len(ents)-1].From

	fmt.Fprintf(w, "// Code generated by \"gen.go -unicode %s\"; DO NOT EDIT.\n\n",
		*unicodeVersion)
	fmt.Fprintf(w, "package unicase\n\n")
	fmt.Fprintf(w, "// UnicodeVersion is the Unicode edition CaseFolding.txt was taken from.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n\n", *unicodeVersion)
	fmt.Fprintf(w, "const (\n\tminFold = 0x%04X\n\tmaxFold = 0x%04X\n)\n\n",
		minFold, maxFold)
	fmt.Fprintf(w, "type foldEntry struct {\n\tfrom rune\n\tto   [3]rune\n}\n\n")
	fmt.Fprintf(w, "// _CaseFolds contains the common (C) and full (F) case foldings for every\n")
	fmt.Fprintf(w, "// code point above the ASCII range, sorted by code point. Unused trailing\n")
	fmt.Fprintf(w, "// elements of to are zero.\n")
	fmt.Fprintf(w, "var _CaseFolds = [%d]foldEntry{\n", len(ents))
	for _, e := range ents {
		to := make([]string, len(e.To))
		for i, r := range e.To {
			to[i] = fmt.Sprintf("0x%04X", r)
		}
		fmt.Fprintf(w, "\t{0x%04X, [3]rune{%s}},\n", e.From, joinComma(to))
	}
	fmt.Fprintf(w, "}\n")
}

func joinComma(elems []string) string {
	var b bytes.Buffer
	for i, s := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	return b.String()
}

func realMain() error {
	root, err := util.ProjectRoot()
	if err != nil {
		return err
	}

	f, err := openUCDFile(root, "CaseFolding.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	ents, err := parseCaseFolds(f)
	if err != nil {
		return err
	}
	log.Printf("parsed %d fold rows for Unicode %s", len(ents), *unicodeVersion)

	if !*skipVerify {
		if err := verify(ents); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	writeTable(&buf, ents)
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated table: %w", err)
	}
	if *dryRun {
		os.Stdout.Write(src)
		return nil
	}
	name := filepath.Join(root, "tables.go")
	if err := os.WriteFile(name, src, 0644); err != nil {
		return err
	}
	log.Printf("wrote %s", name)
	return nil
}

func main() {
	flag.Parse()
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}
