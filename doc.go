// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package unicase provides case-insensitive wrappers around strings.
//
// Equality, ordering, and hashing are defined by full Unicode case
// folding (CaseFolding.txt statuses C and F), so one input character may
// fold to up to three characters: "Maße" equals "MASSE" and "ﬂour"
// equals "flour". Comparisons walk the two folded streams lazily and
// never allocate.
//
// [UniCase] wraps any string and picks a byte-wise ASCII fast path at
// construction time when the content allows it; the fast path is
// indistinguishable from the full Unicode path for ASCII content.
// [Ascii] wraps strings that are known to be ASCII and always takes the
// byte-wise path.
//
// [Map] and [Set] are hash containers keyed by the folded form of their
// keys. Lookups take a plain string, so a borrowed key can be checked
// against stored wrapper keys without allocating or constructing a
// wrapper.
package unicase

//go:generate go run -tags gen gen.go
