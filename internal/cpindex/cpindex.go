// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpindex maps the sparse code point space onto compact table
// indices using a small, sorted set of contiguous ranges.
package cpindex

import (
	"fmt"
	"sort"
)

// Uncovered is returned by ToCodePoint for indices that do not map back to a
// code point.
const Uncovered rune = -1

// A Range is a half-open interval [Lo, Hi) of code points.
type Range struct {
	Lo, Hi rune
}

type span struct {
	Range
	base int // index of Lo
}

// An Indexer converts between code points and compact indices.
// An Indexer is immutable and safe for concurrent use.
type Indexer struct {
	spans []span
	n     int
	def   int
}

// New returns an Indexer covering ranges, which must be non-empty, sorted and
// non-overlapping. ToIndex returns def for code points outside every range.
func New(def int, ranges ...Range) (*Indexer, error) {
	ix := &Indexer{def: def}
	prev := rune(-1)
	for _, r := range ranges {
		if r.Lo >= r.Hi || r.Lo < 0 || r.Hi > 0x110000 {
			return nil, fmt.Errorf("cpindex: invalid range [%#x, %#x)", r.Lo, r.Hi)
		}
		if r.Lo < prev {
			return nil, fmt.Errorf("cpindex: range [%#x, %#x) out of order", r.Lo, r.Hi)
		}
		ix.spans = append(ix.spans, span{r, ix.n})
		ix.n += int(r.Hi - r.Lo)
		prev = r.Hi
	}
	return ix, nil
}

// Must is like New but panics on error. It is intended for package-level
// indexers built from constant ranges.
func Must(def int, ranges ...Range) *Indexer {
	ix, err := New(def, ranges...)
	if err != nil {
		panic(err)
	}
	return ix
}

// Len reports the number of covered code points.
func (ix *Indexer) Len() int { return ix.n }

// Default reports the index returned for uncovered code points.
func (ix *Indexer) Default() int { return ix.def }

// ToIndex returns the compact index of r, or the default if r is not covered.
func (ix *Indexer) ToIndex(r rune) int {
	i := sort.Search(len(ix.spans), func(i int) bool { return ix.spans[i].Hi > r })
	if i == len(ix.spans) || r < ix.spans[i].Lo {
		return ix.def
	}
	s := &ix.spans[i]
	return s.base + int(r-s.Lo)
}

// Covers reports whether r falls inside one of the ranges.
func (ix *Indexer) Covers(r rune) bool {
	i := sort.Search(len(ix.spans), func(i int) bool { return ix.spans[i].Hi > r })
	return i < len(ix.spans) && r >= ix.spans[i].Lo
}

// ToCodePoint is the inverse of ToIndex. It returns Uncovered for indices
// outside [0, Len()).
func (ix *Indexer) ToCodePoint(i int) rune {
	if i < 0 || i >= ix.n {
		return Uncovered
	}
	j := sort.Search(len(ix.spans), func(j int) bool {
		s := &ix.spans[j]
		return s.base+int(s.Hi-s.Lo) > i
	})
	s := &ix.spans[j]
	return s.Lo + rune(i-s.base)
}

// Each calls fn for every covered code point in ascending order.
func (ix *Indexer) Each(fn func(i int, r rune)) {
	for _, s := range ix.spans {
		for r := s.Lo; r < s.Hi; r++ {
			fn(s.base+int(r-s.Lo), r)
		}
	}
}
