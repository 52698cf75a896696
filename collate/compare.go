// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nlsort/nls/internal/colltab"
)

// Compare returns -1, 0 or 1 as a sorts before, with or after b.
func (c *Collator) Compare(a, b string, opts Options) (int, error) {
	if err := c.check("Compare", opts); err != nil {
		return 0, err
	}
	return c.compare(a, b, opts), nil
}

// CompareRange compares a[aStart:aStart+aLen] with b[bStart:bStart+bLen].
func (c *Collator) CompareRange(a string, aStart, aLen int, b string, bStart, bLen int, opts Options) (int, error) {
	if err := c.check("CompareRange", opts); err != nil {
		return 0, err
	}
	as, ae, err := window("CompareRange", a, aStart, aLen)
	if err != nil {
		return 0, err
	}
	bs, be, err := window("CompareRange", b, bStart, bLen)
	if err != nil {
		return 0, err
	}
	return c.compare(a[as:ae], b[bs:be], opts), nil
}

func (c *Collator) compare(a, b string, opts Options) int {
	switch opts {
	case Ordinal:
		return strings.Compare(a, b)
	case OrdinalIgnoreCase:
		return compareIgnoreCase(a, b)
	}
	return c.compareWeighted(a, b, c.effective(opts))
}

// compareIgnoreCase compares the upper case forms of the runes of a and b.
func compareIgnoreCase(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb); ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	}
	return 1
}

func (c *Collator) compareWeighted(a, b string, o effective) int {
	p, units := 0, 0
	if !c.tl.FrenchSort {
		p, units = c.commonPrefix(a, b, o)
		if p == len(a) && p == len(b) {
			return 0
		}
	}
	ba, bb := c.getBuffer(o, len(a)-p), c.getBuffer(o, len(b)-p)
	defer c.putBuffer(ba)
	defer c.putBuffer(bb)
	ba.units, bb.units = units, units

	var xa, xb scanner
	xa.init(c, o, ba, a, p, len(a))
	xb.init(c, o, bb, b, p, len(b))

	// The primary level is compared while it is produced.
	for i := 0; ; i++ {
		for len(ba.l1) <= i && !xa.done() {
			xa.step()
		}
		for len(bb.l1) <= i && !xb.done() {
			xb.step()
		}
		switch {
		case i >= len(ba.l1) && i >= len(bb.l1):
			// Both scans are complete.
		case i >= len(ba.l1):
			return -1
		case i >= len(bb.l1):
			return 1
		case ba.l1[i] != bb.l1[i]:
			if ba.l1[i] < bb.l1[i] {
				return -1
			}
			return 1
		default:
			continue
		}
		break
	}
	for _, cmp := range levelComparers {
		if r := cmp(ba, bb); r != 0 {
			return r
		}
	}
	return 0
}

// commonPrefix returns the length of the longest common ASCII prefix of a
// and b that can be skipped, and the number of primary units it holds. The
// prefix ends in front of its last unit, so that marks and extenders that
// follow find it again, and never splits a contraction.
func (c *Collator) commonPrefix(a, b string, o effective) (p, units int) {
	n := min(len(a), len(b))
	for p < n && a[p] == b[p] && a[p] < utf8.RuneSelf {
		u, ok := c.asciiUnits(a[p], o)
		if !ok {
			break
		}
		units += u
		p++
	}
	if p == len(a) && p == len(b) {
		return p, units
	}
	for p > 0 {
		p--
		u, _ := c.asciiUnits(a[p], o)
		units -= u
		if u > 0 {
			break
		}
	}
	return p, units
}

// asciiUnits returns the number of primary units the ASCII byte ch produces
// on its own. It reports false if ch may start a contraction or may not
// start a scan.
func (c *Collator) asciiUnits(ch byte, o effective) (int, bool) {
	r := rune(ch)
	if c.tl.HasContraction(r) || c.tl.IsUnsafe(r) {
		return 0, false
	}
	if c.w.IsIgnorable(r, o.ignore) {
		return 0, true
	}
	if c.w.Category(r) == colltab.CatVariable && !o.stringSort {
		return 0, true
	}
	return 1, true
}
