// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collate compares strings and computes sort keys the way the
// Windows and .NET linguistic comparison does.
//
// Every code point has a category and up to three weights: a primary weight
// for letter identity, a diacritic weight and a case and width weight.
// Strings are compared level by level, so that case only decides when the
// letters and diacritics are equal. Japanese kana carry four extra
// sub-levels, and hyphens and apostrophes are compared by position last.
// Each locale may tailor the invariant order with contractions, which map
// a sequence of runes to a single weight or to a replacement sequence.
package collate

import (
	"sync"

	"github.com/golang/glog"
	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tailor"
	"github.com/nlsort/nls/locale"
	"golang.org/x/text/language"
)

// Collator compares strings under the rules of one locale. All methods are
// safe for concurrent use.
type Collator struct {
	w    *colltab.Tables
	tl   *tailor.Tailoring
	info locale.Info
	cjk  *colltab.CJKTable

	japanese   bool
	voiced     byte
	semiVoiced byte

	pool sync.Pool
}

// New returns a Collator for the locale that best matches t, using the
// default tables.
func New(t language.Tag) (*Collator, error) {
	tb, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	return NewFromTables(tb, t)
}

// NewFromTables returns a Collator for the locale that best matches t.
func NewFromTables(tb *Tables, t language.Tag) (*Collator, error) {
	if !tb.Ready() {
		return nil, errorf(ResourceUnavailable, "New", "tables not loaded", nil)
	}
	info := locale.Match(t)
	tl, err := tb.tailor.Get(uint32(info.LCID))
	if err != nil {
		return nil, errorf(ResourceUnavailable, "New", "tailoring "+info.LCID.String(), err)
	}
	c := &Collator{
		w:          tb.weights,
		tl:         tl,
		info:       info,
		japanese:   info.LCID.IsJapanese(),
		voiced:     tb.weights.Level2(0x3099),
		semiVoiced: tb.weights.Level2(0x309A),
	}
	if info.CJK != "" {
		c.cjk = tb.weights.CJK(info.CJK)
		if c.cjk == nil {
			glog.Warningf("collate: %v: no %s ideograph table, using code point order", info.Tag, info.CJK)
		}
	}
	c.pool.New = func() any { return new(keyBuffer) }
	glog.V(2).Infof("collate: new collator for %v (%v)", info.Tag, info.LCID)
	return c, nil
}

// Locale returns the tag of the locale the collator implements.
func (c *Collator) Locale() language.Tag { return c.info.Tag }

// LCID returns the locale identifier of the collator.
func (c *Collator) LCID() locale.LCID { return c.info.LCID }

func (c *Collator) getBuffer(o effective, n int) *keyBuffer {
	b := c.pool.Get().(*keyBuffer)
	b.init(o, c.tl.FrenchSort, n)
	return b
}

func (c *Collator) putBuffer(b *keyBuffer) {
	c.pool.Put(b)
}

// check validates opts for the operation op.
func (c *Collator) check(op string, opts Options) error {
	if c == nil || !c.w.Ready() {
		return errorf(ResourceUnavailable, op, "tables not loaded", nil)
	}
	return opts.validate(op)
}

// window validates the range [start, start+length) of s.
func window(op string, s string, start, length int) (int, int, error) {
	if start < 0 || length < 0 || start > len(s) || length > len(s)-start {
		return 0, 0, errorf(InvalidArgument, op, "window out of range", nil)
	}
	end := start + length
	if !isBoundary(s, start) || !isBoundary(s, end) {
		return 0, 0, errorf(InvalidArgument, op, "window splits a rune", nil)
	}
	return start, end, nil
}

// isBoundary reports whether i starts a rune in s, or is len(s).
func isBoundary(s string, i int) bool {
	return i == len(s) || s[i]&0xC0 != 0x80
}

// key scans s[start:end] into a buffer obtained from the pool.
func (c *Collator) key(o effective, s string, start, end int) *keyBuffer {
	b := c.getBuffer(o, end-start)
	var x scanner
	x.init(c, o, b, s, start, end)
	x.run()
	return b
}
