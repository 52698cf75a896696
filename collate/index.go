// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nlsort/nls/internal/colltab"
)

// A target is a search string in the form matched against candidates.
type target struct {
	l1  []byte
	key []byte
}

// emptyKey is the sort key of a string without weights.
var emptyKey = []byte{levelSep, levelSep, levelSep, levelSep, levelSep}

func (c *Collator) prepare(o effective, t string) *target {
	b := c.key(o, t, 0, len(t))
	defer c.putBuffer(b)
	return &target{l1: bytes.Clone(b.l1), key: b.appendKey(nil)}
}

// isEmpty reports whether the target matches the empty string.
func (t *target) isEmpty() bool { return bytes.Equal(t.key, emptyKey) }

// matchPrefix reports whether some prefix of s[start:end] sorts equal to t.
// It returns the end of the shortest such prefix.
func (c *Collator) matchPrefix(o effective, s string, start, end int, t *target) (int, bool) {
	if t.isEmpty() {
		return start, true
	}
	b := c.getBuffer(o, end-start)
	defer c.putBuffer(b)
	var x scanner
	x.init(c, o, b, s, start, end)
	var key []byte
	for {
		if len(b.l1) == len(t.l1) && x.atBoundary() && bytes.Equal(b.l1, t.l1) {
			key = b.appendKey(key[:0])
			if bytes.Equal(key, t.key) {
				return x.it.Pos(), true
			}
		}
		if x.done() {
			return -1, false
		}
		x.step()
		if !bytes.HasPrefix(t.l1, b.l1) {
			return -1, false
		}
	}
}

// startable reports whether a match may start at r.
func (c *Collator) startable(o effective, r rune) bool {
	var x scanner
	x.c, x.o = c, o
	f := x.fold(r)
	return !x.ignorable(f) && c.w.Category(f) != colltab.CatNonSpacing &&
		colltab.Extender(f, c.japanese) == colltab.ExtenderNone
}

// never reports whether t cannot match at the ASCII byte ch, judged from
// the primary weight ch produces on its own.
func (c *Collator) never(o effective, ch byte, t *target) bool {
	r := rune(ch)
	if len(t.l1) < 2 || c.tl.HasContraction(r) {
		return false
	}
	cat := c.w.Category(r)
	if c.w.IsIgnorable(r, o.ignore) || (cat == colltab.CatVariable && !o.stringSort) {
		return false
	}
	return cat != t.l1[0] || c.w.Level1(r) != t.l1[1]
}

// starts returns the positions in s[start:end] at which a scan from start
// begins a new unit and a match may start. Positions inside a contraction or
// an expansion are never included.
func (c *Collator) starts(o effective, s string, start, end int) []int {
	b := c.getBuffer(o, end-start)
	defer c.putBuffer(b)
	var x scanner
	x.init(c, o, b, s, start, end)
	var ks []int
	for !x.done() {
		if !x.it.Escaped() {
			k := x.it.Pos()
			r, _ := utf8.DecodeRuneInString(s[k:end])
			if c.startable(o, r) {
				ks = append(ks, k)
			}
		}
		x.step()
	}
	return ks
}

// find returns the first match of t in s[start:end].
func (c *Collator) find(s, t string, start, end int, opts Options) (int, int) {
	switch opts {
	case Ordinal:
		if i := strings.Index(s[start:end], t); i >= 0 {
			return start + i, start + i + len(t)
		}
		return -1, -1
	case OrdinalIgnoreCase:
		for k := start; k <= end; {
			if e, ok := hasPrefixIgnoreCase(s[k:end], t); ok {
				return k, k + e
			}
			if k == end {
				break
			}
			_, n := utf8.DecodeRuneInString(s[k:end])
			k += n
		}
		return -1, -1
	}
	o := c.effective(opts)
	tg := c.prepare(o, t)
	if tg.isEmpty() {
		return start, start
	}
	// memo caches, per ASCII byte, whether a match can start there.
	var memo [utf8.RuneSelf]int8
	for _, k := range c.starts(o, s, start, end) {
		if ch := s[k]; ch < utf8.RuneSelf {
			if memo[ch] == 0 {
				memo[ch] = 1
				if c.never(o, ch, tg) {
					memo[ch] = -1
				}
			}
			if memo[ch] < 0 {
				continue
			}
		}
		if e, ok := c.matchPrefix(o, s, k, end, tg); ok {
			return k, e
		}
	}
	return -1, -1
}

// findLast returns the last match of t in s[start:end].
func (c *Collator) findLast(s, t string, start, end int, opts Options) (int, int) {
	switch opts {
	case Ordinal:
		if i := strings.LastIndex(s[start:end], t); i >= 0 {
			return start + i, start + i + len(t)
		}
		return -1, -1
	case OrdinalIgnoreCase:
		for k := end; k >= start; k-- {
			if !isBoundary(s, k) {
				continue
			}
			if e, ok := hasPrefixIgnoreCase(s[k:end], t); ok {
				return k, k + e
			}
		}
		return -1, -1
	}
	o := c.effective(opts)
	tg := c.prepare(o, t)
	if tg.isEmpty() {
		return end, end
	}
	ks := c.starts(o, s, start, end)
	for i := len(ks) - 1; i >= 0; i-- {
		if e, ok := c.matchPrefix(o, s, ks[i], end, tg); ok {
			return ks[i], e
		}
	}
	return -1, -1
}

// IndexOf returns the byte offset of the first match of t in the window
// s[start:start+length], or -1. A match that would begin or end inside the
// expansion of a single rune is not found.
func (c *Collator) IndexOf(s, t string, start, length int, opts Options) (int, error) {
	if err := c.check("IndexOf", opts); err != nil {
		return -1, err
	}
	start, end, err := window("IndexOf", s, start, length)
	if err != nil {
		return -1, err
	}
	i, _ := c.find(s, t, start, end, opts)
	return i, nil
}

// IndexOfRune returns the byte offset of the first match of r in the window
// s[start:start+length], or -1.
func (c *Collator) IndexOfRune(s string, r rune, start, length int, opts Options) (int, error) {
	return c.IndexOf(s, string(r), start, length, opts)
}

// LastIndexOf returns the byte offset of the last match of t in the window
// s[start:start+length], or -1. An empty target matches at the end of the
// window.
func (c *Collator) LastIndexOf(s, t string, start, length int, opts Options) (int, error) {
	if err := c.check("LastIndexOf", opts); err != nil {
		return -1, err
	}
	start, end, err := window("LastIndexOf", s, start, length)
	if err != nil {
		return -1, err
	}
	i, _ := c.findLast(s, t, start, end, opts)
	return i, nil
}

// LastIndexOfRune returns the byte offset of the last match of r in the
// window s[start:start+length], or -1.
func (c *Collator) LastIndexOfRune(s string, r rune, start, length int, opts Options) (int, error) {
	return c.LastIndexOf(s, string(r), start, length, opts)
}

// Find returns the bounds of the first match of t in s, or -1, -1.
func (c *Collator) Find(s, t string, opts Options) (start, end int, err error) {
	if err := c.check("Find", opts); err != nil {
		return -1, -1, err
	}
	start, end = c.find(s, t, 0, len(s), opts)
	return start, end, nil
}

// FindLast returns the bounds of the last match of t in s, or -1, -1.
func (c *Collator) FindLast(s, t string, opts Options) (start, end int, err error) {
	if err := c.check("FindLast", opts); err != nil {
		return -1, -1, err
	}
	start, end = c.findLast(s, t, 0, len(s), opts)
	return start, end, nil
}

// IsPrefix reports whether s starts with a string that sorts equal to t.
func (c *Collator) IsPrefix(s, t string, opts Options) (bool, error) {
	_, ok, err := c.MatchPrefix(s, t, opts)
	return ok, err
}

// MatchPrefix is like IsPrefix but also returns the end of the matching
// prefix of s.
func (c *Collator) MatchPrefix(s, t string, opts Options) (end int, ok bool, err error) {
	if err := c.check("IsPrefix", opts); err != nil {
		return -1, false, err
	}
	switch opts {
	case Ordinal:
		if strings.HasPrefix(s, t) {
			return len(t), true, nil
		}
		return -1, false, nil
	case OrdinalIgnoreCase:
		end, ok = hasPrefixIgnoreCase(s, t)
		return end, ok, nil
	}
	o := c.effective(opts)
	end, ok = c.matchPrefix(o, s, 0, len(s), c.prepare(o, t))
	return end, ok, nil
}

// IsSuffix reports whether s ends with a string that sorts equal to t.
func (c *Collator) IsSuffix(s, t string, opts Options) (bool, error) {
	_, ok, err := c.MatchSuffix(s, t, opts)
	return ok, err
}

// MatchSuffix is like IsSuffix but also returns the start of the matching
// suffix of s.
func (c *Collator) MatchSuffix(s, t string, opts Options) (start int, ok bool, err error) {
	if err := c.check("IsSuffix", opts); err != nil {
		return -1, false, err
	}
	switch opts {
	case Ordinal:
		if strings.HasSuffix(s, t) {
			return len(s) - len(t), true, nil
		}
		return -1, false, nil
	case OrdinalIgnoreCase:
		for k := len(s); k >= 0; k-- {
			if !isBoundary(s, k) {
				continue
			}
			if e, ok := hasPrefixIgnoreCase(s[k:], t); ok && k+e == len(s) {
				return k, true, nil
			}
		}
		return -1, false, nil
	}
	o := c.effective(opts)
	tg := c.prepare(o, t)
	ks := append(c.starts(o, s, 0, len(s)), len(s))
	for i := len(ks) - 1; i >= 0; i-- {
		b := c.key(o, s, ks[i], len(s))
		n, key := len(b.l1), b.appendKey(nil)
		c.putBuffer(b)
		if n > len(tg.l1) {
			break
		}
		if bytes.Equal(key, tg.key) {
			return ks[i], true, nil
		}
	}
	return -1, false, nil
}

// hasPrefixIgnoreCase reports whether s starts with t when both are upper
// cased rune by rune. It returns the length of the matching prefix of s.
func hasPrefixIgnoreCase(s, t string) (int, bool) {
	n := 0
	for t != "" {
		if s == "" {
			return -1, false
		}
		rs, ns := utf8.DecodeRuneInString(s)
		rt, nt := utf8.DecodeRuneInString(t)
		if unicode.ToUpper(rs) != unicode.ToUpper(rt) {
			return -1, false
		}
		s, t = s[ns:], t[nt:]
		n += ns
	}
	return n, true
}
