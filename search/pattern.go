// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "unicode/utf8"

// A Pattern is a compiled search string. It is safe for concurrent use.
type Pattern struct {
	m   *Matcher
	pat string
}

// Index reports the start and end position of the first occurrence of p in b
// or -1, -1 if p is not present.
func (p *Pattern) Index(b []byte, opts ...IndexOption) (start, end int) {
	return p.IndexString(string(b), opts...)
}

// IndexString reports the start and end position of the first occurrence of p
// in s or -1, -1 if p is not present.
func (p *Pattern) IndexString(s string, opts ...IndexOption) (start, end int) {
	var anchor, backwards bool
	for _, o := range opts {
		switch o {
		case Anchor:
			anchor = true
		case Backwards:
			backwards = true
		}
	}
	if p.m.wholeWord {
		return p.indexWord(s, anchor, backwards)
	}
	var (
		ok  = true
		err error
	)
	c, o := p.m.c, p.m.opts
	switch {
	case anchor && backwards:
		start, ok, err = c.MatchSuffix(s, p.pat, o)
		end = len(s)
	case anchor:
		end, ok, err = c.MatchPrefix(s, p.pat, o)
	case backwards:
		start, end, err = c.FindLast(s, p.pat, o)
	default:
		start, end, err = c.Find(s, p.pat, o)
	}
	if err != nil || !ok || start < 0 {
		return -1, -1
	}
	return start, end
}

// matchAt returns the end of the match of p that starts at i and ends at a
// word boundary.
func (p *Pattern) matchAt(s string, i int) (int, bool) {
	if !atWordBoundary(s, i) {
		return -1, false
	}
	e, ok, err := p.m.c.MatchPrefix(s[i:], p.pat, p.m.opts)
	if err != nil || !ok || !atWordBoundary(s, i+e) {
		return -1, false
	}
	return i + e, true
}

// indexWord is IndexString for matches that may not split words.
func (p *Pattern) indexWord(s string, anchor, backwards bool) (start, end int) {
	switch {
	case anchor && backwards:
		i, ok, err := p.m.c.MatchSuffix(s, p.pat, p.m.opts)
		if err == nil && ok && atWordBoundary(s, i) {
			return i, len(s)
		}
	case anchor:
		if e, ok := p.matchAt(s, 0); ok {
			return 0, e
		}
	case backwards:
		for i := len(s); i >= 0; i-- {
			if i < len(s) && !utf8.RuneStart(s[i]) {
				continue
			}
			if e, ok := p.matchAt(s, i); ok {
				return i, e
			}
		}
	default:
		for i := 0; i <= len(s); {
			if e, ok := p.matchAt(s, i); ok {
				return i, e
			}
			if i == len(s) {
				break
			}
			_, n := utf8.DecodeRuneInString(s[i:])
			i += n
		}
	}
	return -1, -1
}
