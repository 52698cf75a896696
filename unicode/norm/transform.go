// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// MaxSegmentSize is the number of source bytes after which Transform
// normalizes pending input even if no boundary was found.
const MaxSegmentSize = 4096

// Reset implements the Reset method of the transform.Transformer interface.
func (Form) Reset() {}

// Transform implements the transform.Transformer interface. Normalized
// segments are written whole: a segment that does not fit in dst is left
// for the next call with transform.ErrShortDst.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t := Default()
	end := len(src)
	if !atEOF {
		end = t.lastBoundary(src, f)
		if end == 0 && len(src) >= MaxSegmentSize {
			end = len(src)
		}
	}
	var tmp []byte
	for nSrc < end {
		next := t.nextBoundary(src[:end], nSrc, f)
		tmp = t.appendNormalized(tmp[:0], string(src[nSrc:next]), f)
		if len(tmp) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], tmp)
		nSrc = next
	}
	if nSrc < len(src) {
		err = transform.ErrShortSrc
	}
	return nDst, nSrc, err
}

// isBoundary reports whether normalization can proceed independently on
// both sides of a rune r. A rune that decomposes is a boundary when its
// decomposition starts with a starter that does not combine backwards.
func (t *Tables) isBoundary(r rune, f Form) bool {
	if t.CCC(r) != 0 {
		return false
	}
	lead := r
	if d := t.Decomposition(r, f.compat()); d != "" {
		lead, _ = utf8.DecodeRuneInString(d)
		if t.CCC(lead) != 0 {
			return false
		}
	}
	if f.composing() {
		return t.QuickCheck(r, f) != Maybe && t.QuickCheck(lead, f) != Maybe
	}
	return true
}

// nextBoundary returns the first boundary in b after position p, or len(b).
func (t *Tables) nextBoundary(b []byte, p int, f Form) int {
	_, sz := utf8.DecodeRune(b[p:])
	for p += sz; p < len(b); p += sz {
		var r rune
		r, sz = utf8.DecodeRune(b[p:])
		if (r == utf8.RuneError && sz == 1) || t.isBoundary(r, f) {
			return p
		}
	}
	return len(b)
}

// lastBoundary returns the position of the last boundary in b. The text
// after it may still change with more input.
func (t *Tables) lastBoundary(b []byte, f Form) int {
	last := 0
	for p := 0; p < len(b); {
		if !utf8.FullRune(b[p:]) {
			break
		}
		r, sz := utf8.DecodeRune(b[p:])
		if p > 0 && ((r == utf8.RuneError && sz == 1) || t.isBoundary(r, f)) {
			last = p
		}
		p += sz
	}
	return last
}
