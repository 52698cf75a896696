// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import "unicode/utf8"

// MaxDepth is the maximum number of nested inputs an Iter tracks. The base
// input takes one slot.
const MaxDepth = 4

type frame struct {
	s        string
	pos, end int
}

// An Iter walks a string one rune at a time. Contraction replacements are
// scanned by pushing them as nested frames; when a frame is exhausted the
// scan resumes in the frame below it.
type Iter struct {
	frames [MaxDepth]frame
	n      int
}

// SetInputString resets i to scan s[start:end].
func (i *Iter) SetInputString(s string, start, end int) {
	i.frames[0] = frame{s: s, pos: start, end: end}
	i.n = 1
}

// Push starts scanning s before resuming the current frame. It reports
// false if the frame stack is full.
func (i *Iter) Push(s string) bool {
	if i.n == MaxDepth {
		return false
	}
	i.frames[i.n] = frame{s: s, end: len(s)}
	i.n++
	return true
}

// Full reports whether Push would fail.
func (i *Iter) Full() bool { return i.n == MaxDepth }

// Escaped reports whether the scan is inside a pushed frame.
func (i *Iter) Escaped() bool { return i.n > 1 }

// Done pops exhausted frames and reports whether all input is consumed.
func (i *Iter) Done() bool {
	for i.n > 0 {
		f := &i.frames[i.n-1]
		if f.pos < f.end {
			return false
		}
		if i.n == 1 {
			return true
		}
		i.n--
	}
	return true
}

// Peek returns the next rune of the current frame and its size. It must
// only be called after Done reports false.
func (i *Iter) Peek() (rune, int) {
	f := &i.frames[i.n-1]
	if c := f.s[f.pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(f.s[f.pos:f.end])
}

// Rest returns the unconsumed text of the current frame.
func (i *Iter) Rest() string {
	f := &i.frames[i.n-1]
	return f.s[f.pos:f.end]
}

// Advance consumes n bytes of the current frame.
func (i *Iter) Advance(n int) {
	i.frames[i.n-1].pos += n
}

// Pos returns the byte offset of the scan in the base input.
func (i *Iter) Pos() int {
	return i.frames[0].pos
}
