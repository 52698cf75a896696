// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm contains types and functions for normalizing Unicode strings.
package norm

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// A Form denotes a canonical representation of Unicode code points.
// The Unicode-defined normalization and equivalence forms are:
//
//	NFC   Unicode Normalization Form C
//	NFD   Unicode Normalization Form D
//	NFKC  Unicode Normalization Form KC
//	NFKD  Unicode Normalization Form KD
//
// For a Form f, this documentation uses the notation f(x) to mean
// the bytes or string x converted to the given form.
//
// References: https://unicode.org/reports/tr15/.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// Name returns the name of the form, such as "NFC".
func (f Form) Name() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	}
	return "Form(?)"
}

// ParseForm returns the form with the given name. Names are case
// insensitive.
func ParseForm(name string) (Form, error) {
	for _, f := range []Form{NFC, NFD, NFKC, NFKD} {
		if strings.EqualFold(name, f.Name()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("norm: unknown form %q", name)
}

func (f Form) composing() bool { return f == NFC || f == NFKC }
func (f Form) compat() bool    { return f == NFKC || f == NFKD }

// String returns f(s).
func (f Form) String(s string) string { return Default().Normalize(s, f) }

// Bytes returns f(b). May return b if f(b) = b.
func (f Form) Bytes(b []byte) []byte {
	t := Default()
	if t.isNormal(string(b), f) {
		return b
	}
	return t.appendNormalized(nil, string(b), f)
}

// IsNormal returns true if b == f(b).
func (f Form) IsNormal(b []byte) bool { return Default().IsNormalized(string(b), f) }

// IsNormalString returns true if s == f(s).
func (f Form) IsNormalString(s string) bool { return Default().IsNormalized(s, f) }

// QuickCheck reports whether r may appear unchanged in text of form f.
func (f Form) QuickCheck(r rune) QCResult { return Default().QuickCheck(r, f) }

// Normalize returns f(s). If s is already normalized it is returned as is.
func (t *Tables) Normalize(s string, f Form) string {
	if t.isNormal(s, f) {
		return s
	}
	return string(t.appendNormalized(make([]byte, 0, len(s)+len(s)/4), s, f))
}

// IsNormalized reports whether s == f(s).
func (t *Tables) IsNormalized(s string, f Form) bool {
	return t.isNormal(s, f)
}

// isNormal runs the quick check over s. It falls back to full normalization
// only when a Maybe is encountered.
func (t *Tables) isNormal(s string, f Form) bool {
	lastCC := uint8(0)
	for i := 0; i < len(s); {
		r, sz := rune(s[i]), 1
		if r >= utf8.RuneSelf {
			r, sz = utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && sz == 1 {
				lastCC = 0
				i++
				continue
			}
		}
		cc := t.CCC(r)
		if cc != 0 && lastCC > cc {
			return false
		}
		switch t.QuickCheck(r, f) {
		case No:
			return false
		case Maybe:
			return string(t.appendNormalized(nil, s, f)) == s
		}
		lastCC = cc
		i += sz
	}
	return true
}

// Decompose returns the canonical decomposition of s, or the compatibility
// decomposition if compat is set. Combining marks are reordered by
// combining class.
func (t *Tables) Decompose(s string, compat bool) string {
	f := NFD
	if compat {
		f = NFKD
	}
	return string(t.appendNormalized(nil, s, f))
}

// Compose returns the canonical composition of the decomposition of s.
func (t *Tables) Compose(s string, compat bool) string {
	f := NFC
	if compat {
		f = NFKC
	}
	return string(t.appendNormalized(nil, s, f))
}

// appendNormalized appends f(s) to out. Invalid UTF-8 bytes are copied
// verbatim and break the text into independently normalized runs.
func (t *Tables) appendNormalized(out []byte, s string, f Form) []byte {
	var rs []rune
	start := 0
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || sz != 1 {
			i += sz
			continue
		}
		rs = t.normalizeRun(rs[:0], s[start:i], f)
		out = appendRunes(out, rs)
		out = append(out, s[i])
		i++
		start = i
	}
	rs = t.normalizeRun(rs[:0], s[start:], f)
	return appendRunes(out, rs)
}

func appendRunes(out []byte, rs []rune) []byte {
	for _, r := range rs {
		out = utf8.AppendRune(out, r)
	}
	return out
}

func (t *Tables) normalizeRun(buf []rune, s string, f Form) []rune {
	buf = t.decompose(buf, s, f.compat())
	t.reorder(buf)
	if f.composing() {
		buf = t.compose(buf)
	}
	return buf
}

func (t *Tables) decompose(buf []rune, s string, compat bool) []rune {
	for _, r := range s {
		if isHangul(r) {
			buf = appendHangul(buf, r)
			continue
		}
		d := t.Decomposition(r, compat)
		if d == "" {
			buf = append(buf, r)
			continue
		}
		for _, dr := range d {
			if isHangul(dr) {
				buf = appendHangul(buf, dr)
			} else {
				buf = append(buf, dr)
			}
		}
	}
	return buf
}

// reorder sorts each run of non-starters by combining class. The sort is
// stable, so marks of equal class keep their order.
func (t *Tables) reorder(rs []rune) {
	for i := 1; i < len(rs); i++ {
		cc := t.CCC(rs[i])
		if cc == 0 {
			continue
		}
		r := rs[i]
		j := i
		for ; j > 0; j-- {
			pcc := t.CCC(rs[j-1])
			if pcc == 0 || pcc <= cc {
				break
			}
			rs[j] = rs[j-1]
		}
		rs[j] = r
	}
}

// compose applies canonical composition to a reordered decomposition in
// place. A rune combines with the last starter unless a rune in between is
// a starter or has a class equal to or higher than its own.
func (t *Tables) compose(rs []rune) []rune {
	out := rs[:0]
	starter := -1
	lastCC := uint8(0)
	for _, r := range rs {
		cc := t.CCC(r)
		if starter >= 0 {
			adjacent := len(out)-1 == starter
			if adjacent || (lastCC != 0 && lastCC < cc) {
				if c, ok := t.composePair(out[starter], r); ok {
					out[starter] = c
					continue
				}
			}
		}
		if cc == 0 {
			starter = len(out)
		}
		lastCC = cc
		out = append(out, r)
	}
	return out
}
