// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"slices"
)

const (
	// levelSep terminates each level of a sort key.
	levelSep = 0x01

	kanaSet    = 0xC4
	kanaUnset  = 0xE4
	kanaSepFF  = 0xFF
	kanaSepMid = 0x02
)

// A keyBuffer accumulates the per-level weights of one string. Levels two
// and three are finalized only when a key or a comparison needs them.
type keyBuffer struct {
	o          effective
	frenchSort bool

	l1, l2, l3 []byte
	// Kana sub-levels: small letter, voicing mark, kana type and width.
	ks, kt, kk, kw []byte
	l5             []byte

	// units counts the primary units appended so far, including any that
	// were skipped as a common prefix.
	units int
	// merge is set once a unit that marks can merge into is appended.
	merge bool

	scratch []byte
}

func (b *keyBuffer) init(o effective, frenchSort bool, n int) {
	b.o = o
	b.frenchSort = frenchSort
	b.l1 = slices.Grow(b.l1[:0], 2*n)
	b.l2 = slices.Grow(b.l2[:0], n)
	b.l3 = slices.Grow(b.l3[:0], n)
	b.ks, b.kt, b.kk, b.kw = b.ks[:0], b.kt[:0], b.kk[:0], b.kw[:0]
	b.l5 = b.l5[:0]
	b.units = 0
	b.merge = false
}

// appendNormal appends a primary unit. Zero level2 and level3 weights mean
// the default.
func (b *keyBuffer) appendNormal(cat, l1, l2, l3 byte) {
	if l2 == 0 {
		l2 = defaultWeight
	}
	if l3 == 0 {
		l3 = defaultWeight
	}
	b.l1 = append(b.l1, cat, l1)
	b.appendLower(l2, l3)
}

// appendExtended appends a unit whose primary weight takes four bytes.
func (b *keyBuffer) appendExtended(b1, b2 byte) {
	b.l1 = append(b.l1, 0xFE, 0xFF, b1, b2)
	b.appendLower(defaultWeight, defaultWeight)
}

func (b *keyBuffer) appendLower(l2, l3 byte) {
	if b.o.level2 {
		b.l2 = append(b.l2, l2)
	}
	if b.o.level3 {
		b.l3 = append(b.l3, l3)
	}
	b.units++
	b.merge = true
}

// appendKana appends a kana unit along with its four sub-level weights.
func (b *keyBuffer) appendKana(u *unit) {
	b.appendNormal(u.cat, u.l1, u.l2, u.l3)
	b.ks = append(b.ks, u.small)
	b.kt = append(b.kt, u.mark)
	b.kk = append(b.kk, u.katakana)
	b.kw = append(b.kw, u.half)
}

// setKanaMark records the voicing mark of the last kana unit.
func (b *keyBuffer) setKanaMark(m byte) {
	if n := len(b.kt); n > 0 {
		b.kt[n-1] = m
	}
}

// mergeMark adds the diacritic weight l2 of a nonspacing mark to the last
// unit. A mark that follows no unit is recorded on its own.
func (b *keyBuffer) mergeMark(l2, l3 byte) {
	if !b.merge {
		if b.o.level2 {
			b.l2 = append(b.l2, max(l2, defaultWeight))
		}
		if b.o.level3 {
			b.l3 = append(b.l3, defaultWeight|l3&compatBits)
		}
		return
	}
	if b.o.level2 {
		i := len(b.l2) - 1
		b.l2[i] = addLevel2(b.l2[i], l2)
	}
	if b.o.level3 {
		b.l3[len(b.l3)-1] |= l3 & compatBits
	}
}

// appendPositional records a variable character at the current unit offset.
func (b *keyBuffer) appendPositional(l1 byte) {
	hi := 0x80 + b.units/254
	if hi > 0xFF {
		hi = 0xFF
	}
	b.l5 = append(b.l5, byte(hi), byte(b.units%254+2), l1)
}

// secondary returns the finalized level 2 weights. French sorting reverses
// them before trailing defaults are trimmed.
func (b *keyBuffer) secondary() []byte {
	l2 := b.l2
	if b.frenchSort {
		b.scratch = append(b.scratch[:0], l2...)
		slices.Reverse(b.scratch)
		l2 = b.scratch
	}
	return trimDefault(l2)
}

func (b *keyBuffer) tertiary() []byte {
	return trimDefault(b.l3)
}

// kana returns the kana sub-levels, or nil if the string has no kana.
func (b *keyBuffer) kana() []byte {
	if len(b.ks) == 0 {
		return nil
	}
	k := b.scratch[:0]
	k = append(k, b.ks...)
	k = append(k, kanaSepFF)
	k = append(k, b.kt...)
	k = append(k, kanaSepMid)
	k = append(k, b.kk...)
	k = append(k, kanaSepFF)
	k = append(k, b.kw...)
	k = append(k, kanaSepFF)
	b.scratch = k
	return k
}

// appendKey appends the sort key to dst.
func (b *keyBuffer) appendKey(dst []byte) []byte {
	dst = append(dst, b.l1...)
	dst = append(dst, levelSep)
	dst = append(dst, b.secondary()...)
	dst = append(dst, levelSep)
	dst = append(dst, b.tertiary()...)
	dst = append(dst, levelSep)
	dst = append(dst, b.kana()...)
	dst = append(dst, levelSep)
	dst = append(dst, b.l5...)
	dst = append(dst, levelSep)
	return dst
}

// trimDefault strips trailing default weights.
func trimDefault(w []byte) []byte {
	i := len(w)
	for i > 0 && w[i-1] == defaultWeight {
		i--
	}
	return w[:i]
}

// levelComparers compare the levels that follow the primary one, in order.
// A level that is disabled is empty in both buffers.
var levelComparers = []func(a, b *keyBuffer) int{
	func(a, b *keyBuffer) int { return bytes.Compare(a.secondary(), b.secondary()) },
	func(a, b *keyBuffer) int { return bytes.Compare(a.tertiary(), b.tertiary()) },
	func(a, b *keyBuffer) int { return bytes.Compare(a.kana(), b.kana()) },
	func(a, b *keyBuffer) int { return bytes.Compare(a.l5, b.l5) },
}
