// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tailor"
)

const (
	defaultWeight = colltab.DefaultLevel
	compatBits    = colltab.L3Wide | colltab.L3Narrow | colltab.L3Compat

	// Kana voicing marks.
	markNone       = 3
	markVoiced     = 4
	markSemiVoiced = 5
)

// addLevel2 adds two diacritic weights, saturating at 0xFF.
func addLevel2(a, b byte) byte {
	if s := int(a) + int(b); s < 0xFF {
		return byte(s)
	}
	return 0xFF
}

// A unit is the weight of one primary collation unit.
type unit struct {
	cat, l1, l2, l3 byte

	kana                        bool
	small, mark, katakana, half byte
}

// A scanner turns one string into weights. It holds all state that carries
// over from one rune to the next, so that a Collator itself is stateless.
type scanner struct {
	c   *Collator
	o   effective
	it  colltab.Iter
	buf *keyBuffer

	// prev is the last unit that was not produced by an extender.
	prev     unit
	prevRune rune
	hasPrev  bool
}

func (x *scanner) init(c *Collator, o effective, buf *keyBuffer, s string, start, end int) {
	x.c = c
	x.o = o
	x.buf = buf
	x.it.SetInputString(s, start, end)
	x.hasPrev = false
}

// done reports whether the input is exhausted.
func (x *scanner) done() bool { return x.it.Done() }

// fold maps r to the representative of its class under the options.
func (x *scanner) fold(r rune) rune {
	if x.o.width {
		r = x.c.w.ToWidthInsensitive(r)
	}
	if x.o.kanaType {
		r = colltab.ToKanaTypeInsensitive(r)
	}
	if x.o.turkish && (r == 'I' || r == 0x0130) {
		r = unicode.TurkishCase.ToLower(r)
	}
	return r
}

// ignorable reports whether r, already folded, produces no weight.
func (x *scanner) ignorable(r rune) bool {
	return x.c.w.IsIgnorable(r, x.o.ignore)
}

// step consumes one rune, or one contraction, and appends its weights.
func (x *scanner) step() {
	raw, n := x.it.Peek()
	r := x.fold(raw)
	if x.ignorable(r) {
		x.it.Advance(n)
		return
	}
	ct := x.contraction(raw)
	if ct != nil {
		n = len(ct.Source)
	} else if r != raw {
		ct = x.foldedContraction(r)
	}
	x.it.Advance(n)
	switch {
	case ct == nil:
		x.weigh(r)
	case ct.HasReplacement():
		x.it.Push(ct.Replacement)
	default:
		x.override(ct)
	}
}

// contraction returns the contraction that starts at the current position.
// Replacements are not expanded beyond the frame limit.
func (x *scanner) contraction(r rune) *tailor.Contraction {
	tl := x.c.tl
	if !tl.HasContraction(r) {
		return nil
	}
	ct := tl.Contraction(x.it.Rest())
	if ct != nil && ct.HasReplacement() && x.it.Full() {
		return nil
	}
	return ct
}

// foldedContraction returns the contraction whose source is exactly the
// folded rune r. Folding only ever yields single rune sources.
func (x *scanner) foldedContraction(r rune) *tailor.Contraction {
	tl := x.c.tl
	if !tl.HasContraction(r) {
		return nil
	}
	s := string(r)
	ct := tl.Contraction(s)
	if ct == nil || ct.Source != s || (ct.HasReplacement() && x.it.Full()) {
		return nil
	}
	return ct
}

// override appends the explicit weight of a contraction.
func (x *scanner) override(ct *tailor.Contraction) {
	first, _ := utf8.DecodeRuneInString(ct.Source)
	first = x.fold(first)
	u := unit{cat: ct.Weights[0], l1: ct.Weights[1], l2: ct.Weights[2], l3: ct.Weights[3]}
	if u.l2 == inheritWeight {
		u.l2 = x.c.w.Level2(first)
	}
	if u.l3 == inheritWeight {
		u.l3 = x.c.w.Level3(first)
	}
	x.emit(&u, first)
}

// Private use code points fill the categories from CatPrivateUse up to the
// one below CatExtension, 254 to a category. The last category carries the
// code points that do not fit in its primary byte on level 2.
const lastPrivateUse = colltab.CatExtension - 1

func privateUseWeight(r rune) (cat, l1, l2 byte) {
	off := int(r - 0xE000)
	slot := off / 254
	if slot < lastPrivateUse-colltab.CatPrivateUse {
		return byte(colltab.CatPrivateUse + slot), byte(off%254 + 2), 0
	}
	k := off - (lastPrivateUse-colltab.CatPrivateUse)*254
	if k < 253 {
		return lastPrivateUse, byte(k + 2), 0
	}
	return lastPrivateUse, 0xFF, byte(defaultWeight + 1 + k - 253)
}

// inheritWeight in a contraction override stands for the weight of the
// first rune of its source.
const inheritWeight = 1

func (x *scanner) weigh(r rune) {
	w := x.c.w
	if ext := colltab.Extender(r, x.c.japanese); ext != colltab.ExtenderNone && x.hasPrev {
		x.extend(ext, r)
		return
	}
	switch {
	case r > 0xFFFF:
		x.surrogates(r)
		return
	case colltab.IsPrivateUse(r):
		cat, l1, l2 := privateUseWeight(r)
		x.emit(&unit{cat: cat, l1: l1, l2: l2}, r)
		return
	case colltab.IsExtensionA(r):
		off := int(r - 0x3400)
		x.buf.appendExtended(byte(off/254+2), byte(off%254+2))
		x.hasPrev = false
		return
	case x.c.cjk != nil:
		if cat, l1, ok := x.c.cjk.Weight(r); ok {
			x.emit(&unit{cat: cat, l1: l1}, r)
			return
		}
	}
	switch cat := w.Category(r); cat {
	case colltab.CatNonSpacing:
		x.mark(r)
	case colltab.CatVariable:
		if !x.o.stringSort {
			x.buf.appendPositional(w.Level1(r))
			return
		}
		fallthrough
	default:
		u := unit{cat: cat, l1: w.Level1(r), l2: w.Level2(r), l3: w.Level3(r)}
		x.emit(&u, r)
	}
}

// surrogates weights a supplementary code point as its UTF-16 pair.
func (x *scanner) surrogates(r rune) {
	hi, lo := utf16.EncodeRune(r)
	i, j := int(hi-0xD800), int(lo-0xDC00)
	x.emit(&unit{cat: byte(colltab.CatHighSurr + i/254), l1: byte(i%254 + 2)}, hi)
	x.emit(&unit{cat: byte(colltab.CatLowSurr + j/254), l1: byte(j%254 + 2)}, lo)
}

// mark merges a nonspacing mark into the previous unit.
func (x *scanner) mark(r rune) {
	w := x.c.w
	l2, l3 := w.Level2(r), w.Level3(r)
	if x.c.tl.HasRemaps() {
		l2 = x.c.tl.Remap(l2)
	}
	x.buf.mergeMark(l2, l3)
	if !x.hasPrev {
		return
	}
	x.prev.l2 = addLevel2(x.prev.l2, l2)
	if x.prev.kana {
		switch r {
		case 0x3099, 0xFF9E:
			x.prev.mark = markVoiced
			x.buf.setKanaMark(markVoiced)
		case 0x309A, 0xFF9F:
			x.prev.mark = markSemiVoiced
			x.buf.setKanaMark(markSemiVoiced)
		}
	}
}

// extend appends the weight an extender derives from the previous unit.
func (x *scanner) extend(ext colltab.ExtenderType, r rune) {
	u := x.prev
	switch ext {
	case colltab.ExtenderVoiced:
		u.l2 = addLevel2(u.l2, x.c.voiced)
		if u.kana && x.o.level2 {
			u.mark = markVoiced
		}
	case colltab.ExtenderBuggy:
		u.l2 = 5
	case colltab.ExtenderConditional:
		v := x.c.w.ConditionalVowel(x.prevRune)
		if v == 0 {
			// Not after a kana: the extender weighs as itself.
			u = x.plain(r)
			break
		}
		u = x.plain(v)
	}
	x.appendUnit(&u)
}

// plain returns the table weight of r as a unit.
func (x *scanner) plain(r rune) unit {
	w := x.c.w
	u := unit{cat: w.Category(r), l1: w.Level1(r), l2: w.Level2(r), l3: w.Level3(r)}
	if u.cat == colltab.CatKana && colltab.HasSpecialWeight(r) {
		x.kana(&u, r)
	}
	return u
}

// kana fills in the kana sub-levels of u, the unit of r.
func (x *scanner) kana(u *unit, r rune) {
	u.kana = true
	u.small, u.katakana, u.half = kanaUnset, kanaUnset, kanaUnset
	if colltab.IsJapaneseSmallLetter(r) {
		u.small = kanaSet
	}
	if !colltab.IsHiragana(r) {
		u.katakana = kanaSet
	}
	if colltab.IsHalfWidthKana(r) {
		u.half = kanaSet
	}
	u.mark = markNone
	if x.o.level2 {
		switch u.l2 {
		case addLevel2(defaultWeight, x.c.voiced):
			u.mark = markVoiced
		case addLevel2(defaultWeight, x.c.semiVoiced):
			u.mark = markSemiVoiced
		}
	}
}

// emit appends u, the unit of r, and makes it the previous unit.
func (x *scanner) emit(u *unit, r rune) {
	if u.l2 == 0 {
		u.l2 = defaultWeight
	}
	if u.l3 == 0 {
		u.l3 = defaultWeight
	}
	if !u.kana && u.cat == colltab.CatKana && colltab.HasSpecialWeight(r) {
		x.kana(u, r)
	}
	x.appendUnit(u)
	x.prev, x.prevRune, x.hasPrev = *u, r, true
}

func (x *scanner) appendUnit(u *unit) {
	if u.kana {
		x.buf.appendKana(u)
		return
	}
	x.buf.appendNormal(u.cat, u.l1, u.l2, u.l3)
}

// run scans all remaining input.
func (x *scanner) run() {
	for !x.done() {
		x.step()
	}
}

// atBoundary reports whether the units appended so far are final: the next
// rune does not merge into the last unit.
func (x *scanner) atBoundary() bool {
	if x.it.Done() {
		return true
	}
	if x.it.Escaped() {
		return false
	}
	r, _ := x.it.Peek()
	r = x.fold(r)
	return x.ignorable(r) || x.c.w.Category(r) != colltab.CatNonSpacing
}
