// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tablegen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/nlsort/nls/internal/colltab"
	xnorm "golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Level2 weights of the nonspacing marks. Marks of the Combining Diacritical
// Marks block are weighted by code point; other marks share the range above
// it. The top of the range is left for diacritical remaps.
const (
	markBase      = 3
	otherMarkBase = markBase + 0x70
	otherMarkSpan = 130
	remapBase     = otherMarkBase + otherMarkSpan

	// firstHanRank is the CJK rank of the first ideograph outside the
	// unified block.
	firstHanRank = 0xA000 - 0x4E00

	numberBase = 13
)

// variables are weighted in category 6 and are ignored at the primary level
// unless a string sort is requested.
var variables = []rune{0x0027, 0x002D, 0x2010, 0x2212, 0x058A, 0x1806, 0x2E17, 0x30A0}

// curated lists the ligatures that expand to letter pairs even though
// Unicode has no decomposition for them.
var curated = map[rune]string{
	0x00C6: "AE",
	0x00E6: "ae",
	0x0152: "OE",
	0x0153: "oe",
	0x00DF: "ss",
	0x1E9E: "SS",
}

// nearLetters sort right after a Latin base letter.
var nearLetters = map[rune]struct {
	base  rune
	delta byte
}{
	0x00F0: {'d', 2},
	0x0111: {'d', 3},
	0x0127: {'h', 2},
	0x0131: {'i', 2},
	0x0142: {'l', 2},
	0x014B: {'n', 2},
	0x00F8: {'o', 2},
	0x0167: {'t', 2},
	0x0180: {'b', 2},
}

// symbolGroups orders the symbol categories.
var symbolGroups = []*unicode.RangeTable{
	unicode.Zs, unicode.Pc, unicode.Pd, unicode.Ps, unicode.Pe, unicode.Pi,
	unicode.Pf, unicode.Po, unicode.Sk, unicode.Sm, unicode.Sc, unicode.So,
}

// An allocator hands out consecutive primary weights over a range of
// categories. Weights saturate at the end of the range.
type allocator struct {
	cat, last byte
	l1        int
	skip      byte
}

func newAllocator(first, last byte, l1 int) *allocator {
	return &allocator{cat: first, last: last, l1: l1}
}

func (a *allocator) next() (cat, l1 byte) {
	if a.l1 > 255 {
		if a.cat == a.last {
			return a.cat, 255
		}
		a.cat++
		if a.skip != 0 && a.cat == a.skip && a.cat < a.last {
			a.cat++
		}
		a.l1 = 2
	}
	cat, l1 = a.cat, byte(a.l1)
	a.l1++
	return cat, l1
}

// A generator derives the weight tables and the invariant expansions.
type generator struct {
	b      *colltab.Builder
	marks  map[rune]byte
	expand map[rune]string
	letter map[rune]bool

	decomposable []rune
	stats        struct{ weighted, expansions int }
}

func newGenerator() *generator {
	return &generator{
		b:      colltab.NewBuilder(),
		marks:  make(map[rune]byte),
		expand: make(map[rune]string),
		letter: make(map[rune]bool),
	}
}

func isAssigned(r rune) bool {
	return unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

// decomposition returns the full compatibility decomposition of r, or "" if
// r does not decompose. compat reports whether it differs from the canonical
// one.
func decomposition(r rune) (d string, compat bool) {
	s := string(r)
	kd := xnorm.NFKD.String(s)
	if kd == s {
		return "", false
	}
	return kd, xnorm.NFD.String(s) != kd
}

func (g *generator) set(r rune, e colltab.Entry) error {
	if !g.b.Set(r, e) {
		return fmt.Errorf("tablegen: %U has no table slot", r)
	}
	g.stats.weighted++
	return nil
}

// weights runs both passes: code points without a decomposition are weighted
// directly, decomposable ones are derived from their decomposition.
func (g *generator) weights() error {
	var (
		marks, digits, numbers, letters, upper []rune
		symbols                                = make([][]rune, len(symbolGroups))
		isVariable                             = make(map[rune]bool)
	)
	for _, r := range variables {
		isVariable[r] = true
	}
	colltab.MainIndex.Each(func(_ int, r rune) {
		if !isAssigned(r) {
			return
		}
		if d, _ := decomposition(r); d != "" {
			g.decomposable = append(g.decomposable, r)
			return
		}
		if _, ok := curated[r]; ok {
			return
		}
		switch {
		case unicode.In(r, unicode.Cc, unicode.Cf, unicode.Zl, unicode.Zp, unicode.Co, unicode.Cs):
		case unicode.In(r, unicode.Mn, unicode.Me):
			marks = append(marks, r)
		case isVariable[r]:
		case unicode.Is(unicode.Nd, r):
			digits = append(digits, r)
		case unicode.In(r, unicode.P, unicode.S, unicode.Zs):
			for i, t := range symbolGroups {
				if unicode.Is(t, r) {
					symbols[i] = append(symbols[i], r)
					break
				}
			}
		case unicode.In(r, unicode.No, unicode.Nl) && !unicode.Is(unicode.Han, r):
			numbers = append(numbers, r)
		case unicode.Is(unicode.Lu, r) && unicode.ToLower(r) != r:
			upper = append(upper, r)
		default:
			letters = append(letters, r)
			g.letter[r] = true
		}
	})

	k := 0
	for _, r := range marks {
		d := byte(otherMarkBase + k%otherMarkSpan)
		if r >= 0x300 && r < 0x370 {
			d = byte(markBase + r - 0x300)
		} else {
			k++
		}
		g.marks[r] = d
		if err := g.set(r, colltab.Entry{
			Ignorable: colltab.IgnoreNonSpace,
			Category:  colltab.CatNonSpacing,
			Level2:    d,
			Level3:    colltab.DefaultLevel,
		}); err != nil {
			return err
		}
	}

	for i, r := range variables {
		if err := g.set(r, colltab.Entry{
			Ignorable: colltab.IgnoreSymbol,
			Category:  colltab.CatVariable,
			Level1:    byte(2 + i),
			Level2:    colltab.DefaultLevel,
			Level3:    colltab.DefaultLevel,
		}); err != nil {
			return err
		}
	}

	if err := g.digits(digits); err != nil {
		return err
	}

	a := newAllocator(colltab.CatSymbolFirst, colltab.CatSymbolLast, 2)
	for _, group := range symbols {
		for _, r := range group {
			cat, l1 := a.next()
			if err := g.set(r, colltab.Entry{
				Ignorable: colltab.IgnoreSymbol,
				Category:  cat,
				Level1:    l1,
				Level2:    colltab.DefaultLevel,
				Level3:    colltab.DefaultLevel,
			}); err != nil {
				return err
			}
		}
	}

	a = newAllocator(colltab.CatDigit, colltab.CatDigit, numberBase)
	for _, r := range numbers {
		_, l1 := a.next()
		if err := g.set(r, plain(colltab.CatDigit, l1)); err != nil {
			return err
		}
	}

	// An uppercase letter shares the weight of its lowercase, or of the base
	// of its lowercase if that decomposes. Others are weighted on their own.
	lower := make(map[rune]rune)
	for _, r := range upper {
		lo := unicode.ToLower(r)
		if !g.letter[lo] {
			d, _ := decomposition(lo)
			if lo = 0; d != "" && g.letter[[]rune(d)[0]] {
				lo = []rune(d)[0]
			}
		}
		if lo == 0 {
			letters = append(letters, r)
			continue
		}
		lower[r] = lo
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	if err := g.letters(letters); err != nil {
		return err
	}
	for _, r := range upper {
		lo, ok := lower[r]
		if !ok {
			continue
		}
		e := g.b.Get(lo)
		e.Level3 &^= colltab.L3Lower
		if err := g.set(r, e); err != nil {
			return err
		}
	}

	for r, s := range curated {
		g.expand[r] = s
		first := []rune(s)[0]
		if err := g.set(r, g.b.Get(first)); err != nil {
			return err
		}
	}

	if err := g.derive(); err != nil {
		return err
	}
	return g.widths()
}

func plain(cat, l1 byte) colltab.Entry {
	return colltab.Entry{
		Category: cat,
		Level1:   l1,
		Level2:   colltab.DefaultLevel,
		Level3:   colltab.DefaultLevel,
	}
}

// digits weights decimal digits by value. The script of a digit is kept in
// level2.
func (g *generator) digits(digits []rune) error {
	script := make(map[rune]byte)
	for _, r := range digits {
		v := 0
		for v < 9 && unicode.Is(unicode.Nd, r-rune(v)-1) {
			v++
		}
		zero := r - rune(v)
		if _, ok := script[zero]; !ok {
			script[zero] = byte(min(2+len(script), 255))
		}
		e := plain(colltab.CatDigit, byte(3+v))
		e.Level2 = script[zero]
		if err := g.set(r, e); err != nil {
			return err
		}
	}
	return nil
}

// letters weights letters that do not decompose: Latin first, then the other
// scripts in code point order. Kana, Hangul jamo and ideographs have regions
// of their own.
func (g *generator) letters(letters []rune) error {
	for i := rune(0); i < 26; i++ {
		e := plain(colltab.CatLatin, byte(2+8*i))
		e.Level3 |= colltab.L3Lower
		if err := g.set('a'+i, e); err != nil {
			return err
		}
	}
	for r, n := range nearLetters {
		e := plain(colltab.CatLatin, byte(2+8*(n.base-'a'))+n.delta)
		e.Level3 |= colltab.L3Lower
		if err := g.set(r, e); err != nil {
			return err
		}
	}
	kana := kanaWeights()

	latin := newAllocator(colltab.CatLatin, colltab.CatLetterLast, 220)
	latin.skip = colltab.CatKana
	jamo := newAllocator(colltab.CatJamo, colltab.CatJamoLast, 2)
	han := firstHanRank

	var other []rune
	for _, r := range letters {
		if (r >= 'a' && r <= 'z') || nearLetters[r].base != 0 {
			continue
		}
		var e colltab.Entry
		switch l1, ok := kana[r]; {
		case ok:
			e = plain(colltab.CatKana, l1)
		case unicode.Is(unicode.Han, r):
			cat, l1, _ := colltab.CJKRank(han)
			han++
			e = plain(cat, l1)
		case unicode.Is(unicode.Hangul, r):
			e = plain(jamo.next())
		case unicode.Is(unicode.Latin, r):
			e = plain(latin.next())
		default:
			other = append(other, r)
			continue
		}
		if isCased(r) {
			e.Level3 |= colltab.L3Lower
		}
		if err := g.set(r, e); err != nil {
			return err
		}
	}
	for _, r := range other {
		e := plain(latin.next())
		if isCased(r) {
			e.Level3 |= colltab.L3Lower
		}
		if err := g.set(r, e); err != nil {
			return err
		}
	}
	return nil
}

func isCased(r rune) bool {
	return unicode.IsLower(r) || unicode.ToUpper(r) != r
}

// derive weights the decomposable code points. A base followed only by
// nonspacing marks takes the weight of the base with the level2 weights of
// the marks added. Anything else becomes an expansion.
func (g *generator) derive() error {
	for _, r := range g.decomposable {
		d, compat := decomposition(r)
		runes := []rune(d)
		first := runes[0]
		_, expands := g.expand[first]
		e, ok := g.entry(first)
		e.Width = 0
		expands = expands || !ok
		for _, m := range runes[1:] {
			if _, isMark := g.marks[m]; !isMark {
				expands = true
				break
			}
			e.Level2 = addLevel2(e.Level2, g.marks[m])
		}
		if compat {
			e.Level3 |= compatBits(r)
		}
		if expands {
			var sb strings.Builder
			for _, x := range runes {
				if s, ok := g.expand[x]; ok {
					sb.WriteString(s)
				} else {
					sb.WriteRune(x)
				}
			}
			g.expand[r] = sb.String()
			e, _ = g.entry(first)
			e.Width = 0
		}
		if err := g.set(r, e); err != nil {
			return err
		}
	}
	g.stats.expansions = len(g.expand)
	return nil
}

// entry returns the weight of a code point that needs no expansion. It
// reports false for code points that can only be weighted by the collator
// itself.
func (g *generator) entry(r rune) (colltab.Entry, bool) {
	if colltab.MainIndex.Covers(r) {
		return g.b.Get(r), true
	}
	if cat, l1, ok := colltab.Arithmetic(r); ok {
		return plain(cat, l1), true
	}
	return plain(colltab.CatExtension, 0xFF), false
}

func addLevel2(a, b byte) byte {
	if s := int(a) + int(b); s < 255 {
		return byte(s)
	}
	return 255
}

// compatBits returns the level3 bits of a compatibility variant.
func compatBits(r rune) byte {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth:
		return colltab.L3Wide
	case width.EastAsianHalfwidth:
		return colltab.L3Narrow
	}
	return colltab.L3Compat
}

// widths records the width-insensitive counterpart of every code point.
func (g *generator) widths() error {
	var err error
	colltab.MainIndex.Each(func(_ int, r rune) {
		f := width.LookupRune(r).Folded()
		if err != nil || f == 0 || f > 0xFFFF {
			return
		}
		e := g.b.Get(r)
		e.Width = f
		if !g.b.Set(r, e) {
			err = fmt.Errorf("tablegen: %U has no table slot", r)
		}
	})
	return err
}

// expansions returns the invariant expansions in code point order.
func (g *generator) expansions() []rune {
	rs := make([]rune, 0, len(g.expand))
	for r := range g.expand {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}
