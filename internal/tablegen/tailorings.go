// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tablegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tailor"
	"github.com/nlsort/nls/locale"
	xnorm "golang.org/x/text/unicode/norm"
)

// inherit as a level2 or level3 override takes the weight of the first rune
// of the contraction source.
const inherit = 1

// A ruleSet collects the overrides of one locale.
type ruleSet struct {
	g    *generator
	rec  tailor.Record
	seen map[string]bool
}

func (g *generator) rules(id locale.LCID) *ruleSet {
	return &ruleSet{g: g, rec: tailor.Record{LCID: uint32(id)}, seen: make(map[string]bool)}
}

func (rs *ruleSet) add(c tailor.Contraction) {
	if rs.seen[c.Source] {
		return
	}
	rs.seen[c.Source] = true
	rs.rec.Contractions = append(rs.rec.Contractions, c)
}

// weight returns the override that sorts delta after the primary weight of
// base.
func (rs *ruleSet) weight(base rune, delta int, l2 byte) [4]byte {
	e := rs.g.b.Get(base)
	return [4]byte{e.Category, byte(int(e.Level1) + delta), l2, inherit}
}

// letter makes src a letter of its own, delta after base.
func (rs *ruleSet) letter(src string, base rune, delta int) {
	rs.letterL2(src, base, delta, colltab.DefaultLevel)
}

func (rs *ruleSet) letterL2(src string, base rune, delta int, l2 byte) {
	w := rs.weight(base, delta, l2)
	for _, v := range caseVariants(src) {
		rs.add(tailor.Contraction{Source: v, Weights: w})
	}
}

// digraph makes the letter sequence src sort as one letter, delta after
// base. Its diacritic weight is that of its first letter.
func (rs *ruleSet) digraph(src string, base rune, delta int) {
	w := rs.weight(base, delta, inherit)
	for _, v := range caseVariants(src) {
		rs.add(tailor.Contraction{Source: v, Weights: w})
	}
}

// replace weights src as if it were dst, in each case form.
func (rs *ruleSet) replace(src, dst string) {
	for _, f := range []func(string) string{strings.ToLower, title, strings.ToUpper} {
		s, d := f(src), f(dst)
		rs.add(tailor.Contraction{Source: s, Replacement: d})
		if n := xnorm.NFD.String(s); n != s {
			rs.add(tailor.Contraction{Source: n, Replacement: d})
		}
	}
}

func (rs *ruleSet) remap(from, to byte) {
	rs.rec.Remaps = append(rs.rec.Remaps, tailor.Remap{Source: from, Replacement: to})
}

// title upper cases the first rune of s.
func title(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + s[n:]
}

// caseVariants returns src in lower, title and upper case, each in composed
// and decomposed form.
func caseVariants(src string) []string {
	var vs []string
	for _, s := range []string{src, title(src), strings.ToUpper(src)} {
		for _, v := range []string{s, xnorm.NFD.String(s)} {
			dup := false
			for _, x := range vs {
				dup = dup || x == v
			}
			if !dup {
				vs = append(vs, v)
			}
		}
	}
	return vs
}

// tailorings returns the tailoring records of all locales. The invariant
// record holds the expansions every locale inherits.
func (g *generator) tailorings() []tailor.Record {
	inv := g.rules(locale.Invariant)
	for _, r := range g.expansions() {
		inv.add(tailor.Contraction{Source: string(r), Replacement: g.expand[r]})
	}
	recs := []tailor.Record{inv.rec}

	add := func(id locale.LCID, french bool, fn func(rs *ruleSet)) {
		rs := g.rules(id)
		rs.rec.FrenchSort = french
		if fn != nil {
			fn(rs)
		}
		recs = append(recs, rs.rec)
	}

	add(locale.SpanishTraditional, false, func(rs *ruleSet) {
		rs.digraph("ch", 'c', 4)
		rs.digraph("ll", 'l', 4)
		rs.letter("ñ", 'n', 4)
	})
	add(locale.Spanish, false, func(rs *ruleSet) {
		rs.letter("ñ", 'n', 4)
	})
	add(locale.Czech, false, func(rs *ruleSet) {
		rs.letter("č", 'c', 4)
		rs.digraph("ch", 'h', 4)
		rs.letter("ř", 'r', 4)
		rs.letter("š", 's', 4)
		rs.letter("ž", 'z', 4)
	})
	add(locale.Slovak, false, func(rs *ruleSet) {
		rs.letter("ä", 'a', 4)
		rs.letter("č", 'c', 4)
		rs.digraph("ch", 'h', 4)
		rs.letter("ô", 'o', 4)
		rs.letter("š", 's', 4)
		rs.letter("ž", 'z', 4)
	})
	danish := func(rs *ruleSet) {
		rs.letter("æ", 'z', 4)
		rs.letter("ä", 'z', 4)
		rs.letter("ø", 'z', 8)
		rs.letter("ö", 'z', 8)
		rs.letter("å", 'z', 12)
		rs.digraph("aa", 'z', 12)
	}
	add(locale.Danish, false, danish)
	add(locale.Norwegian, false, danish)
	swedish := func(rs *ruleSet) {
		rs.letter("å", 'z', 4)
		rs.letter("ä", 'z', 8)
		rs.letter("æ", 'z', 8)
		rs.letter("ö", 'z', 12)
		rs.letter("ø", 'z', 12)
	}
	add(locale.Swedish, false, swedish)
	add(locale.Finnish, false, swedish)
	add(locale.GermanPhoneBook, false, func(rs *ruleSet) {
		rs.replace("ä", "ae")
		rs.replace("ö", "oe")
		rs.replace("ü", "ue")
	})
	add(locale.Hungarian, false, func(rs *ruleSet) {
		for _, d := range []struct {
			src  string
			base rune
			d    int
		}{
			{"cs", 'c', 4}, {"dz", 'd', 4}, {"dzs", 'd', 5}, {"gy", 'g', 4},
			{"ly", 'l', 4}, {"ny", 'n', 4}, {"sz", 's', 4}, {"ty", 't', 4},
			{"zs", 'z', 4},
		} {
			rs.digraph(d.src, d.base, d.d)
			// A doubled digraph writes its first letter once: ccs is cscs.
			first, _ := utf8.DecodeRuneInString(d.src)
			rs.replace(string(first)+d.src, d.src+d.src)
		}
		rs.letter("ö", 'o', 4)
		rs.letterL2("ő", 'o', 4, colltab.DefaultLevel+1)
		rs.letter("ü", 'u', 4)
		rs.letterL2("ű", 'u', 4, colltab.DefaultLevel+1)
	})
	add(locale.Croatian, false, func(rs *ruleSet) {
		rs.letter("č", 'c', 4)
		rs.letter("ć", 'c', 5)
		rs.digraph("dž", 'd', 4)
		rs.letter("đ", 'd', 5)
		rs.digraph("lj", 'l', 4)
		rs.digraph("nj", 'n', 4)
		rs.letter("š", 's', 4)
		rs.letter("ž", 'z', 4)
	})
	add(locale.Lithuanian, false, func(rs *ruleSet) {
		rs.letter("y", 'i', 4)
	})
	turkish := func(rs *ruleSet) {
		rs.letter("ç", 'c', 4)
		rs.letter("ğ", 'g', 4)
		rs.letter("ı", 'h', 6)
		w := rs.weight('i', 0, colltab.DefaultLevel)
		rs.add(tailor.Contraction{Source: "\u0130", Weights: w})
		rs.add(tailor.Contraction{Source: "I\u0307", Weights: w})
		rs.letter("ö", 'o', 4)
		rs.letter("ş", 's', 4)
		rs.letter("ü", 'u', 4)
	}
	add(locale.Turkish, false, turkish)
	add(locale.Azeri, false, turkish)
	add(locale.Vietnamese, false, g.vietnamese)
	add(locale.French, true, nil)
	add(locale.FrenchCanada, true, nil)
	return recs
}

// vietnameseTones lists the tone marks in Vietnamese order.
var vietnameseTones = []rune{0x0300, 0x0309, 0x0303, 0x0301, 0x0323}

// vietnamese remaps the tone marks to the top of the level2 range. Letters
// that carry a tone mark are replaced by their decomposition so that the
// remapped mark applies.
func (g *generator) vietnamese(rs *ruleSet) {
	tone := make(map[rune]bool)
	for i, m := range vietnameseTones {
		rs.remap(g.marks[m], byte(remapBase+i))
		tone[m] = true
	}
	for _, r := range g.decomposable {
		d := xnorm.NFD.String(string(r))
		if d == string(r) {
			continue
		}
		for _, m := range d {
			if tone[m] {
				rs.add(tailor.Contraction{Source: string(r), Replacement: d})
				break
			}
		}
	}
}
