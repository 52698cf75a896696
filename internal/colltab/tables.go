// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colltab holds the per-code-point weight tables used by the collator
// and the binary format in which they are stored.
package colltab

import (
	"github.com/nlsort/nls/internal/cpindex"
)

// Categories. The category byte is the most significant part of a primary
// weight.
const (
	CatUnsortable  = 0x00
	CatNonSpacing  = 0x01
	CatVariable    = 0x06
	CatSymbolFirst = 0x07
	CatSymbolLast  = 0x17
	CatDigit       = 0x18
	CatLatin       = 0x19
	CatKana        = 0x22
	CatLetterFirst = 0x19
	CatLetterLast  = 0x47
	CatHighSurr    = 0x48
	CatLowSurr     = 0x4D
	CatJamo        = 0x52
	CatJamoLast    = 0x53
	CatHangul      = 0x54
	CatCJK         = 0x80
	CatCJKLast     = 0xE4
	CatPrivateUse  = 0xE5
	CatExtension   = 0xFE
)

// Ignorable flags.
const (
	IgnoreAlways    = 1
	IgnoreSymbol    = 2
	IgnoreNonSpace  = 4
	IgnoreAnyMask   = IgnoreAlways | IgnoreSymbol | IgnoreNonSpace
	DefaultLevel    = 2
	hangulBase      = 0xAC00
	hangulEnd       = 0xD7A4
	cjkBase         = 0x4E00
	cjkEnd          = 0xA000
	extABase        = 0x3400
	extAEnd         = 0x4DC0
	privateUseBase  = 0xE000
	privateUseEnd   = 0xF900
	unassignedPlane = 0x30000
)

// Level3 bits.
const (
	L3Lower  = 0x01
	L3Wide   = 0x04
	L3Narrow = 0x08
	L3Compat = 0x10
)

// MainIndex covers the code points that have explicit table entries. CJK
// ideographs, Hangul syllables, private use and supplementary code points are
// weighted arithmetically.
var MainIndex = cpindex.Must(-1,
	cpindex.Range{Lo: 0x0000, Hi: extABase},
	cpindex.Range{Lo: extAEnd, Hi: cjkBase},
	cpindex.Range{Lo: cjkEnd, Hi: hangulBase},
	cpindex.Range{Lo: hangulEnd, Hi: 0xD800},
	cpindex.Range{Lo: privateUseEnd, Hi: 0x10000},
)

// CJKIndex covers the unified ideographs ordered by per-locale CJK tables.
var CJKIndex = cpindex.Must(-1, cpindex.Range{Lo: cjkBase, Hi: cjkEnd})

// Entry is the table record of a single code point.
type Entry struct {
	Ignorable byte
	Category  byte
	Level1    byte
	Level2    byte
	Level3    byte
	// Width is the width-insensitive counterpart of the code point, or 0.
	Width rune
}

// Tables holds the weights of all code points. A Tables value is immutable
// once built and may be shared by any number of goroutines.
type Tables struct {
	ignorable []byte
	category  []byte
	level1    []byte
	level2    []byte
	level3    []byte
	width     []uint16
	cjk       []*CJKTable
}

// A CJKTable orders the unified ideographs for one locale.
type CJKTable struct {
	Name     string
	category []byte
	level1   []byte
}

// Weight returns the category and level1 weight of r, which must be a
// unified ideograph.
func (c *CJKTable) Weight(r rune) (cat, l1 byte, ok bool) {
	i := CJKIndex.ToIndex(r)
	if i < 0 || c.category[i] == 0 {
		return 0, 0, false
	}
	return c.category[i], c.level1[i], true
}

// Ready reports whether t holds loaded data. Lookups on a Tables that is not
// ready return the defaults for every code point.
func (t *Tables) Ready() bool {
	return t != nil && len(t.category) == MainIndex.Len()
}

// Entry returns the full table record of r. Width is zero when r has no
// width fold.
func (t *Tables) Entry(r rune) Entry {
	var width rune
	if i := t.index(r); i >= 0 {
		width = rune(t.width[i])
	}
	return Entry{
		Ignorable: t.ignorableFlags(r),
		Category:  t.Category(r),
		Level1:    t.Level1(r),
		Level2:    t.Level2(r),
		Level3:    t.Level3(r),
		Width:     width,
	}
}

func (t *Tables) index(r rune) int {
	if !t.Ready() {
		return -1
	}
	return MainIndex.ToIndex(r)
}

// Category returns the category byte of r.
func (t *Tables) Category(r rune) byte {
	if i := t.index(r); i >= 0 {
		return t.category[i]
	}
	if c, _, ok := Arithmetic(r); ok {
		return c
	}
	return CatUnsortable
}

// Level1 returns the primary weight of r within its category.
func (t *Tables) Level1(r rune) byte {
	if i := t.index(r); i >= 0 {
		return t.level1[i]
	}
	if _, l1, ok := Arithmetic(r); ok {
		return l1
	}
	return 0
}

// Level2 returns the diacritic weight of r.
func (t *Tables) Level2(r rune) byte {
	if i := t.index(r); i >= 0 {
		return t.level2[i]
	}
	return 0
}

// Level3 returns the case and width weight of r.
func (t *Tables) Level3(r rune) byte {
	if i := t.index(r); i >= 0 {
		return t.level3[i]
	}
	return 0
}

func (t *Tables) ignorableFlags(r rune) byte {
	if i := t.index(r); i >= 0 {
		return t.ignorable[i]
	}
	if r >= unassignedPlane && r < 0xE1000 {
		return IgnoreAlways
	}
	if !t.Ready() {
		return IgnoreAlways
	}
	return 0
}

// IsIgnorable reports whether r is ignored under the given flag mask.
// NUL is always ignorable.
func (t *Tables) IsIgnorable(r rune, mask byte) bool {
	return r == 0 || t.ignorableFlags(r)&mask != 0
}

// ToWidthInsensitive returns the width-folded form of r.
func (t *Tables) ToWidthInsensitive(r rune) rune {
	if i := t.index(r); i >= 0 && t.width[i] != 0 {
		return rune(t.width[i])
	}
	return r
}

// CJK returns the ideograph table with the given name, or nil.
func (t *Tables) CJK(name string) *CJKTable {
	if t == nil {
		return nil
	}
	for _, c := range t.cjk {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// CJKNames lists the names of the loaded ideograph tables.
func (t *Tables) CJKNames() []string {
	var names []string
	for _, c := range t.cjk {
		names = append(names, c.Name)
	}
	return names
}

// Arithmetic returns the computed weight of code points that have no table
// entry: Hangul syllables and unified ideographs in code point order.
func Arithmetic(r rune) (cat, l1 byte, ok bool) {
	switch {
	case r >= hangulBase && r < hangulEnd:
		i := int(r - hangulBase)
		return byte(CatHangul + i/254), byte(i%254 + 2), true
	case r >= cjkBase && r < cjkEnd:
		return CJKRank(int(r - cjkBase))
	}
	return 0, 0, false
}

// CJKRank converts an ideograph rank to its primary weight. Ranks beyond the
// CJK region saturate at its last weight.
func CJKRank(rank int) (cat, l1 byte, ok bool) {
	c := CatCJK + rank/254
	if c > CatCJKLast {
		return CatCJKLast, 255, true
	}
	return byte(c), byte(rank%254 + 2), true
}

// IsExtensionA reports whether r is a CJK Unified Ideograph Extension A.
func IsExtensionA(r rune) bool { return r >= extABase && r < extAEnd }

// IsPrivateUse reports whether r is in the BMP private use area.
func IsPrivateUse(r rune) bool { return r >= privateUseBase && r < privateUseEnd }

// A Builder assembles a Tables value.
type Builder struct {
	t Tables
}

// NewBuilder returns a Builder with every covered code point set to an
// always-ignorable, unsortable entry.
func NewBuilder() *Builder {
	n := MainIndex.Len()
	b := &Builder{Tables{
		ignorable: make([]byte, n),
		category:  make([]byte, n),
		level1:    make([]byte, n),
		level2:    make([]byte, n),
		level3:    make([]byte, n),
		width:     make([]uint16, n),
	}}
	for i := range b.t.ignorable {
		b.t.ignorable[i] = IgnoreAlways
	}
	return b
}

// Set stores the entry of r. It reports false if r has no table slot.
func (b *Builder) Set(r rune, e Entry) bool {
	i := MainIndex.ToIndex(r)
	if i < 0 {
		return false
	}
	b.t.ignorable[i] = e.Ignorable
	b.t.category[i] = e.Category
	b.t.level1[i] = e.Level1
	b.t.level2[i] = e.Level2
	b.t.level3[i] = e.Level3
	b.t.width[i] = uint16(e.Width)
	return true
}

// Get returns the entry of r as currently set.
func (b *Builder) Get(r rune) Entry {
	return b.t.Entry(r)
}

// AddCJK adds an ideograph table. Ranks map unified ideographs to their
// position in the locale order; ideographs missing from ranks keep the
// code point order.
func (b *Builder) AddCJK(name string, ranks map[rune]int) {
	n := CJKIndex.Len()
	c := &CJKTable{Name: name, category: make([]byte, n), level1: make([]byte, n)}
	CJKIndex.Each(func(i int, r rune) {
		rank, ok := ranks[r]
		if !ok {
			rank = int(r - cjkBase)
		}
		c.category[i], c.level1[i], _ = CJKRank(rank)
	})
	b.t.cjk = append(b.t.cjk, c)
}

// Tables returns the assembled tables. The Builder must not be used
// afterwards.
func (b *Builder) Tables() *Tables {
	t := b.t
	return &t
}
