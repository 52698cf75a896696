// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tailor implements the per-locale overrides of the base weight
// tables: contractions, replacements and diacritical remaps.
package tailor

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// InvariantLCID identifies the tailoring shared by all locales.
const InvariantLCID = 0x007F

// A Contraction collates a multi-rune Source as a unit. It either has a
// Replacement, which is weighted in place of the source, or an explicit
// weight override. In Weights, a level2 or level3 value of 1 stands for the
// corresponding weight of the first rune of Source.
type Contraction struct {
	Source      string
	Replacement string
	Weights     [4]byte
}

// HasReplacement reports whether c maps to a replacement string.
func (c *Contraction) HasReplacement() bool { return c.Replacement != "" }

func (c *Contraction) String() string {
	if c.HasReplacement() {
		return fmt.Sprintf("%+q -> %+q", c.Source, c.Replacement)
	}
	return fmt.Sprintf("%+q -> % X", c.Source, c.Weights)
}

// A Remap replaces one level2 weight by another.
type Remap struct {
	Source, Replacement byte
}

// Tailoring is the immutable set of overrides for one locale.
type Tailoring struct {
	LCID       uint32
	FrenchSort bool

	parent       *Tailoring
	contractions []Contraction
	remaps       []Remap
	first        []rune
	unsafe       map[rune]bool
}

// New returns a Tailoring. Lookups that find nothing in t continue in
// parent, which may be nil.
func New(lcid uint32, frenchSort bool, parent *Tailoring, cs []Contraction, rs []Remap) (*Tailoring, error) {
	t := &Tailoring{
		LCID:         lcid,
		FrenchSort:   frenchSort,
		parent:       parent,
		contractions: append([]Contraction(nil), cs...),
		remaps:       append([]Remap(nil), rs...),
		unsafe:       make(map[rune]bool),
	}
	for i := range t.contractions {
		c := &t.contractions[i]
		if utf8.RuneCountInString(c.Source) < 1 || !utf8.ValidString(c.Source) {
			return nil, fmt.Errorf("tailor: invalid contraction source %+q", c.Source)
		}
		if !c.HasReplacement() && c.Weights[0] == 0 {
			return nil, fmt.Errorf("tailor: contraction %+q has neither replacement nor weights", c.Source)
		}
	}
	sort.SliceStable(t.contractions, func(i, j int) bool {
		a, b := t.contractions[i].Source, t.contractions[j].Source
		ra, _ := utf8.DecodeRuneInString(a)
		rb, _ := utf8.DecodeRuneInString(b)
		if ra != rb {
			return ra < rb
		}
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	sort.SliceStable(t.remaps, func(i, j int) bool { return t.remaps[i].Source < t.remaps[j].Source })

	t.first = make([]rune, len(t.contractions))
	for i := range t.contractions {
		src := t.contractions[i].Source
		t.first[i], _ = utf8.DecodeRuneInString(src)
		for j, r := range src {
			if j > 0 {
				t.unsafe[r] = true
			}
		}
	}
	if parent != nil {
		for r := range parent.unsafe {
			t.unsafe[r] = true
		}
	}
	return t, nil
}

// Contractions returns the contractions defined by t itself, in lookup
// order.
func (t *Tailoring) Contractions() []Contraction { return t.contractions }

// Remaps returns the diacritical remaps of t sorted by source weight.
func (t *Tailoring) Remaps() []Remap { return t.remaps }

// Parent returns the tailoring consulted after t.
func (t *Tailoring) Parent() *Tailoring { return t.parent }

// Contraction returns the longest contraction that is a prefix of s, or nil.
func (t *Tailoring) Contraction(s string) *Contraction {
	if s == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(s)
	for ; t != nil; t = t.parent {
		i := sort.Search(len(t.first), func(i int) bool { return t.first[i] >= r })
		for ; i < len(t.first) && t.first[i] == r; i++ {
			if c := &t.contractions[i]; strings.HasPrefix(s, c.Source) {
				return c
			}
		}
	}
	return nil
}

// HasContraction reports whether any contraction starts with r.
func (t *Tailoring) HasContraction(r rune) bool {
	for ; t != nil; t = t.parent {
		i := sort.Search(len(t.first), func(i int) bool { return t.first[i] >= r })
		if i < len(t.first) && t.first[i] == r {
			return true
		}
	}
	return false
}

// Remap returns the replacement of the level2 weight l2.
func (t *Tailoring) Remap(l2 byte) byte {
	for ; t != nil; t = t.parent {
		i := sort.Search(len(t.remaps), func(i int) bool { return t.remaps[i].Source >= l2 })
		if i < len(t.remaps) && t.remaps[i].Source == l2 {
			return t.remaps[i].Replacement
		}
	}
	return l2
}

// HasRemaps reports whether level2 weights are remapped at all.
func (t *Tailoring) HasRemaps() bool {
	for ; t != nil; t = t.parent {
		if len(t.remaps) > 0 {
			return true
		}
	}
	return false
}

// IsUnsafe reports whether r occurs after the first rune of a contraction.
// A scan may not restart in front of such a rune.
func (t *Tailoring) IsUnsafe(r rune) bool {
	return t != nil && t.unsafe[r]
}
