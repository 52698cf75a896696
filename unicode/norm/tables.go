// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/golang/glog"
	xnorm "golang.org/x/text/unicode/norm"

	"github.com/nlsort/nls/internal/cpindex"
)

// QCResult is the result of a quick check.
type QCResult int

const (
	Yes QCResult = iota
	No
	Maybe
)

func (q QCResult) String() string {
	switch q {
	case Yes:
		return "Yes"
	case No:
		return "No"
	}
	return "Maybe"
}

// Hangul syllables are decomposed and composed arithmetically.
const (
	hangulBase   = 0xAC00
	hangulEnd    = hangulBase + jamoLVTCount
	jamoLBase    = 0x1100
	jamoLEnd     = jamoLBase + jamoLCount
	jamoVBase    = 0x1161
	jamoVEnd     = jamoVBase + jamoVCount
	jamoTBase    = 0x11A7
	jamoTEnd     = jamoTBase + jamoTCount
	jamoLCount   = 19
	jamoVCount   = 21
	jamoTCount   = 28
	jamoVTCount  = jamoVCount * jamoTCount
	jamoLVTCount = jamoLCount * jamoVTCount
)

func isHangul(r rune) bool { return r >= hangulBase && r < hangulEnd }

// index covers all code points with a combining class, a decomposition or
// a quick check value other than Yes. Ideographs and Hangul syllables are
// left out.
var index = cpindex.Must(-1,
	cpindex.Range{Lo: 0x0000, Hi: 0x3400},
	cpindex.Range{Lo: 0xA000, Hi: 0xAC00},
	cpindex.Range{Lo: 0xD7B0, Hi: 0xD800},
	cpindex.Range{Lo: 0xF900, Hi: 0x10000},
	cpindex.Range{Lo: 0x10000, Hi: 0x1FC00},
	cpindex.Range{Lo: 0x2F800, Hi: 0x2FA20},
	cpindex.Range{Lo: 0xE0000, Hi: 0xE0200},
)

// Bits of the per-form quick check values, two per form.
const (
	qcNo    = 1
	qcMaybe = 2
	qcMask  = 3
)

// Tables holds the normalization properties of all code points. A Tables
// value is immutable and may be shared between goroutines.
type Tables struct {
	ccc      []uint8
	qc       []uint8
	excluded []bool
	canon    map[rune]string
	compat   map[rune]string
	pairs    map[uint64]rune
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the tables built from the Unicode data compiled into the
// binary. They are built on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		start := time.Now()
		defaultTables = Build()
		glog.Infof("norm: built tables for %d code points, %d compositions in %v",
			index.Len(), len(defaultTables.pairs), time.Since(start))
	})
	return defaultTables
}

// Build derives the normalization tables from golang.org/x/text.
func Build() *Tables {
	n := index.Len()
	t := &Tables{
		ccc:      make([]uint8, n),
		qc:       make([]uint8, n),
		excluded: make([]bool, n),
		canon:    map[rune]string{},
		compat:   map[rune]string{},
		pairs:    map[uint64]rune{},
	}
	var buf [utf8.UTFMax]byte
	index.Each(func(i int, r rune) {
		s := buf[:utf8.EncodeRune(buf[:], r)]
		p := xnorm.NFD.Properties(s)
		t.ccc[i] = p.CCC()
		if d := p.Decomposition(); len(d) > 0 {
			t.canon[r] = string(d)
			t.setQC(i, NFD, qcNo)
			if xnorm.NFC.String(string(s)) != string(s) {
				t.excluded[i] = true
				t.setQC(i, NFC, qcNo)
			}
		}
		if d := xnorm.NFKD.Properties(s).Decomposition(); len(d) > 0 {
			if string(d) != t.canon[r] {
				t.compat[r] = string(d)
			}
			t.setQC(i, NFKD, qcNo)
			if xnorm.NFKC.String(string(s)) != string(s) {
				t.setQC(i, NFKC, qcNo)
			}
		}
	})
	for r, d := range t.canon {
		if !t.excluded[index.ToIndex(r)] {
			t.addPair(r, []rune(d))
		}
	}
	for r := rune(jamoVBase); r < jamoVEnd; r++ {
		t.setMaybe(r)
	}
	for r := rune(jamoTBase + 1); r < jamoTEnd; r++ {
		t.setMaybe(r)
	}
	return t
}

func (t *Tables) setQC(i int, f Form, v uint8) {
	t.qc[i] |= v << (2 * uint(f))
}

func (t *Tables) setMaybe(r rune) {
	i := index.ToIndex(r)
	for _, f := range []Form{NFC, NFKC} {
		if t.qc[i]>>(2*uint(f))&qcMask == 0 {
			t.setQC(i, f, qcMaybe)
		}
	}
}

// addPair records the primary composite r. Its canonical decomposition d is
// fully decomposed and reordered, so the combining rune is found by trying
// each non-initial position from the end.
func (t *Tables) addPair(r rune, d []rune) {
	want := string(r)
	for k := len(d) - 1; k > 0; k-- {
		rest := make([]rune, 0, len(d)-1)
		rest = append(rest, d[:k]...)
		rest = append(rest, d[k+1:]...)
		first := []rune(xnorm.NFC.String(string(rest)))
		if len(first) != 1 {
			continue
		}
		if xnorm.NFC.String(string([]rune{first[0], d[k]})) == want {
			t.pairs[pairKey(first[0], d[k])] = r
			t.setMaybe(d[k])
			return
		}
	}
}

func pairKey(a, b rune) uint64 { return uint64(a)<<32 | uint64(b) }

// CCC returns the canonical combining class of r.
func (t *Tables) CCC(r rune) uint8 {
	if i := index.ToIndex(r); i >= 0 {
		return t.ccc[i]
	}
	return 0
}

// QuickCheck reports whether r may occur unchanged in text of form f.
func (t *Tables) QuickCheck(r rune, f Form) QCResult {
	if isHangul(r) {
		if f == NFD || f == NFKD {
			return No
		}
		return Yes
	}
	i := index.ToIndex(r)
	if i < 0 {
		return Yes
	}
	switch t.qc[i] >> (2 * uint(f)) & qcMask {
	case qcNo:
		return No
	case qcMaybe:
		return Maybe
	}
	return Yes
}

// Decomposition returns the full canonical or compatibility decomposition
// of r, or "" if r does not decompose. Hangul syllables are included.
func (t *Tables) Decomposition(r rune, compat bool) string {
	if isHangul(r) {
		return string(appendHangul(nil, r))
	}
	if compat {
		if d, ok := t.compat[r]; ok {
			return d
		}
	}
	return t.canon[r]
}

// IsCompositionExcluded reports whether r has a canonical decomposition but
// never results from composition.
func (t *Tables) IsCompositionExcluded(r rune) bool {
	if i := index.ToIndex(r); i >= 0 {
		return t.excluded[i]
	}
	return false
}

func appendHangul(buf []rune, r rune) []rune {
	s := r - hangulBase
	l := jamoLBase + s/jamoVTCount
	v := jamoVBase + s%jamoVTCount/jamoTCount
	buf = append(buf, l, v)
	if tr := s % jamoTCount; tr != 0 {
		buf = append(buf, jamoTBase+tr)
	}
	return buf
}

// composePair returns the primary composite of a and b.
func (t *Tables) composePair(a, b rune) (rune, bool) {
	switch {
	case a >= jamoLBase && a < jamoLEnd && b >= jamoVBase && b < jamoVEnd:
		return hangulBase + ((a-jamoLBase)*jamoVCount+(b-jamoVBase))*jamoTCount, true
	case isHangul(a) && (a-hangulBase)%jamoTCount == 0 && b > jamoTBase && b < jamoTEnd:
		return a + b - jamoTBase, true
	}
	c, ok := t.pairs[pairKey(a, b)]
	return c, ok
}
