// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tablegen

import (
	"bytes"
	"sync"
	"testing"

	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tailor"
	"github.com/nlsort/nls/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buildOnce sync.Once
	built     *Result
	buildErr  error
)

func result(t *testing.T) *Result {
	if testing.Short() {
		t.Skip("table synthesis skipped in short mode")
	}
	buildOnce.Do(func() { built, buildErr = Build() })
	require.NoError(t, buildErr)
	return built
}

func TestLetters(t *testing.T) {
	tb := result(t).Weights
	require.True(t, tb.Ready())

	a, b, z := tb.Entry('a'), tb.Entry('b'), tb.Entry('z')
	assert.Equal(t, byte(colltab.CatLatin), a.Category)
	assert.Less(t, a.Level1, b.Level1)
	assert.Less(t, b.Level1, z.Level1)

	A := tb.Entry('A')
	assert.Equal(t, a.Level1, A.Level1)
	assert.Equal(t, byte(colltab.DefaultLevel|colltab.L3Lower), a.Level3)
	assert.Equal(t, byte(colltab.DefaultLevel), A.Level3)
	assert.Zero(t, A.Width, "upper case letters have no width fold")
	assert.Equal(t, 'A', tb.ToWidthInsensitive('A'))
	assert.Equal(t, 'A', tb.ToWidthInsensitive(0xFF21))

	// Near letters sort between their base and the next letter.
	eth := tb.Entry(0x00F0)
	assert.Greater(t, eth.Level1, tb.Level1('d'))
	assert.Less(t, eth.Level1, tb.Level1('e'))

	// Other scripts follow Latin.
	alpha := tb.Entry(0x03B1)
	assert.Greater(t, alpha.Category, byte(colltab.CatLatin))
	assert.Equal(t, alpha.Level1, tb.Level1(0x0391))
}

func TestDerived(t *testing.T) {
	tb := result(t).Weights

	e, acute := tb.Entry('e'), tb.Entry(0x0301)
	assert.Equal(t, byte(colltab.CatNonSpacing), acute.Category)
	assert.Equal(t, byte(colltab.IgnoreNonSpace), acute.Ignorable)

	eAcute := tb.Entry(0x00E9)
	assert.Equal(t, e.Category, eAcute.Category)
	assert.Equal(t, e.Level1, eAcute.Level1)
	assert.Equal(t, e.Level2+acute.Level2, eAcute.Level2)
	assert.Equal(t, e.Level3, eAcute.Level3)

	zero, wide := tb.Entry('0'), tb.Entry(0xFF10)
	assert.Equal(t, zero.Level1, wide.Level1)
	assert.NotZero(t, wide.Level3&colltab.L3Wide)
	assert.Equal(t, '0', tb.ToWidthInsensitive(0xFF10))

	ka, kata, ga := tb.Entry(0x304B), tb.Entry(0x30AB), tb.Entry(0x304C)
	assert.Equal(t, byte(colltab.CatKana), ka.Category)
	assert.Equal(t, ka.Level1, kata.Level1)
	assert.Equal(t, ka.Level1, ga.Level1)
	assert.Equal(t, ka.Level2+tb.Level2(0x3099), ga.Level2)
	assert.Equal(t, rune(0x30AB), tb.ToWidthInsensitive(0xFF76))

	assert.Equal(t, byte(colltab.CatVariable), tb.Category('-'))
	assert.Equal(t, byte(colltab.CatVariable), tb.Category(0xFF0D))
	assert.True(t, tb.IsIgnorable('\t', colltab.IgnoreAlways))
	assert.True(t, tb.IsIgnorable(0x00AD, colltab.IgnoreAlways))
	assert.True(t, tb.IsIgnorable(' ', colltab.IgnoreSymbol))
	assert.False(t, tb.IsIgnorable(' ', colltab.IgnoreAlways))

	assert.Equal(t, byte(colltab.CatDigit), tb.Category('7'))
	assert.Equal(t, tb.Level1('7'), tb.Level1(0x0667))
	assert.NotEqual(t, tb.Level2('7'), tb.Level2(0x0667))

	cat, l1, _ := colltab.Arithmetic(0x8C48)
	assert.Equal(t, cat, tb.Category(0xF900))
	assert.Equal(t, l1, tb.Level1(0xF900))
}

func TestBlobRoundTrip(t *testing.T) {
	res := result(t)
	var buf bytes.Buffer
	require.NoError(t, res.WriteWeights(&buf))
	tb, err := colltab.Load(buf.Bytes())
	require.NoError(t, err)
	for _, r := range []rune{0, '\t', ' ', 'a', 'A', 0x00E9, 0x0301, 0x3042, 0xFF76, 0xFFFD} {
		assert.Equalf(t, res.Weights.Entry(r), tb.Entry(r), "Entry(%U)", r)
	}
	assert.Equal(t, []string{"ja", "ko", "zh-Hans", "zh-Hant"}, tb.CJKNames())
}

func findContraction(recs []tailor.Record, id locale.LCID, src string) *tailor.Contraction {
	for _, rec := range recs {
		if rec.LCID != uint32(id) {
			continue
		}
		for i, c := range rec.Contractions {
			if c.Source == src {
				return &rec.Contractions[i]
			}
		}
	}
	return nil
}

func TestTailorings(t *testing.T) {
	res := result(t)
	recs := res.Records

	tests := []struct {
		id          locale.LCID
		src, repl   string
		hasOverride bool
	}{
		{locale.Invariant, "Æ", "AE", false},
		{locale.Invariant, "ß", "ss", false},
		{locale.Invariant, "ﬁ", "fi", false},
		{locale.Invariant, "\u01e3", "ae\u0304", false},
		{locale.SpanishTraditional, "ch", "", true},
		{locale.SpanishTraditional, "Ch", "", true},
		{locale.SpanishTraditional, "ñ", "", true},
		{locale.GermanPhoneBook, "Ä", "Ae", false},
		{locale.Hungarian, "ddzs", "dzsdzs", false},
		{locale.Hungarian, "DDZS", "DZSDZS", false},
		{locale.Turkish, "I", "", true},
		{locale.Vietnamese, "\u1ea5", "a\u0302\u0301", false},
	}
	for _, tt := range tests {
		c := findContraction(recs, tt.id, tt.src)
		if !assert.NotNilf(t, c, "%v: %+q", tt.id, tt.src) {
			continue
		}
		assert.Equal(t, tt.repl, c.Replacement)
		assert.Equal(t, tt.hasOverride, !c.HasReplacement())
	}

	ch := findContraction(recs, locale.SpanishTraditional, "ch")
	assert.Equal(t, res.Weights.Category('c'), ch.Weights[0])
	assert.Equal(t, res.Weights.Level1('c')+4, ch.Weights[1])
	assert.Equal(t, byte(inherit), ch.Weights[3])

	var buf bytes.Buffer
	require.NoError(t, res.WriteTailorings(&buf))
	rsrc, err := tailor.Parse(buf.Bytes())
	require.NoError(t, err)
	inv, err := rsrc.Build(tailor.InvariantLCID, nil)
	require.NoError(t, err)
	for _, id := range rsrc.LCIDs() {
		tl, err := rsrc.Build(id, inv)
		require.NoErrorf(t, err, "%#04x", id)
		if id == uint32(locale.French) {
			assert.True(t, tl.FrenchSort)
		}
		if id == uint32(locale.Vietnamese) {
			assert.True(t, tl.HasRemaps())
		}
	}
}

func TestCJKRanks(t *testing.T) {
	tb := result(t).Weights
	for _, name := range []string{"ja", "ko", "zh-Hans", "zh-Hant"} {
		c := tb.CJK(name)
		require.NotNil(t, c, name)
		seen := map[[2]byte]rune{}
		for r := rune(cjkFirst); r < 0x4E00+2000; r++ {
			cat, l1, ok := c.Weight(r)
			require.True(t, ok)
			k := [2]byte{cat, l1}
			if prev, dup := seen[k]; dup {
				t.Fatalf("%s: %U and %U share weight % X", name, prev, r, k)
			}
			seen[k] = r
		}
	}
}

func TestAllocator(t *testing.T) {
	a := newAllocator(0x20, 0x23, 254)
	a.skip = 0x22
	var got [][2]byte
	for i := 0; i < 4; i++ {
		cat, l1 := a.next()
		got = append(got, [2]byte{cat, l1})
	}
	assert.Equal(t, [][2]byte{{0x20, 254}, {0x20, 255}, {0x21, 2}, {0x21, 3}}, got)

	a = newAllocator(0x22, 0x22, 255)
	a.next()
	cat, l1 := a.next()
	assert.Equal(t, byte(0x22), cat)
	assert.Equal(t, byte(255), l1)
}

func TestKanaWeights(t *testing.T) {
	w := kanaWeights()
	assert.Equal(t, byte(2), w['あ'])
	assert.Equal(t, w['あ'], w['ぁ'])
	assert.Equal(t, w['か'], w['カ'])
	assert.Equal(t, byte(87), w['ん'])
	assert.Equal(t, byte(3), w['き']&7)
}
