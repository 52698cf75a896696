// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/golang/glog.(*fileSink).flushDaemon"),
		goleak.IgnoreTopFunction("github.com/golang/glog.(*loggingT).flushDaemon"),
	)
}

func newCollator(t testing.TB, tag string) *Collator {
	t.Helper()
	if testing.Short() {
		t.Skip("table synthesis skipped in short mode")
	}
	c, err := New(language.MustParse(tag))
	require.NoError(t, err)
	return c
}

func compare(t *testing.T, c *Collator, a, b string, opts Options) int {
	t.Helper()
	r, err := c.Compare(a, b, opts)
	require.NoError(t, err)
	return r
}

func TestScenarios(t *testing.T) {
	c := newCollator(t, "und")

	assert.Negative(t, compare(t, c, "A", "a", None))
	assert.Zero(t, compare(t, c, "A", "a", IgnoreCase))
	assert.Zero(t, compare(t, c, "\uff10", "0", IgnoreWidth))
	assert.NotZero(t, compare(t, c, "\uff10", "0", None))
	assert.Zero(t, compare(t, c, "AE", "\u00c6", None))

	k, err := c.GetSortKey("", None)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 1, 1, 1, 1}, k.Bytes())
	assert.Equal(t, "0101010101", k.String())
}

func TestFrench(t *testing.T) {
	en := newCollator(t, "en")
	fr := newCollator(t, "fr")
	// The two words carry their accents on different letters.
	a, b := "c\u00f4te", "cot\u00e9"
	assert.Positive(t, compare(t, en, a, b, None))
	assert.Negative(t, compare(t, fr, a, b, None))

	words := []string{"c\u00f4t\u00e9", "cot\u00e9", "c\u00f4te", "cote"}
	require.NoError(t, en.SortStrings(words, None))
	assert.Equal(t, []string{"cote", "cot\u00e9", "c\u00f4te", "c\u00f4t\u00e9"}, words)
	require.NoError(t, fr.SortStrings(words, None))
	assert.Equal(t, []string{"cote", "c\u00f4te", "cot\u00e9", "c\u00f4t\u00e9"}, words)
}

func TestLevels(t *testing.T) {
	c := newCollator(t, "und")
	tests := []struct {
		a, b string
		opts Options
		want int
	}{
		{"a", "b", None, -1},
		{"b", "a", None, 1},
		{"abc", "abc", None, 0},
		{"ab", "abc", None, -1},
		{"", "a", None, -1},
		{"a", "\u00e1", None, -1},
		{"\u00e1", "b", None, -1},
		{"\u00e1", "a\u0301", None, 0},
		{"\u00e1", "a", IgnoreNonSpace, 0},
		{"\u00c1", "a", IgnoreNonSpace | IgnoreCase, 0},
		{"resume", "r\u00e9sum\u00e9", IgnoreNonSpace, 0},
		{"a\tb", "ab", None, 0},
		{"a b", "ab", IgnoreSymbols, 0},
		{"a.b", "a,b", IgnoreSymbols, 0},
		{"co-op", "coop", None, 1},
		{"co-op", "coop", IgnoreSymbols, 0},
		{"a-b", "ab", StringSort, -1},
		{"1", "2", None, -1},
		{"9", "10", None, 1},
		{"2", "a", None, -1},
		{"\u0661", "1", None, 1},
		{"\u0661", "2", None, -1},
		{"\u00df", "ss", None, 0},
		{"\ufb01", "fi", IgnoreWidth, 0},
		{"\u03b1", "z", None, 1},
		{"\u0391", "\u03b1", IgnoreCase, 0},
		{"\uac00", "\uac01", None, -1},
		{"\u4e00", "\u4e8c", None, -1},
		{"\U00010000", "\U00010001", None, -1},
		{"\ue000", "\ue001", None, -1},
		{"\u3400", "\u3401", None, -1},
		{"A", "a", IgnoreWidth, -1},
		{"a", "A", IgnoreWidth, 1},
		{"\uff21", "A", IgnoreWidth, 0},
		{"\uff41", "A", IgnoreWidth, 1},
		{"\uff21", "a", IgnoreWidth | IgnoreCase, 0},
		{"ABC", "\uff21\uff22\uff23", IgnoreWidth, 0},
		{"\u00c6", "\u00e6", IgnoreWidth, -1},
	}
	for _, tt := range tests {
		got := compare(t, c, tt.a, tt.b, tt.opts)
		assert.Equalf(t, tt.want, got, "Compare(%+q, %+q, %v)", tt.a, tt.b, tt.opts)
	}
}

func TestPrivateUse(t *testing.T) {
	prev := rune(0xE000)
	pc, pl1, pl2 := privateUseWeight(prev)
	assert.Equal(t, byte(0xE5), pc)
	assert.Equal(t, byte(2), pl1)
	for r := prev + 1; r < 0xF900; r++ {
		cat, l1, l2 := privateUseWeight(r)
		require.Lessf(t, cat, byte(0xFE), "category of %U", r)
		require.GreaterOrEqualf(t, l1, byte(2), "level 1 of %U", r)
		switch {
		case cat != pc:
			require.Greaterf(t, cat, pc, "%U after %U", r, prev)
		case l1 != pl1:
			require.Greaterf(t, l1, pl1, "%U after %U", r, prev)
		default:
			require.Greaterf(t, l2, pl2, "%U after %U", r, prev)
		}
		prev, pc, pl1, pl2 = r, cat, l1, l2
	}

	c := newCollator(t, "und")
	for _, s := range []string{"\uf8ee", "\uf8fe", "\uf8ff"} {
		k, err := c.GetSortKey(s, None)
		require.NoError(t, err)
		assert.Equalf(t, byte(0xFD), k.Bytes()[0], "GetSortKey(%+q)", s)
	}
	assert.Negative(t, compare(t, c, "\uf8ed", "\uf8ee", None))
	assert.Negative(t, compare(t, c, "\uf8fe", "\uf8ff", None))
	assert.Negative(t, compare(t, c, "\uf8ff", "\u3400", None))
}

func TestKana(t *testing.T) {
	c := newCollator(t, "ja")
	const (
		a    = "\u3042"
		ka   = "\u304b"
		ga   = "\u304c"
		kaKt = "\u30ab"
		kaHw = "\uff76"
		kaVs = "\u304b\u3099"
		long = "\u30fc"
	)
	assert.NotZero(t, compare(t, c, ka, kaKt, None))
	assert.Zero(t, compare(t, c, ka, kaKt, IgnoreKanaType))
	assert.NotZero(t, compare(t, c, kaKt, kaHw, None))
	assert.Zero(t, compare(t, c, kaKt, kaHw, IgnoreWidth))
	assert.Zero(t, compare(t, c, kaHw, ka, IgnoreWidth|IgnoreKanaType))
	assert.Negative(t, compare(t, c, ka, ga, None))
	assert.Zero(t, compare(t, c, ka, ga, IgnoreNonSpace))
	assert.Zero(t, compare(t, c, ga, kaVs, None))
	assert.Zero(t, compare(t, c, ka+long, ka+a, None))
	assert.Negative(t, compare(t, c, a, ka, None))
	assert.Negative(t, compare(t, c, "\u3041", a, None))

	// Small katakana sort before their full-size form.
	assert.Negative(t, compare(t, c, "\u30c3", "\u30c4", None))
	assert.Negative(t, compare(t, c, "\u30a1", "\u30a2", None))
	assert.Negative(t, compare(t, c, "\u30e3", "\u30e4", None))
	assert.NotZero(t, compare(t, c, "\u3063", "\u30c3", None))
	assert.Zero(t, compare(t, c, "\u3063", "\u30c3", IgnoreKanaType))
}

func TestContractions(t *testing.T) {
	und := newCollator(t, "und")
	trad := newCollator(t, "es-u-co-trad")
	assert.Positive(t, compare(t, und, "cz", "ch", None))
	assert.Negative(t, compare(t, trad, "cz", "ch", None))
	assert.Negative(t, compare(t, trad, "ch", "d", None))
	assert.Negative(t, compare(t, trad, "cuzco", "chile", None))
	assert.Zero(t, compare(t, trad, "Chile", "chile", IgnoreCase))

	da := newCollator(t, "da")
	assert.Negative(t, compare(t, und, "aa", "z", None))
	assert.Positive(t, compare(t, da, "aa", "z", None))
	assert.Positive(t, compare(t, da, "\u00e5", "\u00f8", None))
	assert.Positive(t, compare(t, da, "\u00f8", "\u00e6", None))

	sv := newCollator(t, "sv")
	assert.Positive(t, compare(t, sv, "\u00e4", "\u00e5", None))
	assert.Positive(t, compare(t, sv, "\u00f6", "\u00e4", None))

	de := newCollator(t, "de")
	pb := newCollator(t, "de-u-co-phonebk")
	assert.NotZero(t, compare(t, de, "\u00c4pfel", "Aepfel", None))
	assert.Zero(t, compare(t, pb, "\u00c4pfel", "Aepfel", None))
	assert.Zero(t, compare(t, pb, "M\u00fcller", "Mueller", None))

	cs := newCollator(t, "cs")
	assert.Positive(t, compare(t, cs, "chata", "hrad", None))
	assert.Negative(t, compare(t, cs, "hrad", "chata", None))
	assert.Positive(t, compare(t, cs, "\u010das", "cyklus", None))
}

func TestTurkish(t *testing.T) {
	und := newCollator(t, "und")
	tr := newCollator(t, "tr")

	assert.Zero(t, compare(t, und, "i", "I", IgnoreCase))
	assert.NotZero(t, compare(t, tr, "i", "I", IgnoreCase))
	assert.Zero(t, compare(t, tr, "\u0131", "I", IgnoreCase))
	assert.Zero(t, compare(t, tr, "i", "\u0130", IgnoreCase))
	assert.Zero(t, compare(t, tr, "KIR", "k\u0131r", IgnoreCase))
	assert.Negative(t, compare(t, tr, "\u0131", "i", None))
	assert.Positive(t, compare(t, tr, "\u0131", "h", None))
}

func TestVietnamese(t *testing.T) {
	vi := newCollator(t, "vi")
	// The tone marks sort after all other diacritics.
	assert.Positive(t, compare(t, vi, "\u1ea5", "\u00e2", None))
	assert.Zero(t, compare(t, vi, "\u1ea5", "a\u0302\u0301", None))
	assert.Zero(t, compare(t, vi, "\u1ea5", "a", IgnoreNonSpace))
}

func TestOrdinal(t *testing.T) {
	c := newCollator(t, "en")
	assert.Positive(t, compare(t, c, "a", "B", Ordinal))
	assert.Negative(t, compare(t, c, "a", "B", None))
	assert.Negative(t, compare(t, c, "a", "B", OrdinalIgnoreCase))
	assert.Zero(t, compare(t, c, "hello", "HELLO", OrdinalIgnoreCase))
	assert.NotZero(t, compare(t, c, "stra\u00dfe", "STRASSE", OrdinalIgnoreCase))
	assert.Negative(t, compare(t, c, "\u00e9", "\U0001F600", Ordinal))
	assert.Negative(t, compare(t, c, "abc", "abcd", OrdinalIgnoreCase))

	tr := newCollator(t, "tr")
	assert.Equal(t, compare(t, c, "I", "\u0131", Ordinal), compare(t, tr, "I", "\u0131", Ordinal))
}

func TestErrors(t *testing.T) {
	c := newCollator(t, "en")

	_, err := c.Compare("a", "b", Ordinal|IgnoreCase)
	assert.True(t, errors.Is(err, ErrUnsupportedOption))
	_, err = c.Compare("a", "b", Options(0x100))
	assert.True(t, errors.Is(err, ErrUnsupportedOption))
	_, err = c.GetSortKey("a", Ordinal)
	assert.True(t, errors.Is(err, ErrUnsupportedOption))
	assert.False(t, errors.Is(err, ErrInvalidArgument))

	for _, w := range []struct{ start, length int }{{-1, 1}, {0, 4}, {2, 2}, {0, -1}, {4, 0}} {
		_, err := c.IndexOf("abc", "a", w.start, w.length, None)
		assert.Truef(t, errors.Is(err, ErrInvalidArgument), "window %v", w)
	}
	_, err = c.IndexOf("\u00e9", "e", 1, 0, None)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = c.CompareRange("abc", 0, 5, "b", 0, 1, None)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "CompareRange", e.Op)

	_, err = NewFromTables(&Tables{}, language.English)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
	_, err = NewTables([]byte{0xFF}, nil)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
}

func TestNewTablesCorruptRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("table synthesis skipped in short mode")
	}
	tb, err := DefaultTables()
	require.NoError(t, err)
	var w, tl bytes.Buffer
	require.NoError(t, tb.WriteTo(&w, &tl, false))

	_, err = NewTables(w.Bytes(), tl.Bytes())
	require.NoError(t, err)

	bad := tl.Bytes()[:tl.Len()-1]
	_, err = NewTables(w.Bytes(), bad)
	assert.True(t, errors.Is(err, ErrResourceUnavailable), "%v", err)
}

func TestIndexOf(t *testing.T) {
	und := newCollator(t, "und")
	trad := newCollator(t, "es-u-co-trad")
	tests := []struct {
		c      *Collator
		s, sub string
		opts   Options
		want   int
	}{
		{und, "hello world", "WORLD", IgnoreCase, 6},
		{und, "hello world", "WORLD", None, -1},
		{und, "hello world", "o", None, 4},
		{und, "abc", "", None, 0},
		{und, "abc", "\u0000", None, 0},
		{und, "cafe\u0301", "e", None, -1},
		{und, "cafe\u0301", "e", IgnoreNonSpace, 3},
		{und, "caf\u00e9", "e\u0301", None, 3},
		{und, "\u00c6ble", "AE", None, 0},
		{und, "\u00c6ble", "A", None, -1},
		{und, "\u00c6ble", "E", None, -1},
		{und, "stra\u00dfe", "ss", None, 4},
		{und, "xx\uff21", "a", IgnoreCase | IgnoreWidth, 2},
		{und, "a-b", "ab", None, -1},
		{und, "a-b", "ab", IgnoreSymbols, 0},
		{und, "chico", "c", None, 0},
		{trad, "chico", "c", None, 3},
		{trad, "chico", "h", None, -1},
		{trad, "chico", "ch", None, 0},
		{und, "abc", "abc", Ordinal, 0},
		{und, "xABC", "abc", OrdinalIgnoreCase, 1},
		{und, "xABC", "abc", Ordinal, -1},
	}
	for _, tt := range tests {
		got, err := tt.c.IndexOf(tt.s, tt.sub, 0, len(tt.s), tt.opts)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "%v: IndexOf(%+q, %+q, %v)", tt.c.Locale(), tt.s, tt.sub, tt.opts)
	}

	i, err := und.IndexOf("abcabc", "abc", 1, 5, None)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
	i, err = und.IndexOf("abcabc", "abc", 1, 4, None)
	require.NoError(t, err)
	assert.Equal(t, -1, i)
	i, err = und.IndexOfRune("h\u00e9llo", 'E', 0, 6, IgnoreCase|IgnoreNonSpace)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	start, end, err := und.Find("Stra\u00dfe", "SS", IgnoreCase)
	require.NoError(t, err)
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)
}

func TestLastIndexOf(t *testing.T) {
	c := newCollator(t, "und")
	tests := []struct {
		s, sub string
		opts   Options
		want   int
	}{
		{"abcabc", "abc", None, 3},
		{"abcABC", "abc", None, 0},
		{"abcABC", "abc", IgnoreCase, 3},
		{"abc", "", None, 3},
		{"abc", "x", None, -1},
		{"a\u00e9a\u00e9", "e\u0301", None, 4},
		{"abcabc", "b", Ordinal, 4},
		{"abcABC", "b", OrdinalIgnoreCase, 4},
	}
	for _, tt := range tests {
		got, err := c.LastIndexOf(tt.s, tt.sub, 0, len(tt.s), tt.opts)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "LastIndexOf(%+q, %+q, %v)", tt.s, tt.sub, tt.opts)
	}
	i, err := c.LastIndexOfRune("abcabc", 'a', 0, 3, None)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestPrefixSuffix(t *testing.T) {
	c := newCollator(t, "und")
	tests := []struct {
		s, sub         string
		opts           Options
		prefix, suffix bool
	}{
		{"Hello", "he", None, false, false},
		{"Hello", "he", IgnoreCase, true, false},
		{"Hello", "LO", IgnoreCase, false, true},
		{"Hello", "Hello", None, true, true},
		{"abc", "", None, true, true},
		{"", "", None, true, true},
		{"", "a", None, false, false},
		{"e\u0301x", "e", None, false, false},
		{"e\u0301x", "e", IgnoreNonSpace, true, false},
		{"x\u00e9", "e", None, false, false},
		{"x\u00e9", "e", IgnoreNonSpace, false, true},
		{"x\u00e9", "e\u0301", None, false, true},
		{"\u00c6", "A", None, false, false},
		{"\u00c6", "AE", None, true, true},
		{"-ab", "ab", IgnoreSymbols, true, true},
		{"ab\t", "ab", None, true, true},
		{"abc", "ABC", Ordinal, false, false},
		{"abc", "AB", OrdinalIgnoreCase, true, false},
		{"abc", "BC", OrdinalIgnoreCase, false, true},
	}
	for _, tt := range tests {
		p, err := c.IsPrefix(tt.s, tt.sub, tt.opts)
		require.NoError(t, err)
		assert.Equalf(t, tt.prefix, p, "IsPrefix(%+q, %+q, %v)", tt.s, tt.sub, tt.opts)
		s, err := c.IsSuffix(tt.s, tt.sub, tt.opts)
		require.NoError(t, err)
		assert.Equalf(t, tt.suffix, s, "IsSuffix(%+q, %+q, %v)", tt.s, tt.sub, tt.opts)
	}

	end, ok, err := c.MatchPrefix("\u00e9t\u00e9", "E", IgnoreCase|IgnoreNonSpace)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, end)
	start, ok, err := c.MatchSuffix("\u00e9t\u00e9", "E", IgnoreCase|IgnoreNonSpace)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, start)
}

var corpus = []string{
	"", "a", "A", "b", "ab", "aB", "abc", "\u00e1", "a\u0301", "\u00c1", "\u00e0",
	"co-op", "coop", "co op", "Co-op", "c\u00f4te", "cote", "cot\u00e9", "\u00c6", "AE",
	"ae", "\u00df", "ss", "SS", "1", "10", "9", "\uff10", "\u0661", "\u3042", "\u30a2",
	"\uff71", "\u304b\u30fc", "\u304b\u3099", "\u304c", "\u4e00", "\uac00", "\U0001F600",
	"\ue000", "\u3400", "x\u0301\u0301", "\u0301", "-", "'", "a'b", "ab-", "\t",
}

var corpusOptions = []Options{
	None, IgnoreCase, IgnoreNonSpace, IgnoreSymbols, IgnoreKanaType, IgnoreWidth,
	StringSort, IgnoreCase | IgnoreNonSpace | IgnoreSymbols | IgnoreWidth | IgnoreKanaType,
}

func TestCompareMatchesSortKey(t *testing.T) {
	for _, tag := range []string{"und", "fr", "es-u-co-trad", "ja", "de-u-co-phonebk"} {
		c := newCollator(t, tag)
		for _, opts := range corpusOptions {
			keys := make([]*SortKey, len(corpus))
			for i, s := range corpus {
				k, err := c.GetSortKey(s, opts)
				require.NoError(t, err)
				keys[i] = k
			}
			for i, a := range corpus {
				for j, b := range corpus {
					ab := compare(t, c, a, b, opts)
					ba := compare(t, c, b, a, opts)
					require.Equalf(t, -ab, ba, "%s %v: antisymmetry of %+q, %+q", tag, opts, a, b)
					require.Equalf(t, keys[i].Compare(keys[j]), ab,
						"%s %v: Compare(%+q, %+q) disagrees with keys %v, %v", tag, opts, a, b, keys[i], keys[j])
					if ab == 0 {
						assert.Equal(t, keys[i].Hash(), keys[j].Hash())
					}
				}
			}
		}
	}
}

func TestCommonPrefix(t *testing.T) {
	c := newCollator(t, "und")
	// Each pair shares an ASCII prefix that the fast path skips.
	pairs := [][2]string{
		{"abcdef", "abcdeg"},
		{"abc\u0301", "abc\u0300"},
		{"abc\u0301", "abd"},
		{"ab\u0001\u0301", "ab\u0001\u0300"},
		{"ab\u0001\u30fc", "ab\u0002y"},
		{"ab-c", "ab-d"},
		{"ab--c", "ab-c"},
		{"Abc", "abc"},
		{"abc", "abc"},
		{"ab", "abc"},
	}
	for _, p := range pairs {
		for _, opts := range corpusOptions {
			got := compare(t, c, p[0], p[1], opts)
			ka, err := c.GetSortKey(p[0], opts)
			require.NoError(t, err)
			kb, err := c.GetSortKey(p[1], opts)
			require.NoError(t, err)
			assert.Equalf(t, bytes.Compare(ka.Bytes(), kb.Bytes()), got, "%+q, %+q, %v", p[0], p[1], opts)
		}
	}
}

func TestIndexOfIsPrefix(t *testing.T) {
	c := newCollator(t, "und")
	for _, opts := range corpusOptions {
		for _, s := range corpus {
			for _, sub := range corpus {
				i, err := c.IndexOf(s, sub, 0, len(s), opts)
				require.NoError(t, err)
				if i < 0 {
					continue
				}
				ok, err := c.IsPrefix(s[i:], sub, opts)
				require.NoError(t, err)
				assert.Truef(t, ok, "IndexOf(%+q, %+q, %v) = %d", s, sub, opts, i)
			}
		}
	}
}

func TestSortKey(t *testing.T) {
	c := newCollator(t, "en")
	k, err := c.GetSortKey("abc", IgnoreCase)
	require.NoError(t, err)
	assert.Equal(t, "abc", k.Source())
	assert.Equal(t, IgnoreCase, k.Options())
	assert.Equal(t, c.LCID(), k.LCID())

	buf, err := c.AppendKey([]byte("x"), "abc", IgnoreCase)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("x"), k.Bytes()...), buf)

	k2, err := c.GetSortKey("ABC", IgnoreCase)
	require.NoError(t, err)
	assert.True(t, k.Equal(k2))
	assert.Equal(t, k.Hash(), k2.Hash())
}

func TestConcurrent(t *testing.T) {
	c := newCollator(t, "ja")
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				a := corpus[(g+i)%len(corpus)]
				b := corpus[(g*7+i)%len(corpus)]
				r1, err := c.Compare(a, b, None)
				assert.NoError(t, err)
				r2, err := c.Compare(b, a, None)
				assert.NoError(t, err)
				assert.Equal(t, r1, -r2)
			}
		}(g)
	}
	wg.Wait()
}

func TestOptionsString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "IgnoreCase|IgnoreWidth", (IgnoreCase | IgnoreWidth).String())
	assert.Equal(t, "Ordinal|0x100", (Ordinal | 0x100).String())

	for _, s := range []string{"IgnoreCase|IgnoreWidth", "ignorecase, ignorewidth", " IgnoreWidth | IGNORECASE "} {
		o, err := ParseOptions(s)
		require.NoError(t, err, s)
		assert.Equal(t, IgnoreCase|IgnoreWidth, o, s)
	}
	o, err := ParseOptions("")
	require.NoError(t, err)
	assert.Equal(t, None, o)
	_, err = ParseOptions("IgnoreEverything")
	assert.True(t, errors.Is(err, ErrUnsupportedOption))
}

func ExampleCollator_Compare() {
	c, err := New(language.English)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, opts := range []Options{None, IgnoreCase} {
		r, _ := c.Compare("Apple", "apple", opts)
		fmt.Println(opts, r)
	}
	// Output:
	// None -1
	// IgnoreCase 0
}
