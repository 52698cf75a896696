// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tailor

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []Record{{
	LCID: InvariantLCID,
	Contractions: []Contraction{
		{Source: "æ", Replacement: "ae"},
		{Source: "ß", Replacement: "ss"},
	},
}, {
	LCID: 0x040A,
	Contractions: []Contraction{
		{Source: "ch", Weights: [4]byte{0x19, 30, 1, 1}},
		{Source: "c", Weights: [4]byte{0x19, 26, 1, 1}},
		{Source: "ll", Weights: [4]byte{0x19, 100, 1, 1}},
		{Source: "cha", Weights: [4]byte{0x19, 31, 1, 1}},
	},
}, {
	LCID:       0x040C,
	FrenchSort: true,
}, {
	LCID:   0x042A,
	Remaps: []Remap{{9, 200}, {3, 100}},
}}

func encodeRecords(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records))
	return buf.Bytes()
}

func TestResourceRoundTrip(t *testing.T) {
	res, err := Parse(encodeRecords(t))
	require.NoError(t, err)
	assert.Equal(t, []uint32{InvariantLCID, 0x040A, 0x040C, 0x042A}, res.LCIDs())
	for _, want := range records {
		got, ok, err := res.Record(want.LCID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok, err := res.Record(0x0409)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	good := encodeRecords(t)
	for name, data := range map[string][]byte{
		"empty":     nil,
		"version":   append([]byte{Version + 1}, good[1:]...),
		"truncated": good[:5],
	} {
		_, err := Parse(data)
		assert.Truef(t, errors.Is(err, ErrFormat), "%s: %v", name, err)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []Record{{LCID: 1, Remaps: []Remap{{1, 2}}}}))
	bad := buf.Bytes()
	bad[len(bad)-1] = 0 // clobber the delimiter
	res, err := Parse(bad)
	require.NoError(t, err)
	_, _, err = res.Record(1)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.True(t, errors.Is(res.Validate(), ErrFormat))

	res, err = Parse(good)
	require.NoError(t, err)
	assert.NoError(t, res.Validate())

	assert.Error(t, Encode(&buf, []Record{{Contractions: []Contraction{{Source: "a\x00", Replacement: "b"}}}}))
}

func TestContractionLookup(t *testing.T) {
	c := NewCache(mustParse(t))
	es, err := c.Get(0x040A)
	require.NoError(t, err)

	tests := []struct {
		in, want string
	}{
		{"chart", "cha"},
		{"chico", "ch"},
		{"cosa", "c"},
		{"llama", "ll"},
		{"lata", ""},
		{"ærø", "æ"},
		{"", ""},
	}
	for _, tt := range tests {
		got := es.Contraction(tt.in)
		if tt.want == "" {
			assert.Nilf(t, got, "Contraction(%q)", tt.in)
			continue
		}
		require.NotNilf(t, got, "Contraction(%q)", tt.in)
		assert.Equal(t, tt.want, got.Source)
	}
	assert.True(t, es.HasContraction('c'))
	assert.True(t, es.HasContraction('ß'))
	assert.False(t, es.HasContraction('x'))

	assert.True(t, es.IsUnsafe('h'))
	assert.True(t, es.IsUnsafe('l'))
	assert.True(t, es.IsUnsafe('a'))
	assert.False(t, es.IsUnsafe('c'))
}

func TestRemap(t *testing.T) {
	c := NewCache(mustParse(t))
	vi, err := c.Get(0x042A)
	require.NoError(t, err)
	assert.True(t, vi.HasRemaps())
	assert.Equal(t, byte(100), vi.Remap(3))
	assert.Equal(t, byte(200), vi.Remap(9))
	assert.Equal(t, byte(5), vi.Remap(5))

	fr, err := c.Get(0x040C)
	require.NoError(t, err)
	assert.True(t, fr.FrenchSort)
	assert.False(t, fr.HasRemaps())
}

func TestCache(t *testing.T) {
	c := NewCache(mustParse(t))
	var wg sync.WaitGroup
	got := make([]*Tailoring, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tl, err := c.Get(0x040A)
			assert.NoError(t, err)
			got[i] = tl
		}(i)
	}
	wg.Wait()
	for _, tl := range got {
		assert.Same(t, got[0], tl)
	}
	assert.Same(t, got[0].Parent(), mustGet(t, c, InvariantLCID))

	en := mustGet(t, c, 0x0409)
	assert.Empty(t, en.Contractions())
	assert.NotNil(t, en.Contraction("æ"))
	assert.Equal(t, 3, c.Len())
}

func TestNewErrors(t *testing.T) {
	_, err := New(1, false, nil, []Contraction{{Source: ""}}, nil)
	assert.Error(t, err)
	_, err = New(1, false, nil, []Contraction{{Source: "ab"}}, nil)
	assert.Error(t, err)
}

func mustParse(t *testing.T) *Resource {
	res, err := Parse(encodeRecords(t))
	require.NoError(t, err)
	return res
}

func mustGet(t *testing.T, c *Cache, lcid uint32) *Tailoring {
	tl, err := c.Get(lcid)
	require.NoError(t, err)
	return tl
}
