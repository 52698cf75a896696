// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	ix := Must(-1, Range{0, 0x80}, Range{0x3000, 0x3100}, Range{0xFF00, 0x10000})
	require.Equal(t, 0x80+0x100+0x100, ix.Len())

	tests := []struct {
		r    rune
		want int
	}{
		{0, 0},
		{'a', 'a'},
		{0x7F, 0x7F},
		{0x80, -1},
		{0x2FFF, -1},
		{0x3000, 0x80},
		{0x30FF, 0x17F},
		{0x3100, -1},
		{0xFF00, 0x180},
		{0xFFFF, 0x27F},
		{0x10000, -1},
		{0x10FFFF, -1},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, ix.ToIndex(tt.r), "ToIndex(%U)", tt.r)
		assert.Equalf(t, tt.want >= 0, ix.Covers(tt.r), "Covers(%U)", tt.r)
	}
}

func TestRoundTrip(t *testing.T) {
	ix := Must(0, Range{0x20, 0x7F}, Range{0xA0, 0x250}, Range{0x1E00, 0x2000})
	n := 0
	ix.Each(func(i int, r rune) {
		if ix.ToIndex(r) != i || ix.ToCodePoint(i) != r {
			t.Errorf("round trip mismatch: %d <-> %U", i, r)
		}
		n++
	})
	assert.Equal(t, ix.Len(), n)
	assert.Equal(t, Uncovered, ix.ToCodePoint(-1))
	assert.Equal(t, Uncovered, ix.ToCodePoint(ix.Len()))
}

func TestInvalidRanges(t *testing.T) {
	for _, rs := range [][]Range{
		{{10, 10}},
		{{-1, 4}},
		{{0, 0x110001}},
		{{0x100, 0x200}, {0x50, 0x60}},
		{{0x100, 0x200}, {0x1FF, 0x300}},
	} {
		_, err := New(0, rs...)
		assert.Errorf(t, err, "New(%v)", rs)
	}
	assert.Panics(t, func() { Must(0, Range{5, 1}) })
}
