// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickCheck(t *testing.T) {
	tests := []struct {
		r                    rune
		nfc, nfd, nfkc, nfkd QCResult
	}{
		{'a', Yes, Yes, Yes, Yes},
		{0x00e9, Yes, No, Yes, No},
		{0x0301, Maybe, Yes, Maybe, Yes},
		{0x0316, Yes, Yes, Yes, Yes},
		{0x212b, No, No, No, No},
		{0x0958, No, No, No, No},
		{0xfb01, Yes, Yes, No, No},
		{0xff21, Yes, Yes, No, No},
		{0xac00, Yes, No, Yes, No},
		{0x1161, Maybe, Yes, Maybe, Yes},
		{0x11a8, Maybe, Yes, Maybe, Yes},
		{0x1100, Yes, Yes, Yes, Yes},
		{0x0b3e, Maybe, Yes, Maybe, Yes},
		{0x4e00, Yes, Yes, Yes, Yes},
		{0xf900, No, No, No, No},
		{0x2f800, No, No, No, No},
	}
	for _, tt := range tests {
		for f, want := range map[Form]QCResult{NFC: tt.nfc, NFD: tt.nfd, NFKC: tt.nfkc, NFKD: tt.nfkd} {
			assert.Equalf(t, want, f.QuickCheck(tt.r), "%s.QuickCheck(%U)", f.Name(), tt.r)
		}
	}
}

func TestCCC(t *testing.T) {
	tb := Default()
	assert.Equal(t, uint8(0), tb.CCC('a'))
	assert.Equal(t, uint8(230), tb.CCC(0x0301))
	assert.Equal(t, uint8(220), tb.CCC(0x0316))
	assert.Equal(t, uint8(202), tb.CCC(0x0327))
	assert.Equal(t, uint8(0), tb.CCC(0xac00))
	assert.True(t, tb.IsCompositionExcluded(0x0958))
	assert.True(t, tb.IsCompositionExcluded(0x212b))
	assert.False(t, tb.IsCompositionExcluded(0x00c5))
	assert.Equal(t, "Yes", Yes.String())
	assert.Equal(t, "Maybe", Maybe.String())
}
