// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

// ExtenderType classifies code points that repeat the weight of the
// preceding character.
type ExtenderType int

const (
	ExtenderNone ExtenderType = iota
	// ExtenderSimple repeats the previous weight.
	ExtenderSimple
	// ExtenderVoiced repeats the previous weight and adds a voiced mark.
	ExtenderVoiced
	// ExtenderConditional substitutes the vowel of the previous kana.
	ExtenderConditional
	// ExtenderBuggy repeats the previous weight with a fixed level2 of 5.
	ExtenderBuggy
)

// Extender returns the extender type of r. U+2015 only extends in Japanese.
func Extender(r rune, japanese bool) ExtenderType {
	switch r {
	case 0x3005:
		return ExtenderBuggy
	case 0x3031, 0x3032, 0x309D, 0x30FD, 0xFE7C, 0xFE7D:
		return ExtenderSimple
	case 0x309E, 0x30FE:
		return ExtenderVoiced
	case 0x30FC, 0xFF70:
		return ExtenderConditional
	case 0x2015:
		if japanese {
			return ExtenderConditional
		}
	}
	return ExtenderNone
}

// HasSpecialWeight reports whether r carries the four kana sub-levels.
func HasSpecialWeight(r rune) bool {
	switch {
	case r < 0x3041:
		return false
	case r >= 0xFF66 && r < 0xFF9E:
		return true
	case r >= 0x3300:
		return false
	case r < 0x309D:
		return r < 0x3097
	case r < 0x30FD:
		return r < 0x30F7
	}
	return false
}

// IsHiragana reports whether r is a hiragana letter.
func IsHiragana(r rune) bool { return r >= 0x3041 && r <= 0x3094 }

// IsHalfWidthKana reports whether r is a half width katakana.
func IsHalfWidthKana(r rune) bool { return r >= 0xFF65 && r <= 0xFF9F }

// IsJapaneseSmallLetter reports whether r is a small kana.
func IsJapaneseSmallLetter(r rune) bool {
	if r >= 0xFF67 && r <= 0xFF6F {
		return true
	}
	if r >= 0x3040 && r < 0x30A0 {
		switch r {
		case 0x3041, 0x3043, 0x3045, 0x3047, 0x3049, 0x3063, 0x3083, 0x3085,
			0x3087, 0x308E, 0x3095, 0x3096:
			return true
		}
		return false
	}
	switch r {
	case 0x30A1, 0x30A3, 0x30A5, 0x30A7, 0x30A9, 0x30C3, 0x30E3, 0x30E5,
		0x30E7, 0x30EE, 0x30F5, 0x30F6:
		return true
	}
	return false
}

// ToKanaTypeInsensitive maps hiragana onto katakana.
func ToKanaTypeInsensitive(r rune) rune {
	if IsHiragana(r) {
		return r + 0x60
	}
	return r
}

// vowels lists the vowel kana a, i, u, e, o in half width, katakana and
// hiragana form.
var vowels = [3][5]rune{
	{0xFF71, 0xFF72, 0xFF73, 0xFF74, 0xFF75},
	{0x30A2, 0x30A4, 0x30A6, 0x30A8, 0x30AA},
	{0x3042, 0x3044, 0x3046, 0x3048, 0x304A},
}

// ConditionalVowel returns the vowel that a conditional extender stands for
// after prev, or 0 if prev is not a kana with a vowel.
func (t *Tables) ConditionalVowel(prev rune) rune {
	if t.Category(prev) != CatKana {
		return 0
	}
	v := int(t.Level1(prev)&7) - 2
	if v < 0 || v > 4 {
		return 0
	}
	switch {
	case IsHalfWidthKana(prev):
		return vowels[0][v]
	case IsHiragana(prev):
		return vowels[2][v]
	}
	return vowels[1][v]
}
