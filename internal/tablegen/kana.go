// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tablegen

// kanaRows lists the hiragana of the gojūon table by row, in vowel order
// a, i, u, e, o. Zero marks an empty slot.
var kanaRows = [...][5]rune{
	{'あ', 'い', 'う', 'え', 'お'},
	{'か', 'き', 'く', 'け', 'こ'},
	{'さ', 'し', 'す', 'せ', 'そ'},
	{'た', 'ち', 'つ', 'て', 'と'},
	{'な', 'に', 'ぬ', 'ね', 'の'},
	{'は', 'ひ', 'ふ', 'へ', 'ほ'},
	{'ま', 'み', 'む', 'め', 'も'},
	{'や', 0, 'ゆ', 0, 'よ'},
	{'ら', 'り', 'る', 'れ', 'ろ'},
	{'わ', 'ゐ', 0, 'ゑ', 'を'},
}

// kanaN is the syllabic n, which sorts after all rows.
const kanaN = 'ん'

// kanaAliases maps small and extension kana to the hiragana they share a
// primary weight with.
var kanaAliases = map[rune]rune{
	'ぁ': 'あ', 'ぃ': 'い', 'ぅ': 'う', 'ぇ': 'え', 'ぉ': 'お',
	'っ': 'つ', 'ゃ': 'や', 'ゅ': 'ゆ', 'ょ': 'よ', 'ゎ': 'わ',
	'ゕ': 'か', 'ゖ': 'け',

	0x31F0: 'く', 0x31F1: 'し', 0x31F2: 'す', 0x31F3: 'と',
	0x31F4: 'ぬ', 0x31F5: 'は', 0x31F6: 'ひ', 0x31F7: 'ふ',
	0x31F8: 'へ', 0x31F9: 'ほ', 0x31FA: 'む', 0x31FB: 'ら',
	0x31FC: 'り', 0x31FD: 'る', 0x31FE: 'れ', 0x31FF: 'ろ',
}

// kanaWeights returns the level1 weight of every kana that has no
// decomposition. The weight of a kana is row*8 plus its vowel, with vowels
// counted from 2. Katakana share the weight of the hiragana 0x60 below.
func kanaWeights() map[rune]byte {
	m := make(map[rune]byte)
	for row, rs := range kanaRows {
		for v, r := range rs {
			if r != 0 {
				m[r] = byte(row*8 + v + 2)
			}
		}
	}
	m[kanaN] = byte(len(kanaRows)*8 + 7)
	for r, base := range kanaAliases {
		m[r] = m[base]
	}
	for r, w := range m {
		if r >= 0x3041 && r <= 0x3096 {
			m[r+0x60] = w
		}
	}
	return m
}
