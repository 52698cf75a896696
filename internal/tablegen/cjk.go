// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tablegen

import (
	"bytes"
	"sort"
	"unicode"

	xcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	cjkFirst = 0x4E00
	cjkLast  = 0x9FFF
)

// cjkRanks orders the unified ideographs the way the CLDR collation of t
// does and returns the rank of each.
func cjkRanks(t language.Tag) map[rune]int {
	type item struct {
		r   rune
		key []byte
	}
	c := xcollate.New(t)
	var buf xcollate.Buffer
	items := make([]item, 0, cjkLast-cjkFirst+1)
	for r := rune(cjkFirst); r <= cjkLast; r++ {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		k := c.KeyFromString(&buf, string(r))
		items = append(items, item{r, append([]byte(nil), k...)})
		buf.Reset()
	}
	sort.SliceStable(items, func(i, j int) bool {
		return bytes.Compare(items[i].key, items[j].key) < 0
	})
	ranks := make(map[rune]int, len(items))
	for i, it := range items {
		ranks[it.r] = i
	}
	return ranks
}
