// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import (
	"sort"

	"golang.org/x/text/language"
)

// matchLang finds the index of t in tags. tags[0] must be language.Und, the
// remaining tags should be sorted alphabetically by base language.
//
// The (inferred) base language must be an exact match: "gsw" does not match
// "de". The parent relation may change script, so the parent of zh-Hant-TW
// is zh-Hant and that of zh-Hant is zh.
func matchLang(t language.Tag, tags []language.Tag) int {
	t, _ = language.All.Canonicalize(t)

	base, conf := t.Base()
	if conf < language.High {
		return 0
	}

	// Maximize base and script and normalize the tag.
	if _, s, r := t.Raw(); (r != language.Region{}) {
		p, _ := language.Raw.Compose(base, s, r)
		// Taking the parent forces the script to be maximized.
		p = p.Parent()
		t, _ = language.Raw.Compose(p, r, t.Extensions())
	} else {
		t, _ = language.Raw.Compose(base, s, t.Extensions())
	}

	start := 1 + sort.Search(len(tags)-1, func(i int) bool {
		b, _, _ := tags[i+1].Raw()
		return base.String() <= b.String()
	})
	if start < len(tags) {
		if b, _, _ := tags[start].Raw(); b != base {
			return 0
		}
	}

	// Only the collation type of the 'u' extension distinguishes locales
	// beyond base, script and region.
	tdef, _ := language.Raw.Compose(t.Raw())
	try := []language.Tag{tdef}
	if co := t.TypeForKey("co"); co != "" {
		tco, _ := tdef.SetTypeForKey("co", co)
		try = []language.Tag{tco, tdef}
	}

	for _, tx := range try {
		for ; tx != language.Und; tx = parent(tx) {
			for i, t := range tags[start:] {
				if b, _, _ := t.Raw(); b != base {
					break
				}
				if tx == t {
					return start + i
				}
			}
		}
	}
	return 0
}

// parent computes the structural parent, which may have a different script
// than t.
func parent(t language.Tag) language.Tag {
	result := language.Und
	if b, s, r := t.Raw(); (r != language.Region{}) {
		result, _ = language.Raw.Compose(b, s, t.Extensions())
	} else if (s != language.Script{}) {
		result, _ = language.Raw.Compose(b, t.Extensions())
	} else if (b != language.Base{}) {
		result, _ = language.Raw.Compose(t.Extensions())
	}
	return result
}
