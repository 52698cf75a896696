// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"sort"
)

// A Lister can be sorted by Collator's Sort method.
type Lister interface {
	Len() int
	Swap(i, j int)
	// Bytes returns the bytes of the text at index i.
	Bytes(i int) []byte
}

type sorter struct {
	keys [][]byte
	src  Lister
}

func (s *sorter) Len() int { return len(s.keys) }

func (s *sorter) Less(i, j int) bool {
	return bytes.Compare(s.keys[i], s.keys[j]) < 0
}

func (s *sorter) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.src.Swap(i, j)
}

// Sort uses sort.Stable to sort the strings of x. Ordinal options compare
// the strings directly.
func (c *Collator) Sort(x Lister, opts Options) error {
	if err := c.check("Sort", opts); err != nil {
		return err
	}
	n := x.Len()
	s := &sorter{keys: make([][]byte, n), src: x}
	if opts.isOrdinal() {
		for i := range s.keys {
			s.keys[i] = x.Bytes(i)
		}
		if opts == OrdinalIgnoreCase {
			sort.Stable(&ordinalSorter{s})
			return nil
		}
		sort.Stable(s)
		return nil
	}
	o := c.effective(opts)
	var buf []byte
	for i := range s.keys {
		src := x.Bytes(i)
		b := c.key(o, string(src), 0, len(src))
		start := len(buf)
		buf = b.appendKey(buf)
		c.putBuffer(b)
		s.keys[i] = buf[start:len(buf):len(buf)]
	}
	sort.Stable(s)
	return nil
}

type ordinalSorter struct{ *sorter }

func (s *ordinalSorter) Less(i, j int) bool {
	return compareIgnoreCase(string(s.keys[i]), string(s.keys[j])) < 0
}

type stringLister []string

func (s stringLister) Len() int           { return len(s) }
func (s stringLister) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s stringLister) Bytes(i int) []byte { return []byte(s[i]) }

// SortStrings uses sort.Stable to sort the strings in x.
func (c *Collator) SortStrings(x []string, opts Options) error {
	return c.Sort(stringLister(x), opts)
}
