// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"github.com/nlsort/nls/locale"
)

// A SortKey is the binary form of a string under a collator and a set of
// options. Comparing two keys byte by byte gives the same result as
// comparing their sources. A SortKey is immutable.
type SortKey struct {
	key    []byte
	source string
	opts   Options
	lcid   locale.LCID
}

// GetSortKey returns the sort key of s. The ordinal options have no sort
// key.
func (c *Collator) GetSortKey(s string, opts Options) (*SortKey, error) {
	if err := c.check("GetSortKey", opts); err != nil {
		return nil, err
	}
	if opts.isOrdinal() {
		return nil, errorf(UnsupportedOption, "GetSortKey", "ordinal comparison has no sort key", nil)
	}
	b := c.key(c.effective(opts), s, 0, len(s))
	defer c.putBuffer(b)
	return &SortKey{
		key:    b.appendKey(make([]byte, 0, len(b.l1)+len(b.l2)+len(b.l3)+8)),
		source: s,
		opts:   opts,
		lcid:   c.info.LCID,
	}, nil
}

// AppendKey appends the sort key of s to dst.
func (c *Collator) AppendKey(dst []byte, s string, opts Options) ([]byte, error) {
	if err := c.check("AppendKey", opts); err != nil {
		return dst, err
	}
	if opts.isOrdinal() {
		return dst, errorf(UnsupportedOption, "AppendKey", "ordinal comparison has no sort key", nil)
	}
	b := c.key(c.effective(opts), s, 0, len(s))
	defer c.putBuffer(b)
	return b.appendKey(dst), nil
}

// Bytes returns the key. The caller must not modify it.
func (k *SortKey) Bytes() []byte { return k.key }

// Source returns the string the key was computed from.
func (k *SortKey) Source() string { return k.source }

// Options returns the options the key was computed with.
func (k *SortKey) Options() Options { return k.opts }

// LCID returns the locale of the collator that computed the key.
func (k *SortKey) LCID() locale.LCID { return k.lcid }

// Compare returns -1, 0 or 1 as k sorts before, with or after o.
func (k *SortKey) Compare(o *SortKey) int { return bytes.Compare(k.key, o.key) }

// Equal reports whether k and o hold the same key.
func (k *SortKey) Equal(o *SortKey) bool { return bytes.Equal(k.key, o.key) }

// Hash returns a hash of the key bytes. Equal keys have equal hashes.
func (k *SortKey) Hash() uint64 { return xxhash.Sum64(k.key) }

// String returns the key in hexadecimal.
func (k *SortKey) String() string { return hex.EncodeToString(k.key) }
