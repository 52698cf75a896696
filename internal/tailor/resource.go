// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tailor

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Version is the format version of the tailoring resource.
const Version = 1

// Entry kinds of the tailoring stream.
const (
	kindContraction = 1
	kindRemap       = 2
	kindReplacement = 3
	delimiter       = 0xFF
	recordSize      = 13
)

// ErrFormat is returned for malformed tailoring resources.
var ErrFormat = errors.New("tailor: malformed resource")

// A Record holds the overrides of one locale.
type Record struct {
	LCID         uint32
	FrenchSort   bool
	Contractions []Contraction
	Remaps       []Remap
}

type header struct {
	lcid       uint32
	off, count uint32
	frenchSort bool
}

// Resource is a parsed tailoring resource. Records are decoded on demand.
type Resource struct {
	headers []header
	stream  []byte
}

// Encode writes recs as a tailoring resource: a version byte, the record
// count and one header per record, followed by the shared entry stream.
func Encode(w io.Writer, recs []Record) error {
	var stream bytes.Buffer
	hs := make([]header, 0, len(recs))
	for _, rec := range recs {
		h := header{lcid: rec.LCID, off: uint32(stream.Len()), frenchSort: rec.FrenchSort}
		for _, c := range rec.Contractions {
			if strings.IndexByte(c.Source, 0) >= 0 || strings.IndexByte(c.Replacement, 0) >= 0 {
				return fmt.Errorf("tailor: contraction %+q contains NUL", c.Source)
			}
			if c.HasReplacement() {
				stream.WriteByte(kindReplacement)
				stream.WriteString(c.Source)
				stream.WriteByte(0)
				stream.WriteString(c.Replacement)
				stream.WriteByte(0)
			} else {
				stream.WriteByte(kindContraction)
				stream.WriteString(c.Source)
				stream.WriteByte(0)
				stream.Write(c.Weights[:])
			}
			stream.WriteByte(delimiter)
			h.count++
		}
		for _, r := range rec.Remaps {
			stream.Write([]byte{kindRemap, r.Source, r.Replacement, delimiter})
			h.count++
		}
		hs = append(hs, h)
	}
	if len(hs) > 0xFFFF {
		return errors.New("tailor: too many records")
	}
	bw := bufio.NewWriter(w)
	bw.WriteByte(Version)
	var buf [recordSize]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(len(hs)))
	bw.Write(buf[:2])
	for _, h := range hs {
		binary.LittleEndian.PutUint32(buf[0:], h.lcid)
		binary.LittleEndian.PutUint32(buf[4:], h.off)
		binary.LittleEndian.PutUint32(buf[8:], h.count)
		buf[12] = 0
		if h.frenchSort {
			buf[12] = 1
		}
		bw.Write(buf[:])
	}
	bw.Write(stream.Bytes())
	return bw.Flush()
}

// Parse validates the header of a tailoring resource. Entries are checked
// when a record is decoded.
func Parse(data []byte) (*Resource, error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("%w: truncated header", ErrFormat)
	}
	if data[0] != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, data[0])
	}
	n := int(binary.LittleEndian.Uint16(data[1:]))
	p := data[3:]
	if len(p) < n*recordSize {
		return nil, fmt.Errorf("%w: truncated record table", ErrFormat)
	}
	res := &Resource{stream: p[n*recordSize:]}
	for i := 0; i < n; i++ {
		b := p[i*recordSize:]
		h := header{
			lcid:       binary.LittleEndian.Uint32(b),
			off:        binary.LittleEndian.Uint32(b[4:]),
			count:      binary.LittleEndian.Uint32(b[8:]),
			frenchSort: b[12] != 0,
		}
		if int(h.off) > len(res.stream) {
			return nil, fmt.Errorf("%w: record %#04x starts beyond the stream", ErrFormat, h.lcid)
		}
		res.headers = append(res.headers, h)
	}
	sort.SliceStable(res.headers, func(i, j int) bool { return res.headers[i].lcid < res.headers[j].lcid })
	for i := 1; i < len(res.headers); i++ {
		if res.headers[i].lcid == res.headers[i-1].lcid {
			return nil, fmt.Errorf("%w: duplicate record %#04x", ErrFormat, res.headers[i].lcid)
		}
	}
	return res, nil
}

// LCIDs returns the locales that have a record, in ascending order.
func (res *Resource) LCIDs() []uint32 {
	ids := make([]uint32, len(res.headers))
	for i, h := range res.headers {
		ids[i] = h.lcid
	}
	return ids
}

// Validate decodes every record of res and returns the first error.
func (res *Resource) Validate() error {
	for _, h := range res.headers {
		if _, _, err := res.Record(h.lcid); err != nil {
			return err
		}
	}
	return nil
}

// Record decodes the record of lcid. It reports false if there is none.
func (res *Resource) Record(lcid uint32) (Record, bool, error) {
	i := sort.Search(len(res.headers), func(i int) bool { return res.headers[i].lcid >= lcid })
	if i == len(res.headers) || res.headers[i].lcid != lcid {
		return Record{}, false, nil
	}
	h := res.headers[i]
	rec := Record{LCID: lcid, FrenchSort: h.frenchSort}
	p := res.stream[h.off:]
	fail := func(msg string) (Record, bool, error) {
		return Record{}, false, fmt.Errorf("%w: record %#04x: %s", ErrFormat, lcid, msg)
	}
	cstring := func() (string, bool) {
		k := bytes.IndexByte(p, 0)
		if k < 0 {
			return "", false
		}
		s := string(p[:k])
		p = p[k+1:]
		return s, true
	}
	for n := uint32(0); n < h.count; n++ {
		if len(p) == 0 {
			return fail("truncated stream")
		}
		kind := p[0]
		p = p[1:]
		switch kind {
		case kindContraction:
			src, ok := cstring()
			if !ok || len(p) < 4 {
				return fail("truncated contraction")
			}
			c := Contraction{Source: src}
			copy(c.Weights[:], p)
			p = p[4:]
			rec.Contractions = append(rec.Contractions, c)
		case kindReplacement:
			src, ok := cstring()
			if !ok {
				return fail("truncated replacement")
			}
			dst, ok := cstring()
			if !ok || dst == "" {
				return fail("invalid replacement")
			}
			rec.Contractions = append(rec.Contractions, Contraction{Source: src, Replacement: dst})
		case kindRemap:
			if len(p) < 2 {
				return fail("truncated remap")
			}
			rec.Remaps = append(rec.Remaps, Remap{Source: p[0], Replacement: p[1]})
			p = p[2:]
		default:
			return fail(fmt.Sprintf("unknown entry kind %d", kind))
		}
		if len(p) == 0 || p[0] != delimiter {
			return fail("missing delimiter")
		}
		p = p[1:]
	}
	return rec, true, nil
}

// Build decodes the record of lcid into a Tailoring on top of parent. A
// locale without a record gets an empty tailoring.
func (res *Resource) Build(lcid uint32, parent *Tailoring) (*Tailoring, error) {
	rec, _, err := res.Record(lcid)
	if err != nil {
		return nil, err
	}
	return New(lcid, rec.FrenchSort, parent, rec.Contractions, rec.Remaps)
}
