// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colltab

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Version is the format version of the weight table blob.
const Version = 1

// ErrFormat is returned for malformed table data.
var ErrFormat = errors.New("colltab: malformed table data")

// Encode writes t to w in the blob format: a version byte followed by
// length-prefixed sections for the ignorable flags, categories, the three
// levels, the width map and the CJK tables.
func Encode(w io.Writer, t *Tables) error {
	if !t.Ready() {
		return errors.New("colltab: encoding tables that are not ready")
	}
	bw := bufio.NewWriter(w)
	bw.WriteByte(Version)
	for _, s := range [][]byte{t.ignorable, t.category, t.level1, t.level2, t.level3} {
		writeSection(bw, s)
	}
	writeLen(bw, len(t.width))
	var buf [2]byte
	for _, v := range t.width {
		binary.LittleEndian.PutUint16(buf[:], v)
		bw.Write(buf[:])
	}
	if len(t.cjk) > 255 {
		return errors.New("colltab: too many CJK tables")
	}
	bw.WriteByte(byte(len(t.cjk)))
	for _, c := range t.cjk {
		if len(c.Name) > 255 {
			return fmt.Errorf("colltab: CJK table name %q too long", c.Name)
		}
		bw.WriteByte(byte(len(c.Name)))
		bw.WriteString(c.Name)
		writeSection(bw, c.category)
		writeSection(bw, c.level1)
	}
	return bw.Flush()
}

func writeLen(w *bufio.Writer, n int) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(n))
	w.Write(buf[:])
}

func writeSection(w *bufio.Writer, b []byte) {
	writeLen(w, len(b))
	w.Write(b)
}

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrFormat, d.off, fmt.Sprintf(format, args...))
}

func (d *decoder) byte() (byte, error) {
	if d.off >= len(d.buf) {
		return 0, d.errorf("truncated")
	}
	b := d.buf[d.off]
	d.off++
	return b, nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n < 0 || d.off+n > len(d.buf) {
		return nil, d.errorf("truncated section of %d bytes", n)
	}
	b := d.buf[d.off : d.off+n : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) length() (int, error) {
	b, err := d.bytes(4)
	if err != nil {
		return 0, err
	}
	return int(binary.LittleEndian.Uint32(b)), nil
}

func (d *decoder) section(want int) ([]byte, error) {
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	if n != want {
		return nil, d.errorf("section has %d entries, want %d", n, want)
	}
	return d.bytes(n)
}

// Load decodes a blob written by Encode. The returned Tables reference data.
func Load(data []byte) (*Tables, error) {
	d := &decoder{buf: data}
	v, err := d.byte()
	if err != nil {
		return nil, err
	}
	if v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, v)
	}
	n := MainIndex.Len()
	t := &Tables{}
	for _, p := range []*[]byte{&t.ignorable, &t.category, &t.level1, &t.level2, &t.level3} {
		if *p, err = d.section(n); err != nil {
			return nil, err
		}
	}
	wn, err := d.length()
	if err != nil {
		return nil, err
	}
	if wn != n {
		return nil, d.errorf("width map has %d entries, want %d", wn, n)
	}
	wb, err := d.bytes(2 * n)
	if err != nil {
		return nil, err
	}
	t.width = make([]uint16, n)
	for i := range t.width {
		t.width[i] = binary.LittleEndian.Uint16(wb[2*i:])
	}
	count, err := d.byte()
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(count); i++ {
		ln, err := d.byte()
		if err != nil {
			return nil, err
		}
		name, err := d.bytes(int(ln))
		if err != nil {
			return nil, err
		}
		c := &CJKTable{Name: string(name)}
		if c.category, err = d.section(CJKIndex.Len()); err != nil {
			return nil, err
		}
		if c.level1, err = d.section(CJKIndex.Len()); err != nil {
			return nil, err
		}
		t.cjk = append(t.cjk, c)
	}
	if d.off != len(d.buf) {
		return nil, d.errorf("%d trailing bytes", len(d.buf)-d.off)
	}
	for i, c := range t.category {
		if c == 0 && t.ignorable[i]&IgnoreAlways == 0 {
			return nil, fmt.Errorf("%w: code point %U is unsortable but not ignorable", ErrFormat, MainIndex.ToCodePoint(i))
		}
	}
	return t, nil
}
