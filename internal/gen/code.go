// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen writes generated tables as Go source.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// header starts every generated file.
const header = "// Code generated by nlscoll. DO NOT EDIT.\n\npackage %s\n"

const (
	// Strings up to maxInline bytes are written on one line.
	maxInline = 40
	// maxWidth is the number of literal bytes per line of a long string.
	maxWidth = 72
)

// CodeWriter collects the declarations of a generated file. It records the
// size and a content hash of the string data it writes.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	Hash *xxhash.Digest

	// afterComment is set while the last block written is a comment, so that
	// the next declaration attaches to it.
	afterComment bool
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{Hash: xxhash.New()}
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

// WriteGoFile appends the total size and checksum of the written data and
// writes the collected code to out as a Go file of package pkg. The buffer
// is reset.
func (w *CodeWriter) WriteGoFile(out io.Writer, pkg string) error {
	w.WriteComment("Total table size %d bytes (%dKiB); checksum: %X", w.Size, w.Size/1024, w.Hash.Sum64())
	defer w.buf.Reset()
	return WriteGo(out, pkg, w.buf.Bytes())
}

// WriteGo prepends a header and a package clause to the code in b, formats
// the result and writes it to out.
func WriteGo(out io.Writer, pkg string, b []byte) error {
	src := append(fmt.Appendf(nil, header, pkg), b...)
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("gen: formatting package %s: %w", pkg, err)
	}
	_, err = out.Write(formatted)
	return err
}

func (w *CodeWriter) printf(f string, x ...any) {
	fmt.Fprintf(w, f, x...)
}

// startBlock separates a declaration from the previous one by a blank line.
// format.Source collapses the surplus newlines.
func (w *CodeWriter) startBlock() {
	if w.afterComment {
		w.afterComment = false
		return
	}
	w.printf("\n\n")
}

// WriteComment writes a comment block. Leading and trailing empty lines are
// dropped and the indentation of the first line is removed from all lines.
func (w *CodeWriter) WriteComment(comment string, args ...any) {
	s := strings.Trim(fmt.Sprintf(comment, args...), "\n")
	indent := s[:len(s)-len(strings.TrimLeft(s, " \t"))]
	w.printf("\n\n")
	for _, line := range strings.Split(s, "\n") {
		w.printf("%s\n", strings.TrimRight("// "+strings.TrimPrefix(line, indent), " \t"))
	}
	w.afterComment = true
}

// WriteConst writes a constant of the given name and value. String values
// count towards Size.
func (w *CodeWriter) WriteConst(name string, x any) {
	w.startBlock()
	s, ok := x.(string)
	if !ok {
		w.printf("const %s = %#v\n", name, x)
		return
	}
	w.printf("// Size: %d bytes\n", len(s))
	w.Size += len(s)
	w.printf("const %s = ", name)
	w.writeString(s)
	w.printf("\n")
}

// writeString writes s as a string literal. Long strings are split into
// lines joined by +.
func (w *CodeWriter) writeString(s string) {
	w.Hash.WriteString(s)
	if len(s) <= maxInline {
		w.printf("%q", s)
		return
	}
	var lines []string
	var cur strings.Builder
	for p := 0; p < len(s); {
		r, n := utf8.DecodeRuneInString(s[p:])
		e := escape(s[p:p+n], r)
		if cur.Len()+len(e) > maxWidth {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		cur.WriteString(e)
		p += n
	}
	lines = append(lines, cur.String())
	w.printf("\"\" +\n\"%s\"", strings.Join(lines, "\" +\n\""))
}

// escape returns the literal form of the encoding src of r.
func escape(src string, r rune) string {
	switch {
	case r == '"' || r == '\\':
		return `\` + src
	case r == utf8.RuneError && len(src) == 1:
		return fmt.Sprintf(`\x%02x`, src[0])
	case unicode.IsPrint(r):
		return src
	case r < 0x10000:
		return fmt.Sprintf(`\u%04x`, r)
	}
	return fmt.Sprintf(`\U%08x`, r)
}
