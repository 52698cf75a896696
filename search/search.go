// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search provides language-specific search and string matching.
//
// Natural language matching can be intricate. For example, Danish will insist
// "Århus" and "Aarhus" are the same name and Turkish will match I to ı (note
// the lack of a dot) in a case-insensitive match. This package handles such
// language-specific details.
//
// Text passed to any of the calls in this message does not need to be
// normalized.
package search

import (
	"unicode"
	"unicode/utf8"

	"github.com/nlsort/nls/collate"
	"github.com/nlsort/nls/locale"
	"golang.org/x/text/language"
)

// An Option configures a Matcher.
type Option func(*Matcher)

var (
	// WholeWord restricts matches to complete words. The default is to match at
	// the character level.
	WholeWord Option = func(m *Matcher) { m.wholeWord = true }

	// Exact requires that two strings are their exact equivalent. For example
	// å would not match aa in Danish. It overrides any of the ignore options.
	Exact Option = func(m *Matcher) { m.exact = true }

	// Loose causes case, diacritics and width to be ignored.
	Loose Option = func(m *Matcher) {
		m.opts |= collate.IgnoreCase | collate.IgnoreNonSpace | collate.IgnoreWidth
	}

	// IgnoreCase enables case-insensitive search.
	IgnoreCase Option = func(m *Matcher) { m.opts |= collate.IgnoreCase }

	// IgnoreDiacritics causes diacritics to be ignored ("ö" == "o").
	IgnoreDiacritics Option = func(m *Matcher) { m.opts |= collate.IgnoreNonSpace }

	// IgnoreWidth equates fullwidth with halfwidth variants.
	IgnoreWidth Option = func(m *Matcher) { m.opts |= collate.IgnoreWidth }
)

// New returns a new Matcher for the given language and options.
func New(t language.Tag, opts ...Option) (*Matcher, error) {
	c, err := collate.New(t)
	if err != nil {
		return nil, err
	}
	return NewWithCollator(c, opts...), nil
}

// NewWithCollator returns a Matcher that compares text with c.
func NewWithCollator(c *collate.Collator, opts ...Option) *Matcher {
	m := &Matcher{c: c}
	for _, o := range opts {
		o(m)
	}
	if m.exact {
		m.opts = collate.None
	}
	return m
}

// A Matcher implements language-specific string matching.
type Matcher struct {
	c    *collate.Collator
	opts collate.Options

	exact     bool
	wholeWord bool
}

// Options returns the comparison options the Matcher uses.
func (m *Matcher) Options() collate.Options { return m.opts }

// An IndexOption specifies how the Index methods of Pattern or Matcher should
// match the input.
type IndexOption byte

const (
	// Anchor restricts the search to the start (or end for Backwards) of the
	// text.
	Anchor IndexOption = iota

	// Backwards starts the search from the end of the text.
	Backwards
)

// Index reports the start and end position of the first occurrence of pat in b
// or -1, -1 if pat is not present.
func (m *Matcher) Index(b, pat []byte, opts ...IndexOption) (start, end int) {
	return m.Compile(pat).Index(b, opts...)
}

// IndexString reports the start and end position of the first occurrence of pat
// in s or -1, -1 if pat is not present.
func (m *Matcher) IndexString(s, pat string, opts ...IndexOption) (start, end int) {
	return m.CompileString(pat).IndexString(s, opts...)
}

// Equal reports whether a and b are equivalent.
func (m *Matcher) Equal(a, b []byte) bool {
	return m.EqualString(string(a), string(b))
}

// EqualString reports whether a and b are equivalent.
func (m *Matcher) EqualString(a, b string) bool {
	r, err := m.c.Compare(a, b, m.opts)
	return err == nil && r == 0
}

// Compile compiles and returns a pattern that can be used for faster searching.
func (m *Matcher) Compile(b []byte) *Pattern {
	return m.CompileString(string(b))
}

// CompileString compiles and returns a pattern that can be used for faster
// searching.
func (m *Matcher) CompileString(str string) *Pattern {
	return &Pattern{m: m, pat: str}
}

// Supported lists the languages for which search differs from its parent.
var Supported = language.NewCoverage(func() []language.Tag {
	var ts []language.Tag
	for _, info := range locale.Supported() {
		ts = append(ts, info.Tag)
	}
	return ts
})

// isWord reports whether r is part of a word.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// atWordBoundary reports whether position i of s does not split a word.
func atWordBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(s[:i])
	after, _ := utf8.DecodeRuneInString(s[i:])
	return !isWord(before) || !isWord(after)
}
