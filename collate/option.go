// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"strconv"
	"strings"

	"github.com/nlsort/nls/internal/colltab"
)

// Options is a set of comparison flags. The values are those of the .NET
// CompareOptions enumeration.
type Options uint32

const (
	// None compares with all levels enabled.
	None Options = 0
	// IgnoreCase ignores case differences.
	IgnoreCase Options = 0x1
	// IgnoreNonSpace ignores diacritics.
	IgnoreNonSpace Options = 0x2
	// IgnoreSymbols ignores spaces, punctuation and symbols.
	IgnoreSymbols Options = 0x4
	// IgnoreKanaType treats hiragana and katakana as equal.
	IgnoreKanaType Options = 0x8
	// IgnoreWidth treats full width and half width forms as equal.
	IgnoreWidth Options = 0x10
	// OrdinalIgnoreCase compares the upper case forms of code points.
	OrdinalIgnoreCase Options = 0x10000000
	// StringSort sorts hyphens and apostrophes with the symbols instead of
	// giving them a positional weight.
	StringSort Options = 0x20000000
	// Ordinal compares code points.
	Ordinal Options = 0x40000000

	linguistic = IgnoreCase | IgnoreNonSpace | IgnoreSymbols | IgnoreKanaType |
		IgnoreWidth | StringSort
)

var optionNames = []struct {
	o    Options
	name string
}{
	{IgnoreCase, "IgnoreCase"},
	{IgnoreNonSpace, "IgnoreNonSpace"},
	{IgnoreSymbols, "IgnoreSymbols"},
	{IgnoreKanaType, "IgnoreKanaType"},
	{IgnoreWidth, "IgnoreWidth"},
	{OrdinalIgnoreCase, "OrdinalIgnoreCase"},
	{StringSort, "StringSort"},
	{Ordinal, "Ordinal"},
}

func (o Options) String() string {
	if o == None {
		return "None"
	}
	var names []string
	for _, n := range optionNames {
		if o&n.o != 0 {
			names = append(names, n.name)
			o &^= n.o
		}
	}
	if o != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(o), 16))
	}
	return strings.Join(names, "|")
}

// ParseOptions parses a list of option names separated by '|' or ','. Names
// are matched without regard to case.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		f = strings.TrimSpace(f)
		if f == "" || strings.EqualFold(f, "None") {
			continue
		}
		found := false
		for _, n := range optionNames {
			if strings.EqualFold(f, n.name) {
				o |= n.o
				found = true
				break
			}
		}
		if !found {
			return 0, &Error{Code: UnsupportedOption, Op: "ParseOptions", Msg: "unknown option " + f}
		}
	}
	return o, nil
}

// validate reports whether o is a combination the collator accepts. The
// ordinal options may not be combined with any other flag.
func (o Options) validate(op string) error {
	switch {
	case o == Ordinal, o == OrdinalIgnoreCase:
		return nil
	case o&^linguistic != 0:
		return &Error{Code: UnsupportedOption, Op: op, Msg: "invalid options " + o.String()}
	}
	return nil
}

func (o Options) isOrdinal() bool { return o == Ordinal || o == OrdinalIgnoreCase }

// effective holds the comparison flags derived from Options for one call.
type effective struct {
	ignore     byte
	level2     bool
	level3     bool
	width      bool
	kanaType   bool
	stringSort bool
	turkish    bool
}

func (c *Collator) effective(o Options) effective {
	e := effective{
		ignore:     colltab.IgnoreAlways,
		level2:     o&IgnoreNonSpace == 0,
		level3:     o&IgnoreCase == 0,
		width:      o&IgnoreWidth != 0,
		kanaType:   o&IgnoreKanaType != 0,
		stringSort: o&StringSort != 0,
		turkish:    o&IgnoreCase != 0 && c.info.LCID.HasTurkishCase(),
	}
	if o&IgnoreSymbols != 0 {
		e.ignore |= colltab.IgnoreSymbol
	}
	if o&IgnoreNonSpace != 0 {
		e.ignore |= colltab.IgnoreNonSpace
	}
	return e
}
