// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale maps BCP 47 language tags onto the numeric locale
// identifiers (LCIDs) that select a collation tailoring.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// An LCID is a numeric locale identifier. The low 10 bits hold the primary
// language, the next 6 the sublanguage and bits 16-19 the sort identifier.
type LCID uint32

// Locales with a distinct collation.
const (
	Invariant          LCID = 0x007F
	ChineseTaiwan      LCID = 0x0404
	Czech              LCID = 0x0405
	Danish             LCID = 0x0406
	German             LCID = 0x0407
	GermanPhoneBook    LCID = 0x10407
	English            LCID = 0x0409
	SpanishTraditional LCID = 0x040A
	Finnish            LCID = 0x040B
	French             LCID = 0x040C
	Hungarian          LCID = 0x040E
	Japanese           LCID = 0x0411
	Korean             LCID = 0x0412
	Norwegian          LCID = 0x0414
	Croatian           LCID = 0x041A
	Slovak             LCID = 0x041B
	Swedish            LCID = 0x041D
	Turkish            LCID = 0x041F
	Lithuanian         LCID = 0x0427
	Vietnamese         LCID = 0x042A
	Azeri              LCID = 0x042C
	ChinesePRC         LCID = 0x0804
	Spanish            LCID = 0x0C0A
	FrenchCanada       LCID = 0x0C0C
)

const (
	langJapanese = 0x11
	langTurkish  = 0x1F
	langAzeri    = 0x2C
)

// Primary returns the primary language of l.
func (l LCID) Primary() uint16 { return uint16(l & 0x3FF) }

// IsJapanese reports whether l is a Japanese locale.
func (l LCID) IsJapanese() bool { return l.Primary() == langJapanese }

// HasTurkishCase reports whether l lowercases I to dotless i.
func (l LCID) HasTurkishCase() bool {
	p := l.Primary()
	return p == langTurkish || p == langAzeri
}

func (l LCID) String() string { return fmt.Sprintf("0x%04x", uint32(l)) }

// Info describes a supported locale.
type Info struct {
	Tag  language.Tag
	LCID LCID
	// CJK names the ideograph order used by the locale. Locales without
	// one order ideographs by code point.
	CJK string
}

// supported lists the supported locales. The first entry must be the root;
// the others are sorted by tag.
var supported = []Info{
	{language.Und, Invariant, ""},
	{language.MustParse("az"), Azeri, ""},
	{language.MustParse("cs"), Czech, ""},
	{language.MustParse("da"), Danish, ""},
	{language.MustParse("de"), German, ""},
	{language.MustParse("de-u-co-phonebk"), GermanPhoneBook, ""},
	{language.MustParse("en"), English, ""},
	{language.MustParse("es"), Spanish, ""},
	{language.MustParse("es-u-co-trad"), SpanishTraditional, ""},
	{language.MustParse("fi"), Finnish, ""},
	{language.MustParse("fr"), French, ""},
	{language.MustParse("fr-CA"), FrenchCanada, ""},
	{language.MustParse("hr"), Croatian, ""},
	{language.MustParse("hu"), Hungarian, ""},
	{language.MustParse("ja"), Japanese, "ja"},
	{language.MustParse("ko"), Korean, "ko"},
	{language.MustParse("lt"), Lithuanian, ""},
	{language.MustParse("nb"), Norwegian, ""},
	{language.MustParse("sk"), Slovak, ""},
	{language.MustParse("sv"), Swedish, ""},
	{language.MustParse("tr"), Turkish, ""},
	{language.MustParse("vi"), Vietnamese, ""},
	{language.MustParse("zh"), ChinesePRC, "zh-Hans"},
	{language.MustParse("zh-Hant"), ChineseTaiwan, "zh-Hant"},
}

var tags = func() []language.Tag {
	ts := make([]language.Tag, len(supported))
	for i, s := range supported {
		ts[i] = s.Tag
	}
	return ts
}()

// Supported returns the supported locales.
func Supported() []Info {
	return append([]Info(nil), supported...)
}

// Lookup returns the locale with the given identifier.
func Lookup(id LCID) (Info, bool) {
	for _, s := range supported {
		if s.LCID == id {
			return s, true
		}
	}
	return Info{}, false
}

// Match returns the supported locale that best fits t. Tags without a
// supported match resolve to the invariant locale.
func Match(t language.Tag) Info {
	return supported[matchLang(t, tags)]
}

// CJKTables lists the names of the ideograph orders used by any locale,
// together with the tag whose collation defines them.
func CJKTables() map[string]language.Tag {
	m := map[string]language.Tag{}
	for _, s := range supported {
		if s.CJK != "" {
			m[s.CJK] = s.Tag
		}
	}
	return m
}
