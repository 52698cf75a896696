// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tablegen synthesizes the collation weight tables and the locale
// tailorings from the Unicode data compiled into Go and golang.org/x/text.
//
// Code points without a decomposition are weighted directly: controls and
// unassigned code points are ignorable, nonspacing marks get a diacritic
// weight, and symbols, digits and letters get consecutive primary weights in
// their category regions. Decomposable code points take the weight of their
// base with the diacritic weights of their marks added, or become expansions.
package tablegen

import (
	"io"
	"sort"

	"github.com/golang/glog"
	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tailor"
	"github.com/nlsort/nls/locale"
)

// Result holds synthesized tables.
type Result struct {
	Weights *colltab.Tables
	Records []tailor.Record
}

// Build synthesizes the weight tables, the CJK orders of all locales that
// have one and the tailoring records.
func Build() (*Result, error) {
	g := newGenerator()
	if err := g.weights(); err != nil {
		return nil, err
	}
	cjk := locale.CJKTables()
	names := make([]string, 0, len(cjk))
	for name := range cjk {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g.b.AddCJK(name, cjkRanks(cjk[name]))
	}
	res := &Result{
		Weights: g.b.Tables(),
		Records: g.tailorings(),
	}
	glog.Infof("tablegen: %d weighted code points, %d expansions, %d CJK tables, %d tailorings",
		g.stats.weighted, g.stats.expansions, len(names), len(res.Records))
	return res, nil
}

// WriteWeights writes the weight tables in binary form.
func (r *Result) WriteWeights(w io.Writer) error {
	return colltab.Encode(w, r.Weights)
}

// WriteTailorings writes the tailoring resource.
func (r *Result) WriteTailorings(w io.Writer) error {
	return tailor.Encode(w, r.Records)
}
