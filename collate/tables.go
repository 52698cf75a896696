// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bytes"
	"io"
	"sync"

	"github.com/golang/glog"
	"github.com/golang/snappy"
	"github.com/nlsort/nls/internal/colltab"
	"github.com/nlsort/nls/internal/tablegen"
	"github.com/nlsort/nls/internal/tailor"
)

// snappyMagic starts a snappy framed stream.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// Tables holds the weight tables and the tailorings of all locales. It is
// immutable and safe for concurrent use.
type Tables struct {
	weights *colltab.Tables
	tailor  *tailor.Cache
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// DefaultTables returns the tables synthesized from the Unicode data
// compiled into the program. They are built on first use.
func DefaultTables() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = buildTables()
		if defaultErr != nil {
			glog.Errorf("collate: building tables: %v", defaultErr)
		}
	})
	return defaultTables, defaultErr
}

func buildTables() (*Tables, error) {
	res, err := tablegen.Build()
	if err != nil {
		return nil, errorf(ResourceUnavailable, "DefaultTables", "", err)
	}
	var w, t bytes.Buffer
	if err := res.WriteWeights(&w); err != nil {
		return nil, errorf(ResourceUnavailable, "DefaultTables", "", err)
	}
	if err := res.WriteTailorings(&t); err != nil {
		return nil, errorf(ResourceUnavailable, "DefaultTables", "", err)
	}
	return NewTables(w.Bytes(), t.Bytes())
}

// LoadTables reads the weight tables and the tailoring resource, either of
// which may be compressed as a snappy framed stream.
func LoadTables(weights, tailorings io.Reader) (*Tables, error) {
	w, err := io.ReadAll(weights)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "LoadTables", "reading weights", err)
	}
	t, err := io.ReadAll(tailorings)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "LoadTables", "reading tailorings", err)
	}
	return NewTables(w, t)
}

// NewTables decodes the weight tables and the tailoring resource. The
// result references the decoded data.
func NewTables(weights, tailorings []byte) (*Tables, error) {
	w, err := decompress(weights)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "NewTables", "decompressing weights", err)
	}
	t, err := decompress(tailorings)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "NewTables", "decompressing tailorings", err)
	}
	wt, err := colltab.Load(w)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "NewTables", "", err)
	}
	res, err := tailor.Parse(t)
	if err != nil {
		return nil, errorf(ResourceUnavailable, "NewTables", "", err)
	}
	if err := res.Validate(); err != nil {
		return nil, errorf(ResourceUnavailable, "NewTables", "", err)
	}
	glog.V(1).Infof("collate: loaded %d bytes of weights, %d tailorings", len(w), len(res.LCIDs()))
	return &Tables{weights: wt, tailor: tailor.NewCache(res)}, nil
}

func decompress(b []byte) ([]byte, error) {
	if !bytes.HasPrefix(b, snappyMagic) {
		return b, nil
	}
	return io.ReadAll(snappy.NewReader(bytes.NewReader(b)))
}

// Ready reports whether t holds usable tables.
func (t *Tables) Ready() bool {
	return t != nil && t.weights.Ready() && t.tailor != nil
}

// LCIDs returns the locales for which t holds a tailoring.
func (t *Tables) LCIDs() []uint32 {
	if t == nil || t.tailor == nil {
		return nil
	}
	return t.tailor.Resource().LCIDs()
}

// WriteTo writes the tables in the form read by NewTables. When compress is
// set, both parts are written as snappy framed streams.
func (t *Tables) WriteTo(weights, tailorings io.Writer, compress bool) error {
	if !t.Ready() {
		return errorf(ResourceUnavailable, "WriteTo", "tables not loaded", nil)
	}
	res := t.tailor.Resource()
	var recs []tailor.Record
	for _, id := range res.LCIDs() {
		rec, ok, err := res.Record(id)
		if err != nil {
			return errorf(ResourceUnavailable, "WriteTo", "", err)
		}
		if ok {
			recs = append(recs, rec)
		}
	}
	write := func(w io.Writer, fn func(io.Writer) error) error {
		if !compress {
			return fn(w)
		}
		sw := snappy.NewBufferedWriter(w)
		if err := fn(sw); err != nil {
			return err
		}
		return sw.Close()
	}
	if err := write(weights, func(w io.Writer) error { return colltab.Encode(w, t.weights) }); err != nil {
		return err
	}
	return write(tailorings, func(w io.Writer) error { return tailor.Encode(w, recs) })
}
