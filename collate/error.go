// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import "strings"

// Code classifies the errors returned by this package.
type Code int

const (
	// InvalidArgument reports a malformed argument, such as a window that
	// does not fit its string.
	InvalidArgument Code = iota + 1
	// ResourceUnavailable reports that the collation tables could not be
	// loaded.
	ResourceUnavailable
	// UnsupportedOption reports an invalid combination of Options, or an
	// option the operation does not accept.
	UnsupportedOption
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case ResourceUnavailable:
		return "resource unavailable"
	case UnsupportedOption:
		return "unsupported option"
	}
	return "unknown error"
}

// Error is the error type returned by the collator.
type Error struct {
	Code Code
	Op   string
	Msg  string
	Err  error
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidArgument     = &Error{Code: InvalidArgument}
	ErrResourceUnavailable = &Error{Code: ResourceUnavailable}
	ErrUnsupportedOption   = &Error{Code: UnsupportedOption}
)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("collate: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Code.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Op == "" && t.Msg == "" && t.Err == nil
}

func errorf(code Code, op, msg string, err error) *Error {
	return &Error{Code: code, Op: op, Msg: msg, Err: err}
}
