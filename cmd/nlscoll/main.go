// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Nlscoll compares, sorts and searches text the way the Windows linguistic
// comparison does, and builds the binary tables the collator loads.
//
// Usage:
//
//	nlscoll [flags] <command> [arguments]
//
// The locale, the comparison options and the table directory are taken from
// the --locale, --options and --tables flags, from the NLSCOLL_LOCALE,
// NLSCOLL_OPTIONS and NLSCOLL_TABLES environment variables, or from the file
// named by --config, in that order of precedence.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
