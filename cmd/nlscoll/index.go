// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <text> <target>",
		Short: "print the byte offset of target in text, or -1",
		Long: "index prints the byte offset of the first match of target in text.\n" +
			"With --prefix or --suffix it prints whether text starts or ends with target.",
		Args: cobra.ExactArgs(2),
		RunE: a.runIndex,
	}
	fs := cmd.Flags()
	fs.Bool("last", false, "find the last match")
	fs.Bool("prefix", false, "report whether text starts with target")
	fs.Bool("suffix", false, "report whether text ends with target")
	fs.Int("start", 0, "byte offset of the search window")
	fs.Int("length", -1, "byte length of the search window; -1 extends it to the end of text")
	return cmd
}

func (a *app) runIndex(cmd *cobra.Command, args []string) error {
	c, err := a.collator()
	if err != nil {
		return err
	}
	opts, err := a.options()
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	last, _ := fs.GetBool("last")
	prefix, _ := fs.GetBool("prefix")
	suffix, _ := fs.GetBool("suffix")
	start, _ := fs.GetInt("start")
	length, _ := fs.GetInt("length")

	s, t := args[0], args[1]
	out := cmd.OutOrStdout()
	switch {
	case prefix && suffix:
		return errors.New("--prefix and --suffix are exclusive")
	case prefix:
		ok, err := c.IsPrefix(s, t, opts)
		if err == nil {
			fmt.Fprintln(out, ok)
		}
		return err
	case suffix:
		ok, err := c.IsSuffix(s, t, opts)
		if err == nil {
			fmt.Fprintln(out, ok)
		}
		return err
	}
	if length < 0 {
		length = len(s) - start
	}
	var i int
	if last {
		i, err = c.LastIndexOf(s, t, start, length, opts)
	} else {
		i, err = c.IndexOf(s, t, start, length, opts)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, i)
	return nil
}
