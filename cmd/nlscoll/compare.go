// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "print -1, 0 or 1 as a sorts before, with or after b",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runCompare,
	}
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	c, err := a.collator()
	if err != nil {
		return err
	}
	opts, err := a.options()
	if err != nil {
		return err
	}
	r, err := c.Compare(args[0], args[1], opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}

func (a *app) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [string...]",
		Short: "sort the arguments, or the lines of standard input",
		RunE:  a.runSort,
	}
}

func (a *app) runSort(cmd *cobra.Command, args []string) error {
	c, err := a.collator()
	if err != nil {
		return err
	}
	opts, err := a.options()
	if err != nil {
		return err
	}
	lines := args
	if len(lines) == 0 {
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if err := c.SortStrings(lines, opts); err != nil {
		return err
	}
	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return w.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}
