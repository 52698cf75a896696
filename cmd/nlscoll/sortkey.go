// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) sortKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortkey <string>...",
		Short: "print the sort key of each argument in hexadecimal",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runSortKey,
	}
	cmd.Flags().Bool("hash", false, "also print the 64-bit hash of each key")
	return cmd
}

func (a *app) runSortKey(cmd *cobra.Command, args []string) error {
	c, err := a.collator()
	if err != nil {
		return err
	}
	opts, err := a.options()
	if err != nil {
		return err
	}
	withHash, err := cmd.Flags().GetBool("hash")
	if err != nil {
		return err
	}
	for _, s := range args {
		k, err := c.GetSortKey(s, opts)
		if err != nil {
			return err
		}
		if withHash {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %016x\n", k, k.Hash())
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), k)
	}
	return nil
}
