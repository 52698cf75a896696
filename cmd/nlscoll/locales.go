// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nlsort/nls/locale"
	"github.com/spf13/cobra"
)

func (a *app) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "list the supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tLCID\tIDEOGRAPHS")
			for _, info := range locale.Supported() {
				cjk := info.CJK
				if cjk == "" {
					cjk = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Tag, info.LCID, cjk)
			}
			return w.Flush()
		},
	}
}
