// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/nlsort/nls/unicode/norm"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
)

func (a *app) normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [string...]",
		Short: "normalize the arguments, or standard input, to a Unicode normalization form",
		RunE:  runNormalize,
	}
	cmd.Flags().StringP("form", "f", "NFC", "normalization form: NFC, NFD, NFKC or NFKD")
	cmd.Flags().Bool("check", false, "only report whether the input is normalized")
	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("form")
	check, _ := cmd.Flags().GetBool("check")
	f, err := norm.ParseForm(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if check {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, f.IsNormal(b))
			return nil
		}
		_, err := io.Copy(out, transform.NewReader(cmd.InOrStdin(), f))
		return err
	}
	for _, s := range args {
		if check {
			fmt.Fprintln(out, f.IsNormalString(s))
			continue
		}
		fmt.Fprintln(out, f.String(s))
	}
	return nil
}
