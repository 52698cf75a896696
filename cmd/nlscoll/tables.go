// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/glog"
	"github.com/nlsort/nls/collate"
	"github.com/nlsort/nls/internal/gen"
	"github.com/nlsort/nls/locale"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) tablesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "build and verify collation table files",
	}
	build := &cobra.Command{
		Use:   "build <dir>",
		Short: "write the tables to " + weightsFile + " and " + tailoringsFile + " in dir",
		Long: "build writes the configured tables, by default the built-in ones, to dir.\n" +
			"With --go it also writes them as Go source.",
		Args: cobra.ExactArgs(1),
		RunE: a.runTablesBuild,
	}
	build.Flags().Bool("compress", true, "write snappy compressed files")
	build.Flags().String("go", "", "also write the tables as Go source to this file")
	build.Flags().String("package", "tables", "package name of the Go source")

	verify := &cobra.Command{
		Use:   "verify <dir>",
		Short: "check that the tables in dir load and serve every locale",
		Args:  cobra.ExactArgs(1),
		RunE:  runTablesVerify,
	}
	cmd.AddCommand(build, verify)
	return cmd
}

func (a *app) runTablesBuild(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	compress, _ := fs.GetBool("compress")
	goFile, _ := fs.GetString("go")
	pkg, _ := fs.GetString("package")

	tb, err := a.tables()
	if err != nil {
		return err
	}
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var w, t bytes.Buffer
	if err := tb.WriteTo(&w, &t, compress); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{weightsFile, w.Bytes()},
		{tailoringsFile, t.Bytes()},
	} {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return err
		}
		glog.Infof("nlscoll: wrote %s (%d bytes)", path, len(f.data))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes of weights and %d bytes of tailorings to %s\n", w.Len(), t.Len(), dir)
	if goFile == "" {
		return nil
	}
	return writeGoTables(tb, goFile, pkg)
}

// writeGoTables writes the uncompressed tables as string constants of a Go
// source file.
func writeGoTables(tb *collate.Tables, path, pkg string) error {
	var w, t bytes.Buffer
	if err := tb.WriteTo(&w, &t, false); err != nil {
		return err
	}
	cw := gen.NewCodeWriter()
	cw.WriteComment("weightsBlob holds the weight tables in the form read by collate.NewTables.")
	cw.WriteConst("weightsBlob", w.String())
	cw.WriteComment("tailoringsBlob holds the tailorings of all locales.")
	cw.WriteConst("tailoringsBlob", t.String())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cw.WriteGoFile(f, pkg); err != nil {
		f.Close()
		return err
	}
	glog.Infof("nlscoll: wrote %s (%d bytes of tables)", path, cw.Size)
	return f.Close()
}

func runTablesVerify(cmd *cobra.Command, args []string) error {
	tb, err := loadTables(args[0])
	if err != nil {
		return err
	}
	locales := locale.Supported()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, info := range locales {
		info := info
		g.Go(func() error {
			c, err := collate.NewFromTables(tb, info.Tag)
			if err != nil {
				return fmt.Errorf("%v: %w", info.Tag, err)
			}
			if r, err := c.Compare("a", "b", collate.None); err != nil || r != -1 {
				return fmt.Errorf("%v: a does not sort before b (%d, %v)", info.Tag, r, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d locales, %d tailorings\n", len(locales), len(tb.LCIDs()))
	return nil
}
