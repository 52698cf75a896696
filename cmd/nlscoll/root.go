// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/nlsort/nls/collate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Names of the table files in a table directory.
const (
	weightsFile    = "weights.bin"
	tailoringsFile = "tailorings.bin"
)

// An app holds the configuration shared by all commands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:               "nlscoll",
		Short:             "nlscoll compares and searches text with locale-aware collation.",
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		PersistentPostRun: func(*cobra.Command, []string) { glog.Flush() },
	}
	fs := root.PersistentFlags()
	fs.String("config", "", "configuration file (yaml, json or toml)")
	fs.StringP("locale", "l", "und", "BCP 47 tag of the locale")
	fs.StringP("options", "o", "None", "comparison options, separated by '|' or ','")
	fs.String("tables", "", "directory holding "+weightsFile+" and "+tailoringsFile+"; the built-in tables are used if empty")
	fs.AddGoFlagSet(flag.CommandLine)

	bindFlags(a.v, fs, "locale", "options", "tables")
	a.v.SetEnvPrefix("NLSCOLL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.compareCmd(),
		a.sortKeyCmd(),
		a.sortCmd(),
		a.indexCmd(),
		a.normalizeCmd(),
		a.localesCmd(),
		a.tablesCmd(),
	)
	return root
}

// bindFlags makes the flags named by keys the sources of the viper keys of
// the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

func (a *app) preRun(cmd *cobra.Command, args []string) error {
	cfg, err := cmd.Flags().GetString("config")
	if err != nil || cfg == "" {
		return err
	}
	a.v.SetConfigFile(cfg)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", cfg, err)
	}
	glog.V(1).Infof("nlscoll: using config %s", a.v.ConfigFileUsed())
	return nil
}

// options returns the configured comparison options.
func (a *app) options() (collate.Options, error) {
	return collate.ParseOptions(a.v.GetString("options"))
}

// tables returns the configured tables.
func (a *app) tables() (*collate.Tables, error) {
	if dir := a.v.GetString("tables"); dir != "" {
		return loadTables(dir)
	}
	return collate.DefaultTables()
}

// collator returns a collator for the configured locale and tables.
func (a *app) collator() (*collate.Collator, error) {
	tag, err := language.Parse(a.v.GetString("locale"))
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	tb, err := a.tables()
	if err != nil {
		return nil, err
	}
	return collate.NewFromTables(tb, tag)
}

// loadTables reads the table files in dir.
func loadTables(dir string) (*collate.Tables, error) {
	w, err := os.Open(filepath.Join(dir, weightsFile))
	if err != nil {
		return nil, err
	}
	defer w.Close()
	t, err := os.Open(filepath.Join(dir, tailoringsFile))
	if err != nil {
		return nil, err
	}
	defer t.Close()
	tb, err := collate.LoadTables(w, t)
	if err != nil {
		glog.Errorf("nlscoll: loading tables from %s: %v", dir, err)
		return nil, err
	}
	return tb, nil
}
