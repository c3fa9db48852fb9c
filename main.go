// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errMissingWords makes lookup exit non-zero after it has printed its answers
var errMissingWords = errors.New("some words were not found")

const banner = `
 __        __            _ _
 \ \      / /__  _ __ __| | |_ _ __ ___  ___
  \ \ /\ / / _ \| '__/ _' | __| '__/ _ \/ _ \
   \ V  V / (_) | | | (_| | |_| | |  __/  __/
    \_/\_/ \___/|_|  \__,_|\__|_|  \___|\___|

Word frequencies in a binary search tree and an AVL tree, side by side [Version: %s%s%s]

Copyright @ Naren Yellavula
`

// cli carries the state shared by all subcommands once the root command has
// loaded the configuration.
type cli struct {
	configPath string
	config     *Config
}

func newRootCmd() *cobra.Command {
	app := &cli{}
	logo := func() string { return fmt.Sprintf(banner, Green, version, Reset) }

	rootCmd := &cobra.Command{
		Use:           "wordtree",
		Version:       version,
		Short:         "Compare a BST and an AVL tree on the words of a text file",
		Long:          logo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			InitializeColors(cmd.OutOrStdout())

			config, err := LoadConfig(app.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			app.config = config
			setupLogging(cmd.ErrOrStderr(), config.Log.Level)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "config file (default ~/.wordtree.yaml)")
	flags.String("log-level", defaultConfig.Log.Level, "log level: debug, info, warn or error")
	flags.String("strategy", defaultConfig.Tokens.Strategy, "token strategy: whitespace, shell or words")
	flags.String("case", defaultConfig.Tokens.Case, "case mode: upper, lower or preserve")
	flags.Bool("progress", defaultConfig.Ingest.Progress, "show a progress bar while reading the input")

	cmdCompare := &cobra.Command{
		Use:   "compare FILE",
		Short: "Print traversal and statistics tables for both trees",
		Long:  fmt.Sprintf("%s\n%s", logo(), "Compare reads FILE into a BST and an AVL tree and prints tables 1 to 6"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			traversal, err := ParseTraversal(cmd.Flag("traversal").Value.String())
			if err != nil {
				return err
			}
			copyReport, _ := cmd.Flags().GetBool("copy")
			return app.report(cmd, args[0], traversal, copyReport)
		},
	}
	cmdCompare.Flags().String("format", defaultConfig.Output.Format, "output format: plain, styled or markdown")
	cmdCompare.Flags().String("traversal", string(TraversalAll), "traversal tables: all, inorder, levelorder or none")
	cmdCompare.Flags().Bool("copy", false, "also copy the plain report to the clipboard")

	cmdStats := &cobra.Command{
		Use:   "stats FILE",
		Short: "Print node count, height and nodes accessed for both trees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.report(cmd, args[0], TraversalNone, false)
		},
	}
	cmdStats.Flags().String("format", defaultConfig.Output.Format, "output format: plain, styled or markdown")

	cmdLookup := &cobra.Command{
		Use:   "lookup FILE WORD...",
		Short: "Show frequency and depth of words in both trees",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.lookup(cmd, args[0], args[1:])
		},
	}

	cmdBrowse := &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse the words of FILE interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := ingestFile(args[0], app.config, app.config.Ingest.Progress)
			if err != nil {
				return err
			}
			tk, err := NewTokenizer(app.config)
			if err != nil {
				return err
			}
			return runBrowser(comp, NewLookupCache(), tk.Case)
		},
	}

	cmdSettings := &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), app.configPath, app.config)
		},
	}

	cmdUsage := &cobra.Command{
		Use:   "usage",
		Short: "Print wordtree usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo(), `Usage displays the wordtree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Print wordtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdCompare, cmdStats, cmdLookup, cmdBrowse, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func (app *cli) report(cmd *cobra.Command, path string, traversal Traversal, copyReport bool) error {
	format, err := ParseFormat(app.config.Output.Format)
	if err != nil {
		return err
	}
	comp, err := ingestFile(path, app.config, app.config.Ingest.Progress)
	if err != nil {
		return err
	}
	tables, err := buildReport(comp, traversal, true)
	if err != nil {
		return err
	}
	if err := renderReport(cmd.OutOrStdout(), tables, format, app.config.Output.WordWidth); err != nil {
		return err
	}
	if copyReport {
		if err := copyToClipboard(plainReport(tables, app.config.Output.WordWidth)); err != nil {
			log.Warn().Err(err).Msg("failed to copy report to clipboard")
		}
	}
	return nil
}

func (app *cli) lookup(cmd *cobra.Command, path string, words []string) error {
	tk, err := NewTokenizer(app.config)
	if err != nil {
		return err
	}
	comp, err := ingestFile(path, app.config, app.config.Ingest.Progress)
	if err != nil {
		return err
	}

	missing := 0
	for _, word := range words {
		result, err := comp.Lookup(tk.Case.Normalize(word))
		if err != nil {
			return err
		}
		if !result.Found {
			missing++
		}
		fmt.Fprintln(cmd.OutOrStdout(), paintLookup(result, describeLookup(result, comp.Kinds())))
	}
	if missing > 0 {
		return fmt.Errorf("%w: %d of %d", errMissingWords, missing, len(words))
	}
	return nil
}

func main() {
	setupLogging(os.Stderr, defaultConfig.Log.Level)

	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errMissingWords) {
			log.Error().Err(err).Msg("wordtree failed")
		}
		os.Exit(1)
	}
}
