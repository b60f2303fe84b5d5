// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelbar/main.go
// Summary: texelbar command: a panel per virtual screen on a terminal desktop.
// Usage: Run `texelbar --screens 2`; `texelbar widgets` lists widget kinds.

package main

import (
	"fmt"
	"os"

	"github.com/framegrace/texelbar/config"
	"github.com/framegrace/texelbar/registry"
	"github.com/spf13/cobra"

	// Built-in widget kinds register themselves at init time.
	_ "github.com/framegrace/texelbar/widgets/clock"
	_ "github.com/framegrace/texelbar/widgets/launcher"
	_ "github.com/framegrace/texelbar/widgets/linegraph"
	_ "github.com/framegrace/texelbar/widgets/text"
)

var (
	version = "0.1.0"

	configDirFlag string
	logFileFlag   string
	screensFlag   int
	verboseFlag   bool

	rootCmd = &cobra.Command{
		Use:           "texelbar",
		Short:         "texelbar - a panel of widgets on every screen of a terminal desktop",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDirFlag != "" {
				config.SetRoot(configDirFlag)
			}
			closeLog, err := setupLogging(logFileFlag, verboseFlag)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			defer closeLog()

			return run(runOptions{
				Screens: screensFlag,
				Verbose: verboseFlag,
			})
		},
	}

	widgetsCmd = &cobra.Command{
		Use:   "widgets",
		Short: "List the widget kinds available in the configuration",
		Run: func(cmd *cobra.Command, args []string) {
			reg := registry.New()
			registry.RegisterBuiltIns(reg)
			out := cmd.OutOrStdout()
			for _, m := range reg.Kinds() {
				fmt.Fprintf(out, "%-12s %s\n", m.Kind, m.Description)
			}
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of texelbar",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texelbar version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&configDirFlag, "config-dir", "",
		"Directory holding texelbar.json (default: user config dir/texelbar)")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "",
		"Append logs to this file (default: config dir/logs/texelbar.log when attached to a terminal)")
	rootCmd.Flags().IntVarP(&screensFlag, "screens", "s", 0,
		"Number of virtual screens; overrides the screens.count setting")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Log every event handed to the bar")

	rootCmd.AddCommand(widgetsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
