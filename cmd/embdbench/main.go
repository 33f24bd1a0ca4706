// ═══════════════════════════════════════════════════════════════════════════════════════════════
// embdbench: soak tester for the atomic cell and spinlock
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
//	embdbench run     race contenders on a Spinlock or a cell, print and store the report
//	embdbench history print stored reports, newest first
//
// Reports are JSON on stdout; diagnostics go to stderr through debug.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"embd/constants"
	"embd/debug"
)

var (
	dbPath  string
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "embdbench",
		Short:         "Soak-test the atomic cell and spinlock",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				debug.SetLevel(debug.LevelVerbose)
			} else {
				debug.SetLevel(debug.LevelWarn)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", constants.DefaultDBPath, "run history database; empty disables storage")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.AddCommand(runCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		debug.DropError("embdbench", err)
		os.Exit(1)
	}
}
