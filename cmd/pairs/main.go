package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bagdasarian/employees-pair/internal/logger"
)

var log zerolog.Logger

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pairs",
		Short: "Find the pair of employees who worked together the longest",
		Long: `pairs reads a CSV of project assignments (EmpID, ProjectID, DateFrom, DateTo)
and reports every common project of the pair with the longest shared streak.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			log = logger.New(level, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newAnalyzeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
