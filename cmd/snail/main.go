package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("snail")

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "snail [file]",
		Short: "Add and reduce snailfish numbers",
		Long: `snail reads snailfish numbers, one per line, and reports the largest
magnitude reachable by adding any two different lines.

With no file, ` + defaultInput + ` is read.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMax(cmd, inputPath(args))
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (repeat for debug output)")

	rootCmd.AddCommand(newMaxCmd())
	rootCmd.AddCommand(newSumCmd())
	rootCmd.AddCommand(newMagnitudeCmd())
	rootCmd.AddCommand(newReduceCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
