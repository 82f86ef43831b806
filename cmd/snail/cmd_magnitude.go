package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMagnitudeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "magnitude [file]",
		Short: "Print the magnitude of each number as written",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := readNumbers(inputPath(args))
			if err != nil {
				return err
			}
			for _, t := range trees {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", t.Magnitude(), t)
			}
			return nil
		},
	}
}
