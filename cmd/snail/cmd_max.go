package main

import (
	"fmt"

	"github.com/dhamidi/snail/snailfish"
	"github.com/spf13/cobra"
)

func newMaxCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "max [file]",
		Short: "Print the largest magnitude of the sum of any two different numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if explain {
				return runMaxExplain(cmd, inputPath(args))
			}
			return runMax(cmd, inputPath(args))
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "also print the two numbers and their sum")

	return cmd
}

func runMax(cmd *cobra.Command, path string) error {
	trees, err := readNumbers(path)
	if err != nil {
		return err
	}
	best, err := snailfish.MaxMagnitude(trees)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), best.Magnitude)
	return nil
}

func runMaxExplain(cmd *cobra.Command, path string) error {
	trees, err := readNumbers(path)
	if err != nil {
		return err
	}
	best, err := snailfish.MaxMagnitude(trees)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a, b := trees[best.Left], trees[best.Right]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %s (line %d)\n", a, best.Left+1)
	fmt.Fprintf(out, "+ %s (line %d)\n", b, best.Right+1)
	fmt.Fprintf(out, "= %s\n", snailfish.Add(a.Clone(), b.Clone()))
	fmt.Fprintln(out, best.Magnitude)
	return nil
}
