package main

import (
	"fmt"

	"github.com/dhamidi/snail/format"
	"github.com/dhamidi/snail/snailfish"
	"github.com/spf13/cobra"
)

func newSumCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "sum [file]",
		Short: "Add every number in order and print the total and its magnitude",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(args)
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			trees, err := readNumbers(path)
			if err != nil {
				return err
			}
			total, err := snailfish.Sum(trees)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := enc.Encode(total); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
