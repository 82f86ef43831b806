package main

import (
	"fmt"

	"github.com/dhamidi/snail/format"
	"github.com/dhamidi/snail/snailfish"
	"github.com/spf13/cobra"
)

func newReduceCmd() *cobra.Command {
	var outputFormat string
	var trace bool

	cmd := &cobra.Command{
		Use:   "reduce <number> [<number>...]",
		Short: "Add the given numbers left to right and print the reduced result",
		Example: `  snail reduce '[[[[4,3],4],4],[7,[[8,4],9]]]' '[1,1]' --trace
  snail reduce '[[[[[9,8],1],2],3],4]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			trees := make([]*snailfish.Tree, len(args))
			for i, arg := range args {
				t, err := snailfish.Parse(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				trees[i] = t
			}

			var tracer *format.Tracer
			var opts []snailfish.ReduceOption
			if trace {
				tracer = format.NewTracer(cmd.OutOrStdout())
				opts = append(opts, snailfish.WithObserver(tracer.Observe))
			}

			total := trees[0]
			if tracer != nil {
				if err := tracer.Start(total); err != nil {
					return err
				}
			}
			total.Reduce(opts...)
			for _, t := range trees[1:] {
				total = snailfish.Join(total, t)
				if tracer != nil {
					if err := tracer.Start(total); err != nil {
						return err
					}
				}
				total.Reduce(opts...)
			}
			if tracer != nil {
				log.Debugf("final addition took %d steps", tracer.Steps())
			}

			if err := enc.Encode(total); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every explode and split")

	return cmd
}
