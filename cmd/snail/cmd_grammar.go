package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/snail/snailfish/lex"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Snailfish grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarPrintCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (the built-in grammar by default)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "snailfish.ebnf"
			var grammar ebnf.Grammar
			var err error
			if len(args) > 0 {
				filename = args[0]
				grammar, err = lex.LoadGrammar(filename, startProduction)
			} else {
				grammar, err = lex.ParseGrammar(filename, bytes.NewReader(lex.Source()), startProduction)
			}

			out := cmd.OutOrStdout()
			if err != nil {
				printErrors(out, err)
				return err
			}

			fmt.Fprintf(out, "%s: %d productions, ok\n", filename, len(grammar))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", lex.Start, "start production for verification")

	return cmd
}

func newGrammarPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the built-in grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(lex.Source())
			return err
		},
	}
}

// printErrors prints one line per error of an ebnf error list, which may be
// wrapped.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if v := reflect.ValueOf(e); v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
