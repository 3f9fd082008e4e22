package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/h0rv/widgets/internal/calc"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <tokens...>",
		Short: "Evaluate a key sequence with the calculator",
		Long: `Feed numbers and keys to the calculator and print what it displays.

Tokens are separated by spaces: numbers, + - * / (or x), = and c.
Evaluation is left to right, exactly as typed on the keypad:

  widgets calc 4 + 2 x 3 =     prints 18
  widgets calc 5 / 0 =         prints Error and exits with status 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display, err := evaluate(args)
			if display != "" {
				fmt.Fprintln(cmd.OutOrStdout(), display)
			}
			return err
		},
	}
}

// evaluate runs tokens through a fresh accumulator and returns its display.
// Quoted arguments such as "4 + 2" are split on whitespace.
func evaluate(args []string) (string, error) {
	cmds, err := calc.ParseTokens(strings.Fields(strings.Join(args, " ")))
	if err != nil {
		return "", err
	}

	acc := calc.New()
	for _, c := range cmds {
		acc.Apply(c)
	}

	if err := acc.Err(); err != nil {
		return acc.Display(), err
	}
	return acc.Display(), nil
}
