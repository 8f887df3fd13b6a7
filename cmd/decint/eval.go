package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"decint/internal/calc"
	"decint/internal/config"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate one prefix expression",
		Long: `Evaluate one prefix expression. Arguments are joined with spaces,
so quoting is optional:

  decint eval + 1 2
  decint eval '/ * 42 1764 1764'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			phase := a.timer.Begin("eval")
			v, err := calc.Eval(cmd.Context(), expr)
			a.timer.End(phase, "")
			if err != nil {
				return a.report(cmd.ErrOrStderr(), "<arg>", 1, err)
			}

			out := cmd.OutOrStdout()
			if a.format == config.FormatText {
				_, err := fmt.Fprintln(out, v)
				return err
			}
			rec := calc.Result{Line: calc.Line{No: 1, Text: expr}, Value: v}.Record()
			return encode(out, a.format, rec)
		},
	}
}
