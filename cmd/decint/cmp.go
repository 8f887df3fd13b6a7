package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decint/internal/bignum"
	"decint/internal/config"
)

type cmpPayload struct {
	A        bignum.BigInt `json:"a"`
	B        bignum.BigInt `json:"b"`
	Ordering string        `json:"ordering"`
	Cmp      int           `json:"cmp"`
}

func newCmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp A B",
		Short: "Compare two integers, printing <, = or >",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var operands [2]bignum.BigInt
			for i, s := range args {
				v, err := bignum.Parse(s)
				if err != nil {
					return a.report(cmd.ErrOrStderr(), "<arg>", i+1, err)
				}
				operands[i] = v
			}

			ord := bignum.Compare(operands[0], operands[1])
			out := cmd.OutOrStdout()
			if a.format == config.FormatText {
				_, err := fmt.Fprintln(out, ord)
				return err
			}
			return encode(out, a.format, cmpPayload{
				A:        operands[0],
				B:        operands[1],
				Ordering: ord.String(),
				Cmp:      int(ord),
			})
		},
	}
}
