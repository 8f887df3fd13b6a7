package main

import (
	"github.com/spf13/cobra"

	"decint/internal/config"
	"decint/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.format == config.FormatText {
				return version.Pretty(cmd.OutOrStdout(), a.color)
			}
			return encode(cmd.OutOrStdout(), a.format, version.Current())
		},
	}
}
