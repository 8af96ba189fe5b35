package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-urlfor/pkg/helpers"
)

func staticCmd(g *globals, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "static PATH...",
		Short: "Print static asset URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.load(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			for _, path := range args {
				u, err := helpers.StaticURL(s.app, path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
