package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func routesCmd(g *globals, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List named routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.load(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}

			routes := s.registry.Routes()
			if len(routes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no routes configured)")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMETHOD\tPATTERN\tPARAMS")
			for _, r := range routes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Method, r.Pattern, strings.Join(r.Params(), ","))
			}
			return w.Flush()
		},
	}
}
