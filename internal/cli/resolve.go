package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/router"
)

func resolveCmd(g *globals, deps Deps) *cobra.Command {
	var (
		query       []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "resolve NAME [key=value...]",
		Short: "Print the URL of a named route",
		Example: "  urlfor resolve item-details id=123 --query active=true\n" +
			"  urlfor resolve post --interactive",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.load(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}

			name := args[0]
			parts, err := parsePairs(args[1:], true)
			if err != nil {
				return err
			}
			q, err := parsePairs(query, false)
			if err != nil {
				return err
			}

			if interactive {
				route, ok := s.registry.Get(name)
				if !ok {
					return fmt.Errorf("%w: %q", router.ErrRouteNotFound, name)
				}
				if err := promptMissing(deps.Prompter, route, parts); err != nil {
					return err
				}
			}

			var queryArg any
			if len(q) > 0 {
				queryArg = q
			}
			u, err := helpers.URLFor(s.app, name, queryArg, parts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.String())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&query, "query", "q", nil, "query parameter key=value (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for missing route parameters")
	return cmd
}

// parsePairs splits key=value arguments. With numbers set, all-digit values
// become integers, matching what templates pass for numeric ids.
func parsePairs(args []string, numbers bool) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("cli: expected key=value, got %q", arg)
		}
		if numbers {
			if n, err := strconv.Atoi(value); err == nil && strconv.Itoa(n) == value {
				out[key] = n
				continue
			}
		}
		out[key] = value
	}
	return out, nil
}

func promptMissing(p Prompter, route *router.Route, parts map[string]any) error {
	for _, param := range route.Params() {
		if _, ok := parts[param]; ok {
			continue
		}
		if param == router.CatchAll {
			continue
		}
		value, err := p.Input(fmt.Sprintf("%s {%s}:", route.Name, param))
		if err != nil {
			return fmt.Errorf("cli: prompt %s: %w", param, err)
		}
		parts[param] = value
	}
	return nil
}
