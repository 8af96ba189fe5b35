package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-urlfor/internal/logging"
	"github.com/goliatone/go-urlfor/pkg/config"
	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/router"
)

// Execute runs the urlfor command line.
func Execute() {
	if err := NewRootCmd(Deps{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// Deps are the collaborators commands use. Zero values get defaults.
type Deps struct {
	Prompter Prompter
	Env      func(string) (string, bool)
}

type globals struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Prompter == nil {
		deps.Prompter = surveyPrompter{}
	}
	if deps.Env == nil {
		deps.Env = os.LookupEnv
	}
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "urlfor",
		Short:        "Resolve named routes and static asset URLs",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "urlfor.yaml", "config file (yaml or toml)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (overrides config)")

	cmd.AddCommand(routesCmd(g, deps))
	cmd.AddCommand(resolveCmd(g, deps))
	cmd.AddCommand(staticCmd(g, deps))
	return cmd
}

// session is the loaded state shared by subcommands.
type session struct {
	cfg      *config.Config
	registry *router.Registry
	app      *helpers.App
	logger   zerolog.Logger
}

func (g *globals) load(ctx context.Context, cmd *cobra.Command, deps Deps) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(deps.Env)

	level := cfg.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	logger := logging.WithComponent(logging.New(logging.Config{
		Level:   level,
		Output:  cmd.ErrOrStderr(),
		Console: true,
		Service: "urlfor",
	}), "cli")

	reg, err := cfg.BuildRegistry(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("config", g.configPath).Int("routes", len(reg.Names())).Msg("config loaded")

	app, err := helpers.NewApp(reg, cfg, helpers.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	return &session{cfg: cfg, registry: reg, app: app, logger: logger}, nil
}
