// Command workflowctl is the operator console for the review workflow. It
// reports expired work, applies operator actions without the HTTP API and
// mints development tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentflow-backend/internal/app"
	"github.com/heartmarshall/contentflow-backend/internal/config"
)

// env holds state shared by subcommands. The database pool is opened on
// first use so that commands like token work without one.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	pool       *pgxpool.Pool
}

func (e *env) deps(ctx context.Context) (app.RouterDeps, error) {
	if e.pool == nil {
		pool, err := postgres.NewPool(ctx, e.cfg.Database)
		if err != nil {
			return app.RouterDeps{}, err
		}
		e.pool = pool
	}
	return app.Wire(e.logger, e.cfg, e.pool, nil)
}

func main() {
	e := &env{}

	root := &cli.Command{
		Name:      "workflowctl",
		Usage:     "Inspect and drive content review processes",
		UsageText: "workflowctl command [command options]",
		Version:   app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to the YAML configuration file",
				Sources:     cli.EnvVars("CONFIG_PATH"),
				Destination: &e.configPath,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			cfg, err := config.LoadFile(e.configPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return ctx, nil
		},
		After: func(_ context.Context, _ *cli.Command) error {
			if e.pool != nil {
				e.pool.Close()
			}
			return nil
		},
	}

	NewExpiredCmd(e).Register(root)
	NewActCmd(e).Register(root)
	NewTokenCmd(e).Register(root)

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "workflowctl: %v\n", err)
		os.Exit(1)
	}
}
