// Command migrate applies and inspects the embedded goose migrations.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres"
)

func main() {
	var (
		dsn      string
		timeout  time.Duration
		migrator *postgres.Migrator
		db       *sql.DB
		cancel   context.CancelFunc = func() {}
	)

	root := &cli.Command{
		Name:  "migrate",
		Usage: "Manage the contentflow database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dsn",
				Usage:       "PostgreSQL connection string",
				Sources:     cli.EnvVars("DATABASE_DSN"),
				Required:    true,
				Destination: &dsn,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "abort after this long",
				Value:       5 * time.Minute,
				Destination: &timeout,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			var err error
			if db, err = sql.Open("pgx", dsn); err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}
			if migrator, err = postgres.NewMigrator(db); err != nil {
				return ctx, err
			}
			ctx, cancel = context.WithTimeout(ctx, timeout)
			return ctx, nil
		},
		After: func(context.Context, *cli.Command) error {
			cancel()
			if db != nil {
				return db.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					results, err := migrator.Up(ctx)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					writeResults(cmd.Root().Writer, results)
					return nil
				},
			},
			{
				Name:  "down",
				Usage: "roll back the latest migration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					r, err := migrator.Down(ctx)
					if err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					fmt.Fprintf(cmd.Root().Writer, "rolled back %s\n", r.Source.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "list migrations and whether each is applied",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					statuses, err := migrator.Status(ctx)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					return writeStatus(cmd.Root().Writer, statuses)
				},
			},
			{
				Name:  "version",
				Usage: "print the applied and newest schema version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					current, latest, err := migrator.SchemaVersion(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "applied %d, latest %d\n", current, latest)
					return nil
				},
			},
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func writeResults(w io.Writer, results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no migrations to apply")
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "applied %s (%s)\n", r.Source.Path, r.Duration)
	}
}

func writeStatus(w io.Writer, statuses []*goose.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
