package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
)

type ExpiredCmd struct {
	env *env

	// flags
	limit      int
	jsonOutput bool
}

// NewExpiredCmd creates a new expired command
func NewExpiredCmd(e *env) *ExpiredCmd {
	return &ExpiredCmd{env: e}
}

// Register adds the expired command to the application
func (cmd *ExpiredCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "expired",
		Usage:     "Report activities and processes past their deadline",
		UsageText: "workflowctl expired [--limit N] [--json]",
		Description: `Lists READY or PROCESSING activities and PENDING processes whose expireAt
has passed. Deadlines are advisory: nothing is transitioned.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "maximum rows per section",
				Value:       50,
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExpiredCmd) run(ctx context.Context, c *cli.Command) error {
	deps, err := cmd.env.deps(ctx)
	if err != nil {
		return err
	}

	report, err := deps.Workflow.ReportExpired(ctx, cmd.limit)
	if err != nil {
		return fmt.Errorf("report expired: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	writeExpired(out, report)
	return nil
}

func writeExpired(out io.Writer, report workflow.ExpiredReport) {
	_, _ = fmt.Fprintf(out, "as of %s\n\n", report.At.Format(time.RFC3339))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ACTIVITY\tACTION\tSTATE\tTARGET\tEXPIRED")
	for _, a := range report.Activities {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s/%s\t%s\n",
			a.ID, a.Action, a.State, a.Target.Type, a.Target.ID, formatDeadline(a.ExpireAt))
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PROCESS\tSTATUS\tTARGET\tACTIVITIES\tEXPIRED")
	for _, p := range report.Processes {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s/%s\t%d\t%s\n",
			p.ID, p.Status, p.Target.Type, p.Target.ID, len(p.ActivityIDs), formatDeadline(p.ExpireAt))
	}
	_ = w.Flush()
}

func formatDeadline(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
