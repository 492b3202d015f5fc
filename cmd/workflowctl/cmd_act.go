package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

type ActCmd struct {
	env *env

	// flags
	operator string
	process  string
	activity string
	action   string
	comment  string
	final    bool
}

// NewActCmd creates a new act command
func NewActCmd(e *env) *ActCmd {
	return &ActCmd{env: e}
}

// Register adds the act command to the application
func (cmd *ActCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "act",
		Usage:     "Apply an operator action to an activity",
		UsageText: "workflowctl act --operator ID --process ID --activity ID --action HOLD|CANCEL|APPROVE|REJECT [--comment TEXT] [--final]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "operator",
				Usage:       "platform operator id acting",
				Required:    true,
				Destination: &cmd.operator,
			},
			&cli.StringFlag{
				Name:        "process",
				Usage:       "process id",
				Required:    true,
				Destination: &cmd.process,
			},
			&cli.StringFlag{
				Name:        "activity",
				Usage:       "activity id within the process",
				Required:    true,
				Destination: &cmd.activity,
			},
			&cli.StringFlag{
				Name:        "action",
				Usage:       "HOLD, CANCEL, APPROVE or REJECT",
				Required:    true,
				Destination: &cmd.action,
			},
			&cli.StringFlag{
				Name:        "comment",
				Usage:       "decision comment",
				Destination: &cmd.comment,
			},
			&cli.BoolFlag{
				Name:        "final",
				Usage:       "close the process with this decision",
				Destination: &cmd.final,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ActCmd) run(ctx context.Context, c *cli.Command) error {
	input, op, err := cmd.input()
	if err != nil {
		return err
	}

	deps, err := cmd.env.deps(ctx)
	if err != nil {
		return err
	}

	ctx = ctxutil.WithActor(ctx, domain.Actor{ID: op, Kind: domain.ActorKindPlatform})
	res, err := deps.Workflow.ApplyOperatorAction(ctx, input)
	if err != nil {
		return fmt.Errorf("apply %s: %w", input.Action, err)
	}

	out := c.Root().Writer
	_, _ = fmt.Fprintf(out, "activity %s: %s\n", res.Activity.ID, res.Activity.State)
	_, _ = fmt.Fprintf(out, "process  %s: %s\n", res.Process.ID, res.Process.Status)
	if res.Content != nil {
		_, _ = fmt.Fprintf(out, "content  %s: %s\n", res.Content.ID, res.Content.Status)
	}
	if res.FollowUp != nil {
		_, _ = fmt.Fprintf(out, "next     %s: %s\n", res.FollowUp.ID, res.FollowUp.Action)
	}
	return nil
}

func (cmd *ActCmd) input() (workflow.OperatorActionInput, uuid.UUID, error) {
	op, err := uuid.Parse(cmd.operator)
	if err != nil {
		return workflow.OperatorActionInput{}, uuid.Nil, fmt.Errorf("invalid --operator: %w", err)
	}
	processID, err := uuid.Parse(cmd.process)
	if err != nil {
		return workflow.OperatorActionInput{}, uuid.Nil, fmt.Errorf("invalid --process: %w", err)
	}
	activityID, err := uuid.Parse(cmd.activity)
	if err != nil {
		return workflow.OperatorActionInput{}, uuid.Nil, fmt.Errorf("invalid --activity: %w", err)
	}

	input := workflow.OperatorActionInput{
		ProcessID:  processID,
		ActivityID: activityID,
		Action:     domain.ActivityAction(strings.ToUpper(cmd.action)),
		IsFinal:    cmd.final,
	}
	if cmd.comment != "" {
		comment := cmd.comment
		input.Comment = &comment
	}
	return input, op, nil
}
