package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/contentflow-backend/internal/auth"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

type TokenCmd struct {
	env *env

	// flags
	id    string
	kind  string
	roles []string
}

// NewTokenCmd creates a new token command
func NewTokenCmd(e *env) *TokenCmd {
	return &TokenCmd{env: e}
}

// Register adds the token command to the application
func (cmd *TokenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "token",
		Usage:     "Mint an access token for local development",
		UsageText: "workflowctl token [--id ID] [--kind CONSUMER|PLATFORM] [--role ROLE]...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "id",
				Usage:       "actor id (random when empty)",
				Destination: &cmd.id,
			},
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "CONSUMER or PLATFORM",
				Value:       string(domain.ActorKindConsumer),
				Destination: &cmd.kind,
			},
			&cli.StringSliceFlag{
				Name:        "role",
				Usage:       "publishing role, repeatable",
				Destination: &cmd.roles,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *TokenCmd) run(_ context.Context, c *cli.Command) error {
	actor, err := cmd.actor()
	if err != nil {
		return err
	}

	cfg := cmd.env.cfg.Auth
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	tok, err := tokens.GenerateAccessToken(actor)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, tok)
	return nil
}

func (cmd *TokenCmd) actor() (domain.Actor, error) {
	actor := domain.Actor{
		ID:   uuid.New(),
		Kind: domain.ActorKind(strings.ToUpper(cmd.kind)),
	}
	if cmd.id != "" {
		id, err := uuid.Parse(cmd.id)
		if err != nil {
			return domain.Actor{}, fmt.Errorf("invalid --id: %w", err)
		}
		actor.ID = id
	}
	if !actor.Kind.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid --kind %q", cmd.kind)
	}
	for _, r := range cmd.roles {
		actor.Roles = append(actor.Roles, domain.Role(strings.ToUpper(r)))
	}
	return actor, nil
}
