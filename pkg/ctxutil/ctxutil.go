// Package ctxutil carries request-scoped values (the authenticated actor and
// the request id) between the transport middleware and the services.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

type (
	actorKey     struct{}
	requestIDKey struct{}
)

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromCtx returns the actor stored by WithActor. A stored actor with a
// nil id or an unknown kind is treated as absent.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	if !ok || actor.ID == uuid.Nil || !actor.Kind.IsValid() {
		return domain.Actor{}, false
	}
	return actor, true
}

// Operator returns the actor only if it belongs to the platform collection.
// It fails with domain.ErrUnauthorized when no actor is present and
// domain.ErrForbidden for consumers.
func Operator(ctx context.Context) (domain.Actor, error) {
	actor, ok := ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.IsPlatform() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" when no id was stored.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
