package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Role names a publishing right granted to an actor.
type Role string

const (
	RolePostSelfPublish    Role = "POST_SELF_PUBLISH"
	RolePublicEventPublish Role = "PUBLIC_EVENT_PUBLISH"
)

func (r Role) String() string { return string(r) }

// Actor is the authenticated caller: a consumer submitting content or a
// platform operator reviewing it.
type Actor struct {
	ID    uuid.UUID
	Kind  ActorKind
	Roles []Role
}

// HasRole reports whether the actor holds role r.
func (a Actor) HasRole(r Role) bool {
	return slices.Contains(a.Roles, r)
}

// IsPlatform reports whether the actor is a platform operator.
func (a Actor) IsPlatform() bool {
	return a.Kind == ActorKindPlatform
}

// Ref is a typed reference to a record owned by another collection.
type Ref struct {
	ID   uuid.UUID
	Kind ActorKind
}

// Ref returns the actor as a creator/handler reference.
func (a Actor) Ref() Ref {
	return Ref{ID: a.ID, Kind: a.Kind}
}
