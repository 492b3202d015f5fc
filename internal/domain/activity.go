package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one reviewer-facing unit of work within an approval process.
// Activities are never deleted; they form the audit trail of a review.
type Activity struct {
	ID             uuid.UUID
	Creator        Ref
	Target         Target
	Action         ActivityAction
	InitStatus     ContentStatus
	State          ActivityState
	Handler        *Ref
	ProcessedAt    *time.Time
	AssignedStatus *ContentStatus
	Comment        *string
	ExpireAt       *time.Time
	CreatedAt      time.Time
}

// ActivitySpec describes an activity to be created.
type ActivitySpec struct {
	Creator    Ref
	Target     Target
	Action     ActivityAction
	InitStatus ContentStatus
	ExpireAt   *time.Time
}

// NewActivity builds a READY activity with no handler.
func NewActivity(spec ActivitySpec, now time.Time) Activity {
	return Activity{
		ID:         uuid.New(),
		Creator:    spec.Creator,
		Target:     spec.Target,
		Action:     spec.Action,
		InitStatus: spec.InitStatus,
		State:      ActivityStateReady,
		ExpireAt:   spec.ExpireAt,
		CreatedAt:  now,
	}
}

// CanClaim checks READY -> PROCESSING.
func (a *Activity) CanClaim() error {
	if a.State != ActivityStateReady {
		return ErrActivityLocked
	}
	return nil
}

// CanRelease checks PROCESSING -> READY.
func (a *Activity) CanRelease() error {
	if a.State != ActivityStateProcessing {
		return ErrActivityInvalidTransition
	}
	return nil
}

// CanResolve checks READY|PROCESSING -> COMPLETED for operator op.
// A PROCESSING activity can only be resolved by the operator who claimed it.
func (a *Activity) CanResolve(op Ref) error {
	switch a.State {
	case ActivityStateReady:
		return nil
	case ActivityStateProcessing:
		if a.Handler != nil && *a.Handler == op {
			return nil
		}
		return ErrActivityLocked
	}
	return ErrActivityInvalidTransition
}

// Claim moves a READY activity to PROCESSING under op.
func (a *Activity) Claim(op Ref, now time.Time) error {
	if err := a.CanClaim(); err != nil {
		return err
	}
	a.State = ActivityStateProcessing
	a.Handler = &op
	a.ProcessedAt = &now
	return nil
}

// Release returns a PROCESSING activity to READY and clears its handler.
func (a *Activity) Release() error {
	if err := a.CanRelease(); err != nil {
		return err
	}
	a.State = ActivityStateReady
	a.Handler = nil
	a.ProcessedAt = nil
	return nil
}

// Resolve completes the activity with an operator decision.
func (a *Activity) Resolve(op Ref, decision ContentStatus, comment *string, now time.Time) error {
	if !decision.IsDecision() {
		return NewValidationError("decision", "must be APPROVED or REJECTED")
	}
	if err := a.CanResolve(op); err != nil {
		return err
	}
	a.State = ActivityStateCompleted
	a.Handler = &op
	a.ProcessedAt = &now
	a.AssignedStatus = &decision
	a.Comment = comment
	return nil
}

// IsCompleted reports whether the activity reached its terminal state.
func (a *Activity) IsCompleted() bool {
	return a.State == ActivityStateCompleted
}

// IsExpired reports whether the advisory deadline has passed.
func (a *Activity) IsExpired(now time.Time) bool {
	return a.ExpireAt != nil && a.ExpireAt.Before(now) && !a.IsCompleted()
}
