package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// Named constraints whose violation has a precise workflow meaning.
var constraintErrors = map[string]error{
	"ck_activities_handler":  domain.ErrActivityInvalidTransition,
	"ck_activities_assigned": domain.ErrActivityInvalidTransition,
	"ck_processes_completed": domain.ErrProcessClosed,
	"ux_processes_pending":   domain.ErrConflict,
}

// SQLSTATE codes mapped onto domain sentinels when no constraint matched.
var codeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError translates a pgx error on entity id into a domain error, keeping
// the entity and id in the message. Context errors and unknown database
// errors are wrapped unchanged.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	wrap := func(target error) error {
		return fmt.Errorf("%s %s: %w", entity, id, target)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wrap(err)
	case errors.Is(err, pgx.ErrNoRows):
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return wrap(err)
	}
	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return fmt.Errorf("%s %s: %s: %w", entity, id, pgErr.ConstraintName, mapped)
	}
	if mapped, ok := codeErrors[pgErr.Code]; ok {
		return wrap(mapped)
	}
	return wrap(err)
}
