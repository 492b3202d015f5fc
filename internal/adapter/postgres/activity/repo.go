// Package activity implements the Activity repository using PostgreSQL.
// State transitions are conditional UPDATEs keyed on the current state, so
// concurrent operators racing on one row see exactly one winner.
package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/contentflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const columns = `id, creator_id, creator_kind, target_id, target_type, action, init_status, state,
	handler_id, handler_kind, processed_at, assigned_status, comment, expire_at, created_at`

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + columns + ` FROM activities WHERE id = $1`

// GetByID returns an activity by primary key.
// Returns domain.ErrActivityNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(q.QueryRow(ctx, getByIDSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Activity{}, fmt.Errorf("activity %s: %w", id, domain.ErrActivityNotFound)
	}
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

// GetByIDs returns the activities with the given ids in arbitrary order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Activity, error) {
	if len(ids) == 0 {
		return []domain.Activity{}, nil
	}

	sql, args, err := postgres.Build(postgres.Builder.
		Select(columns).
		From("activities").
		Where(squirrel.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}

	return r.query(ctx, sql, args...)
}

// ListExpired returns non-completed activities whose advisory deadline
// passed before now, oldest deadline first.
func (r *Repo) ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error) {
	b := postgres.Builder.
		Select(columns).
		From("activities").
		Where(squirrel.NotEq{"state": string(domain.ActivityStateCompleted)}).
		Where(squirrel.Lt{"expire_at": now}).
		OrderBy("expire_at ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := postgres.Build(b)
	if err != nil {
		return nil, err
	}

	return r.query(ctx, sql, args...)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO activities (id, creator_id, creator_kind, target_id, target_type, action, init_status, state, expire_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + columns

// Create inserts a READY activity and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		a.ID, a.Creator.ID, string(a.Creator.Kind), a.Target.ID, string(a.Target.Type),
		string(a.Action), string(a.InitStatus), string(domain.ActivityStateReady), a.ExpireAt, a.CreatedAt,
	)

	created, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.ID)
	}
	return created, nil
}

const claimSQL = `
UPDATE activities
SET state = 'PROCESSING', handler_id = $2, handler_kind = $3, processed_at = $4
WHERE id = $1 AND state = 'READY'
RETURNING ` + columns

// Claim moves a READY activity to PROCESSING under op.
// Returns domain.ErrActivityLocked when the activity is not READY.
func (r *Repo) Claim(ctx context.Context, id uuid.UUID, op domain.Ref, now time.Time) (domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(q.QueryRow(ctx, claimSQL, id, op.ID, string(op.Kind), now))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Activity{}, r.explainMiss(ctx, id, func(cur *domain.Activity) error { return cur.CanClaim() })
	}
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

const releaseSQL = `
UPDATE activities
SET state = 'READY', handler_id = NULL, handler_kind = NULL, processed_at = NULL
WHERE id = $1 AND state = 'PROCESSING'
RETURNING ` + columns

// Release returns a PROCESSING activity to READY.
// Returns domain.ErrActivityInvalidTransition when the activity is not PROCESSING.
func (r *Repo) Release(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(q.QueryRow(ctx, releaseSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Activity{}, r.explainMiss(ctx, id, func(cur *domain.Activity) error { return cur.CanRelease() })
	}
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

const resolveSQL = `
UPDATE activities
SET state = 'COMPLETED', handler_id = $2, handler_kind = $3, processed_at = $4,
    assigned_status = $5, comment = $6
WHERE id = $1
  AND (state = 'READY' OR (state = 'PROCESSING' AND handler_id = $2 AND handler_kind = $3))
RETURNING ` + columns

// Resolve completes an activity with decision. A READY activity may be
// claimed and resolved in one step; a PROCESSING one only by its handler.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, op domain.Ref, decision domain.ContentStatus, comment *string, now time.Time) (domain.Activity, error) {
	if !decision.IsDecision() {
		return domain.Activity{}, domain.NewValidationError("decision", "must be APPROVED or REJECTED")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(q.QueryRow(ctx, resolveSQL, id, op.ID, string(op.Kind), now, string(decision), comment))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Activity{}, r.explainMiss(ctx, id, func(cur *domain.Activity) error { return cur.CanResolve(op) })
	}
	if err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

// explainMiss turns a conditional update that matched zero rows into the
// domain error for the row's current state. If the row has since moved into
// a state that would allow the transition, the caller lost a race and the
// activity is reported as locked.
func (r *Repo) explainMiss(ctx context.Context, id uuid.UUID, check func(*domain.Activity) error) error {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := check(&cur); err != nil {
		return fmt.Errorf("activity %s: %w", id, err)
	}
	return fmt.Errorf("activity %s: %w", id, domain.ErrActivityLocked)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanActivity(row pgx.Row) (domain.Activity, error) {
	var (
		a              domain.Activity
		creatorKind    string
		targetType     string
		action         string
		initStatus     string
		state          string
		handlerID      *uuid.UUID
		handlerKind    *string
		assignedStatus *string
	)

	err := row.Scan(
		&a.ID, &a.Creator.ID, &creatorKind, &a.Target.ID, &targetType, &action, &initStatus, &state,
		&handlerID, &handlerKind, &a.ProcessedAt, &assignedStatus, &a.Comment, &a.ExpireAt, &a.CreatedAt,
	)
	if err != nil {
		return domain.Activity{}, err
	}

	a.Creator.Kind = domain.ActorKind(creatorKind)
	a.Target.Type = domain.ContentType(targetType)
	a.Action = domain.ActivityAction(action)
	a.InitStatus = domain.ContentStatus(initStatus)
	a.State = domain.ActivityState(state)

	if handlerID != nil && handlerKind != nil {
		a.Handler = &domain.Ref{ID: *handlerID, Kind: domain.ActorKind(*handlerKind)}
	}
	if assignedStatus != nil {
		s := domain.ContentStatus(*assignedStatus)
		a.AssignedStatus = &s
	}

	return a, nil
}
