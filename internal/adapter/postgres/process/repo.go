// Package process implements the approval Process repository using PostgreSQL.
package process

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

const columns = `id, creator_id, creator_kind, target_id, target_type, type, activity_ids,
	status, expire_at, completed_at, created_at`

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Repo provides process persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new process repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + columns + ` FROM processes WHERE id = $1`

// GetByID returns a process by primary key.
// Returns domain.ErrProcessNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProcess(q.QueryRow(ctx, getByIDSQL, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Process{}, fmt.Errorf("process %s: %w", id, domain.ErrProcessNotFound)
	}
	if err != nil {
		return domain.Process{}, postgres.MapError(err, "process", id)
	}
	return p, nil
}

// FindLatest returns the newest process of type typ opened by creator for
// target, in any status. Returns nil when none exists.
func (r *Repo) FindLatest(ctx context.Context, creator domain.Ref, target domain.Target, typ domain.ProcessType) (*domain.Process, error) {
	sql, args, err := postgres.Build(postgres.Builder.
		Select(columns).
		From("processes").
		Where(squirrel.Eq{
			"creator_id":   creator.ID,
			"creator_kind": string(creator.Kind),
			"target_id":    target.ID,
			"target_type":  string(target.Type),
			"type":         string(typ),
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProcess(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "process", target.ID)
	}
	return &p, nil
}

// List returns processes matching filter, newest first, and the total
// number of matches.
func (r *Repo) List(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, int, error) {
	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.TargetType != nil {
		where = append(where, squirrel.Eq{"target_type": string(*filter.TargetType)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(filter.Offset, 0)

	countSQL, countArgs, err := postgres.Build(postgres.Builder.
		Select("count(*)").
		From("processes").
		Where(where))
	if err != nil {
		return nil, 0, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count processes: %w", err)
	}

	listSQL, listArgs, err := postgres.Build(postgres.Builder.
		Select(columns).
		From("processes").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, 0, err
	}

	items, err := r.query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListExpired returns PENDING processes whose advisory deadline passed
// before now, oldest deadline first.
func (r *Repo) ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Process, error) {
	b := postgres.Builder.
		Select(columns).
		From("processes").
		Where(squirrel.Eq{"status": string(domain.ProcessStatusPending)}).
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

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query processes: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Process, 0)
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processes: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// openOrAppendSQL opens a process, or appends the new activity ids to the
// PENDING process already open for the same creator, target and type.
// xmax = 0 only holds for a freshly inserted row.
const openOrAppendSQL = `
INSERT INTO processes (id, creator_id, creator_kind, target_id, target_type, type, activity_ids, status, expire_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'PENDING', $8, $9)
ON CONFLICT (creator_id, creator_kind, target_id, target_type, type) WHERE status = 'PENDING'
DO UPDATE SET activity_ids = processes.activity_ids || EXCLUDED.activity_ids
RETURNING ` + columns + `, (xmax = 0) AS inserted`

// OpenOrAppend persists p as a new PENDING process. If a PENDING process is
// already open for the same key, p's activities are appended to it instead
// and that process is returned with created = false.
func (r *Repo) OpenOrAppend(ctx context.Context, p domain.Process) (domain.Process, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var inserted bool
	got, err := scanProcess(q.QueryRow(ctx, openOrAppendSQL,
		p.ID, p.Creator.ID, string(p.Creator.Kind), p.Target.ID, string(p.Target.Type),
		string(p.Type), p.ActivityIDs, p.ExpireAt, p.CreatedAt,
	), &inserted)
	if err != nil {
		return domain.Process{}, false, postgres.MapError(err, "process", p.ID)
	}
	return got, inserted, nil
}

const appendSQL = `
UPDATE processes
SET activity_ids = array_append(activity_ids, $2)
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + columns

// AppendActivity adds activityID to the chain of a PENDING process.
// Returns domain.ErrProcessClosed once the process is terminal.
func (r *Repo) AppendActivity(ctx context.Context, id, activityID uuid.UUID) (domain.Process, error) {
	return r.transition(ctx, id, appendSQL, activityID)
}

const finalizeSQL = `
UPDATE processes
SET status = 'FINALIZED', completed_at = $2
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + columns

// Finalize closes a PENDING process after a final decision.
func (r *Repo) Finalize(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error) {
	return r.transition(ctx, id, finalizeSQL, now)
}

const cancelSQL = `
UPDATE processes
SET status = 'CANCELLED', completed_at = $2
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + columns

// Cancel closes a PENDING process because its content was retracted.
func (r *Repo) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error) {
	return r.transition(ctx, id, cancelSQL, now)
}

func (r *Repo) transition(ctx context.Context, id uuid.UUID, sql string, arg any) (domain.Process, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProcess(q.QueryRow(ctx, sql, id, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return domain.Process{}, getErr
		}
		return domain.Process{}, fmt.Errorf("process %s: %w", id, domain.ErrProcessClosed)
	}
	if err != nil {
		return domain.Process{}, postgres.MapError(err, "process", id)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanProcess(row pgx.Row, extra ...any) (domain.Process, error) {
	var (
		p           domain.Process
		creatorKind string
		targetType  string
		typ         string
		status      string
	)

	dest := []any{
		&p.ID, &p.Creator.ID, &creatorKind, &p.Target.ID, &targetType, &typ, &p.ActivityIDs,
		&status, &p.ExpireAt, &p.CompletedAt, &p.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Process{}, err
	}

	p.Creator.Kind = domain.ActorKind(creatorKind)
	p.Target.Type = domain.ContentType(targetType)
	p.Type = domain.ProcessType(typ)
	p.Status = domain.ProcessStatus(status)

	return p, nil
}
