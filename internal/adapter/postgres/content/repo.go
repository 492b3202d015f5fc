// Package content implements post and event persistence using PostgreSQL.
// One Repo serves one table; Registry dispatches by content type.
package content

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

// table describes how one content type is laid out.
type table struct {
	name        string
	contentType domain.ContentType
	// selectCols yields the common column set; posts have no schedule.
	selectCols string
	hasEvent   bool
}

var (
	postsTable = table{
		name:        "posts",
		contentType: domain.ContentTypePost,
		selectCols: `id, creator_id, creator_kind, title, slug, content, status,
	false AS is_public, NULL::timestamptz AS starts_at, created_at, updated_at`,
	}
	eventsTable = table{
		name:        "events",
		contentType: domain.ContentTypeEvent,
		selectCols: `id, creator_id, creator_kind, title, slug, content, status,
	is_public, starts_at, created_at, updated_at`,
		hasEvent: true,
	}
)

// Repo provides content persistence for a single content type.
type Repo struct {
	pool *pgxpool.Pool
	t    table
}

// NewPosts creates a repository over the posts table.
func NewPosts(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, t: postsTable}
}

// NewEvents creates a repository over the events table.
func NewEvents(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, t: eventsTable}
}

// Type returns the content type served by the repository.
func (r *Repo) Type() domain.ContentType {
	return r.t.contentType
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a content item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	sql, args, err := postgres.Build(postgres.Builder.
		Select(r.t.selectCols).
		From(r.t.name).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return domain.ContentItem{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := r.scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, r.t.name, id)
	}
	return item, nil
}

// GetByIDs returns the items with the given ids in arbitrary order.
// Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ContentItem, error) {
	if len(ids) == 0 {
		return []domain.ContentItem{}, nil
	}

	sql, args, err := postgres.Build(postgres.Builder.
		Select(r.t.selectCols).
		From(r.t.name).
		Where(squirrel.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.t.name, err)
	}
	defer rows.Close()

	result := make([]domain.ContentItem, 0, len(ids))
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.name, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.t.name, err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new content item.
func (r *Repo) Create(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error) {
	cols := []string{"id", "creator_id", "creator_kind", "title", "slug", "content", "status", "created_at", "updated_at"}
	vals := []any{
		item.ID, item.Creator.ID, string(item.Creator.Kind), item.Title, item.Slug, item.Content,
		string(item.Status), item.CreatedAt, item.UpdatedAt,
	}
	if r.t.hasEvent {
		cols = append(cols, "is_public", "starts_at")
		vals = append(vals, item.IsPublic, item.StartsAt)
	}

	sql, args, err := postgres.Build(postgres.Builder.
		Insert(r.t.name).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + r.t.selectCols))
	if err != nil {
		return domain.ContentItem{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := r.scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, r.t.name, item.ID)
	}
	return created, nil
}

// Update applies the non-nil fields of params while the item's status is
// one of from. Fields that do not exist for the content type are ignored.
// Returns domain.ErrConflict if the item exists in another status.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ContentUpdateParams, from []domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	b := postgres.Builder.Update(r.t.name).Set("updated_at", now)
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Slug != nil {
		b = b.Set("slug", *params.Slug)
	}
	if params.Content != nil {
		b = b.Set("content", *params.Content)
	}
	if r.t.hasEvent {
		if params.IsPublic != nil {
			b = b.Set("is_public", *params.IsPublic)
		}
		if params.StartsAt != nil {
			b = b.Set("starts_at", *params.StartsAt)
		}
	}

	return r.conditional(ctx, id, b, from)
}

// UpdateStatus moves the item to status to if its current status is one of
// from. Returns domain.ErrConflict if the item exists in another status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	b := postgres.Builder.Update(r.t.name).
		Set("status", string(to)).
		Set("updated_at", now)

	return r.conditional(ctx, id, b, from)
}

func (r *Repo) conditional(ctx context.Context, id uuid.UUID, b squirrel.UpdateBuilder, from []domain.ContentStatus) (domain.ContentItem, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	sql, args, err := postgres.Build(b.
		Where(squirrel.Eq{"id": id, "status": statuses}).
		Suffix("RETURNING " + r.t.selectCols))
	if err != nil {
		return domain.ContentItem{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := r.scan(q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return domain.ContentItem{}, getErr
		}
		return domain.ContentItem{}, fmt.Errorf("%s %s: %w", r.t.name, id, domain.ErrConflict)
	}
	if err != nil {
		return domain.ContentItem{}, postgres.MapError(err, r.t.name, id)
	}
	return item, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) scan(row pgx.Row) (domain.ContentItem, error) {
	var (
		item        domain.ContentItem
		creatorKind string
		status      string
	)

	err := row.Scan(
		&item.ID, &item.Creator.ID, &creatorKind, &item.Title, &item.Slug, &item.Content, &status,
		&item.IsPublic, &item.StartsAt, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return domain.ContentItem{}, err
	}

	item.Type = r.t.contentType
	item.Creator.Kind = domain.ActorKind(creatorKind)
	item.Status = domain.ContentStatus(status)

	return item, nil
}
