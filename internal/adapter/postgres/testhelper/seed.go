package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns a timestamp truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Consumer returns a fresh consumer reference.
func Consumer() domain.Ref {
	return domain.Ref{ID: uuid.New(), Kind: domain.ActorKindConsumer}
}

// Operator returns a fresh platform operator reference.
func Operator() domain.Ref {
	return domain.Ref{ID: uuid.New(), Kind: domain.ActorKindPlatform}
}

// SeedPost inserts a complete post owned by creator in the given status.
func SeedPost(t *testing.T, pool *pgxpool.Pool, creator domain.Ref, status domain.ContentStatus) domain.ContentItem {
	t.Helper()

	suffix := uniqueSuffix()
	now := Now()
	item := domain.ContentItem{
		ID:        uuid.New(),
		Type:      domain.ContentTypePost,
		Creator:   creator,
		Title:     "Post " + suffix,
		Slug:      "post-" + suffix,
		Content:   "body of post " + suffix,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, creator_id, creator_kind, title, slug, content, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Creator.ID, string(item.Creator.Kind), item.Title, item.Slug, item.Content,
		string(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return item
}

// SeedEvent inserts a complete event owned by creator in the given status.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, creator domain.Ref, status domain.ContentStatus, isPublic bool) domain.ContentItem {
	t.Helper()

	suffix := uniqueSuffix()
	now := Now()
	startsAt := now.Add(72 * time.Hour)
	item := domain.ContentItem{
		ID:        uuid.New(),
		Type:      domain.ContentTypeEvent,
		Creator:   creator,
		Title:     "Event " + suffix,
		Slug:      "event-" + suffix,
		Content:   "agenda of event " + suffix,
		Status:    status,
		IsPublic:  isPublic,
		StartsAt:  &startsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, creator_id, creator_kind, title, slug, content, is_public, starts_at, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		item.ID, item.Creator.ID, string(item.Creator.Kind), item.Title, item.Slug, item.Content,
		item.IsPublic, item.StartsAt, string(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return item
}

// SeedActivity inserts a READY SUBMIT activity for target.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, creator domain.Ref, target domain.Target) domain.Activity {
	t.Helper()

	a := domain.NewActivity(domain.ActivitySpec{
		Creator:    creator,
		Target:     target,
		Action:     domain.ActivityActionSubmit,
		InitStatus: domain.ContentStatusPending,
	}, Now())

	_, err := pool.Exec(context.Background(),
		`INSERT INTO activities (id, creator_id, creator_kind, target_id, target_type, action, init_status, state, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Creator.ID, string(a.Creator.Kind), a.Target.ID, string(a.Target.Type),
		string(a.Action), string(a.InitStatus), string(a.State), a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}

	return a
}

// SeedProcess inserts a PENDING process around a freshly seeded activity.
func SeedProcess(t *testing.T, pool *pgxpool.Pool, creator domain.Ref, target domain.Target) (domain.Process, domain.Activity) {
	t.Helper()

	a := SeedActivity(t, pool, creator, target)
	p := domain.OpenProcess(a, nil, Now())

	_, err := pool.Exec(context.Background(),
		`INSERT INTO processes (id, creator_id, creator_kind, target_id, target_type, type, activity_ids, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Creator.ID, string(p.Creator.Kind), p.Target.ID, string(p.Target.Type),
		string(p.Type), p.ActivityIDs, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProcess: %v", err)
	}

	return p, a
}
