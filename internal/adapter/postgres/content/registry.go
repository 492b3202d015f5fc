package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// Registry maps each content type onto its repository. It is built once at
// startup and dispatches on Target.Type.
type Registry struct {
	repos map[domain.ContentType]*Repo
}

// NewRegistry creates a registry holding every supported content type.
func NewRegistry(pool *pgxpool.Pool) *Registry {
	return NewRegistryOf(NewPosts(pool), NewEvents(pool))
}

// NewRegistryOf creates a registry from explicit repositories.
func NewRegistryOf(repos ...*Repo) *Registry {
	m := make(map[domain.ContentType]*Repo, len(repos))
	for _, r := range repos {
		m[r.Type()] = r
	}
	return &Registry{repos: m}
}

// For returns the repository serving t.
func (g *Registry) For(t domain.ContentType) (*Repo, error) {
	r, ok := g.repos[t]
	if !ok {
		return nil, domain.NewValidationError("content_type", fmt.Sprintf("unsupported content type %q", t))
	}
	return r, nil
}

// Get returns the content item referenced by target.
func (g *Registry) Get(ctx context.Context, target domain.Target) (domain.ContentItem, error) {
	r, err := g.For(target.Type)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return r.GetByID(ctx, target.ID)
}

// GetMany loads every referenced item, grouping queries by content type.
func (g *Registry) GetMany(ctx context.Context, targets []domain.Target) ([]domain.ContentItem, error) {
	byType := make(map[domain.ContentType][]uuid.UUID)
	for _, t := range targets {
		byType[t.Type] = append(byType[t.Type], t.ID)
	}

	result := make([]domain.ContentItem, 0, len(targets))
	for typ, ids := range byType {
		r, err := g.For(typ)
		if err != nil {
			return nil, err
		}
		items, err := r.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

// Create inserts item into the repository for its type.
func (g *Registry) Create(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error) {
	r, err := g.For(item.Type)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return r.Create(ctx, item)
}

// Update applies a draft update to the referenced item.
func (g *Registry) Update(ctx context.Context, target domain.Target, params domain.ContentUpdateParams, from []domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	r, err := g.For(target.Type)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return r.Update(ctx, target.ID, params, from, now)
}

// UpdateStatus performs a conditional status write on the referenced item.
func (g *Registry) UpdateStatus(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error) {
	r, err := g.For(target.Type)
	if err != nil {
		return domain.ContentItem{}, err
	}
	return r.UpdateStatus(ctx, target.ID, from, to, now)
}
