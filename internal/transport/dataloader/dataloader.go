// Package dataloader provides per-request DataLoaders that batch the
// lookups of the operator queue listing: activities by id and content items
// by target. Loaders call repositories directly; the queue handlers are
// already restricted to platform operators.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type activityRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Activity, error)
}

type contentRepo interface {
	GetMany(ctx context.Context, targets []domain.Target) ([]domain.ContentItem, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Activity activityRepo
	Content  contentRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	ActivityByID    *dataloader.Loader[uuid.UUID, domain.Activity]
	ContentByTarget *dataloader.Loader[domain.Target, domain.ContentItem]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ActivityByID:    newLoader(newActivityBatchFn(repos.Activity)),
		ContentByTarget: newLoader(newContentBatchFn(repos.Content)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
