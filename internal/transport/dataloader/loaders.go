package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Activities by ID
// ---------------------------------------------------------------------------

func newActivityBatchFn(repo activityRepo) dataloader.BatchFunc[uuid.UUID, domain.Activity] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Activity] {
		activities, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Activity](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Activity, len(activities))
		for _, a := range activities {
			byID[a.ID] = a
		}

		return mapResults(keys, byID, domain.ErrActivityNotFound)
	}
}

// ---------------------------------------------------------------------------
// Content by target
// ---------------------------------------------------------------------------

func newContentBatchFn(repo contentRepo) dataloader.BatchFunc[domain.Target, domain.ContentItem] {
	return func(ctx context.Context, keys []domain.Target) []*dataloader.Result[domain.ContentItem] {
		items, err := repo.GetMany(ctx, keys)
		if err != nil {
			return errorResults[domain.ContentItem](len(keys), err)
		}

		byTarget := make(map[domain.Target]domain.ContentItem, len(items))
		for _, item := range items {
			byTarget[item.Target()] = item
		}

		return mapResults(keys, byTarget, domain.ErrNotFound)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps results back to key order; missing keys get missErr.
func mapResults[K comparable, V any](keys []K, found map[K]V, missErr error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Error: missErr}
		}
	}
	return results
}
