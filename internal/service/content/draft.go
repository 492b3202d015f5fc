package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// editableFrom lists the statuses a draft update may start from.
var editableFrom = []domain.ContentStatus{domain.ContentStatusEditing, domain.ContentStatusRejected}

// CreateDraft stores a new item in EDITING owned by the authenticated actor.
func (s *Service) CreateDraft(ctx context.Context, input CreateDraftInput) (domain.ContentItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ContentItem{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	now := s.now()
	item, err := s.contents.Create(ctx, domain.ContentItem{
		ID:        uuid.New(),
		Type:      input.Type,
		Creator:   actor.Ref(),
		Title:     strings.TrimSpace(input.Title),
		Slug:      strings.TrimSpace(input.Slug),
		Content:   input.Content,
		Status:    domain.ContentStatusEditing,
		IsPublic:  input.IsPublic,
		StartsAt:  input.StartsAt,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("create content: %w", err)
	}

	s.record(ctx, actor.Ref(), domain.EntityTypeFor(item.Type), item.ID, domain.AuditActionCreate, map[string]any{
		"title":  map[string]any{"new": item.Title},
		"status": map[string]any{"new": item.Status},
	})
	s.log.InfoContext(ctx, "draft created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("content_id", item.ID.String()),
		slog.String("type", item.Type.String()),
	)
	return item, nil
}

// UpdateDraft edits an item the actor owns while it is EDITING or REJECTED.
func (s *Service) UpdateDraft(ctx context.Context, input UpdateDraftInput) (domain.ContentItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ContentItem{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	current, err := s.ownedBy(ctx, actor, input.Target)
	if err != nil {
		return domain.ContentItem{}, err
	}
	if !current.IsEditable() {
		return domain.ContentItem{}, domain.ErrContentNotEditable
	}

	item, err := s.contents.Update(ctx, input.Target, input.params(), editableFrom, s.now())
	if err != nil {
		if isConflict(err) {
			return domain.ContentItem{}, domain.ErrContentNotEditable
		}
		return domain.ContentItem{}, fmt.Errorf("update content: %w", err)
	}

	changes := map[string]any{}
	if input.Title != nil && current.Title != item.Title {
		changes["title"] = map[string]any{"old": current.Title, "new": item.Title}
	}
	if input.Slug != nil && current.Slug != item.Slug {
		changes["slug"] = map[string]any{"old": current.Slug, "new": item.Slug}
	}
	if input.Content != nil {
		changes["content"] = map[string]any{"changed": current.Content != item.Content}
	}
	if input.IsPublic != nil && current.IsPublic != item.IsPublic {
		changes["is_public"] = map[string]any{"old": current.IsPublic, "new": item.IsPublic}
	}
	s.record(ctx, actor.Ref(), domain.EntityTypeFor(item.Type), item.ID, domain.AuditActionUpdate, changes)

	s.log.InfoContext(ctx, "draft updated",
		slog.String("actor_id", actor.ID.String()),
		slog.String("content_id", item.ID.String()),
	)
	return item, nil
}

// Get returns an item to its owner or to any platform actor.
func (s *Service) Get(ctx context.Context, target domain.Target) (domain.ContentItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ContentItem{}, domain.ErrUnauthorized
	}
	if err := validateTarget(target); err != nil {
		return domain.ContentItem{}, err
	}

	if actor.IsPlatform() {
		item, err := s.contents.Get(ctx, target)
		if err != nil {
			return domain.ContentItem{}, fmt.Errorf("get content: %w", err)
		}
		return item, nil
	}
	return s.ownedBy(ctx, actor, target)
}
