package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// RetractResult is the outcome of a retraction.
type RetractResult struct {
	Content domain.ContentItem
	// CancelledProcess is set when a pending review was cancelled.
	CancelledProcess *domain.Process
}

// Retract moves an item the actor owns back to EDITING and cancels its
// pending approval process, if any.
func (s *Service) Retract(ctx context.Context, target domain.Target) (RetractResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return RetractResult{}, domain.ErrUnauthorized
	}
	if err := validateTarget(target); err != nil {
		return RetractResult{}, err
	}

	var (
		res  RetractResult
		prev domain.ContentStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.ownedBy(txCtx, actor, target)
		if err != nil {
			return err
		}
		if err := item.CheckRetractable(); err != nil {
			return err
		}
		prev = item.Status

		updated, err := s.contents.UpdateStatus(txCtx, target, domain.RetractableFrom, domain.ContentStatusEditing, s.now())
		if err != nil {
			if isConflict(err) {
				return domain.ErrContentCannotRetract
			}
			return fmt.Errorf("update content status: %w", err)
		}

		cancelled, err := s.workflow.CancelPending(txCtx, actor.Ref(), target)
		if err != nil {
			return fmt.Errorf("cancel process: %w", err)
		}

		res = RetractResult{Content: updated, CancelledProcess: cancelled}
		return nil
	})
	if err != nil {
		return RetractResult{}, err
	}

	item := res.Content
	s.record(ctx, actor.Ref(), domain.EntityTypeFor(item.Type), item.ID, domain.AuditActionRetract, statusChange(prev, item.Status))
	if p := res.CancelledProcess; p != nil {
		s.record(ctx, actor.Ref(), domain.EntityTypeProcess, p.ID, domain.AuditActionCancel, map[string]any{
			"status": map[string]any{"old": domain.ProcessStatusPending, "new": p.Status},
		})
	}

	s.log.InfoContext(ctx, "content retracted",
		slog.String("actor_id", actor.ID.String()),
		slog.String("content_id", item.ID.String()),
		slog.String("previous_status", prev.String()),
		slog.Bool("process_cancelled", res.CancelledProcess != nil),
	)
	return res, nil
}
