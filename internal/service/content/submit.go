package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// SubmitResult is the outcome of a submission.
type SubmitResult struct {
	Content domain.ContentItem
	// Process is nil when the item was published without review.
	Process *domain.Process
}

// Submit sends an item the actor owns for publication. The policy decides
// between immediate approval and review; under review an approval process
// is opened in the same transaction as the status change.
func (s *Service) Submit(ctx context.Context, target domain.Target) (SubmitResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return SubmitResult{}, domain.ErrUnauthorized
	}
	if err := validateTarget(target); err != nil {
		return SubmitResult{}, err
	}

	var (
		res  SubmitResult
		prev domain.ContentStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.ownedBy(txCtx, actor, target)
		if err != nil {
			return err
		}
		if err := item.CheckSubmittable(); err != nil {
			return err
		}
		prev = item.Status

		status := domain.DecideInitialStatus(item.Type, actor.Roles, item.IsPublic, s.policy)
		updated, err := s.contents.UpdateStatus(txCtx, target, domain.SubmittableFrom, status, s.now())
		if err != nil {
			if isConflict(err) {
				return domain.ErrContentAlreadySubmitted
			}
			return fmt.Errorf("update content status: %w", err)
		}

		proc, err := s.workflow.MaybeOpenProcess(txCtx, updated, actor, domain.ActivityActionSubmit)
		if err != nil {
			return fmt.Errorf("open process: %w", err)
		}

		res = SubmitResult{Content: updated, Process: proc}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}

	item := res.Content
	s.record(ctx, actor.Ref(), domain.EntityTypeFor(item.Type), item.ID, domain.AuditActionSubmit, statusChange(prev, item.Status))
	if res.Process != nil {
		s.record(ctx, actor.Ref(), domain.EntityTypeProcess, res.Process.ID, domain.AuditActionCreate, map[string]any{
			"activity_id": map[string]any{"new": res.Process.LatestActivityID()},
			"target_id":   map[string]any{"new": item.ID},
		})
	}

	attrs := []any{
		slog.String("actor_id", actor.ID.String()),
		slog.String("content_id", item.ID.String()),
		slog.String("type", item.Type.String()),
		slog.String("status", item.Status.String()),
	}
	if res.Process != nil {
		attrs = append(attrs, slog.String("process_id", res.Process.ID.String()))
	}
	s.log.InfoContext(ctx, "content submitted", attrs...)

	return res, nil
}
