package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// Finalize closes a pending process and writes the assigned decision onto
// its content item. Both writes commit together.
func (s *Service) Finalize(ctx context.Context, actor domain.Ref, processID uuid.UUID, assigned domain.ContentStatus) (domain.Process, domain.ContentItem, error) {
	var (
		proc domain.Process
		item domain.ContentItem
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		proc, item, err = s.finalize(txCtx, processID, assigned, s.now())
		return err
	})
	if err != nil {
		return domain.Process{}, domain.ContentItem{}, err
	}

	s.recordFinalize(ctx, actor, proc, item)
	return proc, item, nil
}

func (s *Service) finalize(ctx context.Context, processID uuid.UUID, assigned domain.ContentStatus, now time.Time) (domain.Process, domain.ContentItem, error) {
	if !assigned.IsDecision() {
		return domain.Process{}, domain.ContentItem{}, domain.NewValidationError("assigned_status", "must be APPROVED or REJECTED")
	}

	proc, err := s.processes.Finalize(ctx, processID, now)
	if err != nil {
		return domain.Process{}, domain.ContentItem{}, fmt.Errorf("finalize process: %w", err)
	}

	item, err := s.contents.UpdateStatus(ctx, proc.Target, []domain.ContentStatus{domain.ContentStatusPending}, assigned, now)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Process{}, domain.ContentItem{}, domain.ErrContentNotPending
		}
		return domain.Process{}, domain.ContentItem{}, fmt.Errorf("assign content status: %w", err)
	}
	return proc, item, nil
}

func (s *Service) recordFinalize(ctx context.Context, actor domain.Ref, proc domain.Process, item domain.ContentItem) {
	s.record(ctx, actor, domain.EntityTypeProcess, proc.ID, domain.AuditActionFinalize, map[string]any{
		"status": map[string]any{"old": domain.ProcessStatusPending, "new": proc.Status},
	})
	s.record(ctx, actor, domain.EntityTypeFor(item.Type), item.ID, domain.AuditActionUpdate, map[string]any{
		"status": map[string]any{"old": domain.ContentStatusPending, "new": item.Status},
	})
	s.log.InfoContext(ctx, "process finalized",
		slog.String("process_id", proc.ID.String()),
		slog.String("target_id", item.ID.String()),
		slog.String("status", item.Status.String()),
		slog.String("operator_id", actor.ID.String()),
	)
}
