package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// Cancel closes a pending process without a decision.
func (s *Service) Cancel(ctx context.Context, actor domain.Ref, processID uuid.UUID) (domain.Process, error) {
	proc, err := s.processes.Cancel(ctx, processID, s.now())
	if err != nil {
		return domain.Process{}, fmt.Errorf("cancel process: %w", err)
	}

	s.record(ctx, actor, domain.EntityTypeProcess, proc.ID, domain.AuditActionCancel, map[string]any{
		"status": map[string]any{"old": domain.ProcessStatusPending, "new": proc.Status},
	})
	s.log.InfoContext(ctx, "process cancelled",
		slog.String("process_id", proc.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return proc, nil
}

// CancelPending cancels the latest approval process of (creator, target) if
// it is still pending. It returns nil when there was nothing to cancel,
// including when a concurrent finalize closed the process first.
//
// Like MaybeOpenProcess it joins the caller's transaction and leaves audit
// entries to the caller.
func (s *Service) CancelPending(ctx context.Context, creator domain.Ref, target domain.Target) (*domain.Process, error) {
	latest, err := s.processes.FindLatest(ctx, creator, target, domain.ProcessTypeApproval)
	if err != nil {
		return nil, fmt.Errorf("find latest process: %w", err)
	}
	if latest == nil || !latest.IsPending() {
		return nil, nil
	}

	proc, err := s.processes.Cancel(ctx, latest.ID, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrProcessClosed) {
			return nil, nil
		}
		return nil, fmt.Errorf("cancel process: %w", err)
	}

	s.log.InfoContext(ctx, "process cancelled by retraction",
		slog.String("process_id", proc.ID.String()),
		slog.String("target_id", target.ID.String()),
	)
	return &proc, nil
}
