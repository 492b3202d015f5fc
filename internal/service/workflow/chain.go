package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// AddActivity appends a new activity to a pending process.
func (s *Service) AddActivity(ctx context.Context, actor domain.Ref, processID uuid.UUID, spec domain.ActivitySpec) (domain.Process, domain.Activity, error) {
	var (
		proc domain.Process
		a    domain.Activity
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		proc, a, err = s.addActivity(txCtx, processID, spec, s.now())
		return err
	})
	if err != nil {
		return domain.Process{}, domain.Activity{}, err
	}

	s.record(ctx, actor, domain.EntityTypeProcess, proc.ID, domain.AuditActionChain, map[string]any{
		"activity_id": map[string]any{"new": a.ID},
	})
	s.log.InfoContext(ctx, "activity chained",
		slog.String("process_id", proc.ID.String()),
		slog.String("activity_id", a.ID.String()),
		slog.String("action", a.Action.String()),
	)
	return proc, a, nil
}

func (s *Service) addActivity(ctx context.Context, processID uuid.UUID, spec domain.ActivitySpec, now time.Time) (domain.Process, domain.Activity, error) {
	a, err := s.createActivity(ctx, spec, now)
	if err != nil {
		return domain.Process{}, domain.Activity{}, err
	}
	proc, err := s.processes.AppendActivity(ctx, processID, a.ID)
	if err != nil {
		return domain.Process{}, domain.Activity{}, fmt.Errorf("append activity: %w", err)
	}
	return proc, a, nil
}
