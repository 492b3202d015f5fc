package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// ListProcesses returns a page of the operator queue and the total count.
func (s *Service) ListProcesses(ctx context.Context, input ListProcessesInput) ([]domain.Process, int, error) {
	if _, err := ctxutil.Operator(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	procs, total, err := s.processes.List(ctx, domain.ProcessFilter{
		Status:     input.Status,
		TargetType: input.TargetType,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list processes: %w", err)
	}
	return procs, total, nil
}

// GetProcess returns a process with its activities in chain order.
func (s *Service) GetProcess(ctx context.Context, id uuid.UUID) (domain.ProcessWithActivities, error) {
	if _, err := ctxutil.Operator(ctx); err != nil {
		return domain.ProcessWithActivities{}, err
	}

	proc, err := s.processes.GetByID(ctx, id)
	if err != nil {
		return domain.ProcessWithActivities{}, fmt.Errorf("get process: %w", err)
	}

	activities, err := s.activities.GetByIDs(ctx, proc.ActivityIDs)
	if err != nil {
		return domain.ProcessWithActivities{}, fmt.Errorf("get activities: %w", err)
	}

	return domain.ProcessWithActivities{
		Process:    proc,
		Activities: OrderByChain(proc.ActivityIDs, activities),
	}, nil
}

// OrderByChain arranges activities in the order of ids, dropping ids that
// have no matching activity.
func OrderByChain(ids []uuid.UUID, activities []domain.Activity) []domain.Activity {
	byID := make(map[uuid.UUID]domain.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}
	ordered := make([]domain.Activity, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
		}
	}
	return ordered
}
