package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// ExpiredReport lists unfinished work whose advisory deadline has passed.
type ExpiredReport struct {
	At         time.Time
	Activities []domain.Activity
	Processes  []domain.Process
}

// ReportExpired collects stale activities and pending processes. Nothing is
// transitioned: expireAt is advisory.
func (s *Service) ReportExpired(ctx context.Context, limit int) (ExpiredReport, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	now := s.now()

	activities, err := s.activities.ListExpired(ctx, now, limit)
	if err != nil {
		return ExpiredReport{}, fmt.Errorf("list expired activities: %w", err)
	}
	processes, err := s.processes.ListExpired(ctx, now, limit)
	if err != nil {
		return ExpiredReport{}, fmt.Errorf("list expired processes: %w", err)
	}

	s.log.InfoContext(ctx, "expired work reported",
		slog.Int("activities", len(activities)),
		slog.Int("processes", len(processes)),
	)
	return ExpiredReport{At: now, Activities: activities, Processes: processes}, nil
}
