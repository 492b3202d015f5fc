package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// MaybeOpenProcess opens (or joins) the approval process for a submitted
// item when the publication policy requires review. It returns nil when no
// review is needed.
//
// It runs inside the caller's transaction when ctx carries one and does not
// write audit entries; the caller records the submission.
func (s *Service) MaybeOpenProcess(ctx context.Context, item domain.ContentItem, submitter domain.Actor, action domain.ActivityAction) (*domain.Process, error) {
	if !domain.RequiresProcess(item.Type, submitter.Roles, item.IsPublic, s.cfg.Policy) {
		return nil, nil
	}

	var proc domain.Process
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		first, err := s.createActivity(txCtx, domain.ActivitySpec{
			Creator:    submitter.Ref(),
			Target:     item.Target(),
			Action:     action,
			InitStatus: item.Status,
		}, now)
		if err != nil {
			return err
		}

		proc, err = s.open(txCtx, first, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "process opened",
		slog.String("process_id", proc.ID.String()),
		slog.String("target_id", item.ID.String()),
		slog.String("target_type", item.Type.String()),
		slog.String("creator_id", submitter.ID.String()),
		slog.Int("activities", len(proc.ActivityIDs)),
	)
	return &proc, nil
}

// CreateActivity stores a new READY activity built from spec.
func (s *Service) CreateActivity(ctx context.Context, spec domain.ActivitySpec) (domain.Activity, error) {
	a, err := s.createActivity(ctx, spec, s.now())
	if err != nil {
		return domain.Activity{}, err
	}
	s.record(ctx, spec.Creator, domain.EntityTypeActivity, a.ID, domain.AuditActionCreate, map[string]any{
		"action":      map[string]any{"new": a.Action},
		"init_status": map[string]any{"new": a.InitStatus},
	})
	return a, nil
}

// Open returns the pending process for the activity's (creator, target),
// creating it around first when none exists. An existing pending process
// gets first appended instead.
func (s *Service) Open(ctx context.Context, first domain.Activity) (domain.Process, error) {
	var proc domain.Process
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		proc, err = s.open(txCtx, first, s.now())
		return err
	})
	if err != nil {
		return domain.Process{}, err
	}
	s.record(ctx, first.Creator, domain.EntityTypeProcess, proc.ID, domain.AuditActionCreate, map[string]any{
		"activity_id": map[string]any{"new": first.ID},
	})
	return proc, nil
}

func (s *Service) createActivity(ctx context.Context, spec domain.ActivitySpec, now time.Time) (domain.Activity, error) {
	if spec.ExpireAt == nil {
		spec.ExpireAt = s.deadline(now, s.cfg.ActivityTTL)
	}
	a, err := s.activities.Create(ctx, domain.NewActivity(spec, now))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}
	return a, nil
}

func (s *Service) open(ctx context.Context, first domain.Activity, now time.Time) (domain.Process, error) {
	candidate := domain.OpenProcess(first, s.deadline(now, s.cfg.ProcessTTL), now)
	proc, created, err := s.processes.OpenOrAppend(ctx, candidate)
	if err != nil {
		return domain.Process{}, fmt.Errorf("open process: %w", err)
	}
	if !created {
		s.log.DebugContext(ctx, "joined pending process",
			slog.String("process_id", proc.ID.String()),
			slog.String("activity_id", first.ID.String()),
		)
	}
	return proc, nil
}
