package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/contentflow-backend/internal/domain"
	"github.com/heartmarshall/contentflow-backend/pkg/ctxutil"
)

// OperatorActionResult is the state after an operator action.
type OperatorActionResult struct {
	Activity domain.Activity
	Process  domain.Process
	// Content is set when the action finalized the process.
	Content *domain.ContentItem
	// FollowUp is set when a non-final decision chained a new activity.
	FollowUp *domain.Activity
}

// ApplyOperatorAction applies HOLD, CANCEL, APPROVE or REJECT to an
// activity of a pending process on behalf of the authenticated operator.
//
// A decision with IsFinal closes the process and assigns the decided status
// to the content. A non-final decision appends a REQUEST activity so the
// review continues. The activity write and its consequence commit together.
func (s *Service) ApplyOperatorAction(ctx context.Context, input OperatorActionInput) (OperatorActionResult, error) {
	actor, err := ctxutil.Operator(ctx)
	if err != nil {
		return OperatorActionResult{}, err
	}

	if err := input.Validate(); err != nil {
		return OperatorActionResult{}, err
	}

	op := actor.Ref()
	var res OperatorActionResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		proc, err := s.processes.GetByID(txCtx, input.ProcessID)
		if err != nil {
			return fmt.Errorf("get process: %w", err)
		}
		if !proc.Contains(input.ActivityID) {
			return domain.ErrActivityNotInProcess
		}
		if err := proc.CheckOpen(); err != nil {
			return err
		}

		now := s.now()
		a, err := s.applyToActivity(txCtx, input, op, now)
		if err != nil {
			return err
		}
		res.Activity = a
		res.Process = proc

		if !a.IsCompleted() {
			return nil
		}

		if input.IsFinal {
			finalized, item, err := s.finalize(txCtx, proc.ID, *a.AssignedStatus, now)
			if err != nil {
				return err
			}
			res.Process = finalized
			res.Content = &item
			return nil
		}

		item, err := s.contents.Get(txCtx, proc.Target)
		if err != nil {
			return fmt.Errorf("get content: %w", err)
		}
		chained, follow, err := s.addActivity(txCtx, proc.ID, domain.ActivitySpec{
			Creator:    op,
			Target:     proc.Target,
			Action:     domain.ActivityActionRequest,
			InitStatus: item.Status,
		}, now)
		if err != nil {
			return err
		}
		res.Process = chained
		res.FollowUp = &follow
		return nil
	})
	if err != nil {
		return OperatorActionResult{}, err
	}

	s.recordAction(ctx, op, input, res)
	return res, nil
}

func (s *Service) applyToActivity(ctx context.Context, input OperatorActionInput, op domain.Ref, now time.Time) (domain.Activity, error) {
	var (
		a   domain.Activity
		err error
	)
	switch input.Action {
	case domain.ActivityActionHold:
		a, err = s.activities.Claim(ctx, input.ActivityID, op, now)
	case domain.ActivityActionCancel:
		a, err = s.activities.Release(ctx, input.ActivityID)
	default:
		decision, _ := input.decision()
		a, err = s.activities.Resolve(ctx, input.ActivityID, op, decision, input.Comment, now)
	}
	if err != nil {
		return domain.Activity{}, fmt.Errorf("%s activity: %w", input.Action, err)
	}
	return a, nil
}

func (s *Service) recordAction(ctx context.Context, op domain.Ref, input OperatorActionInput, res OperatorActionResult) {
	action := domain.AuditActionResolve
	switch input.Action {
	case domain.ActivityActionHold:
		action = domain.AuditActionHold
	case domain.ActivityActionCancel:
		action = domain.AuditActionRelease
	}

	changes := map[string]any{"state": map[string]any{"new": res.Activity.State}}
	if res.Activity.AssignedStatus != nil {
		changes["assigned_status"] = map[string]any{"new": *res.Activity.AssignedStatus}
	}
	s.record(ctx, op, domain.EntityTypeActivity, res.Activity.ID, action, changes)

	switch {
	case res.Content != nil:
		s.recordFinalize(ctx, op, res.Process, *res.Content)
	case res.FollowUp != nil:
		s.record(ctx, op, domain.EntityTypeProcess, res.Process.ID, domain.AuditActionChain, map[string]any{
			"activity_id": map[string]any{"new": res.FollowUp.ID},
		})
	}

	s.log.InfoContext(ctx, "operator action applied",
		slog.String("operator_id", op.ID.String()),
		slog.String("process_id", res.Process.ID.String()),
		slog.String("activity_id", res.Activity.ID.String()),
		slog.String("action", input.Action.String()),
		slog.String("activity_state", res.Activity.State.String()),
		slog.String("process_status", res.Process.Status.String()),
	)
}
