package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentStore interface {
	Get(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	Create(ctx context.Context, item domain.ContentItem) (domain.ContentItem, error)
	Update(ctx context.Context, target domain.Target, params domain.ContentUpdateParams, from []domain.ContentStatus, now time.Time) (domain.ContentItem, error)
	UpdateStatus(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error)
}

// coordinator is the workflow side of submission and retraction. Both
// methods join the caller's transaction.
type coordinator interface {
	MaybeOpenProcess(ctx context.Context, item domain.ContentItem, submitter domain.Actor, action domain.ActivityAction) (*domain.Process, error)
	CancelPending(ctx context.Context, creator domain.Ref, target domain.Target) (*domain.Process, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements drafting, submission and retraction of posts and events.
type Service struct {
	log      *slog.Logger
	contents contentStore
	workflow coordinator
	audit    auditLogger
	tx       txManager
	policy   domain.PolicyConfig
	now      func() time.Time
}

// NewService creates a new content service.
func NewService(
	log *slog.Logger,
	contents contentStore,
	workflow coordinator,
	audit auditLogger,
	tx txManager,
	policy domain.PolicyConfig,
) *Service {
	return &Service{
		log:      log.With("service", "content"),
		contents: contents,
		workflow: workflow,
		audit:    audit,
		tx:       tx,
		policy:   policy,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// ownedBy loads target and checks it belongs to actor. Missing and foreign
// items are indistinguishable to the caller.
func (s *Service) ownedBy(ctx context.Context, actor domain.Actor, target domain.Target) (domain.ContentItem, error) {
	item, err := s.contents.Get(ctx, target)
	if err != nil {
		if isNotFound(err) {
			return domain.ContentItem{}, domain.ErrNoEligibleContent
		}
		return domain.ContentItem{}, err
	}
	if item.Creator != actor.Ref() {
		return domain.ContentItem{}, domain.ErrNoEligibleContent
	}
	return item, nil
}

func (s *Service) record(ctx context.Context, actor domain.Ref, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) {
	err := s.audit.Log(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: entity,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "audit log failed",
			slog.String("entity_id", id.String()),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}

func statusChange(from, to domain.ContentStatus) map[string]any {
	return map[string]any{"status": map[string]any{"old": from, "new": to}}
}
