package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Activity, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Activity, error)

	// Conditional writes: each fails with the domain error when the stored
	// state no longer allows the transition.
	Claim(ctx context.Context, id uuid.UUID, op domain.Ref, now time.Time) (domain.Activity, error)
	Release(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	Resolve(ctx context.Context, id uuid.UUID, op domain.Ref, decision domain.ContentStatus, comment *string, now time.Time) (domain.Activity, error)
}

type processRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Process, error)
	FindLatest(ctx context.Context, creator domain.Ref, target domain.Target, typ domain.ProcessType) (*domain.Process, error)
	List(ctx context.Context, filter domain.ProcessFilter) ([]domain.Process, int, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]domain.Process, error)

	OpenOrAppend(ctx context.Context, p domain.Process) (domain.Process, bool, error)
	AppendActivity(ctx context.Context, id, activityID uuid.UUID) (domain.Process, error)
	Finalize(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.Process, error)
}

type contentStore interface {
	Get(ctx context.Context, target domain.Target) (domain.ContentItem, error)
	UpdateStatus(ctx context.Context, target domain.Target, from []domain.ContentStatus, to domain.ContentStatus, now time.Time) (domain.ContentItem, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the workflow settings the service needs at runtime.
type Config struct {
	Policy      domain.PolicyConfig
	ActivityTTL time.Duration
	ProcessTTL  time.Duration
}

// Service runs approval processes: opening them on submission, applying
// operator actions to their activities and closing them.
type Service struct {
	activities activityRepo
	processes  processRepo
	contents   contentStore
	audit      auditLogger
	tx         txManager
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	activities activityRepo,
	processes processRepo,
	contents contentStore,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		activities: activities,
		processes:  processes,
		contents:   contents,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "workflow"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// deadline returns now+ttl, or nil when ttl is zero.
func (s *Service) deadline(now time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := now.Add(ttl)
	return &t
}

// record writes an audit entry. Failures are logged and swallowed; ctx must
// not carry a transaction.
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
			slog.String("entity_type", entity.String()),
			slog.String("entity_id", id.String()),
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
