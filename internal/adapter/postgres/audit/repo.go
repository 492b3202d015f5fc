// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/contentflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentflow-backend/internal/domain"
)

const columns = `id, actor_id, actor_kind, entity_type, entity_id, action, changes, created_at`

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO audit_log (id, actor_id, actor_kind, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var changesJSON []byte
	if record.Changes != nil {
		b, err := json.Marshal(record.Changes)
		if err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
		}
		changesJSON = b
	}

	row := q.QueryRow(ctx, createSQL,
		record.ID, record.Actor.ID, string(record.Actor.Kind), string(record.EntityType),
		record.EntityID, string(record.Action), changesJSON, record.CreatedAt,
	)

	created, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return created, nil
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies the auditLogger interfaces of the workflow and content services.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByEntitySQL = `
SELECT ` + columns + `
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		actorKind  string
		entityType string
		action     string
		changes    []byte
	)

	if err := row.Scan(&rec.ID, &rec.Actor.ID, &actorKind, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	rec.Actor.Kind = domain.ActorKind(actorKind)
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}

	return rec, nil
}
