package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/contentflow-backend/migrations"
)

// Migrator applies and inspects the embedded goose migrations. cmd/migrate,
// the test helper and the readiness probe share it so they agree on the
// schema version.
type Migrator struct {
	provider *goose.Provider
	latest   int64
}

// NewMigrator builds a Migrator over db. Closing db stays with the caller.
func NewMigrator(db *sql.DB) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	m := &Migrator{provider: provider}
	for _, src := range provider.ListSources() {
		m.latest = max(m.latest, src.Version)
	}
	return m, nil
}

// NewPoolMigrator builds a Migrator that borrows connections from pool.
func NewPoolMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	return NewMigrator(stdlib.OpenDBFromPool(pool))
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	return m.provider.Up(ctx)
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	return m.provider.Down(ctx)
}

// Status lists every embedded migration with its applied state.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return m.provider.Status(ctx)
}

// SchemaVersion returns the applied version and the newest embedded one.
func (m *Migrator) SchemaVersion(ctx context.Context) (current, latest int64, err error) {
	current, err = m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, m.latest, fmt.Errorf("schema version: %w", err)
	}
	return current, m.latest, nil
}
