package postgres

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// positional placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Build renders a squirrel builder into SQL and arguments.
func Build(b squirrel.Sqlizer) (string, []any, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build query: %w", err)
	}
	return sql, args, nil
}
