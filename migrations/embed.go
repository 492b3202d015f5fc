// Package migrations embeds the goose SQL migrations so that cmd/migrate and
// the repository test helper apply the same files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
