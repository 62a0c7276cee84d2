// Package migrations embeds the goose SQL migrations for the accounts
// schema. The SQL is kept portable between PostgreSQL and SQLite so both
// backends share a single migration set.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
