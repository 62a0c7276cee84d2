package repomanager

import (
	"context"
	"database/sql"

	"github.com/retail-hub/accounts/internal/dbx"
	"github.com/retail-hub/accounts/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a *sql.DB or a
// *sql.Tx) and knows how to bring the schema up to date for its dialect.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
