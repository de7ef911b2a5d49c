package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpavlovs/taskvault/internal/server/repositories/entries"
)

// RepositoryManager owns the database connection and vends repositories
// bound to it.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Entries() entries.Repository
}
