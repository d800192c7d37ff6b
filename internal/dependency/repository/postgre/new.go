package postgre

import (
	"database/sql"
	"fmt"

	"taskboard-api/internal/dependency/repository"
	"taskboard-api/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the dependency domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dependency/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dependency/repository/postgre.%s", method)
}
