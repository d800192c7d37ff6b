package postgre

import (
	"database/sql"
	"fmt"

	"taskboard-api/internal/notification/repository"
	"taskboard-api/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for notifications.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("notification/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("notification/repository/postgre.%s", method)
}
