package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
)

const edgeColumns = `id, owner_id, prerequisite_task_id, dependent_task_id, description, created_at, updated_at`

// uniqueViolation is the Postgres error code raised by the
// (owner_id, dependent_task_id, prerequisite_task_id) unique index.
const uniqueViolation = "23505"

func scanEdge(row interface{ Scan(...any) error }) (model.Dependency, error) {
	var d model.Dependency
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.PrerequisiteTaskID, &d.DependentTaskID,
		&d.Description, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// CreateEdge inserts a new edge row. A unique-index rejection maps to
// ErrDuplicatePair so concurrent duplicate creates surface as the same
// domain error as sequential ones.
func (r *implRepository) CreateEdge(ctx context.Context, opt repo.CreateEdgeOptions) (model.Dependency, error) {
	query := fmt.Sprintf(`
		INSERT INTO dependencies (id, owner_id, prerequisite_task_id, dependent_task_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, edgeColumns)

	edge, err := scanEdge(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.PrerequisiteTaskID, opt.DependentTaskID, opt.Description,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Dependency{}, repo.ErrDuplicatePair
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEdge"), err)
		return model.Dependency{}, repo.ErrFailedToInsert
	}
	return edge, nil
}

// GetOneEdge retrieves a single edge by the provided filters (AND condition).
// Returns zero-value Dependency (ID == "") when not found.
func (r *implRepository) GetOneEdge(ctx context.Context, opt repo.GetOneEdgeOptions) (model.Dependency, error) {
	where, args := r.buildGetOneWhere(opt)
	query := fmt.Sprintf(`SELECT %s FROM dependencies WHERE %s LIMIT 1`, edgeColumns, where)

	edge, err := scanEdge(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Dependency{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEdge"), err)
		return model.Dependency{}, repo.ErrFailedToGet
	}
	return edge, nil
}

// ListEdges returns all edges matching the filters, newest first.
func (r *implRepository) ListEdges(ctx context.Context, opt repo.ListEdgesOptions) ([]model.Dependency, error) {
	where, args := r.buildListWhere(opt)
	query := fmt.Sprintf(`SELECT %s FROM dependencies WHERE %s ORDER BY created_at DESC`, edgeColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEdges"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var edges []model.Dependency
	for rows.Next() {
		edge, scanErr := scanEdge(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		edges = append(edges, edge)
	}
	return edges, rows.Err()
}

// UpdateEdge replaces the description of an edge.
// Returns zero-value Dependency when the id does not exist for the owner.
func (r *implRepository) UpdateEdge(ctx context.Context, opt repo.UpdateEdgeOptions) (model.Dependency, error) {
	query := fmt.Sprintf(`
		UPDATE dependencies
		SET description = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING %s`, edgeColumns)

	edge, err := scanEdge(r.db.QueryRowContext(ctx, query,
		opt.Description, time.Now().UTC(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return model.Dependency{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEdge"), err)
		return model.Dependency{}, repo.ErrFailedToUpdate
	}
	return edge, nil
}

// DeleteEdge removes a single edge by id for the owner.
func (r *implRepository) DeleteEdge(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM dependencies WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEdge"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteEdgesTouching removes every edge where any of the given tasks appears
// as either endpoint.
func (r *implRepository) DeleteEdgesTouching(ctx context.Context, ownerID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}

	const query = `
		DELETE FROM dependencies
		WHERE owner_id = $1
		  AND (prerequisite_task_id = ANY($2) OR dependent_task_id = ANY($2))`
	if _, err := r.db.ExecContext(ctx, query, ownerID, pq.Array(taskIDs)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEdgesTouching"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
