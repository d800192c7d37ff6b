package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskboard-api/internal/model"
	repo "taskboard-api/internal/task/repository"
)

const taskColumns = `id, owner_id, title, description, deadline, priority, completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Deadline,
		&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, owner_id, title, description, deadline, priority, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, opt.Description, opt.Deadline.UTC(), opt.Priority,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task scoped to its owner.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND owner_id = $2 LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.OwnerID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// GetTasksByIDs fetches the subset of ids that exist for the owner.
func (r *implRepository) GetTasksByIDs(ctx context.Context, ownerID string, ids []string) ([]model.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE owner_id = $1 AND id = ANY($2)`, taskColumns)
	rows, err := r.db.QueryContext(ctx, query, ownerID, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTasksByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// ListTasks returns a paginated list of the owner's Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListWhere(opt)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE %s ORDER BY deadline ASC LIMIT $%d OFFSET $%d`,
		taskColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, rows.Err()
}

// UpdateTask replaces the mutable fields of a Task and returns the new row.
// Returns zero-value Task when the id does not exist for the owner.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, description = $2, deadline = $3, priority = $4, completed = $5, updated_at = $6
		WHERE id = $7 AND owner_id = $8
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Deadline.UTC(), opt.Priority, opt.Completed, time.Now().UTC(),
		opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTasks removes all listed tasks for the owner in one statement.
func (r *implRepository) DeleteTasks(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	const query = `DELETE FROM tasks WHERE owner_id = $1 AND id = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, ownerID, pq.Array(ids)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTasks"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
