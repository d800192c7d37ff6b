package postgre

import (
	"fmt"
	"strings"

	repo "taskboard-api/internal/task/repository"
)

// buildListWhere builds the WHERE clause + args for ListTasks.
// OwnerID is always the first condition; optional filters follow as ANDs.
func (r *implRepository) buildListWhere(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"owner_id = $1"}
	args := []any{opt.OwnerID}
	idx := 2

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}
