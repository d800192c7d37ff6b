package postgre

import (
	"fmt"
	"strings"

	repo "taskboard-api/internal/dependency/repository"
)

// buildGetOneWhere builds the WHERE clause + args for GetOneEdge.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneWhere(opt repo.GetOneEdgeOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	add := func(column, value string) {
		if value == "" {
			return
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	add("id", opt.ID)
	add("owner_id", opt.OwnerID)
	add("prerequisite_task_id", opt.PrerequisiteTaskID)
	add("dependent_task_id", opt.DependentTaskID)

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListWhere builds the WHERE clause + args for ListEdges.
// TaskID matches either endpoint.
func (r *implRepository) buildListWhere(opt repo.ListEdgesOptions) (string, []any) {
	conditions := []string{"owner_id = $1"}
	args := []any{opt.OwnerID}
	idx := 2

	if opt.TaskID != "" {
		conditions = append(conditions,
			fmt.Sprintf("(prerequisite_task_id = $%d OR dependent_task_id = $%d)", idx, idx))
		args = append(args, opt.TaskID)
		idx++
	}
	if opt.PrerequisiteTaskID != "" {
		conditions = append(conditions, fmt.Sprintf("prerequisite_task_id = $%d", idx))
		args = append(args, opt.PrerequisiteTaskID)
		idx++
	}
	if opt.DependentTaskID != "" {
		conditions = append(conditions, fmt.Sprintf("dependent_task_id = $%d", idx))
		args = append(args, opt.DependentTaskID)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}
