package http

import (
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	"taskboard-api/pkg/deadline"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date"        binding:"required"`
	Time        string `json:"time"`
	Priority    string `json:"priority"    binding:"required,oneof=high medium low"`
}

func (r createReq) toInput(ownerID string, instant time.Time) task.CreateTaskInput {
	return task.CreateTaskInput{
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Deadline:    instant,
		Priority:    model.Priority(r.Priority),
	}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority" binding:"omitempty,oneof=high medium low"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput(ownerID string) task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		OwnerID:   ownerID,
		Completed: r.Completed,
		Priority:  model.Priority(r.Priority),
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

type updateReq struct {
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=high medium low"`
	Completed   *bool  `json:"completed"`
}

func (r updateReq) toInput(ownerID, id string) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          id,
		OwnerID:     ownerID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Priority:    model.Priority(r.Priority),
		Completed:   r.Completed,
	}
}

// ---

type deleteReq struct {
	ConfirmCascade bool `json:"confirmCascade"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        deadline.FormatDate(t.Deadline),
		Time:        deadline.FormatTime(t.Deadline),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newTaskResp(t model.Task) taskResp { return newTaskResp(t) }

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type taskSummaryResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

type pendingDeleteResp struct {
	RequiresConfirmation bool              `json:"requires_confirmation"`
	DependentTasks       []taskSummaryResp `json:"dependent_tasks"`
}

func (h *handler) newPendingDeleteResp(out task.DeleteTaskOutput) pendingDeleteResp {
	dependents := make([]taskSummaryResp, len(out.DependentTasks))
	for i, t := range out.DependentTasks {
		dependents[i] = taskSummaryResp{
			ID:    t.ID,
			Title: t.Title,
			Date:  deadline.FormatDate(t.Deadline),
			Time:  deadline.FormatTime(t.Deadline),
		}
	}
	return pendingDeleteResp{
		RequiresConfirmation: true,
		DependentTasks:       dependents,
	}
}

type deleteResp struct {
	Message        string `json:"message"`
	CascadeDeleted int    `json:"cascade_deleted"`
}

func (h *handler) newDeleteResp(out task.DeleteTaskOutput) deleteResp {
	return deleteResp{
		Message:        "task deleted",
		CascadeDeleted: out.CascadeDeleted,
	}
}
