package http

import (
	"taskboard-api/internal/dependency"
	"taskboard-api/internal/model"
	"taskboard-api/pkg/deadline"
)

// --- Request DTOs ---

type createReq struct {
	DependentTaskID    string `json:"dependentTaskId"    binding:"required"`
	PrerequisiteTaskID string `json:"prerequisiteTaskId" binding:"required"`
	Description        string `json:"description"        binding:"max=1000"`
}

func (r createReq) toInput(ownerID string) dependency.CreateEdgeInput {
	return dependency.CreateEdgeInput{
		OwnerID:            ownerID,
		DependentTaskID:    r.DependentTaskID,
		PrerequisiteTaskID: r.PrerequisiteTaskID,
		Description:        r.Description,
	}
}

type validateReq struct {
	DependentTaskID    string `json:"dependentTaskId"    binding:"required"`
	PrerequisiteTaskID string `json:"prerequisiteTaskId" binding:"required"`
}

func (r validateReq) toInput(ownerID string) dependency.ValidateEdgeInput {
	return dependency.ValidateEdgeInput{
		OwnerID:            ownerID,
		DependentTaskID:    r.DependentTaskID,
		PrerequisiteTaskID: r.PrerequisiteTaskID,
	}
}

type updateReq struct {
	Description string `json:"description" binding:"max=1000"`
}

func (r updateReq) toInput(ownerID, id string) dependency.UpdateEdgeInput {
	return dependency.UpdateEdgeInput{
		ID:          id,
		OwnerID:     ownerID,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type taskSummaryResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
}

func newTaskSummaryResp(t model.Task) taskSummaryResp {
	return taskSummaryResp{
		ID:        t.ID,
		Title:     t.Title,
		Date:      deadline.FormatDate(t.Deadline),
		Time:      deadline.FormatTime(t.Deadline),
		Priority:  string(t.Priority),
		Completed: t.Completed,
	}
}

type edgeResp struct {
	ID                 string           `json:"id"`
	DependentTaskID    string           `json:"dependent_task_id"`
	PrerequisiteTaskID string           `json:"prerequisite_task_id"`
	Description        string           `json:"description,omitempty"`
	DependentTask      *taskSummaryResp `json:"dependent_task,omitempty"`
	PrerequisiteTask   *taskSummaryResp `json:"prerequisite_task,omitempty"`
}

func newEdgeResp(e model.Dependency) edgeResp {
	return edgeResp{
		ID:                 e.ID,
		DependentTaskID:    e.DependentTaskID,
		PrerequisiteTaskID: e.PrerequisiteTaskID,
		Description:        e.Description,
	}
}

func newPopulatedEdgeResp(pe dependency.PopulatedEdge) edgeResp {
	resp := newEdgeResp(pe.Edge)
	if pe.DependentTask.ID != "" {
		dt := newTaskSummaryResp(pe.DependentTask)
		resp.DependentTask = &dt
	}
	if pe.PrerequisiteTask.ID != "" {
		pt := newTaskSummaryResp(pe.PrerequisiteTask)
		resp.PrerequisiteTask = &pt
	}
	return resp
}

type createResp struct {
	Edge edgeResp `json:"dependency"`
}

func (h *handler) newCreateResp(out dependency.CreateEdgeOutput) createResp {
	resp := newEdgeResp(out.Edge)
	dt := newTaskSummaryResp(out.DependentTask)
	pt := newTaskSummaryResp(out.PrerequisiteTask)
	resp.DependentTask = &dt
	resp.PrerequisiteTask = &pt
	return createResp{Edge: resp}
}

type updateResp struct {
	Edge edgeResp `json:"dependency"`
}

func (h *handler) newUpdateResp(out dependency.UpdateEdgeOutput) updateResp {
	return updateResp{Edge: newEdgeResp(out.Edge)}
}

type listResp struct {
	Dependencies []edgeResp `json:"dependencies"`
}

func (h *handler) newListResp(out dependency.ListEdgesOutput) listResp {
	edges := make([]edgeResp, len(out.Edges))
	for i, pe := range out.Edges {
		edges[i] = newPopulatedEdgeResp(pe)
	}
	return listResp{Dependencies: edges}
}

type taskEdgesResp struct {
	Prerequisites []edgeResp `json:"prerequisites"`
	Dependents    []edgeResp `json:"dependents"`
}

func (h *handler) newTaskEdgesResp(out dependency.TaskEdgesOutput) taskEdgesResp {
	resp := taskEdgesResp{
		Prerequisites: make([]edgeResp, len(out.Prerequisites)),
		Dependents:    make([]edgeResp, len(out.Dependents)),
	}
	for i, pe := range out.Prerequisites {
		resp.Prerequisites[i] = newPopulatedEdgeResp(pe)
	}
	for i, pe := range out.Dependents {
		resp.Dependents[i] = newPopulatedEdgeResp(pe)
	}
	return resp
}
