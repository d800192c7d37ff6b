package dependency

import "taskboard-api/internal/model"

// --- UseCase Inputs ---

type CreateEdgeInput struct {
	OwnerID            string
	DependentTaskID    string
	PrerequisiteTaskID string
	Description        string
}

type UpdateEdgeInput struct {
	ID      string
	OwnerID string
	// Description is the only mutable field; changing either endpoint is
	// modeled as delete + create.
	Description string
}

type ValidateEdgeInput struct {
	OwnerID            string
	DependentTaskID    string
	PrerequisiteTaskID string
}

// --- UseCase Outputs ---

// PopulatedEdge is an edge joined with both endpoint task records, so list
// responses can render titles and deadlines without follow-up lookups.
type PopulatedEdge struct {
	Edge             model.Dependency
	PrerequisiteTask model.Task
	DependentTask    model.Task
}

type CreateEdgeOutput struct {
	Edge             model.Dependency
	PrerequisiteTask model.Task
	DependentTask    model.Task
}

type UpdateEdgeOutput struct {
	Edge model.Dependency
}

type ListEdgesOutput struct {
	Edges []PopulatedEdge
}

// TaskEdgesOutput splits one task's edges by role: Prerequisites are edges
// where the task is the dependent (what it waits on), Dependents are edges
// where it is the prerequisite (what waits on it).
type TaskEdgesOutput struct {
	Prerequisites []PopulatedEdge
	Dependents    []PopulatedEdge
}
