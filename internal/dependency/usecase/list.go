package usecase

import (
	"context"

	"taskboard-api/internal/dependency"
	repo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
	taskRepo "taskboard-api/internal/task/repository"
)

// List returns every edge for the owner, each populated with both endpoint
// task records.
func (uc *implUseCase) List(ctx context.Context, ownerID string) (dependency.ListEdgesOutput, error) {
	edges, err := uc.repo.ListEdges(ctx, repo.ListEdgesOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEdges: %v", err)
		return dependency.ListEdgesOutput{}, err
	}

	populated, err := uc.populate(ctx, ownerID, edges)
	if err != nil {
		return dependency.ListEdgesOutput{}, err
	}
	return dependency.ListEdgesOutput{Edges: populated}, nil
}

// ListForTask splits one task's edges by role: edges where the task is the
// dependent (its prerequisites) and edges where it is the prerequisite
// (tasks depending on it).
func (uc *implUseCase) ListForTask(ctx context.Context, ownerID, taskID string) (dependency.TaskEdgesOutput, error) {
	t, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: taskID, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForTask GetOneTask: %v", err)
		return dependency.TaskEdgesOutput{}, err
	}
	if t.ID == "" {
		return dependency.TaskEdgesOutput{}, dependency.ErrTaskNotFound
	}

	edges, err := uc.repo.ListEdges(ctx, repo.ListEdgesOptions{OwnerID: ownerID, TaskID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForTask ListEdges: %v", err)
		return dependency.TaskEdgesOutput{}, err
	}

	populated, err := uc.populate(ctx, ownerID, edges)
	if err != nil {
		return dependency.TaskEdgesOutput{}, err
	}

	var out dependency.TaskEdgesOutput
	for _, pe := range populated {
		if pe.Edge.DependentTaskID == taskID {
			out.Prerequisites = append(out.Prerequisites, pe)
		}
		if pe.Edge.PrerequisiteTaskID == taskID {
			out.Dependents = append(out.Dependents, pe)
		}
	}
	return out, nil
}

// populate joins edges with their endpoint tasks in one batched lookup.
func (uc *implUseCase) populate(ctx context.Context, ownerID string, edges []model.Dependency) ([]dependency.PopulatedEdge, error) {
	if len(edges) == 0 {
		return nil, nil
	}

	idSet := make(map[string]struct{}, len(edges)*2)
	for _, e := range edges {
		idSet[e.PrerequisiteTaskID] = struct{}{}
		idSet[e.DependentTaskID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	tasks, err := uc.taskRepo.GetTasksByIDs(ctx, ownerID, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.populate GetTasksByIDs: %v", err)
		return nil, err
	}
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	populated := make([]dependency.PopulatedEdge, 0, len(edges))
	for _, e := range edges {
		populated = append(populated, dependency.PopulatedEdge{
			Edge:             e,
			PrerequisiteTask: byID[e.PrerequisiteTaskID],
			DependentTask:    byID[e.DependentTaskID],
		})
	}
	return populated, nil
}
