package usecase

import (
	"context"

	repo "taskboard-api/internal/dependency/repository"
)

// wouldCreateCycle reports whether adding the edge prerequisite → dependent
// would close a directed cycle in the owner's graph. Pure read: the edge set
// is loaded once and walked in memory.
func (uc *implUseCase) wouldCreateCycle(ctx context.Context, ownerID, prerequisiteID, dependentID string) (bool, error) {
	edges, err := uc.repo.ListEdges(ctx, repo.ListEdgesOptions{OwnerID: ownerID})
	if err != nil {
		return false, err
	}

	// Direct check: the exact reverse edge already exists.
	for _, e := range edges {
		if e.DependentTaskID == prerequisiteID && e.PrerequisiteTaskID == dependentID {
			return true, nil
		}
	}

	// General check: walk "depends on" links from the prerequisite. If the
	// prerequisite transitively depends on the dependent, the new edge would
	// close a cycle.
	dependsOn := make(map[string][]string, len(edges))
	for _, e := range edges {
		dependsOn[e.DependentTaskID] = append(dependsOn[e.DependentTaskID], e.PrerequisiteTaskID)
	}

	visited := make(map[string]bool)
	stack := []string{prerequisiteID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == dependentID {
			return true, nil
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		stack = append(stack, dependsOn[current]...)
	}

	return false, nil
}
