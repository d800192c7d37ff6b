package dependency

import "context"

// UseCase is the dependency domain's application boundary. Create runs the
// full precondition chain (self-loop, existence, cycle, deadline ordering,
// duplicate) and persists nothing on any failure; Validate runs the same
// chain without persisting.
type UseCase interface {
	Create(ctx context.Context, input CreateEdgeInput) (CreateEdgeOutput, error)
	Update(ctx context.Context, input UpdateEdgeInput) (UpdateEdgeOutput, error)
	Delete(ctx context.Context, ownerID, id string) error
	Validate(ctx context.Context, input ValidateEdgeInput) error
	List(ctx context.Context, ownerID string) (ListEdgesOutput, error)
	ListForTask(ctx context.Context, ownerID, taskID string) (TaskEdgesOutput, error)
}
