package task

import "context"

// UseCase is the task domain's application boundary. Update runs the deadline
// guard before persisting; Delete runs the cascade coordinator.
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, ownerID, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, input DeleteTaskInput) (DeleteTaskOutput, error)
}
