package repository

// CreateEdgeOptions holds parameters for inserting a new edge.
type CreateEdgeOptions struct {
	OwnerID            string
	PrerequisiteTaskID string
	DependentTaskID    string
	Description        string
}

// GetOneEdgeOptions holds filter parameters for fetching a single edge.
// All non-empty fields are applied as AND conditions.
type GetOneEdgeOptions struct {
	ID                 string
	OwnerID            string
	PrerequisiteTaskID string
	DependentTaskID    string
}

// ListEdgesOptions holds filter parameters for listing edges.
// TaskID matches either endpoint; the directed fields match one role.
type ListEdgesOptions struct {
	OwnerID            string
	TaskID             string
	PrerequisiteTaskID string
	DependentTaskID    string
}

// UpdateEdgeOptions holds parameters for updating an edge's description.
type UpdateEdgeOptions struct {
	ID          string
	OwnerID     string
	Description string
}
