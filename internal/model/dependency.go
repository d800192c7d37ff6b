package model

import "time"

// Dependency is a directed edge in one owner's task graph: DependentTaskID
// cannot be ordered after PrerequisiteTaskID. The directed pair is unique per
// owner and the graph formed by all of an owner's edges stays acyclic.
type Dependency struct {
	ID                 string
	OwnerID            string
	PrerequisiteTaskID string
	DependentTaskID    string
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
