package repository

import (
	"context"

	"taskboard-api/internal/model"
)

// Repository defines all data access methods for Dependency edges. Every
// method is owner-scoped. The directed (dependent, prerequisite) pair carries
// a unique index, so a concurrent duplicate create fails at the insert
// boundary rather than in application logic.
type Repository interface {
	// CreateEdge inserts a new edge. Returns ErrDuplicatePair when the
	// unique index rejects the insert.
	CreateEdge(ctx context.Context, opt CreateEdgeOptions) (model.Dependency, error)
	// GetOneEdge returns the zero-value Dependency (ID == "") when not found.
	GetOneEdge(ctx context.Context, opt GetOneEdgeOptions) (model.Dependency, error)
	ListEdges(ctx context.Context, opt ListEdgesOptions) ([]model.Dependency, error)
	UpdateEdge(ctx context.Context, opt UpdateEdgeOptions) (model.Dependency, error)
	DeleteEdge(ctx context.Context, ownerID, id string) error
	// DeleteEdgesTouching removes every edge where any of the given tasks
	// appears as either endpoint. Used by cascade delete to guarantee no
	// dangling edges survive.
	DeleteEdgesTouching(ctx context.Context, ownerID string, taskIDs []string) error
}
