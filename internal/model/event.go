package model

import "time"

// EventName identifies a domain event type.
type EventName string

const (
	EventDependencyCreated EventName = "dependency.created"
	EventDependencyUpdated EventName = "dependency.updated"
	EventDependencyDeleted EventName = "dependency.deleted"
	EventTaskDeleted       EventName = "task.deleted"
)

// Event is a domain event emitted after a successful mutation. Delivery is
// best-effort: sinks log failures and never fail the primary operation.
type Event struct {
	Name       EventName
	OwnerID    string
	Message    string         // user-facing summary, ready for display
	Data       map[string]any // structured payload (task titles, ids, counts)
	OccurredAt time.Time
}

// Notification is a persisted, per-owner copy of an event, served to clients
// that poll instead of receiving pushes.
type Notification struct {
	ID        string
	OwnerID   string
	EventName EventName
	Message   string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}
