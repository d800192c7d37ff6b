package notification

import (
	"context"

	"taskboard-api/internal/model"
)

// Sink receives domain events from the task and dependency managers.
// Delivery is fire-and-forget: implementations log failures and never
// propagate them into the emitting operation.
type Sink interface {
	Emit(ctx context.Context, event model.Event)
}

// Notifier delivers one event to its owner over a single transport. The
// emitting domains are indifferent to which transports are configured.
type Notifier interface {
	Notify(ctx context.Context, event model.Event) error
}

// UseCase is the notification domain's application boundary, serving clients
// that poll instead of receiving pushes.
type UseCase interface {
	List(ctx context.Context, input ListNotificationsInput) (ListNotificationsOutput, error)
	MarkRead(ctx context.Context, ownerID, id string) error
}
