package notification

import (
	"context"
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/pkg/log"
)

type eventSink struct {
	l         log.Logger
	notifiers []Notifier
}

// NewSink creates a Sink that fans each event out to all configured
// notifiers. A notifier failure is logged and does not stop the fanout.
func NewSink(l log.Logger, notifiers ...Notifier) Sink {
	return &eventSink{l: l, notifiers: notifiers}
}

func (s *eventSink) Emit(ctx context.Context, event model.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	for _, n := range s.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			s.l.Warnf(ctx, "notification delivery failed for %s (owner %s): %v",
				event.Name, event.OwnerID, err)
		}
	}
}
