package notification

import (
	"context"

	"taskboard-api/internal/model"
	"taskboard-api/internal/notification/repository"
)

// StoreNotifier persists events as per-owner notification rows, to be fetched
// by clients that poll GET /notifications instead of holding a push channel.
type StoreNotifier struct {
	repo repository.Repository
}

var _ Notifier = (*StoreNotifier)(nil)

// NewStoreNotifier creates a poll-transport notifier backed by the store.
func NewStoreNotifier(repo repository.Repository) *StoreNotifier {
	return &StoreNotifier{repo: repo}
}

// Notify writes the event as an unread notification for its owner.
func (n *StoreNotifier) Notify(ctx context.Context, event model.Event) error {
	_, err := n.repo.CreateNotification(ctx, repository.CreateNotificationOptions{
		OwnerID:   event.OwnerID,
		EventName: event.Name,
		Message:   event.Message,
		Data:      event.Data,
	})
	return err
}
