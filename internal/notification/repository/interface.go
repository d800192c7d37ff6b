package repository

import (
	"context"

	"taskboard-api/internal/model"
)

// Repository defines all data access methods for Notification rows.
type Repository interface {
	CreateNotification(ctx context.Context, opt CreateNotificationOptions) (model.Notification, error)
	ListNotifications(ctx context.Context, opt ListNotificationsOptions) ([]model.Notification, int, error)
	// MarkRead flips the read flag; reports whether a row was matched.
	MarkRead(ctx context.Context, ownerID, id string) (bool, error)
}

// CreateNotificationOptions holds parameters for inserting a notification.
type CreateNotificationOptions struct {
	OwnerID   string
	EventName model.EventName
	Message   string
	Data      map[string]any
}

// ListNotificationsOptions holds filter and pagination parameters.
type ListNotificationsOptions struct {
	OwnerID    string
	UnreadOnly bool
	Limit      int
	Offset     int
}
