package notification

import "taskboard-api/internal/model"

type ListNotificationsInput struct {
	OwnerID    string
	UnreadOnly bool
	Limit      int
	Offset     int
}

type ListNotificationsOutput struct {
	Notifications []model.Notification
	Total         int
	Limit         int
	Offset        int
}
