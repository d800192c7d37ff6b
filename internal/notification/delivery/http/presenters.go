package http

import (
	"time"

	"taskboard-api/internal/model"
	"taskboard-api/internal/notification"
)

type listReq struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}

func (r listReq) toInput(ownerID string) notification.ListNotificationsInput {
	limit := r.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return notification.ListNotificationsInput{
		OwnerID:    ownerID,
		UnreadOnly: r.UnreadOnly,
		Limit:      limit,
		Offset:     offset,
	}
}

type notificationResp struct {
	ID        string         `json:"id"`
	EventName string         `json:"event_name"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt string         `json:"created_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:        n.ID,
		EventName: string(n.EventName),
		Message:   n.Message,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Total         int                `json:"total"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

func (h *handler) newListResp(out notification.ListNotificationsOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = newNotificationResp(n)
	}
	return listResp{
		Notifications: items,
		Total:         out.Total,
		Limit:         out.Limit,
		Offset:        out.Offset,
	}
}
