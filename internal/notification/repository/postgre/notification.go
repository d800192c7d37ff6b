package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskboard-api/internal/model"
	repo "taskboard-api/internal/notification/repository"
)

const notificationColumns = `id, owner_id, event_name, message, data, read, created_at`

func scanNotification(row interface{ Scan(...any) error }) (model.Notification, error) {
	var n model.Notification
	var rawData []byte
	err := row.Scan(&n.ID, &n.OwnerID, &n.EventName, &n.Message, &rawData, &n.Read, &n.CreatedAt)
	if err != nil {
		return model.Notification{}, err
	}
	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &n.Data); err != nil {
			return model.Notification{}, err
		}
	}
	return n, nil
}

// CreateNotification inserts a new unread notification row.
func (r *implRepository) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	data, err := json.Marshal(opt.Data)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (id, owner_id, event_name, message, data, read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW())
		RETURNING %s`, notificationColumns)

	notification, err := scanNotification(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.EventName, opt.Message, data,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return notification, nil
}

// ListNotifications returns a page of the owner's notifications, newest
// first, and the total count for the filter.
func (r *implRepository) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, int, error) {
	conditions := []string{"owner_id = $1"}
	args := []any{opt.OwnerID}
	if opt.UnreadOnly {
		conditions = append(conditions, "read = false")
	}
	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM notifications WHERE %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListNotifications"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		`SELECT %s FROM notifications WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		notificationColumns, where, len(args)+1, len(args)+2,
	)
	rows, err := r.db.QueryContext(ctx, query, append(args, opt.Limit, opt.Offset)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotifications"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		notification, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, 0, repo.ErrFailedToList
		}
		notifications = append(notifications, notification)
	}
	return notifications, total, rows.Err()
}

// MarkRead flips the read flag and reports whether a row was matched.
func (r *implRepository) MarkRead(ctx context.Context, ownerID, id string) (bool, error) {
	const query = `UPDATE notifications SET read = true WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkRead"), err)
		return false, repo.ErrFailedToUpdate
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return affected > 0, nil
}
