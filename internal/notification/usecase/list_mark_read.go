package usecase

import (
	"context"

	"taskboard-api/internal/notification"
	repo "taskboard-api/internal/notification/repository"
)

// List returns a page of the owner's notifications.
func (uc *implUseCase) List(ctx context.Context, input notification.ListNotificationsInput) (notification.ListNotificationsOutput, error) {
	notifications, total, err := uc.repo.ListNotifications(ctx, repo.ListNotificationsOptions{
		OwnerID:    input.OwnerID,
		UnreadOnly: input.UnreadOnly,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotifications: %v", err)
		return notification.ListNotificationsOutput{}, err
	}

	return notification.ListNotificationsOutput{
		Notifications: notifications,
		Total:         total,
		Limit:         input.Limit,
		Offset:        input.Offset,
	}, nil
}

// MarkRead marks one notification read. Returns ErrNotificationNotFound when
// the id does not exist for the owner.
func (uc *implUseCase) MarkRead(ctx context.Context, ownerID, id string) error {
	matched, err := uc.repo.MarkRead(ctx, ownerID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkRead: %v", err)
		return err
	}
	if !matched {
		return notification.ErrNotificationNotFound
	}
	return nil
}
