package api

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayursutra/panchakarma-portal/internal/models"
	"github.com/ayursutra/panchakarma-portal/internal/store"
)

type NotificationsAPI struct {
	store  *store.Store
	delays Delays
	log    zerolog.Logger
}

func NewNotificationsAPI(st *store.Store, delays Delays, log zerolog.Logger) *NotificationsAPI {
	return &NotificationsAPI{store: st, delays: delays, log: log}
}

// List returns the user's notifications; an empty inbox is a success.
func (a *NotificationsAPI) List(userID string) (Response[[]models.Notification], error) {
	wait(a.delays.ListNotifications)

	ns, err := a.store.NotificationsByUser(userID)
	if err != nil {
		return fail[[]models.Notification](""), fmt.Errorf("notifications: list: %w", err)
	}
	return ok(ns), nil
}

// MarkRead flips isRead to true. Calling it again on the same id is a
// harmless no-op that still succeeds.
func (a *NotificationsAPI) MarkRead(notificationID string) (Response[models.Notification], error) {
	wait(a.delays.MarkRead)

	n, err := a.store.MarkNotificationRead(notificationID)
	if errors.Is(err, store.ErrNotFound) {
		return fail[models.Notification]("Notification not found"), nil
	}
	if err != nil {
		return fail[models.Notification](""), fmt.Errorf("notifications: mark read: %w", err)
	}
	return ok(*n), nil
}
