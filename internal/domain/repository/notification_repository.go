package repository

import "github.com/jhoicas/Gmao-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones in-app.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
}
