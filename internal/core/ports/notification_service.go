package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// NotificationService defines notification read operations for a recipient.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}
