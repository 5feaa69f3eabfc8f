package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	// ListByUser returns the recipient's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkAllRead flips every unread notification of the recipient to read
	// and returns how many were flipped. Idempotent.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	// CountUnread returns the recipient's number of unread notifications.
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// AuditRepository appends entries to the admin audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AdminLog) error
}
