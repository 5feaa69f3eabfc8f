package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// StatusChange bundles the three effects of a status transition. The
// repository must apply all of them atomically: the new status on the report,
// the owner's notification, and the admin audit entry.
type StatusChange struct {
	ReportID     string
	NewStatus    domain.ReportStatus
	Notification *domain.Notification
	Log          *domain.AdminLog
}

// ReportRepository defines persistence operations for reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	// ListAll returns every report, newest first.
	ListAll(ctx context.Context) ([]*domain.Report, error)
	// ListByOwner returns the owner's reports, newest first.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Report, error)
	// ApplyStatusChange commits the status write, notification insert, and
	// audit insert as one transaction.
	ApplyStatusChange(ctx context.Context, change StatusChange) error
	Delete(ctx context.Context, id string) error
}
