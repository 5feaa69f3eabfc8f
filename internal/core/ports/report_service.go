package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// CreateReportInput carries all data needed to file a new report.
// OwnerID and OwnerName come from the authenticated principal, never the body.
type CreateReportInput struct {
	OwnerID     string
	OwnerName   string
	ProblemType string
	Location    string
	Issue       string
	Priority    string
	PhotoData   string
}

// SetStatusInput carries a status transition request. ActorID is the admin
// performing the transition, recorded in the audit trail.
type SetStatusInput struct {
	ReportID string
	Status   string
	ActorID  string
}

// DeleteReportInput identifies the report to delete and the acting admin.
type DeleteReportInput struct {
	ReportID string
	ActorID  string
}

// ReportService defines use-case operations for the report lifecycle.
type ReportService interface {
	Create(ctx context.Context, input CreateReportInput) (*domain.Report, error)
	ListAll(ctx context.Context) ([]*domain.Report, error)
	ListForOwner(ctx context.Context, userID string) ([]*domain.Report, error)
	SetStatus(ctx context.Context, input SetStatusInput) error
	Delete(ctx context.Context, input DeleteReportInput) error
}
