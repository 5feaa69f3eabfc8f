package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

// ReportService owns the report lifecycle: creation, listing, the status
// state machine with its notification and audit side effects, and deletion.
type ReportService struct {
	repo   ports.ReportRepository
	audit  ports.AuditRepository
	unread UnreadInvalidator
	logger zerolog.Logger
}

// UnreadInvalidator drops a user's cached unread-notification count after a
// write that changes it.
type UnreadInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

func NewReportService(repo ports.ReportRepository, audit ports.AuditRepository, unread UnreadInvalidator, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, audit: audit, unread: unread, logger: logger}
}

// Create files a new report owned by the authenticated user. Priority
// defaults to Medium; status always starts Pending. The owner's username is
// copied onto the record so later account changes do not rewrite history.
func (s *ReportService) Create(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error) {
	if input.ProblemType == "" || input.Location == "" || input.Issue == "" {
		return nil, domain.ErrMissingFields
	}

	priority := domain.ReportPriority(input.Priority)
	if input.Priority == "" {
		priority = domain.PriorityMedium
	} else if !priority.ValidPriority() {
		return nil, domain.ErrInvalidPriority
	}

	report := &domain.Report{
		UserID:       input.OwnerID,
		ReporterName: input.OwnerName,
		ProblemType:  input.ProblemType,
		Location:     input.Location,
		Issue:        input.Issue,
		Priority:     priority,
		Status:       domain.StatusPending,
		PhotoData:    input.PhotoData,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.OwnerID).Msg("failed to create report")
		return nil, err
	}

	s.logger.Info().Str("report_id", created.ID).Str("user_id", created.UserID).Str("priority", string(created.Priority)).Msg("report created")
	return created, nil
}

func (s *ReportService) ListAll(ctx context.Context) ([]*domain.Report, error) {
	return s.repo.ListAll(ctx)
}

func (s *ReportService) ListForOwner(ctx context.Context, userID string) ([]*domain.Report, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// SetStatus applies a status transition. The status write, the owner's
// notification, and the audit entry are committed as one transaction.
func (s *ReportService) SetStatus(ctx context.Context, input ports.SetStatusInput) error {
	newStatus := domain.ReportStatus(input.Status)
	if !newStatus.ValidStatus() {
		return domain.ErrInvalidStatus
	}

	report, err := s.repo.FindByID(ctx, input.ReportID)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	if !report.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("set status: %w (from %s to %s)", domain.ErrInvalidTransition, report.Status, newStatus)
	}

	now := time.Now().UTC()
	change := ports.StatusChange{
		ReportID:  report.ID,
		NewStatus: newStatus,
		Notification: &domain.Notification{
			UserID:    report.UserID,
			ReportID:  report.ID,
			Message:   fmt.Sprintf("Your report status has been updated to %s", newStatus),
			Type:      domain.NotificationStatusUpdate,
			CreatedAt: now,
		},
		Log: &domain.AdminLog{
			AdminID:    input.ActorID,
			Action:     domain.ActionUpdateStatus,
			TargetType: domain.TargetReport,
			TargetID:   report.ID,
			Details:    fmt.Sprintf("Status changed to %s", newStatus),
			CreatedAt:  now,
		},
	}

	if err := s.repo.ApplyStatusChange(ctx, change); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	// The owner gained an unread notification; drop their cached count.
	if err := s.unread.Invalidate(ctx, report.UserID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", report.UserID).Msg("failed to invalidate unread cache")
	}

	s.logger.Info().
		Str("report_id", report.ID).
		Str("from", string(report.Status)).
		Str("to", string(newStatus)).
		Str("admin_id", input.ActorID).
		Msg("report status updated")

	return nil
}

// Delete removes a report and appends an audit entry naming what was deleted.
// The audit insert is non-fatal: the deletion stands even if it fails.
func (s *ReportService) Delete(ctx context.Context, input ports.DeleteReportInput) error {
	report, err := s.repo.FindByID(ctx, input.ReportID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	if err := s.repo.Delete(ctx, report.ID); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	entry := &domain.AdminLog{
		AdminID:    input.ActorID,
		Action:     domain.ActionDelete,
		TargetType: domain.TargetReport,
		TargetID:   report.ID,
		Details:    fmt.Sprintf("Deleted: %s - %s", report.ProblemType, report.Location),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("report_id", report.ID).Msg("failed to insert audit entry")
	}

	s.logger.Info().Str("report_id", report.ID).Str("admin_id", input.ActorID).Msg("report deleted")
	return nil
}
