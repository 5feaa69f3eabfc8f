package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

// UserService implements admin-only account management.
type UserService struct {
	repo   ports.UserRepository
	audit  ports.AuditRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, logger: logger}
}

// List returns every account except the requester's own, newest first.
func (s *UserService) List(ctx context.Context, requesterID string) ([]*domain.User, error) {
	return s.repo.List(ctx, requesterID)
}

// UpdateRole changes an account's role and records the change in the audit trail.
func (s *UserService) UpdateRole(ctx context.Context, actorID, userID, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	entry := &domain.AdminLog{
		AdminID:    actorID,
		Action:     domain.ActionUpdateRole,
		TargetType: domain.TargetUser,
		TargetID:   userID,
		Details:    fmt.Sprintf("Role changed to %s", role),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to insert audit entry")
	}

	s.logger.Info().Str("user_id", userID).Str("role", role).Str("admin_id", actorID).Msg("user role updated")
	return nil
}

// Delete removes an account. The repository cascades the deletion to the
// account's reports and notifications in the same transaction.
func (s *UserService) Delete(ctx context.Context, actorID, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	entry := &domain.AdminLog{
		AdminID:    actorID,
		Action:     domain.ActionDelete,
		TargetType: domain.TargetUser,
		TargetID:   user.ID,
		Details:    fmt.Sprintf("Deleted user: %s", user.Username),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to insert audit entry")
	}

	s.logger.Info().Str("user_id", user.ID).Str("admin_id", actorID).Msg("user deleted")
	return nil
}
