package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// UserService defines admin-only account management operations.
type UserService interface {
	// List returns every account except the requesting admin's own.
	List(ctx context.Context, requesterID string) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actorID, userID, role string) error
	// Delete removes the account and cascades to its reports and notifications.
	Delete(ctx context.Context, actorID, userID string) error
}
