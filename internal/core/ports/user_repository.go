package ports

import (
	"context"

	"github.com/communitycare/report-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email or username yields
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users except excludeID, newest first.
	List(ctx context.Context, excludeID string) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	// Delete removes the user together with their reports and notifications
	// as a single atomic operation.
	Delete(ctx context.Context, id string) error
}
