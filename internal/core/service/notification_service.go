package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

// UnreadCache caches per-user unread notification counts. A negative value
// from Get means the count is not cached.
type UnreadCache interface {
	Get(ctx context.Context, userID string) (int64, error)
	Set(ctx context.Context, userID string, count int64) error
	Invalidate(ctx context.Context, userID string) error
}

// NotificationService implements pull-based notification reads for recipients.
type NotificationService struct {
	repo   ports.NotificationRepository
	cache  UnreadCache
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, cache UnreadCache, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, cache: cache, logger: logger}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkAllRead flips the recipient's unread notifications to read. Calling it
// again is a no-op with the same end state.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	flipped, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}

	if err := s.cache.Set(ctx, userID, 0); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to update unread cache")
	}

	if flipped > 0 {
		s.logger.Info().Str("user_id", userID).Int64("count", flipped).Msg("notifications marked read")
	}
	return nil
}

// UnreadCount serves the badge counter, preferring the cache and falling
// back to the store on a miss or cache error.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if count, err := s.cache.Get(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("unread cache read failed")
	} else if count >= 0 {
		return count, nil
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}

	if err := s.cache.Set(ctx, userID, count); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to update unread cache")
	}
	return count, nil
}
