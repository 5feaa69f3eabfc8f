package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitycare/report-system/internal/core/domain"
)

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
	nextID        int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *stubNotificationRepo) add(userID, reportID string, read bool, at time.Time) *domain.Notification {
	r.nextID++
	n := &domain.Notification{
		ID:        fmt.Sprintf("n%d", r.nextID),
		UserID:    userID,
		ReportID:  reportID,
		Message:   "Your report status has been updated to Resolved",
		Type:      domain.NotificationStatusUpdate,
		IsRead:    read,
		CreatedAt: at,
	}
	r.notifications[n.ID] = n
	return n
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	out := make([]*domain.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var flipped int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			flipped++
		}
	}
	return flipped, nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type stubUnreadCache struct {
	counts map[string]int64
	getErr error
	setErr error
}

func newStubUnreadCache() *stubUnreadCache {
	return &stubUnreadCache{counts: make(map[string]int64)}
}

func (c *stubUnreadCache) Get(_ context.Context, userID string) (int64, error) {
	if c.getErr != nil {
		return 0, c.getErr
	}
	if count, ok := c.counts[userID]; ok {
		return count, nil
	}
	return -1, nil
}

func (c *stubUnreadCache) Set(_ context.Context, userID string, count int64) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.counts[userID] = count
	return nil
}

func (c *stubUnreadCache) Invalidate(_ context.Context, userID string) error {
	delete(c.counts, userID)
	return nil
}

func TestNotificationService_ListForUser_NewestFirst(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubUnreadCache(), zerolog.Nop())

	older := repo.add("u1", "r1", false, time.Now().UTC().Add(-time.Hour))
	newer := repo.add("u1", "r2", false, time.Now().UTC())
	repo.add("u2", "r3", false, time.Now().UTC())

	list, err := svc.ListForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	if list[0].ID != newer.ID || list[1].ID != older.ID {
		t.Errorf("expected newest first, got %s then %s", list[0].ID, list[1].ID)
	}
}

// Calling MarkAllRead twice leaves the same end state as calling it once.
func TestNotificationService_MarkAllRead_Idempotent(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, zerolog.Nop())

	repo.add("u1", "r1", false, time.Now().UTC())
	repo.add("u1", "r2", false, time.Now().UTC())
	repo.add("u1", "r3", true, time.Now().UTC())

	snapshot := func() map[string]bool {
		state := make(map[string]bool)
		for id, n := range repo.notifications {
			state[id] = n.IsRead
		}
		return state
	}

	if err := svc.MarkAllRead(context.Background(), "u1"); err != nil {
		t.Fatalf("first MarkAllRead returned error: %v", err)
	}
	first := snapshot()

	if err := svc.MarkAllRead(context.Background(), "u1"); err != nil {
		t.Fatalf("second MarkAllRead returned error: %v", err)
	}
	second := snapshot()

	for id, read := range first {
		if !read {
			t.Errorf("notification %s for u1 should be read", id)
		}
		if second[id] != read {
			t.Errorf("state changed between calls for %s", id)
		}
	}
	if count := cache.counts["u1"]; count != 0 {
		t.Errorf("expected cached unread count 0, got %d", count)
	}
}

func TestNotificationService_UnreadCount_CacheMissFallsBack(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	svc := NewNotificationService(repo, cache, zerolog.Nop())

	repo.add("u1", "r1", false, time.Now().UTC())
	repo.add("u1", "r2", false, time.Now().UTC())

	count, err := svc.UnreadCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}
	if cache.counts["u1"] != 2 {
		t.Errorf("expected count written back to cache")
	}
}

func TestNotificationService_UnreadCount_CacheHit(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	cache.counts["u1"] = 7 // deliberately differs from the store
	svc := NewNotificationService(repo, cache, zerolog.Nop())

	count, err := svc.UnreadCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 7 {
		t.Fatalf("expected cached 7, got %d", count)
	}
}

func TestNotificationService_UnreadCount_CacheErrorFallsBack(t *testing.T) {
	repo := newStubNotificationRepo()
	cache := newStubUnreadCache()
	cache.getErr = errors.New("redis timeout")
	svc := NewNotificationService(repo, cache, zerolog.Nop())

	repo.add("u1", "r1", false, time.Now().UTC())

	count, err := svc.UnreadCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected store fallback, got error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}
