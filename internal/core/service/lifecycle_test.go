package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

// End-to-end service flow: register, log in, file a report, and watch the
// owner's notifications accumulate as an admin walks the report through the
// state machine.
func TestReportLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()

	userRepo := newStubUserRepo()
	reportRepo := newStubReportRepo()
	notifRepo := newStubNotificationRepo()
	cache := newStubUnreadCache()

	authSvc := NewAuthService(userRepo, "secret", time.Hour)
	reportSvc := NewReportService(reportRepo, &stubAuditRepo{}, cache, zerolog.Nop())
	notifSvc := NewNotificationService(notifRepo, cache, zerolog.Nop())

	// The stub report repo does not insert notifications itself (that is the
	// mongo transaction's job), so mirror applied changes into the stub sink.
	applyNotifications := func() {
		for _, change := range reportRepo.changes[len(notifRepo.notifications):] {
			n := repoNotification(change)
			notifRepo.notifications[n.ID] = n
		}
	}

	alice, err := authSvc.Register(ctx, "alice", "alice@x.com", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := authSvc.Login(ctx, "alice@x.com", "secret1")
	if err != nil || token == "" {
		t.Fatalf("login failed: token=%q err=%v", token, err)
	}

	report, err := reportSvc.Create(ctx, ports.CreateReportInput{
		OwnerID:     alice.ID,
		OwnerName:   alice.Username,
		ProblemType: "Pothole",
		Location:    "Main St",
		Issue:       "large pothole",
	})
	if err != nil {
		t.Fatalf("create report failed: %v", err)
	}
	if report.Status != domain.StatusPending || report.Priority != domain.PriorityMedium {
		t.Fatalf("unexpected defaults: status=%s priority=%s", report.Status, report.Priority)
	}

	if err := reportSvc.SetStatus(ctx, ports.SetStatusInput{ReportID: report.ID, Status: "In Progress", ActorID: "admin1"}); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}
	applyNotifications()

	list, err := notifSvc.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(list) != 1 || list[0].IsRead || list[0].ReportID != report.ID {
		t.Fatalf("expected one unread notification for the report, got %+v", list)
	}

	if err := reportSvc.SetStatus(ctx, ports.SetStatusInput{ReportID: report.ID, Status: "Resolved", ActorID: "admin1"}); err != nil {
		t.Fatalf("second transition failed: %v", err)
	}
	applyNotifications()

	list, err = notifSvc.ListForUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected two notifications after resolve, got %d", len(list))
	}

	count, err := notifSvc.UnreadCount(ctx, alice.ID)
	if err != nil || count != 2 {
		t.Fatalf("expected unread count 2, got %d (err=%v)", count, err)
	}

	if err := notifSvc.MarkAllRead(ctx, alice.ID); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	count, err = notifSvc.UnreadCount(ctx, alice.ID)
	if err != nil || count != 0 {
		t.Fatalf("expected unread count 0 after mark-read, got %d (err=%v)", count, err)
	}
}

func repoNotification(change ports.StatusChange) *domain.Notification {
	n := *change.Notification
	n.ID = "lifecycle-" + change.ReportID + "-" + string(change.NewStatus)
	return &n
}
