package domain

import "time"

// Notification type tags.
const (
	NotificationStatusUpdate = "status_update"
)

// Admin log action tags.
const (
	ActionUpdateStatus = "UPDATE_STATUS"
	ActionUpdateRole   = "UPDATE_ROLE"
	ActionDelete       = "DELETE"
)

// Audit target types.
const (
	TargetReport = "report"
	TargetUser   = "user"
)

// Notification is an append-only message addressed to a report's owner,
// produced as a side effect of a status transition.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ReportID  string    `json:"report_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminLog records a single privileged mutation. Entries are append-only and
// are never updated or deleted by the application.
type AdminLog struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"admin_id"`
	Action     string    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
