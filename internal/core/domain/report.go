package domain

import (
	"errors"
	"time"
)

// ReportStatus represents the lifecycle state of a report.
type ReportStatus string

const (
	StatusPending    ReportStatus = "Pending"
	StatusInProgress ReportStatus = "In Progress"
	StatusResolved   ReportStatus = "Resolved"
)

// ReportPriority represents the urgency assigned by the reporter.
type ReportPriority string

const (
	PriorityLow       ReportPriority = "Low"
	PriorityMedium    ReportPriority = "Medium"
	PriorityHigh      ReportPriority = "High"
	PriorityEmergency ReportPriority = "Emergency"
)

// validTransitions defines the allowed state machine transitions.
// Resolved is terminal; Pending may skip straight to Resolved.
var validTransitions = map[ReportStatus][]ReportStatus{
	StatusPending:    {StatusInProgress, StatusResolved},
	StatusInProgress: {StatusResolved},
}

var ErrReportNotFound = errors.New("report not found")
var ErrInvalidStatus = errors.New("invalid status")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidPriority = errors.New("invalid priority")

// ValidStatus reports whether s is one of the three recognised statuses.
func (s ReportStatus) ValidStatus() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is one of the four recognised priorities.
func (p ReportPriority) ValidPriority() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Report is the core aggregate: a resident-submitted issue.
// ReporterName is denormalized from the owner at creation time so that later
// account changes do not rewrite historical reports.
type Report struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	ReporterName string         `json:"name"`
	ProblemType  string         `json:"problem_type"`
	Location     string         `json:"location"`
	Issue        string         `json:"issue"`
	Priority     ReportPriority `json:"priority"`
	Status       ReportStatus   `json:"status"`
	PhotoData    string         `json:"photo_data,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
