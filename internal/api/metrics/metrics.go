// Package metrics defines and registers all custom Prometheus metrics for the
// CommunityCare report API. It is the single source of truth for metric
// names, labels, and help strings; metrics register with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "communitycare"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ReportsCreatedTotal counts filed reports.
// Label:
//   - priority: "Low", "Medium", "High", or "Emergency"
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of reports filed, by priority.",
	},
	[]string{"priority"},
)

// StatusTransitionsTotal counts successful report status transitions.
// Label:
//   - status: the new status applied ("In Progress" or "Resolved")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of report status transitions, by new status.",
	},
	[]string{"status"},
)
