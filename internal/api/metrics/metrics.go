// Package metrics defines and registers all custom Prometheus metrics for
// the TimeJobs API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at package init via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timejobs"

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "worker", "employer" or "moderator"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// JobsCreatedTotal counts postings submitted for moderation.
// Label:
//   - pay_type: "shift" or "hourly"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created, by pay type.",
	},
	[]string{"pay_type"},
)

// JobStatusTransitionsTotal counts successful moderation/lifecycle actions.
// Label:
//   - action: "approve", "reject" or "close"
var JobStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_status_transitions_total",
		Help:      "Total number of job status transitions, by action.",
	},
	[]string{"action"},
)

// ApplicationsCreatedTotal counts successfully filed applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications filed.",
	},
)

// ApplicationsRejectedTotal counts apply attempts refused before insert.
// Label:
//   - reason: "forbidden", "incomplete_profile" or "duplicate"
var ApplicationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_rejected_total",
		Help:      "Total number of apply attempts refused, by reason.",
	},
	[]string{"reason"},
)
