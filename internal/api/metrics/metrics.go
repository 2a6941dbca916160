// Package metrics defines the custom Prometheus metrics for the recruitment
// CRM API. It is the single source of truth for metric names, labels, and
// help strings. All metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credential", or "inactive"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts authorization rejections after a valid token.
// Label:
//   - role: the caller's role at the time of rejection
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of forbidden responses, by caller role.",
	},
	[]string{"role"},
)

// ── Pipeline metrics ──────────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts newly submitted applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications submitted.",
	},
)

// ApplicationTransitionsTotal counts pipeline status changes.
// Label:
//   - status: the new application status (e.g. "shortlisted")
var ApplicationTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_transitions_total",
		Help:      "Total number of application status changes, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsEnqueued counts events handed to the dispatcher.
// Label:
//   - kind: the notification kind (e.g. "application_received")
var NotificationsEnqueued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_enqueued_total",
		Help:      "Total number of notification events enqueued.",
	},
	[]string{"kind"},
)

// NotificationsDelivered counts events persisted by the workers.
// Label:
//   - kind: the notification kind
var NotificationsDelivered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of notification events delivered to storage.",
	},
	[]string{"kind"},
)

// ── Matching metrics ──────────────────────────────────────────────────────────

// MatchCacheTotal counts match cache decisions.
// Label:
//   - result: "hit" (cached assessment reused) or "miss" (LLM called)
var MatchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_cache_total",
		Help:      "Total number of match cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// MatchEvaluationDuration measures the end-to-end duration of one LLM
// evaluation, including prompt rendering and response parsing.
var MatchEvaluationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "match_evaluation_duration_seconds",
		Help:      "Duration of LLM match evaluations from request to parsed verdict.",
		Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
	},
)
