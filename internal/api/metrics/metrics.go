// Package metrics defines and registers all custom Prometheus metrics for
// the holdings API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "holdings"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// SignupsTotal counts account creations that completed successfully.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (invalid credentials; no finer split to
//     keep the metric as enumeration-resistant as the API)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts session token verifications in the
// middleware.
// Label:
//   - result: "ok", "expired", "invalid", or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// TransactionTokensIssuedTotal counts transaction tokens minted for
// compliance-sensitive operations.
var TransactionTokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transaction_tokens_issued_total",
		Help:      "Total number of transaction tokens issued.",
	},
)

// AuditEventsDroppedTotal counts audit events discarded because a worker's
// buffer was full. A non-zero rate means the audit trail is losing events
// and the worker count or buffer size needs raising.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to full queue buffers.",
	},
)

// RateLimitRejectionsTotal counts requests rejected by the fixed-window
// limiter.
// Label:
//   - scope: the limiter scope (e.g. "auth")
var RateLimitRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratelimit_rejections_total",
		Help:      "Total number of requests rejected by the rate limiter, by scope.",
	},
	[]string{"scope"},
)
