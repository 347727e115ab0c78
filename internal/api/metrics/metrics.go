// Package metrics defines the custom Prometheus metrics of the BloodConnect
// API. HTTP request metrics come from echoprometheus; everything here is
// domain level. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloodconnect"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: "donor" or "hospital"
//   - result: "created", "duplicate" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "donor" or "hospital"
//   - result: "success", "not_found", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// ── Match metrics ─────────────────────────────────────────────────────────────

// BloodSearchesTotal counts blood-match queries.
// Label:
//   - result: "found" or "not_found"
var BloodSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blood_searches_total",
		Help:      "Total number of blood-match queries, by outcome.",
	},
	[]string{"result"},
)

// MatchCacheTotal counts match cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var MatchCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_cache_total",
		Help:      "Total number of match cache lookups, labelled by result.",
	},
	[]string{"result"},
)
