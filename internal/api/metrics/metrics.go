// Package metrics defines and registers all custom Prometheus metrics for
// the activity service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register themselves with the default registry via promauto at
// package init; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "activity"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

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

// ActivitiesCreatedTotal counts activities added to the catalog.
var ActivitiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activities created.",
	},
)

// JoinsTotal counts join attempts against the participant registrar.
// Label:
//   - result: "joined", "duplicate", or "not_found"
var JoinsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "joins_total",
		Help:      "Total number of join attempts, by result.",
	},
	[]string{"result"},
)
