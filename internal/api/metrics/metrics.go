// Package metrics defines and registers all custom Prometheus metrics for
// the store ratings API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store_ratings"

// SignupsTotal counts account creations.
// Label:
//   - role: the role assigned to the new account ("USER" via signup,
//     any role via admin creation)
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
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

// RatingsSubmittedTotal counts accepted rating submissions.
// Label:
//   - value: the submitted star value ("1" through "5")
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of ratings accepted, by star value.",
	},
	[]string{"value"},
)

// RatingsRejectedTotal counts rating submissions rejected before any write.
// Label:
//   - reason: "invalid_value" or "store_not_found"
var RatingsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_rejected_total",
		Help:      "Total number of rating submissions rejected, by reason.",
	},
	[]string{"reason"},
)
