// Package metrics defines and registers all custom Prometheus metrics for the
// employee management API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_mgmt"

// RecordsCreatedTotal counts successfully created records.
// Label:
//   - entity: "department", "employee", or "user"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by entity.",
	},
	[]string{"entity"},
)

// ConflictsTotal counts rejected writes that hit a uniqueness rule.
// Label:
//   - entity: the entity whose unique field collided
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of writes rejected by a unique constraint.",
	},
	[]string{"entity"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_header", "unknown_user", "bad_password"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed basic-auth attempts, by reason.",
	},
	[]string{"reason"},
)

// AuthCacheTotal counts credential-cache decisions.
// Label:
//   - result: "hit" (bcrypt skipped) or "miss" (full verification)
var AuthCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_cache_total",
		Help:      "Total number of credential cache lookups, labelled by result.",
	},
	[]string{"result"},
)
