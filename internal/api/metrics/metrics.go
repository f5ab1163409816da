// Package metrics defines the custom Prometheus metrics of the trip-planner
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "worldwise"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password and unknown email are
//     counted identically, matching the response contract)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// AvatarUploadsTotal counts avatar upload attempts.
// Label:
//   - result: "accepted" or "rejected" (bad media type or oversized file)
var AvatarUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "avatar_uploads_total",
		Help:      "Total number of avatar uploads, labelled by result.",
	},
	[]string{"result"},
)

// PlacesCreatedTotal counts created travel records.
// Label:
//   - resource: "cities" or "plans"
var PlacesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_created_total",
		Help:      "Total number of travel records created, by resource.",
	},
	[]string{"resource"},
)

// PlacesDeletedTotal counts delete requests that completed, including the
// silent no-op deletes of missing or foreign records.
var PlacesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "places_deleted_total",
		Help:      "Total number of completed delete requests, by resource.",
	},
	[]string{"resource"},
)
