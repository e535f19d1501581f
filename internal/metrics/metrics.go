package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Notification outcomes.
const (
	OutcomeDispatched = "dispatched"
	OutcomeSuppressed = "suppressed"
	OutcomeFailed     = "failed"
)

// Sweep outcomes per campaign.
const (
	SweepTransitioned = "transitioned"
	SweepUnchanged    = "unchanged"
	SweepErrored      = "errored"
)

var (
	// Transitions counts applied lifecycle transitions.
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_transitions_total",
			Help: "Number of campaign state transitions applied",
		},
		[]string{"from", "to"},
	)

	// SweepDuration tracks how long one expiration sweep takes.
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "crowdfund_sweep_duration_seconds",
			Help: "Duration of expiration sweeps in seconds",
			Buckets: []float64{
				0.01, // 10ms
				0.05, // 50ms
				0.1,  // 100ms
				0.5,  // 500ms
				1,    // 1s
				5,    // 5s
				15,   // 15s
				60,   // 1m
				300,  // 5m
			},
		},
	)

	// SweepCampaigns counts campaigns visited by sweeps by outcome.
	SweepCampaigns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_sweep_campaigns_total",
			Help: "Number of campaigns evaluated by expiration sweeps",
		},
		[]string{"outcome"},
	)

	// Notifications counts gate decisions by kind and outcome.
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_notifications_total",
			Help: "Number of notifications passed through the gate",
		},
		[]string{"kind", "outcome"},
	)
)

// RecordTransition records an applied state transition.
func RecordTransition(from, to string) {
	Transitions.WithLabelValues(from, to).Inc()
}

// RecordSweep records the duration of a sweep in seconds.
func RecordSweep(duration float64) {
	SweepDuration.Observe(duration)
}

// RecordSweepCampaign records the outcome of one campaign within a sweep.
func RecordSweepCampaign(outcome string) {
	SweepCampaigns.WithLabelValues(outcome).Inc()
}

// RecordNotification records a gate decision.
func RecordNotification(kind, outcome string) {
	Notifications.WithLabelValues(kind, outcome).Inc()
}
