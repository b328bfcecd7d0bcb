package pipeline

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the pipeline's Prometheus counters. A nil *Metrics is
// valid everywhere it's accepted — callers that don't want metrics simply
// don't build one, mirroring the nil-safe-logger convention used for
// *slog.Logger elsewhere in this package.
type Metrics struct {
	VoronoiFailures prometheus.Counter
	CarverOvertimes prometheus.Counter
	GroupsProcessed prometheus.Counter
	RoutesEmitted   prometheus.Counter
}

// NewMetrics registers the pipeline's counters against reg and returns a
// Metrics ready to pass to RunGroup / Orchestrator. Pass a nil reg to get
// a fully functional Metrics that just isn't exported anywhere.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		VoronoiFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "voronoi_failures_total",
			Help: "Voronoi driver failures recovered at subdivision granularity.",
		}),
		CarverOvertimes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "carver_overtime_total",
			Help: "Carver watchdog timeouts recovered at group granularity.",
		}),
		GroupsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "groups_processed_total",
			Help: "Groups that completed RunGroup with routes or with an empty result.",
		}),
		RoutesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "routes_emitted_total",
			Help: "Routes emitted across all groups.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.VoronoiFailures, m.CarverOvertimes, m.GroupsProcessed, m.RoutesEmitted)
	}
	return m
}
