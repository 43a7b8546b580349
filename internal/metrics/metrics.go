// Package metrics exposes the relay's drop and traffic counters.
// Fire-and-forget delivery means drops are invisible on the wire by
// design; they surface here instead.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Drop reasons.
const (
	ReasonUnknownTarget = "unknown_target"
	ReasonBackpressure  = "backpressure"
	ReasonNoRoom        = "no_room"
	ReasonMissingFields = "missing_fields"
	ReasonClosedConn    = "closed_conn"
)

var (
	DroppedFrames = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meet_relay_dropped_frames_total",
		Help: "Frames dropped or events discarded by the relay, by reason.",
	}, []string{"reason"})

	InboundEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meet_relay_inbound_events_total",
		Help: "Inbound signaling events, by type.",
	}, []string{"type"})
)

func Drop(reason string) {
	DroppedFrames.WithLabelValues(reason).Inc()
}

func Inbound(eventType string) {
	InboundEvents.WithLabelValues(eventType).Inc()
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
