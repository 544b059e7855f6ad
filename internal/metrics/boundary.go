package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Métricas Prometheus de llamadas de frontera. Viven en un paquete propio
// para evitar ciclos de import entre el core del SDK y el gateway.

var (
	BoundaryCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gridlink_boundary_calls_total",
		Help: "Llamadas de frontera por operación y resultado",
	}, []string{"op", "outcome"})

	BoundaryCallLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridlink_boundary_call_seconds",
		Help:    "Latencia de llamadas de frontera en segundos",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"op"})

	PeerRefsReleased = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gridlink_peer_refs_released_total",
		Help: "Referencias remotas liberadas por el gateway",
	})
)

// Register registra las métricas en el registry dado (o el default si nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{BoundaryCalls, BoundaryCallLatency, PeerRefsReleased} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
