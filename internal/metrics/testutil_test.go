package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// getTestMetrics creates a Metrics instance backed by a fresh registry so
// tests never collide with the default registerer
func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}
