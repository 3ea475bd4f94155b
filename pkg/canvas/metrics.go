package canvas

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	imagesAllocated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wob",
		Name:      "images_allocated_total",
		Help:      "Total number of shared memory images created.",
	})
	imagesDestroyed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "wob",
		Name:      "images_destroyed_total",
		Help:      "Total number of shared memory images released.",
	})
	allocationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wob",
		Name:      "image_allocation_failures_total",
		Help:      "Total number of failed image allocations by failing call.",
	}, []string{"op"})
	draws = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wob",
		Name:      "draws_total",
		Help:      "Total number of bars drawn by orientation.",
	}, []string{"orientation"})
)

// Collectors returns the package's prometheus collectors for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{imagesAllocated, imagesDestroyed, allocationFailures, draws}
}
