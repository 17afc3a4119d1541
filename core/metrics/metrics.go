// Package metrics defines the Prometheus collectors of the standalone host.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "standalone_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "standalone_http_request_duration_seconds",
			Help:    "Time taken to handle HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	DescriptorReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "standalone_descriptor_reloads_total",
			Help: "Total number of deployment descriptor reloads",
		},
		[]string{"result"},
	)

	ServerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "standalone_server_state",
			Help: "Lifecycle state of the listener (0 new, 1 starting, 2 running, 3 stopped, 4 failed)",
		},
	)
)

// Middleware records request count and duration.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		RequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}
