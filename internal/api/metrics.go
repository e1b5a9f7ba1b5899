package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var namespace = "bankholiday"
var subsystem = "api"

var (
	// classifications counts single-date lookups by jurisdiction and answer
	classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "classifications_total",
		Help:      "Single-date holiday lookups partitioned by jurisdiction and result",
	}, []string{"jurisdiction", "result"})

	// requestDuration stores the processing time for every request by route
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "HTTP request processing time partitioned by route",
	}, []string{"route"})
)

func (a *API) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	observer := requestDuration.WithLabelValues(route)
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		observer.Observe(time.Since(start).Seconds())
	}
}
