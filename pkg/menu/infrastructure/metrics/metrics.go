package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
)

var (
	// Registry holds the menu service collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menuservice",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "menuservice",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route"},
	)

	domainEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menuservice",
			Subsystem: "orders",
			Name:      "events_total",
			Help:      "Domain events by type.",
		},
		[]string{"type"},
	)

	purchasedCents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "menuservice",
			Subsystem: "orders",
			Name:      "purchased_cents_total",
			Help:      "Sum of all purchase totals in cents.",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "menuservice",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sessions currently held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, domainEvents, purchasedCents, activeSessions)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveEvent is subscribed to every domain event.
func ObserveEvent(event service.Event) error {
	domainEvents.WithLabelValues(event.Type()).Inc()
	if completed, ok := event.(model.PurchaseCompleted); ok {
		purchasedCents.Add(float64(completed.Receipt.TotalCents))
	}
	return nil
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware is meant for router.Use so the matched route template is known. Wrapping the
// router's NotFoundHandler and MethodNotAllowedHandler records those under "unmatched".
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
