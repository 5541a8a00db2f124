package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus instruments used by the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CountdownsCreated      prometheus.Counter
	CountdownsDeleted      prometheus.Counter
	CountdownsActive       prometheus.Gauge
	SchedulingFailures     prometheus.Counter
	CancellationFailures   prometheus.Counter
	NotificationsDelivered *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers all instruments on a fresh registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		CountdownsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countdowns_created_total",
			Help:      "Countdowns committed to the store.",
		}),
		CountdownsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countdowns_deleted_total",
			Help:      "Countdowns removed from the store.",
		}),
		CountdownsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countdowns_active",
			Help:      "Countdowns currently held by the store.",
		}),
		SchedulingFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduling_failures_total",
			Help:      "Schedule requests that failed and fell back to a degraded handle.",
		}),
		CancellationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellation_failures_total",
			Help:      "Cancel requests that failed during delete.",
		}),
		NotificationsDelivered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Fired notifications by delivery result.",
		}, []string{"result"}),
		gatherer: reg,
	}
}

// ObserveCreated records a committed countdown and the resulting list size.
func (m *Metrics) ObserveCreated(degraded bool, active int) {
	if m == nil {
		return
	}
	m.CountdownsCreated.Inc()
	if degraded {
		m.SchedulingFailures.Inc()
	}
	m.CountdownsActive.Set(float64(active))
}

// ObserveDeleted records a removed countdown and the resulting list size.
func (m *Metrics) ObserveDeleted(cancelFailed bool, active int) {
	if m == nil {
		return
	}
	m.CountdownsDeleted.Inc()
	if cancelFailed {
		m.CancellationFailures.Inc()
	}
	m.CountdownsActive.Set(float64(active))
}

// ObserveDelivery counts a fired notification by delivery result.
func (m *Metrics) ObserveDelivery(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.NotificationsDelivered.WithLabelValues(result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
