package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the notification pipeline.
// All methods are nil-safe so a Notifier without metrics costs nothing.
type Metrics struct {
	toastsShown     *prometheus.CounterVec
	toastsDismissed prometheus.Counter
	flashMigrated   prometheus.Counter
}

// NewMetrics registers the notification metrics with the given
// registry. Pass prometheus.DefaultRegisterer to use the default.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		toastsShown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "budgeteer",
			Subsystem: "notifications",
			Name:      "toasts_shown_total",
			Help:      "Toasts shown, by severity.",
		}, []string{"severity"}),
		toastsDismissed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "budgeteer",
			Subsystem: "notifications",
			Name:      "toasts_dismissed_total",
			Help:      "Toasts removed after their hidden event fired.",
		}),
		flashMigrated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "budgeteer",
			Subsystem: "notifications",
			Name:      "flash_migrated_total",
			Help:      "Legacy flash alerts converted into toasts.",
		}),
	}
}

func (m *Metrics) shown(severity Severity) {
	if m == nil {
		return
	}
	m.toastsShown.WithLabelValues(string(severity)).Inc()
}

func (m *Metrics) dismissed() {
	if m == nil {
		return
	}
	m.toastsDismissed.Inc()
}

// Migrated records one converted legacy flash alert.
// Exported for the flash package.
func (m *Metrics) Migrated() {
	if m == nil {
		return
	}
	m.flashMigrated.Inc()
}
