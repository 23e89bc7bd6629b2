package notify

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

type noopHandle struct{}

func (noopHandle) Show()           {}
func (noopHandle) OnHidden(func()) {}

type noopWidget struct{}

func (noopWidget) Attach(*Toast) (Handle, error) { return noopHandle{}, nil }

func TestMetricsCountShown(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	n := New(noopWidget{}, WithMetrics(m))

	n.Success("one")
	n.Success("two")
	n.Danger("three")

	success := m.toastsShown.WithLabelValues("success")
	if got := counterValue(t, success); got != 2 {
		t.Errorf("success counter = %v, want 2", got)
	}
	danger := m.toastsShown.WithLabelValues("danger")
	if got := counterValue(t, danger); got != 1 {
		t.Errorf("danger counter = %v, want 1", got)
	}
}

func TestMetricsCountDismissed(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	var hiddenFn func()
	widget := widgetFunc(func(*Toast) (Handle, error) {
		return handleFuncs{onHidden: func(fn func()) { hiddenFn = fn }}, nil
	})
	n := New(widget, WithMetrics(m))

	n.Info("bye")
	hiddenFn()
	hiddenFn() // duplicate event, must not double count

	if got := counterValue(t, m.toastsDismissed); got != 1 {
		t.Errorf("dismissed counter = %v, want 1", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.shown(SeveritySuccess)
	m.dismissed()
	m.Migrated()
}

type widgetFunc func(*Toast) (Handle, error)

func (f widgetFunc) Attach(t *Toast) (Handle, error) { return f(t) }

type handleFuncs struct {
	onHidden func(fn func())
}

func (h handleFuncs) Show() {}
func (h handleFuncs) OnHidden(fn func()) {
	if h.onHidden != nil {
		h.onHidden(fn)
	}
}
