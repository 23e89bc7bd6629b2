package notify

import (
	"log/slog"
	"sync"
)

// Notifier renders short-lived, dismissible toasts through an injected
// widget. It owns the singleton container, created lazily on the first
// show and reused for the page's lifetime.
type Notifier struct {
	widget  Widget
	logger  *slog.Logger
	metrics *Metrics

	position string

	mu        sync.Mutex
	container *Container
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(n *Notifier) {
		n.metrics = m
	}
}

// WithPosition sets the container's corner anchor.
// Defaults to PositionTopRight.
func WithPosition(position string) Option {
	return func(n *Notifier) {
		n.position = position
	}
}

// New creates a Notifier backed by the given widget.
//
// A nil widget is allowed: the entry points then degrade gracefully,
// dropping each show request with a debug log line instead of
// panicking on the missing capability.
func New(widget Widget, opts ...Option) *Notifier {
	n := &Notifier{
		widget:   widget,
		logger:   slog.Default(),
		position: PositionTopRight,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Metrics returns the attached metrics, or nil if none were configured.
func (n *Notifier) Metrics() *Metrics {
	return n.metrics
}

// Container returns the singleton container, creating it on first use.
func (n *Notifier) Container() *Container {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.container == nil {
		n.container = NewContainer(n.position)
	}
	return n.container
}

// Success shows a success toast.
//
//	notifier.Success("Budget saved")
func (n *Notifier) Success(message string) {
	n.Show(SeveritySuccess, message)
}

// Warning shows a warning toast.
func (n *Notifier) Warning(message string) {
	n.Show(SeverityWarning, message)
}

// Danger shows a danger toast.
func (n *Notifier) Danger(message string) {
	n.Show(SeverityDanger, message)
}

// Info shows an info toast.
func (n *Notifier) Info(message string) {
	n.Show(SeverityInfo, message)
}

// Show renders a toast of the given severity. The message is prefixed
// with the severity glyph. Empty messages are accepted.
//
// The toast is appended to the container in insertion order, shown via
// the widget, and removed again once the widget reports the hidden
// lifecycle event. Removal is idempotent; a repeated hidden event has
// no further effect.
func (n *Notifier) Show(severity Severity, message string) {
	if !severity.Valid() {
		severity = SeverityInfo
	}

	if n.widget == nil {
		n.logger.Debug("toast dropped, no widget attached",
			"severity", string(severity))
		return
	}

	container := n.Container()
	t := container.Append(severity, severity.Glyph()+" "+message)

	handle, err := n.widget.Attach(t)
	if err != nil {
		container.Remove(t.ID)
		n.logger.Warn("toast widget attach failed",
			"severity", string(severity), "error", err)
		return
	}

	var once sync.Once
	handle.OnHidden(func() {
		once.Do(func() {
			container.Remove(t.ID)
			n.metrics.dismissed()
			n.logger.Debug("toast dismissed", "id", t.ID)
		})
	})

	handle.Show()
	n.metrics.shown(severity)
	n.logger.Debug("toast shown",
		"id", t.ID, "severity", string(severity))
}
