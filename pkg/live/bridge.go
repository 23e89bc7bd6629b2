package live

import (
	"context"
	"errors"
	"sync"

	"github.com/budgeteer-dev/notifications/pkg/notify"
)

// ErrNoHub is returned by Attach when the bridge has no hub.
var ErrNoHub = errors.New("live: bridge has no hub")

// DefaultMaxPending bounds the toasts awaiting a hidden report. A page
// that never reports (closed tab, dead connection) must not grow the
// server-side state forever.
const DefaultMaxPending = 64

// Bridge implements notify.Widget over a Hub. Show requests become
// broadcast toast events; dismissal frames reported by clients fire
// the matching handle's hidden continuations.
type Bridge struct {
	hub        *Hub
	maxPending int

	mu      sync.Mutex
	handles map[uint64]*bridgeHandle
	order   []uint64
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithMaxPending caps the toasts awaiting a hidden report. When the cap
// is exceeded the oldest pending toast is treated as hidden.
func WithMaxPending(n int) BridgeOption {
	return func(b *Bridge) {
		if n > 0 {
			b.maxPending = n
		}
	}
}

// NewBridge wires a bridge to the hub's dismissal reports.
func NewBridge(hub *Hub, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		hub:        hub,
		maxPending: DefaultMaxPending,
		handles:    make(map[uint64]*bridgeHandle),
	}
	for _, opt := range opts {
		opt(b)
	}
	if hub != nil {
		hub.OnHidden(b.dismiss)
	}
	return b
}

// Attach implements notify.Widget.
func (b *Bridge) Attach(t *notify.Toast) (notify.Handle, error) {
	if b.hub == nil {
		return nil, ErrNoHub
	}

	h := &bridgeHandle{bridge: b, toast: t}

	b.mu.Lock()
	b.handles[t.ID] = h
	b.order = append(b.order, t.ID)
	evicted := b.evictLocked(t.ID)
	b.mu.Unlock()

	if evicted != nil {
		evicted.fireHidden()
	}
	return h, nil
}

// evictLocked drops the oldest pending handle when the cap is exceeded,
// skipping entries already dismissed. Caller holds b.mu.
func (b *Bridge) evictLocked(keep uint64) *bridgeHandle {
	if len(b.handles) <= b.maxPending {
		return nil
	}
	for len(b.order) > 0 {
		id := b.order[0]
		b.order = b.order[1:]
		if id == keep {
			b.order = append(b.order, id)
			continue
		}
		if h, ok := b.handles[id]; ok {
			delete(b.handles, id)
			return h
		}
	}
	return nil
}

// dismiss routes a client-reported hidden event to its handle.
// The handle is dropped first, so a duplicated report is a no-op.
func (b *Bridge) dismiss(id uint64) {
	b.mu.Lock()
	h := b.handles[id]
	delete(b.handles, id)
	b.mu.Unlock()

	if h != nil {
		h.fireHidden()
	}
}

type bridgeHandle struct {
	bridge *Bridge
	toast  *notify.Toast

	mu     sync.Mutex
	hidden []func()
	fired  bool
}

// Show broadcasts the toast event to connected pages.
func (h *bridgeHandle) Show() {
	h.bridge.hub.Emit(context.Background(), EventName, map[string]any{
		"id":      h.toast.ID,
		"level":   string(h.toast.Severity),
		"class":   h.toast.Severity.Class(),
		"message": h.toast.Message,
	})
}

// OnHidden registers a continuation for the toast's hidden event.
// Registrations after the event already fired are never invoked.
func (h *bridgeHandle) OnHidden(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fired {
		return
	}
	h.hidden = append(h.hidden, fn)
}

func (h *bridgeHandle) fireHidden() {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		return
	}
	h.fired = true
	fns := h.hidden
	h.hidden = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
