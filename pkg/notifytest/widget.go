package notifytest

import (
	"errors"
	"sync"

	"github.com/budgeteer-dev/notifications/pkg/notify"
)

// ErrAttachFailed is returned by a MockWidget with FailAttach set.
var ErrAttachFailed = errors.New("notifytest: attach failed")

// MockWidget implements notify.Widget without a browser. It records
// every attached toast and lets tests drive the hidden lifecycle
// event by hand.
//
// Example:
//
//	widget := notifytest.NewMockWidget()
//	notifier := notify.New(widget)
//	notifier.Success("Budget saved")
//	widget.FireHidden(widget.Shown()[0].ID)
type MockWidget struct {
	// FailAttach makes every Attach call return ErrAttachFailed.
	FailAttach bool

	mu      sync.Mutex
	shown   []*notify.Toast
	handles map[uint64]*mockHandle
}

// NewMockWidget creates an empty mock widget.
func NewMockWidget() *MockWidget {
	return &MockWidget{
		handles: make(map[uint64]*mockHandle),
	}
}

// Attach implements notify.Widget.
func (w *MockWidget) Attach(t *notify.Toast) (notify.Handle, error) {
	if w.FailAttach {
		return nil, ErrAttachFailed
	}

	h := &mockHandle{widget: w, toast: t}

	w.mu.Lock()
	w.handles[t.ID] = h
	w.mu.Unlock()

	return h, nil
}

// Shown returns the toasts whose handles have had Show called,
// in show order.
func (w *MockWidget) Shown() []*notify.Toast {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*notify.Toast, len(w.shown))
	copy(out, w.shown)
	return out
}

// ShownCount returns how many toasts have been shown.
func (w *MockWidget) ShownCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.shown)
}

// FireHidden delivers the hidden lifecycle event for the given toast.
// Calling it repeatedly for the same ID is safe; the registered
// continuations fire at most once.
func (w *MockWidget) FireHidden(id uint64) {
	w.mu.Lock()
	h := w.handles[id]
	w.mu.Unlock()

	if h != nil {
		h.fireHidden()
	}
}

func (w *MockWidget) recordShow(t *notify.Toast) {
	w.mu.Lock()
	w.shown = append(w.shown, t)
	w.mu.Unlock()
}

type mockHandle struct {
	widget *MockWidget
	toast  *notify.Toast

	mu     sync.Mutex
	hidden []func()
	fired  bool
}

func (h *mockHandle) Show() {
	h.widget.recordShow(h.toast)
}

func (h *mockHandle) OnHidden(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fired {
		return
	}
	h.hidden = append(h.hidden, fn)
}

func (h *mockHandle) fireHidden() {
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
