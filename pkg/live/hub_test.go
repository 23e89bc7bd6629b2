package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/budgeteer-dev/notifications/pkg/notify"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(HubConfig{
		CheckOrigin: func(r *http.Request) bool { return true },
	})
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		hub.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestEmitBroadcastsToClient(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)

	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Emit(context.Background(), EventName, map[string]any{
		"level":   "success",
		"message": "✅ Budget saved",
	})

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var frame struct {
		Event  string         `json:"event"`
		Detail map[string]any `json:"detail"`
	}
	if err := json.Unmarshal(msg, &frame); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if frame.Event != EventName {
		t.Errorf("event = %q, want %q", frame.Event, EventName)
	}
	if frame.Detail["level"] != "success" {
		t.Errorf("level = %v, want success", frame.Detail["level"])
	}
	if frame.Detail["message"] != "✅ Budget saved" {
		t.Errorf("message = %v", frame.Detail["message"])
	}
}

func TestBridgeShowEmitsToastEvent(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	notifier := notify.New(NewBridge(hub))
	notifier.Warning("Low balance")

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var frame struct {
		Event  string         `json:"event"`
		Detail map[string]any `json:"detail"`
	}
	if err := json.Unmarshal(msg, &frame); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if frame.Detail["level"] != "warning" {
		t.Errorf("level = %v, want warning", frame.Detail["level"])
	}
	if frame.Detail["class"] != "text-bg-warning" {
		t.Errorf("class = %v, want text-bg-warning", frame.Detail["class"])
	}
	if frame.Detail["message"] != "⚠️ Low balance" {
		t.Errorf("message = %v", frame.Detail["message"])
	}
	if notifier.Container().Len() != 1 {
		t.Errorf("expected toast in container, got %d", notifier.Container().Len())
	}
}

func TestHiddenFrameRemovesToast(t *testing.T) {
	hub, srv := newTestHub(t)
	conn := dial(t, srv)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	notifier := notify.New(NewBridge(hub))
	notifier.Success("Budget saved")

	toasts := notifier.Container().Toasts()
	if len(toasts) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(toasts))
	}

	report, _ := json.Marshal(map[string]any{"event": "hidden", "id": toasts[0].ID})
	if err := conn.WriteMessage(websocket.TextMessage, report); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	waitFor(t, func() bool { return notifier.Container().Len() == 0 })
}

func TestBridgeWithoutHub(t *testing.T) {
	bridge := NewBridge(nil)
	if _, err := bridge.Attach(&notify.Toast{ID: 1}); err != ErrNoHub {
		t.Errorf("err = %v, want ErrNoHub", err)
	}
}

func TestBridgeDismissIdempotent(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	bridge := NewBridge(hub)

	handle, err := bridge.Attach(&notify.Toast{ID: 7, Severity: notify.SeverityInfo})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	fired := 0
	handle.OnHidden(func() { fired++ })

	bridge.dismiss(7)
	bridge.dismiss(7)

	if fired != 1 {
		t.Errorf("continuation fired %d times, want exactly once", fired)
	}
}

func TestOnHiddenAfterFireIsDropped(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	bridge := NewBridge(hub)

	handle, err := bridge.Attach(&notify.Toast{ID: 9})
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	bridge.dismiss(9)

	called := false
	handle.OnHidden(func() { called = true })
	if called {
		t.Error("late registration must not fire")
	}
}

func TestPendingToastsAreBounded(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	bridge := NewBridge(hub, WithMaxPending(5))
	notifier := notify.New(bridge)

	notifier.Success("Budget saved")
	notifier.Warning("Low balance")
	notifier.Danger("Over budget")
	notifier.Info("Welcome back")
	notifier.Info("Report ready")
	notifier.Info("Backup done")

	if got := notifier.Container().Len(); got != 5 {
		t.Fatalf("container holds %d toasts, want 5", got)
	}
	bridge.mu.Lock()
	pending := len(bridge.handles)
	bridge.mu.Unlock()
	if pending != 5 {
		t.Errorf("pending handles = %d, want 5", pending)
	}

	toasts := notifier.Container().Toasts()
	if toasts[0].Message != "⚠️ Low balance" {
		t.Errorf("oldest surviving toast = %q, want the second shown", toasts[0].Message)
	}
}

func TestEvictionSkipsDismissedToasts(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	bridge := NewBridge(hub, WithMaxPending(2))
	notifier := notify.New(bridge)

	notifier.Success("first")
	notifier.Success("second")

	toasts := notifier.Container().Toasts()
	bridge.dismiss(toasts[0].ID)

	notifier.Success("third")
	notifier.Success("fourth")

	if got := notifier.Container().Len(); got != 2 {
		t.Errorf("container holds %d toasts, want 2", got)
	}
	remaining := notifier.Container().Toasts()
	if remaining[0].Message != "✅ third" {
		t.Errorf("oldest surviving toast = %q, want ✅ third", remaining[0].Message)
	}
}

func TestUnknownHiddenIDIsNoOp(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	bridge := NewBridge(hub)

	// Must not panic or affect anything.
	bridge.dismiss(12345)
}
