package flash_test

import (
	"strings"
	"testing"

	"github.com/budgeteer-dev/notifications/pkg/flash"
	"github.com/budgeteer-dev/notifications/pkg/notify"
	"github.com/budgeteer-dev/notifications/pkg/notifytest"
)

func newNotifier() (*notify.Notifier, *notifytest.MockWidget) {
	widget := notifytest.NewMockWidget()
	return notify.New(widget), widget
}

func TestMigrateConvertsAlerts(t *testing.T) {
	notifier, widget := newNotifier()

	doc := `<html><body>
		<div class="alert alert-success d-none">Budget saved</div>
		<div class="alert alert-warning d-none"> Low balance </div>
		<div class="alert d-none">Welcome back</div>
		<p>page content</p>
	</body></html>`

	cleaned, migrated, err := flash.Migrate(notifier, doc)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if migrated != 3 {
		t.Fatalf("expected 3 migrated nodes, got %d", migrated)
	}

	shown := widget.Shown()
	if len(shown) != 3 {
		t.Fatalf("expected 3 toasts, got %d", len(shown))
	}

	want := []struct {
		severity notify.Severity
		message  string
	}{
		{notify.SeveritySuccess, "✅ Budget saved"},
		{notify.SeverityWarning, "⚠️ Low balance"}, // trimmed
		{notify.SeverityInfo, "ℹ️ Welcome back"},   // no marker, info default
	}
	for i, w := range want {
		if shown[i].Severity != w.severity {
			t.Errorf("toast %d severity = %q, want %q", i, shown[i].Severity, w.severity)
		}
		if shown[i].Message != w.message {
			t.Errorf("toast %d message = %q, want %q", i, shown[i].Message, w.message)
		}
	}

	if strings.Contains(cleaned, "alert-success") || strings.Contains(cleaned, "d-none") {
		t.Errorf("expected legacy alerts stripped, got:\n%s", cleaned)
	}
	if !strings.Contains(cleaned, "page content") {
		t.Errorf("expected unrelated content preserved, got:\n%s", cleaned)
	}
}

func TestMigratePriorityOrder(t *testing.T) {
	// A node matching several markers is classified by priority,
	// success > warning > danger.
	notifier, widget := newNotifier()

	doc := `<html><body>
		<div class="alert alert-danger alert-success d-none">both</div>
		<div class="alert alert-danger alert-warning d-none">other both</div>
	</body></html>`

	_, migrated, err := flash.Migrate(notifier, doc)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if migrated != 2 {
		t.Fatalf("expected 2 migrated nodes, got %d", migrated)
	}

	shown := widget.Shown()
	if shown[0].Severity != notify.SeveritySuccess {
		t.Errorf("first toast severity = %q, want success", shown[0].Severity)
	}
	if shown[1].Severity != notify.SeverityWarning {
		t.Errorf("second toast severity = %q, want warning", shown[1].Severity)
	}
}

func TestMigrateSkipsVisibleAlerts(t *testing.T) {
	notifier, widget := newNotifier()

	doc := `<html><body>
		<div class="alert alert-success">visible, not migrated</div>
		<div class="d-none">hidden but not an alert</div>
	</body></html>`

	cleaned, migrated, err := flash.Migrate(notifier, doc)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if migrated != 0 {
		t.Errorf("expected no migration, got %d", migrated)
	}
	if widget.ShownCount() != 0 {
		t.Errorf("expected no toasts, got %d", widget.ShownCount())
	}
	if !strings.Contains(cleaned, "visible, not migrated") {
		t.Errorf("expected visible alert preserved, got:\n%s", cleaned)
	}
}

func TestMigrateNilNotifierStillRemovesNodes(t *testing.T) {
	doc := `<html><body>
		<div class="alert alert-danger d-none">orphaned</div>
	</body></html>`

	cleaned, migrated, err := flash.Migrate(nil, doc)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if migrated != 1 {
		t.Errorf("expected 1 migrated node, got %d", migrated)
	}
	if strings.Contains(cleaned, "orphaned") {
		t.Errorf("expected node removed even without a notifier, got:\n%s", cleaned)
	}
}

func TestMigrateEmptyMessage(t *testing.T) {
	notifier, widget := newNotifier()

	doc := `<html><body><div class="alert alert-success d-none">   </div></body></html>`

	_, migrated, err := flash.Migrate(notifier, doc)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if migrated != 1 {
		t.Fatalf("expected 1 migrated node, got %d", migrated)
	}
	shown := widget.Shown()
	if shown[0].Message != "✅ " {
		t.Errorf("message = %q, want glyph prefix only", shown[0].Message)
	}
}
