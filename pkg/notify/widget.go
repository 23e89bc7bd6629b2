package notify

// Widget is the injected toast-widget capability. It stands in for the
// client-side toast library the hosting page provides: a constructor
// over the toast element, a show method, and a one-shot hidden
// lifecycle event.
//
// Implementations: live.Bridge delivers toasts to connected browsers;
// notifytest.MockWidget records them for tests.
type Widget interface {
	// Attach binds a toast to the widget and returns its handle.
	Attach(t *Toast) (Handle, error)
}

// Handle controls one attached toast.
type Handle interface {
	// Show triggers the toast's show behavior. Transition timing and
	// auto-hide duration belong to the widget, not to this package.
	Show()

	// OnHidden registers a completion continuation invoked when the
	// toast's hide transition finishes, whether by timeout or manual
	// dismissal. The continuation fires at most once per registration
	// even if the widget reports the hidden event repeatedly.
	OnHidden(fn func())
}
