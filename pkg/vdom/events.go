package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On creates an EventHandler for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }

// OnHidden handles the hidden lifecycle event of a toast widget.
func OnHidden(handler any) EventHandler { return event("hidden", handler) }
