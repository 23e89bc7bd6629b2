// Package live delivers toasts to connected pages over WebSocket.
//
// The Hub fans custom events out to every connected client as JSON
// frames and routes dismissal reports back. The Bridge adapts a Hub to
// the notify.Widget capability, so a Notifier needs no knowledge of
// the transport:
//
//	hub := live.NewHub(live.HubConfig{})
//	notifier := notify.New(live.NewBridge(hub))
//
// The client runtime in client/dist listens for the EventName event,
// drives the page's toast widget, and reports each toast's hidden
// lifecycle event back through the same connection.
package live
