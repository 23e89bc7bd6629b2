// Package notify renders transient notification toasts for Budgeteer
// pages.
//
// A Notifier exposes one entry point per severity and delegates the
// actual display to an injected Widget capability, so the core stays
// testable without a browser:
//
//	notifier := notify.New(bridge)
//	notifier.Success("Budget saved")
//	notifier.Danger("Expense could not be deleted")
//
// Toasts live in a single fixed-position container, created lazily on
// the first show and kept for the page's lifetime. When the widget
// reports a toast's hidden lifecycle event the toast is removed from
// the container; the removal continuation fires exactly once per
// toast no matter how often the event is delivered.
//
// Server-rendered flash markup is converted into toasts by the flash
// package.
package notify
