// Package notifytest provides test helpers for the notification
// pipeline: rendering assertions over vdom trees and a MockWidget
// that stands in for the browser-side toast library.
package notifytest
