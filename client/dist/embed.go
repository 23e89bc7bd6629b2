package clientdist

import _ "embed"

// NotifyJS is the thin client runtime for the notification pipeline.
//
// It is served by the demo server at "/notify/client.js".
//go:embed budgeteer-notify.js
var NotifyJS []byte
