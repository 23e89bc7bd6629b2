// Package config loads the notifications.json configuration for the
// demo server and the toast display defaults.
package config
