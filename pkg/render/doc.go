// Package render serializes vdom trees to HTML.
//
// The notify container and the pages fed to flash.Migrate are
// server-rendered with this package. Event handler props are never
// serialized; they belong to the live connection.
//
//	html, err := render.ToString(container.Render())
package render
