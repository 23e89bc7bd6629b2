// Package vdom provides the virtual DOM used to compose notification UI.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// Elements are created using variadic factory functions:
//
//	Div(Class("toast-container"),
//	    Div(Class("toast"), Role("alert"),
//	        Text("Budget saved"),
//	    ),
//	)
//
// Trees built here are server-side only; the render package serializes
// them to HTML for the hosting page.
package vdom
