package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("bs-dismiss", "toast") → data-bs-dismiss="toast"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaAtomic sets the aria-atomic attribute.
func AriaAtomic(atomic bool) Attr { return attr("aria-atomic", atomic) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Link and resource attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// TypeAttr sets the type attribute (named to avoid conflict with Go's type keyword).
func TypeAttr(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Document attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Key sets the reconciliation key.
func Key(key string) Attr { return attr("key", key) }
