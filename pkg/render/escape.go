package render

import "strings"

// Toast messages and attribute values are caller supplied, so every
// string reaching the output goes through one of these escapers.

const textSpecials = `&<>"'`
const attrSpecials = "&<>\"'\n\r\t"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// attrEscaper also encodes whitespace that would break attribute
// parsing.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	if !strings.ContainsAny(s, textSpecials) {
		return s
	}
	return textEscaper.Replace(s)
}

// escapeAttr escapes text for inclusion in an attribute value.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, attrSpecials) {
		return s
	}
	return attrEscaper.Replace(s)
}
