package notify

import (
	"strconv"

	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

// Toast is a single notification. Every toast is dismissible, both
// manually via its close control and automatically when the widget's
// hide timeout elapses.
type Toast struct {
	// ID is assigned by the container and is unique within it.
	ID uint64

	// Severity selects the style class and glyph.
	Severity Severity

	// Message is the glyph-decorated text shown to the user.
	Message string
}

// Render returns the toast markup.
func (t *Toast) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("toast", "align-items-center", t.Severity.Class(), "border-0", "show"),
		vdom.Role("alert"),
		vdom.AriaLive("assertive"),
		vdom.AriaAtomic(true),
		vdom.Data("toast-id", strconv.FormatUint(t.ID, 10)),
		vdom.Div(
			vdom.Class("d-flex"),
			vdom.Div(
				vdom.Class("toast-body"),
				vdom.Text(t.Message),
			),
			vdom.Button(
				vdom.TypeAttr("button"),
				vdom.Class("btn-close", "btn-close-white", "me-2", "m-auto"),
				vdom.Data("bs-dismiss", "toast"),
				vdom.AriaLabel("Close"),
			),
		),
	)
}
