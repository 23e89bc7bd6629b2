package flash

import (
	"strings"

	"github.com/budgeteer-dev/notifications/pkg/notify"
	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

// MigrateVNode converts hidden legacy alerts in a vdom tree into
// toasts, for pages composed with the vdom package instead of raw
// HTML. Matched nodes are dropped from their parent's children.
// Returns the number of nodes migrated.
func MigrateVNode(n *notify.Notifier, root *vdom.VNode) int {
	if root == nil {
		return 0
	}

	migrated := 0
	vdom.Walk(root, func(node *vdom.VNode) bool {
		if node.Kind != vdom.KindElement && node.Kind != vdom.KindFragment {
			return true
		}
		migrated += vdom.FilterChildren(node, func(child *vdom.VNode) bool {
			if child.Kind != vdom.KindElement || !isLegacyAlert(child.Classes()) {
				return true
			}
			severity := classify(child.Classes())
			message := strings.TrimSpace(child.TextContent())
			dispatch(n, severity, message)
			return false
		})
		return true
	})
	return migrated
}
