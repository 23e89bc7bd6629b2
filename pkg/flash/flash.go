package flash

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/budgeteer-dev/notifications/pkg/notify"
)

// Class markers identifying a legacy alert node. Both must be present:
// the generic alert class and the hidden marker that keeps the
// server-rendered markup invisible until migration.
const (
	AlertClass  = "alert"
	HiddenClass = "d-none"
)

// severityMarkers is the ordered check list for classification.
// First match wins; a node matching several markers is classified by
// this priority, and a node matching none defaults to info.
var severityMarkers = []struct {
	class    string
	severity notify.Severity
}{
	{"alert-success", notify.SeveritySuccess},
	{"alert-warning", notify.SeverityWarning},
	{"alert-danger", notify.SeverityDanger},
}

// Migrate converts every hidden legacy alert in the HTML document into
// a toast and strips it from the markup. It returns the cleaned
// document and the number of nodes migrated.
//
// For each matched node the severity is derived from its class
// markers, the message is its trimmed text content, and the matching
// Notifier entry point is invoked. A nil notifier skips the show but
// the node is removed regardless, so stale flash markup never reaches
// the client twice.
func Migrate(n *notify.Notifier, doc string) (string, int, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return doc, 0, err
	}

	alerts := collectAlerts(root)
	for _, node := range alerts {
		severity := classify(nodeClasses(node))
		message := strings.TrimSpace(textContent(node))
		dispatch(n, severity, message)
		node.Parent.RemoveChild(node)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return doc, len(alerts), err
	}
	return buf.String(), len(alerts), nil
}

// collectAlerts gathers the legacy alert nodes in document order.
// Collection is separated from removal so the tree is not mutated
// mid-walk.
func collectAlerts(root *html.Node) []*html.Node {
	var alerts []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && isLegacyAlert(nodeClasses(node)) {
			alerts = append(alerts, node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return alerts
}

// isLegacyAlert reports whether the class list marks a hidden alert.
func isLegacyAlert(classes []string) bool {
	return containsClass(classes, AlertClass) && containsClass(classes, HiddenClass)
}

// classify derives the severity from the class list by first match in
// priority order, defaulting to info.
func classify(classes []string) notify.Severity {
	for _, marker := range severityMarkers {
		if containsClass(classes, marker.class) {
			return marker.severity
		}
	}
	return notify.SeverityInfo
}

// dispatch invokes the Notifier entry point matching the severity.
// A nil notifier silently skips the show.
func dispatch(n *notify.Notifier, severity notify.Severity, message string) {
	if n == nil {
		return
	}
	switch severity {
	case notify.SeveritySuccess:
		n.Success(message)
	case notify.SeverityWarning:
		n.Warning(message)
	case notify.SeverityDanger:
		n.Danger(message)
	default:
		n.Info(message)
	}
	n.Metrics().Migrated()
}

func containsClass(classes []string, name string) bool {
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

func nodeClasses(node *html.Node) []string {
	for _, a := range node.Attr {
		if a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func textContent(node *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return buf.String()
}
