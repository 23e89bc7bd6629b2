package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
type Renderer struct {
	config Config
}

// New creates a new Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a VNode tree to a complete HTML string.
func ToString(node *vdom.VNode) (string, error) {
	return New(Config{}).RenderToString(node)
}

// RenderToString renders a VNode tree to a complete HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Void elements self-close
	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	escaped := escapeHTML(node.Text)
	_, err := w.Write([]byte(escaped))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component by rendering its output VNode.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	if node.Comp != nil {
		output := node.Comp.Render()
		return r.renderNode(w, output, depth)
	}
	return nil
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	_, err := w.Write([]byte(node.Text))
	return err
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") {
			continue
		}

		// Skip event handlers (bound over the live connection, not serialized)
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			continue
		}

		if key == "key" {
			continue
		}

		// Boolean attributes
		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue != "" {
			escaped := escapeAttr(strValue)
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escaped); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}

// attrToString converts an attribute value to its string form.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isEventHandler reports whether the value is a callable handler.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}
