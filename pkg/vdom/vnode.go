package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds attributes and event handlers.
type Props map[string]any

// Classes returns the class attribute split into individual class names.
// Returns nil if the node has no class attribute.
func (v *VNode) Classes() []string {
	if v == nil || v.Props == nil {
		return nil
	}
	s, ok := v.Props["class"].(string)
	if !ok || s == "" {
		return nil
	}
	return strings.Fields(s)
}

// HasClass reports whether the node's class attribute contains name.
func (v *VNode) HasClass(name string) bool {
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and its descendants.
// Raw nodes contribute their markup verbatim.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var buf strings.Builder
	v.collectText(&buf)
	return buf.String()
}

func (v *VNode) collectText(buf *strings.Builder) {
	switch v.Kind {
	case KindText, KindRaw:
		buf.WriteString(v.Text)
	case KindComponent:
		if v.Comp != nil {
			if rendered := v.Comp.Render(); rendered != nil {
				rendered.collectText(buf)
			}
		}
	default:
		for _, child := range v.Children {
			if child != nil {
				child.collectText(buf)
			}
		}
	}
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
