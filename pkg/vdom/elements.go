package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string, EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				if v.Key == "key" {
					if s, ok := v.Value.(string); ok {
						node.Key = s
					}
				}
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					if attr.Key == "key" {
						if s, ok := attr.Value.(string); ok {
							node.Key = s
						}
					}
					node.Props[attr.Key] = attr.Value
				}
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// Document structure elements

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func Link(args ...any) *VNode   { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }

// Content sectioning elements

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func Hr(args ...any) *VNode   { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }

// Form elements

func Button(args ...any) *VNode { return createElement("button", args) }
func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }

// Element creates a VNode with an arbitrary tag.
// Prefer the named constructors for common tags.
func Element(tag string, args ...any) *VNode { return createElement(tag, args) }
