package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to child nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Nothing returns an empty fragment.
func Nothing() *VNode {
	return &VNode{Kind: KindFragment}
}

// Walk visits node and its descendants in depth-first order.
// If visit returns false the node's children are skipped.
func Walk(node *VNode, visit func(*VNode) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, visit)
	}
}

// FilterChildren removes direct children for which keep returns false.
// Returns the number of children removed.
func FilterChildren(node *VNode, keep func(*VNode) bool) int {
	if node == nil || len(node.Children) == 0 {
		return 0
	}
	kept := node.Children[:0]
	removed := 0
	for _, child := range node.Children {
		if keep(child) {
			kept = append(kept, child)
		} else {
			removed++
		}
	}
	node.Children = kept
	return removed
}
