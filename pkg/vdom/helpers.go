package vdom

import "fmt"

// Text creates a text node. Content is escaped when rendered.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf is Text with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a node whose content is emitted verbatim, with no escaping.
// Only feed it markup the program itself produced.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without introducing a wrapper element; the
// renderer splices its children directly into the parent. Accepts the
// same child argument shapes as the element constructors.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}

	for _, child := range children {
		switch v := child.(type) {
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
		}
	}

	return node
}

// The conditional helpers return nil for the false branch. Element
// constructors drop nil children, so markup can be assembled inline
// without statement-level branching around the tree literal.

// If returns node when cond holds.
func If(cond bool, node *VNode) *VNode {
	if cond {
		return node
	}
	return nil
}

// IfElse picks between two nodes.
func IfElse(cond bool, yes, no *VNode) *VNode {
	if cond {
		return yes
	}
	return no
}

// When builds the node lazily; fn runs only when cond holds.
func When(cond bool, fn func() *VNode) *VNode {
	if cond {
		return fn()
	}
	return nil
}

// Range maps a slice to child nodes. Nil results are skipped, so fn can
// filter while mapping.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// Key marks a node for identity tracking across renders.
func Key(key any) Attr {
	return attr("key", fmt.Sprint(key))
}
