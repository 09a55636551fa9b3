package mount

import "github.com/shawn-sandy/acss/pkg/vdom"

// Tag returns the markup tag of the node. Implements ui.NodeHandle.
func (n *Node) Tag() string {
	return n.tag
}

// Attr returns a rendered attribute value. Implements ui.NodeHandle.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Focus records a focus request on the owning instance.
// Implements ui.NodeHandle.
func (n *Node) Focus() {
	if n.inst != nil && n.inst.mounted {
		n.inst.focused = n
	}
}

// ScrollIntoView records a scroll request on the owning instance.
// Implements ui.NodeHandle.
func (n *Node) ScrollIntoView() {
	if n.inst != nil && n.inst.mounted {
		n.inst.scrolledTo = n
	}
}

// Kind returns the node kind.
func (n *Node) Kind() vdom.VKind {
	return n.kind
}

// Text returns the content of a text or raw node.
func (n *Node) Text() string {
	return n.text
}

// Children returns the live child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// HasHandler reports whether an event handler is bound under the
// "on"-prefixed key.
func (n *Node) HasHandler(event string) bool {
	_, ok := n.handlers[event]
	return ok
}

// Invoke calls the handler bound to the event, if it is a plain func().
// It reports whether a handler ran.
func (n *Node) Invoke(event string) bool {
	h, ok := n.handlers[event]
	if !ok {
		return false
	}
	if fn, ok := h.(func()); ok {
		fn()
		return true
	}
	return false
}

// InnerText concatenates the text content of the subtree.
func (n *Node) InnerText() string {
	if n.kind == vdom.KindText || n.kind == vdom.KindRaw {
		return n.text
	}
	var out string
	for _, c := range n.children {
		out += c.InnerText()
	}
	return out
}

// Find returns the first node in the subtree with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	if n.tag == tag {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}
