// Package mount is the host rendering environment for acss node
// blueprints. Mount instantiates a vdom tree into live nodes, populating
// any requested ui.Ref exactly once; Unmount clears every ref before the
// nodes are released, so no caller ever observes a stale handle.
//
// An Instance owns its nodes. Handles hand out borrowed access only; the
// renderer and ref consumers never take ownership.
package mount

import (
	"fmt"

	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// Node is a live, instantiated node. It implements ui.NodeHandle.
type Node struct {
	inst     *Instance
	tag      string
	kind     vdom.VKind
	text     string
	attrs    map[string]string
	handlers map[string]any
	children []*Node
}

// refBinding pairs a requested ref with the node it resolves to.
type refBinding struct {
	ref  *ui.Ref
	node *Node
}

// Instance is one mounted tree. It owns its nodes for the duration of the
// mount; Unmount invalidates every handle that was attached.
type Instance struct {
	root       *Node
	refs       []refBinding
	mounted    bool
	focused    *Node
	scrolledTo *Node
}

// Mount instantiates a blueprint tree. Fragments are spliced into their
// parent; nil and unknown node kinds are rejected.
func Mount(root *vdom.VNode) (*Instance, error) {
	if root == nil {
		return nil, fmt.Errorf("mount: nil root")
	}

	inst := &Instance{}
	node, err := inst.instantiate(root)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("mount: root is not mountable (kind %s)", root.Kind)
	}
	inst.root = node
	inst.mounted = true

	// Handles are populated only after the whole tree exists.
	for _, b := range inst.refs {
		b.ref.Attach(b.node)
	}
	return inst, nil
}

// Unmount clears every attached ref, then releases the tree. It is
// idempotent; handles are nil after the first call.
func (in *Instance) Unmount() {
	if in == nil || !in.mounted {
		return
	}
	for _, b := range in.refs {
		b.ref.Detach()
	}
	in.refs = nil
	in.mounted = false
	in.root = nil
	in.focused = nil
	in.scrolledTo = nil
}

// Mounted reports whether the instance still owns live nodes.
func (in *Instance) Mounted() bool {
	return in != nil && in.mounted
}

// Root returns the root node of the mounted tree.
func (in *Instance) Root() *Node {
	if in == nil {
		return nil
	}
	return in.root
}

// Focused returns the node that last requested focus, if any.
func (in *Instance) Focused() *Node {
	return in.focused
}

// ScrolledTo returns the node that last requested scrolling, if any.
func (in *Instance) ScrolledTo() *Node {
	return in.scrolledTo
}

func (in *Instance) instantiate(v *vdom.VNode) (*Node, error) {
	switch v.Kind {
	case vdom.KindText, vdom.KindRaw:
		return &Node{inst: in, kind: v.Kind, text: v.Text}, nil

	case vdom.KindElement:
		node := &Node{
			inst:     in,
			kind:     vdom.KindElement,
			tag:      v.Tag,
			attrs:    make(map[string]string),
			handlers: make(map[string]any),
		}
		var ref *ui.Ref
		for key, value := range v.Props {
			if key == ui.KeyRef {
				if r, ok := value.(*ui.Ref); ok {
					ref = r
				}
				continue
			}
			if vdom.IsEventProp(key) {
				node.handlers[key] = value
				continue
			}
			if text, ok := vdom.AttrText(key, value); ok {
				node.attrs[key] = text
			}
		}
		if err := in.instantiateChildren(node, v.Children); err != nil {
			return nil, err
		}
		if ref != nil {
			in.refs = append(in.refs, refBinding{ref: ref, node: node})
		}
		return node, nil

	case vdom.KindFragment:
		// A fragment cannot be a node itself; callers splice its children.
		return nil, nil

	default:
		return nil, fmt.Errorf("mount: unknown node kind %d", v.Kind)
	}
}

func (in *Instance) instantiateChildren(parent *Node, children []*vdom.VNode) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.Kind == vdom.KindFragment {
			if err := in.instantiateChildren(parent, child.Children); err != nil {
				return err
			}
			continue
		}
		node, err := in.instantiate(child)
		if err != nil {
			return err
		}
		if node != nil {
			parent.children = append(parent.children, node)
		}
	}
	return nil
}
