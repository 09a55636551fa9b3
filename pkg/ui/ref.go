package ui

import "sync/atomic"

// NodeHandle is a borrowed, ownership-free reference to an instantiated
// node. The host rendering environment owns the node; a handle is only
// valid between mount and unmount of that instance. Consumers use it for
// focus and scroll management.
type NodeHandle interface {
	// Tag is the markup tag of the resolved variant's node.
	Tag() string
	// Attr returns a rendered attribute value on the live node.
	Attr(name string) (string, bool)
	// Focus requests focus on the node.
	Focus()
	// ScrollIntoView scrolls the node into the viewport.
	ScrollIntoView()
}

// Ref is a caller-supplied slot populated with a NodeHandle at mount and
// cleared at unmount. It has exactly one writer, the mount host; readers
// may load it from any goroutine without observing a torn handle.
//
// A Ref never retains the node beyond detach, and it is nil before mount
// and after unmount. One Ref belongs to one instance; two instances never
// share a slot.
type Ref struct {
	handle atomic.Pointer[NodeHandle]
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Current returns the live handle, or nil when the instance is not mounted.
func (r *Ref) Current() NodeHandle {
	p := r.handle.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Attach populates the slot. Called by the mount host once per mount,
// after the node exists. On a variant change the host detaches the old
// handle before attaching the new one, so a stale handle is never
// observable.
func (r *Ref) Attach(h NodeHandle) {
	if r == nil || h == nil {
		return
	}
	r.handle.Store(&h)
}

// Detach clears the slot. Called by the mount host at unmount, before the
// node is destroyed.
func (r *Ref) Detach() {
	if r == nil {
		return
	}
	r.handle.Store(nil)
}
