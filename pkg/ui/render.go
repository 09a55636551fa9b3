package ui

import (
	"fmt"

	"github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// Render is the single entry point of the polymorphic element renderer.
// Given a property bag and optional children it produces the node blueprint
// for the requested variant:
//
//  1. Apply DefaultVariant if the bag carries no `as` key.
//  2. Resolve the variant's capability descriptor.
//  3. Split the bag into capability-recognized, renderer-consumed, and
//     pass-through keys. Pass-through keys reach the node unchanged.
//  4. Merge defaultStyles and styles (override wins) into the style slot.
//     An empty merge result leaves the node without a style attribute.
//  5. Fold `classes` into the class slot by literal replacement; it does
//     not concatenate with anything.
//  6. Instantiate the node with the native properties and children.
//  7. Record the ref request for the mount host.
//
// Render is a pure function of its inputs: it keeps no state between calls,
// never mutates the bag, and is safe to invoke concurrently. Children are
// passed through opaque and unmodified; both the `children` key and the
// variadic arguments are accepted, bag children first.
func Render(props Props, children ...any) (*vdom.VNode, error) {
	variant := DefaultVariant
	if props != nil {
		if raw, ok := props[KeyAs]; ok {
			v, err := variantOf(raw)
			if err != nil {
				return nil, err
			}
			variant = v
		}
	}

	cap, err := Resolve(variant)
	if err != nil {
		return nil, err
	}

	native, custom, err := splitProps(cap, props)
	if err != nil {
		return nil, err
	}

	merged := MergeStyles(custom.defaultStyles, custom.styles)
	if len(merged) > 0 {
		native["style"] = styleString(merged)
	}
	if custom.hasClasses {
		native["class"] = custom.classes
	}
	// Keys the capability does not recognize are still forwarded; the bag
	// is open-ended and the renderer drops nothing.
	for key, value := range custom.passthrough {
		native[key] = value
	}

	args := make([]any, 0, 1+len(custom.children)+len(children))
	args = append(args, native)
	args = append(args, custom.children...)
	args = append(args, children...)

	node := vdom.NewElement(cap.Tag, args...)
	if custom.ref != nil {
		node.Props[KeyRef] = custom.ref
	}
	return node, nil
}

// MustRender is Render for statically known-good bags; it panics on error.
// Component constructors with fixed variants use it.
func MustRender(props Props, children ...any) *vdom.VNode {
	node, err := Render(props, children...)
	if err != nil {
		panic(fmt.Sprintf("ui: render failed: %v", err))
	}
	return node
}

// variantOf normalizes the `as` value. Variant and string spellings are
// accepted; anything else is an UnknownVariant error.
func variantOf(raw any) (Variant, error) {
	switch v := raw.(type) {
	case Variant:
		return v, nil
	case string:
		return Variant(v), nil
	default:
		return "", errors.New(errors.CodeUnknownVariant).
			WithDetailf("`as` must be a ui.Variant or string, got %T", raw)
	}
}
