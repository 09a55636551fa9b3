package ui

import (
	"github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// Props is the incoming property bag for a render call. It mixes native
// properties (attributes, "on"-prefixed event handlers) with the reserved
// renderer keys below.
type Props map[string]any

// Reserved renderer keys. These are consumed by the renderer and never
// forwarded to the instantiated node.
const (
	// KeyAs selects the variant ("as": ui.VariantButton).
	KeyAs = "as"
	// KeyStyles is the override style configuration.
	KeyStyles = "styles"
	// KeyDefaultStyles is the default style configuration.
	KeyDefaultStyles = "defaultStyles"
	// KeyClasses replaces the native class slot.
	KeyClasses = "classes"
	// KeyChildren nests renderable content (alternative to the Render
	// variadic arguments).
	KeyChildren = "children"
	// KeyRef requests a NodeHandle. The value must be a *Ref.
	KeyRef = "ref"
)

var reservedKeys = map[string]bool{
	KeyAs:            true,
	KeyStyles:        true,
	KeyDefaultStyles: true,
	KeyClasses:       true,
	KeyChildren:      true,
	KeyRef:           true,
}

// customProps holds the renderer-internal keys extracted from a bag.
type customProps struct {
	styles        Styles
	defaultStyles Styles
	classes       string
	hasClasses    bool
	children      []any
	ref           *Ref
	passthrough   vdom.Props
}

// splitProps divides a property bag three ways: properties the capability
// recognizes (attributes and "on"-prefixed event handlers) land in the
// native output, reserved keys are consumed by the renderer, and every
// remaining key goes into the pass-through set. The split is total — no
// key is dropped — and side-effect free; the input bag is never mutated.
//
// A bag that supplies both a renderer-managed custom key and the native
// slot it owns (styles/defaultStyles alongside style, classes alongside
// class) is a PropertyConflict: the renderer cannot pick one silently.
func splitProps(cap *Capability, props Props) (vdom.Props, *customProps, error) {
	native := make(vdom.Props, len(props))
	custom := &customProps{}

	for key, value := range props {
		if !reservedKeys[key] {
			switch {
			case vdom.IsEventProp(key) && cap.AllowsEvent(key):
				native[key] = value
			case !vdom.IsEventProp(key) && cap.AllowsAttr(key):
				native[key] = value
			default:
				if custom.passthrough == nil {
					custom.passthrough = make(vdom.Props)
				}
				custom.passthrough[key] = value
			}
			continue
		}

		switch key {
		case KeyAs:
			// Consumed earlier by Render; nothing to record.

		case KeyStyles:
			styles, err := coerceStyles(KeyStyles, value)
			if err != nil {
				return nil, nil, err
			}
			custom.styles = styles

		case KeyDefaultStyles:
			styles, err := coerceStyles(KeyDefaultStyles, value)
			if err != nil {
				return nil, nil, err
			}
			custom.defaultStyles = styles

		case KeyClasses:
			s, ok := value.(string)
			if !ok {
				return nil, nil, errors.New(errors.CodePropertyConflict).
					WithDetailf("classes must be a string, got %T", value)
			}
			custom.classes = s
			custom.hasClasses = true

		case KeyChildren:
			// ChildrenTree is opaque: passed through unmodified.
			switch v := value.(type) {
			case nil:
			case []any:
				custom.children = v
			default:
				custom.children = []any{v}
			}

		case KeyRef:
			if value == nil {
				break
			}
			ref, ok := value.(*Ref)
			if !ok {
				return nil, nil, errors.New(errors.CodePropertyConflict).
					WithDetailf("ref must be a *ui.Ref, got %T", value)
			}
			custom.ref = ref
		}
	}

	if custom.styles != nil || custom.defaultStyles != nil {
		if _, ok := native["style"]; ok {
			return nil, nil, errors.New(errors.CodePropertyConflict).
				WithDetail("both a style configuration (styles/defaultStyles) and a native style attribute were supplied; the renderer owns the style slot").
				WithSuggestion("move the inline style into styles")
		}
	}
	if custom.hasClasses {
		if _, ok := native["class"]; ok {
			return nil, nil, errors.New(errors.CodePropertyConflict).
				WithDetail("both classes and a native class attribute were supplied; the renderer owns the class slot").
				WithSuggestion("use classes only")
		}
	}

	return native, custom, nil
}
