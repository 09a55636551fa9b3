package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// Variant selects which markup element family a render call instantiates.
type Variant string

// The supported variant set. The set is closed: resolving anything else is
// an UnknownVariant error, never a silent fallback.
const (
	VariantDiv      Variant = "div"
	VariantSpan     Variant = "span"
	VariantSection  Variant = "section"
	VariantArticle  Variant = "article"
	VariantAside    Variant = "aside"
	VariantNav      Variant = "nav"
	VariantHeader   Variant = "header"
	VariantFooter   Variant = "footer"
	VariantMain     Variant = "main"
	VariantP        Variant = "p"
	VariantUl       Variant = "ul"
	VariantOl       Variant = "ol"
	VariantLi       Variant = "li"
	VariantButton   Variant = "button"
	VariantA        Variant = "a"
	VariantImg      Variant = "img"
	VariantFigure   Variant = "figure"
	VariantFieldset Variant = "fieldset"
)

// DefaultVariant is the variant used when a render call supplies none.
// It is the single source of truth for the default and is consulted in
// exactly one place: step 1 of Render.
const DefaultVariant = VariantDiv

// Capability describes the legal property/event schema for one variant:
// which element it instantiates, whether it can hold children, and which
// attributes and events it accepts beyond the global sets.
type Capability struct {
	Tag    string
	Void   bool
	Attrs  map[string]bool // variant-specific attributes
	Events map[string]bool // variant-specific events ("on"-prefixed keys)
}

// globalAttrs are accepted by every variant.
var globalAttrs = map[string]bool{
	"id":              true,
	"class":           true,
	"style":           true,
	"title":           true,
	"role":            true,
	"tabindex":        true,
	"hidden":          true,
	"lang":            true,
	"dir":             true,
	"accesskey":       true,
	"draggable":       true,
	"contenteditable": true,
	"spellcheck":      true,
	"slot":            true,
	"part":            true,
}

// globalEvents are accepted by every variant.
var globalEvents = map[string]bool{
	"onclick":       true,
	"ondblclick":    true,
	"onmouseenter":  true,
	"onmouseleave":  true,
	"onkeydown":     true,
	"onkeyup":       true,
	"onfocus":       true,
	"onblur":        true,
	"onpointerdown": true,
	"onpointerup":   true,
	"onscroll":      true,
}

func attrs(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// capabilities is the closed variant lookup table. It is validated once at
// package init; Resolve never mutates it.
var capabilities = map[Variant]*Capability{
	VariantDiv:     {Tag: "div"},
	VariantSpan:    {Tag: "span"},
	VariantSection: {Tag: "section"},
	VariantArticle: {Tag: "article"},
	VariantAside:   {Tag: "aside"},
	VariantNav:     {Tag: "nav"},
	VariantHeader:  {Tag: "header"},
	VariantFooter:  {Tag: "footer"},
	VariantMain:    {Tag: "main"},
	VariantP:       {Tag: "p"},
	VariantFigure:  {Tag: "figure"},
	VariantUl:      {Tag: "ul"},
	VariantOl: {
		Tag:   "ol",
		Attrs: attrs("reversed", "start", "type"),
	},
	VariantLi: {
		Tag:   "li",
		Attrs: attrs("value"),
	},
	VariantButton: {
		Tag:   "button",
		Attrs: attrs("type", "disabled", "name", "value", "autofocus", "form", "formaction", "formmethod"),
	},
	VariantA: {
		Tag:   "a",
		Attrs: attrs("href", "target", "rel", "download", "hreflang", "type", "referrerpolicy", "ping"),
	},
	VariantImg: {
		Tag:    "img",
		Void:   true,
		Attrs:  attrs("src", "alt", "width", "height", "loading", "decoding", "srcset", "sizes", "crossorigin"),
		Events: attrs("onload", "onerror"),
	},
	VariantFieldset: {
		Tag:   "fieldset",
		Attrs: attrs("disabled", "form", "name"),
	},
}

// init validates the capability table. A malformed entry is a programmer
// error in this package, not a caller error.
func init() {
	for variant, cap := range capabilities {
		if cap == nil || cap.Tag == "" {
			panic(fmt.Sprintf("ui: capability for variant %q has no tag", variant))
		}
		if cap.Tag != string(variant) {
			panic(fmt.Sprintf("ui: capability tag %q does not match variant %q", cap.Tag, variant))
		}
		if cap.Void != vdom.IsVoidElement(cap.Tag) {
			panic(fmt.Sprintf("ui: variant %q Void=%v disagrees with the element model for <%s>", variant, cap.Void, cap.Tag))
		}
		for name := range cap.Attrs {
			if name == "" || name != strings.ToLower(name) {
				panic(fmt.Sprintf("ui: variant %q has malformed attribute %q", variant, name))
			}
		}
		for name := range cap.Events {
			if !strings.HasPrefix(name, "on") || len(name) <= 2 {
				panic(fmt.Sprintf("ui: variant %q has malformed event %q", variant, name))
			}
		}
	}
	if _, ok := capabilities[DefaultVariant]; !ok {
		panic("ui: default variant is not in the capability table")
	}
}

// Resolve returns the capability descriptor for a variant. An unsupported
// variant is an UnknownVariant error; there is no fallback.
func Resolve(v Variant) (*Capability, error) {
	cap, ok := capabilities[v]
	if !ok {
		return nil, errors.New(errors.CodeUnknownVariant).
			WithDetailf("variant %q is not supported; known variants: %s", v, strings.Join(variantNames(), ", ")).
			WithSuggestion("pass one of the ui.Variant constants, or omit `as` for the default <div>")
	}
	return cap, nil
}

// AllowsAttr reports whether the capability recognizes name as a native
// attribute. data-* and aria-* are always recognized.
func (c *Capability) AllowsAttr(name string) bool {
	if globalAttrs[name] || c.Attrs[name] {
		return true
	}
	return strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-")
}

// AllowsEvent reports whether the capability recognizes the "on"-prefixed
// key as a native event.
func (c *Capability) AllowsEvent(name string) bool {
	return globalEvents[name] || c.Events[name]
}

// Variants returns the supported variant set, sorted.
func Variants() []Variant {
	vs := make([]Variant, 0, len(capabilities))
	for v := range capabilities {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

func variantNames() []string {
	names := make([]string, 0, len(capabilities))
	for _, v := range Variants() {
		names = append(names, string(v))
	}
	return names
}
