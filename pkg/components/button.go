// Package components provides thin presentational components built on the
// polymorphic renderer in package ui. Each component fixes a variant,
// curates the property bag, and otherwise stays out of the renderer's way;
// styling remains the theming layer's business.
package components

import (
	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// ButtonOption configures a Button.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	btnType  string
	disabled bool
	classes  string
	styles   ui.Styles
	onClick  func()
	ref      *ui.Ref
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		btnType: "button",
		classes: "acss-button",
	}
}

// Submit makes the button a form submit button.
func Submit() ButtonOption {
	return func(c *buttonConfig) {
		c.btnType = "submit"
	}
}

// ButtonDisabled disables the button.
func ButtonDisabled() ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = true
	}
}

// ButtonClasses replaces the button's class list.
func ButtonClasses(classes string) ButtonOption {
	return func(c *buttonConfig) {
		c.classes = classes
	}
}

// ButtonStyles sets override styles.
func ButtonStyles(s ui.Styles) ButtonOption {
	return func(c *buttonConfig) {
		c.styles = s
	}
}

// OnClick attaches a click handler.
func OnClick(fn func()) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = fn
	}
}

// ButtonRef requests a handle to the button node (focus management).
func ButtonRef(ref *ui.Ref) ButtonOption {
	return func(c *buttonConfig) {
		c.ref = ref
	}
}

// NewButton renders a button-variant node with the given label.
func NewButton(label string, opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	props := ui.Props{
		"as":      ui.VariantButton,
		"type":    cfg.btnType,
		"classes": cfg.classes,
		"defaultStyles": ui.Styles{
			"cursor": "pointer",
		},
	}
	if cfg.disabled {
		props["disabled"] = true
	}
	if cfg.styles != nil {
		props["styles"] = cfg.styles
	}
	if cfg.onClick != nil {
		props["onclick"] = cfg.onClick
	}
	if cfg.ref != nil {
		props["ref"] = cfg.ref
	}

	return ui.MustRender(props, label)
}
