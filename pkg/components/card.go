package components

import (
	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// CardOption configures a Card.
type CardOption func(*cardConfig)

type cardConfig struct {
	classes string
	styles  ui.Styles
	title   string
}

// CardClasses replaces the card's class list.
func CardClasses(classes string) CardOption {
	return func(c *cardConfig) {
		c.classes = classes
	}
}

// CardStyles sets override styles.
func CardStyles(s ui.Styles) CardOption {
	return func(c *cardConfig) {
		c.styles = s
	}
}

// CardTitle adds a heading above the card body.
func CardTitle(title string) CardOption {
	return func(c *cardConfig) {
		c.title = title
	}
}

// NewCard renders an article-variant card wrapping the given body.
func NewCard(body []*vdom.VNode, opts ...CardOption) *vdom.VNode {
	cfg := cardConfig{classes: "acss-card"}
	for _, opt := range opts {
		opt(&cfg)
	}

	props := ui.Props{
		"as":      ui.VariantArticle,
		"classes": cfg.classes,
		"defaultStyles": ui.Styles{
			"padding": "1rem",
		},
	}
	if cfg.styles != nil {
		props["styles"] = cfg.styles
	}

	children := make([]any, 0, len(body)+1)
	if cfg.title != "" {
		children = append(children, vdom.H3(vdom.Text(cfg.title)))
	}
	for _, n := range body {
		children = append(children, n)
	}

	return ui.MustRender(props, children...)
}
