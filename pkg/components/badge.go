package components

import (
	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// BadgeOption configures a Badge.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	classes string
	styles  ui.Styles
	label   string
}

// BadgeClasses replaces the badge's class list.
func BadgeClasses(classes string) BadgeOption {
	return func(c *badgeConfig) {
		c.classes = classes
	}
}

// BadgeStyles sets override styles.
func BadgeStyles(s ui.Styles) BadgeOption {
	return func(c *badgeConfig) {
		c.styles = s
	}
}

// BadgeLabel sets the accessible label announced for the badge.
func BadgeLabel(label string) BadgeOption {
	return func(c *badgeConfig) {
		c.label = label
	}
}

// NewBadge renders a span-variant badge with the given text.
func NewBadge(text string, opts ...BadgeOption) *vdom.VNode {
	cfg := badgeConfig{classes: "acss-badge"}
	for _, opt := range opts {
		opt(&cfg)
	}

	props := ui.Props{
		"as":      ui.VariantSpan,
		"classes": cfg.classes,
		"defaultStyles": ui.Styles{
			"display": "inline-block",
		},
	}
	if cfg.styles != nil {
		props["styles"] = cfg.styles
	}
	if cfg.label != "" {
		props["aria-label"] = cfg.label
	}

	return ui.MustRender(props, text)
}

// NewNav renders a nav-variant container around the given links.
func NewNav(label string, links []*vdom.VNode) *vdom.VNode {
	return ui.MustRender(ui.Props{
		"as":         ui.VariantNav,
		"classes":    "acss-nav",
		"aria-label": label,
	}, vdom.Ul(vdom.Range(links, func(link *vdom.VNode, _ int) *vdom.VNode {
		return vdom.Li(link)
	})))
}

// NewLink renders an anchor-variant link.
func NewLink(href, text string) *vdom.VNode {
	return ui.MustRender(ui.Props{
		"as":   ui.VariantA,
		"href": href,
	}, text)
}

// NewImage renders an img-variant node. Alt text is mandatory; decorative
// images should pass an empty string explicitly.
func NewImage(src, alt string) *vdom.VNode {
	return ui.MustRender(ui.Props{
		"as":      ui.VariantImg,
		"src":     src,
		"alt":     alt,
		"loading": "lazy",
	})
}
