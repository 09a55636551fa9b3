package preview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shawn-sandy/acss/internal/config"
	acsserr "github.com/shawn-sandy/acss/internal/errors"
	"github.com/shawn-sandy/acss/pkg/components"
	"github.com/shawn-sandy/acss/pkg/middleware"
	"github.com/shawn-sandy/acss/pkg/render"
	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

// Gallery builds the component showcase pages served by the preview
// server and written out by the static build.
type Gallery struct {
	cfg      *config.Config
	renderer *render.Renderer
	metrics  *middleware.RenderMetrics
	reload   bool
}

// GalleryOption configures a Gallery.
type GalleryOption func(*Gallery)

// WithRenderMetrics attaches render instrumentation to the gallery.
func WithRenderMetrics(m *middleware.RenderMetrics) GalleryOption {
	return func(g *Gallery) {
		g.metrics = m
	}
}

// WithLiveReload controls whether pages embed the reload client script.
func WithLiveReload(enabled bool) GalleryOption {
	return func(g *Gallery) {
		g.reload = enabled
	}
}

// NewGallery creates a gallery for the given project configuration.
func NewGallery(cfg *config.Config, opts ...GalleryOption) *Gallery {
	g := &Gallery{
		cfg:      cfg,
		renderer: render.New(render.Config{Pretty: cfg.Build.Pretty}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IndexPage renders the full gallery: one section per variant plus the
// component showcase.
func (g *Gallery) IndexPage() (string, error) {
	sections := make([]*vdom.VNode, 0, len(ui.Variants())+1)
	sections = append(sections, g.showcaseSection())

	for _, v := range ui.Variants() {
		section, err := g.variantSection(v)
		if err != nil {
			return "", err
		}
		sections = append(sections, section)
	}

	return g.page(g.cfg.Name+" gallery", sections)
}

// VariantPage renders a single variant's sample page. Unknown variant
// names fail the same way the renderer does.
func (g *Gallery) VariantPage(name string) (string, error) {
	section, err := g.variantSection(ui.Variant(name))
	if err != nil {
		return "", err
	}
	return g.page(fmt.Sprintf("%s gallery: %s", g.cfg.Name, name), []*vdom.VNode{section})
}

// page wraps body sections in the document shell, linking the theme
// stylesheets from the project configuration.
func (g *Gallery) page(title string, sections []*vdom.VNode) (string, error) {
	links := vdom.Range(g.cfg.Theme.Stylesheets, func(sheet string, _ int) *vdom.VNode {
		return vdom.Link(
			vdom.Attr{Key: "rel", Value: "stylesheet"},
			vdom.Href("/theme/"+strings.TrimPrefix(sheet, "/")),
		)
	})

	doc := vdom.Html(
		vdom.Attr{Key: "lang", Value: "en"},
		vdom.Head(
			vdom.Title(title),
			vdom.Meta(vdom.Attr{Key: "charset", Value: "utf-8"}),
			links,
		),
		vdom.Body(
			vdom.Header(vdom.H1(title)),
			vdom.Main(sections),
			g.footer(),
			vdom.When(g.reload, func() *vdom.VNode {
				return vdom.Raw(ReloadClientScript)
			}),
		),
	)

	html, err := g.renderer.ToString(doc)
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>\n" + html, nil
}

// footer summarizes what the gallery is showing.
func (g *Gallery) footer() *vdom.VNode {
	return vdom.Footer(
		vdom.Class("gallery-footer"),
		vdom.P(
			vdom.Textf("%d variants", len(ui.Variants())),
			vdom.If(g.reload, vdom.Small(vdom.Text(" · live reload on"))),
		),
	)
}

// variantSection renders a representative sample of one variant.
func (g *Gallery) variantSection(v ui.Variant) (*vdom.VNode, error) {
	sample, err := ui.Render(sampleProps(v), sampleChildren(v)...)
	if err != nil {
		if g.metrics != nil {
			var e *acsserr.Error
			if errors.As(err, &e) {
				g.metrics.ObserveError(e.Code)
			}
		}
		return nil, err
	}
	if g.metrics != nil {
		g.metrics.ObserveRender(string(v))
	}

	return vdom.Section(
		vdom.ID("variant-"+string(v)),
		vdom.Class("gallery-section"),
		vdom.H2(string(v)),
		vdom.Div(vdom.Class("gallery-sample"), sample),
	), nil
}

// showcaseSection renders the packaged components.
func (g *Gallery) showcaseSection() *vdom.VNode {
	return vdom.Section(
		vdom.ID("components"),
		vdom.Class("gallery-section"),
		vdom.H2("components"),
		vdom.Div(
			vdom.Class("gallery-sample"),
			components.NewButton("Click me"),
			components.NewBadge("new"),
			components.NewCard(
				[]*vdom.VNode{vdom.P(vdom.Text("Card body"))},
				components.CardTitle("Card"),
			),
			components.NewNav("Gallery", []*vdom.VNode{
				components.NewLink("/", "Home"),
				components.NewLink("/metrics", "Metrics"),
			}),
			vdom.CustomElement("acss-swatch", vdom.Data("tone", "primary")),
		),
	)
}

// sampleProps builds a minimal valid prop bag for each variant.
func sampleProps(v ui.Variant) ui.Props {
	props := ui.Props{
		ui.KeyAs:      v,
		ui.KeyClasses: "sample sample-" + string(v),
	}
	switch v {
	case ui.VariantA:
		props["href"] = "#"
	case ui.VariantImg:
		props["src"] = "/theme/sample.png"
		props["alt"] = "sample image"
	case ui.VariantButton:
		props["type"] = "button"
	}
	return props
}

// sampleChildren builds sample content for non-void variants.
func sampleChildren(v ui.Variant) []any {
	switch v {
	case ui.VariantImg:
		return nil
	case ui.VariantUl, ui.VariantOl:
		return []any{
			vdom.Li(vdom.Text("first")),
			vdom.Li(vdom.Text("second")),
		}
	case ui.VariantFieldset:
		return []any{
			vdom.Legend(vdom.Text(string(v))),
			vdom.Input(vdom.Attr{Key: "type", Value: "text"}),
		}
	default:
		return []any{vdom.Text("Sample " + string(v))}
	}
}
