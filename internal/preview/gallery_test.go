package preview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shawn-sandy/acss/internal/config"
	"github.com/shawn-sandy/acss/pkg/ui"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Name = "test-kit"
	cfg.Theme.Stylesheets = []string{"theme/base.css"}
	return cfg
}

func TestGalleryIndexPage(t *testing.T) {
	g := NewGallery(testConfig())

	html, err := g.IndexPage()
	if err != nil {
		t.Fatalf("IndexPage() error: %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("expected doctype prefix")
	}
	if !strings.Contains(html, "<title>test-kit gallery</title>") {
		t.Error("expected page title")
	}
	if !strings.Contains(html, `href="/theme/theme/base.css"`) {
		t.Errorf("expected stylesheet link, got:\n%s", html)
	}

	// Every variant gets its own section.
	for _, v := range ui.Variants() {
		if !strings.Contains(html, `id="variant-`+string(v)+`"`) {
			t.Errorf("missing section for variant %q", v)
		}
	}

	// Component showcase is present.
	if !strings.Contains(html, `id="components"`) {
		t.Error("missing component showcase section")
	}
	if !strings.Contains(html, "acss-button") {
		t.Error("expected button component markup")
	}
	if !strings.Contains(html, `<acss-swatch data-tone="primary">`) {
		t.Error("expected swatch custom element")
	}

	// Footer summarizes the variant count.
	want := fmt.Sprintf("%d variants", len(ui.Variants()))
	if !strings.Contains(html, want) {
		t.Errorf("footer missing %q", want)
	}
	if strings.Contains(html, "live reload on") {
		t.Error("reload note must be omitted when reload is off")
	}
}

func TestGalleryVariantPage(t *testing.T) {
	g := NewGallery(testConfig())

	t.Run("known variant", func(t *testing.T) {
		html, err := g.VariantPage("button")
		if err != nil {
			t.Fatalf("VariantPage(button) error: %v", err)
		}
		if !strings.Contains(html, `id="variant-button"`) {
			t.Error("expected button section")
		}
		if !strings.Contains(html, "<button") {
			t.Error("expected rendered button element")
		}
	})

	t.Run("void variant renders without children", func(t *testing.T) {
		html, err := g.VariantPage("img")
		if err != nil {
			t.Fatalf("VariantPage(img) error: %v", err)
		}
		if !strings.Contains(html, "<img") {
			t.Error("expected img element")
		}
		if strings.Contains(html, "</img>") {
			t.Error("void element must not have a closing tag")
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := g.VariantPage("marquee")
		if !ui.IsUnknownVariant(err) {
			t.Fatalf("expected unknown variant error, got %v", err)
		}
	})
}

func TestGalleryLiveReloadScript(t *testing.T) {
	t.Run("embedded when enabled", func(t *testing.T) {
		g := NewGallery(testConfig(), WithLiveReload(true))
		html, err := g.IndexPage()
		if err != nil {
			t.Fatalf("IndexPage() error: %v", err)
		}
		if !strings.Contains(html, "/_acss/reload") {
			t.Error("expected reload client script")
		}
		if !strings.Contains(html, "live reload on") {
			t.Error("expected reload note in footer")
		}
	})

	t.Run("omitted when disabled", func(t *testing.T) {
		g := NewGallery(testConfig())
		html, err := g.IndexPage()
		if err != nil {
			t.Fatalf("IndexPage() error: %v", err)
		}
		if strings.Contains(html, "/_acss/reload") {
			t.Error("reload script must not be embedded")
		}
	})
}
