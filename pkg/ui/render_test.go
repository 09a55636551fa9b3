package ui

import (
	"reflect"
	"testing"
)

func TestRenderDefaults(t *testing.T) {
	t.Run("empty bag produces bare default container", func(t *testing.T) {
		node, err := Render(Props{})
		if err != nil {
			t.Fatal(err)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %q, want div", node.Tag)
		}
		if len(node.Props) != 0 {
			t.Errorf("Props = %v, want none", node.Props)
		}
		if len(node.Children) != 0 {
			t.Errorf("Children = %v, want none", node.Children)
		}
	})

	t.Run("nil bag works", func(t *testing.T) {
		node, err := Render(nil)
		if err != nil {
			t.Fatal(err)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %q, want div", node.Tag)
		}
	})

	t.Run("omitted variant identical to explicit default", func(t *testing.T) {
		implicit, err := Render(Props{"id": "x"})
		if err != nil {
			t.Fatal(err)
		}
		explicit, err := Render(Props{"as": DefaultVariant, "id": "x"})
		if err != nil {
			t.Fatal(err)
		}
		if implicit.Tag != explicit.Tag {
			t.Errorf("tags diverge: %q vs %q", implicit.Tag, explicit.Tag)
		}
		if !reflect.DeepEqual(implicit.Props, explicit.Props) {
			t.Errorf("props diverge: %v vs %v", implicit.Props, explicit.Props)
		}
	})
}

func TestRenderForwardsEveryKey(t *testing.T) {
	handler := func() {}
	bag := Props{
		"id":          "main",
		"data-testid": "root",
		"aria-label":  "widget",
		"x-custom":    "opaque",
		"onclick":     handler,
	}
	node, err := Render(bag)
	if err != nil {
		t.Fatal(err)
	}
	for key := range bag {
		if _, ok := node.Props[key]; !ok {
			t.Errorf("key %q was not forwarded", key)
		}
	}
	if len(node.Props) != len(bag) {
		t.Errorf("Props = %v, want exactly the input keys", node.Props)
	}
	if node.Props["x-custom"] != "opaque" {
		t.Errorf("pass-through value changed: %v", node.Props["x-custom"])
	}
}

func TestSplitPropsClassification(t *testing.T) {
	div, err := Resolve(VariantDiv)
	if err != nil {
		t.Fatal(err)
	}

	handler := func() {}
	native, custom, err := splitProps(div, Props{
		"id":          "main",
		"data-testid": "root",
		"onclick":     handler,
		"onerror":     handler,
		"x-custom":    "opaque",
		"classes":     "btn",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Capability-recognized keys land natively.
	for _, key := range []string{"id", "data-testid", "onclick"} {
		if _, ok := native[key]; !ok {
			t.Errorf("key %q not classified native", key)
		}
	}
	// Keys the capability does not recognize go to the pass-through set.
	for _, key := range []string{"onerror", "x-custom"} {
		if _, ok := native[key]; ok {
			t.Errorf("key %q classified native, want pass-through", key)
		}
		if _, ok := custom.passthrough[key]; !ok {
			t.Errorf("key %q missing from pass-through set", key)
		}
	}
	// Reserved keys never reach either output.
	if _, ok := native["classes"]; ok {
		t.Error("reserved key classes leaked into native props")
	}
	if _, ok := custom.passthrough["classes"]; ok {
		t.Error("reserved key classes leaked into pass-through")
	}

	// The split is total: unrecognized keys still reach the final node.
	node, err := Render(Props{"onerror": handler, "x-custom": "opaque"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := node.Props["onerror"]; !ok {
		t.Error("pass-through event handler dropped from node")
	}
	if node.Props["x-custom"] != "opaque" {
		t.Errorf("x-custom = %v, want opaque", node.Props["x-custom"])
	}
}

func TestRenderButtonVariant(t *testing.T) {
	fired := false
	node, err := Render(Props{
		"as":      VariantButton,
		"onclick": func() { fired = true },
	})
	if err != nil {
		t.Fatal(err)
	}
	if node.Tag != "button" {
		t.Errorf("Tag = %q, want button", node.Tag)
	}
	fn, ok := node.Props["onclick"].(func())
	if !ok {
		t.Fatal("onclick handler not attached")
	}
	fn()
	if !fired {
		t.Error("handler did not run")
	}
	if _, ok := node.Props["style"]; ok {
		t.Error("style attribute present without any style configuration")
	}
}

func TestRenderStyleMerge(t *testing.T) {
	node, err := Render(Props{
		"styles":        Styles{"color": "red"},
		"defaultStyles": Styles{"color": "blue", "margin": "1rem"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if node.Props["style"] != "color: red; margin: 1rem" {
		t.Errorf("style = %v", node.Props["style"])
	}
	if _, ok := node.Props["styles"]; ok {
		t.Error("reserved key styles leaked into native props")
	}
	if _, ok := node.Props["defaultStyles"]; ok {
		t.Error("reserved key defaultStyles leaked into native props")
	}
}

func TestRenderUnknownVariant(t *testing.T) {
	node, err := Render(Props{"as": "unsupported-tag"})
	if node != nil {
		t.Error("node rendered for unknown variant")
	}
	if !IsUnknownVariant(err) {
		t.Errorf("err = %v, want UnknownVariant", err)
	}
}

func TestRenderClasses(t *testing.T) {
	t.Run("classes replaces the class slot", func(t *testing.T) {
		node, err := Render(Props{"classes": "btn btn-lg"})
		if err != nil {
			t.Fatal(err)
		}
		if node.Props["class"] != "btn btn-lg" {
			t.Errorf("class = %v", node.Props["class"])
		}
	})

	t.Run("classes plus native class conflicts", func(t *testing.T) {
		_, err := Render(Props{"classes": "a", "class": "b"})
		if !IsPropertyConflict(err) {
			t.Errorf("err = %v, want PropertyConflict", err)
		}
	})

	t.Run("native class alone forwards verbatim", func(t *testing.T) {
		node, err := Render(Props{"class": "plain"})
		if err != nil {
			t.Fatal(err)
		}
		if node.Props["class"] != "plain" {
			t.Errorf("class = %v", node.Props["class"])
		}
	})
}

func TestRenderStyleConflicts(t *testing.T) {
	_, err := Render(Props{
		"styles": Styles{"color": "red"},
		"style":  "color: green",
	})
	if !IsPropertyConflict(err) {
		t.Errorf("err = %v, want PropertyConflict", err)
	}

	_, err = Render(Props{"styles": map[string]any{"margin": 12}})
	if !IsMalformedStyles(err) {
		t.Errorf("err = %v, want MalformedStyles", err)
	}
}

func TestRenderChildren(t *testing.T) {
	t.Run("variadic children", func(t *testing.T) {
		node, err := Render(Props{"as": VariantUl}, MustRender(Props{"as": VariantLi}, "a"), MustRender(Props{"as": VariantLi}, "b"))
		if err != nil {
			t.Fatal(err)
		}
		if len(node.Children) != 2 {
			t.Fatalf("Children = %d, want 2", len(node.Children))
		}
		if node.Children[0].Tag != "li" {
			t.Errorf("child tag = %q", node.Children[0].Tag)
		}
	})

	t.Run("children key", func(t *testing.T) {
		node, err := Render(Props{"children": "hello"})
		if err != nil {
			t.Fatal(err)
		}
		if len(node.Children) != 1 || node.Children[0].Text != "hello" {
			t.Errorf("Children = %v", node.Children)
		}
	})

	t.Run("bag children precede variadic", func(t *testing.T) {
		node, err := Render(Props{"children": "first"}, "second")
		if err != nil {
			t.Fatal(err)
		}
		if len(node.Children) != 2 {
			t.Fatalf("Children = %d, want 2", len(node.Children))
		}
		if node.Children[0].Text != "first" || node.Children[1].Text != "second" {
			t.Errorf("order = %v, %v", node.Children[0].Text, node.Children[1].Text)
		}
	})
}

func TestRenderRef(t *testing.T) {
	ref := NewRef()
	node, err := Render(Props{"as": VariantA, "href": "/docs", "ref": ref})
	if err != nil {
		t.Fatal(err)
	}
	if node.Props[KeyRef] != ref {
		t.Error("ref request not recorded on node")
	}
	if ref.Current() != nil {
		t.Error("ref populated before mount")
	}
}

func TestRenderPure(t *testing.T) {
	bag := Props{
		"as":     VariantButton,
		"styles": Styles{"color": "red"},
	}
	if _, err := Render(bag); err != nil {
		t.Fatal(err)
	}
	if len(bag) != 2 {
		t.Errorf("input bag mutated: %v", bag)
	}
	if _, ok := bag["style"]; ok {
		t.Error("merged style written back into input bag")
	}

	// Repeated invocation with the same inputs is stable.
	a, _ := Render(bag)
	b, _ := Render(bag)
	if a.Tag != b.Tag || !reflect.DeepEqual(a.Props, b.Props) {
		t.Error("repeated renders diverge")
	}
}

func TestMustRender(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRender did not panic on unknown variant")
		}
	}()
	MustRender(Props{"as": "nope"})
}

func TestVariantOf(t *testing.T) {
	if v, err := variantOf(VariantNav); err != nil || v != VariantNav {
		t.Errorf("variantOf(Variant) = %v, %v", v, err)
	}
	if v, err := variantOf("nav"); err != nil || v != VariantNav {
		t.Errorf("variantOf(string) = %v, %v", v, err)
	}
	if _, err := variantOf(42); !IsUnknownVariant(err) {
		t.Errorf("variantOf(int) err = %v, want UnknownVariant", err)
	}
}
