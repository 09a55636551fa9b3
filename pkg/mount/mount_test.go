package mount

import (
	"testing"

	"github.com/shawn-sandy/acss/pkg/ui"
	"github.com/shawn-sandy/acss/pkg/vdom"
)

func TestMountBasics(t *testing.T) {
	t.Run("element tree", func(t *testing.T) {
		inst, err := Mount(vdom.Div(vdom.Class("card"), vdom.P(vdom.Text("hi"))))
		if err != nil {
			t.Fatal(err)
		}
		defer inst.Unmount()

		root := inst.Root()
		if root.Tag() != "div" {
			t.Errorf("root tag = %q", root.Tag())
		}
		if v, ok := root.Attr("class"); !ok || v != "card" {
			t.Errorf("class = %q, %v", v, ok)
		}
		if root.InnerText() != "hi" {
			t.Errorf("InnerText = %q", root.InnerText())
		}
	})

	t.Run("nil root", func(t *testing.T) {
		if _, err := Mount(nil); err == nil {
			t.Error("Mount(nil) did not fail")
		}
	})

	t.Run("fragment children are spliced", func(t *testing.T) {
		tree := vdom.Div(vdom.Fragment(vdom.Span(), vdom.Span()))
		inst, err := Mount(tree)
		if err != nil {
			t.Fatal(err)
		}
		defer inst.Unmount()
		if n := len(inst.Root().Children()); n != 2 {
			t.Errorf("children = %d, want 2", n)
		}
	})

	t.Run("handlers are bound, not attributes", func(t *testing.T) {
		fired := false
		inst, err := Mount(vdom.Button(vdom.OnClick(func() { fired = true })))
		if err != nil {
			t.Fatal(err)
		}
		defer inst.Unmount()

		root := inst.Root()
		if _, ok := root.Attr("onclick"); ok {
			t.Error("handler leaked into attributes")
		}
		if !root.HasHandler("onclick") {
			t.Fatal("onclick not bound")
		}
		if !root.Invoke("onclick") || !fired {
			t.Error("handler did not run")
		}
	})
}

func TestRefLifecycle(t *testing.T) {
	t.Run("populated after mount, cleared after unmount", func(t *testing.T) {
		ref := ui.NewRef()
		node, err := ui.Render(ui.Props{
			"as":     ui.VariantA,
			"target": "navTag",
			"ref":    ref,
		})
		if err != nil {
			t.Fatal(err)
		}
		if ref.Current() != nil {
			t.Fatal("ref populated before mount")
		}

		inst, err := Mount(node)
		if err != nil {
			t.Fatal(err)
		}

		handle := ref.Current()
		if handle == nil {
			t.Fatal("ref not populated after mount")
		}
		if handle.Tag() != "a" {
			t.Errorf("handle tag = %q, want a (anchor-typed handle)", handle.Tag())
		}
		if v, ok := handle.Attr("target"); !ok || v != "navTag" {
			t.Errorf("target = %q, %v", v, ok)
		}

		inst.Unmount()
		if ref.Current() != nil {
			t.Error("ref not cleared after unmount")
		}
	})

	t.Run("unmount is idempotent", func(t *testing.T) {
		ref := ui.NewRef()
		node := ui.MustRender(ui.Props{"ref": ref})
		inst, err := Mount(node)
		if err != nil {
			t.Fatal(err)
		}
		inst.Unmount()
		inst.Unmount()
		if ref.Current() != nil {
			t.Error("ref non-nil after double unmount")
		}
		if inst.Mounted() {
			t.Error("instance still mounted")
		}
	})

	t.Run("variant change is unmount then remount", func(t *testing.T) {
		ref := ui.NewRef()

		first, _ := Mount(ui.MustRender(ui.Props{"as": ui.VariantButton, "ref": ref}))
		if ref.Current().Tag() != "button" {
			t.Fatalf("tag = %q", ref.Current().Tag())
		}

		// The old handle is cleared before the new one attaches; the caller
		// never observes a handle for a destroyed node.
		first.Unmount()
		if ref.Current() != nil {
			t.Fatal("stale handle after unmount")
		}

		second, _ := Mount(ui.MustRender(ui.Props{"as": ui.VariantA, "ref": ref}))
		defer second.Unmount()
		if ref.Current().Tag() != "a" {
			t.Errorf("tag = %q, want a", ref.Current().Tag())
		}
	})

	t.Run("ref never forwarded as attribute", func(t *testing.T) {
		ref := ui.NewRef()
		inst, _ := Mount(ui.MustRender(ui.Props{"ref": ref}))
		defer inst.Unmount()
		if _, ok := inst.Root().Attr("ref"); ok {
			t.Error("ref rendered as attribute")
		}
	})
}

func TestHandleFocusScroll(t *testing.T) {
	ref := ui.NewRef()
	inst, err := Mount(ui.MustRender(ui.Props{"as": ui.VariantButton, "ref": ref}))
	if err != nil {
		t.Fatal(err)
	}

	ref.Current().Focus()
	if inst.Focused() != inst.Root() {
		t.Error("focus not recorded")
	}
	ref.Current().ScrollIntoView()
	if inst.ScrolledTo() != inst.Root() {
		t.Error("scroll not recorded")
	}

	// After unmount the handle is gone entirely; nothing to call.
	inst.Unmount()
	if inst.Focused() != nil {
		t.Error("focus retained past unmount")
	}
}

func TestFind(t *testing.T) {
	tree := vdom.Div(
		vdom.Ul(vdom.Li(vdom.Text("a")), vdom.Li(vdom.Text("b"))),
	)
	inst, err := Mount(tree)
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Unmount()

	li := inst.Root().Find("li")
	if li == nil || li.InnerText() != "a" {
		t.Errorf("Find(li) = %v", li)
	}
	if inst.Root().Find("table") != nil {
		t.Error("Find(table) found a node")
	}
}

func TestBooleanAndNumericAttrs(t *testing.T) {
	inst, err := Mount(vdom.Input(vdom.Disabled(), vdom.Type("text"), vdom.Width(10)))
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Unmount()

	root := inst.Root()
	if v, ok := root.Attr("disabled"); !ok || v != "" {
		t.Errorf("disabled = %q, %v", v, ok)
	}
	if v, _ := root.Attr("width"); v != "10" {
		t.Errorf("width = %q", v)
	}
}
