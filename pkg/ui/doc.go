// Package ui implements the polymorphic element renderer every acss
// component is built on. A render call picks the markup element variant to
// instantiate, receives capability-correct properties for that variant,
// merges default and override style configurations deterministically, and
// can request a borrowed handle to the instantiated node:
//
//	node, err := ui.Render(ui.Props{
//	    "as":            ui.VariantButton,
//	    "type":          "submit",
//	    "defaultStyles": ui.Styles{"color": "blue", "margin": "1rem"},
//	    "styles":        ui.Styles{"color": "red"},
//	}, "Save")
//
// The variant set is closed and resolved against a capability table
// validated at init; an unsupported variant fails loudly instead of
// falling back to the default. Keys the capability does not recognize are
// forwarded verbatim (open-ended pass-through), so host-recognized
// metadata and accessibility attributes need no renderer support.
//
// Render is pure and synchronous. The only shared mutable state in the
// package is the Ref slot, which has a single writer (the mount host) and
// atomic reads.
package ui
