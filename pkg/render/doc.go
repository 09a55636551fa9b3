// Package render serializes vdom trees to HTML.
//
// Attribute order is deterministic (sorted), boolean attributes render as
// bare names, void elements self-terminate, and all text and attribute
// content is entity-escaped. Event handlers and ref requests carried on a
// node's props never appear in the output; they belong to the mount host.
package render
