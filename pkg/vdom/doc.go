// Package vdom provides the markup node model for acss.
//
// VNode is a plain value tree describing elements, text, fragments, and raw
// HTML. Props holds attributes and event handlers. Attr and EventHandler
// are the building blocks used by the variadic element constructors:
//
//	Div(Class("card"), ID("main"),
//	    H2(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// The polymorphic renderer in package ui produces VNodes from property
// bags; package render serializes them to HTML and package mount
// instantiates them into live nodes.
package vdom
