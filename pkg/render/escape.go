package render

import "strings"

// Entity tables for the two HTML contexts the renderer writes into.
// Attribute values additionally encode whitespace control characters,
// which could otherwise terminate a quoted value.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML encodes s for element text content.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr encodes s for a double-quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
