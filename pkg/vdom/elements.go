package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// NewElement creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, string,
// EventHandler. Nil arguments and nil children are ignored so callers can
// build conditionally.
func NewElement(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			node.setAttr(v)

		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}

		case Props:
			for key, value := range v {
				if key == "key" {
					if s, ok := value.(string); ok {
						node.Key = s
					}
				}
				node.Props[key] = value
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// Content sectioning elements

func Html(args ...any) *VNode  { return NewElement("html", args...) }
func Head(args ...any) *VNode  { return NewElement("head", args...) }
func Body(args ...any) *VNode  { return NewElement("body", args...) }
func Title(args ...any) *VNode { return NewElement("title", args...) }
func Meta(args ...any) *VNode  { return NewElement("meta", args...) }
func Link(args ...any) *VNode  { return NewElement("link", args...) }

func Header(args ...any) *VNode  { return NewElement("header", args...) }
func Footer(args ...any) *VNode  { return NewElement("footer", args...) }
func Main(args ...any) *VNode    { return NewElement("main", args...) }
func Nav(args ...any) *VNode     { return NewElement("nav", args...) }
func Section(args ...any) *VNode { return NewElement("section", args...) }
func Article(args ...any) *VNode { return NewElement("article", args...) }
func Aside(args ...any) *VNode   { return NewElement("aside", args...) }
func H1(args ...any) *VNode      { return NewElement("h1", args...) }
func H2(args ...any) *VNode      { return NewElement("h2", args...) }
func H3(args ...any) *VNode      { return NewElement("h3", args...) }
func H4(args ...any) *VNode      { return NewElement("h4", args...) }
func H5(args ...any) *VNode      { return NewElement("h5", args...) }
func H6(args ...any) *VNode      { return NewElement("h6", args...) }

// Text content elements

func Div(args ...any) *VNode        { return NewElement("div", args...) }
func P(args ...any) *VNode          { return NewElement("p", args...) }
func Span(args ...any) *VNode       { return NewElement("span", args...) }
func Pre(args ...any) *VNode        { return NewElement("pre", args...) }
func Blockquote(args ...any) *VNode { return NewElement("blockquote", args...) }
func Ul(args ...any) *VNode         { return NewElement("ul", args...) }
func Ol(args ...any) *VNode         { return NewElement("ol", args...) }
func Li(args ...any) *VNode         { return NewElement("li", args...) }
func Hr(args ...any) *VNode         { return NewElement("hr", args...) }
func Figure(args ...any) *VNode     { return NewElement("figure", args...) }
func Figcaption(args ...any) *VNode { return NewElement("figcaption", args...) }

// Inline text semantics

func A(args ...any) *VNode      { return NewElement("a", args...) }
func Strong(args ...any) *VNode { return NewElement("strong", args...) }
func Em(args ...any) *VNode     { return NewElement("em", args...) }
func Small(args ...any) *VNode  { return NewElement("small", args...) }
func Code(args ...any) *VNode   { return NewElement("code", args...) }
func Br(args ...any) *VNode     { return NewElement("br", args...) }

// Form elements

func Form(args ...any) *VNode     { return NewElement("form", args...) }
func Input(args ...any) *VNode    { return NewElement("input", args...) }
func Button(args ...any) *VNode   { return NewElement("button", args...) }
func Label(args ...any) *VNode    { return NewElement("label", args...) }
func Fieldset(args ...any) *VNode { return NewElement("fieldset", args...) }
func Legend(args ...any) *VNode   { return NewElement("legend", args...) }

// Media elements

func Img(args ...any) *VNode { return NewElement("img", args...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *VNode {
	return NewElement(tag, args...)
}
