// Package dom holds an in-memory model of a rendered Moo page.
//
// Pages are parsed once from the HTML returned by the server. Handlers only
// read attributes and mutate the inline display style and the class list,
// which is all the page logic ever touches.
package dom

import (
	"slices"
	"strings"
)

// Style is the subset of an element's inline style the page logic reads and writes.
type Style struct {
	Display    string
	Visibility string
}

// Element is an element or text node. Text nodes have an empty Tag.
type Element struct {
	Tag      string // upper-case tag name, as DOM tagName reports it
	ID       string
	Text     string // text content for text nodes
	Style    Style
	Parent   *Element
	Children []*Element

	attrs   map[string]string
	classes []string
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{
		Tag:   strings.ToUpper(tag),
		attrs: make(map[string]string),
	}
}

// IsText reports whether the node is a text node.
func (e *Element) IsText() bool {
	return e.Tag == ""
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// AttrOr returns the attribute value, or def when the attribute is absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute. The id, class and style attributes are
// reflected into the element fields.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	switch name {
	case "id":
		e.ID = value
	case "class":
		e.classes = strings.Fields(value)
	case "style":
		e.Style = parseStyle(value)
	}
	e.attrs[name] = value
}

// Attrs returns a copy of all attributes.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Append adds a child element.
func (e *Element) Append(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
}

// AppendText adds a text node.
func (e *Element) AppendText(text string) {
	e.Append(&Element{Text: text})
}

// SetText replaces the element's children with a single text node,
// the equivalent of assigning innerHTML with plain text.
func (e *Element) SetText(text string) {
	e.Children = nil
	e.AppendText(text)
}

// TextContent returns the concatenated text of all descendant text nodes.
func (e *Element) TextContent() string {
	if e.IsText() {
		return e.Text
	}
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	for _, c := range e.Children {
		if c.IsText() {
			b.WriteString(c.Text)
			continue
		}
		c.writeText(b)
	}
}

// ChildElements returns the element children, skipping text nodes.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits the element and its descendants depth-first.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// HasClass reports whether the class list contains cls.
func (e *Element) HasClass(cls string) bool {
	return slices.Contains(e.classes, cls)
}

// AddClass adds cls to the class list if not already present.
func (e *Element) AddClass(cls string) {
	if !e.HasClass(cls) {
		e.classes = append(e.classes, cls)
		e.syncClassAttr()
	}
}

// RemoveClass removes cls from the class list.
func (e *Element) RemoveClass(cls string) {
	i := slices.Index(e.classes, cls)
	if i < 0 {
		return
	}
	e.classes = slices.Delete(e.classes, i, i+1)
	e.syncClassAttr()
}

// ToggleClass flips cls and reports whether it is now present.
func (e *Element) ToggleClass(cls string) bool {
	if e.HasClass(cls) {
		e.RemoveClass(cls)
		return false
	}
	e.AddClass(cls)
	return true
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) syncClassAttr() {
	e.attrs["class"] = strings.Join(e.classes, " ")
}

// parseStyle extracts display and visibility from an inline style declaration.
func parseStyle(decl string) Style {
	var s Style
	for part := range strings.SplitSeq(decl, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "display":
			s.Display = value
		case "visibility":
			s.Visibility = value
		}
	}
	return s
}
