package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed page with an id index.
type Document struct {
	Root *Element
	byID map[string]*Element
}

// NewDocument creates an empty document with html and body elements.
func NewDocument() *Document {
	root := NewElement("html")
	root.Append(NewElement("body"))
	d := &Document{Root: root}
	d.Reindex()
	return d
}

// Parse reads an HTML page into a Document.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var root *Element
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			root = convert(c)
			break
		}
	}
	if root == nil {
		return NewDocument(), nil
	}

	d := &Document{Root: root}
	d.Reindex()
	return d, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func convert(n *html.Node) *Element {
	el := NewElement(n.Data)
	for _, a := range n.Attr {
		el.SetAttr(a.Key, a.Val)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el.Append(convert(c))
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				el.AppendText(c.Data)
			}
		}
	}
	return el
}

// Reindex rebuilds the id index. Call after adding elements with ids.
func (d *Document) Reindex() {
	d.byID = make(map[string]*Element)
	d.Root.Walk(func(e *Element) bool {
		if e.ID != "" {
			if _, dup := d.byID[e.ID]; !dup {
				d.byID[e.ID] = e
			}
		}
		return true
	})
}

// GetElementByID returns the first element with the id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.byID[id]
}

// QuerySelector returns the first element with the given tag name, or nil.
// Only tag selectors are supported.
func (d *Document) QuerySelector(tag string) *Element {
	tag = strings.ToUpper(tag)
	var found *Element
	d.Root.Walk(func(e *Element) bool {
		if e.Tag == tag {
			found = e
			return false
		}
		return true
	})
	return found
}

// Body returns the body element, or the root when there is none.
func (d *Document) Body() *Element {
	if b := d.QuerySelector("body"); b != nil {
		return b
	}
	return d.Root
}

// Title returns the text of the head title element.
func (d *Document) Title() string {
	if t := d.QuerySelector("title"); t != nil {
		return strings.TrimSpace(t.TextContent())
	}
	return ""
}
