// Package page holds the HTML pages exercises write their results into.
package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrNotFound is returned when a selector matches no element.
var ErrNotFound = errors.New("element not found")

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Element is a single element node inside a Document.
type Element struct {
	node *html.Node
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Document{root: root}, nil
}

// Load parses the embedded page with the given name.
func Load(name string) (*Document, error) {
	data, err := templatesFS.ReadFile("templates/" + name + ".html")
	if err != nil {
		return nil, fmt.Errorf("unknown page %q: %w", name, err)
	}
	return Parse(bytes.NewReader(data))
}

// QuerySelector returns the first element matching selector. Only "#id"
// and bare tag name selectors are supported.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	var match func(*html.Node) bool
	switch {
	case strings.HasPrefix(selector, "#") && len(selector) > 1:
		id := selector[1:]
		match = func(n *html.Node) bool { return attr(n, "id") == id }
	case selector != "" && !strings.ContainsAny(selector, "#.[]: >+~,"):
		match = func(n *html.Node) bool { return n.Data == selector }
	default:
		return nil, fmt.Errorf("unsupported selector %q", selector)
	}

	if n := find(d.root, match); n != nil {
		return &Element{node: n}, nil
	}
	return nil, fmt.Errorf("%s: %w", selector, ErrNotFound)
}

// SetInnerHTML replaces the children of the element matching selector.
func (d *Document) SetInnerHTML(selector, markup string) error {
	el, err := d.QuerySelector(selector)
	if err != nil {
		return err
	}
	return el.SetInnerHTML(markup)
}

// SetInnerText replaces the children of the element matching selector
// with a single text node.
func (d *Document) SetInnerText(selector, text string) error {
	el, err := d.QuerySelector(selector)
	if err != nil {
		return err
	}
	el.SetInnerText(text)
	return nil
}

// SetClassName replaces the class attribute of the element matching selector.
func (d *Document) SetClassName(selector, class string) error {
	el, err := d.QuerySelector(selector)
	if err != nil {
		return err
	}
	el.SetClassName(class)
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the rendered document.
func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// ClassName returns the element's class attribute.
func (e *Element) ClassName() string {
	return attr(e.node, "class")
}

// SetClassName replaces the element's class attribute.
func (e *Element) SetClassName(class string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == "class" {
			e.node.Attr[i].Val = class
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "class", Val: class})
}

// SetInnerHTML parses markup in the element's context and replaces its
// children with the result.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.node)
	if err != nil {
		return fmt.Errorf("failed to parse fragment for %s: %w", e.describe(), err)
	}

	e.clear()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// SetInnerText replaces the element's children with one text node.
func (e *Element) SetInnerText(text string) {
	e.clear()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// InnerText concatenates all text below the element.
func (e *Element) InnerText() string {
	var b strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(e.node)
	return b.String()
}

// Items returns the text of each <li> child, in order.
func (e *Element) Items() []string {
	var items []string
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			items = append(items, (&Element{node: c}).InnerText())
		}
	}
	return items
}

func (e *Element) clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

func (e *Element) describe() string {
	if id := e.ID(); id != "" {
		return "#" + id
	}
	return e.node.Data
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
