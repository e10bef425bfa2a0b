// Package dom provides the in-memory document tree the analysis engine
// consumes: selector-based querying, attribute and class accessors, and a
// best-effort computed-style lookup over inline styles and <style> blocks.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps a parsed HTML tree together with the style rules
// extracted from its <style> blocks.
type Document struct {
	root  *html.Node
	rules []StyleRule
}

// Element is a thin wrapper around an element node. Two Elements refer to
// the same document element iff their Node pointers are equal.
type Element struct {
	n   *html.Node
	doc *Document
}

// Parse builds a Document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{root: root}
	d.rules = collectStyleRules(d)
	return d, nil
}

// ParseString builds a Document from an HTML string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Walk visits every element node in document (pre-order) traversal order.
func (d *Document) Walk(fn func(*Element)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(&Element{n: n, doc: d})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

// Find returns all elements matching the selector, which may be a
// comma-separated group. Matches within each group member are returned in
// traversal order.
func (d *Document) Find(selector string) []*Element {
	var results []*Element
	for _, part := range strings.Split(selector, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, n := range queryAll(d.root, part) {
			results = append(results, &Element{n: n, doc: d})
		}
	}
	return results
}

// Comments returns the text of every comment node in the document.
func (d *Document) Comments() []string {
	var comments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			comments = append(comments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return comments
}

// StylesheetLinks returns the href of every <link rel="stylesheet">.
func (d *Document) StylesheetLinks() []string {
	var hrefs []string
	d.Walk(func(e *Element) {
		if e.n.DataAtom != atom.Link {
			return
		}
		if !strings.EqualFold(e.Attr("rel"), "stylesheet") {
			return
		}
		if href := e.Attr("href"); href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

// StyleRules returns the rules collected from the document's <style>
// blocks, in document order.
func (d *Document) StyleRules() []StyleRule {
	return d.rules
}

// Node exposes the underlying html.Node, used as the element identity key.
func (e *Element) Node() *html.Node { return e.n }

// Tag returns the lowercase tag name.
func (e *Element) Tag() string { return e.n.Data }

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the element carries the named attribute.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// ID returns the element id, or "".
func (e *Element) ID() string { return e.Attr("id") }

// Classes returns the class attribute split into individual tokens.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// ChildCount returns the number of element children.
func (e *Element) ChildCount() int {
	count := 0
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

// InlineStyle parses the element's style attribute into a declaration map.
func (e *Element) InlineStyle() map[string]string {
	style := e.Attr("style")
	if style == "" {
		return nil
	}
	return ParseDeclarations(style)
}

// ComputedStyle resolves a property for the element: the inline style wins,
// otherwise the last matching <style> rule that declares the property.
// This is a best-effort lookup, not a cascade simulation.
func (e *Element) ComputedStyle(prop string) string {
	if v, ok := e.InlineStyle()[prop]; ok && v != "" {
		return v
	}
	value := ""
	for _, rule := range e.doc.rules {
		if _, ok := rule.Declarations[prop]; !ok {
			continue
		}
		if rule.matches(e.n) {
			value = rule.Declarations[prop]
		}
	}
	return value
}
