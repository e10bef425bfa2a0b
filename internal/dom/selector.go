package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// simpleSelector is one compound selector part: tag.class#id[attr<op>val].
type simpleSelector struct {
	tag     string
	id      string
	class   string
	attrKey string
	attrVal string
	attrOp  byte // '=' exact, '*' substring, '^' prefix, 0 presence-only
}

// queryAll returns all nodes matching a (possibly descendant-combined)
// selector, in traversal order relative to each matched ancestor.
func queryAll(root *html.Node, selector string) []*html.Node {
	parts := strings.Fields(selector)
	if len(parts) == 0 {
		return nil
	}

	matches := matchSimple(root, parseSimpleSelector(parts[0]))
	for i := 1; i < len(parts); i++ {
		sel := parseSimpleSelector(parts[i])
		var next []*html.Node
		for _, parent := range matches {
			next = append(next, matchSimple(parent, sel)...)
		}
		matches = next
	}
	return matches
}

// matchSimple finds all descendants of root (root excluded as its own
// descendant only for combinator steps; for the first step the whole tree
// is walked) matching a single selector part.
func matchSimple(root *html.Node, s simpleSelector) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n != root && s.matches(n) {
			results = append(results, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return results
}

// parseSimpleSelector parses "tag.class", "#id", "tag[attr*=val]", etc.
func parseSimpleSelector(sel string) simpleSelector {
	var s simpleSelector

	if idx := strings.IndexByte(sel, '['); idx >= 0 {
		attrPart := strings.TrimRight(sel[idx+1:], "]")
		sel = sel[:idx]
		switch {
		case strings.Contains(attrPart, "*="):
			key, val, _ := strings.Cut(attrPart, "*=")
			s.attrKey, s.attrVal, s.attrOp = key, unquote(val), '*'
		case strings.Contains(attrPart, "^="):
			key, val, _ := strings.Cut(attrPart, "^=")
			s.attrKey, s.attrVal, s.attrOp = key, unquote(val), '^'
		case strings.Contains(attrPart, "="):
			key, val, _ := strings.Cut(attrPart, "=")
			s.attrKey, s.attrVal, s.attrOp = key, unquote(val), '='
		default:
			s.attrKey = attrPart
		}
	}

	if idx := strings.IndexByte(sel, '#'); idx >= 0 {
		s.id = sel[idx+1:]
		sel = sel[:idx]
	}

	if idx := strings.IndexByte(sel, '.'); idx >= 0 {
		s.class = sel[idx+1:]
		sel = sel[:idx]
	}

	s.tag = strings.ToLower(sel)
	return s
}

func unquote(v string) string {
	return strings.Trim(v, `"'`)
}

// matches checks a node against a parsed simple selector.
func (s simpleSelector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}

	if s.tag != "" && s.tag != "*" && n.Data != s.tag {
		return false
	}

	if s.id != "" && nodeAttr(n, "id") != s.id {
		return false
	}

	if s.class != "" {
		found := false
		for _, c := range strings.Fields(nodeAttr(n, "class")) {
			if c == s.class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if s.attrKey != "" {
		val, ok := lookupAttr(n, s.attrKey)
		if !ok {
			return false
		}
		switch s.attrOp {
		case '=':
			return val == s.attrVal
		case '*':
			return strings.Contains(val, s.attrVal)
		case '^':
			return strings.HasPrefix(val, s.attrVal)
		}
	}

	return true
}

func nodeAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
