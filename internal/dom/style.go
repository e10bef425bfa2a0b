package dom

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleRule is a simplified rule from a <style> block: one selector chain
// and its declarations. At-rules and nested blocks are not interpreted.
type StyleRule struct {
	Selector     string
	Declarations map[string]string

	chain []simpleSelector
}

// collectStyleRules parses every <style> element in document order.
func collectStyleRules(d *Document) []StyleRule {
	var rules []StyleRule
	d.Walk(func(e *Element) {
		if e.n.DataAtom != atom.Style {
			return
		}
		rules = append(rules, parseStyleBlock(e.Text())...)
	})
	return rules
}

// parseStyleBlock extracts top-level rules from CSS text. @media and other
// at-rule blocks are skipped entirely.
func parseStyleBlock(content string) []StyleRule {
	var rules []StyleRule
	lexer := css.NewLexer(parse.NewInputString(content))

	var selector strings.Builder
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.AtKeywordToken:
			skipAtRule(lexer)
			selector.Reset()
		case css.LeftBraceToken:
			decls := extractDeclarations(lexer)
			for _, sel := range strings.Split(selector.String(), ",") {
				sel = strings.TrimSpace(sel)
				if sel == "" {
					continue
				}
				rule := StyleRule{
					Selector:     sel,
					Declarations: decls,
					chain:        parseSelectorChain(sel),
				}
				if len(rule.chain) > 0 {
					rules = append(rules, rule)
				}
			}
			selector.Reset()
		default:
			selector.Write(text)
		}
	}
	return rules
}

// skipAtRule consumes tokens until the at-rule ends, either at a semicolon
// or at the closing brace of its block.
func skipAtRule(lexer *css.Lexer) {
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.SemicolonToken:
			if depth == 0 {
				return
			}
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// extractDeclarations reads property: value pairs until }.
func extractDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var currentProp string
	var currentVal []string

	for {
		tt, text := lexer.Next()

		if tt == css.ErrorToken || tt == css.RightBraceToken {
			if currentProp != "" && len(currentVal) > 0 {
				props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
			}
			break
		}

		switch {
		case tt == css.IdentToken && currentProp == "":
			currentProp = strings.ToLower(string(text))
		case tt == css.ColonToken && currentProp != "":
			continue
		case tt == css.SemicolonToken:
			if currentProp != "" && len(currentVal) > 0 {
				props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
			}
			currentProp = ""
			currentVal = nil
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}

	return props
}

// ParseDeclarations parses an inline style attribute value.
func ParseDeclarations(style string) map[string]string {
	props := make(map[string]string)
	lexer := css.NewLexer(parse.NewInputString(style))

	var currentProp string
	var currentVal []string
	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			flush()
			break
		}

		switch {
		case tt == css.IdentToken && currentProp == "":
			currentProp = strings.ToLower(string(text))
		case tt == css.ColonToken && currentProp != "":
			continue
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}

	return props
}

// parseSelectorChain turns "nav .item" into a descendant chain of simple
// selectors. Pseudo-class suffixes are dropped; selectors using
// combinators beyond descendant whitespace are rejected.
func parseSelectorChain(sel string) []simpleSelector {
	if strings.ContainsAny(sel, ">~+") {
		return nil
	}
	var chain []simpleSelector
	for _, part := range strings.Fields(sel) {
		if idx := strings.IndexByte(part, ':'); idx >= 0 {
			part = part[:idx]
		}
		if part == "" {
			return nil
		}
		chain = append(chain, parseSimpleSelector(part))
	}
	return chain
}

// matches checks the node against the rule's descendant chain.
func (r StyleRule) matches(n *html.Node) bool {
	if len(r.chain) == 0 {
		return false
	}
	last := r.chain[len(r.chain)-1]
	if !last.matches(n) {
		return false
	}
	ancestor := n.Parent
	for i := len(r.chain) - 2; i >= 0; i-- {
		found := false
		for ; ancestor != nil; ancestor = ancestor.Parent {
			if r.chain[i].matches(ancestor) {
				found = true
				ancestor = ancestor.Parent
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
