package stylesmith

import (
	"regexp"
	"sort"
	"strings"

	"github.com/stylesmith/stylesmith/internal/dom"
)

// fontLinkWeight is the occurrence weight of a font family discovered in a
// web-font-service stylesheet URL. A linked font is a much stronger
// branding signal than an ambient inline style.
const fontLinkWeight = 10

// rawCollector accumulates value occurrences while preserving first-seen
// order for deterministic tie-breaks.
type rawCollector struct {
	counts map[string]int
	order  []string
}

func newRawCollector() *rawCollector {
	return &rawCollector{counts: make(map[string]int)}
}

func (c *rawCollector) add(value string, weight int) {
	if value == "" || weight <= 0 {
		return
	}
	if _, seen := c.counts[value]; !seen {
		c.order = append(c.order, value)
	}
	c.counts[value] += weight
}

// tokens returns the accumulated values ranked by descending count,
// first-seen order breaking ties.
func (c *rawCollector) tokens() []RawToken {
	result := make([]RawToken, 0, len(c.order))
	for _, v := range c.order {
		result = append(result, RawToken{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// tokenCollection is the raw per-category output of one document scan.
type tokenCollection struct {
	colors          *rawCollector
	fontFamilies    *rawCollector
	fontSizes       *rawCollector
	fontWeights     *rawCollector
	lineHeights     *rawCollector
	letterSpacings  *rawCollector
	textTransforms  *rawCollector
	textDecorations *rawCollector
	headings        map[string]int
}

func newTokenCollection() *tokenCollection {
	return &tokenCollection{
		colors:          newRawCollector(),
		fontFamilies:    newRawCollector(),
		fontSizes:       newRawCollector(),
		fontWeights:     newRawCollector(),
		lineHeights:     newRawCollector(),
		letterSpacings:  newRawCollector(),
		textTransforms:  newRawCollector(),
		textDecorations: newRawCollector(),
		headings:        make(map[string]int),
	}
}

// colorProperties are the inline-style properties scanned for color
// values, shorthands included.
var colorProperties = []string{
	"color",
	"background-color",
	"background",
	"border-color",
	"outline-color",
	"fill",
	"stroke",
}

// colorClassPrefixes is the fixed prefix vocabulary for symbolic color
// references carried by utility classes.
var colorClassPrefixes = []string{
	"bg-", "text-", "border-", "btn-", "button-",
	"alert-", "badge-", "table-", "nav-",
}

// semanticColorNames are the color names recognized after a vocabulary
// prefix.
var semanticColorNames = map[string]bool{
	"primary":   true,
	"secondary": true,
	"success":   true,
	"danger":    true,
	"warning":   true,
	"info":      true,
	"light":     true,
	"dark":      true,
	"accent":    true,
	"muted":     true,
}

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

// webFontHostPattern recognizes stylesheet URLs served by known web-font
// services.
var webFontHostPattern = regexp.MustCompile(`(?i)fonts\.googleapis\.com|fonts\.bunny\.net|use\.typekit\.net|fast\.fonts\.net`)

// fontFamilyParamPattern extracts family names from a web-font URL query.
var fontFamilyParamPattern = regexp.MustCompile(`[?&]family=([^&:@]+)`)

// collectTokens scans a document tree and accumulates raw candidate
// values per category. Pure read; the tree is never modified.
func collectTokens(doc *dom.Document) *tokenCollection {
	tc := newTokenCollection()

	doc.Walk(func(e *dom.Element) {
		tc.collectInlineStyle(e)
		tc.collectSVGPresentation(e)
		tc.collectClasses(e)
		tc.collectHeading(e)
	})

	for _, href := range doc.StylesheetLinks() {
		for _, family := range fontFamiliesFromURL(href) {
			tc.fontFamilies.add(normalizeFontFamily(family), fontLinkWeight)
		}
	}

	return tc
}

// collectInlineStyle scans the element's style attribute for color and
// typography declarations.
func (tc *tokenCollection) collectInlineStyle(e *dom.Element) {
	style := e.InlineStyle()
	if len(style) == 0 {
		return
	}

	for _, prop := range colorProperties {
		v, ok := style[prop]
		if !ok {
			continue
		}
		tc.addColor(v)
	}

	tc.addTypography("font-family", style["font-family"])
	tc.addTypography("font-size", style["font-size"])
	tc.addTypography("font-weight", style["font-weight"])
	tc.addTypography("line-height", style["line-height"])
	tc.addTypography("letter-spacing", style["letter-spacing"])
	tc.addTypography("text-transform", style["text-transform"])
	tc.addTypography("text-decoration", style["text-decoration"])
}

// collectSVGPresentation reads the fill/stroke presentation attributes.
// Values of none/transparent and anything failing color syntax are
// discarded.
func (tc *tokenCollection) collectSVGPresentation(e *dom.Element) {
	for _, attr := range []string{"fill", "stroke"} {
		v := e.Attr(attr)
		if v == "" || isExcludedColorValue(v) {
			continue
		}
		if _, ok := parseColor(v); !ok {
			continue
		}
		tc.colors.add(normalizeColorKey(v), 1)
	}
}

// collectClasses records symbolic color references and utility typography
// contributions from the element's class list.
func (tc *tokenCollection) collectClasses(e *dom.Element) {
	for _, class := range e.Classes() {
		if ref, ok := symbolicColorFromClass(class); ok {
			tc.colors.add(ref, 1)
		}
		if category, value, ok := typographyFromClass(class); ok {
			tc.addTypography(category, value)
		}
	}
}

// collectHeading records heading presence and the computed heading font.
func (tc *tokenCollection) collectHeading(e *dom.Element) {
	tag := e.Tag()
	if !headingTags[tag] {
		return
	}
	tc.headings[tag]++

	if ff := e.ComputedStyle("font-family"); ff != "" {
		tc.fontFamilies.add(normalizeFontFamily(ff), 1)
	}
	if fs := e.ComputedStyle("font-size"); fs != "" {
		tc.fontSizes.add(strings.TrimSpace(fs), 1)
	}
}

// addColor validates and counts one color declaration value.
func (tc *tokenCollection) addColor(value string) {
	lit := extractColorLiteral(value)
	if lit == "" || isExcludedColorValue(lit) {
		return
	}
	if _, ok := parseColor(lit); !ok {
		return
	}
	tc.colors.add(normalizeColorKey(lit), 1)
}

// addTypography routes one typography value into its category collector.
// Font families are normalized; other categories keep their literal value.
func (tc *tokenCollection) addTypography(category, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	switch category {
	case "font-family":
		tc.fontFamilies.add(normalizeFontFamily(v), 1)
	case "font-size":
		tc.fontSizes.add(v, 1)
	case "font-weight":
		tc.fontWeights.add(v, 1)
	case "line-height":
		tc.lineHeights.add(v, 1)
	case "letter-spacing":
		tc.letterSpacings.add(v, 1)
	case "text-transform":
		tc.textTransforms.add(v, 1)
	case "text-decoration":
		tc.textDecorations.add(v, 1)
	}
}

// symbolicColorFromClass maps a vocabulary class such as "bg-primary" to
// a symbolic color reference, since the literal value is not resolvable
// from markup alone.
func symbolicColorFromClass(class string) (string, bool) {
	for _, prefix := range colorClassPrefixes {
		if !strings.HasPrefix(class, prefix) {
			continue
		}
		name := strings.TrimPrefix(class, prefix)
		if semanticColorNames[name] {
			return "var(--" + name + ")", true
		}
	}
	return "", false
}

// fontFamiliesFromURL extracts font family names from a web-font-service
// stylesheet URL, e.g. ...css2?family=Roboto:wght@400&family=Open+Sans.
func fontFamiliesFromURL(href string) []string {
	if !webFontHostPattern.MatchString(href) {
		return nil
	}

	var families []string
	for _, m := range fontFamilyParamPattern.FindAllStringSubmatch(href, -1) {
		name := strings.TrimSpace(strings.ReplaceAll(m[1], "+", " "))
		name = strings.ReplaceAll(name, "%20", " ")
		if name != "" {
			families = append(families, name)
		}
	}
	return families
}

// buildTypographySet ranks the collected typography tokens.
func buildTypographySet(tc *tokenCollection) TypographySet {
	return TypographySet{
		FontFamilies:    tc.fontFamilies.tokens(),
		FontSizes:       tc.fontSizes.tokens(),
		FontWeights:     tc.fontWeights.tokens(),
		LineHeights:     tc.lineHeights.tokens(),
		LetterSpacings:  tc.letterSpacings.tokens(),
		TextTransforms:  tc.textTransforms.tokens(),
		TextDecorations: tc.textDecorations.tokens(),
		Headings:        tc.headings,
	}
}
