package stylesmith

import "strings"

// familyRule maps a case-insensitive substring of a raw font-family value
// to its canonical stack.
type familyRule struct {
	pattern   string
	canonical string
}

// familyRules is a priority list evaluated in order; the first matching
// rule wins. Several patterns are substrings of later ones, so specific
// families must stay ahead of the generic fallbacks (in particular
// "sans-serif" ahead of "serif"). Do not reorder into a map.
var familyRules = []familyRule{
	{"roboto slab", "Roboto Slab, serif"},
	{"roboto mono", "Roboto Mono, monospace"},
	{"roboto", "Roboto, sans-serif"},
	{"open sans", "Open Sans, sans-serif"},
	{"source sans", "Source Sans Pro, sans-serif"},
	{"source code", "Source Code Pro, monospace"},
	{"lato", "Lato, sans-serif"},
	{"montserrat", "Montserrat, sans-serif"},
	{"poppins", "Poppins, sans-serif"},
	{"inter", "Inter, sans-serif"},
	{"nunito", "Nunito, sans-serif"},
	{"raleway", "Raleway, sans-serif"},
	{"oswald", "Oswald, sans-serif"},
	{"work sans", "Work Sans, sans-serif"},
	{"ubuntu", "Ubuntu, sans-serif"},
	{"playfair", "Playfair Display, serif"},
	{"merriweather", "Merriweather, serif"},
	{"lora", "Lora, serif"},
	{"fira code", "Fira Code, monospace"},
	{"fira sans", "Fira Sans, sans-serif"},

	// System fallbacks stay below the web fonts so the branded family
	// in a stack like "Roboto, Arial, sans-serif" wins.
	{"helvetica neue", "Helvetica Neue, Helvetica, sans-serif"},
	{"helvetica", "Helvetica, Arial, sans-serif"},
	{"arial", "Arial, sans-serif"},
	{"segoe", "Segoe UI, sans-serif"},
	{"georgia", "Georgia, serif"},
	{"garamond", "Garamond, serif"},
	{"times", "Times New Roman, serif"},
	{"courier", "Courier New, monospace"},
	{"consolas", "Consolas, monospace"},
	{"menlo", "Menlo, monospace"},
	{"monaco", "Monaco, monospace"},
	{"system-ui", "system-ui, sans-serif"},
	{"monospace", "monospace"},
	{"mono", "monospace"},
	{"sans-serif", "sans-serif"},
	{"serif", "serif"},
	{"cursive", "cursive"},
}

// normalizeFontFamily canonicalizes a raw font-family value. Quotes and
// surrounding whitespace are stripped before matching; values matching no
// rule pass through trimmed and unquoted.
func normalizeFontFamily(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, `"`, "")
	cleaned = strings.ReplaceAll(cleaned, "'", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}

	lower := strings.ToLower(cleaned)
	for _, rule := range familyRules {
		if strings.Contains(lower, rule.pattern) {
			return rule.canonical
		}
	}
	return cleaned
}

// fontWeightClasses resolves utility classes whose weight is knowable
// from the class name alone.
var fontWeightClasses = map[string]string{
	"fw-bold":       "700",
	"fw-bolder":     "800",
	"fw-semibold":   "600",
	"fw-medium":     "500",
	"fw-normal":     "400",
	"fw-light":      "300",
	"fw-lighter":    "200",
	"font-bold":     "700",
	"font-semibold": "600",
	"font-medium":   "500",
	"font-normal":   "400",
	"font-light":    "300",
}

// textTransformClasses resolves text-transform utility classes.
var textTransformClasses = map[string]string{
	"text-uppercase":  "uppercase",
	"text-lowercase":  "lowercase",
	"text-capitalize": "capitalize",
	"uppercase":       "uppercase",
	"lowercase":       "lowercase",
	"capitalize":      "capitalize",
}

// typographyFromClass resolves a utility class into a (category, value)
// contribution. Font-size utilities (fs-*) carry no literal value in the
// class name, so they contribute a custom-property-style placeholder.
func typographyFromClass(class string) (category, value string, ok bool) {
	if v, found := fontWeightClasses[class]; found {
		return "font-weight", v, true
	}
	if v, found := textTransformClasses[class]; found {
		return "text-transform", v, true
	}
	if strings.HasPrefix(class, "fs-") && len(class) > 3 {
		return "font-size", "var(--" + class + ")", true
	}
	return "", "", false
}
