package stylesmith

import (
	"fmt"
	"html"
	"strings"
)

// Rendering key orders. Map iteration is randomized, so every rendered
// section walks one of these slices instead.
var (
	shadeRampOrder   = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	shadeGroupOrder  = []string{"primary", "secondary"}
	lineHeightOrder  = []string{"tight", "normal", "relaxed"}
	spacingKeyOrder  = []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl"}
	breakpointOrder  = []string{"sm", "md", "lg", "xl", "xxl"}
	componentOrder   = []string{"buttons", "forms", "inputs", "navigation", "cards", "modals", "tables", "lists"}
	cssVariableIdent = strings.NewReplacer("(", "", ")", "", " ", "-", ",", "")
)

// GenerateCSSVariables renders the guide as a :root custom-property block.
// Output is deterministic for a given guide.
func GenerateCSSVariables(guide *StyleGuide) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	writeColorGroup(&b, "color-primary", guide.Colors.Primary)
	writeColorGroup(&b, "color-secondary", guide.Colors.Secondary)
	writeColorGroup(&b, "color-accent", guide.Colors.Accent)
	writeColorGroup(&b, "color-neutral", guide.Colors.Neutral)

	for _, group := range shadeGroupOrder {
		ramp, ok := guide.Colors.Shades[group]
		if !ok || len(ramp) == 0 {
			continue
		}
		for _, step := range shadeRampOrder {
			if v, ok := ramp[step]; ok {
				fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", group, step, v)
			}
		}
	}

	for i, family := range guide.Typography.FontFamilies {
		fmt.Fprintf(&b, "  --font-family-%d: %s;\n", i+1, family)
	}
	for _, key := range sizeScaleKeys {
		if v, ok := guide.Typography.SizeScale[key]; ok {
			fmt.Fprintf(&b, "  --font-size-%s: %s;\n", key, v)
		}
	}
	for _, key := range lineHeightOrder {
		if v, ok := guide.Typography.LineHeights[key]; ok {
			fmt.Fprintf(&b, "  --line-height-%s: %s;\n", key, v)
		}
	}
	for _, w := range guide.Typography.FontWeights {
		fmt.Fprintf(&b, "  --font-weight-%s: %s;\n", cssIdent(w), w)
	}

	for _, key := range spacingKeyOrder {
		if v, ok := guide.Layout.SpacingScale[key]; ok {
			fmt.Fprintf(&b, "  --spacing-%s: %s;\n", key, v)
		}
	}
	for _, key := range breakpointOrder {
		if v, ok := guide.Layout.Breakpoints[key]; ok {
			fmt.Fprintf(&b, "  --breakpoint-%s: %s;\n", key, v)
		}
	}
	fmt.Fprintf(&b, "  --container-width: %s;\n", guide.Layout.ContainerWidth)

	b.WriteString("}\n")
	return b.String()
}

// writeColorGroup emits one numbered variable per color. Symbolic values
// are emitted as-is; a var() in a var value is valid CSS.
func writeColorGroup(b *strings.Builder, prefix string, colors []string) {
	for i, c := range colors {
		fmt.Fprintf(b, "  --%s-%d: %s;\n", prefix, i+1, c)
	}
}

// cssIdent makes a value safe for use inside a custom property name.
func cssIdent(v string) string {
	return strings.ToLower(cssVariableIdent.Replace(v))
}

// GeneratePreviewHTML renders a static single-file preview of the guide:
// palette swatches, shade ramps, the type scale and the component list.
func GeneratePreviewHTML(guide *StyleGuide) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Style Guide Preview</title>\n<style>\n")
	b.WriteString(guide.CSSVariables)
	b.WriteString(previewBaseCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("<h1>Style Guide</h1>\n")

	writeSwatchSection(&b, "Primary", guide.Colors.Primary)
	writeSwatchSection(&b, "Secondary", guide.Colors.Secondary)
	writeSwatchSection(&b, "Accent", guide.Colors.Accent)
	writeSwatchSection(&b, "Neutral", guide.Colors.Neutral)

	for _, group := range shadeGroupOrder {
		ramp, ok := guide.Colors.Shades[group]
		if !ok || len(ramp) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h2>%s shades</h2>\n<div class=\"swatch-row\">\n", html.EscapeString(capitalize(group)))
		for _, step := range shadeRampOrder {
			if v, ok := ramp[step]; ok {
				fmt.Fprintf(&b, "  <div class=\"swatch\" style=\"background:%s\"><span>%s</span></div>\n",
					html.EscapeString(v), step)
			}
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("<h2>Typography</h2>\n")
	for i, family := range guide.Typography.FontFamilies {
		fmt.Fprintf(&b, "<p style=\"font-family:%s\">Font %d: %s</p>\n",
			html.EscapeString(family), i+1, html.EscapeString(family))
	}
	b.WriteString("<div class=\"type-scale\">\n")
	for _, key := range sizeScaleKeys {
		if v, ok := guide.Typography.SizeScale[key]; ok {
			fmt.Fprintf(&b, "  <p style=\"font-size:%s\">%s (%s) The quick brown fox</p>\n",
				html.EscapeString(v), key, html.EscapeString(v))
		}
	}
	b.WriteString("</div>\n")

	b.WriteString("<h2>Components</h2>\n<ul>\n")
	for _, key := range componentOrder {
		spec, ok := guide.Components[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  <li><strong>%s</strong> (%s) observed %d times</li>\n",
			html.EscapeString(spec.Name), html.EscapeString(spec.Selector), spec.Count)
	}
	b.WriteString("</ul>\n")

	if guide.RecommendedFramework != "" {
		fmt.Fprintf(&b, "<p>Recommended framework: <strong>%s</strong></p>\n",
			html.EscapeString(guide.RecommendedFramework))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeSwatchSection(b *strings.Builder, title string, colors []string) {
	if len(colors) == 0 {
		return
	}
	fmt.Fprintf(b, "<h2>%s</h2>\n<div class=\"swatch-row\">\n", title)
	for _, c := range colors {
		fmt.Fprintf(b, "  <div class=\"swatch\" style=\"background:%s\"><span>%s</span></div>\n",
			html.EscapeString(c), html.EscapeString(c))
	}
	b.WriteString("</div>\n")
}

const previewBaseCSS = `body { font-family: system-ui, sans-serif; margin: 2rem; }
.swatch-row { display: flex; gap: 0.5rem; margin-bottom: 1rem; }
.swatch { width: 72px; height: 72px; border-radius: 6px; border: 1px solid #ddd;
  display: flex; align-items: flex-end; justify-content: center; }
.swatch span { font-size: 10px; background: rgba(255,255,255,0.8); padding: 1px 3px; }
.type-scale p { margin: 0.25rem 0; }
`
