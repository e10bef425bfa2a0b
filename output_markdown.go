package stylesmith

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the style guide as a markdown document.
func WriteMarkdown(w io.Writer, guide *StyleGuide) error {
	var b strings.Builder

	b.WriteString("# Style Guide\n\n")
	b.WriteString("Synthesized from ")
	b.WriteString(pluralizeCount(len(guide.Sources), "source", "sources"))
	b.WriteString(":\n\n")
	for _, src := range guide.Sources {
		fmt.Fprintf(&b, "- `%s`\n", src)
	}

	b.WriteString("\n## Colors\n\n")
	writeMarkdownColorRow(&b, "Primary", guide.Colors.Primary)
	writeMarkdownColorRow(&b, "Secondary", guide.Colors.Secondary)
	writeMarkdownColorRow(&b, "Accent", guide.Colors.Accent)
	writeMarkdownColorRow(&b, "Neutral", guide.Colors.Neutral)

	for _, group := range shadeGroupOrder {
		ramp, ok := guide.Colors.Shades[group]
		if !ok || len(ramp) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s shades\n\n| Step | Color |\n|------|-------|\n", capitalize(group))
		for _, step := range shadeRampOrder {
			if v, ok := ramp[step]; ok {
				fmt.Fprintf(&b, "| %s | `%s` |\n", step, v)
			}
		}
	}

	b.WriteString("\n## Typography\n\n")
	for i, family := range guide.Typography.FontFamilies {
		fmt.Fprintf(&b, "%d. %s\n", i+1, family)
	}
	b.WriteString("\n### Size scale\n\n| Slot | Size |\n|------|------|\n")
	for _, key := range sizeScaleKeys {
		if v, ok := guide.Typography.SizeScale[key]; ok {
			fmt.Fprintf(&b, "| %s | `%s` |\n", key, v)
		}
	}
	b.WriteString("\n### Line heights\n\n")
	for _, key := range lineHeightOrder {
		if v, ok := guide.Typography.LineHeights[key]; ok {
			fmt.Fprintf(&b, "- %s: `%s`\n", key, v)
		}
	}
	if len(guide.Typography.FontWeights) > 0 {
		b.WriteString("\n### Font weights\n\n")
		fmt.Fprintf(&b, "%s\n", strings.Join(guide.Typography.FontWeights, ", "))
	}

	b.WriteString("\n## Components\n\n")
	b.WriteString("| Component | Selector | Count | Props |\n|-----------|----------|-------|-------|\n")
	for _, key := range componentOrder {
		spec, ok := guide.Components[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | `%s` | %d | %s |\n",
			spec.Name, spec.Selector, spec.Count, strings.Join(spec.Props, ", "))
	}

	b.WriteString("\n## Layout\n\n")
	fmt.Fprintf(&b, "- Container width: `%s`\n", guide.Layout.ContainerWidth)
	fmt.Fprintf(&b, "- Grid columns: %d\n", guide.Layout.GridColumns)
	b.WriteString("- Breakpoints:")
	for _, key := range breakpointOrder {
		if v, ok := guide.Layout.Breakpoints[key]; ok {
			fmt.Fprintf(&b, " %s=`%s`", key, v)
		}
	}
	b.WriteString("\n")

	if guide.RecommendedFramework != "" {
		fmt.Fprintf(&b, "\n## Recommended framework\n\n%s\n", guide.RecommendedFramework)
	}

	b.WriteString("\n## CSS variables\n\n```css\n")
	b.WriteString(guide.CSSVariables)
	b.WriteString("```\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownColorRow(b *strings.Builder, label string, colors []string) {
	if len(colors) == 0 {
		return
	}
	fmt.Fprintf(b, "- **%s**:", label)
	for _, c := range colors {
		fmt.Fprintf(b, " `%s`", c)
	}
	b.WriteString("\n")
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
