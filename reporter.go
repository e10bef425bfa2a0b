package stylesmith

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter prints human-readable analysis and guide summaries.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colored output should be enabled.
func ShouldUseColors(forceColors bool) bool {
	// Explicit flag wins
	if forceColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintAnalysis outputs a per-document extraction summary.
func (r *Reporter) PrintAnalysis(a *SiteAnalysis) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, a.SourceID, r.useColors))

	fmt.Fprintf(r.w, "  Colors:       %d distinct", len(a.Colors.All))
	if len(a.Colors.Primary) > 0 {
		fmt.Fprintf(r.w, " (primary %s)", a.Colors.Primary[0])
	}
	fmt.Fprintln(r.w, "")

	if len(a.Typography.FontFamilies) > 0 {
		fmt.Fprintf(r.w, "  Fonts:        %s", a.Typography.FontFamilies[0].Value)
		if len(a.Typography.FontFamilies) > 1 {
			fmt.Fprintf(r.w, " (+%d more)", len(a.Typography.FontFamilies)-1)
		}
		fmt.Fprintln(r.w, "")
	}

	componentTotal := 0
	for _, stat := range a.Components {
		componentTotal += stat.Count
	}
	fmt.Fprintf(r.w, "  Components:   %d elements across %d types\n",
		componentTotal, countNonZero(a.Components))

	for _, checklist := range frameworkChecklists {
		det, ok := a.Layout.Frameworks[checklist.Name]
		if !ok || !det.Detected {
			continue
		}
		label := fmt.Sprintf("%s (%d%%", det.Name, det.ConfidencePercent)
		if det.Version != "" {
			label += ", v" + det.Version
		}
		label += ")"
		fmt.Fprintf(r.w, "  Framework:    %s\n", RenderStyle(StyleGreen, label, r.useColors))
	}
}

// PrintGuideSummary outputs the synthesized guide overview.
func (r *Reporter) PrintGuideSummary(guide *StyleGuide) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Style Guide", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	fmt.Fprintf(r.w, "Sources:      %d\n", len(guide.Sources))
	fmt.Fprintf(r.w, "Primary:      %s\n", joinOrDash(guide.Colors.Primary))
	fmt.Fprintf(r.w, "Secondary:    %s\n", joinOrDash(guide.Colors.Secondary))
	fmt.Fprintf(r.w, "Accent:       %s\n", joinOrDash(guide.Colors.Accent))
	fmt.Fprintf(r.w, "Neutral:      %s\n", joinOrDash(guide.Colors.Neutral))
	fmt.Fprintf(r.w, "Fonts:        %s\n", joinOrDash(guide.Typography.FontFamilies))

	names := make([]string, 0, len(guide.Components))
	for name := range guide.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(r.w, "Components:   %s\n", joinOrDash(names))

	if guide.RecommendedFramework != "" {
		fmt.Fprintf(r.w, "Framework:    %s\n",
			RenderStyle(StyleGreen, guide.RecommendedFramework, r.useColors))
	} else {
		fmt.Fprintf(r.w, "Framework:    %s\n",
			RenderStyle(StyleGray, "none detected", r.useColors))
	}
}

func countNonZero(components map[string]ComponentStat) int {
	n := 0
	for _, stat := range components {
		if stat.Count > 0 {
			n++
		}
	}
	return n
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}
