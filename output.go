package stylesmith

import (
	"fmt"
	"io"
)

// OutputFormat selects how a synthesized guide is written.
type OutputFormat int

const (
	// OutputSummary is the human-readable terminal summary.
	OutputSummary OutputFormat = iota
	// OutputJSON is the structured export schema.
	OutputJSON
	// OutputMarkdown is the style guide document.
	OutputMarkdown
	// OutputCSS is the :root custom-property block only.
	OutputCSS
	// OutputHTML is the static preview page only.
	OutputHTML
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to the summary.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	case "css":
		return OutputCSS
	case "html":
		return OutputHTML
	default:
		return OutputSummary
	}
}

// WriteOutput writes the style guide in the specified format.
func WriteOutput(w io.Writer, guide *StyleGuide, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, guide)

	case OutputMarkdown:
		return WriteMarkdown(w, guide)

	case OutputCSS:
		_, err := io.WriteString(w, guide.CSSVariables)
		return err

	case OutputHTML:
		_, err := io.WriteString(w, guide.PreviewHTML)
		return err

	case OutputSummary:
		NewReporter(w, useColors).PrintGuideSummary(guide)
		return nil
	}
	return fmt.Errorf("unknown output format %d", format)
}
