package stylesmith

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured JSON export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Guide     *StyleGuide `json:"guide"`
}

// JSONSummary contains high-level result counts.
type JSONSummary struct {
	Sources              int    `json:"sources"`
	PrimaryColors        int    `json:"primary_colors"`
	FontFamilies         int    `json:"font_families"`
	ComponentTypes       int    `json:"component_types"`
	RecommendedFramework string `json:"recommended_framework,omitempty"`
}

// WriteJSON writes the style guide as indented JSON.
func WriteJSON(w io.Writer, guide *StyleGuide) error {
	output := buildJSONOutput(guide)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput wraps a StyleGuide in the versioned export envelope.
func buildJSONOutput(guide *StyleGuide) JSONOutput {
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Sources:              len(guide.Sources),
			PrimaryColors:        len(guide.Colors.Primary),
			FontFamilies:         len(guide.Typography.FontFamilies),
			ComponentTypes:       len(guide.Components),
			RecommendedFramework: guide.RecommendedFramework,
		},
		Guide: guide,
	}
}
