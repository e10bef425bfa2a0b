package stylesmith

import (
	"sync"

	"github.com/stylesmith/stylesmith/internal/dom"
)

// Source pairs a parsed document with the identifier it is reported
// under, typically the file path or URL it was loaded from.
type Source struct {
	ID  string
	Doc *dom.Document
}

// Analyze extracts the full token set of one document: colors, typography,
// components and layout. The document is only read, never modified, so the
// same tree can be analyzed repeatedly with identical results.
func Analyze(doc *dom.Document, sourceID string) *SiteAnalysis {
	tc := collectTokens(doc)

	return &SiteAnalysis{
		SourceID:   sourceID,
		Colors:     ClusterColors(tc.colors.tokens()),
		Typography: buildTypographySet(tc),
		Components: collectComponents(doc),
		Layout:     analyzeLayout(doc),
	}
}

// AnalyzeAll analyzes every source concurrently and returns the results in
// input order. Documents are independent, so there is no shared state
// between the goroutines beyond the result slots.
func AnalyzeAll(sources []Source) []*SiteAnalysis {
	results := make([]*SiteAnalysis, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i] = Analyze(src.Doc, src.ID)
		}(i, src)
	}
	wg.Wait()

	return results
}
