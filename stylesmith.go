// Package stylesmith extracts design tokens from rendered HTML documents
// and synthesizes them into a canonical style guide.
//
// # Analysis
//
// Analyze one or more parsed documents:
//
//	doc, err := dom.ParseString(markup)
//	analysis := stylesmith.Analyze(doc, "landing.html")
//
// or concurrently:
//
//	analyses := stylesmith.AnalyzeAll([]stylesmith.Source{
//		{ID: "landing.html", Doc: doc1},
//		{ID: "pricing.html", Doc: doc2},
//	})
//
// # Synthesis
//
// Merge the analyses into a style guide with derived color ramps,
// typography scales and component specs:
//
//	guide, err := stylesmith.Synthesize(analyses)
//
// # CLI Tool
//
// stylesmith also provides a CLI tool. Install with:
//
//	go install github.com/stylesmith/stylesmith/cmd/stylesmith@latest
package stylesmith
