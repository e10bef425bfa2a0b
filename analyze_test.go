package stylesmith

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const landingPage = `<!DOCTYPE html>
<html>
<head>
<!-- Bootstrap v5.1 -->
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600">
<style>
h1 { font-family: Inter; color: #1a1a2e; }
</style>
</head>
<body>
<header class="navbar">
	<nav class="nav"><a class="nav-link" href="/">Home</a></nav>
</header>
<main class="container">
	<h1>Welcome</h1>
	<div class="row">
		<div class="col-md-8">
			<p style="color: #16213e; font-size: 16px">Body text</p>
			<button class="btn btn-primary" style="background-color: #0f3460">Start</button>
		</div>
		<aside class="col-md-4 sidebar">side</aside>
	</div>
	<div class="card"><div class="alert">note</div></div>
</main>
<footer>f</footer>
</body>
</html>`

func TestAnalyze(t *testing.T) {
	doc := parseDoc(t, landingPage)
	a := Analyze(doc, "landing.html")

	require.Equal(t, "landing.html", a.SourceID)
	require.NotEmpty(t, a.Colors.All)
	require.NotEmpty(t, a.Typography.FontFamilies)
	require.Equal(t, "Inter, sans-serif", a.Typography.FontFamilies[0].Value)
	require.Equal(t, 1, a.Typography.Headings["h1"])

	require.Greater(t, a.Components["buttons"].Count, 0)
	require.Greater(t, a.Components["navigation"].Count, 0)

	bootstrap := a.Layout.Frameworks["bootstrap"]
	require.True(t, bootstrap.Detected)
	require.Equal(t, "5.1", bootstrap.Version)

	require.True(t, a.Layout.PageStructure.HasHeader)
	require.True(t, a.Layout.PageStructure.HasFooter)
	require.True(t, a.Layout.PageStructure.HasSidebar)
	require.True(t, a.Layout.PageStructure.HasMain)
}

func TestAnalyzeIdempotent(t *testing.T) {
	doc := parseDoc(t, landingPage)

	first := Analyze(doc, "landing.html")
	second := Analyze(doc, "landing.html")
	require.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestAnalyzeAllPreservesOrder(t *testing.T) {
	docs := []string{
		`<div style="color: #ff0000">a</div>`,
		`<div style="color: #00ff00">b</div>`,
		`<div style="color: #0000ff">c</div>`,
	}
	ids := []string{"one.html", "two.html", "three.html"}

	sources := make([]Source, len(docs))
	for i, markup := range docs {
		sources[i] = Source{ID: ids[i], Doc: parseDoc(t, markup)}
	}

	analyses := AnalyzeAll(sources)
	require.Len(t, analyses, 3)
	for i, a := range analyses {
		require.Equal(t, ids[i], a.SourceID)
	}
	require.Equal(t, "#ff0000", analyses[0].Colors.All[0].Value)
	require.Equal(t, "#00ff00", analyses[1].Colors.All[0].Value)
	require.Equal(t, "#0000ff", analyses[2].Colors.All[0].Value)
}

func TestAnalyzeAllMatchesSequential(t *testing.T) {
	doc := parseDoc(t, landingPage)

	sequential := Analyze(doc, "landing.html")
	concurrent := AnalyzeAll([]Source{{ID: "landing.html", Doc: doc}})
	require.Len(t, concurrent, 1)
	require.Equal(t, sequential, concurrent[0])
}

func TestAnalyzeThenSynthesizeEndToEnd(t *testing.T) {
	doc := parseDoc(t, landingPage)
	analyses := AnalyzeAll([]Source{{ID: "landing.html", Doc: doc}})

	guide, err := Synthesize(analyses)
	require.NoError(t, err)

	require.Equal(t, []string{"landing.html"}, guide.Sources)
	require.NotEmpty(t, guide.Colors.Primary)
	require.Equal(t, "bootstrap", guide.RecommendedFramework)
	require.Contains(t, guide.CSSVariables, ":root {")
	require.Contains(t, guide.PreviewHTML, "Style Guide")
}
