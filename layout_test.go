package stylesmith

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFrameworksBootstrapHalfChecklist(t *testing.T) {
	// Matches 4 of the 8 Bootstrap checklist selectors:
	// .container, .row, [class*=col-], .btn
	doc := parseDoc(t, `<div class="container">
		<div class="row">
			<div class="col-md-6"><button class="btn">Go</button></div>
		</div>
	</div>`)

	frameworks := detectFrameworks(doc)
	bootstrap := frameworks["bootstrap"]

	require.Equal(t, 50, bootstrap.ConfidencePercent)
	require.True(t, bootstrap.Detected)
}

func TestDetectFrameworksConfidenceBounds(t *testing.T) {
	doc := parseDoc(t, `<div class="container">
		<div class="row"><div class="col-2"></div></div>
		<button class="btn"></button>
		<nav class="navbar"></nav>
		<div class="card"></div>
		<input class="form-control">
		<div class="alert"></div>
	</div>`)

	frameworks := detectFrameworks(doc)
	for name, det := range frameworks {
		require.GreaterOrEqual(t, det.ConfidencePercent, 0, name)
		require.LessOrEqual(t, det.ConfidencePercent, 100, name)
		require.Equal(t, det.ConfidencePercent > 30, det.Detected, name)
	}
	require.Equal(t, 100, frameworks["bootstrap"].ConfidencePercent)
}

func TestDetectFrameworksBelowCutoff(t *testing.T) {
	// Two of eight selectors is 25%, under the detection cutoff.
	doc := parseDoc(t, `<div class="container"><div class="row">x</div></div>`)

	bootstrap := detectFrameworks(doc)["bootstrap"]
	require.Equal(t, 25, bootstrap.ConfidencePercent)
	require.False(t, bootstrap.Detected)
}

func TestDetectFrameworkVersionFromComment(t *testing.T) {
	doc := parseDoc(t, `<html><head><!-- Bootstrap v4.6 --></head>
		<body><div class="container"></div></body></html>`)

	require.Equal(t, "4.6", detectFrameworkVersion(doc, "bootstrap"))
}

func TestDetectFrameworkVersionLinkOverwritesComment(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<!-- Bootstrap v4.6 -->
		<link rel="stylesheet" href="https://cdn.example.com/bootstrap/5.3.2/bootstrap.min.css">
	</head><body></body></html>`)

	require.Equal(t, "5.3.2", detectFrameworkVersion(doc, "bootstrap"))
}

func TestDetectFrameworkVersionAbsent(t *testing.T) {
	doc := parseDoc(t, `<div class="container"></div>`)
	require.Equal(t, "", detectFrameworkVersion(doc, "bootstrap"))
}

func TestMatchPatternGroupElementIdentity(t *testing.T) {
	// One element matching two selectors of the same group counts once.
	doc := parseDoc(t, `<div>
		<div class="d-flex justify-center">a</div>
		<div class="flex-row">b</div>
	</div>`)

	pattern := matchPatternGroup(doc, "flexbox",
		[]string{"[class*=flex]", "[class*=justify-]"})

	require.Equal(t, 2, pattern.MatchedCount)
	require.Len(t, pattern.Examples, 2)
}

func TestMatchPatternGroupCapsExamples(t *testing.T) {
	doc := parseDoc(t, `<div>
		<div class="grid">1</div><div class="grid">2</div>
		<div class="grid">3</div><div class="grid">4</div>
		<div class="grid">5</div>
	</div>`)

	pattern := matchPatternGroup(doc, "grid", []string{"[class*=grid]"})
	require.Equal(t, 5, pattern.MatchedCount)
	require.Len(t, pattern.Examples, 3)
}

func TestDetectPageStructure(t *testing.T) {
	doc := parseDoc(t, `<body>
		<header>h</header>
		<nav>n</nav>
		<main>
			<section>a</section>
			<section>b</section>
		</main>
		<div class="sidebar">s</div>
		<footer>f</footer>
	</body>`)

	ps := detectPageStructure(doc)
	require.True(t, ps.HasHeader)
	require.True(t, ps.HasFooter)
	require.True(t, ps.HasNavigation)
	require.True(t, ps.HasSidebar)
	require.True(t, ps.HasMain)
	require.Equal(t, 2, ps.Sections)
}

func TestDetectPageStructureByClass(t *testing.T) {
	doc := parseDoc(t, `<div class="header">h</div><div class="footer">f</div>`)

	ps := detectPageStructure(doc)
	require.True(t, ps.HasHeader)
	require.True(t, ps.HasFooter)
	require.False(t, ps.HasMain)
}

func TestCollectComponents(t *testing.T) {
	doc := parseDoc(t, `<div>
		<button class="btn">1</button>
		<a class="button-link">2</a>
		<form><input type="text"><select></select></form>
		<nav>n</nav>
		<table><tr><td>x</td></tr></table>
		<ul><li>i</li></ul>
	</div>`)

	components := collectComponents(doc)

	// <button> also carries .btn; identity dedup keeps it at one element
	// plus the .button-link anchor.
	require.Equal(t, 2, components["buttons"].Count)
	require.Equal(t, 1, components["forms"].Count)
	require.Equal(t, 2, components["inputs"].Count)
	require.Equal(t, 1, components["navigation"].Count)
	require.Equal(t, 1, components["tables"].Count)
	require.Equal(t, 1, components["lists"].Count)
	require.Equal(t, 0, components["modals"].Count)

	require.NotEmpty(t, components["buttons"].Examples)
	require.Equal(t, "button", components["buttons"].Examples[0].Tag)
}

func TestTopFrameworkForSite(t *testing.T) {
	a := &SiteAnalysis{Layout: LayoutAnalysis{Frameworks: map[string]FrameworkDetection{
		"bootstrap": {Name: "bootstrap", ConfidencePercent: 50},
		"tailwind":  {Name: "tailwind", ConfidencePercent: 75},
	}}}
	require.Equal(t, "tailwind", topFrameworkForSite(a))

	// Ties resolve to checklist order.
	tie := &SiteAnalysis{Layout: LayoutAnalysis{Frameworks: map[string]FrameworkDetection{
		"bootstrap": {Name: "bootstrap", ConfidencePercent: 50},
		"tailwind":  {Name: "tailwind", ConfidencePercent: 50},
	}}}
	require.Equal(t, "bootstrap", topFrameworkForSite(tie))

	// All-zero sites have no top framework.
	zero := &SiteAnalysis{Layout: LayoutAnalysis{Frameworks: map[string]FrameworkDetection{
		"bootstrap": {Name: "bootstrap", ConfidencePercent: 0},
	}}}
	require.Equal(t, "", topFrameworkForSite(zero))
}
