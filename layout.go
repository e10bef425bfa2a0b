package stylesmith

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/stylesmith/stylesmith/internal/dom"
)

// detectedConfidenceCutoff is the confidence percentage above which a
// framework counts as detected.
const detectedConfidenceCutoff = 30

// maxElementSamples caps the examples recorded per pattern or component.
const maxElementSamples = 3

// layoutPatternGroups are the structural selector groups evaluated per
// document. Matches within one group union by element identity, so an
// element matching two selectors of the same group is counted once.
var layoutPatternGroups = []struct {
	Name      string
	Selectors []string
}{
	{"containers", []string{".container", ".container-fluid", ".wrapper", "[class*=container]"}},
	{"grid", []string{"[class*=grid]", ".row", "[class*=col-]"}},
	{"flexbox", []string{"[class*=flex]", "[class*=justify-]", "[class*=items-]", "[class*=align-]"}},
	{"responsive", []string{"[class*=col-sm]", "[class*=col-md]", "[class*=col-lg]", "[class*=sm:]", "[class*=md:]", "[class*=lg:]"}},
	{"positioning", []string{"[class*=absolute]", "[class*=fixed]", "[class*=sticky]", "[style*=position]"}},
	{"zindex", []string{"[class*=z-]", "[style*=z-index]"}},
}

// frameworkChecklist is a fixed selector checklist for one framework. The
// slice order is significant: it is the tie-break order for the
// per-site framework pick and the vote tally.
type frameworkChecklist struct {
	Name      string
	Selectors []string
}

var frameworkChecklists = []frameworkChecklist{
	{"bootstrap", []string{".container", ".row", "[class*=col-]", ".btn", ".navbar", ".card", ".form-control", ".alert"}},
	{"tailwind", []string{"[class*=flex]", "[class*=grid]", "[class*=rounded]", "[class*=shadow]", "[class*=font-]", "[class*=space-]", "[class*=justify-]", "[class*=tracking-]"}},
	{"bulma", []string{".columns", ".column", ".hero", ".is-primary", ".navbar-burger", ".notification", ".tile", ".subtitle"}},
	{"foundation", []string{".grid-x", ".cell", ".callout", ".top-bar", ".button-group", ".orbit", ".reveal", ".switch"}},
	{"materialize", []string{".waves-effect", ".collection", ".chip", ".toast", ".sidenav", ".carousel", ".parallax", ".tooltipped"}},
}

// componentSelectorGroups map each fixed component type to its match
// selectors, element-identity deduplicated like the layout patterns.
var componentSelectorGroups = []struct {
	Name      string
	Selectors []string
}{
	{"buttons", []string{"button", ".btn", "[class*=button]", "[type=submit]"}},
	{"forms", []string{"form"}},
	{"inputs", []string{"input", "textarea", "select"}},
	{"navigation", []string{"nav", ".navbar", "[class*=nav]"}},
	{"cards", []string{".card", "[class*=card]"}},
	{"modals", []string{".modal", "[class*=modal]", "dialog"}},
	{"tables", []string{"table"}},
	{"lists", []string{"ul", "ol", "dl"}},
}

// analyzeLayout runs pattern matching, framework scoring and the page
// structure checks for one document.
func analyzeLayout(doc *dom.Document) LayoutAnalysis {
	patterns := make(map[string]LayoutPattern, len(layoutPatternGroups))
	for _, group := range layoutPatternGroups {
		patterns[group.Name] = matchPatternGroup(doc, group.Name, group.Selectors)
	}

	return LayoutAnalysis{
		Patterns:      patterns,
		Frameworks:    detectFrameworks(doc),
		PageStructure: detectPageStructure(doc),
	}
}

// matchPatternGroup unions the group's selector matches into a set keyed
// by element identity and samples up to 3 members in traversal order.
func matchPatternGroup(doc *dom.Document, name string, selectors []string) LayoutPattern {
	matched := matchElementSet(doc, selectors)

	pattern := LayoutPattern{
		Name:         name,
		MatchedCount: len(matched),
		Examples:     []ElementSample{},
	}
	doc.Walk(func(e *dom.Element) {
		if len(pattern.Examples) >= maxElementSamples {
			return
		}
		if matched[e.Node()] {
			pattern.Examples = append(pattern.Examples, sampleElement(e))
		}
	})
	return pattern
}

// matchElementSet evaluates each selector and unions the results by
// element identity.
func matchElementSet(doc *dom.Document, selectors []string) map[*html.Node]bool {
	matched := make(map[*html.Node]bool)
	for _, sel := range selectors {
		for _, e := range doc.Find(sel) {
			matched[e.Node()] = true
		}
	}
	return matched
}

// sampleElement snapshots an element for the examples list.
func sampleElement(e *dom.Element) ElementSample {
	classes := e.Classes()
	if classes == nil {
		classes = []string{}
	}
	return ElementSample{
		Tag:        e.Tag(),
		Classes:    classes,
		ID:         e.ID(),
		ChildCount: e.ChildCount(),
	}
}

// detectFrameworks scores every checklist against the document.
func detectFrameworks(doc *dom.Document) map[string]FrameworkDetection {
	result := make(map[string]FrameworkDetection, len(frameworkChecklists))
	for _, checklist := range frameworkChecklists {
		matched := 0
		for _, sel := range checklist.Selectors {
			if len(doc.Find(sel)) > 0 {
				matched++
			}
		}
		confidence := int(math.Round(float64(matched) / float64(len(checklist.Selectors)) * 100))
		result[checklist.Name] = FrameworkDetection{
			Name:              checklist.Name,
			ConfidencePercent: confidence,
			Detected:          confidence > detectedConfidenceCutoff,
			Version:           detectFrameworkVersion(doc, checklist.Name),
		}
	}
	return result
}

// detectFrameworkVersion scans document comments for "<name> ... vX.Y"
// and stylesheet URLs for "<name> ... X.Y[.Z]". The URL result overwrites
// the comment result when both are present (last write wins).
func detectFrameworkVersion(doc *dom.Document, name string) string {
	commentPattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `[^0-9\n]{0,40}v(\d+\.\d+)`)
	linkPattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `[^0-9]{0,10}(\d+\.\d+(?:\.\d+)?)`)

	version := ""
	for _, comment := range doc.Comments() {
		if m := commentPattern.FindStringSubmatch(comment); m != nil {
			version = m[1]
		}
	}
	for _, href := range doc.StylesheetLinks() {
		if m := linkPattern.FindStringSubmatch(href); m != nil {
			version = m[1]
		}
	}
	return version
}

// detectPageStructure runs the tag/class presence checks, independent of
// the pattern and framework logic.
func detectPageStructure(doc *dom.Document) PageStructure {
	return PageStructure{
		HasHeader:     presentByTagOrClass(doc, "header", "header"),
		HasFooter:     presentByTagOrClass(doc, "footer", "footer"),
		HasNavigation: presentByTagOrClass(doc, "nav", "nav"),
		HasSidebar:    presentByTagOrClass(doc, "aside", "sidebar"),
		HasMain:       presentByTagOrClass(doc, "main", "main"),
		Sections:      len(doc.Find("section")),
	}
}

// presentByTagOrClass checks for a tag name or a class-substring match.
func presentByTagOrClass(doc *dom.Document, tag, classSubstring string) bool {
	if len(doc.Find(tag)) > 0 {
		return true
	}
	return len(doc.Find("[class*="+classSubstring+"]")) > 0
}

// collectComponents counts component-type occurrences with up to 3
// samples each.
func collectComponents(doc *dom.Document) map[string]ComponentStat {
	result := make(map[string]ComponentStat, len(componentSelectorGroups))
	for _, group := range componentSelectorGroups {
		matched := matchElementSet(doc, group.Selectors)
		stat := ComponentStat{
			Count:    len(matched),
			Examples: []ElementSample{},
		}
		doc.Walk(func(e *dom.Element) {
			if len(stat.Examples) >= maxElementSamples {
				return
			}
			if matched[e.Node()] {
				stat.Examples = append(stat.Examples, sampleElement(e))
			}
		})
		result[group.Name] = stat
	}
	return result
}

// topFrameworkForSite picks the single highest-confidence framework for
// one analysis, ties resolved by checklist order. Returns "" when every
// framework scored zero.
func topFrameworkForSite(a *SiteAnalysis) string {
	best := ""
	bestConfidence := 0
	for _, checklist := range frameworkChecklists {
		det, ok := a.Layout.Frameworks[checklist.Name]
		if !ok {
			continue
		}
		if det.ConfidencePercent > bestConfidence {
			best = checklist.Name
			bestConfidence = det.ConfidencePercent
		}
	}
	return best
}

// capitalize upper-cases the first letter of a component type name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
