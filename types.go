package stylesmith

// RawToken is a single extracted value with its occurrence count.
// Uniqueness key is the normalized string value; insertion order is kept
// by the collectors for deterministic tie-breaks.
type RawToken struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColorCategorySet is the clustered color output for one document.
// No value appears in more than one of Primary/Secondary/Accent; Neutral
// may overlap with All. All carries the merged occurrence counts from the
// dedup pass.
type ColorCategorySet struct {
	Primary   []string   `json:"primary"`
	Secondary []string   `json:"secondary"`
	Accent    []string   `json:"accent"`
	Neutral   []string   `json:"neutral"`
	All       []RawToken `json:"all"`
}

// TypographySet holds the ranked token sequences per typography category
// plus h1-h6 presence counts.
type TypographySet struct {
	FontFamilies    []RawToken     `json:"fontFamilies"`
	FontSizes       []RawToken     `json:"fontSizes"`
	FontWeights     []RawToken     `json:"fontWeights"`
	LineHeights     []RawToken     `json:"lineHeights"`
	LetterSpacings  []RawToken     `json:"letterSpacings"`
	TextTransforms  []RawToken     `json:"textTransforms"`
	TextDecorations []RawToken     `json:"textDecorations"`
	Headings        map[string]int `json:"headings"`
}

// ElementSample is a compact snapshot of a matched element.
type ElementSample struct {
	Tag        string   `json:"tag"`
	Classes    []string `json:"classes"`
	ID         string   `json:"id,omitempty"`
	ChildCount int      `json:"childCount"`
}

// LayoutPattern records how many distinct elements matched a pattern
// group, with up to 3 samples in traversal order.
type LayoutPattern struct {
	Name         string          `json:"name"`
	MatchedCount int             `json:"matchedCount"`
	Examples     []ElementSample `json:"examples"`
}

// FrameworkDetection is the checklist score for one CSS framework.
// Detected is true iff ConfidencePercent > 30.
type FrameworkDetection struct {
	Name              string `json:"name"`
	ConfidencePercent int    `json:"confidencePercent"`
	Detected          bool   `json:"detected"`
	Version           string `json:"version,omitempty"`
}

// PageStructure holds simple presence flags for common page regions.
type PageStructure struct {
	HasHeader     bool `json:"hasHeader"`
	HasFooter     bool `json:"hasFooter"`
	HasNavigation bool `json:"hasNavigation"`
	HasSidebar    bool `json:"hasSidebar"`
	HasMain       bool `json:"hasMain"`
	Sections      int  `json:"sections"`
}

// LayoutAnalysis groups the pattern, framework and page-structure results.
type LayoutAnalysis struct {
	Patterns      map[string]LayoutPattern      `json:"patterns"`
	Frameworks    map[string]FrameworkDetection `json:"frameworks"`
	PageStructure PageStructure                 `json:"pageStructure"`
}

// ComponentStat counts occurrences of one component type in a document.
type ComponentStat struct {
	Count    int             `json:"count"`
	Examples []ElementSample `json:"examples"`
}

// SiteAnalysis is the complete extraction result for one document.
// Immutable once produced.
type SiteAnalysis struct {
	SourceID   string                   `json:"sourceId"`
	Colors     ColorCategorySet         `json:"colors"`
	Typography TypographySet            `json:"typography"`
	Components map[string]ComponentStat `json:"components"`
	Layout     LayoutAnalysis           `json:"layout"`
}

// ShadeRamp maps ramp steps ("50".."900") to hex colors.
type ShadeRamp map[string]string

// GuideColors is the merged palette of a StyleGuide, with generated shade
// ramps for the primary and secondary base colors.
type GuideColors struct {
	Primary   []string             `json:"primary"`
	Secondary []string             `json:"secondary"`
	Accent    []string             `json:"accent"`
	Neutral   []string             `json:"neutral"`
	Shades    map[string]ShadeRamp `json:"shades"`
}

// GuideTypography is the merged typography scale of a StyleGuide.
type GuideTypography struct {
	FontFamilies []string          `json:"fontFamilies"`
	SizeScale    map[string]string `json:"sizeScale"`
	LineHeights  map[string]string `json:"lineHeights"`
	FontWeights  []string          `json:"fontWeights"`
}

// ComponentSpec is the synthesized specification record for one component
// type. The structural contract is fixed per type and independent of the
// observed markup.
type ComponentSpec struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Selector string          `json:"selector"`
	Count    int             `json:"count"`
	Examples []ElementSample `json:"examples"`
	Props    []string        `json:"props"`
	Events   []string        `json:"events,omitempty"`
}

// GuideLayout carries the layout, spacing and breakpoint defaults.
type GuideLayout struct {
	ContainerWidth string            `json:"containerWidth"`
	GridColumns    int               `json:"gridColumns"`
	Breakpoints    map[string]string `json:"breakpoints"`
	SpacingScale   map[string]string `json:"spacingScale"`
}

// StyleGuide is the synthesized canonical design-token output, merged
// across one or more Site Analyses. Created once per Synthesize call and
// never mutated after return.
type StyleGuide struct {
	Sources              []string                 `json:"sources"`
	Colors               GuideColors              `json:"colors"`
	Typography           GuideTypography          `json:"typography"`
	Components           map[string]ComponentSpec `json:"components"`
	Layout               GuideLayout              `json:"layout"`
	RecommendedFramework string                   `json:"recommendedFramework,omitempty"`
	CSSVariables         string                   `json:"cssVariables"`
	PreviewHTML          string                   `json:"previewHtml"`
}
