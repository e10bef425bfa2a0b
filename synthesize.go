package stylesmith

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Selection caps and sample gates.
const (
	guidePrimaryCount   = 3
	guideSecondaryCount = 3
	guideAccentCount    = 2
	guideNeutralCount   = 4

	guideFontFamilyCount = 3

	sizeScaleSampleGate  = 5
	lineHeightSampleGate = 3
)

// ErrNoAnalyses is returned when Synthesize is called with nothing to
// merge.
var ErrNoAnalyses = errors.New("synthesize: at least one site analysis is required")

// sizeScaleKeys orders the size-scale slots from smallest to largest.
var sizeScaleKeys = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

var defaultSizeScale = map[string]string{
	"xs":   "0.75rem",
	"sm":   "0.875rem",
	"base": "1rem",
	"lg":   "1.125rem",
	"xl":   "1.25rem",
	"2xl":  "1.5rem",
	"3xl":  "1.875rem",
	"4xl":  "2.25rem",
}

var defaultLineHeights = map[string]string{
	"tight":   "1.25",
	"normal":  "1.5",
	"relaxed": "1.75",
}

var defaultBreakpoints = map[string]string{
	"sm":  "576px",
	"md":  "768px",
	"lg":  "992px",
	"xl":  "1200px",
	"xxl": "1400px",
}

var defaultSpacingScale = map[string]string{
	"xs":  "0.25rem",
	"sm":  "0.5rem",
	"md":  "1rem",
	"lg":  "1.5rem",
	"xl":  "2rem",
	"2xl": "3rem",
	"3xl": "4rem",
}

// componentContract fixes the synthesized prop and event surface per
// component type, independent of the observed markup.
type componentContract struct {
	Props  []string
	Events []string
}

var componentContracts = map[string]componentContract{
	"buttons":    {Props: []string{"variant", "size", "disabled"}, Events: []string{"click"}},
	"forms":      {Props: []string{"action", "method"}, Events: []string{"submit"}},
	"inputs":     {Props: []string{"type", "placeholder", "value", "disabled"}, Events: []string{"change", "input"}},
	"navigation": {Props: []string{"items", "active"}},
	"cards":      {Props: []string{"title", "body", "footer"}},
	"modals":     {Props: []string{"title", "open", "closable"}, Events: []string{"open", "close"}},
	"tables":     {Props: []string{"columns", "rows", "striped"}},
	"lists":      {Props: []string{"items", "ordered"}},
}

// Synthesize merges the site analyses into one canonical style guide.
// The engine requires only a non-empty batch; the document-count bound
// lives in the CLI layer. The inputs are only read; the returned guide
// is a fresh value.
func Synthesize(analyses []*SiteAnalysis) (*StyleGuide, error) {
	if len(analyses) == 0 {
		return nil, ErrNoAnalyses
	}

	guide := &StyleGuide{
		Sources:              make([]string, 0, len(analyses)),
		Colors:               synthesizeColors(analyses),
		Typography:           synthesizeTypography(analyses),
		Components:           synthesizeComponents(analyses),
		Layout:               defaultGuideLayout(),
		RecommendedFramework: voteFramework(analyses),
	}
	for _, a := range analyses {
		guide.Sources = append(guide.Sources, a.SourceID)
	}

	guide.CSSVariables = GenerateCSSVariables(guide)
	guide.PreviewHTML = GeneratePreviewHTML(guide)
	return guide, nil
}

// synthesizeColors flattens each color category across the sites into its
// own pool, recounts occurrences globally and keeps the most frequent
// entries, so a color frequent across sites outranks one dominant on a
// single site without ever crossing category boundaries.
func synthesizeColors(analyses []*SiteAnalysis) GuideColors {
	allPool := newRawCollector()
	for _, a := range analyses {
		for _, tok := range a.Colors.All {
			allPool.add(tok.Value, tok.Count)
		}
	}
	allRanked := rankByCount(allPool.tokens())

	colors := GuideColors{
		Primary:   rankedValues(categoryPool(analyses, func(c ColorCategorySet) []string { return c.Primary }), guidePrimaryCount),
		Secondary: rankedValues(categoryPool(analyses, func(c ColorCategorySet) []string { return c.Secondary }), guideSecondaryCount),
		Accent:    rankedValues(categoryPool(analyses, func(c ColorCategorySet) []string { return c.Accent }), guideAccentCount),
		Neutral:   rankedValues(categoryPool(analyses, func(c ColorCategorySet) []string { return c.Neutral }), guideNeutralCount),
		Shades:    map[string]ShadeRamp{},
	}

	// A category empty on every site falls back to the flattened all
	// pool, offset past the positional slots for secondary and accent to
	// reduce overlap with primary.
	if len(colors.Primary) == 0 {
		colors.Primary = poolSlice(allRanked, 0, guidePrimaryCount)
	}
	if len(colors.Secondary) == 0 {
		colors.Secondary = poolSlice(allRanked, guidePrimaryCount, guideSecondaryCount)
	}
	if len(colors.Accent) == 0 {
		colors.Accent = poolSlice(allRanked, guidePrimaryCount+guideSecondaryCount, guideAccentCount)
	}
	if len(colors.Neutral) == 0 {
		colors.Neutral = poolSlice(allRanked, 0, guideNeutralCount)
	}

	if len(colors.Primary) > 0 {
		colors.Shades["primary"] = generateShadeRamp(colors.Primary[0])
	}
	if len(colors.Secondary) > 0 {
		colors.Shades["secondary"] = generateShadeRamp(colors.Secondary[0])
	}
	return colors
}

// categoryPool recounts one category's values across the sites, pulling
// each value's occurrence count from the owning site's all sequence.
func categoryPool(analyses []*SiteAnalysis, pick func(ColorCategorySet) []string) []RawToken {
	pool := newRawCollector()
	for _, a := range analyses {
		for _, value := range pick(a.Colors) {
			pool.add(value, siteColorCount(a, value))
		}
	}
	return rankByCount(pool.tokens())
}

// siteColorCount looks up a value's occurrence count in the site's all
// sequence. Category members are drawn from all, so a miss only happens
// on hand-built analyses; those count as a single occurrence.
func siteColorCount(a *SiteAnalysis, value string) int {
	for _, tok := range a.Colors.All {
		if tok.Value == value {
			return tok.Count
		}
	}
	return 1
}

// rankByCount sorts tokens by descending count, first-seen tie-break.
func rankByCount(tokens []RawToken) []RawToken {
	ranked := make([]RawToken, len(tokens))
	copy(ranked, tokens)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// poolSlice takes up to n token values from the pool starting at offset.
func poolSlice(pool []RawToken, offset, n int) []string {
	out := []string{}
	for i := offset; i < len(pool) && len(out) < n; i++ {
		out = append(out, pool[i].Value)
	}
	return out
}

// synthesizeTypography merges the per-site typography rankings and infers
// the size and line-height scales when enough samples exist.
func synthesizeTypography(analyses []*SiteAnalysis) GuideTypography {
	families := newRawCollector()
	sizes := newRawCollector()
	lineHeights := newRawCollector()
	weights := newRawCollector()

	for _, a := range analyses {
		for _, tok := range a.Typography.FontFamilies {
			families.add(tok.Value, tok.Count)
		}
		for _, tok := range a.Typography.FontSizes {
			sizes.add(tok.Value, tok.Count)
		}
		for _, tok := range a.Typography.LineHeights {
			lineHeights.add(tok.Value, tok.Count)
		}
		for _, tok := range a.Typography.FontWeights {
			weights.add(tok.Value, tok.Count)
		}
	}

	return GuideTypography{
		FontFamilies: rankedValues(families.tokens(), guideFontFamilyCount),
		SizeScale:    inferSizeScale(sizes.tokens()),
		LineHeights:  inferLineHeights(lineHeights.tokens()),
		FontWeights:  sortedWeights(weights.tokens()),
	}
}

func rankedValues(tokens []RawToken, n int) []string {
	out := []string{}
	for _, tok := range tokens {
		if len(out) >= n {
			break
		}
		out = append(out, tok.Value)
	}
	return out
}

// inferSizeScale assigns the distinct measurable sizes, sorted ascending,
// to the scale slots from smallest up; missing slots keep their defaults.
// Below the sample gate the default scale is returned unchanged.
func inferSizeScale(tokens []RawToken) map[string]string {
	type measured struct {
		value string
		px    float64
	}
	var samples []measured
	for _, tok := range tokens {
		if px, ok := sizeToPixels(tok.Value); ok {
			samples = append(samples, measured{value: tok.Value, px: px})
		}
	}

	scale := make(map[string]string, len(defaultSizeScale))
	for k, v := range defaultSizeScale {
		scale[k] = v
	}
	if len(samples) < sizeScaleSampleGate {
		return scale
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].px < samples[j].px })
	for i, key := range sizeScaleKeys {
		if i >= len(samples) {
			break
		}
		scale[key] = samples[i].value
	}
	return scale
}

// sizeToPixels converts px/rem/em/pt lengths to pixels for sorting.
// Symbolic values fail the conversion and are left out of the scale.
func sizeToPixels(v string) (float64, bool) {
	s := strings.TrimSpace(strings.ToLower(v))
	unit := ""
	for _, u := range []string{"rem", "em", "px", "pt", "%"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSuffix(s, u)
			break
		}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	switch unit {
	case "rem", "em":
		return n * 16, true
	case "px":
		return n, true
	case "pt":
		return n * 4 / 3, true
	case "%":
		return n * 16 / 100, true
	default:
		return 0, false
	}
}

// inferLineHeights maps the smallest, median and largest numeric samples
// to tight/normal/relaxed once the gate is met.
func inferLineHeights(tokens []RawToken) map[string]string {
	type measured struct {
		value string
		n     float64
	}
	var samples []measured
	for _, tok := range tokens {
		if n, err := strconv.ParseFloat(strings.TrimSpace(tok.Value), 64); err == nil && n > 0 {
			samples = append(samples, measured{value: tok.Value, n: n})
		}
	}

	heights := make(map[string]string, len(defaultLineHeights))
	for k, v := range defaultLineHeights {
		heights[k] = v
	}
	if len(samples) < lineHeightSampleGate {
		return heights
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].n < samples[j].n })
	heights["tight"] = samples[0].value
	heights["normal"] = samples[len(samples)/2].value
	heights["relaxed"] = samples[len(samples)-1].value
	return heights
}

// sortedWeights returns the merged weight values sorted ascending, numeric
// weights first, keyword weights after them alphabetically.
func sortedWeights(tokens []RawToken) []string {
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	sort.Slice(values, func(i, j int) bool {
		ni, errI := strconv.Atoi(values[i])
		nj, errJ := strconv.Atoi(values[j])
		switch {
		case errI == nil && errJ == nil:
			return ni < nj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return values[i] < values[j]
		}
	})
	return values
}

// synthesizeComponents sums per-type counts across sites and attaches the
// fixed structural contract. Types never observed are left out.
func synthesizeComponents(analyses []*SiteAnalysis) map[string]ComponentSpec {
	specs := make(map[string]ComponentSpec)
	for _, group := range componentSelectorGroups {
		total := 0
		examples := []ElementSample{}
		for _, a := range analyses {
			stat, ok := a.Components[group.Name]
			if !ok {
				continue
			}
			total += stat.Count
			for _, ex := range stat.Examples {
				if len(examples) < maxElementSamples {
					examples = append(examples, ex)
				}
			}
		}
		if total == 0 {
			continue
		}

		singular := strings.TrimSuffix(group.Name, "s")
		contract := componentContracts[group.Name]
		specs[group.Name] = ComponentSpec{
			Type:     group.Name,
			Name:     capitalize(singular),
			Selector: "." + singular,
			Count:    total,
			Examples: examples,
			Props:    contract.Props,
			Events:   contract.Events,
		}
	}
	return specs
}

// voteFramework tallies each site's top framework. Sites where every
// framework scored zero cast no vote. Ties resolve to the checklist order
// of the first framework reaching the winning tally.
func voteFramework(analyses []*SiteAnalysis) string {
	votes := make(map[string]int)
	for _, a := range analyses {
		if top := topFrameworkForSite(a); top != "" {
			votes[top]++
		}
	}

	winner := ""
	winning := 0
	for _, checklist := range frameworkChecklists {
		if votes[checklist.Name] > winning {
			winner = checklist.Name
			winning = votes[checklist.Name]
		}
	}
	return winner
}

func defaultGuideLayout() GuideLayout {
	breakpoints := make(map[string]string, len(defaultBreakpoints))
	for k, v := range defaultBreakpoints {
		breakpoints[k] = v
	}
	spacing := make(map[string]string, len(defaultSpacingScale))
	for k, v := range defaultSpacingScale {
		spacing[k] = v
	}
	return GuideLayout{
		ContainerWidth: "1200px",
		GridColumns:    12,
		Breakpoints:    breakpoints,
		SpacingScale:   spacing,
	}
}
