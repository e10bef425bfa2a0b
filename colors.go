package stylesmith

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Clustering thresholds. The distance threshold is a delta-E ratio on the
// 0-100 Lab scale; go-colorful reports Lab distances on a 0-1 scale, so
// the ratio is compared directly.
const (
	distanceThresholdRatio = 0.15
	vividSaturation        = 0.65
	neutralSaturation      = 0.15
	neutralLightnessHigh   = 0.7
	neutralLightnessLow    = 0.3

	maxPrimaryColors   = 3
	maxSecondaryColors = 3
	maxAccentColors    = 3
	maxNeutralColors   = 4
)

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([\d.]+%?)\s*[, ]\s*([\d.]+%?)\s*[, ]\s*([\d.]+%?)\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*([\d.]+)(?:deg)?\s*[, ]\s*([\d.]+)%\s*[, ]\s*([\d.]+)%\s*(?:[,/]\s*[\d.]+%?\s*)?\)$`)

	// colorLiteralPattern finds the first color-looking token inside a
	// shorthand value such as "background: #fff url(x.png) no-repeat".
	colorLiteralPattern = regexp.MustCompile(`#[0-9a-fA-F]{3,8}|rgba?\([^)]*\)|hsla?\([^)]*\)`)
)

// excludedColorValues are discarded before entering the frequency map.
// Checked case-insensitively.
var excludedColorValues = map[string]bool{
	"transparent":  true,
	"inherit":      true,
	"initial":      true,
	"currentcolor": true,
	"none":         true,
}

// cssNamedColors maps the commonly used CSS color keywords to hex.
var cssNamedColors = map[string]string{
	"black":      "#000000",
	"white":      "#ffffff",
	"red":        "#ff0000",
	"green":      "#008000",
	"blue":       "#0000ff",
	"yellow":     "#ffff00",
	"cyan":       "#00ffff",
	"aqua":       "#00ffff",
	"magenta":    "#ff00ff",
	"fuchsia":    "#ff00ff",
	"gray":       "#808080",
	"grey":       "#808080",
	"silver":     "#c0c0c0",
	"maroon":     "#800000",
	"olive":      "#808000",
	"lime":       "#00ff00",
	"teal":       "#008080",
	"navy":       "#000080",
	"purple":     "#800080",
	"orange":     "#ffa500",
	"pink":       "#ffc0cb",
	"brown":      "#a52a2a",
	"gold":       "#ffd700",
	"beige":      "#f5f5dc",
	"ivory":      "#fffff0",
	"coral":      "#ff7f50",
	"salmon":     "#fa8072",
	"khaki":      "#f0e68c",
	"indigo":     "#4b0082",
	"violet":     "#ee82ee",
	"crimson":    "#dc143c",
	"turquoise":  "#40e0d0",
	"lavender":   "#e6e6fa",
	"tomato":     "#ff6347",
	"orchid":     "#da70d6",
	"plum":       "#dda0dd",
	"tan":        "#d2b48c",
	"chocolate":  "#d2691e",
	"skyblue":    "#87ceeb",
	"steelblue":  "#4682b4",
	"slategray":  "#708090",
	"darkgray":   "#a9a9a9",
	"lightgray":  "#d3d3d3",
	"dimgray":    "#696969",
	"gainsboro":  "#dcdcdc",
	"whitesmoke": "#f5f5f5",
}

// isExcludedColorValue reports whether the value is one of the keywords
// discarded before counting.
func isExcludedColorValue(v string) bool {
	return excludedColorValues[strings.ToLower(strings.TrimSpace(v))]
}

// parseColor converts a CSS color literal into a colorful.Color.
// Supports #rgb/#rrggbb (alpha digits dropped), rgb()/rgba(), hsl()/hsla()
// and the named-color table. Symbolic references fail here by design.
func parseColor(value string) (colorful.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" || isExcludedColorValue(s) {
		return colorful.Color{}, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		r, okR := parseChannel(m[1], 255)
		g, okG := parseChannel(m[2], 255)
		b, okB := parseChannel(m[3], 255)
		if okR && okG && okB {
			return colorful.Color{R: r, G: g, B: b}, true
		}
		return colorful.Color{}, false
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, errH := strconv.ParseFloat(m[1], 64)
		sat, errS := strconv.ParseFloat(m[2], 64)
		l, errL := strconv.ParseFloat(m[3], 64)
		if errH == nil && errS == nil && errL == nil {
			return colorful.Hsl(h, sat/100, l/100), true
		}
		return colorful.Color{}, false
	}

	if hex, ok := cssNamedColors[s]; ok {
		return parseHex(hex)
	}

	return colorful.Color{}, false
}

// parseHex normalizes #rgb, #rgba, #rrggbb and #rrggbbaa to a 6-digit hex
// before handing it to go-colorful.
func parseHex(s string) (colorful.Color, bool) {
	digits := s[1:]
	switch len(digits) {
	case 4:
		digits = digits[:3]
		fallthrough
	case 3:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 8:
		digits = digits[:6]
	case 6:
	default:
		return colorful.Color{}, false
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// parseChannel parses "128" or "50%" into a 0..1 channel value.
func parseChannel(s string, max float64) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || v < 0 {
			return 0, false
		}
		return clamp01(v / 100), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return clamp01(v / max), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// extractColorLiteral pulls a single color literal out of a declaration
// value, handling shorthands that embed a color among other components.
// Returns "" when no color is present.
func extractColorLiteral(value string) string {
	v := strings.TrimSpace(value)
	if v == "" || isExcludedColorValue(v) {
		return ""
	}
	if _, ok := parseColor(v); ok {
		return v
	}
	if m := colorLiteralPattern.FindString(v); m != "" {
		return m
	}
	return ""
}

// normalizeColorKey canonicalizes a color value for frequency counting:
// parseable colors collapse to lowercase hex, everything else (symbolic
// references included) is lowercased and trimmed.
func normalizeColorKey(value string) string {
	if c, ok := parseColor(value); ok {
		return strings.ToLower(c.Hex())
	}
	return strings.ToLower(strings.TrimSpace(value))
}

// acceptedColor is one survivor of the greedy dedup pass.
type acceptedColor struct {
	token    RawToken
	color    colorful.Color
	parsable bool
}

// ClusterColors deduplicates and categorizes a color token sequence.
//
// The input is sorted by descending count (stable, first-seen tie-break)
// and walked greedily: a parseable candidate within the perceptual
// distance threshold of an already-accepted color is dropped and its
// count merged into that color. The pass is order-dependent by design;
// a near-duplicate arriving with lower frequency is suppressed in favor
// of the more frequent color. Unparseable values skip the distance check:
// they stay eligible for the position-based primary/secondary slots and
// for the full sequence, but never enter the chroma/luminance categories.
func ClusterColors(tokens []RawToken) ColorCategorySet {
	sorted := make([]RawToken, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	var accepted []acceptedColor
	for _, tok := range sorted {
		c, ok := parseColor(tok.Value)
		if !ok {
			accepted = append(accepted, acceptedColor{token: tok})
			continue
		}

		merged := false
		for i := range accepted {
			if !accepted[i].parsable {
				continue
			}
			if c.DistanceLab(accepted[i].color) < distanceThresholdRatio {
				accepted[i].token.Count += tok.Count
				merged = true
				break
			}
		}
		if !merged {
			accepted = append(accepted, acceptedColor{token: tok, color: c, parsable: true})
		}
	}

	return categorizeColors(accepted)
}

// categorizeColors slices the accepted sequence into the palette
// categories. Primary and secondary are positional; accent and neutral
// are chroma/luminance based and restricted to parseable colors.
func categorizeColors(accepted []acceptedColor) ColorCategorySet {
	set := ColorCategorySet{
		Primary:   []string{},
		Secondary: []string{},
		Accent:    []string{},
		Neutral:   []string{},
		All:       make([]RawToken, 0, len(accepted)),
	}

	placed := make(map[string]bool)
	for i, a := range accepted {
		set.All = append(set.All, a.token)
		switch {
		case i < maxPrimaryColors:
			set.Primary = append(set.Primary, a.token.Value)
			placed[a.token.Value] = true
		case i < maxPrimaryColors+maxSecondaryColors:
			set.Secondary = append(set.Secondary, a.token.Value)
			placed[a.token.Value] = true
		}
	}

	for _, a := range accepted {
		if len(set.Accent) >= maxAccentColors {
			break
		}
		if !a.parsable || placed[a.token.Value] {
			continue
		}
		_, sat, _ := a.color.Hsl()
		if sat >= vividSaturation {
			set.Accent = append(set.Accent, a.token.Value)
		}
	}

	for _, a := range accepted {
		if len(set.Neutral) >= maxNeutralColors {
			break
		}
		if !a.parsable {
			continue
		}
		_, sat, light := a.color.Hsl()
		if sat <= neutralSaturation && (light >= neutralLightnessHigh || light <= neutralLightnessLow) {
			set.Neutral = append(set.Neutral, a.token.Value)
		}
	}

	return set
}

// shadeLuminanceSteps are the ramp sampling points; the base color itself
// occupies the 500 slot.
var shadeLuminanceSteps = []struct {
	Key string
	L   float64
}{
	{"50", 0.95},
	{"100", 0.9},
	{"200", 0.8},
	{"300", 0.7},
	{"400", 0.6},
	{"500", -1}, // base
	{"600", 0.4},
	{"700", 0.3},
	{"800", 0.2},
	{"900", 0.1},
}

// generateShadeRamp samples luminance at fixed steps while holding hue and
// chroma, producing a 10-step ramp keyed 50..900. An unparseable base
// yields an empty ramp rather than failing the synthesis.
func generateShadeRamp(base string) ShadeRamp {
	c, ok := parseColor(base)
	if !ok {
		return ShadeRamp{}
	}

	h, chroma, _ := c.Hcl()
	ramp := make(ShadeRamp, len(shadeLuminanceSteps))
	for _, step := range shadeLuminanceSteps {
		if step.L < 0 {
			ramp[step.Key] = strings.ToLower(c.Hex())
			continue
		}
		shade := colorful.Hcl(h, chroma, step.L).Clamped()
		ramp[step.Key] = strings.ToLower(shade.Hex())
	}
	return ramp
}

// colorDistance exposes the 0-100 delta-E-style distance used by the
// dedup invariant.
func colorDistance(a, b string) (float64, error) {
	ca, okA := parseColor(a)
	cb, okB := parseColor(b)
	if !okA || !okB {
		return 0, fmt.Errorf("unparseable color pair %q, %q", a, b)
	}
	return ca.DistanceLab(cb) * 100, nil
}
