package stylesmith

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantHex string
		wantOK  bool
	}{
		{"six digit hex", "#ff0000", "#ff0000", true},
		{"short hex", "#f00", "#ff0000", true},
		{"hex with alpha", "#ff000080", "#ff0000", true},
		{"uppercase hex", "#FF0000", "#ff0000", true},
		{"rgb", "rgb(255, 0, 0)", "#ff0000", true},
		{"rgba", "rgba(255, 0, 0, 0.5)", "#ff0000", true},
		{"rgb percent", "rgb(100%, 0%, 0%)", "#ff0000", true},
		{"hsl", "hsl(0, 100%, 50%)", "#ff0000", true},
		{"named color", "white", "#ffffff", true},
		{"named color case", "Navy", "#000080", true},
		{"transparent excluded", "transparent", "", false},
		{"inherit excluded", "inherit", "", false},
		{"currentcolor excluded", "currentColor", "", false},
		{"symbolic reference", "var(--primary)", "", false},
		{"garbage", "notacolor", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := parseColor(tt.value)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantHex, normalizeColorKey(c.Hex()))
			}
		})
	}
}

func TestExtractColorLiteral(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain hex", "#336699", "#336699"},
		{"background shorthand", "#fff url(bg.png) no-repeat", "#fff"},
		{"shorthand with rgb", "1px solid rgb(10, 20, 30)", "rgb(10, 20, 30)"},
		{"named color", "tomato", "tomato"},
		{"no color", "url(bg.png) no-repeat", ""},
		{"excluded keyword", "transparent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractColorLiteral(tt.value))
		})
	}
}

func TestClusterColorsMergesNearDuplicates(t *testing.T) {
	// #ff0101 is perceptually indistinguishable from #ff0000; its count
	// merges into the more frequent color.
	set := ClusterColors([]RawToken{
		{Value: "#ff0000", Count: 3},
		{Value: "#ff0101", Count: 1},
	})

	require.Len(t, set.All, 1)
	require.Equal(t, "#ff0000", set.All[0].Value)
	require.Equal(t, 4, set.All[0].Count)
}

func TestClusterColorsKeepsDistinctColors(t *testing.T) {
	set := ClusterColors([]RawToken{
		{Value: "#ff0000", Count: 5},
		{Value: "#0000ff", Count: 3},
		{Value: "#ffffff", Count: 2},
	})

	require.Len(t, set.All, 3)

	// Every surviving pair is at least the threshold apart.
	for i := 0; i < len(set.All); i++ {
		for j := i + 1; j < len(set.All); j++ {
			d, err := colorDistance(set.All[i].Value, set.All[j].Value)
			require.NoError(t, err)
			require.GreaterOrEqual(t, d, 15.0,
				"%s and %s too close to coexist", set.All[i].Value, set.All[j].Value)
		}
	}
}

func TestClusterColorsFrequencyOrder(t *testing.T) {
	set := ClusterColors([]RawToken{
		{Value: "#0000ff", Count: 1},
		{Value: "#ff0000", Count: 9},
		{Value: "#00ff00", Count: 4},
	})

	require.Equal(t, "#ff0000", set.All[0].Value)
	require.Equal(t, "#00ff00", set.All[1].Value)
	require.Equal(t, "#0000ff", set.All[2].Value)
}

func TestClusterColorsSymbolicValues(t *testing.T) {
	// Symbolic references skip the distance check but keep their rank.
	set := ClusterColors([]RawToken{
		{Value: "var(--primary)", Count: 10},
		{Value: "#222222", Count: 2},
	})

	require.Len(t, set.All, 2)
	require.Equal(t, "var(--primary)", set.All[0].Value)
	require.Contains(t, set.Primary, "var(--primary)")
}

func TestCategorizeDisjointPositional(t *testing.T) {
	set := ClusterColors([]RawToken{
		{Value: "#ff0000", Count: 9},
		{Value: "#0000ff", Count: 8},
		{Value: "#00ff00", Count: 7},
		{Value: "#ffff00", Count: 6},
		{Value: "#00ffff", Count: 5},
		{Value: "#ff00ff", Count: 4},
		{Value: "#800000", Count: 3},
	})

	require.Len(t, set.Primary, 3)
	require.Len(t, set.Secondary, 3)

	seen := map[string]bool{}
	for _, v := range append(append([]string{}, set.Primary...), set.Secondary...) {
		require.False(t, seen[v], "color %s placed twice", v)
		seen[v] = true
	}
	// Accent never duplicates a positional placement.
	for _, v := range set.Accent {
		require.False(t, seen[v], "accent %s already placed", v)
	}
}

func TestCategorizeNeutrals(t *testing.T) {
	set := ClusterColors([]RawToken{
		{Value: "#ff0000", Count: 9},
		{Value: "#fafafa", Count: 8},
		{Value: "#111111", Count: 7},
	})

	require.Contains(t, set.Neutral, "#fafafa")
	require.Contains(t, set.Neutral, "#111111")
	require.NotContains(t, set.Neutral, "#ff0000")
}

func TestGenerateShadeRamp(t *testing.T) {
	ramp := generateShadeRamp("#3366cc")

	require.Len(t, ramp, 10)
	require.Equal(t, "#3366cc", ramp["500"])
	for _, step := range []string{"50", "100", "200", "300", "400", "600", "700", "800", "900"} {
		require.Regexp(t, `^#[0-9a-f]{6}$`, ramp[step])
	}
}

func TestGenerateShadeRampUnparseable(t *testing.T) {
	require.Empty(t, generateShadeRamp("var(--primary)"))
}

func TestColorDistance(t *testing.T) {
	d, err := colorDistance("#000000", "#ffffff")
	require.NoError(t, err)
	require.Greater(t, d, 90.0)

	same, err := colorDistance("#ff0000", "#ff0000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, same, 0.001)

	_, err = colorDistance("var(--x)", "#fff")
	require.Error(t, err)
}
