package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/colorseason/internal/colormath"
	"github.com/stylesense/colorseason/internal/tuning"
)

func TestColors_TableShape(t *testing.T) {
	colors := Colors()
	require.Len(t, colors, 80, "4 seasons x 4 groups x 5 colors")

	perCell := make(map[Season]map[Group]int)
	names := make(map[string]bool)
	for _, c := range colors {
		if perCell[c.Season] == nil {
			perCell[c.Season] = make(map[Group]int)
		}
		perCell[c.Season][c.Group]++
		assert.False(t, names[c.Name], "duplicate name %q", c.Name)
		names[c.Name] = true
	}
	for _, s := range Seasons() {
		for _, g := range Groups() {
			assert.Equal(t, 5, perCell[s][g], "%s/%s", s, g)
		}
	}
}

// Every entry must be separated from its nearest neighbor by more than the
// ambiguity gap, otherwise classifying an entry's own hex could come back
// ambiguous instead of ok.
func TestColors_PairwiseSeparation(t *testing.T) {
	colors := Colors()
	for i := range colors {
		for j := i + 1; j < len(colors); j++ {
			d := colormath.DeltaE76(colors[i].Lab, colors[j].Lab)
			assert.Greater(t, d, tuning.AmbiguousDeltaEGap,
				"%s (%s) vs %s (%s): ΔE %.2f",
				colors[i].Name, colors[i].Hex, colors[j].Name, colors[j].Hex, d)
		}
	}
}

func TestClassify_ExactPaletteMatch(t *testing.T) {
	for _, c := range Colors() {
		res, err := Classify(c.Hex)
		require.NoError(t, err, c.Name)
		assert.Equal(t, StatusOK, res.Status, "%s %s", c.Name, c.Hex)
		assert.Equal(t, c.Name, res.NearestColor)
		assert.Equal(t, c.Season, res.Season)
		assert.Equal(t, c.Group, res.Group)
		assert.InDelta(t, 0.0, res.MinDeltaE, 0.001)
	}
}

func TestClassify_Coral(t *testing.T) {
	res, err := Classify("#FF7F50")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, SeasonSpring, res.Season)
	assert.Equal(t, GroupAccents, res.Group)
	assert.Equal(t, "Coral", res.NearestColor)
}

func TestClassify_Unclassified(t *testing.T) {
	// Pure black and saturated neon green are far from every reference
	// color; the classifier must refuse to label them.
	for _, hex := range []string{"#000000", "#39FF14"} {
		res, err := Classify(hex)
		require.NoError(t, err, hex)
		assert.Equal(t, StatusUnclassified, res.Status, hex)
		assert.Empty(t, res.Season, hex)
		assert.Empty(t, res.Group, hex)
		assert.Empty(t, res.NearestColor, hex)
		assert.Greater(t, res.MinDeltaE, tuning.MaxAcceptDeltaE, hex)
	}
}

func TestClassify_Ambiguous(t *testing.T) {
	// #3C464D sits midway between Charcoal (#36454F) and Steel (#43464B),
	// close to both, so neither is a defensible single answer.
	res, err := Classify("#3C464D")
	require.NoError(t, err)
	assert.Equal(t, StatusAmbiguous, res.Status)
	assert.Empty(t, res.Season)
	assert.Empty(t, res.Group)
	assert.LessOrEqual(t, res.MinDeltaE, tuning.MaxAcceptDeltaE)
	assert.Less(t, res.RunnerUpDeltaE-res.MinDeltaE, tuning.AmbiguousDeltaEGap)
}

func TestClassify_InvalidHex(t *testing.T) {
	_, err := Classify("not-a-color")
	assert.Error(t, err)
}

func TestClassify_Deterministic(t *testing.T) {
	first, err := Classify("#C19A6B")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Classify("#C19A6B")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestList(t *testing.T) {
	all := List("", "")
	assert.Len(t, all, 80)

	spring := List(SeasonSpring, "")
	assert.Len(t, spring, 20)
	for _, c := range spring {
		assert.Equal(t, SeasonSpring, c.Season)
	}

	winterSofts := List(SeasonWinter, GroupSofts)
	assert.Len(t, winterSofts, 5)
	for _, c := range winterSofts {
		assert.Equal(t, SeasonWinter, c.Season)
		assert.Equal(t, GroupSofts, c.Group)
	}

	assert.Empty(t, List("mars", ""))
}
