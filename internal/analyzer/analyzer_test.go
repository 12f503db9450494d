package analyzer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/colorseason/internal/facescan"
	"github.com/stylesense/colorseason/internal/palette"
	"github.com/stylesense/colorseason/internal/season"
)

func solidImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// syntheticFace paints a skin-colored region over a contrasting background,
// the shape the detector is built to find.
func syntheticFace() *image.RGBA {
	img := solidImage(160, 160, color.RGBA{40, 60, 190, 255})
	for y := 10; y < 120; y++ {
		for x := 30; x < 130; x++ {
			img.SetRGBA(x, y, color.RGBA{210, 170, 140, 255})
		}
	}
	return img
}

func TestClassifyColor(t *testing.T) {
	res, err := ClassifyColor("#FF7F50")
	require.NoError(t, err)
	assert.Equal(t, palette.StatusOK, res.Status)
	assert.Equal(t, palette.SeasonSpring, res.Season)
	assert.Equal(t, palette.GroupAccents, res.Group)
}

func TestClassifyColor_BlackNeverCrashes(t *testing.T) {
	res, err := ClassifyColor("#000000")
	require.NoError(t, err)
	assert.Contains(t, []palette.Status{palette.StatusUnclassified, palette.StatusOK}, res.Status)
}

func TestClassifyColor_InvalidHex(t *testing.T) {
	_, err := ClassifyColor("##nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeFace_SyntheticFace(t *testing.T) {
	analysis, err := AnalyzeFace(syntheticFace(), nil)
	require.NoError(t, err)

	require.NotEmpty(t, analysis.Season, "a gated-in analysis always has a season")
	assert.Contains(t, []season.Depth{season.DepthLight, season.DepthMedium}, analysis.Depth)
	assert.Equal(t, season.UndertoneWarm, analysis.Undertone)
	assert.GreaterOrEqual(t, analysis.SeasonConfidence, 0.0)
	assert.LessOrEqual(t, analysis.SeasonConfidence, 1.0)
}

func TestAnalyzeFace_CallerSuppliedBox(t *testing.T) {
	img := syntheticFace()
	box := &facescan.FaceBox{X: 30, Y: 10, Width: 100, Height: 110}

	analysis, err := AnalyzeFace(img, box)
	require.NoError(t, err)
	assert.Equal(t, season.UndertoneWarm, analysis.Undertone)
	assert.NotEmpty(t, analysis.Season)
}

func TestAnalyzeFace_NoFace(t *testing.T) {
	t.Run("solid blue", func(t *testing.T) {
		_, err := AnalyzeFace(solidImage(160, 160, color.RGBA{40, 60, 190, 255}), nil)
		assert.ErrorIs(t, err, ErrFaceNotDetected)
	})

	t.Run("trusted box over non-skin", func(t *testing.T) {
		img := solidImage(160, 160, color.RGBA{40, 60, 190, 255})
		box := &facescan.FaceBox{X: 0, Y: 0, Width: 160, Height: 160}
		_, err := AnalyzeFace(img, box)
		assert.ErrorIs(t, err, ErrFaceNotDetected,
			"skin-validation gate must reject a non-skin crop even with a trusted box")
	})
}

func TestAnalyzeFace_InvalidInput(t *testing.T) {
	t.Run("nil image", func(t *testing.T) {
		_, err := AnalyzeFace(nil, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero-sized image", func(t *testing.T) {
		_, err := AnalyzeFace(image.NewRGBA(image.Rect(0, 0, 0, 0)), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("degenerate box", func(t *testing.T) {
		_, err := AnalyzeFace(syntheticFace(), &facescan.FaceBox{X: 10, Y: 10, Width: 0, Height: 50})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative box origin", func(t *testing.T) {
		_, err := AnalyzeFace(syntheticFace(), &facescan.FaceBox{X: -1, Y: 0, Width: 50, Height: 50})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// Concurrent invocations share nothing but the immutable palette.
func TestAnalyzeFace_ConcurrentCalls(t *testing.T) {
	img := syntheticFace()
	type outcome struct {
		analysis *season.Analysis
		err      error
	}
	done := make(chan outcome, 8)
	for i := 0; i < 8; i++ {
		go func() {
			a, err := AnalyzeFace(img, nil)
			done <- outcome{a, err}
		}()
	}
	first := <-done
	require.NoError(t, first.err)
	for i := 1; i < 8; i++ {
		got := <-done
		require.NoError(t, got.err)
		assert.Equal(t, first.analysis, got.analysis, "analysis must be deterministic")
	}
}
