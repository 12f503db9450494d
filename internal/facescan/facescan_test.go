package facescan

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesense/colorseason/internal/colormath"
)

// fillImage creates a solid-color in-memory test image.
func fillImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// paintRect overwrites a rectangular region with a solid color.
func paintRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

var (
	skinTone   = color.RGBA{210, 170, 140, 255}
	background = color.RGBA{40, 60, 190, 255}
)

func TestIsLikelySkin(t *testing.T) {
	tests := []struct {
		name string
		c    colormath.RGB
		want bool
	}{
		{"light skin", colormath.RGB{R: 210, G: 170, B: 140}, true},
		{"medium skin", colormath.RGB{R: 150, G: 110, B: 85}, true},
		{"deep skin", colormath.RGB{R: 95, G: 65, B: 50}, true},
		{"solid blue", colormath.RGB{R: 40, G: 60, B: 190}, false},
		{"mid grey", colormath.RGB{R: 128, G: 128, B: 128}, false},
		{"near black", colormath.RGB{R: 10, G: 10, B: 10}, false},
		{"blown out white", colormath.RGB{R: 255, G: 255, B: 255}, false},
		{"lip red", colormath.RGB{R: 220, G: 60, B: 70}, false},
		{"foliage green", colormath.RGB{R: 80, G: 180, B: 90}, false},
		{"neon orange", colormath.RGB{R: 255, G: 140, B: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLikelySkin(tt.c))
		})
	}
}

func TestDetect_SyntheticFace(t *testing.T) {
	img := fillImage(200, 200, background)
	faceRect := image.Rect(40, 20, 160, 150)
	paintRect(img, faceRect, skinTone)

	box, ok := Detect(img)
	require.True(t, ok, "clearly present skin region must be detected")

	assert.GreaterOrEqual(t, box.X, 0)
	assert.GreaterOrEqual(t, box.Y, 0)
	assert.LessOrEqual(t, box.X+box.Width, 200)
	assert.LessOrEqual(t, box.Y+box.Height, 200)

	// The padded box must still be centered on the painted region.
	got := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height)
	overlap := got.Intersect(faceRect)
	require.False(t, overlap.Empty())
	assert.Greater(t, overlap.Dx()*overlap.Dy(), faceRect.Dx()*faceRect.Dy()/2,
		"detected box should cover most of the skin region")
}

func TestDetect_RejectsNonSkin(t *testing.T) {
	t.Run("solid blue", func(t *testing.T) {
		_, ok := Detect(fillImage(200, 200, background))
		assert.False(t, ok)
	})

	t.Run("solid grey", func(t *testing.T) {
		_, ok := Detect(fillImage(200, 200, color.RGBA{128, 128, 128, 255}))
		assert.False(t, ok)
	})

	t.Run("noise", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		img := image.NewRGBA(image.Rect(0, 0, 200, 200))
		for y := 0; y < 200; y++ {
			for x := 0; x < 200; x++ {
				img.SetRGBA(x, y, color.RGBA{
					uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255,
				})
			}
		}
		_, ok := Detect(img)
		assert.False(t, ok, "random noise must not pass the skin-ratio gate")
	})

	t.Run("zero sized", func(t *testing.T) {
		_, ok := Detect(image.NewRGBA(image.Rect(0, 0, 0, 0)))
		assert.False(t, ok)
	})
}

func TestDetect_DownsamplesLargeImages(t *testing.T) {
	// 1000x1000 source exercises the downsample + coordinate rescale path.
	img := fillImage(1000, 1000, background)
	faceRect := image.Rect(200, 100, 800, 750)
	paintRect(img, faceRect, skinTone)

	box, ok := Detect(img)
	require.True(t, ok)
	got := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height)
	overlap := got.Intersect(faceRect)
	require.False(t, overlap.Empty())
	assert.Greater(t, overlap.Dx()*overlap.Dy(), faceRect.Dx()*faceRect.Dy()/2)
}

func TestEstimateSkinColor_UniformFace(t *testing.T) {
	img := fillImage(160, 160, skinTone)
	est, ok := EstimateSkinColor(img, FaceBox{X: 0, Y: 0, Width: 160, Height: 160})
	require.True(t, ok)

	assert.Equal(t, colormath.RGB{R: 210, G: 170, B: 140}, est.Color)
	assert.InDelta(t, 0.3333, est.AvgSaturation, 0.01)
	assert.Equal(t, 1.0, est.SkinRatio)
	assert.Equal(t, est.TotalSamples, est.SkinSamples)
}

func TestEstimateSkinColor_GateRejectsNonSkin(t *testing.T) {
	img := fillImage(160, 160, background)
	_, ok := EstimateSkinColor(img, FaceBox{X: 0, Y: 0, Width: 160, Height: 160})
	assert.False(t, ok, "non-skin crop must fail the validation gate")
}

func TestEstimateSkinColor_DegenerateBox(t *testing.T) {
	img := fillImage(160, 160, skinTone)
	_, ok := EstimateSkinColor(img, FaceBox{X: 159, Y: 159, Width: 10, Height: 10})
	assert.False(t, ok)
}

func TestTrimmedMean_SuppressesOutliers(t *testing.T) {
	samples := make([]colormath.RGB, 0, 100)
	for i := 0; i < 80; i++ {
		samples = append(samples, colormath.RGB{R: 200, G: 160, B: 130})
	}
	// Shadow and highlight outliers, 10 each: both land inside the 16%
	// tails and must not move the mean.
	for i := 0; i < 10; i++ {
		samples = append(samples, colormath.RGB{R: 30, G: 20, B: 10})
		samples = append(samples, colormath.RGB{R: 250, G: 250, B: 240})
	}

	c, sat := trimmedMean(samples)
	assert.Equal(t, colormath.RGB{R: 200, G: 160, B: 130}, c)
	assert.InDelta(t, 0.35, sat, 0.01)
}
