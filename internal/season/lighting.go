package season

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/stylesense/colorseason/internal/tuning"
)

// LightingEstimate describes the ambient color cast of the whole frame.
// Warm ambient light can make a cool-undertone face read falsely warm, so
// the engine discounts confidence by Severity instead of silently
// mis-classifying.
type LightingEstimate struct {
	// WarmCast is true when the frame-wide warm index exceeds the onset
	// threshold.
	WarmCast bool `json:"warm_cast"`

	// Severity is 0 below the onset and ramps linearly to 1 at the
	// saturation point.
	Severity float64 `json:"severity"`

	// WarmIndex is the raw signal: mean(R,G) minus mean B, normalized to
	// [-1,1].
	WarmIndex float64 `json:"warm_index"`
}

// EstimateLighting downsamples the whole image to a small grid and derives
// the warm index from its channel averages.
func EstimateLighting(img image.Image) LightingEstimate {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return LightingEstimate{}
	}

	size := tuning.LightingGridSize
	small := transform.Resize(img, size, size, transform.Linear)

	var sumR, sumG, sumB float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}
	n := float64(size * size)
	avgR, avgG, avgB := sumR/n, sumG/n, sumB/n

	warmIndex := ((avgR+avgG)/2 - avgB) / 255.0
	if warmIndex <= tuning.WarmCastOnset {
		return LightingEstimate{WarmIndex: warmIndex}
	}

	severity := (warmIndex - tuning.WarmCastOnset) /
		(tuning.WarmCastSaturationPoint - tuning.WarmCastOnset)
	if severity > 1 {
		severity = 1
	}
	return LightingEstimate{WarmCast: true, Severity: severity, WarmIndex: warmIndex}
}
