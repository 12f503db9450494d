package facescan

import (
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/stat"

	"github.com/stylesense/colorseason/internal/colormath"
	"github.com/stylesense/colorseason/internal/tuning"
)

// SkinEstimate is the aggregate skin reading for an accepted face region.
type SkinEstimate struct {
	// Color is the trimmed-mean representative skin color.
	Color colormath.RGB `json:"color"`

	// AvgSaturation is the mean HSV saturation of the samples that survived
	// trimming. It feeds the clarity signal.
	AvgSaturation float64 `json:"avg_saturation"`

	// SkinSamples and TotalSamples describe how much of the sampling grid
	// looked like skin; SkinRatio = SkinSamples / TotalSamples.
	SkinSamples  int     `json:"skin_samples"`
	TotalSamples int     `json:"total_samples"`
	SkinRatio    float64 `json:"skin_ratio"`
}

// Sub-zones known to be reliably skin on a canonical face crop, as fractions
// of the canvas: two cheek patches and a forehead strip. Eyes, brows, lips
// and hairline are deliberately outside all three.
var sampleZones = []searchZone{
	{0.18, 0.45, 0.40, 0.70}, // left cheek
	{0.60, 0.45, 0.82, 0.70}, // right cheek
	{0.30, 0.12, 0.70, 0.28}, // forehead
}

// EstimateSkinColor crops the face box, resizes it to the canonical canvas,
// samples the cheek/forehead sub-zones and computes the trimmed-mean skin
// color. ok is false when the validation gate fails (too few skin-likely
// samples, or too low a skin ratio): the whole analysis must then be treated
// as "face not detected" rather than averaging non-skin pixels.
func EstimateSkinColor(img image.Image, box FaceBox) (*SkinEstimate, bool) {
	bounds := img.Bounds()
	x0 := clamp(bounds.Min.X+box.X, bounds.Min.X, bounds.Max.X-1)
	y0 := clamp(bounds.Min.Y+box.Y, bounds.Min.Y, bounds.Max.Y-1)
	x1 := clamp(x0+box.Width, x0+1, bounds.Max.X)
	y1 := clamp(y0+box.Height, y0+1, bounds.Max.Y)
	if x1-x0 < 2 || y1-y0 < 2 {
		return nil, false
	}

	size := tuning.EstimatorCanvasSize
	face := imaging.Resize(imaging.Crop(img, image.Rect(x0, y0, x1, y1)), size, size, imaging.Lanczos)

	var skins []colormath.RGB
	total := 0
	grid := tuning.SubZoneGridSize
	for _, z := range sampleZones {
		zx0 := int(z.x0 * float64(size))
		zy0 := int(z.y0 * float64(size))
		zx1 := int(z.x1 * float64(size))
		zy1 := int(z.y1 * float64(size))
		for gy := 0; gy < grid; gy++ {
			y := zy0 + (zy1-zy0-1)*gy/(grid-1)
			for gx := 0; gx < grid; gx++ {
				x := zx0 + (zx1-zx0-1)*gx/(grid-1)
				total++
				c := rgbAt(face, x, y)
				if IsLikelySkin(c) {
					skins = append(skins, c)
				}
			}
		}
	}

	ratio := float64(len(skins)) / float64(total)
	if len(skins) < tuning.MinSkinSamples || ratio < tuning.MinSkinRatio {
		return nil, false
	}

	color, avgSat := trimmedMean(skins)
	return &SkinEstimate{
		Color:         color,
		AvgSaturation: avgSat,
		SkinSamples:   len(skins),
		TotalSamples:  total,
		SkinRatio:     ratio,
	}, true
}

// trimmedMean sorts samples by total brightness, discards a fixed fraction
// from each tail and averages the remainder per channel. Shadows, specular
// highlights and the odd stray non-skin sample land in the tails, so this
// holds up better than a plain mean or a median alone.
func trimmedMean(samples []colormath.RGB) (colormath.RGB, float64) {
	sorted := make([]colormath.RGB, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Brightness() < sorted[j].Brightness()
	})

	trim := int(float64(len(sorted)) * tuning.TrimFraction)
	kept := sorted[trim : len(sorted)-trim]

	rs := make([]float64, len(kept))
	gs := make([]float64, len(kept))
	bs := make([]float64, len(kept))
	sats := make([]float64, len(kept))
	for i, c := range kept {
		rs[i] = float64(c.R)
		gs[i] = float64(c.G)
		bs[i] = float64(c.B)
		sats[i] = c.Saturation()
	}

	color := colormath.RGB{
		R: uint8(stat.Mean(rs, nil) + 0.5),
		G: uint8(stat.Mean(gs, nil) + 0.5),
		B: uint8(stat.Mean(bs, nil) + 0.5),
	}
	return color, stat.Mean(sats, nil)
}
