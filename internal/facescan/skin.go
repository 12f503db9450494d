// Package facescan locates a face-like skin region in an image and derives a
// representative skin color from it. Detection is a deterministic heuristic
// over sampled pixels, not a learned model: it reliably finds a clearly
// present, near-center face and rejects everything else.
package facescan

import (
	"image"

	"github.com/stylesense/colorseason/internal/colormath"
	"github.com/stylesense/colorseason/internal/tuning"
)

// IsLikelySkin reports whether a single pixel plausibly belongs to skin.
//
// The test is a conjunction of numeric bounds (see internal/tuning):
// brightness inside the usable range, red meaningfully above blue (skin of
// every depth is warm-biased), red at least matching green, moderate HSV
// saturation (neither grey nor neon), and not in the extreme-red corner that
// lips and saturated fabrics occupy.
func IsLikelySkin(c colormath.RGB) bool {
	br := c.Brightness()
	if br < tuning.SkinMinBrightness || br > tuning.SkinMaxBrightness {
		return false
	}
	if int(c.R)-int(c.B) < tuning.SkinMinRedBlueGap {
		return false
	}
	if c.G > c.R {
		return false
	}
	s := c.Saturation()
	if s < tuning.SkinMinSaturation || s > tuning.SkinMaxSaturation {
		return false
	}
	if int(c.R) > tuning.LipRedMin && int(c.G) < tuning.LipGreenMax {
		return false
	}
	return true
}

// rgbAt samples a pixel and narrows it to 8-bit RGB, dropping alpha.
func rgbAt(img image.Image, x, y int) colormath.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return colormath.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
