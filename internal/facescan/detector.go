package facescan

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/stylesense/colorseason/internal/tuning"
)

// FaceBox is a face bounding box in source-image pixel coordinates.
type FaceBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// searchZone is a rectangle in fractions of the (downsampled) frame.
type searchZone struct {
	x0, y0, x1, y1 float64
}

// Faces sit near the center of the upper portion of a portrait, so the three
// zones overlap there: one centered, one shifted left, one shifted right,
// all covering the upper 65% of the frame.
var searchZones = []searchZone{
	{0.25, 0.05, 0.75, 0.65},
	{0.10, 0.05, 0.60, 0.65},
	{0.40, 0.05, 0.90, 0.65},
}

// Detect scans the image for a face-like skin region and returns its
// bounding box in source coordinates. The second return is false when no
// zone passes validation; callers must treat that as "no face", never as a
// best guess.
//
// The image is downsampled so its longer side is at most
// tuning.DetectMaxSide, each zone is sampled on a fixed grid and judged by
// skin ratio, absolute skin count and candidate aspect ratio, and the best
// accepted zone (by ratio x count) wins. The winning box is padded, mapped
// back to source coordinates and clamped.
func Detect(img image.Image) (FaceBox, bool) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return FaceBox{}, false
	}

	small := img
	if srcW > tuning.DetectMaxSide || srcH > tuning.DetectMaxSide {
		small = imaging.Fit(img, tuning.DetectMaxSide, tuning.DetectMaxSide, imaging.Lanczos)
	}
	smallBounds := small.Bounds()
	smW, smH := smallBounds.Dx(), smallBounds.Dy()
	scaleX := float64(srcW) / float64(smW)
	scaleY := float64(srcH) / float64(smH)

	var (
		found     bool
		bestScore float64
		bestBox   image.Rectangle
	)
	for _, z := range searchZones {
		box, ratio, count, ok := scanZone(small, z)
		if !ok {
			continue
		}
		// Strict > keeps the earlier zone when scores tie.
		if score := ratio * float64(count); score > bestScore {
			found = true
			bestScore = score
			bestBox = box
		}
	}
	if !found {
		return FaceBox{}, false
	}

	// Pad so the crop is not over-tight, then rescale and clamp.
	padX := int(float64(bestBox.Dx()) * tuning.FaceBoxPadding / 2)
	padY := int(float64(bestBox.Dy()) * tuning.FaceBoxPadding / 2)
	x0 := int(float64(bestBox.Min.X-padX) * scaleX)
	y0 := int(float64(bestBox.Min.Y-padY) * scaleY)
	x1 := int(float64(bestBox.Max.X+padX) * scaleX)
	y1 := int(float64(bestBox.Max.Y+padY) * scaleY)
	x0 = clamp(x0, 0, srcW-1)
	y0 = clamp(y0, 0, srcH-1)
	x1 = clamp(x1, x0+1, srcW)
	y1 = clamp(y1, y0+1, srcH)

	return FaceBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// scanZone samples a fixed grid across one zone, classifies each sample with
// the skin test, and returns the bounding box of the skin-likely samples
// along with the skin ratio and count. ok is false when the zone fails any
// validation gate.
func scanZone(img image.Image, z searchZone) (image.Rectangle, float64, int, bool) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	zx0 := bounds.Min.X + int(z.x0*float64(w))
	zy0 := bounds.Min.Y + int(z.y0*float64(h))
	zx1 := bounds.Min.X + int(z.x1*float64(w))
	zy1 := bounds.Min.Y + int(z.y1*float64(h))
	if zx1-zx0 < 2 || zy1-zy0 < 2 {
		return image.Rectangle{}, 0, 0, false
	}

	grid := tuning.DetectGridSize
	total := grid * grid
	count := 0
	minX, minY := zx1, zy1
	maxX, maxY := zx0, zy0
	for gy := 0; gy < grid; gy++ {
		y := zy0 + (zy1-zy0-1)*gy/(grid-1)
		for gx := 0; gx < grid; gx++ {
			x := zx0 + (zx1-zx0-1)*gx/(grid-1)
			if !IsLikelySkin(rgbAt(img, x, y)) {
				continue
			}
			count++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	ratio := float64(count) / float64(total)
	if ratio < tuning.ZoneMinSkinRatio || count < tuning.ZoneMinSkinCount {
		return image.Rectangle{}, 0, 0, false
	}
	bw, bh := maxX-minX, maxY-minY
	if bw <= 0 || bh <= 0 {
		return image.Rectangle{}, 0, 0, false
	}
	aspect := float64(bw) / float64(bh)
	if aspect < tuning.FaceAspectMin || aspect > tuning.FaceAspectMax {
		return image.Rectangle{}, 0, 0, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), ratio, count, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
