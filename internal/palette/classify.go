package palette

import (
	"math"

	"github.com/stylesense/colorseason/internal/colormath"
	"github.com/stylesense/colorseason/internal/tuning"
)

// Status describes the outcome of a classification.
type Status string

const (
	// StatusOK means the nearest entry is both close enough and clearly
	// separated from the runner-up.
	StatusOK Status = "ok"

	// StatusUnclassified means no palette entry is within the acceptance
	// distance. Callers must not fall back to the nearest match.
	StatusUnclassified Status = "unclassified"

	// StatusAmbiguous means two entries are too close to each other for the
	// choice to be well-determined. Callers must not silently pick one.
	StatusAmbiguous Status = "ambiguous"
)

// ClassificationResult is the outcome of matching one color against the
// palette. Season, Group and NearestColor are set only when Status is
// StatusOK; the distances are always populated as diagnostics.
type ClassificationResult struct {
	Status         Status  `json:"status"`
	Season         Season  `json:"season,omitempty"`
	Group          Group   `json:"group,omitempty"`
	NearestColor   string  `json:"nearest_color,omitempty"`
	MinDeltaE      float64 `json:"min_delta_e"`
	RunnerUpDeltaE float64 `json:"runner_up_delta_e"`
}

// Classify parses a hex color and matches it against the palette.
//
// For a fixed palette and input the result is always identical: the scan is
// a single deterministic pass and distance ties keep the earlier entry in
// palette declaration order.
func Classify(hex string) (*ClassificationResult, error) {
	rgb, err := colormath.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return ClassifyRGB(rgb), nil
}

// ClassifyRGB matches an already-parsed color against the palette.
func ClassifyRGB(rgb colormath.RGB) *ClassificationResult {
	lab := rgb.Lab()
	colors := Colors()

	// Single pass tracking best and runner-up. Strict < on both comparisons
	// means equal distances keep the earlier entry (declaration order).
	bestIdx := -1
	bestD := math.Inf(1)
	runnerUpD := math.Inf(1)
	for i := range colors {
		d := colormath.DeltaE76(lab, colors[i].Lab)
		switch {
		case d < bestD:
			runnerUpD = bestD
			bestD = d
			bestIdx = i
		case d < runnerUpD:
			runnerUpD = d
		}
	}

	res := &ClassificationResult{
		MinDeltaE:      bestD,
		RunnerUpDeltaE: runnerUpD,
	}

	if bestD > tuning.MaxAcceptDeltaE {
		res.Status = StatusUnclassified
		return res
	}
	if runnerUpD-bestD < tuning.AmbiguousDeltaEGap {
		res.Status = StatusAmbiguous
		return res
	}

	best := colors[bestIdx]
	res.Status = StatusOK
	res.Season = best.Season
	res.Group = best.Group
	res.NearestColor = best.Name
	return res
}
