// Package season turns a representative skin color into personal color
// attributes (undertone, depth, clarity) and a season label with explicit
// confidence semantics.
//
// The engine always returns a season. Ambiguity is carried by
// SeasonConfidence and NeedsConfirmation, never by omitting the field:
// downstream, a missing season is worse than a low-confidence one.
package season

import (
	"math"

	"github.com/stylesense/colorseason/internal/colormath"
	"github.com/stylesense/colorseason/internal/palette"
	"github.com/stylesense/colorseason/internal/tuning"
)

// Undertone is the warm/cool/neutral bias of skin color, independent of
// lightness.
type Undertone string

const (
	UndertoneWarm    Undertone = "warm"
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
)

// Depth is the lightness bucket of the skin tone, from L*.
type Depth string

const (
	DepthLight  Depth = "light"
	DepthMedium Depth = "medium"
	DepthDeep   Depth = "deep"
)

// Clarity is how muted vs. vivid the coloring appears, from saturation.
type Clarity string

const (
	ClarityMuted Clarity = "muted"
	ClarityClear Clarity = "clear"
	ClarityVivid Clarity = "vivid"
)

// Analysis is the full outcome of a face analysis.
type Analysis struct {
	Undertone         Undertone      `json:"undertone"`
	Depth             Depth          `json:"depth"`
	Clarity           Clarity        `json:"clarity"`
	Season            palette.Season `json:"season"`
	SeasonConfidence  float64        `json:"season_confidence"`
	NeedsConfirmation bool           `json:"needs_confirmation"`
	Diagnostics       Diagnostics    `json:"diagnostics"`
}

// Diagnostics exposes the intermediate signals behind the decision so the
// serving layer can explain or log it.
type Diagnostics struct {
	SkinColor           string                     `json:"skin_color"`
	Lab                 colormath.Lab              `json:"lab"`
	AvgSaturation       float64                    `json:"avg_saturation"`
	Lighting            LightingEstimate           `json:"lighting"`
	UndertoneConfidence float64                    `json:"undertone_confidence"`
	DepthConfidence     float64                    `json:"depth_confidence"`
	ClarityConfidence   float64                    `json:"clarity_confidence"`
	SeasonScores        map[palette.Season]float64 `json:"season_scores"`
}

// Evaluate runs the decision engine over a representative skin color, the
// average saturation of the samples behind it, and the whole-image lighting
// estimate. It is a pure function of its inputs.
func Evaluate(skin colormath.RGB, avgSaturation float64, lighting LightingEstimate) *Analysis {
	lab := skin.Lab()

	undertone, utConf := classifyUndertone(lab)
	depth, dConf := classifyDepth(lab.L)
	clarity, cConf := classifyClarity(avgSaturation)
	best, scores := scoreSeasons(lab, avgSaturation)

	base := (utConf + dConf + cConf) / 3
	confidence := base * (1 - tuning.LightingPenaltyWeight*lighting.Severity)

	needsConfirmation := undertone == UndertoneNeutral ||
		confidence < tuning.NeedsConfirmationFloor ||
		lighting.Severity >= tuning.HighLightingSeverity

	return &Analysis{
		Undertone:         undertone,
		Depth:             depth,
		Clarity:           clarity,
		Season:            best,
		SeasonConfidence:  confidence,
		NeedsConfirmation: needsConfirmation,
		Diagnostics: Diagnostics{
			SkinColor:           skin.Hex(),
			Lab:                 lab,
			AvgSaturation:       avgSaturation,
			Lighting:            lighting,
			UndertoneConfidence: utConf,
			DepthConfidence:     dConf,
			ClarityConfidence:   cConf,
			SeasonScores:        scores,
		},
	}
}

// classifyUndertone compares a warm score (yellow b*, absence of green a*)
// against a cool score (red/pink a*, absence of yellow b*). The comparison
// uses a small neutral band rather than a hard zero-crossing, and the
// confidence scales with the margin.
func classifyUndertone(lab colormath.Lab) (Undertone, float64) {
	warm := math.Max(0, lab.B) + 0.5*math.Max(0, -lab.A)
	cool := 0.8*math.Max(0, lab.A) + math.Max(0, -lab.B)
	diff := warm - cool

	switch {
	case diff > tuning.UndertoneNeutralBand:
		return UndertoneWarm, attributeConfidence(diff / 40)
	case diff < -tuning.UndertoneNeutralBand:
		return UndertoneCool, attributeConfidence(-diff / 40)
	default:
		// Near-zero margin: neutral, with confidence shrinking as the
		// scores approach the band edges.
		conf := tuning.NeutralConfidence - 0.1*math.Abs(diff)/tuning.UndertoneNeutralBand
		return UndertoneNeutral, conf
	}
}

// classifyDepth buckets L*: light above DepthLightMinL, deep at or below
// DepthDeepMaxL, medium between. Confidence grows with the distance from
// the nearer bucket boundary.
func classifyDepth(l float64) (Depth, float64) {
	switch {
	case l > tuning.DepthLightMinL:
		return DepthLight, attributeConfidence((l - tuning.DepthLightMinL) / 10)
	case l <= tuning.DepthDeepMaxL:
		return DepthDeep, attributeConfidence((tuning.DepthDeepMaxL - l) / 10)
	default:
		d := math.Min(l-tuning.DepthDeepMaxL, tuning.DepthLightMinL-l)
		return DepthMedium, attributeConfidence(d / 10)
	}
}

// classifyClarity buckets average skin saturation. The thresholds are close
// together because skin saturation is inherently low.
func classifyClarity(sat float64) (Clarity, float64) {
	switch {
	case sat < tuning.ClarityMutedMaxSat:
		return ClarityMuted, attributeConfidence((tuning.ClarityMutedMaxSat - sat) / 0.08)
	case sat >= tuning.ClarityVividMinSat:
		return ClarityVivid, attributeConfidence((sat - tuning.ClarityVividMinSat) / 0.08)
	default:
		d := math.Min(sat-tuning.ClarityMutedMaxSat, tuning.ClarityVividMinSat-sat)
		return ClarityClear, attributeConfidence(d / 0.08)
	}
}

// attributeConfidence maps a normalized boundary distance in [0,1+] onto
// [BaseAttributeConfidence, ConfidenceCap].
func attributeConfidence(normDistance float64) float64 {
	if normDistance > 1 {
		normDistance = 1
	}
	conf := tuning.BaseAttributeConfidence +
		(tuning.ConfidenceCap-tuning.BaseAttributeConfidence+0.05)*normDistance
	if conf > tuning.ConfidenceCap {
		conf = tuning.ConfidenceCap
	}
	return conf
}

// scoreSeasons accumulates independently weighted rules per season over L*,
// a*, b* and saturation, with explicit penalties for out-of-range values.
// The highest total wins; ties break by the declaration order of
// palette.Seasons (spring, summer, autumn, winter).
func scoreSeasons(lab colormath.Lab, sat float64) (palette.Season, map[palette.Season]float64) {
	var spring, summer, autumn, winter float64

	// Spring: light, warm, clear.
	spring += reward(lab.L > 60, 2)
	spring += reward(lab.B > 15, 2)
	spring += reward(sat > 0.30, 1)
	spring -= reward(lab.L < 45, 2)
	spring -= reward(lab.A > 18, 1)

	// Summer: light, cool, muted.
	summer += reward(lab.L > 55, 2)
	summer += reward(lab.B < 14, 2)
	summer += reward(sat < 0.30, 1)
	summer -= reward(lab.B > 20, 2)
	summer -= reward(lab.A > 20, 1)

	// Autumn: medium-to-deep, warm, muted.
	autumn += reward(lab.L >= 35 && lab.L <= 60, 2)
	autumn += reward(lab.B > 18, 2)
	autumn += reward(lab.A >= 8 && lab.A <= 20, 1)
	autumn += reward(sat < 0.35, 1)
	autumn -= reward(lab.L > 70, 2)

	// Winter: deep, cool, vivid.
	winter += reward(lab.L <= 50, 2)
	winter += reward(lab.A > 10, 2)
	winter += reward(sat > 0.32, 1)
	winter += reward(lab.B < 8, 1)
	winter -= reward(lab.B > 18, 2)

	scores := map[palette.Season]float64{
		palette.SeasonSpring: spring,
		palette.SeasonSummer: summer,
		palette.SeasonAutumn: autumn,
		palette.SeasonWinter: winter,
	}

	best := palette.SeasonSpring
	bestScore := math.Inf(-1)
	for _, s := range palette.Seasons() {
		// Strict > keeps the earlier season on equal scores.
		if scores[s] > bestScore {
			best = s
			bestScore = scores[s]
		}
	}
	return best, scores
}

func reward(cond bool, points float64) float64 {
	if cond {
		return points
	}
	return 0
}
