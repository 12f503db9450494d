// Package tuning collects every threshold the analysis pipeline depends on.
//
// The classification and detection heuristics are conjunctions of simple
// numeric bounds. Keeping the bounds here, named and in one place, means the
// algorithm files contain only structure and the numbers can be adjusted (or
// unit-tested) without touching any logic.
package tuning

// Palette classification gates.
const (
	// MaxAcceptDeltaE is the largest nearest-entry CIE76 distance that still
	// counts as a match. Above this the color is reported as unclassified:
	// a ΔE beyond ~12 is outside "clearly similar" and forcing a label would
	// be a false positive.
	MaxAcceptDeltaE = 12.0

	// AmbiguousDeltaEGap is the minimum lead the nearest entry must have over
	// the runner-up. Candidates closer than this are not well-separated by
	// CIE76 and the result is reported as ambiguous.
	AmbiguousDeltaEGap = 2.0
)

// Per-pixel skin heuristic bounds. A pixel is skin-likely only when all of
// them hold.
const (
	// SkinMinBrightness / SkinMaxBrightness bound the channel mean (0-255).
	// Near-black and blown-out pixels carry no usable tone information.
	SkinMinBrightness = 40.0
	SkinMaxBrightness = 250.0

	// SkinMinRedBlueGap requires R to exceed B by this much. Skin of every
	// depth is warm-biased in RGB; blue-dominant pixels are background.
	SkinMinRedBlueGap = 10

	// SkinMinSaturation / SkinMaxSaturation bound HSV saturation. Below the
	// floor the pixel is grey; above the ceiling it is neon, not skin.
	SkinMinSaturation = 0.08
	SkinMaxSaturation = 0.65

	// LipRedMin / LipGreenMax describe the extreme-red corner (lips, deeply
	// saturated reds) that the skin test must reject.
	LipRedMin   = 200
	LipGreenMax = 90
)

// Face region detection.
const (
	// DetectMaxSide caps the longer image side before scanning; detection
	// quality is grid-resolution bound, not pixel bound.
	DetectMaxSide = 500

	// DetectGridSize is the per-zone sampling grid (DetectGridSize² points).
	DetectGridSize = 30

	// ZoneMinSkinRatio and ZoneMinSkinCount gate a search zone: it needs both
	// a high enough fraction and an absolute floor of skin-likely samples.
	ZoneMinSkinRatio = 0.35
	ZoneMinSkinCount = 50

	// FaceAspectMin / FaceAspectMax bound width/height of a candidate box.
	// Faces are roughly oval; strips and bands are not faces.
	FaceAspectMin = 0.5
	FaceAspectMax = 1.5

	// FaceBoxPadding grows the winning box by this fraction of each dimension
	// (split between the two sides) so the crop is not over-tight.
	FaceBoxPadding = 0.20
)

// Skin color estimation.
const (
	// EstimatorCanvasSize is the canonical square the face crop is resized to
	// before sub-zone sampling, normalizing sampling density.
	EstimatorCanvasSize = 160

	// SubZoneGridSize is the per-sub-zone sampling grid (SubZoneGridSize²).
	SubZoneGridSize = 14

	// MinSkinSamples / MinSkinRatio gate the whole analysis: with fewer
	// skin-likely samples than this the crop is not a face and averaging
	// would silently blend in background.
	MinSkinSamples = 60
	MinSkinRatio   = 0.45

	// TrimFraction is discarded from each brightness-sorted tail before the
	// representative mean, suppressing shadows and specular highlights.
	TrimFraction = 0.16
)

// Lighting bias estimation.
const (
	// LightingGridSize is the side of the whole-image average grid.
	LightingGridSize = 64

	// WarmCastOnset is the warm index at which a warm lighting cast is
	// flagged; WarmCastSaturationPoint is where severity reaches 1.0.
	WarmCastOnset           = 0.08
	WarmCastSaturationPoint = 0.18

	// HighLightingSeverity marks the severity at which a result always needs
	// user confirmation regardless of its confidence.
	HighLightingSeverity = 0.5
)

// Season decision engine.
const (
	// UndertoneNeutralBand is the warm-minus-cool score band inside which the
	// undertone is neutral rather than a hard zero-crossing decision.
	UndertoneNeutralBand = 4.0

	// Depth buckets on L*: light above DepthLightMinL, deep at or below
	// DepthDeepMaxL, medium between.
	DepthLightMinL = 65.0
	DepthDeepMaxL  = 45.0

	// Clarity buckets on average skin saturation. The range is narrow because
	// skin saturation is inherently low.
	ClarityMutedMaxSat = 0.22
	ClarityVividMinSat = 0.38

	// Confidence scale: NeutralConfidence is the ceiling for a neutral
	// undertone call, BaseAttributeConfidence the floor for a decided
	// attribute, ConfidenceCap the maximum any single attribute reaches.
	NeutralConfidence       = 0.55
	BaseAttributeConfidence = 0.65
	ConfidenceCap           = 0.95

	// NeedsConfirmationFloor: below this season confidence the caller should
	// ask the user to confirm.
	NeedsConfirmationFloor = 0.72

	// LightingPenaltyWeight scales how strongly lighting severity discounts
	// the season confidence.
	LightingPenaltyWeight = 0.35
)
