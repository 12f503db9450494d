// Package analyzer exposes the two entry points of the color-season engine:
// classifying an arbitrary color against the reference palette, and
// analyzing a face photo into personal color attributes.
//
// Both are pure functions of their inputs with no shared mutable state, so
// concurrent calls need no coordination. The engine never retries anything
// internally: it is deterministic, and retrying would reproduce the result.
package analyzer

import (
	"errors"
	"fmt"
	"image"

	"github.com/stylesense/colorseason/internal/facescan"
	"github.com/stylesense/colorseason/internal/palette"
	"github.com/stylesense/colorseason/internal/season"
)

var (
	// ErrInvalidInput marks malformed input: a bad hex string, a nil or
	// zero-sized image, or a degenerate face box. Fail-fast, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFaceNotDetected is the expected outcome when region detection or
	// the skin-validation gate rejects the image. It is not a crash signal:
	// callers branch on it with errors.Is and ask for a clearer photo.
	ErrFaceNotDetected = errors.New("face not detected")
)

// ClassifyColor matches a hex color against the reference palette.
//
// The result's Status must be handled explicitly: unclassified and
// ambiguous are valid outcomes, not errors, and carry no season/group.
func ClassifyColor(hex string) (*palette.ClassificationResult, error) {
	res, err := palette.Classify(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return res, nil
}

// AnalyzeFace derives a season analysis from a face photo.
//
// box is optional: nil means "locate the face"; a non-nil box is a trusted
// caller-supplied region that skips detection (it is still clamped to the
// image and must survive the skin-validation gate).
//
// Returns ErrFaceNotDetected when no face-like region is found or the
// sampled region does not look like skin; the caller must treat that as a
// distinct outcome, not as a low-confidence season.
func AnalyzeFace(img image.Image, box *facescan.FaceBox) (*season.Analysis, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero-sized image", ErrInvalidInput)
	}

	var faceBox facescan.FaceBox
	if box != nil {
		if box.Width <= 0 || box.Height <= 0 || box.X < 0 || box.Y < 0 {
			return nil, fmt.Errorf("%w: degenerate face box %+v", ErrInvalidInput, *box)
		}
		faceBox = *box
	} else {
		detected, ok := facescan.Detect(img)
		if !ok {
			return nil, ErrFaceNotDetected
		}
		faceBox = detected
	}

	estimate, ok := facescan.EstimateSkinColor(img, faceBox)
	if !ok {
		return nil, ErrFaceNotDetected
	}

	lighting := season.EstimateLighting(img)
	return season.Evaluate(estimate.Color, estimate.AvgSaturation, lighting), nil
}
