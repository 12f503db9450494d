// Package colormath provides the perceptual color representations the
// analysis engine works in: 8-bit RGB, CIE XYZ, CIE L*a*b* (D65) and HSV
// saturation, plus the CIE76 ΔE distance between Lab triples.
//
// All functions are pure and total over valid 0-255 input. The sRGB
// gamma-decode, XYZ transform and Lab nonlinearity are delegated to
// go-colorful; that library keeps Lab scaled down by a factor of 100, so the
// accessors here rescale to the conventional range (L in [0,100], a and b
// roughly in [-128,127]) where ΔE thresholds keep their textbook values.
package colormath

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel sRGB color. Immutable value type.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// XYZ is a CIE 1931 XYZ tristimulus triple, D65 reference white.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab is a CIE L*a*b* triple, D65 reference white.
// L is approximately in [0,100]; a and b are unbounded but practically
// within [-128,127].
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ParseHex parses a hex color string into an RGB value.
//
// Accepted forms: "#RRGGBB", "RRGGBB", "#RGB" and "RGB", case-insensitive.
// The round trip ParseHex(c.Hex()) == c is exact for every 24-bit color.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("empty hex color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want #RRGGBB or #RGB", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// XYZ converts the color to CIE XYZ (sRGB gamma-decode, then the linear
// transform, normalized by the D65 reference white).
func (c RGB) XYZ() XYZ {
	x, y, z := c.colorful().Xyz()
	return XYZ{X: x, Y: y, Z: z}
}

// Lab converts the color to CIE L*a*b* under D65, rescaled to the
// conventional L in [0,100] range.
func (c RGB) Lab() Lab {
	l, a, b := c.colorful().Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// Saturation returns the HSV saturation of the color in [0,1]. It is the
// only HSV component the engine consumes; it feeds the clarity signal.
func (c RGB) Saturation() float64 {
	_, s, _ := c.colorful().Hsv()
	return s
}

// Brightness returns the channel mean in [0,255]. Used for ordering samples
// before trimming and for the skin-pixel brightness bounds.
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// DeltaE76 is the CIE76 color difference: the Euclidean distance between two
// Lab triples. It is symmetric and zero exactly when the triples are equal,
// which is all the palette classifier relies on.
func DeltaE76(p, q Lab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
