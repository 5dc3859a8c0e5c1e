package material

import (
	"math"

	"cogentcore.org/core/cam/hct"
)

// TonalPalette is a hue/chroma pair; every tone in [0, 100] of it is a
// valid color.
type TonalPalette struct {
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
}

// NewTonalPalette normalizes hue into [0, 360) and clamps chroma at 0.
func NewTonalPalette(hue, chroma float64) TonalPalette {
	return TonalPalette{Hue: sanitizeDegrees(hue), Chroma: math.Max(0, chroma)}
}

// Tone returns the palette color at tone t. The HCT solver reduces chroma
// when the requested one is out of the sRGB gamut at that tone.
func (p TonalPalette) Tone(t float64) Color {
	t = math.Max(0, math.Min(100, t))
	switch t {
	case 0:
		return Color{}
	case 100:
		return Color{R: 255, G: 255, B: 255}
	}
	return FromColor(hct.New(float32(p.Hue), float32(p.Chroma), float32(t)).AsRGBA())
}

// Palettes are the six tonal palettes a scheme is resolved from.
type Palettes struct {
	Primary        TonalPalette `json:"primary"`
	Secondary      TonalPalette `json:"secondary"`
	Tertiary       TonalPalette `json:"tertiary"`
	Neutral        TonalPalette `json:"neutral"`
	NeutralVariant TonalPalette `json:"neutral_variant"`
	Error          TonalPalette `json:"error"`
}

func (p Palettes) get(key paletteKey) TonalPalette {
	switch key {
	case secondaryPalette:
		return p.Secondary
	case tertiaryPalette:
		return p.Tertiary
	case neutralPalette:
		return p.Neutral
	case neutralVariantPalette:
		return p.NeutralVariant
	case errorPalette:
		return p.Error
	default:
		return p.Primary
	}
}

// SourceHCT returns the hue, chroma and tone of c.
func SourceHCT(c Color) (hue, chroma, tone float64) {
	h := hct.FromColor(c)
	return float64(h.Hue), float64(h.Chroma), float64(h.Tone)
}

func sanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// rotateHue picks the rotation of the segment of hues that contains hue.
// hues must be ascending and span [0, 360].
func rotateHue(hue float64, hues, rotations []float64) float64 {
	hue = sanitizeDegrees(hue)
	for i := 0; i < len(hues)-1; i++ {
		if hue >= hues[i] && hue < hues[i+1] {
			return sanitizeDegrees(hue + rotations[i])
		}
	}
	return hue
}
