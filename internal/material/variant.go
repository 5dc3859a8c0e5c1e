package material

import "math"

// Variant identifies the style used to derive a scheme from a seed color.
type Variant string

const (
	VariantContent    Variant = "content"
	VariantExpressive Variant = "expressive"
	VariantMonochrome Variant = "monochrome"
	VariantNeutral    Variant = "neutral"
	VariantTonalSpot  Variant = "tonal_spot"
	VariantVibrant    Variant = "vibrant"
	VariantFidelity   Variant = "fidelity"
	VariantFruitSalad Variant = "fruit_salad"
	VariantRainbow    Variant = "rainbow"
)

// DefaultVariant is used when no variant, or an unknown one, is requested.
const DefaultVariant = VariantTonalSpot

var variants = [...]Variant{
	VariantContent,
	VariantExpressive,
	VariantMonochrome,
	VariantNeutral,
	VariantTonalSpot,
	VariantVibrant,
	VariantFidelity,
	VariantFruitSalad,
	VariantRainbow,
}

// Variants returns every known variant.
func Variants() []Variant {
	return append([]Variant(nil), variants[:]...)
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	_, ok := variantPalettes[v]
	return ok
}

// errorHue and errorChroma define the error palette shared by all variants.
const (
	errorHue    = 25
	errorChroma = 84
)

var (
	expressiveHues          = []float64{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRots = []float64{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRots  = []float64{120, 120, 20, 45, 20, 15, 20, 120, 120}

	vibrantHues          = []float64{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRots = []float64{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRots  = []float64{35, 30, 20, 25, 30, 35, 30, 25, 25}
)

// variantPalettes builds the accent and neutral palettes of each variant
// from the seed's hue and chroma.
var variantPalettes = map[Variant]func(hue, chroma float64) Palettes{
	VariantTonalSpot: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue, 36),
			Secondary:      NewTonalPalette(hue, 16),
			Tertiary:       NewTonalPalette(hue+60, 24),
			Neutral:        NewTonalPalette(hue, 6),
			NeutralVariant: NewTonalPalette(hue, 8),
		}
	},
	VariantContent:  contentPalettes,
	VariantFidelity: contentPalettes,
	VariantExpressive: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue+240, 40),
			Secondary:      NewTonalPalette(rotateHue(hue, expressiveHues, expressiveSecondaryRots), 24),
			Tertiary:       NewTonalPalette(rotateHue(hue, expressiveHues, expressiveTertiaryRots), 32),
			Neutral:        NewTonalPalette(hue+15, 8),
			NeutralVariant: NewTonalPalette(hue+15, 12),
		}
	},
	VariantMonochrome: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue, 0),
			Secondary:      NewTonalPalette(hue, 0),
			Tertiary:       NewTonalPalette(hue, 0),
			Neutral:        NewTonalPalette(hue, 0),
			NeutralVariant: NewTonalPalette(hue, 0),
		}
	},
	VariantNeutral: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue, 12),
			Secondary:      NewTonalPalette(hue, 8),
			Tertiary:       NewTonalPalette(hue, 16),
			Neutral:        NewTonalPalette(hue, 2),
			NeutralVariant: NewTonalPalette(hue, 2),
		}
	},
	VariantVibrant: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue, 200),
			Secondary:      NewTonalPalette(rotateHue(hue, vibrantHues, vibrantSecondaryRots), 24),
			Tertiary:       NewTonalPalette(rotateHue(hue, vibrantHues, vibrantTertiaryRots), 32),
			Neutral:        NewTonalPalette(hue, 10),
			NeutralVariant: NewTonalPalette(hue, 12),
		}
	},
	VariantFruitSalad: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue-50, 48),
			Secondary:      NewTonalPalette(hue-50, 36),
			Tertiary:       NewTonalPalette(hue, 36),
			Neutral:        NewTonalPalette(hue, 10),
			NeutralVariant: NewTonalPalette(hue, 16),
		}
	},
	VariantRainbow: func(hue, _ float64) Palettes {
		return Palettes{
			Primary:        NewTonalPalette(hue, 48),
			Secondary:      NewTonalPalette(hue, 16),
			Tertiary:       NewTonalPalette(hue+60, 24),
			Neutral:        NewTonalPalette(hue, 0),
			NeutralVariant: NewTonalPalette(hue, 0),
		}
	},
}

// contentPalettes keeps the seed's own chroma, so the scheme stays close to
// the image instead of a normalized accent.
func contentPalettes(hue, chroma float64) Palettes {
	secondary := math.Max(chroma-32, chroma*0.5)
	return Palettes{
		Primary:        NewTonalPalette(hue, chroma),
		Secondary:      NewTonalPalette(hue, secondary),
		Tertiary:       NewTonalPalette(hue+60, secondary),
		Neutral:        NewTonalPalette(hue, chroma/8),
		NeutralVariant: NewTonalPalette(hue, chroma/8+4),
	}
}
