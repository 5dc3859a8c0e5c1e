// Package material derives Material Design 3 color schemes from a seed
// color. Palettes are built in the HCT color space and every role of the
// role table is resolved for a light and a dark scheme.
package material

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrGenerationFailure is returned when a theme cannot be built from the
// requested seed and variant.
var ErrGenerationFailure = errors.New("theme generation failed")

// Scheme maps each role to its color.
type Scheme map[Role]Color

// Schemes holds both presentations of a theme.
type Schemes struct {
	Light Scheme `json:"light"`
	Dark  Scheme `json:"dark"`
}

// Theme is the generated result for one seed color.
type Theme struct {
	Source   Color    `json:"source"`
	Variant  Variant  `json:"variant"`
	Palettes Palettes `json:"palettes"`
	Schemes  Schemes  `json:"schemes"`
}

// Scheme returns the dark or the light scheme.
func (t Theme) Scheme(isDark bool) Scheme {
	if isDark {
		return t.Schemes.Dark
	}
	return t.Schemes.Light
}

// Generate builds the theme for source using variant.
func Generate(source Color, variant Variant) (Theme, error) {
	if !variant.Valid() {
		return Theme{}, fmt.Errorf("%w: unknown variant %q", ErrGenerationFailure, variant)
	}
	build := variantPalettes[variant]

	hue, chroma, _ := SourceHCT(source)
	if math.IsNaN(hue) || math.IsNaN(chroma) {
		return Theme{}, fmt.Errorf("%w: source %s has no defined hue", ErrGenerationFailure, source)
	}

	palettes := build(hue, chroma)
	palettes.Error = NewTonalPalette(errorHue, errorChroma)

	return Theme{
		Source:   source,
		Variant:  variant,
		Palettes: palettes,
		Schemes: Schemes{
			Light: resolveScheme(palettes, variant, false),
			Dark:  resolveScheme(palettes, variant, true),
		},
	}, nil
}

func resolveScheme(p Palettes, variant Variant, isDark bool) Scheme {
	s := make(Scheme, len(roleTable))
	for _, row := range roleTable {
		s[row.role] = p.get(row.palette).Tone(row.tone(isDark, variant))
	}
	return s
}

// MarshalJSON writes roles in role table order; roles outside the table
// follow in lexical order.
func (s Scheme) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	written := 0
	write := func(role Role, c Color) error {
		if written > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(role))
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(`:"`)
		buf.WriteString(c.Hex())
		buf.WriteByte('"')
		written++
		return nil
	}

	known := make(map[Role]bool, len(roleTable))
	for _, row := range roleTable {
		known[row.role] = true
		if c, ok := s[row.role]; ok {
			if err := write(row.role, c); err != nil {
				return nil, err
			}
		}
	}

	var extra []Role
	for role := range s {
		if !known[role] {
			extra = append(extra, role)
		}
	}
	slices.Sort(extra)
	for _, role := range extra {
		if err := write(role, s[role]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
