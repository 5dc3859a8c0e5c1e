package material

// Role names a semantic color slot, e.g. "on_primary_container".
type Role string

// paletteKey selects which tonal palette a role draws from.
type paletteKey int

const (
	primaryPalette paletteKey = iota
	secondaryPalette
	tertiaryPalette
	neutralPalette
	neutralVariantPalette
	errorPalette
)

// roleRow is one row of the role table: the palette and the tone used in
// the light and the dark scheme.
type roleRow struct {
	role    Role
	palette paletteKey
	light   float64
	dark    float64
}

// roleTable is ordered; both output formats and the JSON encoding follow it.
var roleTable = [...]roleRow{
	{"primary", primaryPalette, 40, 80},
	{"on_primary", primaryPalette, 100, 20},
	{"primary_container", primaryPalette, 90, 30},
	{"on_primary_container", primaryPalette, 10, 90},
	{"inverse_primary", primaryPalette, 80, 40},
	{"primary_fixed", primaryPalette, 90, 90},
	{"primary_fixed_dim", primaryPalette, 80, 80},
	{"on_primary_fixed", primaryPalette, 10, 10},
	{"on_primary_fixed_variant", primaryPalette, 30, 30},

	{"secondary", secondaryPalette, 40, 80},
	{"on_secondary", secondaryPalette, 100, 20},
	{"secondary_container", secondaryPalette, 90, 30},
	{"on_secondary_container", secondaryPalette, 10, 90},
	{"secondary_fixed", secondaryPalette, 90, 90},
	{"secondary_fixed_dim", secondaryPalette, 80, 80},
	{"on_secondary_fixed", secondaryPalette, 10, 10},
	{"on_secondary_fixed_variant", secondaryPalette, 30, 30},

	{"tertiary", tertiaryPalette, 40, 80},
	{"on_tertiary", tertiaryPalette, 100, 20},
	{"tertiary_container", tertiaryPalette, 90, 30},
	{"on_tertiary_container", tertiaryPalette, 10, 90},
	{"tertiary_fixed", tertiaryPalette, 90, 90},
	{"tertiary_fixed_dim", tertiaryPalette, 80, 80},
	{"on_tertiary_fixed", tertiaryPalette, 10, 10},
	{"on_tertiary_fixed_variant", tertiaryPalette, 30, 30},

	{"error", errorPalette, 40, 80},
	{"on_error", errorPalette, 100, 20},
	{"error_container", errorPalette, 90, 30},
	{"on_error_container", errorPalette, 10, 90},

	{"surface_dim", neutralPalette, 87, 6},
	{"surface", neutralPalette, 98, 6},
	{"surface_tint", primaryPalette, 40, 80},
	{"surface_bright", neutralPalette, 98, 24},
	{"surface_container_lowest", neutralPalette, 100, 4},
	{"surface_container_low", neutralPalette, 96, 10},
	{"surface_container", neutralPalette, 94, 12},
	{"surface_container_high", neutralPalette, 92, 17},
	{"surface_container_highest", neutralPalette, 90, 22},
	{"on_surface", neutralPalette, 10, 90},
	{"on_surface_variant", neutralVariantPalette, 30, 80},
	{"outline", neutralVariantPalette, 50, 60},
	{"outline_variant", neutralVariantPalette, 80, 30},
	{"inverse_surface", neutralPalette, 20, 90},
	{"inverse_on_surface", neutralPalette, 95, 20},
	{"surface_variant", neutralVariantPalette, 90, 30},
	{"background", neutralPalette, 98, 6},
	{"on_background", neutralPalette, 10, 90},
	{"shadow", neutralPalette, 0, 0},
	{"scrim", neutralPalette, 0, 0},
}

// monochromeTones overrides the accent tones for VariantMonochrome, where
// every accent palette is achromatic and contrast has to come from tone alone.
var monochromeTones = map[Role][2]float64{
	"primary":                    {0, 100},
	"on_primary":                 {90, 10},
	"primary_container":          {25, 85},
	"on_primary_container":       {100, 0},
	"surface_tint":               {0, 100},
	"primary_fixed":              {40, 40},
	"primary_fixed_dim":          {30, 30},
	"on_primary_fixed":           {100, 100},
	"on_primary_fixed_variant":   {90, 90},
	"secondary_container":        {85, 30},
	"on_secondary_container":     {10, 90},
	"secondary_fixed":            {80, 80},
	"secondary_fixed_dim":        {70, 70},
	"on_secondary_fixed":         {10, 10},
	"on_secondary_fixed_variant": {25, 25},
	"tertiary":                   {25, 90},
	"on_tertiary":                {90, 10},
	"tertiary_container":         {49, 60},
	"on_tertiary_container":      {100, 0},
	"tertiary_fixed":             {40, 40},
	"tertiary_fixed_dim":         {30, 30},
	"on_tertiary_fixed":          {100, 100},
	"on_tertiary_fixed_variant":  {90, 90},
}

// Roles returns the role table in output order. The returned slice is a
// copy.
func Roles() []Role {
	roles := make([]Role, len(roleTable))
	for i, row := range roleTable {
		roles[i] = row.role
	}
	return roles
}

func (s roleRow) tone(isDark bool, variant Variant) float64 {
	if variant == VariantMonochrome {
		if t, ok := monochromeTones[s.role]; ok {
			if isDark {
				return t[1]
			}
			return t[0]
		}
	}
	if isDark {
		return s.dark
	}
	return s.light
}
