package material

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baselineSeed = Color{R: 0x67, G: 0x50, B: 0xA4}

func TestRolesTable(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, 49)
	assert.Equal(t, Role("primary"), roles[0])
	assert.Equal(t, Role("scrim"), roles[len(roles)-1])

	seen := make(map[Role]bool, len(roles))
	for _, r := range roles {
		assert.False(t, seen[r], "duplicate role %q", r)
		seen[r] = true
	}

	roles[0] = "mutated"
	assert.Equal(t, Role("primary"), Roles()[0], "Roles must return a copy")
}

func TestGenerateCoversEveryRole(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			theme, err := Generate(baselineSeed, v)
			require.NoError(t, err)
			assert.Equal(t, baselineSeed, theme.Source)
			assert.Equal(t, v, theme.Variant)
			for _, role := range Roles() {
				_, ok := theme.Schemes.Light[role]
				assert.True(t, ok, "light scheme lacks %q", role)
				_, ok = theme.Schemes.Dark[role]
				assert.True(t, ok, "dark scheme lacks %q", role)
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(baselineSeed, VariantVibrant)
	require.NoError(t, err)
	b, err := Generate(baselineSeed, VariantVibrant)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateUnknownVariant(t *testing.T) {
	for _, v := range Variants() {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, Variant("sparkly").Valid())

	_, err := Generate(baselineSeed, Variant("sparkly"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailure))
}

func TestGenerateToneOrdering(t *testing.T) {
	theme, err := Generate(baselineSeed, VariantTonalSpot)
	require.NoError(t, err)

	luma := func(c Color) float64 {
		l, _, _ := c.Colorful().Lab()
		return l
	}

	dark := theme.Schemes.Dark
	assert.Greater(t, luma(dark["primary"]), luma(dark["on_primary"]))
	assert.Greater(t, luma(dark["on_surface"]), luma(dark["surface"]))

	light := theme.Schemes.Light
	assert.Less(t, luma(light["primary"]), luma(light["on_primary"]))
	assert.Less(t, luma(light["on_surface"]), luma(light["surface"]))

	assert.Equal(t, Color{}, dark["shadow"])
	assert.Equal(t, Color{}, light["scrim"])
	assert.Equal(t, dark["primary"], dark["surface_tint"])
}

func TestMonochromeIsAchromatic(t *testing.T) {
	theme, err := Generate(baselineSeed, VariantMonochrome)
	require.NoError(t, err)

	for _, role := range []Role{"primary", "secondary", "tertiary", "surface", "outline"} {
		c := theme.Schemes.Dark[role]
		assert.True(t, c.R == c.G && c.G == c.B, "role %q should be gray, got %s", role, c)
	}
	assert.Equal(t, Color{R: 255, G: 255, B: 255}, theme.Schemes.Dark["primary"])
	assert.Equal(t, Color{}, theme.Schemes.Light["primary"])
}

func TestTonalPaletteBounds(t *testing.T) {
	p := NewTonalPalette(-90, -5)
	assert.InDelta(t, 270, p.Hue, 1e-9)
	assert.Zero(t, p.Chroma)
	assert.Equal(t, Color{}, p.Tone(-10))
	assert.Equal(t, Color{R: 255, G: 255, B: 255}, p.Tone(120))
}

func TestRotateHue(t *testing.T) {
	assert.InDelta(t, 10+45, rotateHue(10, expressiveHues, expressiveSecondaryRots), 1e-9)
	assert.InDelta(t, 355+45-360, rotateHue(355, expressiveHues, expressiveSecondaryRots), 1e-9)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#6750A4", baselineSeed.Hex())

	c, err := ParseHex("d0bcff")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xD0, G: 0xBC, B: 0xFF}, c)

	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestSchemeJSONFollowsRoleTable(t *testing.T) {
	theme, err := Generate(baselineSeed, VariantTonalSpot)
	require.NoError(t, err)
	theme.Schemes.Dark["zz_custom"] = Color{R: 1, G: 2, B: 3}

	data, err := json.MarshalIndent(theme, "", "  ")
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"source": "#6750A4"`)
	assert.Contains(t, out, `"variant": "tonal_spot"`)

	lightStart := strings.Index(out, `"light"`)
	darkStart := strings.Index(out, `"dark"`)
	require.Greater(t, darkStart, lightStart)
	light := out[lightStart:darkStart]

	prev := -1
	for _, role := range Roles() {
		idx := strings.Index(light, `"`+string(role)+`"`)
		require.GreaterOrEqual(t, idx, 0, "role %q missing from JSON", role)
		assert.Greater(t, idx, prev, "role %q out of order", role)
		prev = idx
	}

	var decoded Theme
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, theme.Source, decoded.Source)
	assert.Equal(t, theme.Schemes.Dark["primary"], decoded.Schemes.Dark["primary"])
	assert.Equal(t, Color{R: 1, G: 2, B: 3}, decoded.Schemes.Dark["zz_custom"])
}
