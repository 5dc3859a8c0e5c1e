package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/m3theme/internal/material"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// CheckImage reports whether path can be treated as an image: an existing
// regular file with a jpg, jpeg, png or webp extension.
func CheckImage(path string) error {
	info, err := os.Stat(path)
	switch {
	case err != nil && os.IsNotExist(err):
		return fmt.Errorf("%w: %s does not exist", ErrNotAnImage, path)
	case err != nil:
		return fmt.Errorf("%w: %s: %w", ErrUnreadablePath, path, err)
	case info.IsDir():
		return fmt.Errorf("%w: %s is a directory", ErrNotAnImage, path)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("%w: %s has no file extension", ErrUnreadablePath, path)
	}
	if !imageExtensions[strings.ToLower(ext)] {
		return fmt.Errorf("%w: %s has unsupported extension %q", ErrNotAnImage, path, ext)
	}
	return nil
}

// variantAliases maps normalized names (lower case, no separators) to
// variants. "expresive" is a historical misspelling.
var variantAliases = map[string]material.Variant{
	"content":    material.VariantContent,
	"expressive": material.VariantExpressive,
	"expresive":  material.VariantExpressive,
	"monochrome": material.VariantMonochrome,
	"neutral":    material.VariantNeutral,
	"tonalspot":  material.VariantTonalSpot,
	"vibrant":    material.VariantVibrant,
	"fidelity":   material.VariantFidelity,
	"fruitsalad": material.VariantFruitSalad,
	"rainbow":    material.VariantRainbow,
}

// ParseVariant maps s to a variant, ignoring case, '_', '-' and spaces.
// Unknown or empty input yields material.DefaultVariant and false.
func ParseVariant(s string) (material.Variant, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	if v, ok := variantAliases[key]; ok {
		return v, true
	}
	return material.DefaultVariant, false
}

// ParseScheme reports whether the dark scheme is selected. Only the exact
// string "light" selects the light scheme; recognized is false for anything
// other than "", "light" and "dark".
func ParseScheme(s string) (isDark, recognized bool) {
	switch s {
	case "light":
		return false, true
	case "", "dark":
		return true, true
	}
	return true, false
}
