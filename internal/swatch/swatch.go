// Package swatch shows theme colors as terminal swatches or a PNG strip.
package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/setanarut/m3theme/internal/material"
)

// Line renders a three-cell block of c followed by label.
func Line(c material.Color, label string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
	return block + " " + label
}

// Named is a labeled color.
type Named struct {
	Name  string
	Color material.Color
}

// SchemeColors lists the scheme in role table order. Roles absent from the
// scheme are skipped.
func SchemeColors(s material.Scheme) []Named {
	out := make([]Named, 0, len(s))
	for _, role := range material.Roles() {
		if c, ok := s[role]; ok {
			out = append(out, Named{Name: string(role), Color: c})
		}
	}
	return out
}

// Print writes one swatch line per color. Without color the hex values are
// printed alone.
func Print(w io.Writer, colors []Named, withColor bool) error {
	width := 0
	for _, n := range colors {
		width = max(width, len(n.Name))
	}
	for _, n := range colors {
		label := fmt.Sprintf("%-*s %s", width, n.Name, n.Color.Hex())
		if withColor {
			label = Line(n.Color, label)
		}
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return nil
}

// Strip draws the colors as square tiles left to right.
func Strip(colors []material.Color, tileSize int) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(colors)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, c := range colors {
		fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := 0; y < h; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img, nil
}

// SavePNG writes Strip(colors, tileSize) to filename.
func SavePNG(colors []material.Color, tileSize int, filename string) error {
	img, err := Strip(colors, tileSize)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
