// Package seed decodes an image and picks the color a theme is derived from.
package seed

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/setanarut/m3theme/internal/material"
)

// ErrDecodeFailure is returned when the image cannot be opened or decoded.
var ErrDecodeFailure = errors.New("image decode failed")

const (
	// ThumbnailSize is the edge of the square the image is reduced to before
	// extraction.
	ThumbnailSize = 128
	// candidateCount is the number of clusters asked from the extractor.
	candidateCount = 16
)

// Load decodes a jpeg, png or webp file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrDecodeFailure, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrDecodeFailure, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s (%s) has no pixels", ErrDecodeFailure, path, format)
	}
	return img, nil
}

// Thumbnail scales img to size×size with a bilinear (triangle) filter,
// ignoring the aspect ratio.
func Thumbnail(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Extractor picks seed colors from images.
type Extractor struct {
	Method Method
	logger zerolog.Logger
}

// NewExtractor returns an extractor using method.
func NewExtractor(method Method, logger zerolog.Logger) *Extractor {
	return &Extractor{Method: method, logger: logger}
}

// Extract returns the best seed color of img.
func (e *Extractor) Extract(img image.Image) material.Color {
	return e.Ranked(img, 1)[0]
}

// Ranked returns up to n seed colors of img, best first. The result is
// never empty.
func (e *Extractor) Ranked(img image.Image, n int) []material.Color {
	thumb := Thumbnail(img, ThumbnailSize)
	cands := Candidates(thumb, candidateCount, e.Method, e.logger)
	ranked := Score(cands, n)

	e.logger.Debug().
		Str("method", e.Method.String()).
		Int("candidates", len(cands)).
		Str("seed", ranked[0].Hex()).
		Msg("seed color extracted")
	return ranked
}
