package seed

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/rs/zerolog"
)

type Method int

const (
	MethodDominantColor Method = iota
	MethodKMeans
	MethodProminent
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodProminent:
		return "prominent"
	default:
		return "dominant"
	}
}

// ParseMethod accepts the names returned by Method.String. Empty input
// selects MethodDominantColor.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominant", "dominantcolor":
		return MethodDominantColor, nil
	case "kmeans":
		return MethodKMeans, nil
	case "prominent", "prominentcolor":
		return MethodProminent, nil
	default:
		return MethodDominantColor, fmt.Errorf("unknown extraction method %q (want dominant, kmeans or prominent)", s)
	}
}

// Candidate is a color found in the image with its share of the pixels.
type Candidate struct {
	Col    colorful.Color
	Weight float64
}

func newCandidate(c colorful.Color, w float64) Candidate {
	if w <= 0 {
		w = 1e-6
	}
	return Candidate{Col: c.Clamped(), Weight: w}
}

func DominantCandidates(img image.Image, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	found := dominantcolor.FindWeight(img, k)
	out := make([]Candidate, 0, len(found))
	for _, c := range found {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		out = append(out, newCandidate(col, c.Weight))
	}
	return out
}

func KMeansCandidates(img image.Image, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large images.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / float64(a16),
				float64(g16) / float64(a16),
				float64(b16) / float64(a16),
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, min(k, len(dataset)))
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Dominant clusters first.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	out := make([]Candidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}
		out = append(out, newCandidate(col, float64(len(c.Observations))))
	}
	return out
}

func ProminentCandidates(img image.Image, k int) ([]Candidate, error) {
	if k <= 0 {
		return nil, nil
	}

	items, err := prominentcolor.KmeansWithAll(k, img, prominentcolor.ArgumentNoCropping, prominentcolor.DefaultSize, prominentcolor.GetDefaultMasks())
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(items))
	for _, it := range items {
		col := colorful.Color{
			R: float64(it.Color.R) / 255,
			G: float64(it.Color.G) / 255,
			B: float64(it.Color.B) / 255,
		}
		out = append(out, newCandidate(col, float64(it.Cnt)))
	}
	return out, nil
}

// Candidates extracts up to k weighted colors with method. kmeans and
// prominent fall back to dominantcolor when they find nothing, and the mean
// image color is the last resort so the result is never empty for a
// non-empty image.
func Candidates(img image.Image, k int, method Method, logger zerolog.Logger) []Candidate {
	var out []Candidate
	switch method {
	case MethodKMeans:
		out = KMeansCandidates(img, k)
	case MethodProminent:
		var err error
		out, err = ProminentCandidates(img, k)
		if err != nil {
			logger.Warn().Err(err).Msg("prominentcolor failed")
		}
	default:
		out = DominantCandidates(img, k)
	}

	if len(out) == 0 && method != MethodDominantColor {
		logger.Warn().Str("method", method.String()).Msg("empty palette, falling back to dominantcolor")
		out = DominantCandidates(img, k)
	}
	if len(out) == 0 {
		if mean, ok := meanColor(img); ok {
			out = []Candidate{newCandidate(mean, 1)}
		}
	}
	return out
}

func meanColor(img image.Image) (colorful.Color, bool) {
	b := img.Bounds()
	var r, g, bl, n float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			nc := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if nc.A == 0 {
				continue
			}
			r += float64(nc.R)
			g += float64(nc.G)
			bl += float64(nc.B)
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: r / n / 255, G: g / n / 255, B: bl / n / 255}, true
}
