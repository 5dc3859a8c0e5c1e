package seed

import (
	"math"
	"slices"

	"cogentcore.org/core/cam/hct"
	"gonum.org/v1/gonum/floats"

	"github.com/setanarut/m3theme/internal/material"
)

// Fallback is returned by Score when no candidate is colorful enough
// (Google Blue).
var Fallback = material.Color{R: 0x42, G: 0x85, B: 0xF4}

const (
	targetChroma         = 48.0
	weightProportion     = 0.7
	weightChromaAbove    = 0.3
	weightChromaBelow    = 0.1
	cutoffChroma         = 5.0
	cutoffExcitedPercent = 0.01
)

type scored struct {
	color material.Color
	hue   float64
	score float64
}

// Score ranks candidates as seed colors, best first. A candidate's
// proportion counts every candidate within ±15° of its hue, so a hue family
// spread over several clusters still wins. Near-gray candidates and hues
// covering less than 1% of the image are dropped; ranked colors are at least
// 15° apart. At most desired colors are returned, or [Fallback] when
// nothing qualifies.
func Score(cands []Candidate, desired int) []material.Color {
	if desired <= 0 {
		desired = 1
	}

	weights := make([]float64, len(cands))
	colors := make([]material.Color, len(cands))
	hcts := make([]hct.HCT, len(cands))
	for i, c := range cands {
		colors[i] = material.FromColorful(c.Col)
		hcts[i] = hct.FromColor(colors[i])
		if !math.IsNaN(float64(hcts[i].Hue)) {
			weights[i] = math.Max(c.Weight, 0)
		}
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return []material.Color{Fallback}
	}

	hist := make([]float64, 360)
	for i, h := range hcts {
		if weights[i] > 0 {
			hist[hueBin(float64(h.Hue))] += weights[i]
		}
	}
	floats.Scale(1/total, hist)

	excited := make([]float64, 360)
	for hue, p := range hist {
		if p == 0 {
			continue
		}
		for d := -14; d <= 15; d++ {
			excited[(hue+d+360)%360] += p
		}
	}

	var ranked []scored
	seen := make(map[material.Color]bool, len(cands))
	for i, h := range hcts {
		c := colors[i]
		hue, chroma := float64(h.Hue), float64(h.Chroma)
		if weights[i] == 0 || seen[c] || chroma < cutoffChroma {
			continue
		}
		proportion := excited[hueBin(hue)]
		if proportion <= cutoffExcitedPercent {
			continue
		}
		seen[c] = true

		chromaWeight := weightChromaBelow
		if chroma >= targetChroma {
			chromaWeight = weightChromaAbove
		}
		ranked = append(ranked, scored{
			color: c,
			hue:   hue,
			score: proportion*100*weightProportion + (chroma-targetChroma)*chromaWeight,
		})
	}
	if len(ranked) == 0 {
		return []material.Color{Fallback}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	// Widest hue spacing that still yields desired colors, down to 15°.
	var chosen []scored
	for diff := 90.0; diff >= 15; diff-- {
		chosen = chosen[:0]
		for _, s := range ranked {
			if !slices.ContainsFunc(chosen, func(c scored) bool { return hueDistance(c.hue, s.hue) < diff }) {
				chosen = append(chosen, s)
			}
			if len(chosen) >= desired {
				break
			}
		}
		if len(chosen) >= desired {
			break
		}
	}

	out := make([]material.Color, len(chosen))
	for i, s := range chosen {
		out[i] = s.color
	}
	return out
}

func hueBin(hue float64) int {
	return int(math.Floor(hue)+360) % 360
}

func hueDistance(a, b float64) float64 {
	return 180 - math.Abs(math.Abs(a-b)-180)
}
