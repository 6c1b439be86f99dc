package gutter

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Locate finds the seam coordinate for a double-page image and returns it in
// full-resolution space. o must be Vertical or Horizontal (the classifier's
// verdict); cfg fields at zero take their defaults.
//
// The search runs on a downsampled grayscale copy: band ink scores are
// evaluated at strided positions inside a window around the midline, at most
// maxCandidates of them, and the lightest band wins. The midline band is
// then scored as a baseline; unless the best candidate beats
// centerScore*CenterBias the midline itself is chosen. Locate has no
// failure mode: it always returns a usable coordinate.
func Locate(img image.Image, o Orientation, cfg Config) int {
	cfg = cfg.withDefaults()

	small, scale := Downsample(img, cfg.MaxAnalysisDim)
	gray := imaging.Grayscale(small)

	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()

	// dim runs along the search axis, perp across it.
	dim, perp := w, h
	if o == Horizontal {
		dim, perp = h, w
	}

	// Exclude the outer margin on each side of the perpendicular axis;
	// scanned edges and shadows there are unreliable.
	p0 := int(float64(perp) * cfg.EdgeMargin)
	p1 := int(float64(perp) * (1.0 - cfg.EdgeMargin))

	mid := dim / 2
	halfWindow := int(float64(dim) * cfg.SearchFraction / 2)
	start := max(1, mid-halfWindow)
	end := min(dim-2, mid+halfWindow)

	bandPx := max(2, int(float64(dim)*cfg.BandFraction))
	stride := max(1, dim/maxCandidates)

	best := mid
	bestScore := sentinelInk
	for pos := start; pos <= end; pos += stride {
		s := inkScore(gray, bandRect(o, w, h, pos, bandPx, p0, p1))
		if s < bestScore {
			bestScore = s
			best = pos
		}
	}

	center := inkScore(gray, bandRect(o, w, h, mid, bandPx, p0, p1))
	if float64(bestScore) > float64(center)*cfg.CenterBias {
		best = mid
	}

	return int(math.Round(float64(best) * scale))
}
