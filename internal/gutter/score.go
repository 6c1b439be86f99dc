package gutter

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// sentinelInk is the score of a degenerate (zero-area) band. It is
// effectively infinite so an out-of-range candidate can never win the
// search.
const sentinelInk = int64(1e18)

// bandRect builds the scoring band for one candidate seam position: a strip
// bandPx thick centered on the candidate along the search axis, clamped to
// the image, and restricted to [p0,p1) along the perpendicular axis. The
// rectangle is in the coordinate space of a (0,0)-anchored analysis image.
func bandRect(o Orientation, w, h, center, bandPx, p0, p1 int) image.Rectangle {
	if o == Horizontal {
		y0 := max(0, center-bandPx/2)
		y1 := min(h, y0+bandPx)
		return image.Rect(p0, y0, p1, y1)
	}
	x0 := max(0, center-bandPx/2)
	x1 := min(w, x0+bandPx)
	return image.Rect(x0, p0, x1, p1)
}

// inkScore totals the darkness inside one band of a grayscale analysis
// image: sum over the band's intensity histogram of (255-intensity)*count.
// A pure-white band scores 0; lower means lighter means more gutter-like.
// A degenerate band scores sentinelInk.
//
// The image is grayscale, so the red channel of the histogram carries the
// intensity distribution.
func inkScore(gray image.Image, band image.Rectangle) int64 {
	if band.Dx() <= 0 || band.Dy() <= 0 {
		return sentinelInk
	}
	hist := histogram.NewRGBAHistogram(imaging.Crop(gray, band))
	var score int64
	for i, n := range hist.R.Bins {
		score += int64(255-i) * int64(n)
	}
	return score
}
