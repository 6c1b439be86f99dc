package gutter

import (
	"image"

	"github.com/disintegration/imaging"
)

// Downsample shrinks img so its larger dimension does not exceed maxDim,
// returning the analysis image and the scale factor mapping analysis
// coordinates back to full resolution (full = round(analysis * scale)).
//
// Images already within the cap are returned unchanged with scale 1.0; the
// analysis image is never upscaled, so the returned scale is always >= 1.0.
// Shrinking uses bilinear resampling and always yields a fresh buffer.
func Downsample(img image.Image, maxDim int) (image.Image, float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	scale := float64(max(w, h)) / float64(maxDim)
	if scale <= 1.0 {
		return img, 1.0
	}

	nw := max(1, int(float64(w)/scale))
	nh := max(1, int(float64(h)/scale))
	return imaging.Resize(img, nw, nh, imaging.Linear), scale
}
