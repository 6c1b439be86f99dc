package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/scantools/pagesplice/internal/gutter"
)

// previewLinePx is the seam line thickness in preview images.
const previewLinePx = 3

// SeamPreview renders a downsampled copy of img with the detected seam drawn
// across it, for eyeballing a detection without opening the split outputs.
//
// seam is a full-resolution coordinate along the axis given by o. hexColor
// is a CSS-style "#RRGGBB" string for the line; unparseable values fall back
// to red. The preview never exceeds gutter.DefaultMaxAnalysisDim on its
// larger side.
func SeamPreview(img image.Image, o gutter.Orientation, seam int, hexColor string) *image.NRGBA {
	small, scale := gutter.Downsample(img, gutter.DefaultMaxAnalysisDim)
	dst := imaging.Clone(small)

	c, err := colorful.Hex(hexColor)
	if err != nil {
		c = colorful.Color{R: 1, G: 0, B: 0}
	}
	r8, g8, b8 := c.RGB255()
	line := color.NRGBA{R: r8, G: g8, B: b8, A: 255}

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	pos := int(math.Round(float64(seam) / scale))
	lo := pos - previewLinePx/2

	if o == gutter.Horizontal {
		for y := max(0, lo); y < min(h, lo+previewLinePx); y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(x, y, line)
			}
		}
		return dst
	}
	for x := max(0, lo); x < min(w, lo+previewLinePx); x++ {
		for y := 0; y < h; y++ {
			dst.SetNRGBA(x, y, line)
		}
	}
	return dst
}
