package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/scantools/pagesplice/internal/gutter"
)

// SplitResult carries the clamped seam coordinate and the two pages cut from
// a double-page image. First is the left or top page, Second the right or
// bottom one. Both are fresh buffers; the source image is untouched.
type SplitResult struct {
	Seam   int
	First  *image.NRGBA
	Second *image.NRGBA
}

// Split partitions img at the seam along the axis given by o. The seam is
// clamped to [1, dim-1] first, so both pages are always non-empty and their
// widths (vertical seam) or heights (horizontal seam) sum exactly to the
// original dimension.
func Split(img image.Image, o gutter.Orientation, seam int) *SplitResult {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if o == gutter.Horizontal {
		seam = clamp(seam, 1, h-1)
		return &SplitResult{
			Seam:   seam,
			First:  imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w, b.Min.Y+seam)),
			Second: imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y+seam, b.Min.X+w, b.Min.Y+h)),
		}
	}

	seam = clamp(seam, 1, w-1)
	return &SplitResult{
		Seam:   seam,
		First:  imaging.Crop(img, image.Rect(b.Min.X, b.Min.Y, b.Min.X+seam, b.Min.Y+h)),
		Second: imaging.Crop(img, image.Rect(b.Min.X+seam, b.Min.Y, b.Min.X+w, b.Min.Y+h)),
	}
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
