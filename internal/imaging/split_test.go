package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/scantools/pagesplice/internal/gutter"
)

// newFilledImage creates a w×h image filled with a single color.
func newFilledImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// newTwoToneImage fills the region before the boundary with red and the rest
// with blue, along the given axis.
func newTwoToneImage(w, h, boundary int, o gutter.Orientation) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := x
			if o == gutter.Horizontal {
				pos = y
			}
			if pos < boundary {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, blue)
			}
		}
	}
	return img
}

func TestSplit_VerticalDimensionsSumExactly(t *testing.T) {
	img := newFilledImage(200, 100, red)

	for _, seam := range []int{1, 37, 100, 163, 199} {
		res := Split(img, gutter.Vertical, seam)

		fw := res.First.Bounds().Dx()
		sw := res.Second.Bounds().Dx()
		if fw+sw != 200 {
			t.Errorf("seam %d: widths %d+%d != 200", seam, fw, sw)
		}
		if fw != seam {
			t.Errorf("seam %d: first width = %d", seam, fw)
		}
		if res.First.Bounds().Dy() != 100 || res.Second.Bounds().Dy() != 100 {
			t.Errorf("seam %d: heights changed", seam)
		}
	}
}

func TestSplit_HorizontalDimensionsSumExactly(t *testing.T) {
	img := newFilledImage(100, 200, red)

	for _, seam := range []int{1, 80, 199} {
		res := Split(img, gutter.Horizontal, seam)

		fh := res.First.Bounds().Dy()
		sh := res.Second.Bounds().Dy()
		if fh+sh != 200 {
			t.Errorf("seam %d: heights %d+%d != 200", seam, fh, sh)
		}
		if fh != seam {
			t.Errorf("seam %d: first height = %d", seam, fh)
		}
	}
}

func TestSplit_ClampsSeamToValidRange(t *testing.T) {
	img := newFilledImage(200, 100, red)

	tests := []struct {
		name string
		seam int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"at width", 200, 199},
		{"beyond width", 999, 199},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Split(img, gutter.Vertical, tt.seam)
			if res.Seam != tt.want {
				t.Errorf("clamped seam = %d, want %d", res.Seam, tt.want)
			}
			if res.First.Bounds().Dx() == 0 || res.Second.Bounds().Dx() == 0 {
				t.Error("both pages must be non-empty")
			}
		})
	}
}

func TestSplit_ContentLandsOnTheRightSide(t *testing.T) {
	img := newTwoToneImage(200, 100, 120, gutter.Vertical)
	res := Split(img, gutter.Vertical, 120)

	if got := res.First.NRGBAAt(60, 50); got != red {
		t.Errorf("left page pixel = %v, want red", got)
	}
	if got := res.Second.NRGBAAt(40, 50); got != blue {
		t.Errorf("right page pixel = %v, want blue", got)
	}
}

func TestSplit_DoesNotAliasSource(t *testing.T) {
	img := newFilledImage(200, 100, red)
	res := Split(img, gutter.Vertical, 100)

	img.SetNRGBA(50, 50, blue)
	if got := res.First.NRGBAAt(50, 50); got != red {
		t.Error("split page shares pixels with the source image")
	}
}
