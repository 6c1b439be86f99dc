package imaging

import (
	"image/color"
	"testing"

	"github.com/scantools/pagesplice/internal/gutter"
)

func TestSeamPreview_DrawsVerticalLine(t *testing.T) {
	img := newFilledImage(200, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := SeamPreview(img, gutter.Vertical, 100, "#00ff00")

	b := got.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("preview dimensions = %dx%d, want 200x100", b.Dx(), b.Dy())
	}
	want := color.NRGBA{G: 255, A: 255}
	if px := got.NRGBAAt(100, 50); px != want {
		t.Errorf("seam pixel = %v, want %v", px, want)
	}
	if px := got.NRGBAAt(10, 50); px.G == 255 && px.R == 0 {
		t.Error("line color leaked outside the seam")
	}
}

func TestSeamPreview_DrawsHorizontalLine(t *testing.T) {
	img := newFilledImage(100, 200, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := SeamPreview(img, gutter.Horizontal, 120, "#0000ff")

	want := color.NRGBA{B: 255, A: 255}
	if px := got.NRGBAAt(50, 120); px != want {
		t.Errorf("seam pixel = %v, want %v", px, want)
	}
}

func TestSeamPreview_BadColorFallsBackToRed(t *testing.T) {
	img := newFilledImage(200, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := SeamPreview(img, gutter.Vertical, 100, "not-a-color")

	want := color.NRGBA{R: 255, A: 255}
	if px := got.NRGBAAt(100, 50); px != want {
		t.Errorf("seam pixel = %v, want red fallback", px)
	}
}

func TestSeamPreview_DownsamplesLargeImages(t *testing.T) {
	img := newFilledImage(1800, 900, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got := SeamPreview(img, gutter.Vertical, 900, "#ff0000")

	b := got.Bounds()
	if b.Dx() != 900 || b.Dy() != 450 {
		t.Fatalf("preview dimensions = %dx%d, want 900x450", b.Dx(), b.Dy())
	}
	// Full-resolution seam 900 maps to analysis coordinate 450.
	want := color.NRGBA{R: 255, A: 255}
	if px := got.NRGBAAt(450, 225); px != want {
		t.Errorf("seam pixel = %v, want %v", px, want)
	}
}
