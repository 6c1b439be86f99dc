package gutter

import (
	"image"
	"testing"
)

// newGrayImage creates a w×h grayscale image filled with intensity v.
func newGrayImage(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// paintVerticalStripe sets columns [x0,x1) to intensity v.
func paintVerticalStripe(img *image.Gray, x0, x1 int, v uint8) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := x0; x < x1; x++ {
			img.Pix[img.PixOffset(x, y)] = v
		}
	}
}

// paintHorizontalStripe sets rows [y0,y1) to intensity v.
func paintHorizontalStripe(img *image.Gray, y0, y1 int, v uint8) {
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)] = v
		}
	}
}

func TestInkScore_WhiteBandScoresZero(t *testing.T) {
	img := newGrayImage(100, 100, 255)
	band := bandRect(Vertical, 100, 100, 50, 10, 8, 92)

	if got := inkScore(img, band); got != 0 {
		t.Errorf("white band score = %d, want 0", got)
	}
}

func TestInkScore_BlackBandScoresMaximal(t *testing.T) {
	img := newGrayImage(100, 100, 0)
	band := bandRect(Vertical, 100, 100, 50, 10, 8, 92)

	// 10px wide, 84px tall, every pixel contributes 255.
	want := int64(255 * 10 * 84)
	if got := inkScore(img, band); got != want {
		t.Errorf("black band score = %d, want %d", got, want)
	}
}

func TestInkScore_LighterBandScoresLower(t *testing.T) {
	dark := newGrayImage(100, 100, 40)
	light := newGrayImage(100, 100, 200)
	band := bandRect(Vertical, 100, 100, 50, 10, 8, 92)

	if ds, ls := inkScore(dark, band), inkScore(light, band); ls >= ds {
		t.Errorf("lighter band should score lower: light=%d dark=%d", ls, ds)
	}
}

func TestInkScore_DegenerateBandReturnsSentinel(t *testing.T) {
	img := newGrayImage(100, 100, 0)

	tests := []struct {
		name string
		band image.Rectangle
	}{
		{"zero width", image.Rect(50, 0, 50, 100)},
		{"zero height", image.Rect(0, 50, 100, 50)},
		{"empty", image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inkScore(img, tt.band); got != sentinelInk {
				t.Errorf("score = %d, want sentinel %d", got, sentinelInk)
			}
		})
	}
}

func TestInkScore_DegenerateMarginOnTinyImage(t *testing.T) {
	// A 1px-tall image yields p0 == p1 == 0, so every band is empty.
	img := newGrayImage(100, 1, 0)
	band := bandRect(Vertical, 100, 1, 50, 10, 0, 0)

	if got := inkScore(img, band); got != sentinelInk {
		t.Errorf("score = %d, want sentinel %d", got, sentinelInk)
	}
}

func TestBandRect_ClampsToImage(t *testing.T) {
	tests := []struct {
		name   string
		o      Orientation
		center int
		want   image.Rectangle
	}{
		{"left edge", Vertical, 0, image.Rect(0, 8, 10, 92)},
		{"right edge", Vertical, 99, image.Rect(94, 8, 100, 92)},
		{"interior", Vertical, 50, image.Rect(45, 8, 55, 92)},
		{"top edge", Horizontal, 0, image.Rect(8, 0, 92, 10)},
		{"bottom edge", Horizontal, 99, image.Rect(8, 94, 92, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bandRect(tt.o, 100, 100, tt.center, 10, 8, 92)
			if got != tt.want {
				t.Errorf("bandRect = %v, want %v", got, tt.want)
			}
		})
	}
}
