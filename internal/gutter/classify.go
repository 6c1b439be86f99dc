package gutter

// Classify decides whether a w×h image is a side-by-side double page, a
// stacked double page, or a single page. With ModeAuto the verdict comes
// from the aspect ratio: a ratio of doublePageRatio or more in either
// direction marks a double page. Explicit modes bypass the test and force
// the axis.
func Classify(w, h int, mode Mode) Orientation {
	switch mode {
	case ModeVertical:
		return Vertical
	case ModeHorizontal:
		return Horizontal
	}
	if float64(w)/float64(max(h, 1)) >= doublePageRatio {
		return Vertical
	}
	if float64(h)/float64(max(w, 1)) >= doublePageRatio {
		return Horizontal
	}
	return Single
}
