package gutter

import "fmt"

// Mode selects the split axis, or lets the classifier pick one from the
// aspect ratio.
type Mode int

const (
	ModeAuto Mode = iota
	ModeVertical
	ModeHorizontal
)

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeVertical:
		return "vertical"
	case ModeHorizontal:
		return "horizontal"
	default:
		return "auto"
	}
}

// ParseMode converts a CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "vertical":
		return ModeVertical, nil
	case "horizontal":
		return ModeHorizontal, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode %q (want auto, vertical or horizontal)", s)
	}
}

// Orientation is the classifier's verdict for one image.
type Orientation int

const (
	// Single means the image holds one page and needs no split.
	Single Orientation = iota

	// Vertical means two pages side by side; the seam is a vertical line.
	Vertical

	// Horizontal means two pages stacked; the seam is a horizontal line.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "single"
	}
}

// Default tuning constants. See Config for what each one does.
const (
	DefaultSearchFraction = 0.12
	DefaultBandFraction   = 0.01
	DefaultMaxAnalysisDim = 900
	DefaultCenterBias     = 0.95
	DefaultEdgeMargin     = 0.08

	// doublePageRatio is the aspect ratio at or above which an image is
	// treated as two pages. The comparison is inclusive.
	doublePageRatio = 1.35

	// maxCandidates bounds how many band positions Locate evaluates along
	// one axis, independent of resolution.
	maxCandidates = 500
)

// Config carries the tuning knobs for one detection pass. The zero value is
// usable: zero fields are replaced by the defaults above, so callers only
// set what they want to change. Configs are plain values; distinct configs
// can drive concurrent passes without interference.
type Config struct {
	// Mode forces the split axis, or ModeAuto for the aspect-ratio test.
	Mode Mode

	// SearchFraction is the fraction of the image dimension, centered on
	// the midline, searched for the seam. In (0,1).
	SearchFraction float64

	// BandFraction is the scoring band thickness as a fraction of the
	// image dimension. In (0,1).
	BandFraction float64

	// MaxAnalysisDim caps the larger dimension of the analysis image.
	// Images already at or below the cap are analyzed as-is.
	MaxAnalysisDim int

	// CenterBias is the fraction of the midline band's score that an
	// off-center candidate must beat, or the midline wins. A tunable: the
	// 0.95 default strongly favors the center whenever the signal is weak.
	CenterBias float64

	// EdgeMargin is the fraction of the perpendicular dimension excluded
	// on each side when scoring, where scanned edges and shadows are
	// unreliable.
	EdgeMargin float64
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeAuto,
		SearchFraction: DefaultSearchFraction,
		BandFraction:   DefaultBandFraction,
		MaxAnalysisDim: DefaultMaxAnalysisDim,
		CenterBias:     DefaultCenterBias,
		EdgeMargin:     DefaultEdgeMargin,
	}
}

// withDefaults fills zero fields so the zero Config behaves like
// DefaultConfig.
func (c Config) withDefaults() Config {
	if c.SearchFraction <= 0 {
		c.SearchFraction = DefaultSearchFraction
	}
	if c.BandFraction <= 0 {
		c.BandFraction = DefaultBandFraction
	}
	if c.MaxAnalysisDim <= 0 {
		c.MaxAnalysisDim = DefaultMaxAnalysisDim
	}
	if c.CenterBias <= 0 {
		c.CenterBias = DefaultCenterBias
	}
	if c.EdgeMargin <= 0 {
		c.EdgeMargin = DefaultEdgeMargin
	}
	return c
}
