// Package gutter locates the seam between the two pages of a double-page
// scan.
//
// A double-page scan is a single image holding two physical pages side by
// side (vertical gutter) or stacked (horizontal gutter). The gutter is the
// blank strip between them, normally lighter than the surrounding page
// content. The package finds it with a deterministic heuristic over 1-D
// intensity projections: the image is downsampled for analysis, thin bands
// of pixels perpendicular to the candidate axis are scored by total ink
// (darkness), and the lightest band inside a window around the midline wins.
//
// # Pipeline
//
// A single image flows through:
//
//	Classify -> Downsample -> Locate (repeated band scoring) -> caller split
//
// Classify decides the axis from the aspect ratio (or an explicit mode).
// Locate returns a full-resolution seam coordinate and never fails: when no
// candidate band is meaningfully lighter than the band at the geometric
// center, the midline itself is returned. This center bias trades precision
// for robustness against false seams such as text columns.
//
// # Purity
//
// Every function is pure: inputs are never mutated, there is no package
// state, and repeated invocation on the same input yields the same result.
// Passes for different images may therefore run concurrently without
// locking.
package gutter
