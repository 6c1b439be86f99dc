// Package imaging provides the raster plumbing around gutter detection:
// decoding scanned images, partitioning them at a detected seam, and
// persisting the resulting pages.
//
// All operations work with standard Go image.Image values and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Value semantics
//
// Nothing in this package mutates an input image. Split and SeamPreview
// return fresh buffers, so results never alias their sources and passes for
// different images can run concurrently without locking.
//
// # Formats
//
// Load decodes PNG, JPEG, GIF, TIFF and WebP. Save encodes PNG, JPEG, GIF
// and TIFF; there is no pure-Go WebP encoder, so OutputExt maps ".webp" to
// ".png" and callers name their outputs accordingly. Formats that cannot
// represent an alpha channel get an opaque flattened copy before encoding —
// a capability check up front, not error-driven retry.
package imaging
