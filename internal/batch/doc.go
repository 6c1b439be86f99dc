// Package batch drives gutter detection over a folder of scanned images.
//
// It discovers image files under an input root, classifies and splits each
// double page on a small worker pool, and writes the resulting pages under
// an output root that mirrors the input's directory structure. Each file
// produces an independent Result; one bad file never stops the batch.
//
// Output naming is deterministic: a source "deed.png" yields
// "deed_sp001.png" and "deed_sp002.png". Files whose outputs both exist are
// skipped unless forced, and successfully split originals can optionally be
// moved aside into a "double" folder that mirrors the input structure.
package batch
