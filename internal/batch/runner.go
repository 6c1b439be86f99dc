package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/scantools/pagesplice/internal/gutter"
	"github.com/scantools/pagesplice/internal/imaging"
)

// Status classifies the outcome of one input file.
type Status string

const (
	StatusOK              Status = "ok"
	StatusSkippedSingle   Status = "skipped_single"
	StatusSkippedExisting Status = "skipped_existing"
	StatusFailed          Status = "failed"
)

// Options configures one batch run.
type Options struct {
	// InputRoot is the folder scanned for images.
	InputRoot string

	// OutputRoot receives the split pages, mirroring InputRoot's
	// structure.
	OutputRoot string

	// ArchiveRoot, when non-empty, receives successfully split originals
	// (mirroring structure). Typically <InputRoot>/double.
	ArchiveRoot string

	// Recursive scans subfolders of InputRoot.
	Recursive bool

	// Force overwrites existing split outputs.
	Force bool

	// PreviewColor, when non-empty, writes a seam-preview PNG per split
	// using this "#RRGGBB" line color.
	PreviewColor string

	// Workers is the worker pool size; values below 1 mean NumCPU.
	Workers int

	// Detect tunes the gutter detection itself.
	Detect gutter.Config
}

// Result is the outcome for one input file.
type Result struct {
	Path    string
	Status  Status
	Seam    int
	Written int
	Err     error
}

// Summary aggregates a whole run.
type Summary struct {
	Scanned         int
	Split           int
	Written         int
	SkippedSingle   int
	SkippedExisting int
	Errors          int
}

// Run discovers images under opts.InputRoot and processes them on a worker
// pool. The pipeline within one image is strictly sequential; images are
// independent, so they parallelize freely. Run only fails outright when the
// input folder cannot be scanned — per-file failures land in the summary and
// the run continues.
func Run(opts Options) (Summary, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	paths, err := FindImages(opts.InputRoot, opts.Recursive, opts.OutputRoot, opts.ArchiveRoot)
	if err != nil {
		return Summary{}, fmt.Errorf("scan %s: %w", opts.InputRoot, err)
	}

	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- processOne(path, opts)
			}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	summary := Summary{Scanned: len(paths)}
	for res := range results {
		switch res.Status {
		case StatusOK:
			summary.Split++
			summary.Written += res.Written
			log.Info().Str("image", res.Path).Int("seam", res.Seam).
				Int("written", res.Written).Msg("split")
		case StatusSkippedSingle:
			summary.SkippedSingle++
			log.Debug().Str("image", res.Path).Msg("single page, skipped")
		case StatusSkippedExisting:
			summary.SkippedExisting++
			log.Debug().Str("image", res.Path).Msg("outputs exist, skipped")
		case StatusFailed:
			summary.Errors++
			log.Error().Err(res.Err).Str("image", res.Path).Msg("failed")
		}
	}
	return summary, nil
}

// processOne runs the full pipeline for a single image: classify from the
// header alone, then decode, locate the seam, split, persist both pages, and
// optionally write a preview and archive the original.
func processOne(path string, opts Options) Result {
	w, h, err := imaging.Dimensions(path)
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}

	orient := gutter.Classify(w, h, opts.Detect.Mode)
	if orient == gutter.Single {
		return Result{Path: path, Status: StatusSkippedSingle}
	}

	rel, err := filepath.Rel(opts.InputRoot, filepath.Dir(path))
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	outDir := filepath.Join(opts.OutputRoot, rel)

	n1, n2 := outNames(filepath.Base(path))
	out1 := filepath.Join(outDir, n1)
	out2 := filepath.Join(outDir, n2)

	if !opts.Force && exists(out1) && exists(out2) {
		return Result{Path: path, Status: StatusSkippedExisting}
	}

	img, err := imaging.Load(path)
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}

	seam := gutter.Locate(img, orient, opts.Detect)
	split := imaging.Split(img, orient, seam)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	if err := imaging.Save(split.First, out1); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	if err := imaging.Save(split.Second, out2); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	written := 2

	if opts.PreviewColor != "" {
		preview := imaging.SeamPreview(img, orient, split.Seam, opts.PreviewColor)
		if err := imaging.Save(preview, filepath.Join(outDir, previewName(filepath.Base(path)))); err != nil {
			return Result{Path: path, Status: StatusFailed, Written: written, Err: err}
		}
		written++
	}

	if opts.ArchiveRoot != "" {
		if err := archiveOriginal(path, opts.InputRoot, opts.ArchiveRoot); err != nil {
			return Result{Path: path, Status: StatusFailed, Written: written, Err: err}
		}
	}

	return Result{Path: path, Status: StatusOK, Seam: split.Seam, Written: written}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
