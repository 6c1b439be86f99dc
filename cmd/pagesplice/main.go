// Command pagesplice splits scanned double-page images into two single-page
// images by locating the gutter between the pages.
//
// Usage:
//
//	pagesplice [flags] [folder]
//
// The folder defaults to the current directory. Split pages land under
// --out (default "splice" inside the input folder), mirroring the input's
// directory structure.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/scantools/pagesplice/internal/batch"
	"github.com/scantools/pagesplice/internal/gutter"
	"github.com/scantools/pagesplice/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	flagOut        = flag.String("out", "splice", "output folder (absolute, or relative to the input folder)")
	flagRecursive  = flag.Bool("recursive", false, "recurse into subfolders")
	flagForce      = flag.Bool("force", false, "overwrite existing split outputs")
	flagOrganize   = flag.Bool("organize", false, "move split originals into ./double (mirrors structure)")
	flagMode       = flag.String("mode", "auto", "split direction: auto, vertical or horizontal")
	flagSearch     = flag.Float64("search", gutter.DefaultSearchFraction, "search window fraction around the center")
	flagBand       = flag.Float64("band", gutter.DefaultBandFraction, "band thickness fraction used to score gutter ink")
	flagMaxDim     = flag.Int("max-dim", gutter.DefaultMaxAnalysisDim, "maximum analysis dimension")
	flagCenterBias = flag.Float64("center-bias", gutter.DefaultCenterBias, "fraction of the center score a candidate must beat")
	flagWorkers    = flag.Int("workers", 0, "worker pool size (0 = number of CPUs)")
	flagPreview    = flag.String("preview", "", "write seam previews using this line color, e.g. #ff0000")
	flagLogLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	flagLogFile    = flag.String("log-file", "", "optional rotating log file")
	flagPretty     = flag.Bool("pretty", true, "human-readable console logs")
	flagVersion    = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pagesplice [flags] [folder]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *flagVersion {
		fmt.Printf("pagesplice %s (%s)\n", Version, GitCommit)
		return
	}

	logger.Init(logger.Options{Level: *flagLogLevel, Pretty: *flagPretty, File: *flagLogFile})

	inRoot := "."
	if flag.NArg() > 0 {
		inRoot = flag.Arg(0)
	}
	inRoot, err := filepath.Abs(inRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve input folder")
	}
	if info, err := os.Stat(inRoot); err != nil || !info.IsDir() {
		log.Fatal().Str("folder", inRoot).Msg("input folder not found")
	}

	outRoot := *flagOut
	if !filepath.IsAbs(outRoot) {
		outRoot = filepath.Join(inRoot, outRoot)
	}

	archiveRoot := ""
	if *flagOrganize {
		archiveRoot = filepath.Join(inRoot, "double")
	}

	mode, err := gutter.ParseMode(*flagMode)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -mode")
	}

	summary, err := batch.Run(batch.Options{
		InputRoot:    inRoot,
		OutputRoot:   outRoot,
		ArchiveRoot:  archiveRoot,
		Recursive:    *flagRecursive,
		Force:        *flagForce,
		PreviewColor: *flagPreview,
		Workers:      *flagWorkers,
		Detect: gutter.Config{
			Mode:           mode,
			SearchFraction: *flagSearch,
			BandFraction:   *flagBand,
			MaxAnalysisDim: *flagMaxDim,
			CenterBias:     *flagCenterBias,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	fmt.Println("\nSummary")
	fmt.Printf("  Input:           %s\n", inRoot)
	fmt.Printf("  Splice output:   %s\n", outRoot)
	if archiveRoot != "" {
		fmt.Printf("  Double moved:    %s\n", archiveRoot)
	}
	fmt.Printf("  Images scanned:  %d\n", summary.Scanned)
	fmt.Printf("  Images split:    %d\n", summary.Split)
	fmt.Printf("  Splices written: %d\n", summary.Written)
	fmt.Printf("  Skipped single:  %d\n", summary.SkippedSingle)
	fmt.Printf("  Skipped existing:%d\n", summary.SkippedExisting)
	fmt.Printf("  Errors:          %d\n", summary.Errors)

	if summary.Errors > 0 {
		os.Exit(1)
	}
}
