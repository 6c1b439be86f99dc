package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/tiff"
)

// jpegQuality is used for all JPEG output.
const jpegQuality = 95

// OutputExt maps an input file extension to the extension Save can actually
// encode. The only remapping is WebP, which has no pure-Go encoder: ".webp"
// becomes ".png". Other extensions pass through lowercased.
func OutputExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext == ".webp" {
		return ".png"
	}
	return ext
}

// Save encodes img to path, choosing the encoder from the file extension.
// Supported extensions are .png, .jpg/.jpeg, .gif and .tif/.tiff.
//
// Formats that cannot carry an alpha channel get a flattened opaque copy of
// the pixel buffer before encoding. The capability is checked up front
// rather than discovered through a failed write.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if formatNeedsOpaque(ext) && !isOpaque(img) {
		img = flatten(img)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// formatNeedsOpaque reports whether the format behind ext has no way to
// represent transparency.
func formatNeedsOpaque(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg"
}

// isOpaque reports whether every pixel of img is fully opaque.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// flatten composites img over a white background, discarding the alpha
// channel.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := imaging.New(b.Dx(), b.Dy(), color.White)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
