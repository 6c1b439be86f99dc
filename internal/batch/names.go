package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scantools/pagesplice/internal/imaging"
)

// outNames returns the two output file names for a source file name. The
// split index suffix keeps page order explicit and sortable: page one (left
// or top) gets _sp001, page two gets _sp002. The extension is remapped when
// the source format cannot be encoded (WebP becomes PNG).
func outNames(name string) (string, string) {
	ext := imaging.OutputExt(filepath.Ext(name))
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return stem + "_sp001" + ext, stem + "_sp002" + ext
}

// previewName returns the seam-preview file name for a source file name.
func previewName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "_seam.png"
}

// archiveOriginal moves a successfully split original from inRoot into
// destRoot, mirroring its relative directory. An already-archived file with
// the same name is left alone and the original stays put.
func archiveOriginal(path, inRoot, destRoot string) error {
	rel, err := filepath.Rel(inRoot, filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("relativize %s: %w", path, err)
	}

	destDir := filepath.Join(destRoot, rel)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	dest := filepath.Join(destDir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		return nil
	}
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("archive %s: %w", path, err)
	}
	return nil
}
