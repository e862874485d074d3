package filestore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
)

// Writer stores statistics tables and the text report in an output directory.
// It implements pipeline.ArtifactWriter.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer for outputDir. The directory is created by
// EnsureDir, not here.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.outputDir
}

// Path returns the location of an artifact name inside the output directory.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.outputDir, name)
}

// EnsureDir creates the output directory if it does not exist yet.
func (w *Writer) EnsureDir() error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w: %w", w.outputDir, domain.ErrOutputWrite, err)
	}
	return nil
}

// WriteTable writes t as comma-delimited text with a header row and no index
// column, replacing any existing file. It returns the written path.
func (w *Writer) WriteTable(name string, t domain.Table) (string, error) {
	path := w.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return "", writeError(path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Header); err != nil {
		f.Close()
		return "", writeError(path, err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		f.Close()
		return "", writeError(path, err)
	}
	if err := f.Close(); err != nil {
		return "", writeError(path, err)
	}
	return path, nil
}

// WriteText writes text verbatim as UTF-8, replacing any existing file.
func (w *Writer) WriteText(name, text string) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", writeError(path, err)
	}
	return path, nil
}

func writeError(path string, err error) error {
	return fmt.Errorf("write %s: %w: %w", path, domain.ErrOutputWrite, err)
}
