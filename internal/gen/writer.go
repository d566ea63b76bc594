package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Status is the outcome of generating one file.
type Status int

//go:generate go tool stringer -type=Status -linecomment -output=status_string.go

const (
	// StatusWrote means the output file was created or replaced.
	StatusWrote Status = iota // wrote
	// StatusUnchanged means the output already held the generated text.
	StatusUnchanged // unchanged
	// StatusDryRun means the output would have been written.
	StatusDryRun // dry-run
	// StatusFailed means generation or writing failed.
	StatusFailed // failed
)

// Writer writes generated files, leaving files whose content already matches
// untouched so their modification time is preserved.
type Writer struct {
	Fs     afero.Fs
	DryRun bool
}

// NewWriter returns a writer on fs.
func NewWriter(fs afero.Fs, dryRun bool) *Writer {
	return &Writer{Fs: fs, DryRun: dryRun}
}

// Write stores content at path unless the file already holds it.
// It creates the parent directory if it doesn't exist.
func (w *Writer) Write(path string, content []byte) (Status, error) {
	existing, err := afero.ReadFile(w.Fs, path)

	switch {
	case err == nil && bytes.Equal(existing, content):
		return StatusUnchanged, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return StatusFailed, fmt.Errorf("reading %s: %w", path, err)
	}

	if w.DryRun {
		return StatusDryRun, nil
	}

	err = w.Fs.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return StatusFailed, fmt.Errorf("creating output directory: %w", err)
	}

	err = afero.WriteFile(w.Fs, path, content, filePerm)
	if err != nil {
		return StatusFailed, fmt.Errorf("writing file %s: %w", path, err)
	}

	return StatusWrote, nil
}
