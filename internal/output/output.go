// Package output persists rendered palettes and the theme JSON.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ErrWriteFailure matches every *WriteError.
var ErrWriteFailure = errors.New("write failed")

// WriteError reports a failed write of one file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWriteFailure }

// Target is one file to produce.
type Target struct {
	Name string
	Path string
	Data []byte
}

// JSONTarget encodes v with two-space indentation.
func JSONTarget(name, path string, v any) (Target, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Target{}, fmt.Errorf("encode %s: %w", name, err)
	}
	return Target{Name: name, Path: path, Data: append(data, '\n')}, nil
}

// Writer writes targets atomically.
type Writer struct {
	// MakeDirs creates missing parent directories. When false a missing
	// directory is reported as a write failure.
	MakeDirs bool
	logger   zerolog.Logger
}

// NewWriter returns a writer logging to logger.
func NewWriter(logger zerolog.Logger, makeDirs bool) *Writer {
	return &Writer{MakeDirs: makeDirs, logger: logger}
}

// WriteAll attempts every target even after a failure. The returned error
// joins one *WriteError per failed target.
func (w *Writer) WriteAll(targets []Target) error {
	var errs []error
	for _, t := range targets {
		if err := w.Write(t); err != nil {
			w.logger.Error().Err(err).Str("file", t.Name).Str("path", t.Path).Msg("failed to write output")
			errs = append(errs, err)
			continue
		}
		w.logger.Debug().Str("file", t.Name).Str("path", t.Path).Int("bytes", len(t.Data)).Msg("wrote output")
	}
	return errors.Join(errs...)
}

// Write replaces t.Path with t.Data through a temporary sibling file, so a
// reader never observes a partially written palette.
func (w *Writer) Write(t Target) error {
	dir := filepath.Dir(t.Path)
	if w.MakeDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: t.Path, Err: err}
		}
	}

	tmp := t.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &WriteError{Path: t.Path, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(t.Data); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: t.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: t.Path, Err: err}
	}
	if err := os.Rename(tmp, t.Path); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: t.Path, Err: err}
	}
	return nil
}
