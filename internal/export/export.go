// Package export writes game records to output files.
//
// Only CSV output is supported. The format is chosen from the output file's
// extension; any other extension is reported and skipped without creating a
// file.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
	"github.com/pfrederiksen/mlb-gamedata/internal/storage"
)

// Format specifies the output format
type Format string

const (
	FormatCSV Format = "csv"
)

// ErrUnsupportedFormat is returned by FormatFor for extensions other than .csv.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// UnsupportedMessage is printed when an output extension is not supported.
const UnsupportedMessage = "File type not currently supported."

// FormatFor picks the output format from the file extension.
func FormatFor(path string) (Format, error) {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".csv") {
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// WriteCSV writes a header row of columns followed by one row per record.
// Fields a record lacks are written as empty cells.
func WriteCSV(w io.Writer, records []gameday.Record, columns []string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.Row(columns)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// Exporter writes game days to files.
type Exporter struct {
	columns []string
	diag    io.Writer
}

// New creates an Exporter for the given columns. User-facing diagnostics,
// such as an unsupported extension, are printed to diag.
func New(columns []string, diag io.Writer) *Exporter {
	if diag == nil {
		diag = io.Discard
	}
	return &Exporter{
		columns: columns,
		diag:    diag,
	}
}

// WriteFile exports records to the file at s. It reports whether the file was
// written. An unsupported extension is not an error: a diagnostic is printed,
// nothing is created and WriteFile returns false, nil.
func (e *Exporter) WriteFile(s *storage.Storage, records []gameday.Record) (bool, error) {
	format, err := FormatFor(s.Path())
	if err != nil {
		fmt.Fprintln(e.diag, UnsupportedMessage)
		logger.IncrCounter("export.unsupported_format")
		logger.Warn("Skipping export", logger.Fields{
			"path":  s.Path(),
			"ext":   s.Ext(),
			"games": len(records),
		})
		return false, nil
	}

	switch format {
	case FormatCSV:
		err = s.Write(func(w io.Writer) error {
			return WriteCSV(w, records, e.columns)
		})
	}
	if err != nil {
		return false, err
	}
	logger.IncrCounter("export.files_written")

	logger.Info("Wrote output", logger.Fields{
		"path":   s.Path(),
		"format": string(format),
		"games":  len(records),
	})
	return true, nil
}
