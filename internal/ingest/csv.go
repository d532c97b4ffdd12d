// Package ingest loads temperature readings from CSV input into a series store.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/i474232898/temperature-series/internal/common"
	"github.com/i474232898/temperature-series/internal/store"
	"github.com/i474232898/temperature-series/internal/temperature"
)

var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("csv input has no header row")

	// ErrColumnNotFound is returned when the requested value column is absent.
	ErrColumnNotFound = errors.New("value column not found")
)

// Options controls CSV loading.
type Options struct {
	Column    string // Header of the value column (empty: detect)
	BatchSize int    // Readings per Append call (default: 64)
	Delimiter rune   // Field delimiter (default: ',')
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		BatchSize: 64,
		Delimiter: ',',
	}
}

// LoadFile opens path and loads it with LoadCSV.
func LoadFile(path string, opts Options, dst *store.SeriesStore) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return LoadCSV(file, opts, dst)
}

// LoadCSV reads a header row followed by data rows and appends the values of
// the selected column to dst, returning how many readings were committed.
// Missing cells are skipped. Readings are appended in batches, so a reading
// below absolute zero leaves earlier batches in dst and rejects its own batch.
func LoadCSV(r io.Reader, opts Options, dst *store.SeriesStore) (int, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultOptions().BatchSize
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultOptions().Delimiter
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return 0, ErrNoHeader
	}
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}

	valueIdx, err := valueColumn(header, opts.Column)
	if err != nil {
		return 0, err
	}

	var (
		committed int
		batch     = make([]float64, 0, opts.BatchSize)
		rows      = make([]int, 0, opts.BatchSize)
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := dst.Append(batch...); err != nil {
			return fmt.Errorf("row %d: %w", badRow(batch, rows), err)
		}
		committed += len(batch)
		batch = batch[:0]
		rows = rows[:0]
		return nil
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return committed, fmt.Errorf("row %d: %w", row, err)
		}

		if valueIdx >= len(record) || common.IsMissing(record[valueIdx]) {
			continue
		}

		cell := common.Unquote(record[valueIdx])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return committed, fmt.Errorf("row %d: parse %q: %w", row, cell, err)
		}

		batch = append(batch, v)
		rows = append(rows, row)
		if len(batch) == opts.BatchSize {
			if err := flush(); err != nil {
				return committed, err
			}
		}
	}

	if err := flush(); err != nil {
		return committed, err
	}
	return committed, nil
}

// valueColumn picks the named column, else the first temperature-looking
// header, else the last column.
func valueColumn(header []string, name string) (int, error) {
	if name != "" {
		for i, h := range header {
			if common.Unquote(h) == name {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	for i, h := range header {
		if common.HasAny(common.Unquote(h), "temp", "celsius") {
			return i, nil
		}
	}
	return len(header) - 1, nil
}

// badRow returns the data row of the first invalid reading in a batch.
func badRow(batch []float64, rows []int) int {
	for i, v := range batch {
		if temperature.ValidateReading(v) != nil {
			return rows[i]
		}
	}
	return rows[0]
}
