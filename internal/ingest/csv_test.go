package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-series/internal/store"
	"github.com/i474232898/temperature-series/internal/temperature"
)

func TestLoadCSVDetectsTemperatureColumn(t *testing.T) {
	csvData := `date,humidity,temperature_c
2024-01-01,80,-3.5
2024-01-02,75,NA
2024-01-03,70,1.25
2024-01-04,72,"4"
`
	s := store.New()
	n, err := LoadCSV(strings.NewReader(csvData), DefaultOptions(), s)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{-3.5, 1.25, 4}, s.Values())
}

func TestLoadCSVNamedColumn(t *testing.T) {
	csvData := "station;reading;temp_f\nA;10;50\nB;-5;23\n"

	opts := DefaultOptions()
	opts.Column = "reading"
	opts.Delimiter = ';'

	s := store.New()
	n, err := LoadCSV(strings.NewReader(csvData), opts, s)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{10, -5}, s.Values())
}

func TestLoadCSVFallsBackToLastColumn(t *testing.T) {
	s := store.New()
	n, err := LoadCSV(strings.NewReader("ds,y\n1,7\n2,8\n"), DefaultOptions(), s)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{7, 8}, s.Values())
}

func TestLoadCSVAppendsToExistingSeries(t *testing.T) {
	s, err := store.NewFrom([]float64{20})
	require.NoError(t, err)

	n, err := LoadCSV(strings.NewReader("temp\n21\n22\n"), DefaultOptions(), s)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{20, 21, 22}, s.Values())
}

func TestLoadCSVErrors(t *testing.T) {
	t.Run("no header", func(t *testing.T) {
		_, err := LoadCSV(strings.NewReader(""), DefaultOptions(), store.New())
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("unknown column", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Column = "missing"
		_, err := LoadCSV(strings.NewReader("temp\n1\n"), opts, store.New())
		assert.ErrorIs(t, err, ErrColumnNotFound)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := LoadCSV(strings.NewReader("temp\n1\nwarm\n"), DefaultOptions(), store.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
	})
}

func TestLoadCSVRejectsBatchBelowAbsoluteZero(t *testing.T) {
	csvData := "temp\n1\n2\n3\n-300\n5\n"

	opts := DefaultOptions()
	opts.BatchSize = 2

	s := store.New()
	n, err := LoadCSV(strings.NewReader(csvData), opts, s)

	require.ErrorIs(t, err, temperature.ErrInvalidReading)
	assert.Contains(t, err.Error(), "row 4")
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	require.NoError(t, os.WriteFile(path, []byte("celsius\n-1\n0\n1\n"), 0o644))

	s := store.New()
	n, err := LoadFile(path, DefaultOptions(), s)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions(), store.New())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCSVSkipsMissingMarkersInAnyCase(t *testing.T) {
	csvData := "temp\n1\nnan\nNaN\nna\nNULL\n2\n"

	s := store.New()
	n, err := LoadCSV(strings.NewReader(csvData), DefaultOptions(), s)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2}, s.Values())
}
