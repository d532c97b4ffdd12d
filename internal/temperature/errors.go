package temperature

import "errors"

var (
	// ErrInvalidReading is returned when a reading is below absolute zero (or NaN).
	ErrInvalidReading = errors.New("invalid temperature reading")

	// ErrEmptySeries is returned by queries over a series with no readings.
	ErrEmptySeries = errors.New("temperature series is empty")

	// ErrIndexOutOfRange is returned by raw element access beyond the series length.
	ErrIndexOutOfRange = errors.New("index out of range")
)
