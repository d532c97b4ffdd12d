package store

import (
	"fmt"

	"github.com/i474232898/temperature-series/internal/temperature"
)

// SeriesStore is an append-only, in-memory sequence of validated temperature
// readings. It is owned by a single caller and is not safe for concurrent use;
// wrap it in a lock if it has to be shared.
type SeriesStore struct {
	// readings[:length] holds the data; cap(readings) is the allocated capacity.
	readings []float64
	length   int
}

// New returns an empty store.
func New() *SeriesStore {
	return &SeriesStore{}
}

// NewFrom validates every reading and copies them into a new store.
// No store is produced if any reading is below absolute zero.
func NewFrom(readings []float64) (*SeriesStore, error) {
	if err := temperature.ValidateReadings(readings); err != nil {
		return nil, err
	}

	owned := make([]float64, len(readings))
	copy(owned, readings)

	return &SeriesStore{
		readings: owned,
		length:   len(owned),
	}, nil
}

// Append validates the whole batch before committing any of it, then adds
// the readings in order and returns the new length. On error the store is
// left unchanged.
func (s *SeriesStore) Append(readings ...float64) (int, error) {
	if err := temperature.ValidateReadings(readings); err != nil {
		return s.length, err
	}

	s.grow(len(readings))
	s.readings = s.readings[:s.length+len(readings)]
	copy(s.readings[s.length:], readings)
	s.length += len(readings)

	return s.length, nil
}

// grow doubles the capacity until n more readings fit.
func (s *SeriesStore) grow(n int) {
	free := cap(s.readings) - s.length
	if free >= n {
		return
	}

	newCap := cap(s.readings)
	if newCap == 0 {
		newCap = 1
	}
	for newCap-s.length < n {
		newCap *= 2
	}

	grown := make([]float64, s.length, newCap)
	copy(grown, s.readings[:s.length])
	s.readings = grown
}

// Len returns the number of readings held.
func (s *SeriesStore) Len() int {
	return s.length
}

// IsEmpty reports whether the store holds no readings.
func (s *SeriesStore) IsEmpty() bool {
	return s.length == 0
}

// Cap returns the currently allocated capacity.
func (s *SeriesStore) Cap() int {
	return cap(s.readings)
}

// At returns the reading at index i in insertion order.
func (s *SeriesStore) At(i int) (float64, error) {
	if i < 0 || i >= s.length {
		return 0, fmt.Errorf("%w: %d (length %d)", temperature.ErrIndexOutOfRange, i, s.length)
	}
	return s.readings[i], nil
}

// Values returns a copy of all readings in insertion order.
func (s *SeriesStore) Values() []float64 {
	out := make([]float64, s.length)
	copy(out, s.readings[:s.length])
	return out
}
