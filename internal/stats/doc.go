// Package stats computes descriptive statistics over a temperature series.
//
// Every function takes a read-only Series view, never mutates it, and fails
// with temperature.ErrEmptySeries when the series holds no readings.
//
// # Central tendency and spread
//
//	avg, err := stats.Average(series)
//	sd, err := stats.Deviation(series) // population standard deviation
//
// # Nearest readings
//
// ClosestToZero and ClosestToValue return the reading with the smallest
// distance to the target. On an exact tie the algebraically larger reading
// wins, so ClosestToZero of [-3, 3] is 3.
//
// # Filtering
//
//	cold, err := stats.LessThan(series, 0)
//	warm, err := stats.GreaterThan(series, 25)
//
// # Summary
//
// Summarize bundles Average, Deviation, Min and Max into a temperature.Summary.
// The summary is a snapshot and goes stale if the series is appended to later.
package stats
