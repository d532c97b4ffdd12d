package stats

import (
	"math"

	"github.com/i474232898/temperature-series/internal/temperature"
)

// Series is the read-only view the statistics are computed over.
type Series interface {
	Len() int
	At(i int) (float64, error)
}

// readings collects the current contents of s, failing on an empty series.
func readings(s Series) ([]float64, error) {
	n := s.Len()
	if n == 0 {
		return nil, temperature.ErrEmptySeries
	}

	values := make([]float64, n)
	for i := range values {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Average returns the arithmetic mean of the series.
func Average(s Series) (float64, error) {
	values, err := readings(s)
	if err != nil {
		return 0, err
	}
	return mean(values), nil
}

// Deviation returns the population standard deviation of the series.
func Deviation(s Series) (float64, error) {
	values, err := readings(s)
	if err != nil {
		return 0, err
	}

	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values))), nil
}

// Min returns the lowest reading.
func Min(s Series) (float64, error) {
	values, err := readings(s)
	if err != nil {
		return 0, err
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the highest reading.
func Max(s Series) (float64, error) {
	values, err := readings(s)
	if err != nil {
		return 0, err
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// ClosestToZero returns the reading with the smallest absolute value.
func ClosestToZero(s Series) (float64, error) {
	return ClosestToValue(s, 0)
}

// ClosestToValue returns the reading nearest to target. Ties go to the
// larger reading.
func ClosestToValue(s Series, target float64) (float64, error) {
	values, err := readings(s)
	if err != nil {
		return 0, err
	}

	best := values[0]
	bestDist := math.Abs(target - best)
	for _, v := range values[1:] {
		dist := math.Abs(target - v)
		if dist < bestDist || (dist == bestDist && v > best) {
			best, bestDist = v, dist
		}
	}
	return best, nil
}

// LessThan returns the readings strictly below threshold, in series order.
func LessThan(s Series, threshold float64) ([]float64, error) {
	return filter(s, func(v float64) bool { return v < threshold })
}

// GreaterThan returns the readings strictly above threshold, in series order.
func GreaterThan(s Series, threshold float64) ([]float64, error) {
	return filter(s, func(v float64) bool { return v > threshold })
}

func filter(s Series, keep func(float64) bool) ([]float64, error) {
	values, err := readings(s)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(values))
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Summarize computes average, deviation, min and max in one call.
func Summarize(s Series) (temperature.Summary, error) {
	avg, err := Average(s)
	if err != nil {
		return temperature.Summary{}, err
	}
	dev, err := Deviation(s)
	if err != nil {
		return temperature.Summary{}, err
	}
	min, err := Min(s)
	if err != nil {
		return temperature.Summary{}, err
	}
	max, err := Max(s)
	if err != nil {
		return temperature.Summary{}, err
	}

	return temperature.Summary{
		Average:   avg,
		Deviation: dev,
		Min:       min,
		Max:       max,
	}, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
