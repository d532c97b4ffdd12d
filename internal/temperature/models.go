package temperature

// AbsoluteZero is the lowest physically possible reading in degrees Celsius.
const AbsoluteZero = -273.0

// Summary is a point-in-time snapshot of the statistics of a series.
// It does not track the series it was computed from.
type Summary struct {
	Average   float64 `json:"averageC"`
	Deviation float64 `json:"deviationC"`
	Min       float64 `json:"minC"`
	Max       float64 `json:"maxC"`
}
