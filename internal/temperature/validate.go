package temperature

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// readingRule is the validator tag enforcing the absolute zero floor.
var readingRule = fmt.Sprintf("gte=%g", AbsoluteZero)

// ValidateReading reports whether r is a physically possible reading.
func ValidateReading(r float64) error {
	if math.IsNaN(r) {
		return fmt.Errorf("%w: NaN is not a temperature", ErrInvalidReading)
	}
	if err := validate.Var(r, readingRule); err != nil {
		return fmt.Errorf("%w: %v is below absolute zero (%g)", ErrInvalidReading, r, AbsoluteZero)
	}
	return nil
}

// ValidateReadings checks a whole batch and returns the first violation,
// wrapping ErrInvalidReading with its position in the batch.
func ValidateReadings(readings []float64) error {
	for i, r := range readings {
		if err := ValidateReading(r); err != nil {
			return fmt.Errorf("reading %d: %w", i, err)
		}
	}
	return nil
}
