package eventmodels

import "fmt"

// ErrInvalidData is the kind shared by all bar-data validation failures;
// specific errors wrap it so callers can match either level.
var ErrInvalidData = fmt.Errorf("invalid bar data")

var (
	ErrEmptyBarSeries       = fmt.Errorf("%w: bar series is empty", ErrInvalidData)
	ErrBarsOutOfOrder       = fmt.Errorf("%w: bars are not in strictly increasing date order", ErrInvalidData)
	ErrNonPositiveBarPrice  = fmt.Errorf("%w: bar prices must be positive", ErrInvalidData)
	ErrNegativeBarVolume    = fmt.Errorf("%w: bar volume cannot be negative", ErrInvalidData)
	ErrInconsistentBarRange = fmt.Errorf("%w: bar high must be >= low", ErrInvalidData)
)
