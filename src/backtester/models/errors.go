package models

import "fmt"

// ErrInvalidConfig is the kind shared by all pre-run configuration failures;
// specific errors wrap it so callers can match either level.
var ErrInvalidConfig = fmt.Errorf("invalid strategy config")

var (
	ErrInvalidLookbackPeriod   = fmt.Errorf("%w: lookback period must be >= 1", ErrInvalidConfig)
	ErrInvalidStopLoss         = fmt.Errorf("%w: stop loss must be in (0, 1)", ErrInvalidConfig)
	ErrInvalidTakeProfit       = fmt.Errorf("%w: take profit must be in (0, 1)", ErrInvalidConfig)
	ErrInvalidPositionFraction = fmt.Errorf("%w: position fraction must be in (0, 1]", ErrInvalidConfig)
	ErrInvalidCommissionRate   = fmt.Errorf("%w: commission rate must be in [0, 1)", ErrInvalidConfig)
	ErrInvalidInitialCash      = fmt.Errorf("%w: initial cash must be positive", ErrInvalidConfig)
	ErrBarSeriesTooShort       = fmt.Errorf("%w: bar series is shorter than lookback period + 1", ErrInvalidConfig)
	ErrUnknownStrategy         = fmt.Errorf("%w: unknown strategy", ErrInvalidConfig)
)

var (
	ErrPositionAlreadyOpen         = fmt.Errorf("position is already open")
	ErrPositionNotOpen             = fmt.Errorf("position is not open")
	ErrInvalidPositionSize         = fmt.Errorf("position size must be positive")
	ErrEquityCurveTooShort         = fmt.Errorf("equity curve must contain at least one point")
	ErrUnsupportedActionTransition = fmt.Errorf("action is not valid in the current position state")
)
