package models

import "fmt"

// StrategyConfig holds the run parameters shared by all strategies. It is
// immutable for the duration of a run; Validate must pass before any bar is
// processed.
type StrategyConfig struct {
	LookbackPeriod   int     `json:"lookback_period" yaml:"lookbackPeriod"`
	StopLoss         float64 `json:"stop_loss" yaml:"stopLoss"`
	TakeProfit       float64 `json:"take_profit" yaml:"takeProfit"`
	PositionFraction float64 `json:"position_fraction" yaml:"positionFraction"`
	CommissionRate   float64 `json:"commission_rate" yaml:"commissionRate"`
}

func (c StrategyConfig) Validate() error {
	if c.LookbackPeriod < 1 {
		return fmt.Errorf("StrategyConfig.Validate: found %d: %w", c.LookbackPeriod, ErrInvalidLookbackPeriod)
	}

	if c.StopLoss <= 0 || c.StopLoss >= 1 {
		return fmt.Errorf("StrategyConfig.Validate: found %v: %w", c.StopLoss, ErrInvalidStopLoss)
	}

	if c.TakeProfit <= 0 || c.TakeProfit >= 1 {
		return fmt.Errorf("StrategyConfig.Validate: found %v: %w", c.TakeProfit, ErrInvalidTakeProfit)
	}

	if c.PositionFraction <= 0 || c.PositionFraction > 1 {
		return fmt.Errorf("StrategyConfig.Validate: found %v: %w", c.PositionFraction, ErrInvalidPositionFraction)
	}

	if c.CommissionRate < 0 || c.CommissionRate >= 1 {
		return fmt.Errorf("StrategyConfig.Validate: found %v: %w", c.CommissionRate, ErrInvalidCommissionRate)
	}

	return nil
}

// NewDefaultStrategyConfig mirrors the stock breakout parameters: a 20-bar
// lookback, 5% stop loss, 15% take profit, 95% of cash per entry, and 0.1%
// commission per side.
func NewDefaultStrategyConfig() StrategyConfig {
	return StrategyConfig{
		LookbackPeriod:   20,
		StopLoss:         0.05,
		TakeProfit:       0.15,
		PositionFraction: 0.95,
		CommissionRate:   0.001,
	}
}
