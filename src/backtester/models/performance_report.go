package models

import (
	"encoding/json"
	"math"
)

// PerformanceReport summarizes a completed run. SharpeRatio is NaN when the
// equity curve is flat or contains fewer than two returns.
type PerformanceReport struct {
	StartingValue float64 `json:"starting_value"`
	FinalValue    float64 `json:"final_value"`
	TotalReturn   float64 `json:"total_return"`
	SharpeRatio   float64 `json:"sharpe_ratio"`
	MaxDrawdown   float64 `json:"max_drawdown"`
}

// MarshalJSON encodes an undefined Sharpe ratio as null: encoding/json
// rejects NaN.
func (r PerformanceReport) MarshalJSON() ([]byte, error) {
	sharpe := &r.SharpeRatio
	if math.IsNaN(r.SharpeRatio) {
		sharpe = nil
	}

	return json.Marshal(struct {
		StartingValue float64  `json:"starting_value"`
		FinalValue    float64  `json:"final_value"`
		TotalReturn   float64  `json:"total_return"`
		SharpeRatio   *float64 `json:"sharpe_ratio"`
		MaxDrawdown   float64  `json:"max_drawdown"`
	}{
		StartingValue: r.StartingValue,
		FinalValue:    r.FinalValue,
		TotalReturn:   r.TotalReturn,
		SharpeRatio:   sharpe,
		MaxDrawdown:   r.MaxDrawdown,
	})
}
