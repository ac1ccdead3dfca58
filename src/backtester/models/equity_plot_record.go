package models

import "time"

// EquityPlotRecord is one point on a run's equity curve. The simulation loop
// appends exactly one per bar.
type EquityPlotRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Equity    float64   `json:"equity"`
}
