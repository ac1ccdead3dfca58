package models

import "time"

// Trade is one completed round trip. It is immutable once appended to the
// trade log.
type Trade struct {
	EntryDate  time.Time  `json:"entry_date"`
	EntryPrice float64    `json:"entry_price"`
	ExitDate   time.Time  `json:"exit_date"`
	ExitPrice  float64    `json:"exit_price"`
	ExitReason ExitReason `json:"exit_reason"`
	PnlPct     float64    `json:"pnl_pct"`
	Size       int64      `json:"size"`
}
