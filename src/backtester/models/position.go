package models

import (
	"fmt"
	"time"
)

type PositionState string

const (
	PositionStateFlat PositionState = "flat"
	PositionStateLong PositionState = "long"
)

// Position tracks the single live holding of a run. Open and Close are the
// only mutation paths; they enforce the Flat -> Long -> Flat lifecycle so a
// run can never double-enter or double-exit on the same bar.
type Position struct {
	State       PositionState `json:"state"`
	EntryPrice  float64       `json:"entry_price"`
	EntryDate   time.Time     `json:"entry_date"`
	Size        int64         `json:"size"`
	StopPrice   float64       `json:"stop_price"`
	TargetPrice float64       `json:"target_price"`
}

func NewPosition() *Position {
	return &Position{State: PositionStateFlat}
}

func (p *Position) IsLong() bool {
	return p.State == PositionStateLong
}

func (p *Position) Open(entryPrice float64, entryDate time.Time, size int64, cfg StrategyConfig) error {
	if p.State != PositionStateFlat {
		return fmt.Errorf("Position.Open: %w", ErrPositionAlreadyOpen)
	}

	if size <= 0 {
		return fmt.Errorf("Position.Open: found %d: %w", size, ErrInvalidPositionSize)
	}

	p.State = PositionStateLong
	p.EntryPrice = entryPrice
	p.EntryDate = entryDate
	p.Size = size
	p.StopPrice = entryPrice * (1 - cfg.StopLoss)
	p.TargetPrice = entryPrice * (1 + cfg.TakeProfit)

	return nil
}

// Close reverts the position to flat and returns the completed round trip.
// PnlPct nets out the round-trip commission.
func (p *Position) Close(exitPrice float64, exitDate time.Time, reason ExitReason, commissionRate float64) (*Trade, error) {
	if p.State != PositionStateLong {
		return nil, fmt.Errorf("Position.Close: %w", ErrPositionNotOpen)
	}

	trade := &Trade{
		EntryDate:  p.EntryDate,
		EntryPrice: p.EntryPrice,
		ExitDate:   exitDate,
		ExitPrice:  exitPrice,
		ExitReason: reason,
		PnlPct:     (exitPrice-p.EntryPrice)/p.EntryPrice - 2*commissionRate,
		Size:       p.Size,
	}

	*p = Position{State: PositionStateFlat}

	return trade, nil
}
