package eventmodels

import (
	"fmt"
	"time"
)

// BarSeries is a chronologically ordered, immutable sequence of bars for a
// single instrument. Construct it with NewBarSeries, which validates the
// ordering invariant; once built it is safe for concurrent readers.
type BarSeries struct {
	Symbol string
	bars   []Bar
}

func NewBarSeries(symbol string, bars []Bar) (*BarSeries, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("NewBarSeries: %s: %w", symbol, ErrEmptyBarSeries)
	}

	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return nil, fmt.Errorf("NewBarSeries: %s: bar %d (%s): %w", symbol, i, b.Date.Format("2006-01-02"), ErrNonPositiveBarPrice)
		}

		if b.High < b.Low {
			return nil, fmt.Errorf("NewBarSeries: %s: bar %d (%s): %w", symbol, i, b.Date.Format("2006-01-02"), ErrInconsistentBarRange)
		}

		if b.Volume < 0 {
			return nil, fmt.Errorf("NewBarSeries: %s: bar %d (%s): %w", symbol, i, b.Date.Format("2006-01-02"), ErrNegativeBarVolume)
		}

		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			return nil, fmt.Errorf("NewBarSeries: %s: bar %d (%s) does not follow bar %d (%s): %w", symbol, i, b.Date.Format("2006-01-02"), i-1, bars[i-1].Date.Format("2006-01-02"), ErrBarsOutOfOrder)
		}
	}

	out := make([]Bar, len(bars))
	copy(out, bars)

	return &BarSeries{
		Symbol: symbol,
		bars:   out,
	}, nil
}

func (s *BarSeries) Len() int {
	return len(s.bars)
}

// Bar returns the bar at index i. Callers own the copy.
func (s *BarSeries) Bar(i int) Bar {
	return s.bars[i]
}

func (s *BarSeries) FirstDate() time.Time {
	return s.bars[0].Date
}

func (s *BarSeries) LastDate() time.Time {
	return s.bars[len(s.bars)-1].Date
}
