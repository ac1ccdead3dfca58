package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
)

// RollingExtremes tracks the highest high and lowest low over the N bars
// strictly before the bar being evaluated. Update must be called once per
// bar, in order: the extremes it reports never include the bar passed to the
// current call, which keeps strategies free of lookahead.
type RollingExtremes struct {
	Period int
	highs  []float64
	lows   []float64
}

type RollingExtremesStats struct {
	HighestHigh float64
	LowestLow   float64
}

func NewRollingExtremes(period int) *RollingExtremes {
	return &RollingExtremes{
		Period: period,
	}
}

// Update records bar and returns the extremes over the prior Period bars.
// The first Period calls return false: not enough history exists yet.
func (r *RollingExtremes) Update(bar eventmodels.Bar) (bool, RollingExtremesStats, error) {
	ready := len(r.highs) >= r.Period

	var out RollingExtremesStats
	if ready {
		highestHigh, err := stats.Max(r.highs)
		if err != nil {
			return false, RollingExtremesStats{}, fmt.Errorf("failed to calculate highest high: %v", err)
		}

		lowestLow, err := stats.Min(r.lows)
		if err != nil {
			return false, RollingExtremesStats{}, fmt.Errorf("failed to calculate lowest low: %v", err)
		}

		out = RollingExtremesStats{
			HighestHigh: highestHigh,
			LowestLow:   lowestLow,
		}
	}

	if len(r.highs) < r.Period {
		r.highs = append(r.highs, bar.High)
		r.lows = append(r.lows, bar.Low)
	} else {
		r.highs = append(r.highs[1:], bar.High)
		r.lows = append(r.lows[1:], bar.Low)
	}

	return ready, out, nil
}
