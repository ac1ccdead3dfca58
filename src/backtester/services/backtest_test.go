package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/breakout-backtest/src/backtester/models"
	"github.com/jiaming2012/breakout-backtest/src/eventmodels"
	"github.com/jiaming2012/breakout-backtest/src/strategy"
)

func newSeriesFromCloses(t *testing.T, closes []float64) *eventmodels.BarSeries {
	bars := make([]eventmodels.Bar, 0, len(closes))
	for i, close := range closes {
		bars = append(bars, eventmodels.Bar{
			Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 1000,
		})
	}

	series, err := eventmodels.NewBarSeries("SPY", bars)
	require.NoError(t, err)
	return series
}

func newScenarioConfig(lookbackPeriod int) models.StrategyConfig {
	return models.StrategyConfig{
		LookbackPeriod:   lookbackPeriod,
		StopLoss:         0.05,
		TakeProfit:       0.15,
		PositionFraction: 0.95,
		CommissionRate:   0.001,
	}
}

func TestBacktestValidation(t *testing.T) {
	t.Run("invalid config fails before any bar is processed", func(t *testing.T) {
		cfg := newScenarioConfig(0)

		_, err := NewBacktest(cfg, 100000)
		assert.ErrorIs(t, err, models.ErrInvalidLookbackPeriod)
	})

	t.Run("non positive initial cash is rejected", func(t *testing.T) {
		_, err := NewBacktest(newScenarioConfig(3), 0)
		assert.ErrorIs(t, err, models.ErrInvalidInitialCash)
	})

	t.Run("series shorter than lookback plus one is rejected", func(t *testing.T) {
		backtest, err := NewBacktest(newScenarioConfig(3), 100000)
		require.NoError(t, err)

		series := newSeriesFromCloses(t, []float64{100, 101, 102})

		_, err = backtest.Run(context.Background(), series, strategy.NewBreakoutStrategy())
		assert.ErrorIs(t, err, models.ErrBarSeriesTooShort)
	})
}

func TestBacktestBreakoutScenario(t *testing.T) {
	// Closes [100,101,102,103,80] with a 3 bar lookback: the close of 103
	// breaks the prior high of 102, and the close of 80 is below the stop of
	// 103 * 0.95 = 97.85.
	series := newSeriesFromCloses(t, []float64{100, 101, 102, 103, 80})

	backtest, err := NewBacktest(newScenarioConfig(3), 100000)
	require.NoError(t, err)

	result, err := backtest.Run(context.Background(), series, strategy.NewBreakoutStrategy())
	require.NoError(t, err)

	require.Len(t, result.Trades, 1)
	trade := result.Trades[0]

	assert.Equal(t, 103.0, trade.EntryPrice)
	assert.Equal(t, series.Bar(3).Date, trade.EntryDate)
	assert.Equal(t, 80.0, trade.ExitPrice)
	assert.Equal(t, series.Bar(4).Date, trade.ExitDate)
	assert.Equal(t, models.ExitReasonStopLoss, trade.ExitReason)

	// size = floor(0.95 * 100000 / 103)
	assert.Equal(t, int64(922), trade.Size)

	// pnl nets out commission on both legs
	assert.InDelta(t, (80.0-103.0)/103.0-0.002, trade.PnlPct, 1e-9)

	require.Len(t, result.EquityCurve, 5)
	assert.Equal(t, 100000.0, result.EquityCurve[0].Equity)
	assert.Equal(t, 100000.0, result.EquityCurve[2].Equity)
	assert.InDelta(t, 99905.034, result.EquityCurve[3].Equity, 1e-6)
	assert.InDelta(t, 78625.274, result.EquityCurve[4].Equity, 1e-6)
	assert.InDelta(t, 78625.274, result.FinalValue, 1e-6)
}

func TestBacktestTakeProfitScenario(t *testing.T) {
	// Entry at 101 (breaks the prior high of 100); target is
	// 101 * 1.15 = 116.15, touched by the close of 120.
	series := newSeriesFromCloses(t, []float64{100, 100, 101, 120, 119})

	backtest, err := NewBacktest(newScenarioConfig(2), 100000)
	require.NoError(t, err)

	result, err := backtest.Run(context.Background(), series, strategy.NewBreakoutStrategy())
	require.NoError(t, err)

	require.Len(t, result.Trades, 1)
	assert.Equal(t, 101.0, result.Trades[0].EntryPrice)
	assert.Equal(t, 120.0, result.Trades[0].ExitPrice)
	assert.Equal(t, models.ExitReasonTakeProfit, result.Trades[0].ExitReason)
}

func TestBacktestBuyAndHold(t *testing.T) {
	series := newSeriesFromCloses(t, []float64{100, 101, 102, 103, 80})

	backtest, err := NewBacktest(newScenarioConfig(3), 100000)
	require.NoError(t, err)

	result, err := backtest.Run(context.Background(), series, strategy.NewBuyAndHoldStrategy())
	require.NoError(t, err)

	require.Len(t, result.Trades, 1)
	trade := result.Trades[0]

	assert.Equal(t, series.Bar(0).Date, trade.EntryDate)
	assert.Equal(t, 100.0, trade.EntryPrice)
	assert.Equal(t, int64(950), trade.Size)
	assert.Equal(t, series.Bar(4).Date, trade.ExitDate)
	assert.Equal(t, 80.0, trade.ExitPrice)
	assert.Equal(t, models.ExitReasonEndOfPeriod, trade.ExitReason)

	// cash after entry: 100000 - 95000 - 95 = 4905
	// final: 4905 + 950*80 - 76 = 80829
	require.Len(t, result.EquityCurve, 5)
	assert.InDelta(t, 99905.0, result.EquityCurve[0].Equity, 1e-9)
	assert.InDelta(t, 100855.0, result.EquityCurve[1].Equity, 1e-9)
	assert.InDelta(t, 80829.0, result.FinalValue, 1e-9)
}

func TestBacktestNoSignals(t *testing.T) {
	// a falling series never breaks out; the run completes flat with no trades
	series := newSeriesFromCloses(t, []float64{100, 99, 98, 97, 96})

	backtest, err := NewBacktest(newScenarioConfig(3), 100000)
	require.NoError(t, err)

	result, err := backtest.Run(context.Background(), series, strategy.NewBreakoutStrategy())
	require.NoError(t, err)

	assert.Empty(t, result.Trades)

	for _, point := range result.EquityCurve {
		assert.Equal(t, 100000.0, point.Equity)
	}
}

func TestBacktestSkipsEntryOnFinalBar(t *testing.T) {
	// the breakout only happens on the last bar; entering there would force
	// a same-bar exit, so the run must end flat with no trades
	series := newSeriesFromCloses(t, []float64{100, 101, 102, 103})

	backtest, err := NewBacktest(newScenarioConfig(3), 100000)
	require.NoError(t, err)

	result, err := backtest.Run(context.Background(), series, strategy.NewBreakoutStrategy())
	require.NoError(t, err)

	assert.Empty(t, result.Trades)
	assert.Equal(t, 100000.0, result.FinalValue)
}
